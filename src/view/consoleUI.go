package view

import (
	"bytes"
	"fmt"
	"lifegrid/src/life"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/jroimartin/gocui"
	"github.com/logrusorgru/aurora"
)

type keyBindings struct {
	key      interface{}
	name     string
	descr    string
	handler  func(v *gocui.View) error
	viewName string
}

//ConsoleUI is the interactive terminal front end of the engine
//it only renders the engine snapshots and forwards the user actions
type ConsoleUI struct {
	e          *life.Engine
	g          *gocui.Gui
	k          []keyBindings
	liveFiller string
	deadFiller string
	mu         sync.Mutex
	message    string //the last rejected action
}

var (
	runningStateDescr = map[life.RunningState]string{
		life.Stopped: aurora.Colorize("stopped", aurora.BlueFg).String(),
		life.Running: aurora.Colorize("running", aurora.CyanFg).String(),
	}
)

func NewViewTerminal() *ConsoleUI {

	var err error
	t := ConsoleUI{
		liveFiller: aurora.Green("█").BgBrightGreen().String(),
		deadFiller: "░",
	}

	t.g, err = gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		log.Panicln(err)
	}

	t.g.Mouse = true
	t.k = []keyBindings{
		{gocui.KeyCtrlC,
			"^C",
			"Exit",
			t.cmdQuit,
			""},
		{'r',
			"R",
			"Start/Pause",
			t.cmdStartPause,
			""},
		{'n',
			"N",
			"Next step",
			t.cmdNextStep,
			""},
		{'c',
			"C",
			"Clear",
			t.cmdClear,
			""},
		{'w',
			"W",
			"Random",
			t.cmdRandom,
			""},
		{gocui.MouseLeft,
			"MOUSE",
			"Toggle the cell",
			t.cmdMouseClick,
			"field"},
	}
	t.g.SetManagerFunc(t.layout)

	t.initKeyBindings(t.k)

	return &t
}

func (t *ConsoleUI) initKeyBindings(k []keyBindings) {
	for _, kb := range k {
		h := kb.handler
		if err := t.g.SetKeybinding(kb.viewName, kb.key, gocui.ModNone, func(gui *gocui.Gui, view *gocui.View) error { return h(view) }); err != nil {
			log.Panicln(err)
		}
	}
}

func (t *ConsoleUI) Register(e *life.Engine) {
	t.e = e
}

func (t *ConsoleUI) Start() {
	if err := t.g.MainLoop(); err != nil && err != gocui.ErrQuit {
		log.Panicln(err)
	}
	t.g.Close()
}

func (t *ConsoleUI) Refresh() {
	t.renderField(t.e.Snapshot())
	t.renderStatus()
}

func (t *ConsoleUI) renderField(a life.Area) {

	t.g.Update(func(g *gocui.Gui) error {
		v, e := g.View("field")
		if e != nil {
			return e
		}
		//the entire field is redrawing at once
		v.Clear()
		maxW, maxH := v.Size()
		_, _ = fmt.Fprint(v, renderArea(a, maxW, maxH, t.liveFiller, t.deadFiller))
		return nil
	})
}

//renderArea draws the area with one char per cell
//the rows and cols which don't fit into maxW x maxH are cropped
func renderArea(a life.Area, maxW int, maxH int, liveFiller string, deadFiller string) string {
	var b bytes.Buffer
	for i, l := range a.Cells {
		//discard the data outside the view area
		if i >= maxH {
			break
		}
		//line feed char
		if i != 0 {
			b.WriteByte(10)
		}
		if onCropWarning(i, maxW, maxH, a.Rows, a.Cols) {
			b.WriteString(aurora.Red("The field size is larger than the viewing area").BgBlack().String())
			break
		}
		for j, c := range l {
			if j >= maxW {
				break
			}
			if c {
				b.WriteString(liveFiller)
			} else {
				b.WriteString(deadFiller)
			}
		}
	}
	return b.String()
}

//onCropWarning reports whether the view row y shows the crop warning of renderArea instead of cells
func onCropWarning(y int, maxW int, maxH int, rows int, cols int) bool {
	crop := cols > maxW || rows > maxH
	return crop && y == maxH-1
}

func (t *ConsoleUI) renderStatus() {
	s := t.e.Status()
	t.mu.Lock()
	msg := t.message
	t.mu.Unlock()
	t.g.Update(func(g *gocui.Gui) error {
		if v, e := g.View("status"); e == nil {
			v.Clear()
			_, _ = fmt.Fprintln(v, t.renderProp("Generation", "%v", s.Generation))
			_, _ = fmt.Fprintln(v, t.renderProp("Live Cells", "%v", s.LiveCells))
			_, _ = fmt.Fprintln(v, t.renderProp("Evaluation time", "%v", s.IterationTime.Round(time.Microsecond)))
			_, _ = fmt.Fprintln(v, t.renderProp("Mode", "%v", runningStateDescr[s.Mode]))
			if msg != "" {
				_, _ = fmt.Fprintln(v, " "+aurora.Red(msg).String())
			}
		}
		if v, e := g.View("help"); e == nil {
			v.Clear()
			_, _ = fmt.Fprintln(v, t.renderHelp(startLabel(s)))
		}
		return nil
	})
}

func (t *ConsoleUI) renderConfiguration() {
	//it needs to call Update when calls from goroutine
	t.g.Update(func(g *gocui.Gui) error {
		c := t.e.Options()
		if v, e := g.View("configuration"); e == nil {
			v.Clear()
			_, _ = fmt.Fprintln(v, t.renderProp("Dimension", "%v x %v", c.Rows, c.Cols))
			_, _ = fmt.Fprintln(v, t.renderProp("Interval", "%v", c.Interval))
		}
		return nil
	})
}

func (t *ConsoleUI) renderProp(name string, valueformat string, values ...interface{}) string {
	return fmt.Sprintf(" "+aurora.Colorize(name, aurora.GreenFg).String()+": "+valueformat, values...)
}

//startLabel names the start/pause action like the start button does
func startLabel(s life.Status) string {
	switch {
	case s.Mode == life.Running:
		return "Pause"
	case s.Generation > 0:
		return "Continue"
	default:
		return "Start"
	}
}

func (t *ConsoleUI) renderHelp(startDescr string) string {
	b := bytes.Buffer{}
	b.WriteString("KEYBINDINGS: ")
	for i, k := range t.k {
		if i != 0 {
			b.WriteString(", ")
		}
		descr := k.descr
		if k.key == 'r' {
			descr = startDescr
		}
		b.WriteString(aurora.Green(k.name).String())
		b.WriteString(": ")
		b.WriteString(descr)
	}
	return b.String()
}

func (t *ConsoleUI) layout(g *gocui.Gui) error {

	maxX, maxY := g.Size()
	leftColumnWidth := 28
	minWindowHeight := 20

	if maxY < minWindowHeight {
		if _, err := t.headerLayout(g, maxY, "Terminal height too small"); err != nil {
			if err != gocui.ErrUnknownView {
				return err
			}
		}
		_ = g.DeleteView("configuration")
		_ = g.DeleteView("status")
		_ = g.DeleteView("field")
		return nil

	} else {
		if _, err := t.headerLayout(g, 3, "Conway's Game of Life"); err != nil {
			if err != gocui.ErrUnknownView {
				return err
			}
		}
	}

	if v, err := g.SetView("configuration", 0, 3, leftColumnWidth, 3+(maxY-5-3)/2); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "Configuration"
		v.Frame = true
		t.renderConfiguration()
	}

	if v, err := g.SetView("status", 0, 3+(maxY-5-3)/2+1, leftColumnWidth, maxY-5); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "Status"
		v.Frame = true
		t.renderStatus()
	}

	if v, err := g.SetView("field", leftColumnWidth+1, 3, maxX-1, maxY-5); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "Field"
		v.Frame = true
	}
	t.renderField(t.e.Snapshot())

	if v, err := g.SetView("help", -1, maxY-5, maxX, maxY-3); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Frame = false
		_, _ = fmt.Fprintln(v, t.renderHelp(startLabel(t.e.Status())))
	}

	return nil
}

func (t *ConsoleUI) headerLayout(g *gocui.Gui, height int, text string) (v *gocui.View, err error) {
	maxX, _ := g.Size()
	if v, err = g.SetView("header", -1, -1, maxX+1, height); err != nil {
		if err == gocui.ErrUnknownView && v != nil {
			v.Frame = false
			v.BgColor = gocui.ColorCyan
			v.FgColor = gocui.ColorBlack
		}
	}
	if v != nil {
		v.Clear()
		if maxX < len(text) {
			panic(fmt.Sprintf("Terminal width is too small: %v", maxX))
		}
		_, _ = fmt.Fprintln(v, strings.Repeat("\n", height/2+1)+strings.Repeat(" ", (maxX-len(text))/2)+text)
	}
	return
}

//setMessage shows the rejected action in the status pane, empty msg hides it
func (t *ConsoleUI) setMessage(msg string) {
	t.mu.Lock()
	t.message = msg
	t.mu.Unlock()
}

func (t *ConsoleUI) cmdQuit(_ *gocui.View) error {
	return gocui.ErrQuit
}

func (t *ConsoleUI) cmdStartPause(_ *gocui.View) error {
	t.setMessage("")
	if t.e.Running() {
		t.e.Pause()
	} else {
		t.e.Start()
	}
	return nil
}

func (t *ConsoleUI) cmdNextStep(_ *gocui.View) error {
	t.setMessage("")
	t.e.Step()
	return nil
}

func (t *ConsoleUI) cmdClear(_ *gocui.View) error {
	t.setMessage("")
	t.e.Clear()
	return nil
}

func (t *ConsoleUI) cmdRandom(_ *gocui.View) error {
	if t.e.Running() {
		t.setMessage("pause to randomize")
		t.renderStatus()
		return nil
	}
	t.setMessage("")
	t.e.Randomize()
	return nil
}

//cmdMouseClick toggles the clicked cell, the click is ignored when the engine rejects the edit
func (t *ConsoleUI) cmdMouseClick(v *gocui.View) error {
	cx, cy := v.Cursor()
	maxW, maxH := v.Size()
	rows, cols := t.e.Dimensions()
	if onCropWarning(cy, maxW, maxH, rows, cols) {
		return nil
	}
	if err := t.e.ToggleCell(cy, cx); err != nil {
		t.setMessage(err.Error())
		t.renderStatus()
		return nil
	}
	t.setMessage("")
	return nil
}
