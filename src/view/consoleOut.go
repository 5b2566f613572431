package view

import (
	"fmt"
	"io"
	"lifegrid/src/life"
	"os"
	"sort"
	"sync"
	"time"

	"github.com/logrusorgru/aurora"
)

//ConsoleOut prints the progress of the headless simulation
type ConsoleOut struct {
	mu        sync.Mutex
	e         *life.Engine
	w         io.Writer
	every     int
	lastGen   int
	startTime time.Time
}

//NewConsoleOut creates the printer which reports every `every` generations to stdout
func NewConsoleOut(every int) *ConsoleOut {
	return NewConsoleOutTo(os.Stdout, every)
}

func NewConsoleOutTo(w io.Writer, every int) *ConsoleOut {
	if every <= 0 {
		every = 1
	}
	return &ConsoleOut{w: w, every: every}
}

func (c *ConsoleOut) Refresh() {
	st := c.e.Status()
	c.mu.Lock()
	defer c.mu.Unlock()
	if st.Mode != life.Running || st.Generation == c.lastGen {
		return
	}
	c.lastGen = st.Generation
	if st.Generation%c.every == 0 {
		_, _ = fmt.Fprintf(c.w, "  Generations done: %v, live cells: %v\n", st.Generation, st.LiveCells)
	}
}

func (c *ConsoleOut) Register(e *life.Engine) {
	c.e = e
	o := e.Options()
	_, _ = fmt.Fprintln(c.w, "Running configuration:")
	c.printHashData(map[string]interface{}{
		"Dimension": fmt.Sprintf("%v x %v", o.Rows, o.Cols),
		"Interval":  o.Interval,
	})
}

func (c *ConsoleOut) Start() {
	c.startTime = time.Now()
	_, _ = fmt.Fprintln(c.w, "\nSimulation started...")
}

//Finish prints the summary
func (c *ConsoleOut) Finish() {
	st := c.e.Status()
	totalTime := time.Since(c.startTime).Round(time.Millisecond)
	c.mu.Lock()
	defer c.mu.Unlock()
	_, _ = fmt.Fprintln(c.w, "\n"+aurora.Bold("Finished:").String())
	c.printHashData(map[string]interface{}{
		"Last generation": st.Generation,
		"Total time":      totalTime,
		"Live cells":      st.LiveCells,
	})
}

func (c *ConsoleOut) printHashData(d map[string]interface{}) {
	propNames := make([]string, 0, len(d))
	for k := range d {
		propNames = append(propNames, k)
	}
	sort.Strings(propNames)
	for _, propName := range propNames {
		_, _ = fmt.Fprintf(c.w, "  %s: %v\n", propName, d[propName])
	}
}
