package life

import "github.com/pkg/errors"

//Template represents the seeding template which can be used to settle the grid with predefined data
type Template struct {
	Name  string   //template name
	Descr string   //template descr
	Cells [][2]int //array of [row, col] coordinates
}

var builtinTemplates = []Template{
	{"block", "2x2 still life", [][2]int{{1, 1}, {1, 2}, {2, 1}, {2, 2}}},
	{"blinker", "period 2 oscillator", [][2]int{{2, 1}, {2, 2}, {2, 3}}},
	{"toad", "period 2 oscillator", [][2]int{{2, 2}, {2, 3}, {2, 4}, {3, 1}, {3, 2}, {3, 3}}},
	{"beacon", "period 2 oscillator", [][2]int{{1, 1}, {1, 2}, {2, 1}, {3, 4}, {4, 3}, {4, 4}}},
	{"glider", "moves one cell diagonally every 4 generations", [][2]int{{1, 2}, {2, 3}, {3, 1}, {3, 2}, {3, 3}}},
	{"sample", "the test sample with 3 stable patterns", [][2]int{
		{1, 1}, {2, 1},
		{1, 2}, {2, 2},
		{3, 3},
		{2, 4},
		{3, 4},
		{3, 5},
	}},
}

//TemplateNames returns the names of the built-in templates
func TemplateNames() []string {
	names := make([]string, 0, len(builtinTemplates))
	for _, tmpl := range builtinTemplates {
		names = append(names, tmpl.Name)
	}
	return names
}

//AddTemplate adds the seeding template to the engine's template storage
//the grid can be populated with this template by calling SettleTemplate
func (e *Engine) AddTemplate(tmpl Template) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if _, ok := e.templates[tmpl.Name]; !ok {
		e.templateNames = append(e.templateNames, tmpl.Name)
	}
	e.templates[tmpl.Name] = tmpl
}

//Templates returns the known templates in the order they were added
func (e *Engine) Templates() []Template {
	e.mu.Lock()
	defer e.mu.Unlock()
	tt := make([]Template, 0, len(e.templateNames))
	for _, name := range e.templateNames {
		tt = append(tt, e.templates[name])
	}
	return tt
}

//SettleTemplate populates the grid with the named template
func (e *Engine) SettleTemplate(name string) error {
	e.mu.Lock()
	tmpl, ok := e.templates[name]
	e.mu.Unlock()
	if !ok {
		return errors.Wrapf(ErrUnknownTemplate, "template %q", name)
	}
	return e.Settle(tmpl.Cells)
}

//Settle makes the cells at the given [row, col] coordinates alive
//the coordinates are validated first, nothing is written if any of them is outside the grid
func (e *Engine) Settle(cells [][2]int) error {
	e.mu.Lock()
	if e.state.Mode == Running {
		e.mu.Unlock()
		return errors.Wrap(ErrRunning, "settle")
	}
	for _, rc := range cells {
		if !e.cur.contains(rc[0], rc[1]) {
			e.mu.Unlock()
			return outOfBounds(e.cur, rc[0], rc[1])
		}
	}
	for _, rc := range cells {
		e.cur.Cells[rc[0]][rc[1]] = Alive
	}
	e.state.LiveCells = e.cur.liveCells()
	st := e.state
	e.mu.Unlock()
	e.notify(st)
	return nil
}
