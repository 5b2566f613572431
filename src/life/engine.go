package life

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/pkg/errors"
)

//Options represents the Engine's configurable options
type Options struct {
	Rows      int
	Cols      int
	Interval  time.Duration //interval between the generations while running
	Seed      int64         //seed for Randomize, 0 means seeding from the clock
	Scheduler Scheduler     //nil means TimerScheduler
}

//Status represents the status of the Engine at concrete moment
type Status struct {
	Generation    int
	Mode          RunningState
	LiveCells     int
	IterationTime time.Duration
}

//Viewer is the interface to any Viewer - the object who can display the grid or control the engine
type Viewer interface {
	Refresh()
	Register(e *Engine)
}

//The simulation running state at the concrete moment
type RunningState int

const (
	Stopped RunningState = iota
	Running
)

func (rs RunningState) String() string {
	if rs == Running {
		return "running"
	}
	return "stopped"
}

//default options
const (
	DefRows               = 60
	DefCols               = 150
	DefSimulationInterval = time.Millisecond * 100
)

var DefaultOptions = Options{
	Rows:     DefRows,
	Cols:     DefCols,
	Interval: DefSimulationInterval,
}

//Engine owns the grid and computes the generations
//cur holds the authoritative state, next is the scratch buffer of the running generation
//all methods are safe to call from any goroutine
type Engine struct {
	options       Options
	mu            sync.Mutex
	state         Status
	cur           Area
	next          Area
	rnd           *rand.Rand
	sched         Scheduler
	task          Task
	//epoch is bumped every time the running cycle starts or stops
	//a tick from an older epoch does nothing
	epoch         int
	stateCh       chan Status
	views         []Viewer
	templates     map[string]Template
	templateNames []string
}

//New creates the rows x cols Engine with default options
func New(rows int, cols int) (*Engine, error) {
	o := DefaultOptions
	o.Rows = rows
	o.Cols = cols
	return NewEngine(&o, nil)
}

//NewEngine creates the Engine, all cells are dead
//if stateCh isn't nil the status is written to it after every change, the status is dropped when the channel is full
func NewEngine(o *Options, stateCh chan Status) (*Engine, error) {
	if o == nil {
		o = &DefaultOptions
	}
	if o.Rows <= 0 || o.Cols <= 0 {
		return nil, errors.Wrapf(ErrInvalidDimension, "%dx%d", o.Rows, o.Cols)
	}
	e := Engine{
		options:   *o,
		stateCh:   stateCh,
		templates: map[string]Template{},
		cur:       createArea(o.Rows, o.Cols),
		next:      createArea(o.Rows, o.Cols),
		sched:     o.Scheduler,
	}
	if e.sched == nil {
		e.sched = TimerScheduler{}
	}
	seed := o.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	e.rnd = rand.New(rand.NewSource(seed))
	for _, tmpl := range builtinTemplates {
		e.templates[tmpl.Name] = tmpl
		e.templateNames = append(e.templateNames, tmpl.Name)
	}
	return &e, nil
}

//Options returns the engine configuration
func (e *Engine) Options() Options {
	return e.options
}

//Dimensions returns the grid size
func (e *Engine) Dimensions() (rows int, cols int) {
	return e.options.Rows, e.options.Cols
}

//Status returns current engine status
func (e *Engine) Status() Status {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

//Running reports whether the simulation is running
func (e *Engine) Running() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.Mode == Running
}

//Snapshot returns a copy of the current grid
func (e *Engine) Snapshot() Area {
	e.mu.Lock()
	defer e.mu.Unlock()
	a := createArea(e.cur.Rows, e.cur.Cols)
	e.cur.copyTo(a)
	return a
}

//IsAlive returns the state of the cell at row, col
func (e *Engine) IsAlive(row int, col int) (bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.cur.contains(row, col) {
		return false, outOfBounds(e.cur, row, col)
	}
	return bool(e.cur.Cells[row][col]), nil
}

//ToggleCell inverses the cell state at row, col
//editing is rejected with ErrRunning while the simulation is running
func (e *Engine) ToggleCell(row int, col int) error {
	e.mu.Lock()
	if e.state.Mode == Running {
		e.mu.Unlock()
		return errors.Wrapf(ErrRunning, "toggle cell (%d, %d)", row, col)
	}
	if !e.cur.contains(row, col) {
		e.mu.Unlock()
		return outOfBounds(e.cur, row, col)
	}
	e.cur.Cells[row][col] = !e.cur.Cells[row][col]
	if e.cur.Cells[row][col] {
		e.state.LiveCells++
	} else {
		e.state.LiveCells--
	}
	st := e.state
	e.mu.Unlock()
	e.notify(st)
	return nil
}

//Randomize makes every cell alive with probability 0.5
//does nothing while the simulation is running
func (e *Engine) Randomize() {
	e.mu.Lock()
	if e.state.Mode == Running {
		e.mu.Unlock()
		return
	}
	live := 0
	for r := range e.cur.Cells {
		for c := range e.cur.Cells[r] {
			e.cur.Cells[r][c] = e.rnd.Intn(2) == 1
			if e.cur.Cells[r][c] {
				live++
			}
		}
	}
	e.state.LiveCells = live
	st := e.state
	e.mu.Unlock()
	e.notify(st)
}

//Clear stops the simulation, kills all cells and resets the generation counter
func (e *Engine) Clear() {
	e.mu.Lock()
	e.stop()
	e.cur.reset()
	e.next.reset()
	e.state.Generation = 0
	e.state.LiveCells = 0
	e.state.IterationTime = 0
	st := e.state
	e.mu.Unlock()
	e.notify(st)
}

//Step computes exactly one generation, it works in any running state
func (e *Engine) Step() {
	e.mu.Lock()
	e.step()
	st := e.state
	e.mu.Unlock()
	e.notify(st)
}

//Start computes the generation and keeps computing one every Interval until Pause or Clear
//does nothing if the simulation is already running
func (e *Engine) Start() {
	e.mu.Lock()
	if e.state.Mode == Running {
		e.mu.Unlock()
		return
	}
	e.state.Mode = Running
	e.epoch++
	e.step()
	e.schedule()
	st := e.state
	e.mu.Unlock()
	e.notify(st)
}

//Pause stops the simulation, the pending tick is cancelled
//does nothing if the simulation is already stopped
func (e *Engine) Pause() {
	e.mu.Lock()
	if e.state.Mode != Running {
		e.mu.Unlock()
		return
	}
	e.stop()
	st := e.state
	e.mu.Unlock()
	e.notify(st)
}

//RegisterViewer registers the viewer - the engine will call the viewer when the state is changed
func (e *Engine) RegisterViewer(v Viewer) {
	e.mu.Lock()
	e.views = append(e.views, v)
	e.mu.Unlock()
	v.Register(e)
}

//StateCh returns the channel with the engine's status updates
func (e *Engine) StateCh() chan Status {
	return e.stateCh
}

//stop cancels the pending tick and switches to Stopped, e.mu must be held
func (e *Engine) stop() {
	if e.task != nil {
		e.task.Cancel()
		e.task = nil
	}
	e.epoch++
	e.state.Mode = Stopped
}

//schedule plans the next tick of the current epoch, e.mu must be held
func (e *Engine) schedule() {
	epoch := e.epoch
	e.task = e.sched.Schedule(e.options.Interval, func() {
		e.tick(epoch)
	})
}

//tick is the body of the running cycle
//it steps and reschedules itself only if the cycle it belongs to is still running
func (e *Engine) tick(epoch int) {
	e.mu.Lock()
	if e.state.Mode != Running || epoch != e.epoch {
		e.mu.Unlock()
		return
	}
	e.step()
	e.schedule()
	st := e.state
	e.mu.Unlock()
	e.notify(st)
}

//step calculates the next generation into the scratch buffer and swaps the buffers, e.mu must be held
func (e *Engine) step() {
	start := time.Now()
	e.state.LiveCells = e.cur.nextGeneration(e.next)
	e.cur, e.next = e.next, e.cur
	e.state.Generation++
	e.state.IterationTime = time.Since(start)
}

//notify refreshes the viewers and writes the status to stateCh, e.mu must not be held
func (e *Engine) notify(st Status) {
	e.mu.Lock()
	views := e.views
	e.mu.Unlock()
	for _, v := range views {
		v.Refresh()
	}
	if e.stateCh != nil {
		select {
		case e.stateCh <- st:
		default:
		}
	}
}

//WaitGeneration reads stateCh until the status with Generation >= n arrives
func WaitGeneration(ctx context.Context, stateCh <-chan Status, n int) (Status, error) {
	for {
		select {
		case <-ctx.Done():
			return Status{}, ctx.Err()
		case st, ok := <-stateCh:
			if !ok {
				return st, errors.New("state channel closed")
			}
			if st.Generation >= n {
				return st, nil
			}
		}
	}
}
