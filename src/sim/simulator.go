package sim

import (
	"sync"
	"time"

	"sparselife/src/life"
	"sparselife/src/pattern"
)

//RunningState is the simulator's scheduling state at a concrete moment
type RunningState int

const (
	RunningStateManual   RunningState = 0x0
	RunningStateStep     RunningState = 0x1
	RunningStateRun      RunningState = 0x2
	RunningStateFinished RunningState = 0x3
)

//Status represents the state of the simulation at a concrete moment
type Status struct {
	Generation  int
	LiveCells   int
	StepTime    time.Duration
	RunningMode RunningState
}

//Viewer is the interface to any viewer - the object who can display
//simulation data or control the simulator
type Viewer interface {
	Refresh()
	Register(s *Simulator)
	Start()
}

//Simulator is the driving loop around the pure tick engine
//it owns the current immutable world snapshot and replaces it wholesale on
//each step; scheduling, commands and viewers all live here, the world model
//knows nothing about them
type Simulator struct {
	options Options
	state   struct {
		Status
		sync.Mutex
	}
	world struct {
		life.World
		sync.Mutex
	}
	stateCh   chan Status
	views     []Viewer
	controlCh chan func()
	closeCh   chan bool
}

//NewSimulator creates a Simulator around an empty generation-zero world
//stateCh may be nil when no headless observer needs status updates
func NewSimulator(o *Options, stateCh chan Status) *Simulator {
	if o == nil {
		def := DefaultOptions()
		o = &def
	}

	s := Simulator{
		options:   *o,
		controlCh: make(chan func(), 1),
		closeCh:   make(chan bool, 1),
		stateCh:   stateCh,
	}
	s.world.World = life.NewWorld(nil)
	s.refreshView()
	go s.mainLoop()
	return &s
}

//Settle merges the given cells into the current world
func (s *Simulator) Settle(cells []life.Cell) {
	s.world.Lock()
	s.world.World = s.world.World.WithCells(cells...)
	pop := s.world.World.Population()
	s.world.Unlock()
	s.setLiveCells(pop)
	s.refreshView()
}

//SettlePattern places the named built-in pattern at the origin
func (s *Simulator) SettlePattern(name string) error {
	entry, err := pattern.Lookup(name)
	if err != nil {
		return err
	}
	s.Settle(entry.Build(life.Location{}))
	return nil
}

//SettleRandom populates the configured viewport rectangle with random cells
func (s *Simulator) SettleRandom() {
	if s.state.RunningMode == RunningStateManual || s.state.RunningMode == RunningStateFinished {
		s.controlCh <- s.clear
		s.controlCh <- func() {
			s.Settle(pattern.Random(
				s.options.ViewportWidth, s.options.ViewportHeight,
				life.Location{}, s.options.Density, time.Now().UnixNano()))
		}
	}
}

//ToggleCell inverses the cell state at the given location
func (s *Simulator) ToggleCell(loc life.Location) {
	s.world.Lock()
	c := s.world.World.CellAt(loc)
	if c.Alive {
		c = c.Kill()
	} else {
		c = c.Revive()
	}
	s.world.World = s.world.World.WithCells(c)
	pop := s.world.World.Population()
	s.world.Unlock()
	s.setLiveCells(pop)
	s.refreshView()
}

//RegisterViewer registers the viewer - the simulator will call the viewer
//when the state is changed
func (s *Simulator) RegisterViewer(v Viewer) {
	s.views = append(s.views, v)
	v.Register(s)
}

//StateCh returns the channel with the simulator's status updates
func (s *Simulator) StateCh() chan Status {
	return s.stateCh
}

//Status returns the current status represented by the Status struct
func (s *Simulator) Status() Status {
	s.state.Lock()
	defer s.state.Unlock()
	return s.state.Status
}

//Options returns the current configuration represented by the Options struct
func (s *Simulator) Options() Options {
	return s.options
}

//Snapshot returns the current world
//the world is an immutable value, so the caller may keep and query it
//without any coordination with further steps
func (s *Simulator) Snapshot() life.World {
	s.world.Lock()
	defer s.world.Unlock()
	return s.world.World
}

//Run starts the simulation, returns immediately
func (s *Simulator) Run() {
	s.controlCh <- s.run
}

//Stop stops the simulation, returns immediately
//the Status struct will be written to the stateCh on finish
func (s *Simulator) Stop() {
	s.controlCh <- s.stop
}

//Step does one simulation step, returns immediately
//the Status struct will be written to the stateCh on start and on finish
func (s *Simulator) Step() {
	s.controlCh <- s.step
}

//Clear resets to an empty generation-zero world, returns immediately
//the Status struct will be written to the stateCh on finish
func (s *Simulator) Clear() {
	s.controlCh <- s.clear
}

//Close stops the main loop and closes the control channels, returns immediately
func (s *Simulator) Close() {
	s.closeCh <- true
}

//mainLoop - the main cycle, should start as a goroutine
//waits for a command and executes it
func (s *Simulator) mainLoop() {
	var c = false
	for !c {
		select {
		case cmd := <-s.controlCh:
			cmd()
		case c = <-s.closeCh:

		}
	}
	close(s.closeCh)
	close(s.controlCh)
}

//switchRunningState switches the simulator to the given RunningState
//also writes the new state to the stateCh to signal upper control software
func (s *Simulator) switchRunningState(to RunningState) {
	s.state.Lock()
	s.state.RunningMode = to
	st := s.state.Status
	s.state.Unlock()
	if s.stateCh != nil {
		s.stateCh <- st
	}
}

//run starts the simulation cycle
//the cycle stops on Stop() or when the boundary conditions are reached:
//max steps, extinction or a still life (unchanged living set)
func (s *Simulator) run() {
	go func() {
		s.switchRunningState(RunningStateRun)
		skipped := 0
		done := make(chan bool)
		defer close(done)
		for {
			mode := s.Status().RunningMode
			if mode != RunningStateRun && mode != RunningStateStep {
				break
			}
			if skipped > s.options.MaxSkippedTicks {
				s.switchRunningState(RunningStateFinished)
				break
			}
			//skip the tick if the previous step is still being calculated
			if mode != RunningStateStep {
				skipped = 0
				s.controlCh <- func() {
					s.step()
					done <- true
				}
				<-done
			} else {
				skipped++
			}
			if s.options.Interval > 0 {
				time.Sleep(s.options.Interval)
			}
		}
	}()
}

//stop stops the simulation cycle
func (s *Simulator) stop() {
	if s.Status().RunningMode == RunningStateRun {
		s.switchRunningState(RunningStateManual)
	}
}

//step advances the world by one generation
func (s *Simulator) step() {
	finished := false
	rm := s.Status().RunningMode
	maxSteps := s.options.MaxSteps
	defer func() {
		if finished {
			s.switchRunningState(RunningStateFinished)
		} else {
			s.switchRunningState(rm)
		}
		s.refreshView()
	}()

	if maxSteps != 0 && s.Status().Generation >= maxSteps {
		finished = true
		return
	}
	s.switchRunningState(RunningStateStep)
	isAlive, changed := s.nextGeneration()
	if !isAlive || !changed {
		finished = true
	}
}

//nextGeneration replaces the world with its tick successor
func (s *Simulator) nextGeneration() (hasLiveCells bool, changed bool) {
	s.world.Lock()
	defer s.world.Unlock()
	start := time.Now()
	next := life.Tick(s.world.World)
	changed = !life.SameLiving(s.world.World, next)
	s.world.World = next

	s.state.Lock()
	s.state.Generation = next.Generation()
	s.state.LiveCells = next.Population()
	s.state.StepTime = time.Since(start)
	s.state.Unlock()
	return next.Population() > 0, changed
}

//clear resets the simulation data and all counters
func (s *Simulator) clear() {
	s.world.Lock()
	s.world.World = life.NewWorld(nil)
	s.world.Unlock()

	s.state.Lock()
	s.state.Generation = 0
	s.state.LiveCells = 0
	s.state.StepTime = 0
	s.state.RunningMode = RunningStateManual
	s.state.Unlock()

	s.switchRunningState(RunningStateManual)
	s.refreshView()
}

//setLiveCells updates the live cell counter after a settle or toggle
func (s *Simulator) setLiveCells(n int) {
	s.state.Lock()
	s.state.LiveCells = n
	s.state.Unlock()
}

//refreshView calls the Refresh event for all registered views
func (s *Simulator) refreshView() {
	for _, v := range s.views {
		v.Refresh()
	}
}
