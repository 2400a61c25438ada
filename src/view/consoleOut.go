package view

import (
	"fmt"
	"time"

	"sparselife/src/sim"
)

//ConsoleOut is the headless viewer: plain progress lines on stdout
type ConsoleOut struct {
	s         *sim.Simulator
	startTime time.Time
}

func NewConsoleOut() *ConsoleOut {
	return &ConsoleOut{}
}

func (c *ConsoleOut) Refresh() {
	st := c.s.Status()
	if st.RunningMode == sim.RunningStateFinished {
		totalTime := time.Since(c.startTime).Round(time.Millisecond)
		fmt.Println("\nFinished:")
		fmt.Printf("  Last generation: %v\n", st.Generation)
		fmt.Printf("  Live cells: %v\n", st.LiveCells)
		fmt.Printf("  Total time: %v\n", totalTime)
	} else if st.RunningMode == sim.RunningStateRun {
		if st.Generation%10 == 0 {
			fmt.Printf("  Generations done: %v\n", st.Generation)
		}
	}
}

func (c *ConsoleOut) Register(s *sim.Simulator) {
	c.s = s
	o := c.s.Options()
	fmt.Println("Running configuration:")
	fmt.Printf("  Interval: %v\n", o.Interval)
	fmt.Printf("  Max generations: %v\n", o.MaxSteps)
	fmt.Printf("  Pattern: %v\n", o.Pattern)
}

func (c *ConsoleOut) Start() {
	c.startTime = time.Now()
	fmt.Println("\nSimulation started...")
}
