package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/integrii/flaggy"
	"golang.org/x/sync/errgroup"

	"sparselife/src/pattern"
	"sparselife/src/sim"
	"sparselife/src/view"
)

const defaultConfigFile = "config.json"

type EnvOptions struct {
	interactive bool
	randomData  bool
}

func main() {
	eo, so := initOptions()

	var stateCh chan sim.Status

	if !eo.interactive {
		stateCh = make(chan sim.Status, 10) //the buffered channel for getting the simulation status
	}

	s := sim.NewSimulator(so, stateCh)

	if eo.randomData {
		s.SettleRandom()
	} else if err := s.SettlePattern(so.Pattern); err != nil {
		flaggy.ShowHelpAndExit(err.Error())
	}

	if eo.interactive {
		v := view.NewConsoleUI()
		s.RegisterViewer(v)
		v.Start()
		s.Close()
		return
	}

	runHeadless(s, stateCh)
	s.Close()
	close(stateCh)
}

//runHeadless drives the simulation to completion on stdout
//one goroutine consumes status updates, another turns SIGINT/SIGTERM into
//a Stop command so an interrupted run still drains cleanly
func runHeadless(s *sim.Simulator, stateCh chan sim.Status) {
	out := view.NewConsoleOut()
	s.RegisterViewer(out)
	out.Start()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	s.Run()

	g.Go(func() error {
		defer stop()
		for st := range stateCh {
			if st.RunningMode == sim.RunningStateFinished {
				return nil
			}
			//a Manual status only means "stopped" once a stop was requested;
			//settling commands before Run also report Manual
			if st.RunningMode == sim.RunningStateManual && ctx.Err() != nil {
				return nil
			}
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		s.Stop()
		return nil
	})

	if err := g.Wait(); err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
}

func initOptions() (eo *EnvOptions, so *sim.Options) {

	o, err := sim.LoadOptions(defaultConfigFile)
	if err != nil {
		//no config file is fine, the defaults apply
		o = sim.DefaultOptions()
	}

	eo = &EnvOptions{}
	flaggy.DefaultParser.ShowHelpOnUnexpected = true
	flaggy.Duration(&o.Interval, "i", "interval", "Simulation speed (interval between the steps) in format the number with 'ms' suffix, for example 150ms")
	flaggy.Int(&o.MaxSteps, "s", "maxSteps", "Limit the simulation to maxSteps generations (0 - unlimited)")
	flaggy.String(&o.Pattern, "p", "pattern", "Seeding pattern ["+strings.Join(pattern.Names(), "|")+"]")
	flaggy.Int(&o.ViewportWidth, "x", "width", "Width of the random seeding area")
	flaggy.Int(&o.ViewportHeight, "y", "height", "Height of the random seeding area")
	flaggy.Bool(&eo.interactive, "n", "interactive", "Start interactive mode")
	flaggy.Bool(&eo.randomData, "r", "random", "Settle with random data")

	flaggy.Parse()

	if !eo.randomData {
		if _, err := pattern.Lookup(o.Pattern); err != nil {
			flaggy.ShowHelpAndExit("unknown pattern")
		}
	}

	return eo, &o
}
