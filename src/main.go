package main

import (
	"context"
	"fmt"
	"lifegrid/src/life"
	"lifegrid/src/view"
	"log"
	"os"
	"os/signal"
	"strings"

	"github.com/integrii/flaggy"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

const progressEvery = 10

type EnvOptions struct {
	interactive bool
	randomData  bool
	template    string
	steps       int
}

func main() {
	eo, lo := initOptions()

	var stateCh chan life.Status

	if !eo.interactive {
		stateCh = make(chan life.Status, 10) //the buffered channel to getting the engine status
	}

	e, err := life.NewEngine(lo, stateCh)
	if err != nil {
		log.Fatalln(err)
	}

	if eo.randomData {
		e.Randomize()
	} else if eo.template != "" {
		if err := e.SettleTemplate(eo.template); err != nil {
			log.Fatalln(err)
		}
	}

	if eo.interactive {
		v := view.NewViewTerminal()
		e.RegisterViewer(v)
		v.Start()
		e.Pause()
		return
	}

	if err := runHeadless(e, eo.steps); err != nil {
		log.Fatalln(err)
	}
}

//runHeadless runs the simulation until steps generations are done or the process is interrupted
func runHeadless(e *life.Engine, steps int) error {
	out := view.NewConsoleOut(progressEvery)
	e.RegisterViewer(out)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer cancel()
		_, err := life.WaitGeneration(ctx, e.StateCh(), steps)
		if errors.Is(err, context.Canceled) {
			fmt.Println("\nInterrupted")
			return nil
		}
		return errors.Wrap(err, "waiting for the generations")
	})
	g.Go(func() error {
		<-ctx.Done()
		e.Pause()
		return nil
	})

	out.Start()
	e.Start()
	err := g.Wait()
	out.Finish()
	return err
}

func initOptions() (eo *EnvOptions, lo *life.Options) {

	o := life.DefaultOptions
	lo = &o
	eo = &EnvOptions{steps: 1000}

	flaggy.DefaultParser.ShowHelpOnUnexpected = true
	flaggy.Int(&lo.Rows, "y", "rows", "Number of rows of the grid")
	flaggy.Int(&lo.Cols, "x", "cols", "Number of columns of the grid")
	flaggy.Duration(&lo.Interval, "i", "interval", "Simulation speed (interval between the generations) in format the number with 'ms' suffix, for example 150ms")
	flaggy.Int64(&lo.Seed, "", "seed", "Seed of the random data, 0 seeds from the clock")
	flaggy.Int(&eo.steps, "s", "steps", "Stop the headless simulation after the number of generations")
	flaggy.Bool(&eo.interactive, "n", "interactive", "Start interactive mode")
	flaggy.Bool(&eo.randomData, "r", "random", "Settle with random data")
	flaggy.String(&eo.template, "t", "template", "Settle with the template ["+strings.Join(life.TemplateNames(), "|")+"]")

	flaggy.Parse()

	if err := validateOptions(eo, lo); err != nil {
		flaggy.ShowHelpAndExit(err.Error())
	}

	return
}

//validateOptions rejects the values the engine can't run with
func validateOptions(eo *EnvOptions, lo *life.Options) error {
	if lo.Rows <= 0 || lo.Cols <= 0 {
		return errors.New("rows and cols must be positive")
	}
	if lo.Interval <= 0 {
		return errors.New("interval must be positive")
	}
	if !eo.interactive && eo.steps <= 0 {
		return errors.New("steps must be positive")
	}
	return nil
}
