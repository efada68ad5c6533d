package main

import (
	"flag"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/mitchellh/cli"

	"github.com/kolkov/parcount/counter"
	"github.com/kolkov/parcount/runner"
)

// mutexCommand runs the synchronized variant: every increment happens
// inside the guard's critical section, so the final counters are exact.
type mutexCommand struct {
	ui cli.Ui
}

func (c *mutexCommand) Synopsis() string {
	return "Run the guard-protected counter demonstration"
}

func (c *mutexCommand) Help() string {
	return strings.TrimSpace(`
Usage: parcount mutex [options]

  Spawns workers that each increment every shared counter inside the
  guard's critical section. The guard admits one holder at a time, so no
  update is lost: every counter finishes at workers × iterations.

Options:

  -workers=N     Number of workers to spawn (default 5).
  -iterations=N  Increments per worker (default 100000).
  -verbose       Log worker lifecycle events.
`) + "\n"
}

func (c *mutexCommand) Run(args []string) int {
	f := flag.NewFlagSet("mutex", flag.ContinueOnError)
	workers := f.Int("workers", runner.DefaultWorkers, "")
	iterations := f.Int("iterations", runner.DefaultIterations, "")
	verbose := f.Bool("verbose", false, "")
	if err := f.Parse(args); err != nil {
		c.ui.Error(c.Help())
		return 1
	}

	r, err := runner.New(
		runner.WithWorkers(*workers),
		runner.WithIterations(*iterations),
		runner.WithLogger(demoLogger(*verbose)),
	)
	if err != nil {
		c.ui.Error(err.Error())
		return 1
	}

	c.ui.Output(fmt.Sprintf("spawning %d workers, %d guarded increments each",
		r.Workers(), r.Iterations()))

	shared, elapsed, err := r.RunTimed()
	if err != nil {
		c.ui.Error(fmt.Sprintf("run failed: %v", err))
		return 1
	}

	expected := r.Expected()
	for i := 0; i < counter.Width; i++ {
		c.ui.Output(fmt.Sprintf("counter %d: %8d", i, shared.Value(i)))
	}
	c.ui.Output(fmt.Sprintf("elapsed:   %v", elapsed))

	for i := 0; i < counter.Width; i++ {
		if got := shared.Value(i); got != expected {
			c.ui.Error(color.RedString("✗ counter %d is %d, want %d: this must never happen under the guard",
				i, got, expected))
			return 1
		}
	}
	c.ui.Output(color.GreenString("✓ every counter is exactly %d (workers × iterations)", expected))
	return 0
}
