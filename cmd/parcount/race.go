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

// raceCommand runs the unsynchronized variant: workers increment the
// shared counters with no guard, so updates are lost nondeterministically.
type raceCommand struct {
	ui cli.Ui
}

func (c *raceCommand) Synopsis() string {
	return "Run the unsynchronized (racy) counter demonstration"
}

func (c *raceCommand) Help() string {
	return strings.TrimSpace(`
Usage: parcount race [options]

  Spawns workers that each increment every shared counter with NO
  synchronization. The increments are plain read-modify-write sequences,
  so concurrent workers overwrite each other and updates are lost.
  The final values differ from run to run; that is the demonstration.

Options:

  -workers=N     Number of workers to spawn (default 5).
  -iterations=N  Increments per worker (default 100000).
  -verbose       Log worker lifecycle events.
`) + "\n"
}

func (c *raceCommand) Run(args []string) int {
	f := flag.NewFlagSet("race", flag.ContinueOnError)
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

	c.ui.Output(fmt.Sprintf("spawning %d workers, %d unguarded increments each",
		r.Workers(), r.Iterations()))

	shared := r.RunUnsynced()
	expected := r.Expected()

	var lost int64
	for i := 0; i < counter.Width; i++ {
		got := shared.Value(i)
		c.ui.Output(fmt.Sprintf("counter %d: %8d  (want %d, lost %d)",
			i, got, expected, expected-got))
		lost += expected - got
	}

	if lost > 0 {
		c.ui.Output(color.RedString("✗ lost %d updates across %d counters: unsynchronized increments race",
			lost, counter.Width))
	} else {
		c.ui.Output(color.YellowString("no updates lost this run. Rerun it: the interleaving is nondeterministic"))
	}
	return 0
}
