package main

import (
	"flag"
	"fmt"
	"strings"

	"github.com/mitchellh/cli"

	"github.com/kolkov/parcount/runner"
)

// spawnCommand demonstrates goroutine spawning: launch a fixed set of
// workers that each announce themselves, then join all of them.
type spawnCommand struct {
	ui cli.Ui
}

func (c *spawnCommand) Synopsis() string {
	return "Spawn a set of workers and join them all"
}

func (c *spawnCommand) Help() string {
	return strings.TrimSpace(`
Usage: parcount spawn [options]

  Launches a fixed set of independently scheduled workers that each
  announce themselves, then blocks until every one has terminated.
  The announcements interleave in whatever order the scheduler picks.

Options:

  -workers=N  Number of workers to spawn (default 5).
`) + "\n"
}

func (c *spawnCommand) Run(args []string) int {
	f := flag.NewFlagSet("spawn", flag.ContinueOnError)
	workers := f.Int("workers", runner.DefaultWorkers, "")
	if err := f.Parse(args); err != nil {
		c.ui.Error(c.Help())
		return 1
	}

	// Workers print concurrently; ConcurrentUi serializes the writes.
	cui := &cli.ConcurrentUi{Ui: c.ui}

	c.ui.Output(fmt.Sprintf("spawning %d workers", *workers))
	if err := runner.Spawn(*workers, func(id int) {
		cui.Output(fmt.Sprintf("worker %d: hello", id))
	}); err != nil {
		c.ui.Error(err.Error())
		return 1
	}
	c.ui.Output("all workers joined")
	return 0
}
