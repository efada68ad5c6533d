// Package main implements the parcount CLI.
//
// parcount walks through the parallel counter demonstration as a
// sequence of subcommands, in tutorial order:
//
//	parcount spawn      # goroutine spawning and join-all
//	parcount timing     # parallel sleepers overlap in time
//	parcount race       # unsynchronized counters lose updates
//	parcount mutex      # guard-protected counters are exact
//	parcount version    # release and runtime information
//
// Worker and iteration counts default to the fixed values of the
// original tutorial programs and can be overridden per command.
package main

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"

	"github.com/kolkov/parcount/version"
)

func main() {
	os.Exit(realMain(os.Args[1:]))
}

func realMain(args []string) int {
	ui := &cli.BasicUi{
		Reader:      os.Stdin,
		Writer:      os.Stdout,
		ErrorWriter: os.Stderr,
	}
	return runCLI(ui, args)
}

func runCLI(ui cli.Ui, args []string) int {
	c := cli.NewCLI("parcount", version.Version)
	c.Args = args
	c.Commands = map[string]cli.CommandFactory{
		"spawn": func() (cli.Command, error) {
			return &spawnCommand{ui: ui}, nil
		},
		"timing": func() (cli.Command, error) {
			return &timingCommand{ui: ui}, nil
		},
		"race": func() (cli.Command, error) {
			return &raceCommand{ui: ui}, nil
		},
		"mutex": func() (cli.Command, error) {
			return &mutexCommand{ui: ui}, nil
		},
		"version": func() (cli.Command, error) {
			return &versionCommand{ui: ui}, nil
		},
	}

	exitCode, err := c.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error executing CLI: %v\n", err)
		return 1
	}
	return exitCode
}

// demoLogger builds the logger the demo commands hand to the runner.
// Worker lifecycle events are logged at debug, so they only appear with
// -verbose; everything user-facing goes through the ui instead.
func demoLogger(verbose bool) hclog.Logger {
	level := hclog.Warn
	if verbose {
		level = hclog.Debug
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:  "parcount",
		Level: level,
	})
}
