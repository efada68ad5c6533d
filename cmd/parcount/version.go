package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/mitchellh/cli"

	"github.com/kolkov/parcount/version"
)

type versionCommand struct {
	ui cli.Ui
}

func (c *versionCommand) Synopsis() string {
	return "Show version and runtime information"
}

func (c *versionCommand) Help() string {
	return strings.TrimSpace(`
Usage: parcount version

  Prints the module release and the Go runtime it was built with.
`) + "\n"
}

func (c *versionCommand) Run(_ []string) int {
	info := version.GetInfo()
	c.ui.Output(fmt.Sprintf("parcount %s (%s)", info.Version, info.GoVersion))
	if !info.Supported {
		c.ui.Warn(color.YellowString("warning: built with %s, older than the supported minimum %s",
			info.GoVersion, version.MinGoVersion))
	}
	return 0
}
