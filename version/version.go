// Package version carries release information for the parallel counter
// demonstration and checks the running toolchain against the oldest Go
// release the demos are exercised on.
package version

import (
	"runtime"
	"strings"

	"golang.org/x/mod/semver"
)

const (
	// Version is the current release of the demonstration module.
	Version = "0.1.0"

	// MinGoVersion is the oldest Go release the demonstrations are
	// exercised on, in semver form.
	MinGoVersion = "v1.22"
)

// Info describes the module and the runtime it is executing under.
type Info struct {
	// Version is the module release string.
	Version string

	// GoVersion is runtime.Version() of the running binary.
	GoVersion string

	// Supported indicates whether GoVersion meets MinGoVersion.
	Supported bool
}

// GetInfo returns version information for the running binary.
//
// Example:
//
//	info := version.GetInfo()
//	fmt.Printf("parcount %s (%s)\n", info.Version, info.GoVersion)
func GetInfo() Info {
	gv := runtime.Version()
	return Info{
		Version:   Version,
		GoVersion: gv,
		Supported: SupportedRuntime(gv),
	}
}

// SupportedRuntime reports whether goVersion, in runtime.Version form
// such as "go1.24.1", is at least MinGoVersion.
//
// Development toolchains ("devel +abcdef") do not parse as a release and
// are assumed supported.
func SupportedRuntime(goVersion string) bool {
	v := "v" + strings.TrimPrefix(goVersion, "go")
	if !semver.IsValid(v) {
		return true
	}
	return semver.Compare(v, MinGoVersion) >= 0
}
