// Package buildinfo carries the version stamped in by the release build:
//
//	go build -ldflags "-X ledsim/internal/buildinfo.Version=v1.2.0 -X ledsim/internal/buildinfo.Commit=$(git rev-parse --short HEAD)"
package buildinfo

import "fmt"

var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Short returns the version, falling back to the commit for untagged builds.
func Short() string {
	switch {
	case Version != "" && Version != "dev":
		return Version
	case Commit != "" && Commit != "unknown":
		return Commit
	}
	return "dev"
}

// String describes the build for startup logs.
func String() string {
	if Date == "" || Date == "unknown" {
		return Short()
	}
	return fmt.Sprintf("%s (built %s)", Short(), Date)
}
