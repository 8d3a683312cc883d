package version

import (
	"runtime/debug"
)

var (
	// These will be set via -ldflags during build
	GitCommit string
	BuildTime string
)

// Info returns a struct containing all version information
type Info struct {
	GitCommit string           `json:"gitCommit,omitempty"`
	BuildTime string           `json:"buildTime,omitempty"`
	BuildInfo *debug.BuildInfo `json:"buildInfo,omitempty"`
}

// Get returns the version information
func Get() Info {
	ret := Info{
		GitCommit: GitCommit,
		BuildTime: BuildTime,
	}
	if buildInfo, ok := debug.ReadBuildInfo(); ok {
		ret.BuildInfo = buildInfo
	}
	return ret
}
