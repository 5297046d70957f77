// Package versions reports build information stamped in with -ldflags, for example:
//
//	go build -ldflags "-X github.com/schoolgis/schoolsync/internal/versions.Version=v1.2.0"
package versions

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Build information. Populated at build-time.
var (
	Version   = "dev"
	Commit    = ""
	BuildDate = ""
)

// Info is the build information of the running binary.
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildDate string `json:"build_date"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

// GetVersionInfo returns the stamped build information. Commit and build date
// fall back to the VCS settings recorded by the Go toolchain.
func GetVersionInfo() Info {
	info := Info{
		Version:   Version,
		Commit:    Commit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}

	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, s := range bi.Settings {
			switch s.Key {
			case "vcs.revision":
				if info.Commit == "" {
					info.Commit = s.Value
				}
			case "vcs.time":
				if info.BuildDate == "" {
					info.BuildDate = s.Value
				}
			}
		}
	}

	if info.Commit == "" {
		info.Commit = "unknown"
	}
	if info.BuildDate == "" {
		info.BuildDate = "unknown"
	}
	return info
}

// UserAgent is sent to upstream services.
func UserAgent() string {
	return "schoolsync/" + Version
}
