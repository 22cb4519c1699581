// Package version reports which hemam-theme build is running.
//
// Release builds set the variables below with -ldflags -X. Builds made with
// "go install" or "go build" leave them at their defaults, in which case the
// module version and VCS stamp embedded by the toolchain are used instead.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

const unknown = "unknown"

var (
	// Version is the release version, e.g. "1.4.0".
	Version = "dev"
	// Commit is the full git revision.
	Commit = unknown
	// Date is the build time in RFC3339.
	Date = unknown
	// GoVersion is the toolchain that built the binary.
	GoVersion = runtime.Version()
)

// Info is the resolved build description.
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Date      string `json:"date"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

// GetInfo resolves the build description, preferring ldflags values.
func GetInfo() Info {
	info := Info{
		Version:   Version,
		Commit:    Commit,
		Date:      Date,
		GoVersion: GoVersion,
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
	if bi, ok := debug.ReadBuildInfo(); ok {
		info = withBuildInfo(info, bi)
	}
	return info
}

// withBuildInfo fills the fields ldflags left at their defaults.
func withBuildInfo(info Info, bi *debug.BuildInfo) Info {
	if info.Version == "dev" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		info.Version = bi.Main.Version
	}

	var stamped, dirty bool
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if info.Commit == unknown {
				info.Commit, stamped = s.Value, true
			}
		case "vcs.time":
			if info.Date == unknown {
				info.Date = s.Value
			}
		case "vcs.modified":
			dirty = s.Value == "true"
		}
	}
	if stamped && dirty {
		info.Commit += "-dirty"
	}
	return info
}

// String is the one-line form printed by "hemam-theme version".
func String() string {
	return format(GetInfo())
}

func format(info Info) string {
	if info.Commit == unknown || info.Date == unknown {
		return fmt.Sprintf("hemam-theme version %s (%s, %s)", info.Version, info.GoVersion, info.Platform)
	}
	return fmt.Sprintf("hemam-theme version %s (commit: %s, built: %s, %s, %s)",
		info.Version, shortCommit(info.Commit), info.Date, info.GoVersion, info.Platform)
}

// Short is the bare version used by --version.
func Short() string {
	return GetInfo().Version
}

func shortCommit(c string) string {
	if len(c) > 8 {
		return c[:8]
	}
	return c
}
