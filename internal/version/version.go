// Package version holds build information injected with ldflags, e.g.
//
//	go build -ldflags "-X github.com/jmylchreest/imagecolors/internal/version.Version=1.0.0 \
//	  -X github.com/jmylchreest/imagecolors/internal/version.Commit=$(git rev-parse HEAD) \
//	  -X github.com/jmylchreest/imagecolors/internal/version.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
package version

import (
	"fmt"
	"runtime"
)

var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// String returns the full version line printed by the version command.
func String() string {
	platform := runtime.GOOS + "/" + runtime.GOARCH
	if Commit != "unknown" && Date != "unknown" {
		return fmt.Sprintf("imagecolors version %s (commit: %s, built: %s, %s, %s)",
			Version, shortCommit(Commit), Date, runtime.Version(), platform)
	}
	return fmt.Sprintf("imagecolors version %s (%s, %s)", Version, runtime.Version(), platform)
}

// Short returns the bare version, used by --version.
func Short() string {
	return Version
}

func shortCommit(commit string) string {
	if len(commit) > 8 {
		return commit[:8]
	}
	return commit
}
