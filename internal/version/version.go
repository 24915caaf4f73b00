// Package version holds build information injected with -ldflags.
package version

import (
	"fmt"
	"runtime"
)

// Set at build time, e.g.
//
//	go build -ldflags "-X github.com/longkey1/agentchat/internal/version.Version=v0.1.0"
var (
	Version   = "dev"
	CommitSHA = "unknown"
	BuildTime = "unknown"
)

// Short returns the version number only.
func Short() string {
	return Version
}

// Info returns the full multi-line version information.
func Info() string {
	return fmt.Sprintf("Version:    %s\nCommit:     %s\nBuild time: %s\nGo version: %s",
		Version, CommitSHA, BuildTime, runtime.Version())
}
