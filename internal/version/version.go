// Package version reports the cidemo build: the embedded release version plus
// the commit and build date stamped in by the CI pipeline.
package version

import (
	_ "embed"
	"fmt"
	"runtime/debug"
	"strings"
)

//go:embed VERSION
var versionFile string

// Set by the pipeline:
//
//	go build -ldflags "-X github.com/leefowlercu/ci-demo/internal/version.gitCommit=$(git rev-parse --short HEAD) \
//	  -X github.com/leefowlercu/ci-demo/internal/version.buildDate=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
var (
	gitCommit string
	buildDate string
)

const unknown = "unknown"

// Info describes a build.
type Info struct {
	Version   string
	GitCommit string
	BuildDate string
}

// String formats Info as three labelled lines.
func (i Info) String() string {
	return fmt.Sprintf("Version:    %s\nGit Commit: %s\nBuild Date: %s",
		i.Version, i.GitCommit, i.BuildDate)
}

// Get returns the build information of the running binary.
func Get() Info {
	return Info{
		Version:   Version(),
		GitCommit: commit(gitCommit, readBuildInfo),
		BuildDate: orUnknown(buildDate),
	}
}

// Version returns the embedded release version.
func Version() string {
	return strings.TrimSpace(versionFile)
}

// commit prefers the linker-injected value, then VCS stamping from the Go
// toolchain, then "unknown".
func commit(injected string, vcs func() (string, bool)) string {
	if injected != "" {
		return injected
	}

	revision, dirty := vcs()
	switch {
	case revision == "":
		return unknown
	case dirty:
		return revision + "-dirty"
	default:
		return revision
	}
}

func orUnknown(s string) string {
	if s == "" {
		return unknown
	}
	return s
}

// readBuildInfo returns the short VCS revision and whether the tree was modified.
func readBuildInfo() (revision string, dirty bool) {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "", false
	}

	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			revision = setting.Value
			if len(revision) > 7 {
				revision = revision[:7]
			}
		case "vcs.modified":
			dirty = setting.Value == "true"
		}
	}

	return revision, dirty
}
