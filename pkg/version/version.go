// Package version identifies the running fleetd build in logs, the health
// endpoint and CLI output.
package version

import (
	"fmt"
	"runtime/debug"
)

// Release is the tagged version, stamped at build time via
//
//	-ldflags "-X github.com/fleettools/fleetd/pkg/version.Release=v0.3.0"
//
// Untagged builds report the dev placeholder.
var Release = "v0.0.0-dev"

// Commit and Dirty come from the VCS stamp Go embeds when the binary is
// built inside a git checkout. Test binaries and source-less builds carry
// neither.
var (
	Commit = "unknown"
	Dirty  bool
)

func init() {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			if s.Value != "" {
				Commit = shorten(s.Value)
			}
		case "vcs.modified":
			Dirty = s.Value == "true"
		}
	}
}

func shorten(rev string) string {
	if len(rev) > 12 {
		return rev[:12]
	}
	return rev
}

// Full renders the build identifier, e.g. "fleetd v0.3.0 (1a2b3c4d5e6f)".
// A dirty working tree is marked so bug reports can be traced to unreleased
// changes.
func Full() string {
	id := fmt.Sprintf("fleetd %s (%s)", Release, Commit)
	if Dirty {
		id += "+dirty"
	}
	return id
}
