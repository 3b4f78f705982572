package app

import (
	"fmt"
	"runtime/debug"
)

// Overridden with -ldflags "-X github.com/cocodas/prier-backend/internal/app.Version=v1.2.0".
var (
	Version   = "dev"
	Commit    = ""
	BuildTime = ""
)

// BuildVersion describes the running binary for the startup log. Commit and
// build time fall back to the VCS stamp the go tool embeds.
func BuildVersion() string {
	commit, built := Commit, BuildTime
	if commit == "" || built == "" {
		vcsCommit, vcsTime := vcsStamp()
		if commit == "" {
			commit = vcsCommit
		}
		if built == "" {
			built = vcsTime
		}
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, commit, built)
}

func vcsStamp() (revision, at string) {
	revision, at = "unknown", "unknown"
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return revision, at
	}
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			revision = s.Value
			if len(revision) > 12 {
				revision = revision[:12]
			}
		case "vcs.time":
			at = s.Value
		}
	}
	return revision, at
}
