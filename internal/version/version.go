// Package version reports build information injected with -ldflags.
package version

import "fmt"

// These variables are set at build time using ldflags
var (
	Version   = "dev"
	GitCommit = "none"
	BuildDate = "unknown"
)

// String returns the version, followed by the short commit and build date when known.
func String() string {
	s := Version
	if GitCommit != "" && GitCommit != "none" {
		commit := GitCommit
		if len(commit) > 8 {
			commit = commit[:8]
		}
		s += fmt.Sprintf(" (commit: %s)", commit)
	}
	if BuildDate != "" && BuildDate != "unknown" {
		s += ", built: " + BuildDate
	}
	return s
}
