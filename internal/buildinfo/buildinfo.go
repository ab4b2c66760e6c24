// Package buildinfo carries version metadata stamped in at link time.
package buildinfo

import "fmt"

// Set via -ldflags "-X github.com/marcodamonte/concurrency/exercises/internal/buildinfo.Version=..."
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// String is the one-line version banner printed by `exercises version`.
func String() string {
	return fmt.Sprintf("exercises %s (commit=%s, date=%s)", Version, Commit, Date)
}
