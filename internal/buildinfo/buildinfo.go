// Package buildinfo carries the version stamped in at build time.
package buildinfo

// Version, Commit, and Date are set via -ldflags.
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Short returns a compact identifier for the version flag and logs.
func Short() string {
	if Version != "" && Version != "dev" {
		return Version
	}
	if Commit != "" && Commit != "unknown" {
		return Commit
	}
	return "dev"
}

// Long returns the full build description.
func Long() string {
	return Short() + " (commit " + Commit + ", built " + Date + ")"
}
