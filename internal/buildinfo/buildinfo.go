// Package buildinfo carries the identity stamped in at link time. On the
// device it shows up in the boot log line; on the host also in the window
// title.
package buildinfo

// Set via -ldflags "-X quartz/internal/buildinfo.Version=...".
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Short returns the most specific identifier available.
func Short() string {
	if Version != "" && Version != "dev" {
		return Version
	}
	if Commit != "" && Commit != "unknown" {
		return Commit
	}
	return "dev"
}
