// Package version holds build metadata for the discovery binary,
// injected via ldflags and reported by the serve command on startup.
package version

//nolint:revive // Set via ldflags at build time.
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)
