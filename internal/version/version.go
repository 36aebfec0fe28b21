// Package version records build metadata, stamped in via ldflags on
// release builds.
package version

var (
	// Release is the current application release
	Release = "1.10"
	// GitSHA is the git commit SHA
	GitSHA = "unknown"
)

// String returns the version line printed by the command line tools.
func String() string {
	return "vif2csv " + Release
}
