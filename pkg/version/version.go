// Package version exposes the build identity of the railway-deploy binary.
package version

import "fmt"

// Set at build time via -ldflags, see the Makefile. Development builds
// keep the zero values below.
var (
	// Version is the semantic version of the binary
	Version = "dev"

	// Commit is the git commit hash the binary was built from
	Commit = "unknown"

	// BuildTime is the UTC build timestamp in RFC3339 format
	BuildTime = "unknown"
)

// Info is the structured form of the build identity, for JSON output
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildTime string `json:"build_time"`
}

// Get returns the build identity as an Info
func Get() Info {
	return Info{
		Version:   Version,
		Commit:    Commit,
		BuildTime: BuildTime,
	}
}

// String formats the build identity for the version command
func String() string {
	return fmt.Sprintf("railway-deploy version %s (commit: %s, built: %s)",
		Version, Commit, BuildTime)
}

// Short returns just the version number, e.g. "1.0.0" or "dev"
func Short() string {
	return Version
}
