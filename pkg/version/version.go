// Package version reports the build version of ecopayback.
package version

import "fmt"

// Set at build time with
// -ldflags "-X github.com/rshade/ecopayback/pkg/version.version=... -X ...commit=... -X ...buildDate=...".
//
//nolint:gochecknoglobals // Overwritten by the linker.
var (
	version   = "0.1.0-dev"
	commit    = "none"
	buildDate = "unknown"
)

// GetVersion returns the semantic version of the binary.
func GetVersion() string {
	return version
}

// GetCommit returns the git commit the binary was built from.
func GetCommit() string {
	return commit
}

// GetBuildDate returns the build timestamp.
func GetBuildDate() string {
	return buildDate
}

// Full returns the version with commit and build date, as printed by
// ecopayback --version.
func Full() string {
	return fmt.Sprintf("%s (commit %s, built %s)", version, commit, buildDate)
}
