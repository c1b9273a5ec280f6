package version

import "fmt"

var (
	VersionPrefix = "dev"     // Set via -ldflags
	VersionDate   = "edge"    // Set via -ldflags - Value should be: YYYYMMDD
	CommitHash    = "unknown" // Set via -ldflags
)

// Print returns the version information
func Print() string {
	return fmt.Sprintf("%s-%s-%s", VersionPrefix, VersionDate, CommitHash)
}
