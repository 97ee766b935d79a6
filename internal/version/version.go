// Package version carries build metadata injected with -ldflags.
package version

import "fmt"

var (
	// Version is the current application version
	Version = "dev"
	// GitSHA is the git commit SHA
	GitSHA = "unknown"
	// BuildTime is the build timestamp
	BuildTime = "unknown"
)

// Short returns "<version>" or "<version>+<sha7>" when the SHA is known.
func Short() string {
	if GitSHA == "" || GitSHA == "unknown" {
		return Version
	}
	sha := GitSHA
	if len(sha) > 7 {
		sha = sha[:7]
	}
	return Version + "+" + sha
}

// String returns the full version line printed by -version.
func String() string {
	return fmt.Sprintf("ficus %s (commit %s, built %s)", Version, GitSHA, BuildTime)
}
