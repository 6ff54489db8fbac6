// Package version provides build and version information.
package version

// Version is the current application version.
const Version = "0.3.0"

// Commit is set at build time with -ldflags "-X .../version.Commit=...".
var Commit = "dev"

// String returns the version with its commit.
func String() string {
	return Version + " (" + Commit + ")"
}

// Milestones:
// 0.3.0 - Interactive date prompt, fixture ephemeris files, JSON reports
// 0.2.0 - JPL Horizons vectors with offline Sun fallback, biorhythm chart
// 0.1.0 - Initial release: transits by house, aspects to the natal Sun
