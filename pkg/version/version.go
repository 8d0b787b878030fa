// Package version exposes build information injected via -ldflags.
package version

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Populated at build time, e.g.
//
//	go build -ldflags "-X github.com/rshade/jobfocus/pkg/version.version=1.2.0"
//
//nolint:gochecknoglobals // set by the linker
var (
	version   = "0.1.0-dev"
	gitCommit = "unknown"
	buildDate = "unknown"
)

// GetVersion returns the version without a leading "v".
func GetVersion() string {
	return strings.TrimPrefix(version, "v")
}

// GetGitCommit returns the commit the binary was built from.
func GetGitCommit() string {
	return gitCommit
}

// GetBuildDate returns the build timestamp.
func GetBuildDate() string {
	return buildDate
}

// Parse validates v as a semantic version.
func Parse(v string) (*semver.Version, error) {
	sv, err := semver.NewVersion(v)
	if err != nil {
		return nil, fmt.Errorf("invalid version %q: %w", v, err)
	}
	return sv, nil
}

// FallbackVersion is reported when the injected version is not valid semver.
const FallbackVersion = "0.0.0-dev"

// Normalize returns v in canonical semver form. An invalid v yields
// FallbackVersion together with the parse error.
func Normalize(v string) (string, error) {
	sv, err := Parse(v)
	if err != nil {
		return FallbackVersion, err
	}
	return sv.String(), nil
}

// BuildInfo renders the commit, build date and platform shown after the
// version by --version.
func BuildInfo() string {
	return fmt.Sprintf("(commit %s, built %s, %s/%s)", gitCommit, buildDate, runtime.GOOS, runtime.GOARCH)
}
