package version

import (
	"fmt"
	"runtime"
)

// GetVersion returns a short version string, version-commit.
func GetVersion(version, commit string) string {
	if version == "" {
		version = "dev"
	}
	if len(commit) > 7 {
		commit = commit[:7]
	}
	if commit == "" {
		return version
	}
	return fmt.Sprintf("%s-%s", version, commit)
}

// GetDetailedVersion returns version information including the enabled
// calculator features.
func GetDetailedVersion(version, commit, buildTime, features string) string {
	if version == "" {
		version = "dev"
	}
	if commit == "" {
		commit = "unknown"
	}
	if buildTime == "" {
		buildTime = "unknown"
	}

	return fmt.Sprintf(`CelluloseDS degree of substitution calculator
Version:    %s
Commit:     %s
Built:      %s
Features:   %s
Go version: %s
OS/Arch:    %s/%s`,
		version, commit, buildTime, features,
		runtime.Version(),
		runtime.GOOS, runtime.GOARCH)
}
