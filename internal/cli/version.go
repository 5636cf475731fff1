// SPDX-FileCopyrightText: 2026 convertml
// SPDX-License-Identifier: FSL-1.1-MIT

package cli

import (
	"fmt"
	"runtime"
	"strings"
)

// Version information set via ldflags during build.
var (
	// Version is the semantic version of the application.
	Version = "dev"

	// Commit is the git commit hash.
	Commit = "unknown"

	// BuildDate is the date the binary was built.
	BuildDate = "unknown"
)

// versionText is printed for --version.
func versionText() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "convertml %s\n", Version)
	fmt.Fprintf(&sb, "  Commit:     %s\n", Commit)
	fmt.Fprintf(&sb, "  Build Date: %s\n", BuildDate)
	fmt.Fprintf(&sb, "  Go Version: %s\n", runtime.Version())
	fmt.Fprintf(&sb, "  OS/Arch:    %s/%s", runtime.GOOS, runtime.GOARCH)
	return sb.String()
}

// GetVersionInfo returns version information on a single line.
func GetVersionInfo() string {
	return fmt.Sprintf("convertml %s (commit: %s, built: %s)", Version, Commit, BuildDate)
}
