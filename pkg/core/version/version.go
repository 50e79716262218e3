// ============================================================================
// tmplkit - Project Template Toolkit
// ============================================================================
//
// Package:     version
// Description: Central version management for the tmplkit commands
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package version

import "fmt"

// Version constants
const (
	// Toolkit version
	Toolkit = "0.1.0"

	// Command versions
	Tmplcheck = "0.1.0"
)

// Set at build time with -ldflags "-X .../version.Commit=..."
var (
	Commit    = "unknown"
	BuildDate = "unknown"
)

// CommandVersion returns the version for a given command name
func CommandVersion(name string) string {
	switch name {
	case "tmplcheck":
		return Tmplcheck
	default:
		return Toolkit
	}
}

// String returns a one-line version description for a command
func String(name string) string {
	return fmt.Sprintf("%s %s (toolkit %s, commit %s, built %s)",
		name, CommandVersion(name), Toolkit, Commit, BuildDate)
}
