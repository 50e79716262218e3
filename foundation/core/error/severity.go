// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors. The logger uses the
//              severity to pick the level an error is reported at.
// Version: v0.2.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.2.0: Severity mapping for the tmplkit code set

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates a caller mistake such as a wrong argument type
	SeverityLow Severity = iota

	// SeverityMedium is the default for errors without a more specific code
	SeverityMedium

	// SeverityHigh indicates a failed run: a quality gate or the workspace broke
	SeverityHigh

	// SeverityCritical indicates the program cannot continue at all
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// ShouldAlert returns true if this severity level should trigger alerts
func (s Severity) ShouldAlert() bool {
	return s >= SeverityHigh
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInternal:
		return SeverityCritical

	case CodeExternalToolFailed, CodeExecutionFailed, CodeWorkspaceError:
		return SeverityHigh

	case CodeTypeMismatch, CodeEmptySequence, CodeInvalidInput, CodeNotFound,
		CodeInvalidConfig, CodeCanceled:
		return SeverityLow

	default:
		return SeverityMedium
	}
}
