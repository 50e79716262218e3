// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used across tmplkit. Codes classify
//              failures for callers (errors.Is matches on them) and drive
//              the default severity and the log level chosen for an error.
// Version: v0.2.1
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.2.1: Dropped the unused validation codes
// - 2026-10-18 v0.2.0: Reduced to the codes used by the helpers and the checker

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"
	CodeCanceled     Code = "CANCELED"

	// Argument and value errors raised by the helper library
	CodeTypeMismatch  Code = "TYPE_MISMATCH"
	CodeEmptySequence Code = "EMPTY_SEQUENCE"

	// External process execution
	CodeExecutionFailed    Code = "EXECUTION_FAILED"
	CodeExternalToolFailed Code = "EXTERNAL_TOOL_FAILED"
	CodeWorkspaceError     Code = "WORKSPACE_ERROR"

	// Configuration
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeInvalidConfig Code = "INVALID_CONFIG"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput, CodeCanceled,
		CodeTypeMismatch, CodeEmptySequence,
		CodeExecutionFailed, CodeExternalToolFailed, CodeWorkspaceError,
		CodeConfigError, CodeInvalidConfig:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeTypeMismatch, CodeEmptySequence:
		return "argument"
	case CodeExecutionFailed, CodeExternalToolFailed, CodeWorkspaceError:
		return "execution"
	case CodeConfigError, CodeInvalidConfig:
		return "configuration"
	default:
		return "generic"
	}
}
