// Package error provides the structured error type used throughout tmplkit.
//
// Package: error
// Title: tmplkit Error Handling
// Description: Errors carry a Code, a Severity, an operation name and a set
//              of details next to the usual message and cause. Codes are the
//              contract with callers: errors.Is matches two *Error values by
//              code, so packages can publish sentinels such as
//
//	var ErrTypeMismatch = error.New("type mismatch").WithCode(error.CodeTypeMismatch)
//
//              and return richer errors with the same code.
//
// Version: v0.2.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Usage:
//
//	err := error.New("hook run failed").
//		WithCode(error.CodeExternalToolFailed).
//		WithOperation("checker.Pipeline.Run").
//		WithDetail("exit_code", 1)
//
//	wrapped := error.Wrap(err, "integration check failed")
//	error.HasCode(wrapped, error.CodeExternalToolFailed) // true
//
// The package is named error to match the rest of the foundation layout;
// import it under an alias (conventionally tkerror).
package error
