// ============================================================================
// tmplkit - Project Template Toolkit
// ============================================================================
//
// Package:     checker
// Description: Pipeline steps, their recorded results and the failure
//              returned when an asserted step exits non-zero
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package checker

import (
	"fmt"
	"strings"
	"time"

	tkerror "github.com/tmplkit/tmplkit/foundation/core/error"
	"github.com/tmplkit/tmplkit/foundation/utils/slicex"
	"github.com/tmplkit/tmplkit/foundation/utils/stringx"
	"github.com/tmplkit/tmplkit/foundation/utils/timex"
	"github.com/tmplkit/tmplkit/pkg/core/config"
)

// Step is one external command of the pipeline
type Step struct {
	Name    string
	Command string

	// Assert makes a non-zero exit fail the run. A step with Assert unset
	// still runs and is recorded.
	Assert bool

	Env map[string]string
}

// StepsFromConfig converts configured steps, preserving order
func StepsFromConfig(steps []config.StepConfig) []Step {
	return slicex.Map(steps, func(s config.StepConfig) Step {
		return Step{
			Name:    s.Name,
			Command: s.Command,
			Assert:  s.Asserted(),
			Env:     s.Env,
		}
	})
}

// StepStatus summarizes a step for reports
type StepStatus string

const (
	StatusPassed      StepStatus = "passed"
	StatusFailed      StepStatus = "failed"
	StatusNotAsserted StepStatus = "not_asserted"
	StatusSkipped     StepStatus = "skipped"
)

// StepResult records one executed step
type StepResult struct {
	Name     string        `json:"name"`
	Command  string        `json:"command"`
	ExitCode int           `json:"exit_code"`
	Stdout   string        `json:"stdout"`
	Stderr   string        `json:"stderr"`
	TimedOut bool          `json:"timed_out,omitempty"`
	Started  time.Time     `json:"started"`
	Finished time.Time     `json:"finished"`
	Duration time.Duration `json:"duration"`
	Asserted bool          `json:"asserted"`
	Passed   bool          `json:"passed"`
}

// Status returns the report status of the step
func (r StepResult) Status() StepStatus {
	switch {
	case r.Passed:
		return StatusPassed
	case !r.Asserted:
		return StatusNotAsserted
	default:
		return StatusFailed
	}
}

func newStepResult(step Step, res *Result) StepResult {
	return StepResult{
		Name:     step.Name,
		Command:  step.Command,
		ExitCode: res.ExitCode,
		Stdout:   res.Stdout,
		Stderr:   res.Stderr,
		TimedOut: res.TimedOut,
		Started:  res.Started,
		Finished: res.Finished,
		Duration: res.Duration(),
		Asserted: step.Assert,
		Passed:   res.Success(),
	}
}

// ErrStepFailed matches every *StepFailure through errors.Is
var ErrStepFailed = tkerror.New("step failed").WithCode(tkerror.CodeExternalToolFailed)

// StepFailure is returned when an asserted step exits non-zero. Its message
// carries the captured stderr and stdout of the step.
type StepFailure struct {
	Result StepResult
	err    *tkerror.Error
}

func newStepFailure(result StepResult, tailLines int) *StepFailure {
	return &StepFailure{
		Result: result,
		err: tkerror.New(failureMessage(result, tailLines)).
			WithCode(tkerror.CodeExternalToolFailed).
			WithOperation("checker.pipeline").
			WithDetail("step", result.Name).
			WithDetail("command", result.Command).
			WithDetail("exit_code", result.ExitCode),
	}
}

// Error implements the error interface
func (f *StepFailure) Error() string {
	return f.err.Error()
}

// Unwrap exposes the structured error for errors.Is and tkerror.HasCode
func (f *StepFailure) Unwrap() error {
	return f.err
}

// Step returns the name of the failed step
func (f *StepFailure) Step() string {
	return f.Result.Name
}

func failureMessage(r StepResult, tailLines int) string {
	stderr, stdout := r.Stderr, r.Stdout
	if tailLines > 0 {
		stderr = stringx.TailLines(stderr, tailLines)
		stdout = stringx.TailLines(stdout, tailLines)
	}

	var b strings.Builder
	if r.TimedOut {
		fmt.Fprintf(&b, "%s command timed out after %s (%s)", r.Name, timex.FormatDurationCompact(r.Duration), r.Command)
	} else {
		fmt.Fprintf(&b, "%s command failed with exit code %d (%s)", r.Name, r.ExitCode, r.Command)
	}
	fmt.Fprintf(&b, " with error:\n%s\nand output:\n%s", strings.TrimRight(stderr, "\n"), strings.TrimRight(stdout, "\n"))
	return b.String()
}
