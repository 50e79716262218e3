// ============================================================================
// tmplkit - Project Template Toolkit
// ============================================================================
//
// Package:     checker
// Description: Runner executes one external command line in a working
//              directory and captures its exit status and output
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package checker

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"time"

	tkerror "github.com/tmplkit/tmplkit/foundation/core/error"
	"github.com/tmplkit/tmplkit/foundation/utils/mapx"
)

// waitDelay bounds how long Run waits for output pipes after the process
// was killed
const waitDelay = 5 * time.Second

// Command is one command line to execute
type Command struct {
	// Line is passed to the platform shell unchanged
	Line string

	// Dir is the working directory
	Dir string

	// Env is added to the inherited environment
	Env map[string]string

	// Timeout bounds the run when positive
	Timeout time.Duration
}

// Result is the outcome of a command that was started
type Result struct {
	ExitCode int
	Stdout   string
	Stderr   string
	TimedOut bool
	Started  time.Time
	Finished time.Time
}

// Success reports a zero exit status
func (r *Result) Success() bool {
	return r.ExitCode == 0 && !r.TimedOut
}

// Duration returns the wall time of the command
func (r *Result) Duration() time.Duration {
	return r.Finished.Sub(r.Started)
}

// Runner executes commands. A non-zero exit is reported in the Result; an
// error means the command could not be run or ctx was canceled.
type Runner interface {
	Run(ctx context.Context, cmd Command) (*Result, error)
}

// ExecRunner runs commands through the platform shell
type ExecRunner struct {
	// Shell is the shell invocation prefix, e.g. {"sh", "-c"}
	Shell []string
}

// NewExecRunner returns a runner using sh -c, or cmd /C on Windows
func NewExecRunner() *ExecRunner {
	return &ExecRunner{Shell: defaultShell()}
}

// Run executes cmd and waits for it to finish
func (r *ExecRunner) Run(ctx context.Context, cmd Command) (*Result, error) {
	shell := r.Shell
	if len(shell) == 0 {
		shell = defaultShell()
	}

	runCtx := ctx
	if cmd.Timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, cmd.Timeout)
		defer cancel()
	}

	args := append(append([]string(nil), shell[1:]...), cmd.Line)
	c := exec.CommandContext(runCtx, shell[0], args...)
	c.Dir = cmd.Dir
	c.Env = mergeEnv(os.Environ(), cmd.Env)
	c.WaitDelay = waitDelay
	configureProcess(c, cmd.Line)

	var stdout, stderr bytes.Buffer
	c.Stdout = &stdout
	c.Stderr = &stderr

	result := &Result{Started: time.Now()}
	err := c.Run()
	result.Finished = time.Now()
	result.Stdout = stdout.String()
	result.Stderr = stderr.String()

	return classify(ctx, runCtx, cmd, result, err)
}

// classify turns the outcome of a finished process into a Result or an
// error. A process that exited cleanly succeeded even if a deadline passed
// while it was being reaped.
func classify(ctx, runCtx context.Context, cmd Command, result *Result, err error) (*Result, error) {
	if err == nil {
		return result, nil
	}

	if ctx.Err() != nil {
		result.ExitCode = -1
		return result, tkerror.Wrap(ctx.Err(), "command canceled").
			WithCode(tkerror.CodeCanceled).
			WithOperation("checker.run").
			WithDetail("command", cmd.Line)
	}

	if runCtx.Err() != nil {
		result.ExitCode = -1
		result.TimedOut = true
		return result, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		result.ExitCode = exitErr.ExitCode()
		return result, nil
	}
	return nil, tkerror.Wrap(err, fmt.Sprintf("failed to start %q", cmd.Line)).
		WithCode(tkerror.CodeExecutionFailed).
		WithOperation("checker.run").
		WithDetail("command", cmd.Line).
		WithDetail("dir", cmd.Dir)
}

// mergeEnv appends extra in a stable order. Later entries win for
// duplicate keys.
func mergeEnv(base []string, extra map[string]string) []string {
	if len(extra) == 0 {
		return base
	}
	env := append([]string(nil), base...)
	for _, k := range mapx.SortedKeys(extra) {
		env = append(env, fmt.Sprintf("%s=%s", k, extra[k]))
	}
	return env
}
