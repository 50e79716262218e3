// ============================================================================
// tmplkit - Project Template Toolkit
// ============================================================================
//
// Package:     checker
// Description: Pipeline runs the configured steps in order inside a working
//              directory and stops at the first asserted failure
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package checker

import (
	"context"
	"time"

	tkerror "github.com/tmplkit/tmplkit/foundation/core/error"
	tklog "github.com/tmplkit/tmplkit/foundation/core/log"
)

// Pipeline is an ordered, fail-fast list of steps
type Pipeline struct {
	steps       []Step
	runner      Runner
	logger      *tklog.Logger
	stepTimeout time.Duration
	tailLines   int
}

// PipelineOption configures a Pipeline
type PipelineOption func(*Pipeline)

// WithLogger sets the logger used for step progress
func WithLogger(logger *tklog.Logger) PipelineOption {
	return func(p *Pipeline) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithStepTimeout bounds every step. Zero means unbounded.
func WithStepTimeout(d time.Duration) PipelineOption {
	return func(p *Pipeline) { p.stepTimeout = d }
}

// WithOutputTail limits the output lines quoted in failure messages.
// Zero quotes everything.
func WithOutputTail(lines int) PipelineOption {
	return func(p *Pipeline) { p.tailLines = lines }
}

// NewPipeline creates a pipeline over steps
func NewPipeline(steps []Step, runner Runner, opts ...PipelineOption) *Pipeline {
	p := &Pipeline{
		steps:  append([]Step(nil), steps...),
		runner: runner,
		logger: tklog.Nop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Steps returns the steps in execution order
func (p *Pipeline) Steps() []Step {
	return append([]Step(nil), p.steps...)
}

// Run executes the steps in dir. It returns the results of every step that
// ran. The first asserted step with a non-zero exit ends the run with a
// *StepFailure; steps after it are not started.
func (p *Pipeline) Run(ctx context.Context, dir string) ([]StepResult, error) {
	results := make([]StepResult, 0, len(p.steps))

	for _, step := range p.steps {
		if err := ctx.Err(); err != nil {
			return results, tkerror.Wrap(err, "pipeline canceled before "+step.Name).
				WithCode(tkerror.CodeCanceled).
				WithOperation("checker.pipeline")
		}

		p.logger.Info("running "+step.Name, tklog.Fields{"step": step.Name, "command": step.Command})
		timer := p.logger.StartTimer(step.Name).WithField("step", step.Name)

		res, err := p.runner.Run(ctx, Command{
			Line:    step.Command,
			Dir:     dir,
			Env:     step.Env,
			Timeout: p.stepTimeout,
		})
		if err != nil {
			timer.StopWithError(err)
			if res != nil {
				results = append(results, newStepResult(step, res))
			}
			return results, tkerror.Wrap(err, step.Name+" could not be run").
				WithDetail("step", step.Name)
		}

		result := newStepResult(step, res)
		results = append(results, result)

		switch {
		case result.Passed:
			timer.Stop()
		case !step.Assert:
			timer.Stop()
			p.logger.Warn(step.Name+" exited non-zero, result not asserted", tklog.Fields{
				"step":      step.Name,
				"exit_code": result.ExitCode,
			})
		default:
			failure := newStepFailure(result, p.tailLines)
			timer.StopWithError(failure.err)
			return results, failure
		}
	}

	return results, nil
}
