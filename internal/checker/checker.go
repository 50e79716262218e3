// ============================================================================
// tmplkit - Project Template Toolkit
// ============================================================================
//
// Package:     checker
// Description: Checker ties a workspace and a pipeline together into one
//              integration check run
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package checker

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	tkerror "github.com/tmplkit/tmplkit/foundation/core/error"
	tklog "github.com/tmplkit/tmplkit/foundation/core/log"
	"github.com/tmplkit/tmplkit/foundation/utils/slicex"
	"github.com/tmplkit/tmplkit/pkg/core/config"
	"github.com/tmplkit/tmplkit/pkg/core/logging"
)

// Options configures a Checker
type Options struct {
	ProjectDir       string
	Steps            []Step
	Exclude          []string
	WorkspacePattern string
	KeepWorkspace    bool
	StepTimeout      time.Duration
	OutputTailLines  int
}

// OptionsFromConfig maps the loaded configuration onto checker options
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		ProjectDir:       cfg.Project.Dir,
		Steps:            StepsFromConfig(cfg.Steps),
		Exclude:          cfg.Project.Exclude,
		WorkspacePattern: cfg.Checker.WorkspacePattern,
		KeepWorkspace:    cfg.Checker.KeepWorkspace,
		StepTimeout:      cfg.Checker.StepTimeout.Duration,
		OutputTailLines:  cfg.Checker.OutputTailLines,
	}
}

// Checker runs the integration check
type Checker struct {
	opts   Options
	runner Runner
	logger *tklog.Logger
	newID  func() string
}

// New creates a Checker. A nil runner uses NewExecRunner, a nil logger
// discards output.
func New(opts Options, runner Runner, logger *tklog.Logger) *Checker {
	if runner == nil {
		runner = NewExecRunner()
	}
	if logger == nil {
		logger = tklog.Nop()
	}
	return &Checker{
		opts:   opts,
		runner: runner,
		logger: logger,
		newID:  uuid.NewString,
	}
}

// Check copies the project into a fresh workspace and runs the pipeline in
// it. The returned report is never nil; the error is the first failure.
// The workspace is removed afterwards unless KeepWorkspace is set.
func (c *Checker) Check(ctx context.Context) (report *Report, err error) {
	report = &Report{
		RunID:     c.newID(),
		SourceDir: c.opts.ProjectDir,
		Started:   time.Now(),
	}
	logger := logging.ForRun(c.logger, report.RunID)

	defer func() {
		report.Finished = time.Now()
		report.Passed = err == nil
	}()

	if len(c.opts.Steps) == 0 {
		return report, errNoSteps
	}

	ws := NewWorkspace(c.opts.WorkspacePattern, c.opts.Exclude)
	logger.Info("copying project", tklog.Fields{"source": c.opts.ProjectDir})
	if err := ws.Prepare(c.opts.ProjectDir); err != nil {
		return report, err
	}
	report.SourceDir = ws.Source()
	report.WorkspaceDir = ws.Dir()
	logger.Debug("workspace ready", tklog.Fields{"dir": ws.Dir(), "files": ws.Files()})

	defer func() {
		if c.opts.KeepWorkspace {
			logger.Info("keeping workspace", tklog.Fields{"dir": ws.Dir()})
			return
		}
		if cerr := ws.Cleanup(); cerr != nil {
			if err == nil {
				err = cerr
			} else {
				logger.WarnWithErr("workspace cleanup failed", cerr)
			}
		}
	}()

	pipeline := NewPipeline(c.opts.Steps, c.runner,
		WithLogger(logger),
		WithStepTimeout(c.opts.StepTimeout),
		WithOutputTail(c.opts.OutputTailLines),
	)

	results, err := pipeline.Run(ctx, ws.Dir())
	report.Steps = results

	report.FailedStep = failedStep(err)
	report.Skipped = skippedSteps(c.opts.Steps, results, report.FailedStep)
	report.Canceled = tkerror.HasCode(err, tkerror.CodeCanceled)

	if err != nil {
		return report, err
	}
	logger.Info("integration check passed", tklog.Fields{"steps": len(results)})
	return report, nil
}

// failedStep returns the step an error was raised for, if any
func failedStep(err error) string {
	var tkErr *tkerror.Error
	if !errors.As(err, &tkErr) {
		return ""
	}
	if name, ok := tkErr.Detail("step"); ok {
		if s, ok := name.(string); ok {
			return s
		}
	}
	return ""
}

// skippedSteps names the steps that never started
func skippedSteps(steps []Step, results []StepResult, failed string) []string {
	ran := slicex.ToSet(slicex.Map(results, func(r StepResult) string { return r.Name }))
	if failed != "" {
		ran[failed] = struct{}{}
	}

	pending := slicex.Filter(steps, func(s Step) bool {
		_, ok := ran[s.Name]
		return !ok
	})
	if len(pending) == 0 {
		return nil
	}
	return slicex.Map(pending, func(s Step) string { return s.Name })
}

// errNoSteps is reported when a checker is built without steps
var errNoSteps = tkerror.New("no steps configured").
	WithCode(tkerror.CodeInvalidConfig).
	WithOperation("checker.check")
