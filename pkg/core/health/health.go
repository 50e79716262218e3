// ============================================================================
// tmplkit - Project Template Toolkit
// ============================================================================
//
// Package:     health
// Description: Environment checks behind the doctor command: are the tools
//              the pipeline invokes installed, is the project directory
//              present and can a workspace be created
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package health

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"sort"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

// Status represents the outcome of a check
type Status string

const (
	StatusHealthy   Status = "healthy"
	StatusUnhealthy Status = "unhealthy"
	StatusDegraded  Status = "degraded"
	StatusUnknown   Status = "unknown"
)

// CheckResult represents the result of a single check
type CheckResult struct {
	Name      string                 `json:"name"`
	Status    Status                 `json:"status"`
	Message   string                 `json:"message"`
	Duration  time.Duration          `json:"duration"`
	Timestamp time.Time              `json:"timestamp"`
	Details   map[string]interface{} `json:"details,omitempty"`
}

// Checker is an interface for checks
type Checker interface {
	Name() string
	Check(ctx context.Context) CheckResult
}

type namedChecker struct {
	name string
	fn   func(ctx context.Context) CheckResult
}

// NewChecker creates a named checker from a function
func NewChecker(name string, fn func(ctx context.Context) CheckResult) Checker {
	return &namedChecker{name: name, fn: fn}
}

func (c *namedChecker) Name() string { return c.name }

func (c *namedChecker) Check(ctx context.Context) CheckResult { return c.fn(ctx) }

// Registry manages multiple checkers
type Registry struct {
	mu          sync.RWMutex
	checkers    map[string]Checker
	concurrency int
}

// NewRegistry creates a registry that runs at most concurrency checks at
// once. Zero or less means no limit.
func NewRegistry(concurrency int) *Registry {
	return &Registry{
		checkers:    make(map[string]Checker),
		concurrency: concurrency,
	}
}

// Register adds a checker, replacing one with the same name
func (r *Registry) Register(checker Checker) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.checkers[checker.Name()] = checker
}

// Len returns the number of registered checkers
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.checkers)
}

// Check runs all checks concurrently and returns the results sorted by name.
// A check that has not started when ctx is done reports unknown.
func (r *Registry) Check(ctx context.Context) *Report {
	r.mu.RLock()
	checkers := make([]Checker, 0, len(r.checkers))
	for _, c := range r.checkers {
		checkers = append(checkers, c)
	}
	r.mu.RUnlock()

	sort.Slice(checkers, func(i, j int) bool { return checkers[i].Name() < checkers[j].Name() })

	results := make([]CheckResult, len(checkers))
	var g errgroup.Group
	if r.concurrency > 0 {
		g.SetLimit(r.concurrency)
	}

	for i, c := range checkers {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i] = CheckResult{Name: c.Name(), Status: StatusUnknown, Message: err.Error(), Timestamp: time.Now()}
				return nil
			}
			start := time.Now()
			result := c.Check(ctx)
			result.Duration = time.Since(start)
			result.Timestamp = time.Now()
			if result.Name == "" {
				result.Name = c.Name()
			}
			results[i] = result
			return nil
		})
	}
	_ = g.Wait()

	report := &Report{
		Status:    StatusHealthy,
		Timestamp: time.Now(),
		Checks:    results,
	}
	for _, result := range results {
		switch result.Status {
		case StatusUnhealthy, StatusUnknown:
			report.Status = StatusUnhealthy
		case StatusDegraded:
			if report.Status != StatusUnhealthy {
				report.Status = StatusDegraded
			}
		}
	}
	return report
}

// Report represents the overall result
type Report struct {
	Status    Status        `json:"status"`
	Timestamp time.Time     `json:"timestamp"`
	Checks    []CheckResult `json:"checks"`
}

// Healthy reports whether no check failed. Degraded counts as healthy.
func (r *Report) Healthy() bool {
	return r.Status != StatusUnhealthy
}

// String returns a string representation of the report
func (r *Report) String() string {
	return fmt.Sprintf("Status: %s, Checks: %d", r.Status, len(r.Checks))
}

// LookPathFunc resolves an executable name. exec.LookPath in production.
type LookPathFunc func(file string) (string, error)

// Executable returns the program a shell command line starts with
func Executable(command string) string {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// ToolCheck verifies that tool resolves on PATH. A missing required tool
// is unhealthy; a missing optional one only degrades the report.
func ToolCheck(name, tool string, required bool, lookPath LookPathFunc) Checker {
	if lookPath == nil {
		lookPath = exec.LookPath
	}
	return NewChecker(name, func(ctx context.Context) CheckResult {
		result := CheckResult{
			Name:    name,
			Details: map[string]interface{}{"tool": tool, "required": required},
		}

		path, err := lookPath(tool)
		if err != nil {
			result.Status = StatusUnhealthy
			if !required {
				result.Status = StatusDegraded
			}
			result.Message = fmt.Sprintf("%s not found on PATH", tool)
			return result
		}

		result.Status = StatusHealthy
		result.Message = path
		result.Details["path"] = path
		return result
	})
}

// DirCheck verifies that dir exists and is a directory
func DirCheck(name, dir string) Checker {
	return NewChecker(name, func(ctx context.Context) CheckResult {
		result := CheckResult{Name: name, Details: map[string]interface{}{"dir": dir}}

		info, err := os.Stat(dir)
		switch {
		case err != nil:
			result.Status = StatusUnhealthy
			result.Message = err.Error()
		case !info.IsDir():
			result.Status = StatusUnhealthy
			result.Message = fmt.Sprintf("%s is not a directory", dir)
		default:
			result.Status = StatusHealthy
			result.Message = dir
		}
		return result
	})
}

// TempDirCheck verifies that a workspace directory can be created and
// removed again
func TempDirCheck(name, pattern string) Checker {
	return NewChecker(name, func(ctx context.Context) CheckResult {
		result := CheckResult{Name: name}

		dir, err := os.MkdirTemp("", pattern)
		if err != nil {
			result.Status = StatusUnhealthy
			result.Message = err.Error()
			return result
		}
		if err := os.RemoveAll(dir); err != nil {
			result.Status = StatusDegraded
			result.Message = fmt.Sprintf("created %s but could not remove it: %v", dir, err)
			return result
		}

		result.Status = StatusHealthy
		result.Message = os.TempDir()
		return result
	})
}
