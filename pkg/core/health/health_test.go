package health

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakeLookPath(found ...string) LookPathFunc {
	return func(file string) (string, error) {
		for _, f := range found {
			if f == file {
				return "/usr/bin/" + file, nil
			}
		}
		return "", errors.New("executable file not found in $PATH")
	}
}

func TestExecutable(t *testing.T) {
	tests := []struct {
		command string
		want    string
	}{
		{"python -m uv venv", "python"},
		{"  mypy src/my_package", "mypy"},
		{"pytest", "pytest"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Executable(tt.command), tt.command)
	}
}

func TestToolCheck(t *testing.T) {
	lookPath := fakeLookPath("mypy")

	result := ToolCheck("mypy", "mypy", true, lookPath).Check(context.Background())
	assert.Equal(t, StatusHealthy, result.Status)
	assert.Equal(t, "/usr/bin/mypy", result.Details["path"])

	result = ToolCheck("pre-commit", "pre-commit", true, lookPath).Check(context.Background())
	assert.Equal(t, StatusUnhealthy, result.Status)
	assert.Contains(t, result.Message, "not found")

	result = ToolCheck("pytest", "pytest", false, lookPath).Check(context.Background())
	assert.Equal(t, StatusDegraded, result.Status)
}

func TestDirCheck(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "f")
	require.NoError(t, os.WriteFile(file, nil, 0o644))

	assert.Equal(t, StatusHealthy, DirCheck("project", dir).Check(context.Background()).Status)
	assert.Equal(t, StatusUnhealthy, DirCheck("project", file).Check(context.Background()).Status)
	assert.Equal(t, StatusUnhealthy, DirCheck("project", filepath.Join(dir, "missing")).Check(context.Background()).Status)
}

func TestTempDirCheck(t *testing.T) {
	result := TempDirCheck("workspace", "health-*").Check(context.Background())
	assert.Equal(t, StatusHealthy, result.Status)
}

func TestRegistry_Check(t *testing.T) {
	tests := []struct {
		name     string
		statuses []Status
		want     Status
	}{
		{"all healthy", []Status{StatusHealthy, StatusHealthy}, StatusHealthy},
		{"degraded", []Status{StatusHealthy, StatusDegraded}, StatusDegraded},
		{"unhealthy wins", []Status{StatusDegraded, StatusUnhealthy, StatusHealthy}, StatusUnhealthy},
		{"empty", nil, StatusHealthy},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRegistry(2)
			for i, s := range tt.statuses {
				status := s
				r.Register(NewChecker(string(rune('a'+i)), func(ctx context.Context) CheckResult {
					return CheckResult{Status: status}
				}))
			}

			report := r.Check(context.Background())
			assert.Equal(t, tt.want, report.Status)
			assert.Equal(t, tt.want != StatusUnhealthy, report.Healthy())
			require.Len(t, report.Checks, len(tt.statuses))
		})
	}
}

func TestRegistry_SortedAndNamed(t *testing.T) {
	r := NewRegistry(0)
	for _, name := range []string{"zeta", "alpha", "mid"} {
		r.Register(NewChecker(name, func(ctx context.Context) CheckResult {
			return CheckResult{Status: StatusHealthy}
		}))
	}
	assert.Equal(t, 3, r.Len())

	report := r.Check(context.Background())
	names := []string{report.Checks[0].Name, report.Checks[1].Name, report.Checks[2].Name}
	assert.Equal(t, []string{"alpha", "mid", "zeta"}, names)
	for _, c := range report.Checks {
		assert.False(t, c.Timestamp.IsZero())
	}
}

func TestRegistry_Concurrency(t *testing.T) {
	r := NewRegistry(2)
	var running, peak int32
	for _, name := range []string{"a", "b", "c", "d", "e"} {
		r.Register(NewChecker(name, func(ctx context.Context) CheckResult {
			n := atomic.AddInt32(&running, 1)
			for {
				p := atomic.LoadInt32(&peak)
				if n <= p || atomic.CompareAndSwapInt32(&peak, p, n) {
					break
				}
			}
			time.Sleep(10 * time.Millisecond)
			atomic.AddInt32(&running, -1)
			return CheckResult{Status: StatusHealthy}
		}))
	}

	report := r.Check(context.Background())
	assert.Len(t, report.Checks, 5)
	assert.LessOrEqual(t, atomic.LoadInt32(&peak), int32(2))
}

func TestRegistry_CanceledContext(t *testing.T) {
	r := NewRegistry(1)
	r.Register(ToolCheck("tool", "tool", true, fakeLookPath("tool")))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report := r.Check(ctx)
	assert.Equal(t, StatusUnknown, report.Checks[0].Status)
	assert.Equal(t, StatusUnhealthy, report.Status)
}
