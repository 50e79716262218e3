package checker

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// fakeRunner answers commands from a table keyed by command line and
// records every call
type fakeRunner struct {
	mu        sync.Mutex
	responses map[string]Result
	errs      map[string]error
	calls     []Command
}

func newFakeRunner() *fakeRunner {
	return &fakeRunner{
		responses: make(map[string]Result),
		errs:      make(map[string]error),
	}
}

func (f *fakeRunner) respond(line string, exitCode int, stdout, stderr string) *fakeRunner {
	f.responses[line] = Result{ExitCode: exitCode, Stdout: stdout, Stderr: stderr}
	return f
}

func (f *fakeRunner) Run(ctx context.Context, cmd Command) (*Result, error) {
	f.mu.Lock()
	f.calls = append(f.calls, cmd)
	f.mu.Unlock()

	if err, ok := f.errs[cmd.Line]; ok {
		return nil, err
	}
	res := f.responses[cmd.Line]
	res.Started = time.Now()
	res.Finished = res.Started.Add(time.Millisecond)
	return &res, nil
}

func (f *fakeRunner) lines() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, 0, len(f.calls))
	for _, c := range f.calls {
		out = append(out, c.Line)
	}
	return out
}

func templateSteps() []Step {
	return []Step{
		{Name: "uv venv", Command: "python -m uv venv", Assert: true},
		{Name: "uv sync", Command: "python -m uv sync", Assert: true},
		{Name: "pre-commit install", Command: "pre-commit install", Assert: true},
		{Name: "pre-commit run", Command: "pre-commit run --all-files", Assert: true},
		{Name: "mypy", Command: "mypy src/my_package", Assert: true},
		{Name: "pytest", Command: "pytest", Assert: false},
	}
}

// makeProject writes a small project tree and returns its directory
func makeProject(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"pyproject.toml":                        "[project]\nname = \"my_package\"\n",
		"src/my_package/__init__.py":            "",
		"src/my_package/module.py":              "def add(a, b):\n    return a + b\n",
		"src/my_package/__pycache__/module.pyc": "bytecode",
		".git/HEAD":                             "ref: refs/heads/main\n",
	}
	for name, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return dir
}
