package integration

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/tmplkit/tmplkit/pkg/core/config"
)

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// skipOnWindows skips tests that rely on POSIX shell scripts
func skipOnWindows(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("Skipping: fake toolchain is written as POSIX shell scripts")
	}
}

// skipIfToolUnavailable skips the test if tool is not on PATH
func skipIfToolUnavailable(t *testing.T, tool string) {
	t.Helper()
	if _, err := exec.LookPath(tool); err != nil {
		t.Skipf("Skipping: %s not available on PATH", tool)
	}
}

// fakeTools imitate the template toolchain closely enough for the
// pipeline: uv creates .venv, pre-commit flags lines marked as lint
// violations, mypy flags lines marked as type errors, pytest always fails.
var fakeTools = map[string]string{
	"python": `#!/bin/sh
if [ "$1" = "-m" ] && [ "$2" = "uv" ]; then
  case "$3" in
    venv) mkdir -p .venv && echo "Creating virtual environment at: .venv"; exit 0 ;;
    sync)
      [ -d .venv ] || { echo "error: no virtual environment" >&2; exit 2; }
      [ -f pyproject.toml ] || { echo "error: no pyproject.toml found" >&2; exit 2; }
      echo "Resolved 3 packages"; exit 0 ;;
  esac
fi
echo "python: unsupported invocation: $*" >&2
exit 2
`,
	"pre-commit": `#!/bin/sh
case "$1" in
  install)
    [ -d .git ] || { echo "An error has occurred: not a git repository" >&2; exit 1; }
    mkdir -p .git/hooks && touch .git/hooks/pre-commit
    echo "pre-commit installed at .git/hooks/pre-commit"; exit 0 ;;
  run)
    if grep -rn "LINT-VIOLATION" src >/dev/null 2>&1; then
      echo "ruff.....................................................Failed"
      grep -rn "LINT-VIOLATION" src | sed 's/^/  /'
      exit 1
    fi
    echo "ruff.....................................................Passed"; exit 0 ;;
esac
exit 2
`,
	"mypy": `#!/bin/sh
if grep -rn "TYPE-ERROR" "$1" >/dev/null 2>&1; then
  grep -rn "TYPE-ERROR" "$1" | sed 's/$/: error: Incompatible types/'
  echo "Found 1 error in 1 file (checked 2 source files)"
  exit 1
fi
echo "Success: no issues found in 2 source files"
exit 0
`,
	"pytest": `#!/bin/sh
echo "1 failed, 3 passed"
exit 1
`,
}

// installFakeToolchain writes the fake tools into a directory that is put
// first on PATH for the duration of the test
func installFakeToolchain(t *testing.T) {
	t.Helper()
	bin := t.TempDir()
	for name, script := range fakeTools {
		if err := os.WriteFile(filepath.Join(bin, name), []byte(script), 0o755); err != nil {
			t.Fatalf("Failed to write fake %s: %v", name, err)
		}
	}
	t.Setenv("PATH", bin+string(os.PathListSeparator)+os.Getenv("PATH"))
}

// newTemplateProject lays out a minimal copy of the project template
func newTemplateProject(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	writeProjectFile(t, dir, "pyproject.toml", "[project]\nname = \"my_package\"\nversion = \"0.1.0\"\n")
	writeProjectFile(t, dir, ".pre-commit-config.yaml", "repos: []\n")
	writeProjectFile(t, dir, ".git/HEAD", "ref: refs/heads/main\n")
	writeProjectFile(t, dir, "src/my_package/__init__.py", "")
	writeProjectFile(t, dir, "src/my_package/module.py", "def add(a: int, b: int) -> int:\n    return a + b\n")
	writeProjectFile(t, dir, "tests/test_module.py", "from my_package.module import add\n")

	// left behind by a developer; never copied into the workspace
	writeProjectFile(t, dir, ".venv/bin/activate", "# stale environment\n")
	writeProjectFile(t, dir, "src/my_package/__pycache__/module.pyc", "bytecode")
	return dir
}

func writeProjectFile(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, filepath.FromSlash(name))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("Failed to create %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
}

// defaultConfig returns the default configuration for project
func defaultConfig(project string) *config.Config {
	cfg := config.Default()
	cfg.Project.Dir = project
	return cfg
}
