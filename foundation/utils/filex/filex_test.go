// File: filex_test.go
// Title: File and Directory Utilities Tests
// Description: Tests for existence checks, file copy and tree copy.
// Version: v0.2.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.2.0: Tests for CopyTree and Excluded

package filex

import (
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"testing"
)

func setupTestDir(t *testing.T) string {
	t.Helper()
	tmpDir, err := os.MkdirTemp("", "filex_test")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(tmpDir) })
	return tmpDir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func TestExistsIsFileIsDir(t *testing.T) {
	dir := setupTestDir(t)
	file := filepath.Join(dir, "a.txt")
	writeFile(t, file, "x")

	if !Exists(file) || !IsFile(file) || IsDir(file) {
		t.Errorf("file checks wrong for %s", file)
	}
	if !Exists(dir) || IsFile(dir) || !IsDir(dir) {
		t.Errorf("dir checks wrong for %s", dir)
	}
	missing := filepath.Join(dir, "missing")
	if Exists(missing) || IsFile(missing) || IsDir(missing) {
		t.Errorf("missing path reported as present")
	}
}

func TestCopy(t *testing.T) {
	dir := setupTestDir(t)
	src := filepath.Join(dir, "src.txt")
	writeFile(t, src, "hello")

	dst := filepath.Join(dir, "nested", "dst.txt")
	if err := Copy(src, dst); err != nil {
		t.Fatalf("Copy() error = %v", err)
	}
	got, err := os.ReadFile(dst)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(got) != "hello" {
		t.Errorf("content = %q, want %q", got, "hello")
	}

	if err := Copy(src, dst); err == nil {
		t.Error("Copy() onto existing file without overwrite should fail")
	}

	opts := DefaultCopyOptions()
	opts.OverwriteTarget = true
	writeFile(t, src, "again")
	if err := Copy(src, dst, opts); err != nil {
		t.Fatalf("Copy() with overwrite error = %v", err)
	}
	got, _ = os.ReadFile(dst)
	if string(got) != "again" {
		t.Errorf("content = %q, want %q", got, "again")
	}

	if err := Copy(dir, filepath.Join(dir, "x")); err == nil {
		t.Error("Copy() of a directory should fail")
	}
	if err := Copy(filepath.Join(dir, "none"), filepath.Join(dir, "y")); err == nil {
		t.Error("Copy() of a missing file should fail")
	}
}

func TestExcluded(t *testing.T) {
	patterns := []string{".git", "__pycache__", "*.pyc", "build/out"}

	tests := []struct {
		rel  string
		want bool
	}{
		{".git", true},
		{filepath.Join("src", "__pycache__"), true},
		{filepath.Join("src", "mod.pyc"), true},
		{filepath.Join("build", "out"), true},
		{filepath.Join("src", "mod.py"), false},
		{"build", false},
		{".gitignore", false},
	}

	for _, tt := range tests {
		t.Run(tt.rel, func(t *testing.T) {
			if got := Excluded(tt.rel, patterns); got != tt.want {
				t.Errorf("Excluded(%q) = %v, want %v", tt.rel, got, tt.want)
			}
		})
	}
}

func TestCopyTree(t *testing.T) {
	root := setupTestDir(t)
	src := filepath.Join(root, "project")
	writeFile(t, filepath.Join(src, "pyproject.toml"), "[project]\n")
	writeFile(t, filepath.Join(src, "src", "my_package", "__init__.py"), "")
	writeFile(t, filepath.Join(src, "src", "my_package", "__pycache__", "x.pyc"), "bin")
	writeFile(t, filepath.Join(src, ".git", "HEAD"), "ref")
	writeFile(t, filepath.Join(src, ".pre-commit-config.yaml"), "repos: []\n")

	dst := filepath.Join(root, "copy")
	n, err := CopyTree(src, dst, TreeCopyOptions{Exclude: []string{".git", "__pycache__"}})
	if err != nil {
		t.Fatalf("CopyTree() error = %v", err)
	}
	if n != 3 {
		t.Errorf("CopyTree() copied %d files, want 3", n)
	}

	var got []string
	err = filepath.Walk(dst, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() {
			rel, _ := filepath.Rel(dst, path)
			got = append(got, filepath.ToSlash(rel))
		}
		return nil
	})
	if err != nil {
		t.Fatalf("walk: %v", err)
	}
	sort.Strings(got)

	want := []string{".pre-commit-config.yaml", "pyproject.toml", "src/my_package/__init__.py"}
	if len(got) != len(want) {
		t.Fatalf("copied files = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("copied files[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestCopyTreeSymlink(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks need privileges on windows")
	}
	root := setupTestDir(t)
	src := filepath.Join(root, "project")
	writeFile(t, filepath.Join(src, "real.txt"), "data")
	if err := os.Symlink("real.txt", filepath.Join(src, "link.txt")); err != nil {
		t.Fatalf("symlink: %v", err)
	}

	dst := filepath.Join(root, "copy")
	if _, err := CopyTree(src, dst, TreeCopyOptions{}); err != nil {
		t.Fatalf("CopyTree() error = %v", err)
	}
	target, err := os.Readlink(filepath.Join(dst, "link.txt"))
	if err != nil {
		t.Fatalf("link not recreated: %v", err)
	}
	if target != "real.txt" {
		t.Errorf("link target = %q, want %q", target, "real.txt")
	}

	followed := filepath.Join(root, "followed")
	if _, err := CopyTree(src, followed, TreeCopyOptions{FollowSymlinks: true}); err != nil {
		t.Fatalf("CopyTree() follow error = %v", err)
	}
	info, err := os.Lstat(filepath.Join(followed, "link.txt"))
	if err != nil {
		t.Fatalf("lstat: %v", err)
	}
	if info.Mode()&os.ModeSymlink != 0 {
		t.Error("FollowSymlinks should produce a regular file")
	}
}

func TestCopyTreeErrors(t *testing.T) {
	root := setupTestDir(t)
	file := filepath.Join(root, "file.txt")
	writeFile(t, file, "x")

	if _, err := CopyTree(filepath.Join(root, "missing"), filepath.Join(root, "d1"), TreeCopyOptions{}); err == nil {
		t.Error("missing source should fail")
	}
	if _, err := CopyTree(file, filepath.Join(root, "d2"), TreeCopyOptions{}); err == nil {
		t.Error("file source should fail")
	}
	if _, err := CopyTree(root, filepath.Join(root, "inner"), TreeCopyOptions{}); err == nil {
		t.Error("destination inside source should fail")
	}
}

func TestTempDirAndRemoveAll(t *testing.T) {
	dir, err := TempDir("filex-*")
	if err != nil {
		t.Fatalf("TempDir() error = %v", err)
	}
	writeFile(t, filepath.Join(dir, "a", "b.txt"), "x")

	if err := RemoveAll(dir); err != nil {
		t.Fatalf("RemoveAll() error = %v", err)
	}
	if Exists(dir) {
		t.Error("directory still exists after RemoveAll")
	}
	if err := RemoveAll(dir); err != nil {
		t.Errorf("RemoveAll() on missing path error = %v", err)
	}
}
