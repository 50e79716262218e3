// File: filex.go
// Title: File and Directory Utilities
// Description: Existence checks, single file copy and recursive tree copy
//              with exclusion patterns, plus temporary directory helpers.
//              Tree copy is what the checker uses to build its disposable
//              workspace.
// Version: v0.2.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.2.0: Added CopyTree with exclusions and symlink handling

package filex

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

var copyBufferPool = sync.Pool{
	New: func() interface{} {
		buf := make([]byte, 32*1024)
		return &buf
	},
}

// FileCopyOptions represents options for file copy operations
type FileCopyOptions struct {
	PreserveMode    bool // Preserve file permissions
	PreserveTime    bool // Preserve modification time
	CreateDirs      bool // Create parent directories if they don't exist
	OverwriteTarget bool // Overwrite target if it exists
}

// DefaultCopyOptions returns default options for file copying
func DefaultCopyOptions() FileCopyOptions {
	return FileCopyOptions{
		PreserveMode: true,
		PreserveTime: true,
		CreateDirs:   true,
	}
}

// TreeCopyOptions controls CopyTree
type TreeCopyOptions struct {
	// Exclude holds filepath.Match patterns tested against each entry's base
	// name and its slash separated path relative to the source root.
	// Matching directories are skipped entirely.
	Exclude []string

	// FollowSymlinks copies the target of symbolic links instead of
	// recreating the links.
	FollowSymlinks bool
}

// Exists checks if a file or directory exists
func Exists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}

// IsFile checks if the path is a regular file
func IsFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// IsDir checks if the path is a directory
func IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// Copy copies a single file from src to dst
func Copy(src, dst string, options ...FileCopyOptions) error {
	opts := DefaultCopyOptions()
	if len(options) > 0 {
		opts = options[0]
	}

	srcInfo, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("source file does not exist: %s: %w", src, err)
	}
	if srcInfo.IsDir() {
		return fmt.Errorf("source is a directory, use CopyTree: %s", src)
	}

	if Exists(dst) && !opts.OverwriteTarget {
		return fmt.Errorf("destination file exists and overwrite is disabled: %s", dst)
	}

	if opts.CreateDirs {
		if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
			return fmt.Errorf("failed to create parent directories: %w", err)
		}
	}

	srcFile, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open source file %s: %w", src, err)
	}
	defer srcFile.Close()

	dstFile, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("failed to create destination file %s: %w", dst, err)
	}

	bufp := copyBufferPool.Get().(*[]byte)
	_, err = io.CopyBuffer(dstFile, srcFile, *bufp)
	copyBufferPool.Put(bufp)
	if cerr := dstFile.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("failed to copy file content %s: %w", src, err)
	}

	if opts.PreserveMode {
		if err := os.Chmod(dst, srcInfo.Mode().Perm()); err != nil {
			return fmt.Errorf("failed to preserve file mode: %w", err)
		}
	}
	if opts.PreserveTime {
		if err := os.Chtimes(dst, srcInfo.ModTime(), srcInfo.ModTime()); err != nil {
			return fmt.Errorf("failed to preserve file time: %w", err)
		}
	}

	return nil
}

// CopyTree recursively copies the directory src into dst, which may already
// exist. Existing files in dst are overwritten. It returns the number of
// files copied.
func CopyTree(src, dst string, opts TreeCopyOptions) (int, error) {
	srcInfo, err := os.Stat(src)
	if err != nil {
		return 0, fmt.Errorf("source directory does not exist: %s: %w", src, err)
	}
	if !srcInfo.IsDir() {
		return 0, fmt.Errorf("source is not a directory: %s", src)
	}

	absSrc, err := filepath.Abs(src)
	if err != nil {
		return 0, err
	}
	absDst, err := filepath.Abs(dst)
	if err != nil {
		return 0, err
	}
	if rel, err := filepath.Rel(absSrc, absDst); err == nil && rel != ".." && !startsWithParent(rel) {
		return 0, fmt.Errorf("destination %s is inside source %s", dst, src)
	}

	if err := os.MkdirAll(dst, srcInfo.Mode().Perm()|0o700); err != nil {
		return 0, fmt.Errorf("failed to create destination directory: %w", err)
	}

	copied := 0
	err = filepath.WalkDir(src, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}

		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		if rel == "." {
			return nil
		}

		if Excluded(rel, opts.Exclude) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		target := filepath.Join(dst, rel)
		info, err := d.Info()
		if err != nil {
			return err
		}

		switch {
		case info.Mode()&fs.ModeSymlink != 0 && !opts.FollowSymlinks:
			link, err := os.Readlink(path)
			if err != nil {
				return fmt.Errorf("failed to read symlink %s: %w", path, err)
			}
			_ = os.Remove(target)
			if err := os.Symlink(link, target); err != nil {
				return fmt.Errorf("failed to create symlink %s: %w", target, err)
			}
			return nil

		case d.IsDir():
			return os.MkdirAll(target, info.Mode().Perm()|0o700)

		case info.Mode()&fs.ModeSymlink != 0 || info.Mode().IsRegular():
			opts := DefaultCopyOptions()
			opts.OverwriteTarget = true
			if err := Copy(path, target, opts); err != nil {
				return err
			}
			copied++
			return nil

		default:
			// sockets, devices and pipes are not part of a project tree
			return nil
		}
	})
	if err != nil {
		return copied, fmt.Errorf("failed to copy tree %s: %w", src, err)
	}

	return copied, nil
}

// Excluded reports whether the relative path rel matches one of patterns,
// either by base name or by full slash separated path.
func Excluded(rel string, patterns []string) bool {
	slashed := filepath.ToSlash(rel)
	base := filepath.Base(rel)
	for _, pattern := range patterns {
		if ok, _ := filepath.Match(pattern, base); ok {
			return true
		}
		if ok, _ := filepath.Match(pattern, slashed); ok {
			return true
		}
	}
	return false
}

func startsWithParent(rel string) bool {
	return len(rel) >= 3 && rel[:3] == ".."+string(filepath.Separator)
}

// TempDir creates a temporary directory
func TempDir(pattern string) (string, error) {
	tmpDir, err := os.MkdirTemp("", pattern)
	if err != nil {
		return "", fmt.Errorf("failed to create temporary directory: %w", err)
	}
	return tmpDir, nil
}

// RemoveAll removes path and everything below it. A missing path is not an
// error.
func RemoveAll(path string) error {
	if err := os.RemoveAll(path); err != nil {
		return fmt.Errorf("failed to remove %s: %w", path, err)
	}
	return nil
}
