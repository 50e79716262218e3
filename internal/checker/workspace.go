// ============================================================================
// tmplkit - Project Template Toolkit
// ============================================================================
//
// Package:     checker
// Description: Workspace is the disposable copy of a project the pipeline
//              runs in
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package checker

import (
	"path/filepath"

	tkerror "github.com/tmplkit/tmplkit/foundation/core/error"
	"github.com/tmplkit/tmplkit/foundation/utils/filex"
)

// Workspace owns one temporary directory
type Workspace struct {
	pattern string
	exclude []string

	source string
	dir    string
	files  int
}

// NewWorkspace returns a workspace whose directory name follows pattern
// (see os.MkdirTemp) and which skips paths matching exclude when copying
func NewWorkspace(pattern string, exclude []string) *Workspace {
	if pattern == "" {
		pattern = "tmplcheck-*"
	}
	return &Workspace{
		pattern: pattern,
		exclude: append([]string(nil), exclude...),
	}
}

// Prepare creates the temporary directory and copies src into it. On
// failure nothing is left behind.
func (w *Workspace) Prepare(src string) error {
	if w.dir != "" {
		return tkerror.New("workspace already prepared").
			WithCode(tkerror.CodeWorkspaceError).
			WithOperation("workspace.prepare").
			WithDetail("dir", w.dir)
	}

	abs, err := filepath.Abs(src)
	if err != nil {
		return w.error(err, "workspace.prepare", "failed to resolve project directory", src)
	}
	if !filex.IsDir(abs) {
		return tkerror.Newf("project directory not found: %s", src).
			WithCode(tkerror.CodeNotFound).
			WithOperation("workspace.prepare").
			WithDetail("source", src)
	}

	dir, err := filex.TempDir(w.pattern)
	if err != nil {
		return w.error(err, "workspace.prepare", "failed to create workspace", src)
	}

	n, err := filex.CopyTree(abs, dir, filex.TreeCopyOptions{Exclude: w.exclude})
	if err != nil {
		_ = filex.RemoveAll(dir)
		return w.error(err, "workspace.prepare", "failed to copy project into workspace", src)
	}

	w.source = abs
	w.dir = dir
	w.files = n
	return nil
}

// Source returns the absolute project directory that was copied
func (w *Workspace) Source() string { return w.source }

// Dir returns the workspace directory, empty before Prepare
func (w *Workspace) Dir() string { return w.dir }

// Files returns the number of files copied
func (w *Workspace) Files() int { return w.files }

// Cleanup removes the workspace directory. It is safe to call more than
// once.
func (w *Workspace) Cleanup() error {
	if w.dir == "" {
		return nil
	}
	if err := filex.RemoveAll(w.dir); err != nil {
		return w.error(err, "workspace.cleanup", "failed to remove workspace", w.source)
	}
	w.dir = ""
	return nil
}

func (w *Workspace) error(err error, operation, message, src string) *tkerror.Error {
	return tkerror.Wrap(err, message).
		WithCode(tkerror.CodeWorkspaceError).
		WithOperation(operation).
		WithDetail("source", src)
}
