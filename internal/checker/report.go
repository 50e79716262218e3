// ============================================================================
// tmplkit - Project Template Toolkit
// ============================================================================
//
// Package:     checker
// Description: Run report and its console and JSON renderings
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package checker

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/tmplkit/tmplkit/foundation/utils/stringx"
	"github.com/tmplkit/tmplkit/foundation/utils/timex"
)

// Report describes one integration check run
type Report struct {
	RunID        string       `json:"run_id"`
	SourceDir    string       `json:"source_dir"`
	WorkspaceDir string       `json:"workspace_dir,omitempty"`
	Steps        []StepResult `json:"steps"`
	Skipped      []string     `json:"skipped,omitempty"`
	Passed       bool         `json:"passed"`
	FailedStep   string       `json:"failed_step,omitempty"`
	Canceled     bool         `json:"canceled,omitempty"`
	Started      time.Time    `json:"started"`
	Finished     time.Time    `json:"finished"`
}

// Duration returns the wall time of the run
func (r *Report) Duration() time.Duration {
	if r.Finished.IsZero() {
		return 0
	}
	return r.Finished.Sub(r.Started)
}

// Failure returns the result of the failed step, if it ran
func (r *Report) Failure() (StepResult, bool) {
	if r.FailedStep == "" {
		return StepResult{}, false
	}
	for _, s := range r.Steps {
		if s.Name == r.FailedStep {
			return s, true
		}
	}
	return StepResult{}, false
}

// Color palette
var (
	ColorSuccess = lipgloss.Color("#10B981") // Emerald
	ColorWarning = lipgloss.Color("#F59E0B") // Amber
	ColorError   = lipgloss.Color("#EF4444") // Red
	ColorMuted   = lipgloss.Color("#6B7280") // Gray
	ColorPrimary = lipgloss.Color("#8B5CF6") // Violet
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	mutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	passStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess).
			Bold(true)

	failStyle = lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true)

	warnStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)

	nameStyle = lipgloss.NewStyle().Width(22)

	badgeStyle = lipgloss.NewStyle().Width(14)

	diagnosticStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorError).
			Padding(0, 1)
)

// statusBadge returns the rendered label for a step status
func statusBadge(status StepStatus) string {
	switch status {
	case StatusPassed:
		return passStyle.Render("PASS")
	case StatusFailed:
		return failStyle.Render("FAIL")
	case StatusNotAsserted:
		return warnStyle.Render("NOT ASSERTED")
	default:
		return mutedStyle.Render("SKIP")
	}
}

// maxCommandWidth bounds the command shown in a step row
const maxCommandWidth = 48

// Render writes a human readable summary of r. The output of the failed
// step is quoted in full below the table.
func Render(w io.Writer, r *Report) error {
	var rows []string
	rows = append(rows, titleStyle.Render("Integration check "+r.RunID))
	rows = append(rows, mutedStyle.Render("project   "+r.SourceDir))
	if r.WorkspaceDir != "" {
		rows = append(rows, mutedStyle.Render("workspace "+r.WorkspaceDir))
	}
	rows = append(rows, "")

	for _, s := range r.Steps {
		detail := fmt.Sprintf("exit %d  %s  %s", s.ExitCode, timex.FormatDurationCompact(s.Duration),
			stringx.Truncate(s.Command, maxCommandWidth, "..."))
		if s.TimedOut {
			detail = "timed out after " + timex.FormatDurationCompact(s.Duration)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top,
			badgeStyle.Render(statusBadge(s.Status())),
			nameStyle.Render(s.Name),
			mutedStyle.Render(detail),
		))
	}
	for _, name := range r.Skipped {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top,
			badgeStyle.Render(statusBadge(StatusSkipped)),
			nameStyle.Render(name),
		))
	}

	rows = append(rows, "")
	summary := fmt.Sprintf("%d step(s) in %s", len(r.Steps), timex.FormatDurationCompact(r.Duration()))
	switch {
	case r.Passed:
		rows = append(rows, passStyle.Render("PASSED")+"  "+mutedStyle.Render(summary))
	case r.Canceled && r.FailedStep == "":
		rows = append(rows, failStyle.Render("CANCELED")+"  "+mutedStyle.Render(summary))
	default:
		failed := stringx.DefaultIfBlank(r.FailedStep, "setup")
		rows = append(rows, failStyle.Render("FAILED at "+failed)+"  "+mutedStyle.Render(summary))
	}

	if f, ok := r.Failure(); ok {
		var diag strings.Builder
		fmt.Fprintf(&diag, "$ %s\n", f.Command)
		if stderr := strings.TrimRight(f.Stderr, "\n"); stderr != "" {
			fmt.Fprintf(&diag, "stderr:\n%s\n", stringx.Indent(stderr, "  "))
		}
		if stdout := strings.TrimRight(f.Stdout, "\n"); stdout != "" {
			fmt.Fprintf(&diag, "stdout:\n%s\n", stringx.Indent(stdout, "  "))
		}
		rows = append(rows, "", diagnosticStyle.Render(strings.TrimRight(diag.String(), "\n")))
	}

	_, err := fmt.Fprintln(w, lipgloss.JoinVertical(lipgloss.Left, rows...))
	return err
}

// RenderJSON writes r as indented JSON
func RenderJSON(w io.Writer, r *Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}
