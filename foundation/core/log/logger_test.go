// File: logger_test.go
// Title: Logger Tests
// Description: Tests for level filtering, formats, persistent fields,
//              correlation IDs, structured error logging and timers.
// Version: v0.2.0
// Created: 2026-10-18
// Modified: 2026-10-18

package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	tkerror "github.com/tmplkit/tmplkit/foundation/core/error"
)

func newBufferLogger(level Level, format Format) (*Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return NewWithConfig(Config{Level: level, Format: format, Output: buf, Name: "test"}), buf
}

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()
	var out []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var m map[string]interface{}
		if err := json.Unmarshal([]byte(line), &m); err != nil {
			t.Fatalf("invalid JSON line %q: %v", line, err)
		}
		out = append(out, m)
	}
	return out
}

func TestLevelFiltering(t *testing.T) {
	logger, buf := newBufferLogger(LevelWarn, FormatJSON)

	logger.Debug("hidden")
	logger.Info("hidden")
	logger.Warn("shown")
	logger.Error("shown too")

	lines := decodeLines(t, buf)
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2: %s", len(lines), buf.String())
	}
	if lines[0]["level"] != "warn" || lines[1]["level"] != "error" {
		t.Errorf("levels = %v, %v", lines[0]["level"], lines[1]["level"])
	}
}

func TestJSONFields(t *testing.T) {
	logger, buf := newBufferLogger(LevelInfo, FormatJSON)
	logger = logger.WithField("component", "pipeline").WithCorrelationID("run-1")

	logger.Info("running step", Field("step", "mypy"))

	lines := decodeLines(t, buf)
	if len(lines) != 1 {
		t.Fatalf("got %d lines", len(lines))
	}
	entry := lines[0]
	checks := map[string]interface{}{
		"message":        "running step",
		"logger":         "test",
		"component":      "pipeline",
		"step":           "mypy",
		"correlation_id": "run-1",
	}
	for k, want := range checks {
		if entry[k] != want {
			t.Errorf("%s = %v, want %v", k, entry[k], want)
		}
	}
}

func TestWithFieldDoesNotMutateParent(t *testing.T) {
	parent, buf := newBufferLogger(LevelInfo, FormatJSON)
	_ = parent.WithField("child", true)

	parent.Info("parent entry")

	lines := decodeLines(t, buf)
	if _, ok := lines[0]["child"]; ok {
		t.Error("child field leaked into parent logger")
	}
}

func TestTextFormatSortedFields(t *testing.T) {
	logger, buf := newBufferLogger(LevelInfo, FormatText)
	logger.Info("step finished", Fields{"step": "mypy", "exit_code": 0, "asserted": true})

	line := buf.String()
	if !strings.Contains(line, "[INF] {test} step finished [asserted=true exit_code=0 step=mypy]") {
		t.Errorf("unexpected text line: %q", line)
	}
}

func TestConsoleFormatColors(t *testing.T) {
	logger, buf := newBufferLogger(LevelInfo, FormatConsole)
	logger.Error("boom")

	if !strings.HasPrefix(buf.String(), LevelError.Color()) {
		t.Errorf("console output not colored: %q", buf.String())
	}
	if !strings.HasSuffix(buf.String(), "\033[0m\n") {
		t.Errorf("console output not reset: %q", buf.String())
	}
}

func TestLogErrorStructured(t *testing.T) {
	logger, buf := newBufferLogger(LevelTrace, FormatJSON)

	err := tkerror.New("mypy failed").
		WithCode(tkerror.CodeExternalToolFailed).
		WithOperation("checker.Pipeline.Run").
		WithDetail("step", "mypy")
	logger.LogError(err)

	lines := decodeLines(t, buf)
	entry := lines[0]
	if entry["level"] != "error" {
		t.Errorf("level = %v, want error", entry["level"])
	}
	if entry["error_code"] != "EXTERNAL_TOOL_FAILED" {
		t.Errorf("error_code = %v", entry["error_code"])
	}
	if entry["error_step"] != "mypy" {
		t.Errorf("error_step = %v", entry["error_step"])
	}
	details, ok := entry["error_details"].(map[string]interface{})
	if !ok {
		t.Fatalf("error_details missing: %v", entry)
	}
	if _, ok := details["stack_trace"]; ok {
		t.Error("stack trace should not be logged")
	}
}

func TestLogErrorSeverityLevels(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"low severity logs warn", tkerror.New("x").WithCode(tkerror.CodeTypeMismatch), "warn"},
		{"high severity logs error", tkerror.New("x").WithCode(tkerror.CodeWorkspaceError), "error"},
		{"plain error logs error", errors.New("plain"), "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, buf := newBufferLogger(LevelTrace, FormatJSON)
			logger.LogError(tt.err)
			if got := decodeLines(t, buf)[0]["level"]; got != tt.want {
				t.Errorf("level = %v, want %v", got, tt.want)
			}
		})
	}

	logger, buf := newBufferLogger(LevelTrace, FormatJSON)
	logger.LogError(nil)
	if buf.Len() != 0 {
		t.Error("LogError(nil) wrote output")
	}
}

func TestTimer(t *testing.T) {
	logger, buf := newBufferLogger(LevelDebug, FormatJSON)

	timer := logger.StartTimer("step mypy").WithField("step", "mypy")
	time.Sleep(2 * time.Millisecond)
	elapsed := timer.Stop()

	if elapsed < 2*time.Millisecond {
		t.Errorf("elapsed = %v, want >= 2ms", elapsed)
	}
	if again := timer.Stop(); again != 0 {
		t.Errorf("second Stop() = %v, want 0", again)
	}

	lines := decodeLines(t, buf)
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1", len(lines))
	}
	if lines[0]["message"] != "step mypy completed" {
		t.Errorf("message = %v", lines[0]["message"])
	}
	if _, ok := lines[0]["duration_ms"]; !ok {
		t.Error("duration_ms missing")
	}
}

func TestTimerStopWithError(t *testing.T) {
	logger, buf := newBufferLogger(LevelDebug, FormatJSON)

	logger.StartTimer("copy workspace").StopWithError(errors.New("disk full"))

	entry := decodeLines(t, buf)[0]
	if entry["level"] != "error" || entry["error"] != "disk full" {
		t.Errorf("entry = %v", entry)
	}
}

func TestNop(t *testing.T) {
	logger := Nop()
	logger.Error("nothing")
	if LevelFatal.ShouldLog(logger.GetLevel()) {
		t.Error("Nop logger has fatal enabled")
	}
}

func TestParseLevelAndFormat(t *testing.T) {
	levels := map[string]Level{"trace": LevelTrace, "DEBUG": LevelDebug, "": LevelInfo, "warning": LevelWarn, "err": LevelError}
	for in, want := range levels {
		got, err := ParseLevel(in)
		if err != nil || got != want {
			t.Errorf("ParseLevel(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Error("ParseLevel(loud) error = nil")
	}

	formats := map[string]Format{"json": FormatJSON, "Text": FormatText, "": FormatConsole}
	for in, want := range formats {
		got, err := ParseFormat(in)
		if err != nil || got != want {
			t.Errorf("ParseFormat(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Error("ParseFormat(xml) error = nil")
	}
}
