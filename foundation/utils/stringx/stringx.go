// File: stringx.go
// Title: String Utilities
// Description: Blank checks and the truncation helpers used to keep process
//              output readable in error messages and reports.
// Version: v0.2.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.2.0: Reduced to the helpers used by config and checker, added TailLines

package stringx

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// IsBlank returns true if the string is empty or contains only whitespace
func IsBlank(s string) bool {
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// DefaultIfBlank returns def when s is blank, s otherwise
func DefaultIfBlank(s, def string) string {
	if IsBlank(s) {
		return def
	}
	return s
}

// Truncate shortens s to at most maxLen runes, ending with ellipsis when
// something was cut. If the ellipsis does not fit, the plain prefix is
// returned.
func Truncate(s string, maxLen int, ellipsis string) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}

	ellipsisLen := utf8.RuneCountInString(ellipsis)
	if ellipsisLen >= maxLen {
		return string([]rune(s)[:maxLen])
	}
	return string([]rune(s)[:maxLen-ellipsisLen]) + ellipsis
}

// TailLines returns the last n lines of s. Trailing newlines are ignored and
// a marker line reports how many lines were dropped.
func TailLines(s string, n int) string {
	s = strings.TrimRight(s, "\r\n")
	if n <= 0 || s == "" {
		return ""
	}

	lines := strings.Split(s, "\n")
	if len(lines) <= n {
		return s
	}

	dropped := len(lines) - n
	return "... (" + strconv.Itoa(dropped) + " earlier lines omitted)\n" + strings.Join(lines[dropped:], "\n")
}

// Indent prefixes every non-empty line of s with prefix
func Indent(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = prefix + line
		}
	}
	return strings.Join(lines, "\n")
}
