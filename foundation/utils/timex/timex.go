// File: timex.go
// Title: Duration Utilities
// Description: Duration parsing that accepts Go syntax and spelled-out
//              units, and compact formatting for step timings.
// Version: v0.2.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.2.0: Reduced to duration parsing and formatting

package timex

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

var durationUnits = map[string]time.Duration{
	"millisecond": time.Millisecond,
	"second":      time.Second,
	"sec":         time.Second,
	"minute":      time.Minute,
	"min":         time.Minute,
	"hour":        time.Hour,
	"hr":          time.Hour,
	"day":         24 * time.Hour,
}

// ParseDuration parses Go duration strings ("90s", "1h30m") as well as
// "<number> <unit>" forms such as "2 minutes". Negative durations are
// rejected.
func ParseDuration(value string) (time.Duration, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, fmt.Errorf("empty duration string")
	}
	if strings.HasPrefix(value, "-") {
		return 0, fmt.Errorf("negative durations are not supported: %s", value)
	}

	if d, err := time.ParseDuration(value); err == nil {
		return d, nil
	}

	parts := strings.Fields(strings.ToLower(value))
	if len(parts) == 2 {
		if num, err := strconv.ParseFloat(parts[0], 64); err == nil {
			if unit, ok := durationUnits[strings.TrimSuffix(parts[1], "s")]; ok {
				return time.Duration(num * float64(unit)), nil
			}
		}
	}

	return 0, fmt.Errorf("unable to parse duration string: %s", value)
}

// FormatDurationCompact formats a duration as "1h 2m 3s", "2s 150ms" or
// "12ms". Units below a millisecond are dropped once a larger unit is
// present.
func FormatDurationCompact(d time.Duration) string {
	if d < 0 {
		return "-" + FormatDurationCompact(-d)
	}
	if d < time.Millisecond {
		if d == 0 {
			return "0s"
		}
		return fmt.Sprintf("%dµs", d.Microseconds())
	}

	var parts []string
	if hours := int(d.Hours()); hours > 0 {
		parts = append(parts, fmt.Sprintf("%dh", hours))
		d -= time.Duration(hours) * time.Hour
	}
	if minutes := int(d.Minutes()); minutes > 0 || len(parts) > 0 {
		parts = append(parts, fmt.Sprintf("%dm", minutes))
		d -= time.Duration(minutes) * time.Minute
	}
	if seconds := int(d.Seconds()); seconds > 0 || len(parts) > 0 {
		parts = append(parts, fmt.Sprintf("%ds", seconds))
		d -= time.Duration(seconds) * time.Second
	}
	// milliseconds only matter for short runs
	if ms := d.Milliseconds(); ms > 0 && len(parts) < 2 {
		parts = append(parts, fmt.Sprintf("%dms", ms))
	}
	if len(parts) == 0 {
		return "0s"
	}
	return strings.Join(parts, " ")
}
