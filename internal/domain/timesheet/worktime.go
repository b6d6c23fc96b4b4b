package timesheet

import (
	"fmt"
	"strconv"
	"strings"
)

// WorkResult holds the derived fields of a shift entry. The zero-value
// policy means an incomplete or invalid interval produces ZeroWork rather
// than an error.
type WorkResult struct {
	WorkDuration  string  // net worked time as "H:MM"
	WorkHours     float64 // net worked time as decimal hours
	BreakDuration string  // tiered break as "H:MM"
}

// ZeroWork is the canonical "no data" result for incomplete or invalid
// time entries.
var ZeroWork = WorkResult{WorkDuration: "0:00", WorkHours: 0, BreakDuration: "0:00"}

// ParseClock splits an "HH:MM" string into its hour and minute parts,
// zero-padding each side to two digits. Empty or colon-less input yields
// empty parts, which the caller treats as an unset time.
func ParseClock(s string) (hour string, minute string) {
	if s == "" || !strings.Contains(s, ":") {
		return "", ""
	}
	parts := strings.SplitN(s, ":", 2)
	hour, minute = parts[0], parts[1]
	if hour != "" {
		hour = pad2(hour)
	}
	if minute != "" {
		minute = pad2(minute)
	}
	return hour, minute
}

func pad2(s string) string {
	if len(s) < 2 {
		return strings.Repeat("0", 2-len(s)) + s
	}
	return s
}

// BreakMinutes returns the tiered break deduction for a span of worked
// minutes: up to 6h no break, up to 8h a 45-minute break, beyond that 90.
func BreakMinutes(spanMinutes int) int {
	switch {
	case spanMinutes <= 360:
		return 0
	case spanMinutes <= 480:
		return 45
	default:
		return 90
	}
}

// FormatDuration renders a minute count as "H:MM" with integer hours and
// zero-padded minutes.
func FormatDuration(minutes int) string {
	return fmt.Sprintf("%d:%02d", minutes/60, minutes%60)
}

// ComputeWorkTime derives break, net duration, and decimal hours from the
// four clock sub-fields. Any empty or unparseable input, or an end time at
// or before the start time, yields ZeroWork: incomplete entries are a
// policy, not a fault.
func ComputeWorkTime(startHour, startMinute, endHour, endMinute string) WorkResult {
	start, ok := clockMinutes(startHour, startMinute)
	if !ok {
		return ZeroWork
	}
	end, ok := clockMinutes(endHour, endMinute)
	if !ok {
		return ZeroWork
	}
	if end <= start {
		return ZeroWork
	}

	span := end - start
	breakMins := BreakMinutes(span)
	net := span - breakMins

	return WorkResult{
		WorkDuration:  FormatDuration(net),
		WorkHours:     float64(net) / 60,
		BreakDuration: FormatDuration(breakMins),
	}
}

func clockMinutes(hour, minute string) (int, bool) {
	if hour == "" || minute == "" {
		return 0, false
	}
	h, err := strconv.Atoi(hour)
	if err != nil {
		return 0, false
	}
	m, err := strconv.Atoi(minute)
	if err != nil {
		return 0, false
	}
	return h*60 + m, true
}
