package timesheet

import (
	"fmt"
	"math"
)

// EditField names an independently editable attribute of a ShiftEntry.
type EditField string

const (
	FieldWorkplace   EditField = "workplace"
	FieldStartTime   EditField = "start_time"
	FieldEndTime     EditField = "end_time"
	FieldStartHour   EditField = "start_hour"
	FieldStartMinute EditField = "start_minute"
	FieldEndHour     EditField = "end_hour"
	FieldEndMinute   EditField = "end_minute"
)

// EditFieldValues is used by DTO validation.
var EditFieldValues = []string{
	string(FieldWorkplace),
	string(FieldStartTime),
	string(FieldEndTime),
	string(FieldStartHour),
	string(FieldStartMinute),
	string(FieldEndHour),
	string(FieldEndMinute),
}

// timeSubFields are the four fields whose edits trigger recomputation of
// the derived break/duration/hours values.
var timeSubFields = map[EditField]bool{
	FieldStartHour:   true,
	FieldStartMinute: true,
	FieldEndHour:     true,
	FieldEndMinute:   true,
}

// BuildGrid merges persisted rows into the generated month dates, producing
// one entry per date. Rows match on the exact "YYYY-MM-DD" key; dates with
// no row get an empty entry. Hour and minute sub-fields are re-derived by
// splitting the stored "HH:MM" strings.
func BuildGrid(dates []CalendarDate, rows []ShiftRow) []ShiftEntry {
	byDate := make(map[string]ShiftRow, len(rows))
	for _, row := range rows {
		byDate[row.WorkDate] = row
	}

	entries := make([]ShiftEntry, 0, len(dates))
	for _, date := range dates {
		row, ok := byDate[date.Key()]
		if !ok {
			entries = append(entries, EmptyEntry(date))
			continue
		}
		entries = append(entries, entryFromRow(date, row))
	}
	return entries
}

func entryFromRow(date CalendarDate, row ShiftRow) ShiftEntry {
	entry := EmptyEntry(date)
	if row.Workplace != nil {
		entry.Workplace = Workplace(*row.Workplace)
	}
	if row.StartTime != nil {
		entry.StartTime = *row.StartTime
		entry.StartHour, entry.StartMinute = ParseClock(*row.StartTime)
	}
	if row.EndTime != nil {
		entry.EndTime = *row.EndTime
		entry.EndHour, entry.EndMinute = ParseClock(*row.EndTime)
	}
	if row.BreakTime != "" {
		entry.BreakDuration = row.BreakTime
	}
	entry.WorkHours = row.WorkHours
	// Round before truncating so 8.25h comes back as exactly 495 minutes.
	entry.WorkDuration = FormatDuration(int(math.Round(row.WorkHours * 60)))
	return entry
}

// ApplyEdit replaces a single field of the entry and, for the four time
// sub-fields, recomputes the derived values in the same update. It is a
// pure reducer: the input entry is not mutated.
func ApplyEdit(entry ShiftEntry, field EditField, value string) (ShiftEntry, error) {
	switch field {
	case FieldWorkplace:
		entry.Workplace = Workplace(value)
	case FieldStartTime:
		entry.StartTime = value
	case FieldEndTime:
		entry.EndTime = value
	case FieldStartHour:
		entry.StartHour = value
	case FieldStartMinute:
		entry.StartMinute = value
	case FieldEndHour:
		entry.EndHour = value
	case FieldEndMinute:
		entry.EndMinute = value
	default:
		return entry, fmt.Errorf("%w: %q", ErrUnknownField, field)
	}

	if timeSubFields[field] {
		result := ComputeWorkTime(entry.StartHour, entry.StartMinute, entry.EndHour, entry.EndMinute)
		entry.WorkDuration = result.WorkDuration
		entry.WorkHours = result.WorkHours
		entry.BreakDuration = result.BreakDuration
	}
	return entry, nil
}

// WorkingShifts filters the grid down to the entries eligible for
// persistence.
func WorkingShifts(entries []ShiftEntry) []ShiftEntry {
	var working []ShiftEntry
	for _, e := range entries {
		if e.IsWorkingShift() {
			working = append(working, e)
		}
	}
	return working
}

// RowsForSave transforms working shifts into their persisted form. Times
// are reassembled from the parsed sub-fields, not from the raw text.
func RowsForSave(employeeID string, working []ShiftEntry) []ShiftRow {
	rows := make([]ShiftRow, 0, len(working))
	for _, e := range working {
		workplace := string(e.Workplace)
		start := e.StartHour + ":" + e.StartMinute
		end := e.EndHour + ":" + e.EndMinute
		rows = append(rows, ShiftRow{
			EmployeeID: employeeID,
			WorkDate:   e.Date.Key(),
			Workplace:  &workplace,
			StartTime:  &start,
			EndTime:    &end,
			BreakTime:  e.BreakDuration,
			WorkHours:  e.WorkHours,
		})
	}
	return rows
}

// MonthSummary aggregates the read-only numbers shown under the grid.
type MonthSummary struct {
	WorkingDays  int     `json:"working_days"`
	TotalHours   float64 `json:"total_hours"`
	AverageHours float64 `json:"average_hours"`
}

// Summarize counts entries with a workplace that fall on a working day and
// totals the computed hours across the month.
func Summarize(entries []ShiftEntry) MonthSummary {
	var summary MonthSummary
	for _, e := range entries {
		summary.TotalHours += e.WorkHours
		if e.Workplace != "" && !IsWeekendOrHoliday(e.Date) {
			summary.WorkingDays++
		}
	}
	// The divisor is clamped to one so hours persisted on weekend or
	// holiday rows still yield an average when no weekday counts.
	if summary.TotalHours > 0 {
		days := summary.WorkingDays
		if days < 1 {
			days = 1
		}
		summary.AverageHours = summary.TotalHours / float64(days)
	}
	return summary
}
