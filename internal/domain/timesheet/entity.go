package timesheet

// Workplace is the fixed set of places a shift can be worked from. The
// empty string means not yet chosen.
type Workplace string

const (
	WorkplaceHome       Workplace = "home"
	WorkplaceOffice     Workplace = "office"
	WorkplaceUniversity Workplace = "university"
)

// WorkplaceValues is used by DTO validation.
var WorkplaceValues = []string{
	string(WorkplaceHome),
	string(WorkplaceOffice),
	string(WorkplaceUniversity),
}

// ShiftEntry is one editable row of the month grid, one per calendar day.
// Workplace and the time fields are the only independently editable
// attributes; BreakDuration, WorkDuration, and WorkHours are recomputed by
// ComputeWorkTime whenever a time sub-field changes.
type ShiftEntry struct {
	Date      CalendarDate
	Workplace Workplace

	// Raw "HH:MM" text as typed, kept separately from the parsed
	// sub-fields the computation runs on.
	StartTime string
	EndTime   string

	StartHour   string
	StartMinute string
	EndHour     string
	EndMinute   string

	BreakDuration string
	WorkDuration  string
	WorkHours     float64
}

// EmptyEntry returns the grid row for a date with no persisted shift.
func EmptyEntry(date CalendarDate) ShiftEntry {
	return ShiftEntry{
		Date:          date,
		BreakDuration: ZeroWork.BreakDuration,
		WorkDuration:  ZeroWork.WorkDuration,
		WorkHours:     ZeroWork.WorkHours,
	}
}

// IsWorkingShift reports whether the entry is eligible for persistence:
// a workplace is chosen and both start and end hours are set. Anything
// less is treated as incomplete and skipped on save.
func (e ShiftEntry) IsWorkingShift() bool {
	return e.Workplace != "" && e.StartHour != "" && e.EndHour != ""
}

// ShiftRow is the persisted representation of a shift, one row per
// work_date. Workplace and times are nullable in the store, but only
// working shifts are ever inserted.
type ShiftRow struct {
	EmployeeID string
	WorkDate   string // "YYYY-MM-DD"
	Workplace  *string
	StartTime  *string // "HH:MM"
	EndTime    *string // "HH:MM"
	BreakTime  string  // "H:MM"
	WorkHours  float64
}
