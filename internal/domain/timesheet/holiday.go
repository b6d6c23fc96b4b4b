package timesheet

import "time"

// fixedHolidays lists the ten fixed-date Japanese public holidays, keyed by
// (month, day) independent of year. Equinox-dependent and substitute
// holidays are intentionally not covered.
var fixedHolidays = []struct {
	Month time.Month
	Day   int
}{
	{time.January, 1},   // New Year's Day
	{time.February, 11}, // National Foundation Day
	{time.February, 23}, // Emperor's Birthday
	{time.April, 29},    // Showa Day
	{time.May, 3},       // Constitution Day
	{time.May, 4},       // Greenery Day
	{time.May, 5},       // Children's Day
	{time.August, 11},   // Mountain Day
	{time.November, 3},  // Culture Day
	{time.November, 23}, // Labor Thanksgiving Day
}

// IsHoliday reports whether the date matches one of the fixed annual
// holidays. The dashboard renders a holiday sub-label even on weekdays.
func IsHoliday(d CalendarDate) bool {
	for _, h := range fixedHolidays {
		if h.Month == d.Month && h.Day == d.Day {
			return true
		}
	}
	return false
}

// IsWeekendOrHoliday reports whether the date is a non-working day:
// Saturday, Sunday, or a fixed holiday. Entries on such dates are not
// editable.
func IsWeekendOrHoliday(d CalendarDate) bool {
	return d.Weekday == time.Sunday || d.Weekday == time.Saturday || IsHoliday(d)
}
