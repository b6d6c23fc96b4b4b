package timesheet

import (
	"fmt"
	"time"
)

// CalendarDate is a plain wall-clock date with its derived weekday.
// It is regenerated whenever the viewed month changes and never persisted.
type CalendarDate struct {
	Year    int
	Month   time.Month
	Day     int
	Weekday time.Weekday
}

func NewCalendarDate(year int, month time.Month, day int) CalendarDate {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return CalendarDate{
		Year:    t.Year(),
		Month:   t.Month(),
		Day:     t.Day(),
		Weekday: t.Weekday(),
	}
}

// Key renders the date as "YYYY-MM-DD" with zero padding. Grid merging and
// persistence both match rows on this exact string.
func (d CalendarDate) Key() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// MonthDates returns every date of the given month in order, first to last.
// The month length comes from "day 0 of the next month", so leap years and
// 30/31-day months fall out of time.Date normalization.
func MonthDates(year int, month time.Month) []CalendarDate {
	daysInMonth := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()

	dates := make([]CalendarDate, 0, daysInMonth)
	for day := 1; day <= daysInMonth; day++ {
		dates = append(dates, NewCalendarDate(year, month, day))
	}
	return dates
}

// MonthBounds returns the first and last date keys of the month, used for
// the inclusive range query against the shift store.
func MonthBounds(year int, month time.Month) (first string, last string) {
	dates := MonthDates(year, month)
	return dates[0].Key(), dates[len(dates)-1].Key()
}
