package timesheet

import (
	"strings"
	"time"

	"github.com/shiftnote/shiftnote-backend-go/internal/pkg/validator"
)

type LoadMonthRequest struct {
	Month string `json:"month"` // "YYYY-MM"
}

func (r *LoadMonthRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Month) {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month is required",
		})
	} else if _, ok := validator.IsValidMonth(r.Month); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be in YYYY-MM format",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// YearMonth returns the parsed components. Validate must have passed.
func (r *LoadMonthRequest) YearMonth() (int, time.Month) {
	t, _ := validator.IsValidMonth(r.Month)
	return t.Year(), t.Month()
}

type UpdateEntryRequest struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

func (r *UpdateEntryRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Field) {
		errs = append(errs, validator.ValidationError{
			Field:   "field",
			Message: "field is required",
		})
	} else if !validator.IsInSlice(r.Field, EditFieldValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "field",
			Message: "field must be one of: " + strings.Join(EditFieldValues, ", "),
		})
	}

	// Workplace values come from a fixed list; an empty value clears the
	// selection. Time fields deliberately accept any text, the zero-value
	// policy absorbs garbage.
	if r.Field == string(FieldWorkplace) && r.Value != "" && !validator.IsInSlice(r.Value, WorkplaceValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "value",
			Message: "workplace must be one of: " + strings.Join(WorkplaceValues, ", "),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// EntryResponse is the API shape of one grid row.
type EntryResponse struct {
	Date          string  `json:"date"`
	Weekday       string  `json:"weekday"`
	Workplace     string  `json:"workplace"`
	StartTime     string  `json:"start_time"`
	EndTime       string  `json:"end_time"`
	StartHour     string  `json:"start_hour"`
	StartMinute   string  `json:"start_minute"`
	EndHour       string  `json:"end_hour"`
	EndMinute     string  `json:"end_minute"`
	BreakDuration string  `json:"break_duration"`
	WorkDuration  string  `json:"work_duration"`
	WorkHours     float64 `json:"work_hours"`
	Holiday       bool    `json:"holiday"`
	Editable      bool    `json:"editable"`
}

func NewEntryResponse(e ShiftEntry) EntryResponse {
	return EntryResponse{
		Date:          e.Date.Key(),
		Weekday:       e.Date.Weekday.String(),
		Workplace:     string(e.Workplace),
		StartTime:     e.StartTime,
		EndTime:       e.EndTime,
		StartHour:     e.StartHour,
		StartMinute:   e.StartMinute,
		EndHour:       e.EndHour,
		EndMinute:     e.EndMinute,
		BreakDuration: e.BreakDuration,
		WorkDuration:  e.WorkDuration,
		WorkHours:     e.WorkHours,
		Holiday:       IsHoliday(e.Date),
		Editable:      !IsWeekendOrHoliday(e.Date),
	}
}

// MonthResponse is the loaded grid plus its summary aggregates.
type MonthResponse struct {
	Month   string          `json:"month"` // "YYYY-MM"
	Entries []EntryResponse `json:"entries"`
	Summary MonthSummary    `json:"summary"`
}

// SaveResponse reports how many days were persisted.
type SaveResponse struct {
	SavedDays int `json:"saved_days"`
}
