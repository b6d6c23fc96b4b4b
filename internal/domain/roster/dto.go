package roster

import (
	"strings"

	"github.com/shiftnote/shiftnote-backend-go/internal/pkg/validator"
)

type RosterFilter struct {
	Status string `json:"status"` // optional: working|break|off
	Search string `json:"search"` // optional: name substring
	Date   string `json:"date"`   // optional: "YYYY-MM-DD", defaults to today
}

func (f *RosterFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Status != "" && !validator.IsInSlice(f.Status, StaffStatusValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: " + strings.Join(StaffStatusValues, ", "),
		})
	}
	if f.Date != "" {
		if _, ok := validator.IsValidDate(f.Date); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type StaffMemberResponse struct {
	ID             int     `json:"id"`
	Name           string  `json:"name"`
	Position       string  `json:"position"`
	AvatarURL      string  `json:"avatar_url"`
	Status         string  `json:"status"`
	ClockIn        *string `json:"clock_in"`
	ClockOut       *string `json:"clock_out"`
	MissedClockIn  bool    `json:"missed_clock_in"`
	MissedClockOut bool    `json:"missed_clock_out"`
}

type ScheduledShiftResponse struct {
	ID         int    `json:"id"`
	EmployeeID int    `json:"employee_id"`
	Date       string `json:"date"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
	Position   string `json:"position"`
}

// RosterSummary carries the headline counts above the staff list.
type RosterSummary struct {
	OnShift        int `json:"on_shift"`
	OnBreak        int `json:"on_break"`
	OffShift       int `json:"off_shift"`
	MissedPunches  int `json:"missed_punches"`
	ScheduledToday int `json:"scheduled_today"`
}

type RosterResponse struct {
	Staff   []StaffMemberResponse    `json:"staff"`
	Shifts  []ScheduledShiftResponse `json:"shifts"`
	Summary RosterSummary            `json:"summary"`
}
