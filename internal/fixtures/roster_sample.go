package fixtures

import (
	"context"

	"github.com/shiftnote/shiftnote-backend-go/internal/domain/roster"
)

func strPtr(s string) *string { return &s }

// sampleStaff is the demo roster the dashboard ships with. It deliberately
// includes staff who forgot to clock in or out so the missed-punch flags
// have something to show.
var sampleStaff = []roster.StaffMember{
	{ID: 1, Name: "Taro Tanaka", Position: "Store Manager", AvatarURL: "/placeholder.svg?height=40&width=40",
		Status: roster.StatusWorking, ClockIn: strPtr("09:00")},
	{ID: 2, Name: "Hanako Sato", Position: "Assistant Manager", AvatarURL: "/placeholder.svg?height=40&width=40",
		Status: roster.StatusOnBreak, ClockIn: strPtr("10:00")},
	{ID: 3, Name: "Ichiro Suzuki", Position: "Staff", AvatarURL: "/placeholder.svg?height=40&width=40",
		Status: roster.StatusOffShift, ClockIn: strPtr("14:00"), ClockOut: strPtr("22:00")},
	{ID: 4, Name: "Misaki Takahashi", Position: "Staff", AvatarURL: "/placeholder.svg?height=40&width=40",
		Status: roster.StatusWorking, MissedClockIn: true},
	{ID: 5, Name: "Kenta Yamada", Position: "Part-timer", AvatarURL: "/placeholder.svg?height=40&width=40",
		Status: roster.StatusOffShift, ClockIn: strPtr("18:00"), MissedClockOut: true},
	{ID: 6, Name: "Mika Ito", Position: "Staff", AvatarURL: "/placeholder.svg?height=40&width=40",
		Status: roster.StatusWorking, MissedClockIn: true},
}

var sampleShifts = []roster.ScheduledShift{
	{ID: 1, EmployeeID: 1, Date: "2024-01-15", StartTime: "09:00", EndTime: "18:00", Position: "Store Manager"},
	{ID: 2, EmployeeID: 2, Date: "2024-01-15", StartTime: "10:00", EndTime: "19:00", Position: "Assistant Manager"},
	{ID: 3, EmployeeID: 3, Date: "2024-01-15", StartTime: "14:00", EndTime: "22:00", Position: "Staff"},
	{ID: 4, EmployeeID: 4, Date: "2024-01-15", StartTime: "09:00", EndTime: "17:00", Position: "Staff"},
	{ID: 5, EmployeeID: 5, Date: "2024-01-15", StartTime: "18:00", EndTime: "23:00", Position: "Part-timer"},
}

type rosterFixtureRepository struct{}

// NewRosterFixtureRepository returns a roster.RosterRepository serving the
// built-in sample data.
func NewRosterFixtureRepository() roster.RosterRepository {
	return &rosterFixtureRepository{}
}

// ListStaff implements roster.RosterRepository.
func (r *rosterFixtureRepository) ListStaff(ctx context.Context) ([]roster.StaffMember, error) {
	staff := make([]roster.StaffMember, len(sampleStaff))
	copy(staff, sampleStaff)
	return staff, nil
}

// ListShiftsByDate implements roster.RosterRepository.
func (r *rosterFixtureRepository) ListShiftsByDate(ctx context.Context, date string) ([]roster.ScheduledShift, error) {
	var shifts []roster.ScheduledShift
	for _, s := range sampleShifts {
		if s.Date == date {
			shifts = append(shifts, s)
		}
	}
	return shifts, nil
}
