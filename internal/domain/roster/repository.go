package roster

import "context"

// RosterRepository provides the staff roster and the scheduled shifts the
// dashboard renders. The dashboard is pure presentation over this data.
type RosterRepository interface {
	ListStaff(ctx context.Context) ([]StaffMember, error)
	ListShiftsByDate(ctx context.Context, date string) ([]ScheduledShift, error)
}
