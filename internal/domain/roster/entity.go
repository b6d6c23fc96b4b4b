package roster

// StaffStatus is the clock state shown on the manager dashboard.
type StaffStatus string

const (
	StatusWorking  StaffStatus = "working"
	StatusOnBreak  StaffStatus = "break"
	StatusOffShift StaffStatus = "off"
)

// StaffStatusValues is used by DTO validation.
var StaffStatusValues = []string{
	string(StatusWorking),
	string(StatusOnBreak),
	string(StatusOffShift),
}

// StaffMember is one row of the clock-in/out roster. ClockIn and ClockOut
// are "HH:MM" or nil when the punch is missing; the Missed flags mark
// employees who forgot to punch.
type StaffMember struct {
	ID             int
	Name           string
	Position       string
	AvatarURL      string
	Status         StaffStatus
	ClockIn        *string
	ClockOut       *string
	MissedClockIn  bool
	MissedClockOut bool
}

// ScheduledShift is one planned shift on the dashboard's daily list.
type ScheduledShift struct {
	ID         int
	EmployeeID int
	Date       string // "YYYY-MM-DD"
	StartTime  string // "HH:MM"
	EndTime    string // "HH:MM"
	Position   string
}
