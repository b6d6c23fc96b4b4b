package timesheet

import "context"

// ShiftRepository defines data access for persisted shift rows. All methods
// are scoped by employeeID so one employee's grid can never touch another's
// rows.
type ShiftRepository interface {
	// ListByDateRange retrieves rows whose work_date falls inside the
	// inclusive [first, last] range, both "YYYY-MM-DD".
	ListByDateRange(ctx context.Context, employeeID string, first string, last string) ([]ShiftRow, error)

	// DeleteByDates removes every row whose work_date is in the set.
	DeleteByDates(ctx context.Context, employeeID string, dates []string) error

	// InsertRows bulk-inserts the given rows.
	InsertRows(ctx context.Context, rows []ShiftRow) error

	// UpsertRows atomically replaces rows by (employee_id, work_date),
	// closing the replace strategy's partial-failure window.
	UpsertRows(ctx context.Context, rows []ShiftRow) error
}
