package timesheet

import (
	"context"
	"time"
)

// DeletePolicy decides what happens when the pre-insert delete fails during
// a replace save. The original behavior is best-effort: log and insert
// anyway.
type DeletePolicy string

const (
	DeleteBestEffort DeletePolicy = "best_effort"
	DeleteFailFast   DeletePolicy = "fail_fast"
)

// SaveStrategy selects between the delete-then-insert replace and a
// transactional upsert by (employee_id, work_date).
type SaveStrategy string

const (
	StrategyReplace SaveStrategy = "replace"
	StrategyUpsert  SaveStrategy = "upsert"
)

// TimesheetService owns the per-employee month grid session: loading a
// month replaces the grid, edits mutate it in memory, and Save persists the
// working shifts.
type TimesheetService interface {
	// LoadMonth fetches the month's persisted rows and merges them with
	// the generated calendar. A load that finishes after the employee has
	// already navigated to another month is discarded.
	LoadMonth(ctx context.Context, employeeID string, year int, month time.Month) (MonthResponse, error)

	// GetMonth returns the currently loaded grid without refetching.
	GetMonth(ctx context.Context, employeeID string) (MonthResponse, error)

	// UpdateEntry applies one field edit to the entry for the given date
	// and returns the recomputed row.
	UpdateEntry(ctx context.Context, employeeID string, date string, req UpdateEntryRequest) (EntryResponse, error)

	// SaveMonth persists the grid's working shifts. Only one save per
	// employee may be in flight at a time.
	SaveMonth(ctx context.Context, employeeID string) (SaveResponse, error)
}
