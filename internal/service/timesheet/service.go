package timesheet

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/shiftnote/shiftnote-backend-go/internal/domain/timesheet"
)

// TimesheetServiceImpl keeps one in-memory grid session per employee. The
// session mirrors what the shift-entry table shows on screen: it is
// replaced wholesale on month navigation and persisted only on explicit
// save.
type TimesheetServiceImpl struct {
	timesheet.ShiftRepository
	deletePolicy timesheet.DeletePolicy
	saveStrategy timesheet.SaveStrategy

	mu       sync.Mutex
	sessions map[string]*gridSession
}

type gridSession struct {
	mu      sync.Mutex
	loaded  bool
	year    int
	month   time.Month
	entries []timesheet.ShiftEntry

	// generation invalidates in-flight loads once the employee navigates
	// to another month.
	generation uint64
	saving     bool
}

func NewTimesheetService(repo timesheet.ShiftRepository, deletePolicy timesheet.DeletePolicy, saveStrategy timesheet.SaveStrategy) timesheet.TimesheetService {
	return &TimesheetServiceImpl{
		ShiftRepository: repo,
		deletePolicy:    deletePolicy,
		saveStrategy:    saveStrategy,
		sessions:        make(map[string]*gridSession),
	}
}

func (s *TimesheetServiceImpl) session(employeeID string) *gridSession {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[employeeID]
	if !ok {
		sess = &gridSession{}
		s.sessions[employeeID] = sess
	}
	return sess
}

// LoadMonth implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) LoadMonth(ctx context.Context, employeeID string, year int, month time.Month) (timesheet.MonthResponse, error) {
	sess := s.session(employeeID)

	sess.mu.Lock()
	sess.generation++
	generation := sess.generation
	sess.mu.Unlock()

	dates := timesheet.MonthDates(year, month)
	first, last := timesheet.MonthBounds(year, month)

	rows, err := s.ShiftRepository.ListByDateRange(ctx, employeeID, first, last)

	sess.mu.Lock()
	defer sess.mu.Unlock()

	// A newer navigation superseded this load; its result must not
	// overwrite the grid the employee is now looking at.
	if sess.generation != generation {
		return timesheet.MonthResponse{}, timesheet.ErrStaleLoad
	}

	if err != nil {
		// The grid is reset to empty for the month so no stale baseline
		// is left behind for editing.
		sess.loaded = true
		sess.year = year
		sess.month = month
		sess.entries = timesheet.BuildGrid(dates, nil)
		return timesheet.MonthResponse{}, fmt.Errorf("failed to fetch shifts for %s: %w", monthKey(year, month), err)
	}

	sess.loaded = true
	sess.year = year
	sess.month = month
	sess.entries = timesheet.BuildGrid(dates, rows)

	return monthResponse(sess), nil
}

// GetMonth implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) GetMonth(ctx context.Context, employeeID string) (timesheet.MonthResponse, error) {
	sess := s.session(employeeID)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if !sess.loaded {
		return timesheet.MonthResponse{}, timesheet.ErrNoMonthLoaded
	}
	return monthResponse(sess), nil
}

// UpdateEntry implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) UpdateEntry(ctx context.Context, employeeID string, date string, req timesheet.UpdateEntryRequest) (timesheet.EntryResponse, error) {
	if err := req.Validate(); err != nil {
		return timesheet.EntryResponse{}, err
	}

	sess := s.session(employeeID)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if !sess.loaded {
		return timesheet.EntryResponse{}, timesheet.ErrNoMonthLoaded
	}

	idx := -1
	for i := range sess.entries {
		if sess.entries[i].Date.Key() == date {
			idx = i
			break
		}
	}
	if idx < 0 {
		return timesheet.EntryResponse{}, timesheet.ErrEntryNotFound
	}

	entry := sess.entries[idx]
	if timesheet.IsWeekendOrHoliday(entry.Date) {
		return timesheet.EntryResponse{}, timesheet.ErrDateNotEditable
	}

	field := timesheet.EditField(req.Field)
	entry, err := timesheet.ApplyEdit(entry, field, req.Value)
	if err != nil {
		return timesheet.EntryResponse{}, err
	}

	// Editing the raw time text also refreshes the parsed sub-fields, the
	// way the table commits a typed time when the input loses focus.
	switch field {
	case timesheet.FieldStartTime:
		hour, minute := timesheet.ParseClock(req.Value)
		entry, _ = timesheet.ApplyEdit(entry, timesheet.FieldStartHour, hour)
		entry, _ = timesheet.ApplyEdit(entry, timesheet.FieldStartMinute, minute)
	case timesheet.FieldEndTime:
		hour, minute := timesheet.ParseClock(req.Value)
		entry, _ = timesheet.ApplyEdit(entry, timesheet.FieldEndHour, hour)
		entry, _ = timesheet.ApplyEdit(entry, timesheet.FieldEndMinute, minute)
	}

	sess.entries[idx] = entry
	return timesheet.NewEntryResponse(entry), nil
}

// SaveMonth implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) SaveMonth(ctx context.Context, employeeID string) (timesheet.SaveResponse, error) {
	sess := s.session(employeeID)

	sess.mu.Lock()
	if !sess.loaded {
		sess.mu.Unlock()
		return timesheet.SaveResponse{}, timesheet.ErrNoMonthLoaded
	}
	if sess.saving {
		sess.mu.Unlock()
		return timesheet.SaveResponse{}, timesheet.ErrSaveInProgress
	}
	sess.saving = true
	working := timesheet.WorkingShifts(sess.entries)
	sess.mu.Unlock()

	defer func() {
		sess.mu.Lock()
		sess.saving = false
		sess.mu.Unlock()
	}()

	if len(working) == 0 {
		return timesheet.SaveResponse{}, timesheet.ErrNothingToSave
	}

	rows := timesheet.RowsForSave(employeeID, working)

	if s.saveStrategy == timesheet.StrategyUpsert {
		if err := s.ShiftRepository.UpsertRows(ctx, rows); err != nil {
			return timesheet.SaveResponse{}, fmt.Errorf("failed to save shifts: %w", err)
		}
		return timesheet.SaveResponse{SavedDays: len(rows)}, nil
	}

	// Replace strategy: clear the saved dates first, then insert.
	dates := make([]string, 0, len(rows))
	for _, row := range rows {
		dates = append(dates, row.WorkDate)
	}

	if err := s.ShiftRepository.DeleteByDates(ctx, employeeID, dates); err != nil {
		if s.deletePolicy == timesheet.DeleteFailFast {
			return timesheet.SaveResponse{}, fmt.Errorf("failed to delete existing shifts: %w", err)
		}
		// Best effort keeps the original behavior: the insert still runs
		// and its outcome decides the save.
		slog.Error("delete before insert failed, continuing with insert",
			"employee_id", employeeID, "error", err)
	}

	if err := s.ShiftRepository.InsertRows(ctx, rows); err != nil {
		return timesheet.SaveResponse{}, fmt.Errorf("failed to save shifts: %w", err)
	}

	return timesheet.SaveResponse{SavedDays: len(rows)}, nil
}

func monthKey(year int, month time.Month) string {
	return fmt.Sprintf("%04d-%02d", year, int(month))
}

func monthResponse(sess *gridSession) timesheet.MonthResponse {
	entries := make([]timesheet.EntryResponse, 0, len(sess.entries))
	for _, e := range sess.entries {
		entries = append(entries, timesheet.NewEntryResponse(e))
	}
	return timesheet.MonthResponse{
		Month:   monthKey(sess.year, sess.month),
		Entries: entries,
		Summary: timesheet.Summarize(sess.entries),
	}
}
