package timesheet

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shiftnote/shiftnote-backend-go/internal/domain/timesheet"
)

// fakeShiftRepository is an in-memory stand-in keyed by employee and date.
type fakeShiftRepository struct {
	mu   sync.Mutex
	rows map[string]map[string]timesheet.ShiftRow // employeeID -> workDate -> row

	listErr   error
	deleteErr error
	insertErr error
	upsertErr error

	listCalls   int
	deleteCalls int
	insertCalls int
	upsertCalls int

	// blockList lets a test hold a fetch open to simulate a slow month load.
	blockList chan struct{}

	// deleteStarted and releaseDelete let a test hold a replace save open
	// mid-delete to overlap it with a second save.
	deleteStarted chan struct{}
	releaseDelete chan struct{}
}

func newFakeShiftRepository() *fakeShiftRepository {
	return &fakeShiftRepository{rows: make(map[string]map[string]timesheet.ShiftRow)}
}

func (f *fakeShiftRepository) ListByDateRange(ctx context.Context, employeeID, first, last string) ([]timesheet.ShiftRow, error) {
	if f.blockList != nil {
		<-f.blockList
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	var result []timesheet.ShiftRow
	for date, row := range f.rows[employeeID] {
		if date >= first && date <= last {
			result = append(result, row)
		}
	}
	return result, nil
}

func (f *fakeShiftRepository) DeleteByDates(ctx context.Context, employeeID string, dates []string) error {
	if f.deleteStarted != nil {
		f.deleteStarted <- struct{}{}
	}
	if f.releaseDelete != nil {
		<-f.releaseDelete
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleteCalls++
	if f.deleteErr != nil {
		return f.deleteErr
	}
	for _, date := range dates {
		delete(f.rows[employeeID], date)
	}
	return nil
}

func (f *fakeShiftRepository) InsertRows(ctx context.Context, rows []timesheet.ShiftRow) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.insertCalls++
	if f.insertErr != nil {
		return f.insertErr
	}
	f.store(rows)
	return nil
}

func (f *fakeShiftRepository) UpsertRows(ctx context.Context, rows []timesheet.ShiftRow) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.upsertCalls++
	if f.upsertErr != nil {
		return f.upsertErr
	}
	f.store(rows)
	return nil
}

func (f *fakeShiftRepository) store(rows []timesheet.ShiftRow) {
	for _, row := range rows {
		if f.rows[row.EmployeeID] == nil {
			f.rows[row.EmployeeID] = make(map[string]timesheet.ShiftRow)
		}
		f.rows[row.EmployeeID][row.WorkDate] = row
	}
}

func newTestService(repo timesheet.ShiftRepository) timesheet.TimesheetService {
	return NewTimesheetService(repo, timesheet.DeleteBestEffort, timesheet.StrategyReplace)
}

func loadJanuary(t *testing.T, svc timesheet.TimesheetService, employeeID string) timesheet.MonthResponse {
	t.Helper()
	resp, err := svc.LoadMonth(context.Background(), employeeID, 2024, time.January)
	require.NoError(t, err)
	return resp
}

func TestLoadMonthEmptyGrid(t *testing.T) {
	svc := newTestService(newFakeShiftRepository())

	resp := loadJanuary(t, svc, "emp-1")
	assert.Equal(t, "2024-01", resp.Month)
	assert.Len(t, resp.Entries, 31)
	assert.Equal(t, 0, resp.Summary.WorkingDays)

	// New Year's Day is a holiday and not editable.
	assert.True(t, resp.Entries[0].Holiday)
	assert.False(t, resp.Entries[0].Editable)
	// The 2nd is an ordinary Tuesday.
	assert.False(t, resp.Entries[1].Holiday)
	assert.True(t, resp.Entries[1].Editable)
}

func TestLoadMonthMergesPersistedRows(t *testing.T) {
	repo := newFakeShiftRepository()
	workplace, start, end := "office", "09:00", "18:00"
	repo.store([]timesheet.ShiftRow{{
		EmployeeID: "emp-1",
		WorkDate:   "2024-01-15",
		Workplace:  &workplace,
		StartTime:  &start,
		EndTime:    &end,
		BreakTime:  "0:45",
		WorkHours:  8.25,
	}})
	svc := newTestService(repo)

	resp := loadJanuary(t, svc, "emp-1")
	entry := resp.Entries[14]
	assert.Equal(t, "2024-01-15", entry.Date)
	assert.Equal(t, "office", entry.Workplace)
	assert.Equal(t, "09", entry.StartHour)
	assert.Equal(t, "8:15", entry.WorkDuration)
	assert.Equal(t, 8.25, resp.Summary.TotalHours)
}

func TestLoadMonthFetchErrorResetsGrid(t *testing.T) {
	repo := newFakeShiftRepository()
	repo.listErr = errors.New("connection refused")
	svc := newTestService(repo)

	_, err := svc.LoadMonth(context.Background(), "emp-1", 2024, time.January)
	require.Error(t, err)

	// The session still holds an empty, editable grid for the month.
	resp, err := svc.GetMonth(context.Background(), "emp-1")
	require.NoError(t, err)
	assert.Equal(t, "2024-01", resp.Month)
	assert.Len(t, resp.Entries, 31)
	for _, e := range resp.Entries {
		assert.Empty(t, e.Workplace)
	}
}

func TestGetMonthWithoutLoad(t *testing.T) {
	svc := newTestService(newFakeShiftRepository())
	_, err := svc.GetMonth(context.Background(), "emp-1")
	assert.ErrorIs(t, err, timesheet.ErrNoMonthLoaded)
}

func TestStaleLoadDiscarded(t *testing.T) {
	repo := newFakeShiftRepository()
	repo.blockList = make(chan struct{})
	svc := newTestService(repo)

	type loadResult struct {
		resp timesheet.MonthResponse
		err  error
	}
	results := make(chan loadResult, 1)
	go func() {
		resp, err := svc.LoadMonth(context.Background(), "emp-1", 2024, time.January)
		results <- loadResult{resp, err}
	}()

	// Navigate to February while the January fetch is still in flight,
	// then release both fetches.
	go func() {
		time.Sleep(20 * time.Millisecond)
		resp, err := svc.LoadMonth(context.Background(), "emp-1", 2024, time.February)
		results <- loadResult{resp, err}
	}()
	time.Sleep(50 * time.Millisecond)
	close(repo.blockList)

	first := <-results
	second := <-results

	var stale, fresh loadResult
	if errors.Is(first.err, timesheet.ErrStaleLoad) {
		stale, fresh = first, second
	} else {
		stale, fresh = second, first
	}

	assert.ErrorIs(t, stale.err, timesheet.ErrStaleLoad)
	require.NoError(t, fresh.err)
	assert.Equal(t, "2024-02", fresh.resp.Month)

	// The surviving grid is February's.
	resp, err := svc.GetMonth(context.Background(), "emp-1")
	require.NoError(t, err)
	assert.Equal(t, "2024-02", resp.Month)
}

func TestUpdateEntry(t *testing.T) {
	svc := newTestService(newFakeShiftRepository())
	loadJanuary(t, svc, "emp-1")
	ctx := context.Background()

	_, err := svc.UpdateEntry(ctx, "emp-1", "2024-01-10", timesheet.UpdateEntryRequest{Field: "workplace", Value: "home"})
	require.NoError(t, err)

	for _, edit := range []timesheet.UpdateEntryRequest{
		{Field: "start_hour", Value: "09"},
		{Field: "start_minute", Value: "00"},
		{Field: "end_hour", Value: "18"},
	} {
		_, err = svc.UpdateEntry(ctx, "emp-1", "2024-01-10", edit)
		require.NoError(t, err)
	}
	entry, err := svc.UpdateEntry(ctx, "emp-1", "2024-01-10", timesheet.UpdateEntryRequest{Field: "end_minute", Value: "00"})
	require.NoError(t, err)

	assert.Equal(t, "8:15", entry.WorkDuration)
	assert.Equal(t, 8.25, entry.WorkHours)
	assert.Equal(t, "0:45", entry.BreakDuration)

	resp, err := svc.GetMonth(ctx, "emp-1")
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Summary.WorkingDays)
	assert.Equal(t, 8.25, resp.Summary.TotalHours)
}

func TestUpdateEntryRawTimeSyncsSubFields(t *testing.T) {
	svc := newTestService(newFakeShiftRepository())
	loadJanuary(t, svc, "emp-1")
	ctx := context.Background()

	entry, err := svc.UpdateEntry(ctx, "emp-1", "2024-01-10", timesheet.UpdateEntryRequest{Field: "start_time", Value: "9:30"})
	require.NoError(t, err)
	assert.Equal(t, "9:30", entry.StartTime)
	assert.Equal(t, "09", entry.StartHour)
	assert.Equal(t, "30", entry.StartMinute)

	entry, err = svc.UpdateEntry(ctx, "emp-1", "2024-01-10", timesheet.UpdateEntryRequest{Field: "end_time", Value: "17:00"})
	require.NoError(t, err)
	assert.Equal(t, "6:45", entry.WorkDuration)
	assert.Equal(t, "0:45", entry.BreakDuration)
}

func TestUpdateEntryRejections(t *testing.T) {
	svc := newTestService(newFakeShiftRepository())
	ctx := context.Background()

	// Edits before any month is loaded.
	_, err := svc.UpdateEntry(ctx, "emp-1", "2024-01-10", timesheet.UpdateEntryRequest{Field: "workplace", Value: "home"})
	assert.ErrorIs(t, err, timesheet.ErrNoMonthLoaded)

	loadJanuary(t, svc, "emp-1")

	// A date outside the loaded month.
	_, err = svc.UpdateEntry(ctx, "emp-1", "2024-02-10", timesheet.UpdateEntryRequest{Field: "workplace", Value: "home"})
	assert.ErrorIs(t, err, timesheet.ErrEntryNotFound)

	// Weekends and holidays are read-only.
	_, err = svc.UpdateEntry(ctx, "emp-1", "2024-01-06", timesheet.UpdateEntryRequest{Field: "workplace", Value: "home"})
	assert.ErrorIs(t, err, timesheet.ErrDateNotEditable)
	_, err = svc.UpdateEntry(ctx, "emp-1", "2024-01-01", timesheet.UpdateEntryRequest{Field: "workplace", Value: "home"})
	assert.ErrorIs(t, err, timesheet.ErrDateNotEditable)

	// Unknown fields and bad workplace values fail validation.
	_, err = svc.UpdateEntry(ctx, "emp-1", "2024-01-10", timesheet.UpdateEntryRequest{Field: "salary", Value: "1"})
	assert.Error(t, err)
	_, err = svc.UpdateEntry(ctx, "emp-1", "2024-01-10", timesheet.UpdateEntryRequest{Field: "workplace", Value: "moon"})
	assert.Error(t, err)
}

func fillWorkingShift(t *testing.T, svc timesheet.TimesheetService, employeeID, date string) {
	t.Helper()
	ctx := context.Background()
	for _, edit := range []timesheet.UpdateEntryRequest{
		{Field: "workplace", Value: "office"},
		{Field: "start_hour", Value: "09"},
		{Field: "start_minute", Value: "00"},
		{Field: "end_hour", Value: "18"},
		{Field: "end_minute", Value: "00"},
	} {
		_, err := svc.UpdateEntry(ctx, employeeID, date, edit)
		require.NoError(t, err)
	}
}

func TestSaveMonthReplace(t *testing.T) {
	repo := newFakeShiftRepository()
	svc := newTestService(repo)
	loadJanuary(t, svc, "emp-1")

	fillWorkingShift(t, svc, "emp-1", "2024-01-10")
	fillWorkingShift(t, svc, "emp-1", "2024-01-11")

	resp, err := svc.SaveMonth(context.Background(), "emp-1")
	require.NoError(t, err)
	assert.Equal(t, 2, resp.SavedDays)
	assert.Equal(t, 1, repo.deleteCalls)
	assert.Equal(t, 1, repo.insertCalls)

	saved := repo.rows["emp-1"]["2024-01-10"]
	assert.Equal(t, "office", *saved.Workplace)
	assert.Equal(t, "09:00", *saved.StartTime)
	assert.Equal(t, "18:00", *saved.EndTime)
	assert.Equal(t, "0:45", saved.BreakTime)
	assert.Equal(t, 8.25, saved.WorkHours)
}

func TestSaveMonthSkipsIncompleteEntries(t *testing.T) {
	repo := newFakeShiftRepository()
	svc := newTestService(repo)
	loadJanuary(t, svc, "emp-1")
	ctx := context.Background()

	fillWorkingShift(t, svc, "emp-1", "2024-01-10")
	// Workplace chosen but no times: not a working shift.
	_, err := svc.UpdateEntry(ctx, "emp-1", "2024-01-11", timesheet.UpdateEntryRequest{Field: "workplace", Value: "home"})
	require.NoError(t, err)

	resp, err := svc.SaveMonth(ctx, "emp-1")
	require.NoError(t, err)
	assert.Equal(t, 1, resp.SavedDays)
	_, exists := repo.rows["emp-1"]["2024-01-11"]
	assert.False(t, exists)
}

func TestSaveMonthNothingToSave(t *testing.T) {
	repo := newFakeShiftRepository()
	svc := newTestService(repo)
	loadJanuary(t, svc, "emp-1")

	_, err := svc.SaveMonth(context.Background(), "emp-1")
	assert.ErrorIs(t, err, timesheet.ErrNothingToSave)

	// No remote calls happen for an empty save.
	assert.Equal(t, 0, repo.deleteCalls)
	assert.Equal(t, 0, repo.insertCalls)
	assert.Equal(t, 0, repo.upsertCalls)
}

func TestSaveMonthDeleteBestEffort(t *testing.T) {
	repo := newFakeShiftRepository()
	repo.deleteErr = errors.New("transient failure")
	svc := NewTimesheetService(repo, timesheet.DeleteBestEffort, timesheet.StrategyReplace)
	loadJanuary(t, svc, "emp-1")
	fillWorkingShift(t, svc, "emp-1", "2024-01-10")

	// The failed delete is swallowed and the insert decides the outcome.
	resp, err := svc.SaveMonth(context.Background(), "emp-1")
	require.NoError(t, err)
	assert.Equal(t, 1, resp.SavedDays)
	assert.Equal(t, 1, repo.insertCalls)
}

func TestSaveMonthDeleteFailFast(t *testing.T) {
	repo := newFakeShiftRepository()
	repo.deleteErr = errors.New("transient failure")
	svc := NewTimesheetService(repo, timesheet.DeleteFailFast, timesheet.StrategyReplace)
	loadJanuary(t, svc, "emp-1")
	fillWorkingShift(t, svc, "emp-1", "2024-01-10")

	_, err := svc.SaveMonth(context.Background(), "emp-1")
	require.Error(t, err)
	assert.Equal(t, 0, repo.insertCalls)
}

func TestSaveMonthRejectsConcurrentSave(t *testing.T) {
	repo := newFakeShiftRepository()
	repo.deleteStarted = make(chan struct{})
	repo.releaseDelete = make(chan struct{})
	svc := newTestService(repo)
	loadJanuary(t, svc, "emp-1")
	fillWorkingShift(t, svc, "emp-1", "2024-01-10")

	firstDone := make(chan error, 1)
	go func() {
		_, err := svc.SaveMonth(context.Background(), "emp-1")
		firstDone <- err
	}()

	// The first save is now parked inside the repository delete.
	<-repo.deleteStarted

	_, err := svc.SaveMonth(context.Background(), "emp-1")
	assert.ErrorIs(t, err, timesheet.ErrSaveInProgress)

	close(repo.releaseDelete)
	require.NoError(t, <-firstDone)

	// With the first save finished the employee may save again.
	repo.deleteStarted = nil
	_, err = svc.SaveMonth(context.Background(), "emp-1")
	require.NoError(t, err)
}

func TestSaveMonthInsertError(t *testing.T) {
	repo := newFakeShiftRepository()
	repo.insertErr = errors.New("constraint violation")
	svc := newTestService(repo)
	loadJanuary(t, svc, "emp-1")
	fillWorkingShift(t, svc, "emp-1", "2024-01-10")

	_, err := svc.SaveMonth(context.Background(), "emp-1")
	require.Error(t, err)

	// A later save may retry once the failure clears.
	repo.insertErr = nil
	resp, err := svc.SaveMonth(context.Background(), "emp-1")
	require.NoError(t, err)
	assert.Equal(t, 1, resp.SavedDays)
}

func TestSaveMonthUpsertStrategy(t *testing.T) {
	repo := newFakeShiftRepository()
	svc := NewTimesheetService(repo, timesheet.DeleteBestEffort, timesheet.StrategyUpsert)
	loadJanuary(t, svc, "emp-1")
	fillWorkingShift(t, svc, "emp-1", "2024-01-10")

	resp, err := svc.SaveMonth(context.Background(), "emp-1")
	require.NoError(t, err)
	assert.Equal(t, 1, resp.SavedDays)
	assert.Equal(t, 1, repo.upsertCalls)
	assert.Equal(t, 0, repo.deleteCalls)
	assert.Equal(t, 0, repo.insertCalls)
}

func TestSaveRoundTrip(t *testing.T) {
	repo := newFakeShiftRepository()
	svc := newTestService(repo)
	loadJanuary(t, svc, "emp-1")
	fillWorkingShift(t, svc, "emp-1", "2024-01-10")

	before, err := svc.GetMonth(context.Background(), "emp-1")
	require.NoError(t, err)

	_, err = svc.SaveMonth(context.Background(), "emp-1")
	require.NoError(t, err)

	// Reloading the month from the store reproduces the saved shift. The
	// raw time text is reassembled from the persisted "HH:MM" values.
	after := loadJanuary(t, svc, "emp-1")
	beforeEntry, afterEntry := before.Entries[9], after.Entries[9]
	assert.Equal(t, beforeEntry.Workplace, afterEntry.Workplace)
	assert.Equal(t, beforeEntry.StartHour, afterEntry.StartHour)
	assert.Equal(t, beforeEntry.StartMinute, afterEntry.StartMinute)
	assert.Equal(t, beforeEntry.EndHour, afterEntry.EndHour)
	assert.Equal(t, beforeEntry.EndMinute, afterEntry.EndMinute)
	assert.Equal(t, beforeEntry.BreakDuration, afterEntry.BreakDuration)
	assert.Equal(t, beforeEntry.WorkDuration, afterEntry.WorkDuration)
	assert.Equal(t, beforeEntry.WorkHours, afterEntry.WorkHours)
	assert.Equal(t, "09:00", afterEntry.StartTime)
	assert.Equal(t, before.Summary, after.Summary)
}

func TestSessionsAreScopedPerEmployee(t *testing.T) {
	repo := newFakeShiftRepository()
	svc := newTestService(repo)
	loadJanuary(t, svc, "emp-1")
	fillWorkingShift(t, svc, "emp-1", "2024-01-10")

	_, err := svc.GetMonth(context.Background(), "emp-2")
	assert.ErrorIs(t, err, timesheet.ErrNoMonthLoaded)

	loadJanuary(t, svc, "emp-2")
	resp, err := svc.GetMonth(context.Background(), "emp-2")
	require.NoError(t, err)
	assert.Equal(t, 0, resp.Summary.WorkingDays)
}
