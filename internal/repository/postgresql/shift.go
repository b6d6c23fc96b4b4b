package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/shiftnote/shiftnote-backend-go/internal/domain/timesheet"
	"github.com/shiftnote/shiftnote-backend-go/internal/pkg/database"
)

type shiftRepository struct {
	db *database.DB
}

func NewShiftRepository(db *database.DB) timesheet.ShiftRepository {
	return &shiftRepository{db: db}
}

// ListByDateRange implements timesheet.ShiftRepository.
func (r *shiftRepository) ListByDateRange(ctx context.Context, employeeID string, first string, last string) ([]timesheet.ShiftRow, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT employee_id, to_char(work_date, 'YYYY-MM-DD'), workplace,
			   start_time, end_time, break_time, work_hours
		FROM shift_timetable
		WHERE employee_id = $1
		  AND work_date BETWEEN $2 AND $3
		ORDER BY work_date
	`

	rows, err := q.Query(ctx, query, employeeID, first, last)
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts: %w", err)
	}
	defer rows.Close()

	var result []timesheet.ShiftRow
	for rows.Next() {
		var row timesheet.ShiftRow
		if err := rows.Scan(
			&row.EmployeeID, &row.WorkDate, &row.Workplace,
			&row.StartTime, &row.EndTime, &row.BreakTime, &row.WorkHours,
		); err != nil {
			return nil, fmt.Errorf("failed to scan shift row: %w", err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read shift rows: %w", err)
	}

	return result, nil
}

// DeleteByDates implements timesheet.ShiftRepository.
func (r *shiftRepository) DeleteByDates(ctx context.Context, employeeID string, dates []string) error {
	if len(dates) == 0 {
		return nil
	}

	q := GetQuerier(ctx, r.db)

	query := `
		DELETE FROM shift_timetable
		WHERE employee_id = $1
		  AND work_date = ANY($2::date[])
	`

	if _, err := q.Exec(ctx, query, employeeID, dates); err != nil {
		return fmt.Errorf("failed to delete shifts by dates: %w", err)
	}
	return nil
}

// InsertRows implements timesheet.ShiftRepository.
func (r *shiftRepository) InsertRows(ctx context.Context, shiftRows []timesheet.ShiftRow) error {
	if len(shiftRows) == 0 {
		return nil
	}

	q := GetQuerier(ctx, r.db)

	// Build batch insert query
	valueStrings := make([]string, 0, len(shiftRows))
	valueArgs := make([]interface{}, 0, len(shiftRows)*7)

	for i, row := range shiftRows {
		base := i * 7
		valueStrings = append(valueStrings, fmt.Sprintf(
			"($%d, $%d, $%d, $%d, $%d, $%d, $%d)",
			base+1, base+2, base+3, base+4, base+5, base+6, base+7,
		))
		valueArgs = append(valueArgs,
			row.EmployeeID,
			row.WorkDate,
			row.Workplace,
			row.StartTime,
			row.EndTime,
			row.BreakTime,
			row.WorkHours,
		)
	}

	query := fmt.Sprintf(`
		INSERT INTO shift_timetable (employee_id, work_date, workplace, start_time, end_time, break_time, work_hours)
		VALUES %s
	`, strings.Join(valueStrings, ", "))

	if _, err := q.Exec(ctx, query, valueArgs...); err != nil {
		return fmt.Errorf("failed to insert shifts: %w", err)
	}
	return nil
}

// UpsertRows implements timesheet.ShiftRepository. Each row replaces any
// existing row for the same (employee_id, work_date) inside one
// transaction, so a failed save never leaves a date without its old row.
func (r *shiftRepository) UpsertRows(ctx context.Context, shiftRows []timesheet.ShiftRow) error {
	if len(shiftRows) == 0 {
		return nil
	}

	return WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		query := `
			INSERT INTO shift_timetable (employee_id, work_date, workplace, start_time, end_time, break_time, work_hours)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			ON CONFLICT (employee_id, work_date) DO UPDATE SET
				workplace = EXCLUDED.workplace,
				start_time = EXCLUDED.start_time,
				end_time = EXCLUDED.end_time,
				break_time = EXCLUDED.break_time,
				work_hours = EXCLUDED.work_hours
		`
		for _, row := range shiftRows {
			if _, err := tx.Exec(ctx, query,
				row.EmployeeID,
				row.WorkDate,
				row.Workplace,
				row.StartTime,
				row.EndTime,
				row.BreakTime,
				row.WorkHours,
			); err != nil {
				return fmt.Errorf("failed to upsert shift for %s: %w", row.WorkDate, err)
			}
		}
		return nil
	})
}
