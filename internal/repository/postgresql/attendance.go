package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/c4sfood/payroll-backend-go/internal/domain/attendance"
	"github.com/c4sfood/payroll-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

const attendanceColumns = `id, employee_id, date, time_in, time_out,
	worked_hours, payable_hours, late_minutes, status, created_at`

func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var a attendance.Attendance
	err := row.Scan(
		&a.ID, &a.EmployeeID, &a.Date, &a.TimeIn, &a.TimeOut,
		&a.WorkedHours, &a.PayableHours, &a.LateMinutes, &a.Status, &a.CreatedAt,
	)
	return a, err
}

// GetByEmployeeAndDate implements attendance.AttendanceRepository.
func (r *attendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance
		WHERE employee_id = $1
		  AND date = $2
		LIMIT 1
	`

	a, err := scanAttendance(q.QueryRow(ctx, query, employeeID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // No record for this day
		}
		return nil, fmt.Errorf("failed to get attendance by employee and date: %w", err)
	}

	return &a, nil
}

// Upsert implements attendance.AttendanceRepository. The conflict target
// (employee_id, date) is the one-row-per-day invariant; DO NOTHING
// preserves the first clock-in, and the follow-up select returns the row
// that won.
func (r *attendanceRepository) Upsert(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance (
			id, employee_id, date, time_in, worked_hours, payable_hours, late_minutes, status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (employee_id, date) DO NOTHING
	`

	_, err := q.Exec(ctx, query,
		att.ID, att.EmployeeID, att.Date, att.TimeIn,
		att.WorkedHours, att.PayableHours, att.LateMinutes, att.Status,
	)
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to upsert attendance: %w", err)
	}

	stored, err := r.GetByEmployeeAndDate(ctx, att.EmployeeID, att.Date)
	if err != nil {
		return attendance.Attendance{}, err
	}
	if stored == nil {
		return attendance.Attendance{}, attendance.ErrRecordNotFound
	}

	return *stored, nil
}

// UpdateClockOut implements attendance.AttendanceRepository.
func (r *attendanceRepository) UpdateClockOut(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendance
		SET time_out = $2, worked_hours = $3, payable_hours = $4, status = $5
		WHERE id = $1
		RETURNING ` + attendanceColumns

	updated, err := scanAttendance(q.QueryRow(ctx, query,
		att.ID, att.TimeOut, att.WorkedHours, att.PayableHours, att.Status,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrRecordNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to update clock-out: %w", err)
	}

	return updated, nil
}

// Delete implements attendance.AttendanceRepository.
func (r *attendanceRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM attendance WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete attendance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrRecordNotFound
	}

	return nil
}

// ListByEmployeeInRange implements attendance.AttendanceRepository.
func (r *attendanceRepository) ListByEmployeeInRange(ctx context.Context, employeeID string, startDate, endDate time.Time) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance
		WHERE employee_id = $1
		  AND date BETWEEN $2 AND $3
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, employeeID, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance in range: %w", err)
	}
	defer rows.Close()

	var result []attendance.Attendance
	for rows.Next() {
		a, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		result = append(result, a)
	}

	return result, rows.Err()
}

// List implements attendance.AttendanceRepository.
func (r *attendanceRepository) List(ctx context.Context, filter attendance.ListFilter) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT a.id, a.employee_id, a.date, a.time_in, a.time_out,
			   a.worked_hours, a.payable_hours, a.late_minutes, a.status, a.created_at,
			   e.name, e.role
		FROM attendance a
		JOIN employees e ON e.id = a.employee_id
		WHERE ($1 = '' OR a.employee_id = $1)
		  AND ($2 = '' OR a.date >= $2::date)
		  AND ($3 = '' OR a.date <= $3::date)
		ORDER BY a.date DESC, a.time_in DESC
	`

	rows, err := q.Query(ctx, query, filter.EmployeeID, filter.StartDate, filter.EndDate)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	defer rows.Close()

	var result []attendance.Attendance
	for rows.Next() {
		var a attendance.Attendance
		err := rows.Scan(
			&a.ID, &a.EmployeeID, &a.Date, &a.TimeIn, &a.TimeOut,
			&a.WorkedHours, &a.PayableHours, &a.LateMinutes, &a.Status, &a.CreatedAt,
			&a.EmployeeName, &a.EmployeeRole,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		result = append(result, a)
	}

	return result, rows.Err()
}

// ListOpenBefore implements attendance.AttendanceRepository.
func (r *attendanceRepository) ListOpenBefore(ctx context.Context, cutoff time.Time) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance
		WHERE time_out IS NULL
		  AND date < $1
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, cutoff)
	if err != nil {
		return nil, fmt.Errorf("failed to list open attendance: %w", err)
	}
	defer rows.Close()

	var result []attendance.Attendance
	for rows.Next() {
		a, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		result = append(result, a)
	}

	return result, rows.Err()
}
