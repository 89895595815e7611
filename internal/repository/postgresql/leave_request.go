package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/c4sfood/payroll-backend-go/internal/domain/leave"
	"github.com/c4sfood/payroll-backend-go/internal/pkg/database"
)

type leaveRequestRepository struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.LeaveRequestRepository {
	return &leaveRequestRepository{db: db}
}

const leaveColumns = `id, employee_id, leave_type, start_date, end_date,
	reason, status, admin_comment, created_at, updated_at`

func scanLeave(row pgx.Row) (leave.LeaveRequest, error) {
	var l leave.LeaveRequest
	err := row.Scan(
		&l.ID, &l.EmployeeID, &l.LeaveType, &l.StartDate, &l.EndDate,
		&l.Reason, &l.Status, &l.AdminComment, &l.CreatedAt, &l.UpdatedAt,
	)
	return l, err
}

// Create implements leave.LeaveRequestRepository.
func (r *leaveRequestRepository) Create(ctx context.Context, req leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_requests (id, employee_id, leave_type, start_date, end_date, reason, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + leaveColumns

	created, err := scanLeave(q.QueryRow(ctx, query,
		req.ID, req.EmployeeID, req.LeaveType, req.StartDate, req.EndDate, req.Reason, req.Status,
	))
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return created, nil
}

// GetByID implements leave.LeaveRequestRepository.
func (r *leaveRequestRepository) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + leaveColumns + ` FROM leave_requests WHERE id = $1`

	l, err := scanLeave(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequest{}, fmt.Errorf("failed to get leave request: %w", err)
	}

	return l, nil
}

// UpdateStatus implements leave.LeaveRequestRepository.
func (r *leaveRequestRepository) UpdateStatus(ctx context.Context, id string, status leave.Status, adminComment *string) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_requests
		SET status = $2, admin_comment = $3, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + leaveColumns

	l, err := scanLeave(q.QueryRow(ctx, query, id, status, adminComment))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequest{}, fmt.Errorf("failed to update leave status: %w", err)
	}

	return l, nil
}

// List implements leave.LeaveRequestRepository.
func (r *leaveRequestRepository) List(ctx context.Context, filter leave.ListFilter) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT l.id, l.employee_id, l.leave_type, l.start_date, l.end_date,
			   l.reason, l.status, l.admin_comment, l.created_at, l.updated_at,
			   e.name, e.role
		FROM leave_requests l
		JOIN employees e ON e.id = l.employee_id
		WHERE ($1 = '' OR l.employee_id = $1)
		  AND ($2 = '' OR l.status = $2)
		ORDER BY l.created_at DESC
	`

	rows, err := q.Query(ctx, query, filter.EmployeeID, filter.Status)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	defer rows.Close()

	var result []leave.LeaveRequest
	for rows.Next() {
		var l leave.LeaveRequest
		err := rows.Scan(
			&l.ID, &l.EmployeeID, &l.LeaveType, &l.StartDate, &l.EndDate,
			&l.Reason, &l.Status, &l.AdminComment, &l.CreatedAt, &l.UpdatedAt,
			&l.EmployeeName, &l.EmployeeRole,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		result = append(result, l)
	}

	return result, rows.Err()
}

// ListApprovedOverlapping implements leave.LeaveRequestRepository.
func (r *leaveRequestRepository) ListApprovedOverlapping(ctx context.Context, employeeID string, startDate, endDate time.Time) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveColumns + `
		FROM leave_requests
		WHERE employee_id = $1
		  AND status = 'Approved'
		  AND start_date <= $3
		  AND end_date >= $2
		ORDER BY start_date
	`

	rows, err := q.Query(ctx, query, employeeID, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("failed to list approved leave: %w", err)
	}
	defer rows.Close()

	var result []leave.LeaveRequest
	for rows.Next() {
		l, err := scanLeave(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		result = append(result, l)
	}

	return result, rows.Err()
}
