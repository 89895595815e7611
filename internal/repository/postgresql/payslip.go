package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/c4sfood/payroll-backend-go/internal/domain/payroll"
	"github.com/c4sfood/payroll-backend-go/internal/pkg/database"
)

type payslipRepository struct {
	db *database.DB
}

func NewPayslipRepository(db *database.DB) payroll.PayslipRepository {
	return &payslipRepository{db: db}
}

const payslipColumns = `id, employee_id, period_start, period_end, period_type,
	payable_days, gross_pay, sss, philhealth, pagibig,
	late_deduction, total_deductions, net_pay,
	worked_hours, late_minutes, status, created_at, updated_at`

func scanPayslip(row pgx.Row) (payroll.Payslip, error) {
	var p payroll.Payslip
	err := row.Scan(
		&p.ID, &p.EmployeeID, &p.PeriodStart, &p.PeriodEnd, &p.PeriodType,
		&p.PayableDays, &p.GrossPay, &p.SSS, &p.Philhealth, &p.Pagibig,
		&p.LateDeduction, &p.TotalDeductions, &p.NetPay,
		&p.WorkedHours, &p.LateMinutes, &p.Status, &p.CreatedAt, &p.UpdatedAt,
	)
	return p, err
}

// GetByEmployeeAndPeriodStart implements payroll.PayslipRepository.
func (r *payslipRepository) GetByEmployeeAndPeriodStart(ctx context.Context, employeeID string, periodStart time.Time) (payroll.Payslip, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + payslipColumns + `
		FROM payslips
		WHERE employee_id = $1
		  AND period_start = $2
		LIMIT 1
	`

	p, err := scanPayslip(q.QueryRow(ctx, query, employeeID, periodStart))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.Payslip{}, payroll.ErrPayslipNotFound
		}
		return payroll.Payslip{}, fmt.Errorf("failed to get payslip by period: %w", err)
	}

	return p, nil
}

// Upsert implements payroll.PayslipRepository. The write is conditional:
// the DO UPDATE's WHERE clause skips rows already Approved, so an
// approval that lands between the caller's status check and this write
// still cannot be overwritten. A skipped update returns no row, which
// surfaces as ErrPayslipApproved.
func (r *payslipRepository) Upsert(ctx context.Context, p payroll.Payslip) (payroll.Payslip, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payslips (
			id, employee_id, period_start, period_end, period_type,
			payable_days, gross_pay, sss, philhealth, pagibig,
			late_deduction, total_deductions, net_pay,
			worked_hours, late_minutes, status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		ON CONFLICT (employee_id, period_start) DO UPDATE SET
			period_end = EXCLUDED.period_end,
			period_type = EXCLUDED.period_type,
			payable_days = EXCLUDED.payable_days,
			gross_pay = EXCLUDED.gross_pay,
			sss = EXCLUDED.sss,
			philhealth = EXCLUDED.philhealth,
			pagibig = EXCLUDED.pagibig,
			late_deduction = EXCLUDED.late_deduction,
			total_deductions = EXCLUDED.total_deductions,
			net_pay = EXCLUDED.net_pay,
			worked_hours = EXCLUDED.worked_hours,
			late_minutes = EXCLUDED.late_minutes,
			status = EXCLUDED.status,
			updated_at = NOW()
		WHERE payslips.status <> 'Approved'
		RETURNING ` + payslipColumns

	stored, err := scanPayslip(q.QueryRow(ctx, query,
		p.ID, p.EmployeeID, p.PeriodStart, p.PeriodEnd, p.PeriodType,
		p.PayableDays, p.GrossPay, p.SSS, p.Philhealth, p.Pagibig,
		p.LateDeduction, p.TotalDeductions, p.NetPay,
		p.WorkedHours, p.LateMinutes, p.Status,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.Payslip{}, payroll.ErrPayslipApproved
		}
		return payroll.Payslip{}, fmt.Errorf("failed to upsert payslip: %w", err)
	}

	return stored, nil
}

// GetByID implements payroll.PayslipRepository.
func (r *payslipRepository) GetByID(ctx context.Context, id string) (payroll.Payslip, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT p.id, p.employee_id, p.period_start, p.period_end, p.period_type,
			   p.payable_days, p.gross_pay, p.sss, p.philhealth, p.pagibig,
			   p.late_deduction, p.total_deductions, p.net_pay,
			   p.worked_hours, p.late_minutes, p.status, p.created_at, p.updated_at,
			   e.name, e.role
		FROM payslips p
		JOIN employees e ON e.id = p.employee_id
		WHERE p.id = $1
	`

	var p payroll.Payslip
	err := q.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.EmployeeID, &p.PeriodStart, &p.PeriodEnd, &p.PeriodType,
		&p.PayableDays, &p.GrossPay, &p.SSS, &p.Philhealth, &p.Pagibig,
		&p.LateDeduction, &p.TotalDeductions, &p.NetPay,
		&p.WorkedHours, &p.LateMinutes, &p.Status, &p.CreatedAt, &p.UpdatedAt,
		&p.EmployeeName, &p.EmployeeRole,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.Payslip{}, payroll.ErrPayslipNotFound
		}
		return payroll.Payslip{}, fmt.Errorf("failed to get payslip: %w", err)
	}

	return p, nil
}

// UpdateStatus implements payroll.PayslipRepository.
func (r *payslipRepository) UpdateStatus(ctx context.Context, id string, status payroll.Status) (payroll.Payslip, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payslips
		SET status = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + payslipColumns

	p, err := scanPayslip(q.QueryRow(ctx, query, id, status))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.Payslip{}, payroll.ErrPayslipNotFound
		}
		return payroll.Payslip{}, fmt.Errorf("failed to update payslip status: %w", err)
	}

	return p, nil
}

// List implements payroll.PayslipRepository.
func (r *payslipRepository) List(ctx context.Context, filter payroll.ListFilter) ([]payroll.Payslip, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT p.id, p.employee_id, p.period_start, p.period_end, p.period_type,
			   p.payable_days, p.gross_pay, p.sss, p.philhealth, p.pagibig,
			   p.late_deduction, p.total_deductions, p.net_pay,
			   p.worked_hours, p.late_minutes, p.status, p.created_at, p.updated_at,
			   e.name, e.role
		FROM payslips p
		JOIN employees e ON e.id = p.employee_id
		WHERE ($1 = '' OR p.employee_id = $1)
		  AND ($2 = '' OR p.status = $2)
		  AND ($3 = '' OR p.period_start = $3::date)
		ORDER BY p.period_start DESC
	`

	rows, err := q.Query(ctx, query, filter.EmployeeID, filter.Status, filter.PeriodStart)
	if err != nil {
		return nil, fmt.Errorf("failed to list payslips: %w", err)
	}
	defer rows.Close()

	var result []payroll.Payslip
	for rows.Next() {
		var p payroll.Payslip
		err := rows.Scan(
			&p.ID, &p.EmployeeID, &p.PeriodStart, &p.PeriodEnd, &p.PeriodType,
			&p.PayableDays, &p.GrossPay, &p.SSS, &p.Philhealth, &p.Pagibig,
			&p.LateDeduction, &p.TotalDeductions, &p.NetPay,
			&p.WorkedHours, &p.LateMinutes, &p.Status, &p.CreatedAt, &p.UpdatedAt,
			&p.EmployeeName, &p.EmployeeRole,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payslip: %w", err)
		}
		result = append(result, p)
	}

	return result, rows.Err()
}
