package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/c4sfood/payroll-backend-go/internal/domain/employee"
	"github.com/c4sfood/payroll-backend-go/internal/pkg/database"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

const employeeColumns = `id, name, email, username, password_hash, role,
	daily_rate, sss_deduction, philhealth_deduction, pagibig_deduction,
	status, created_at, updated_at`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var e employee.Employee
	err := row.Scan(
		&e.ID, &e.Name, &e.Email, &e.Username, &e.PasswordHash, &e.Role,
		&e.DailyRate, &e.SSS, &e.Philhealth, &e.Pagibig,
		&e.Status, &e.CreatedAt, &e.UpdatedAt,
	)
	return e, err
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepository) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (
			id, name, email, username, password_hash, role,
			daily_rate, sss_deduction, philhealth_deduction, pagibig_deduction, status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING ` + employeeColumns

	created, err := scanEmployee(q.QueryRow(ctx, query,
		emp.ID, emp.Name, emp.Email, emp.Username, emp.PasswordHash, emp.Role,
		emp.DailyRate, emp.SSS, emp.Philhealth, emp.Pagibig, emp.Status,
	))
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return created, nil
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1`

	e, err := scanEmployee(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by id: %w", err)
	}

	return e, nil
}

// GetByEmailOrUsername implements employee.EmployeeRepository.
func (r *employeeRepository) GetByEmailOrUsername(ctx context.Context, identifier string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees
		WHERE (email = $1 OR username = $1)
		  AND status = 'active'
		LIMIT 1
	`

	e, err := scanEmployee(q.QueryRow(ctx, query, identifier))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by identifier: %w", err)
	}

	return e, nil
}

// List implements employee.EmployeeRepository.
func (r *employeeRepository) List(ctx context.Context, status employee.Status) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees
		WHERE status = $1
		ORDER BY created_at DESC
	`

	rows, err := q.Query(ctx, query, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var result []employee.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		result = append(result, e)
	}

	return result, rows.Err()
}

// Update implements employee.EmployeeRepository.
func (r *employeeRepository) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	sets := []string{"updated_at = NOW()"}
	args := []interface{}{req.ID}

	addSet := func(column string, value interface{}) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if req.Name != nil {
		addSet("name", *req.Name)
	}
	if req.Email != nil {
		addSet("email", *req.Email)
	}
	if req.Role != nil {
		addSet("role", *req.Role)
	}
	if req.DailyRate != nil {
		addSet("daily_rate", *req.DailyRate)
	}
	if req.SSS != nil {
		addSet("sss_deduction", *req.SSS)
	}
	if req.Philhealth != nil {
		addSet("philhealth_deduction", *req.Philhealth)
	}
	if req.Pagibig != nil {
		addSet("pagibig_deduction", *req.Pagibig)
	}

	query := fmt.Sprintf(`
		UPDATE employees SET %s
		WHERE id = $1
		RETURNING %s
	`, strings.Join(sets, ", "), employeeColumns)

	e, err := scanEmployee(q.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to update employee: %w", err)
	}

	return e, nil
}

// EmailExists implements employee.EmployeeRepository.
func (r *employeeRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM employees WHERE email = $1)`, email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check email: %w", err)
	}
	return exists, nil
}

// UsernameExists implements employee.EmployeeRepository.
func (r *employeeRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM employees WHERE username = $1)`, username).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check username: %w", err)
	}
	return exists, nil
}

// ListIDs implements employee.EmployeeRepository.
func (r *employeeRepository) ListIDs(ctx context.Context) ([]string, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT id FROM employees`)
	if err != nil {
		return nil, fmt.Errorf("failed to list employee ids: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan employee id: %w", err)
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}

// SetStatus implements employee.EmployeeRepository.
func (r *employeeRepository) SetStatus(ctx context.Context, id string, status employee.Status) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE employees SET status = $2, updated_at = NOW() WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("failed to set employee status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}
