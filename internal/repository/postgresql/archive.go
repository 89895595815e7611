package postgresql

import (
	"context"
	"fmt"

	"github.com/c4sfood/payroll-backend-go/internal/domain/employee"
	"github.com/c4sfood/payroll-backend-go/internal/pkg/database"
)

type archiveRepository struct {
	db *database.DB
}

func NewArchiveRepository(db *database.DB) employee.ArchiveRepository {
	return &archiveRepository{db: db}
}

// Insert implements employee.ArchiveRepository.
func (r *archiveRepository) Insert(ctx context.Context, snapshot employee.ArchivedEmployee) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO archived_employees (id, name, email, username, role, daily_rate)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := q.Exec(ctx, query,
		snapshot.ID, snapshot.Name, snapshot.Email, snapshot.Username,
		snapshot.Role, snapshot.DailyRate,
	)
	if err != nil {
		return fmt.Errorf("failed to insert archive snapshot: %w", err)
	}

	return nil
}

// Delete implements employee.ArchiveRepository.
func (r *archiveRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM archived_employees WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete archive snapshot: %w", err)
	}

	return nil
}

// List implements employee.ArchiveRepository.
func (r *archiveRepository) List(ctx context.Context) ([]employee.ArchivedEmployee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, email, username, role, daily_rate, archived_at
		FROM archived_employees
		ORDER BY archived_at DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list archive snapshots: %w", err)
	}
	defer rows.Close()

	var result []employee.ArchivedEmployee
	for rows.Next() {
		var a employee.ArchivedEmployee
		if err := rows.Scan(&a.ID, &a.Name, &a.Email, &a.Username, &a.Role, &a.DailyRate, &a.ArchivedAt); err != nil {
			return nil, fmt.Errorf("failed to scan archive snapshot: %w", err)
		}
		result = append(result, a)
	}

	return result, rows.Err()
}
