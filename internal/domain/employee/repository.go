package employee

import (
	"context"
)

type EmployeeRepository interface {
	// Create inserts a new employee row.
	Create(ctx context.Context, emp Employee) (Employee, error)

	// GetByID retrieves an employee regardless of status. Archived
	// employees stay readable so historical payroll keeps working.
	GetByID(ctx context.Context, id string) (Employee, error)

	// GetByEmailOrUsername resolves the login identifier to an active
	// employee.
	GetByEmailOrUsername(ctx context.Context, identifier string) (Employee, error)

	// List returns employees filtered by status.
	List(ctx context.Context, status Status) ([]Employee, error)

	// Update applies a partial update to an employee row.
	Update(ctx context.Context, req UpdateEmployeeRequest) (Employee, error)

	// EmailExists / UsernameExists support registration uniqueness checks.
	EmailExists(ctx context.Context, email string) (bool, error)
	UsernameExists(ctx context.Context, username string) (bool, error)

	// ListIDs returns every assigned employee code, used when generating
	// a fresh 4-digit code.
	ListIDs(ctx context.Context) ([]string, error)

	// SetStatus flips the archived flag on the live row.
	SetStatus(ctx context.Context, id string, status Status) error
}

type ArchiveRepository interface {
	// Insert stores the archive snapshot.
	Insert(ctx context.Context, snapshot ArchivedEmployee) error

	// Delete removes the snapshot on restore.
	Delete(ctx context.Context, id string) error

	// List returns snapshots, most recently archived first.
	List(ctx context.Context) ([]ArchivedEmployee, error)
}
