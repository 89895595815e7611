package employee

import (
	"context"
)

// EmployeeService defines business logic for employee management
type EmployeeService interface {
	// Register creates an employee with a generated 4-digit code and
	// default compensation where none is supplied.
	Register(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)

	// Get retrieves a single employee by code.
	Get(ctx context.Context, id string) (EmployeeResponse, error)

	// List returns active employees.
	List(ctx context.Context) ([]EmployeeResponse, error)

	// Update applies admin edits to identity or compensation fields.
	Update(ctx context.Context, req UpdateEmployeeRequest) (EmployeeResponse, error)

	// Archive snapshots the employee and flips the status flag; history
	// is preserved.
	Archive(ctx context.Context, id string) error

	// Restore reverses an archive: the live row becomes active again and
	// the snapshot is removed.
	Restore(ctx context.Context, id string) error

	// ListArchived returns archive snapshots.
	ListArchived(ctx context.Context) ([]ArchivedEmployeeResponse, error)
}
