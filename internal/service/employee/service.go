package employee

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"strconv"

	"golang.org/x/crypto/bcrypt"

	"github.com/c4sfood/payroll-backend-go/internal/domain/employee"
	"github.com/c4sfood/payroll-backend-go/internal/pkg/database"
	"github.com/c4sfood/payroll-backend-go/internal/repository/postgresql"
)

type EmployeeServiceImpl struct {
	db           *database.DB
	employeeRepo employee.EmployeeRepository
	archiveRepo  employee.ArchiveRepository
}

func NewEmployeeService(
	db *database.DB,
	employeeRepo employee.EmployeeRepository,
	archiveRepo employee.ArchiveRepository,
) employee.EmployeeService {
	return &EmployeeServiceImpl{
		db:           db,
		employeeRepo: employeeRepo,
		archiveRepo:  archiveRepo,
	}
}

// generateCode picks an unused 4-digit employee code. Codes are drawn
// at random from 1000-9999 so they carry no hiring-order information.
func (s *EmployeeServiceImpl) generateCode(ctx context.Context) (string, error) {
	ids, err := s.employeeRepo.ListIDs(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to list employee codes: %w", err)
	}

	used := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		used[id] = struct{}{}
	}

	const low, high = 1000, 10000
	if len(used) >= high-low {
		return "", employee.ErrCodeSpaceExhausted
	}

	for {
		code := strconv.Itoa(low + rand.Intn(high-low))
		if _, taken := used[code]; !taken {
			return code, nil
		}
	}
}

// Register implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Register(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emailTaken, err := s.employeeRepo.EmailExists(ctx, req.Email)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to check email: %w", err)
	}
	if emailTaken {
		return employee.EmployeeResponse{}, employee.ErrEmailExists
	}

	usernameTaken, err := s.employeeRepo.UsernameExists(ctx, req.Username)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to check username: %w", err)
	}
	if usernameTaken {
		return employee.EmployeeResponse{}, employee.ErrUsernameExists
	}

	code, err := s.generateCode(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	emp := employee.Employee{
		ID:           code,
		Name:         req.Name,
		Email:        req.Email,
		Username:     req.Username,
		PasswordHash: string(hash),
		Role:         req.Role,
		DailyRate:    employee.DefaultDailyRate,
		SSS:          employee.DefaultSSS,
		Philhealth:   employee.DefaultPhilhealth,
		Pagibig:      employee.DefaultPagibig,
		Status:       employee.StatusActive,
	}
	if req.DailyRate != nil {
		emp.DailyRate = *req.DailyRate
	}
	if req.SSS != nil {
		emp.SSS = *req.SSS
	}
	if req.Philhealth != nil {
		emp.Philhealth = *req.Philhealth
	}
	if req.Pagibig != nil {
		emp.Pagibig = *req.Pagibig
	}

	created, err := s.employeeRepo.Create(ctx, emp)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to create employee: %w", err)
	}

	slog.Info("employee registered", "employee_id", created.ID, "role", created.Role)

	return employee.ToResponse(created), nil
}

// Get implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Get(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return employee.ToResponse(emp), nil
}

// List implements employee.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context) ([]employee.EmployeeResponse, error) {
	employees, err := s.employeeRepo.List(ctx, employee.StatusActive)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	result := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		result = append(result, employee.ToResponse(emp))
	}

	return result, nil
}

// Update implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.Email != nil {
		current, err := s.employeeRepo.GetByID(ctx, req.ID)
		if err != nil {
			return employee.EmployeeResponse{}, err
		}
		if current.Email != *req.Email {
			taken, err := s.employeeRepo.EmailExists(ctx, *req.Email)
			if err != nil {
				return employee.EmployeeResponse{}, fmt.Errorf("failed to check email: %w", err)
			}
			if taken {
				return employee.EmployeeResponse{}, employee.ErrEmailExists
			}
		}
	}

	updated, err := s.employeeRepo.Update(ctx, req)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return employee.ToResponse(updated), nil
}

// Archive implements employee.EmployeeService. The snapshot insert and
// the status flip commit together.
func (s *EmployeeServiceImpl) Archive(ctx context.Context, id string) error {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if emp.Status == employee.StatusArchived {
		return employee.ErrAlreadyArchived
	}

	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		snapshot := employee.ArchivedEmployee{
			ID:        emp.ID,
			Name:      emp.Name,
			Email:     emp.Email,
			Username:  emp.Username,
			Role:      emp.Role,
			DailyRate: emp.DailyRate,
		}
		if err := s.archiveRepo.Insert(txCtx, snapshot); err != nil {
			return fmt.Errorf("failed to insert archive snapshot: %w", err)
		}

		if err := s.employeeRepo.SetStatus(txCtx, id, employee.StatusArchived); err != nil {
			return fmt.Errorf("failed to archive employee: %w", err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	slog.Info("employee archived", "employee_id", id)
	return nil
}

// Restore implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Restore(ctx context.Context, id string) error {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if emp.Status != employee.StatusArchived {
		return employee.ErrNotArchived
	}

	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		if err := s.employeeRepo.SetStatus(txCtx, id, employee.StatusActive); err != nil {
			return fmt.Errorf("failed to restore employee: %w", err)
		}

		if err := s.archiveRepo.Delete(txCtx, id); err != nil {
			return fmt.Errorf("failed to delete archive snapshot: %w", err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	slog.Info("employee restored", "employee_id", id)
	return nil
}

// ListArchived implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListArchived(ctx context.Context) ([]employee.ArchivedEmployeeResponse, error) {
	snapshots, err := s.archiveRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list archived employees: %w", err)
	}

	result := make([]employee.ArchivedEmployeeResponse, 0, len(snapshots))
	for _, snap := range snapshots {
		result = append(result, employee.ArchivedEmployeeResponse{
			ID:         snap.ID,
			Name:       snap.Name,
			Email:      snap.Email,
			Username:   snap.Username,
			Role:       snap.Role,
			DailyRate:  snap.DailyRate,
			ArchivedAt: snap.ArchivedAt,
		})
	}

	return result, nil
}
