package payroll

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/c4sfood/payroll-backend-go/internal/domain/attendance"
	"github.com/c4sfood/payroll-backend-go/internal/domain/employee"
	"github.com/c4sfood/payroll-backend-go/internal/domain/leave"
	"github.com/c4sfood/payroll-backend-go/internal/domain/payroll"
	"github.com/c4sfood/payroll-backend-go/internal/pkg/validator"
)

type PayrollServiceImpl struct {
	payslipRepo    payroll.PayslipRepository
	settingsRepo   payroll.SettingsRepository
	employeeRepo   employee.EmployeeRepository
	attendanceRepo attendance.AttendanceRepository
	leaveRepo      leave.LeaveRequestRepository

	// defaults apply until the first settings row is saved.
	defaults payroll.Settings
}

func NewPayrollService(
	payslipRepo payroll.PayslipRepository,
	settingsRepo payroll.SettingsRepository,
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
	leaveRepo leave.LeaveRequestRepository,
	defaults payroll.Settings,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		payslipRepo:    payslipRepo,
		settingsRepo:   settingsRepo,
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		leaveRepo:      leaveRepo,
		defaults:       defaults,
	}
}

func (s *PayrollServiceImpl) settings(ctx context.Context) (payroll.Settings, error) {
	stored, err := s.settingsRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, payroll.ErrSettingsNotFound) {
			return s.defaults, nil
		}
		return payroll.Settings{}, err
	}
	return stored, nil
}

// compute gathers the period's inputs and runs the engine. Archived
// employees stay computable so historical periods can still be settled.
func (s *PayrollServiceImpl) compute(ctx context.Context, req payroll.RunPayrollRequest) (payroll.Computation, error) {
	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return payroll.Computation{}, err
	}

	start, _ := validator.IsValidDate(req.PeriodStart)
	period, err := payroll.PeriodFromStart(payroll.PeriodType(req.PeriodType), start)
	if err != nil {
		return payroll.Computation{}, err
	}

	atts, err := s.attendanceRepo.ListByEmployeeInRange(ctx, emp.ID, period.Start, period.End)
	if err != nil {
		return payroll.Computation{}, fmt.Errorf("failed to load attendance: %w", err)
	}

	leaves, err := s.leaveRepo.ListApprovedOverlapping(ctx, emp.ID, period.Start, period.End)
	if err != nil {
		return payroll.Computation{}, fmt.Errorf("failed to load approved leave: %w", err)
	}

	cfg, err := s.settings(ctx)
	if err != nil {
		return payroll.Computation{}, fmt.Errorf("failed to load payroll settings: %w", err)
	}

	return payroll.Compute(payroll.Inputs{
		Comp: payroll.Compensation{
			DailyRate:  emp.DailyRate,
			SSS:        emp.SSS,
			Philhealth: emp.Philhealth,
			Pagibig:    emp.Pagibig,
		},
		Policy:             cfg.DeductionPolicy,
		FlatDeductionTotal: cfg.FlatDeductionTotal,
		Period:             period,
		Attendance:         atts,
		ApprovedLeave:      leaves,
		ExtraLateMinutes:   req.ExtraLateMinutes,
	}), nil
}

// Preview implements payroll.PayrollService.
func (s *PayrollServiceImpl) Preview(ctx context.Context, req payroll.RunPayrollRequest) (payroll.PreviewResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PreviewResponse{}, err
	}

	c, err := s.compute(ctx, req)
	if err != nil {
		return payroll.PreviewResponse{}, err
	}

	resp := payroll.PreviewResponse{
		EmployeeID:      req.EmployeeID,
		PeriodStart:     c.Period.Start.Format("2006-01-02"),
		PeriodEnd:       c.Period.End.Format("2006-01-02"),
		PeriodType:      string(c.Period.Type),
		AttendanceDays:  c.AttendanceDays,
		LeaveDays:       c.LeaveDays,
		PayableDays:     c.PayableDays,
		WorkedHours:     c.WorkedHours,
		LateMinutes:     c.LateMinutes,
		GrossPay:        c.GrossPay,
		LateDeduction:   c.LateDeduction,
		TotalDeductions: c.TotalDeductions,
		NetPay:          c.NetPay,
		Warnings:        c.Warnings,
	}

	existing, err := s.payslipRepo.GetByEmployeeAndPeriodStart(ctx, req.EmployeeID, c.Period.Start)
	if err != nil {
		if !errors.Is(err, payroll.ErrPayslipNotFound) {
			return payroll.PreviewResponse{}, err
		}
	} else {
		status := string(existing.Status)
		resp.ExistingStatus = &status
	}

	return resp, nil
}

// Confirm implements payroll.PayrollService. The approval lock is
// checked twice: here against the freshly read row, and again inside the
// storage upsert, so a concurrent approval between the two cannot be
// overwritten.
func (s *PayrollServiceImpl) Confirm(ctx context.Context, req payroll.RunPayrollRequest) (payroll.PayslipResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayslipResponse{}, err
	}

	c, err := s.compute(ctx, req)
	if err != nil {
		return payroll.PayslipResponse{}, err
	}

	if c.PayableDays == 0 && !req.ConfirmZeroAttendance {
		return payroll.PayslipResponse{}, payroll.ErrZeroAttendanceUnconfirmed
	}

	existing, err := s.payslipRepo.GetByEmployeeAndPeriodStart(ctx, req.EmployeeID, c.Period.Start)
	if err != nil && !errors.Is(err, payroll.ErrPayslipNotFound) {
		return payroll.PayslipResponse{}, err
	}
	if err == nil && existing.Status == payroll.StatusApproved {
		return payroll.PayslipResponse{}, payroll.ErrPayslipApproved
	}

	stored, err := s.payslipRepo.Upsert(ctx, payroll.Payslip{
		ID:              uuid.New().String(),
		EmployeeID:      req.EmployeeID,
		PeriodStart:     c.Period.Start,
		PeriodEnd:       c.Period.End,
		PeriodType:      c.Period.Type,
		PayableDays:     c.PayableDays,
		GrossPay:        c.GrossPay,
		SSS:             c.SSS,
		Philhealth:      c.Philhealth,
		Pagibig:         c.Pagibig,
		LateDeduction:   c.LateDeduction,
		TotalDeductions: c.TotalDeductions,
		NetPay:          c.NetPay,
		WorkedHours:     c.WorkedHours,
		LateMinutes:     c.LateMinutes,
		Status:          payroll.StatusPending,
	})
	if err != nil {
		return payroll.PayslipResponse{}, err
	}

	slog.Info("payslip written",
		"employee_id", stored.EmployeeID,
		"period_start", stored.PeriodStart.Format("2006-01-02"),
		"net_pay", stored.NetPay.String(),
	)

	return payroll.ToPayslipResponse(stored), nil
}

// Periods implements payroll.PayrollService.
func (s *PayrollServiceImpl) Periods(ctx context.Context, periodType string, count int) ([]payroll.PeriodOption, error) {
	pt := payroll.PeriodType(periodType)
	if pt != payroll.PeriodWeekly && pt != payroll.PeriodMonthly {
		cfg, err := s.settings(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load payroll settings: %w", err)
		}
		pt = cfg.DefaultPeriodType
	}

	if count <= 0 {
		count = 8
	}
	if count > 52 {
		count = 52
	}

	now := time.Now()
	options := make([]payroll.PeriodOption, 0, count)
	for i := 0; i < count; i++ {
		p, err := payroll.Resolve(pt, now, -i)
		if err != nil {
			return nil, err
		}

		var label string
		if pt == payroll.PeriodWeekly {
			label = fmt.Sprintf("%s - %s",
				p.Start.Format("Jan 2"), p.End.Format("Jan 2, 2006"))
		} else {
			label = p.Start.Format("January 2006")
		}

		options = append(options, payroll.PeriodOption{
			Start:   p.Start.Format("2006-01-02"),
			End:     p.End.Format("2006-01-02"),
			Label:   label,
			Current: i == 0,
		})
	}

	return options, nil
}

// ListPayslips implements payroll.PayrollService.
func (s *PayrollServiceImpl) ListPayslips(ctx context.Context, filter payroll.ListFilter) ([]payroll.PayslipResponse, error) {
	payslips, err := s.payslipRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list payslips: %w", err)
	}

	result := make([]payroll.PayslipResponse, 0, len(payslips))
	for _, p := range payslips {
		result = append(result, payroll.ToPayslipResponse(p))
	}

	return result, nil
}

// GetPayslip implements payroll.PayrollService.
func (s *PayrollServiceImpl) GetPayslip(ctx context.Context, id string) (payroll.PayslipResponse, error) {
	p, err := s.payslipRepo.GetByID(ctx, id)
	if err != nil {
		return payroll.PayslipResponse{}, err
	}

	return payroll.ToPayslipResponse(p), nil
}

// SetStatus implements payroll.PayrollService.
func (s *PayrollServiceImpl) SetStatus(ctx context.Context, id string, status string) (payroll.PayslipResponse, error) {
	target := payroll.Status(status)
	if target != payroll.StatusApproved && target != payroll.StatusRejected && target != payroll.StatusPending {
		return payroll.PayslipResponse{}, validator.ValidationErrors{{
			Field:   "status",
			Message: "status must be Pending, Approved or Rejected",
		}}
	}

	p, err := s.payslipRepo.UpdateStatus(ctx, id, target)
	if err != nil {
		return payroll.PayslipResponse{}, err
	}

	slog.Info("payslip status changed", "payslip_id", p.ID, "status", p.Status)

	return payroll.ToPayslipResponse(p), nil
}

// GetSettings implements payroll.PayrollService.
func (s *PayrollServiceImpl) GetSettings(ctx context.Context) (payroll.SettingsResponse, error) {
	cfg, err := s.settings(ctx)
	if err != nil {
		return payroll.SettingsResponse{}, fmt.Errorf("failed to load payroll settings: %w", err)
	}

	return payroll.SettingsResponse{
		DeductionPolicy:    string(cfg.DeductionPolicy),
		FlatDeductionTotal: cfg.FlatDeductionTotal,
		DefaultPeriodType:  string(cfg.DefaultPeriodType),
	}, nil
}

// UpdateSettings implements payroll.PayrollService.
func (s *PayrollServiceImpl) UpdateSettings(ctx context.Context, req payroll.UpdateSettingsRequest) (payroll.SettingsResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.SettingsResponse{}, err
	}

	current, err := s.settings(ctx)
	if err != nil {
		return payroll.SettingsResponse{}, fmt.Errorf("failed to load payroll settings: %w", err)
	}

	if req.DeductionPolicy != nil {
		current.DeductionPolicy = payroll.DeductionPolicy(*req.DeductionPolicy)
	}
	if req.FlatDeductionTotal != nil {
		current.FlatDeductionTotal = *req.FlatDeductionTotal
	}
	if req.DefaultPeriodType != nil {
		current.DefaultPeriodType = payroll.PeriodType(*req.DefaultPeriodType)
	}

	stored, err := s.settingsRepo.Upsert(ctx, current)
	if err != nil {
		return payroll.SettingsResponse{}, fmt.Errorf("failed to save payroll settings: %w", err)
	}

	slog.Info("payroll settings updated", "deduction_policy", stored.DeductionPolicy)

	return payroll.SettingsResponse{
		DeductionPolicy:    string(stored.DeductionPolicy),
		FlatDeductionTotal: stored.FlatDeductionTotal,
		DefaultPeriodType:  string(stored.DefaultPeriodType),
	}, nil
}
