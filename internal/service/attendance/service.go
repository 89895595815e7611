package attendance

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/c4sfood/payroll-backend-go/internal/domain/attendance"
	"github.com/c4sfood/payroll-backend-go/internal/domain/employee"
)

type AttendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
	}
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// lateMinutes counts lateness against the 08:00 scheduled start. Inside
// the 10 minute grace window the punch is on time; past it, the full
// span since 08:00 counts, not just the part past the grace.
func lateMinutes(timeIn time.Time) int {
	day := dateOnly(timeIn)
	start := day.Add(attendance.ScheduledStartHour * time.Hour)
	graceEnd := start.Add(attendance.GraceMinutes * time.Minute)

	if !timeIn.After(graceEnd) {
		return 0
	}
	return int(timeIn.Sub(start).Minutes())
}

// workedHours measures the span between punches minus the overlap with
// the 12:00-13:00 lunch break, rounded to 2 decimals. Payable hours cap
// at 8.
func workedHours(timeIn, timeOut time.Time) (worked, payable decimal.Decimal) {
	if !timeOut.After(timeIn) {
		return decimal.Zero, decimal.Zero
	}

	minutes := timeOut.Sub(timeIn).Minutes()

	day := dateOnly(timeIn)
	lunchStart := day.Add(attendance.LunchStartHour * time.Hour)
	lunchEnd := day.Add(attendance.LunchEndHour * time.Hour)

	overlapStart := timeIn
	if lunchStart.After(overlapStart) {
		overlapStart = lunchStart
	}
	overlapEnd := timeOut
	if lunchEnd.Before(overlapEnd) {
		overlapEnd = lunchEnd
	}
	if overlapEnd.After(overlapStart) {
		minutes -= overlapEnd.Sub(overlapStart).Minutes()
	}

	worked = decimal.NewFromFloat(minutes / 60).Round(2)
	payable = worked
	limit := decimal.NewFromInt(attendance.MaxPayableHoursPerDay)
	if payable.GreaterThan(limit) {
		payable = limit
	}
	return worked, payable
}

// TimeIn implements attendance.AttendanceService. The storage upsert
// keeps the first punch of the day, so a double tap simply returns the
// stored record.
func (s *AttendanceServiceImpl) TimeIn(ctx context.Context, employeeID string, now time.Time) (attendance.AttendanceResponse, error) {
	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	att := attendance.Attendance{
		ID:          uuid.New().String(),
		EmployeeID:  employeeID,
		Date:        dateOnly(now),
		TimeIn:      now,
		LateMinutes: lateMinutes(now),
		Status:      attendance.StatusPresent,
	}

	stored, err := s.attendanceRepo.Upsert(ctx, att)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to record time in: %w", err)
	}

	return attendance.ToResponse(stored), nil
}

// TimeOut implements attendance.AttendanceService. Repeated clock-outs
// overwrite the previous one (last out wins).
func (s *AttendanceServiceImpl) TimeOut(ctx context.Context, employeeID string, now time.Time) (attendance.AttendanceResponse, error) {
	rec, err := s.attendanceRepo.GetByEmployeeAndDate(ctx, employeeID, dateOnly(now))
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to load today's record: %w", err)
	}
	if rec == nil {
		return attendance.AttendanceResponse{}, attendance.ErrNotClockedIn
	}

	worked, payable := workedHours(rec.TimeIn, now)

	out := now
	rec.TimeOut = &out
	rec.WorkedHours = worked
	rec.PayableHours = payable
	rec.Status = attendance.StatusClosed

	stored, err := s.attendanceRepo.UpdateClockOut(ctx, *rec)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to record time out: %w", err)
	}

	return attendance.ToResponse(stored), nil
}

// CancelTimeIn implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CancelTimeIn(ctx context.Context, employeeID string, now time.Time) error {
	rec, err := s.attendanceRepo.GetByEmployeeAndDate(ctx, employeeID, dateOnly(now))
	if err != nil {
		return fmt.Errorf("failed to load today's record: %w", err)
	}
	if rec == nil {
		return attendance.ErrNotClockedIn
	}
	if rec.TimeOut != nil {
		return attendance.ErrAlreadyClockedOut
	}

	if err := s.attendanceRepo.Delete(ctx, rec.ID); err != nil {
		return fmt.Errorf("failed to cancel time in: %w", err)
	}

	return nil
}

// Today implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Today(ctx context.Context, employeeID string, now time.Time) (*attendance.AttendanceResponse, error) {
	rec, err := s.attendanceRepo.GetByEmployeeAndDate(ctx, employeeID, dateOnly(now))
	if err != nil {
		return nil, fmt.Errorf("failed to load today's record: %w", err)
	}
	if rec == nil {
		return nil, nil
	}

	resp := attendance.ToResponse(*rec)
	return &resp, nil
}

// List implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) List(ctx context.Context, filter attendance.ListFilter) ([]attendance.AttendanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	records, err := s.attendanceRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}

	result := make([]attendance.AttendanceResponse, 0, len(records))
	for _, rec := range records {
		result = append(result, attendance.ToResponse(rec))
	}

	return result, nil
}

// CloseOpenSessions implements attendance.AttendanceService. Records
// left open on a previous day are closed at that day's scheduled end
// (17:00), so a forgotten punch never accrues overnight hours.
func (s *AttendanceServiceImpl) CloseOpenSessions(ctx context.Context, now time.Time) (int, error) {
	open, err := s.attendanceRepo.ListOpenBefore(ctx, dateOnly(now))
	if err != nil {
		return 0, fmt.Errorf("failed to list open sessions: %w", err)
	}

	closed := 0
	for _, rec := range open {
		out := dateOnly(rec.Date).Add(17 * time.Hour)
		if out.Before(rec.TimeIn) {
			out = rec.TimeIn
		}

		worked, payable := workedHours(rec.TimeIn, out)
		rec.TimeOut = &out
		rec.WorkedHours = worked
		rec.PayableHours = payable
		rec.Status = attendance.StatusClosed

		if _, err := s.attendanceRepo.UpdateClockOut(ctx, rec); err != nil {
			slog.Error("failed to auto-close attendance session", "attendance_id", rec.ID, "error", err)
			continue
		}
		closed++
	}

	if closed > 0 {
		slog.Info("auto-closed open attendance sessions", "count", closed)
	}

	return closed, nil
}
