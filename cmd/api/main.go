package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shopspring/decimal"

	"github.com/c4sfood/payroll-backend-go/internal/config"
	"github.com/c4sfood/payroll-backend-go/internal/domain/payroll"
	appHTTP "github.com/c4sfood/payroll-backend-go/internal/handler/http"
	"github.com/c4sfood/payroll-backend-go/internal/pkg/cron"
	"github.com/c4sfood/payroll-backend-go/internal/pkg/database"
	"github.com/c4sfood/payroll-backend-go/internal/pkg/jwt"
	"github.com/c4sfood/payroll-backend-go/internal/pkg/sse"
	"github.com/c4sfood/payroll-backend-go/internal/repository/postgresql"
	attendanceService "github.com/c4sfood/payroll-backend-go/internal/service/attendance"
	authService "github.com/c4sfood/payroll-backend-go/internal/service/auth"
	employeeService "github.com/c4sfood/payroll-backend-go/internal/service/employee"
	leaveService "github.com/c4sfood/payroll-backend-go/internal/service/leave"
	payrollService "github.com/c4sfood/payroll-backend-go/internal/service/payroll"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	employeeRepo := postgresql.NewEmployeeRepository(db)
	archiveRepo := postgresql.NewArchiveRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRepo := postgresql.NewLeaveRequestRepository(db)
	payslipRepo := postgresql.NewPayslipRepository(db)
	settingsRepo := postgresql.NewSettingsRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	hub := sse.NewHub()

	flatTotal, err := decimal.NewFromString(cfg.Payroll.FlatDeductionTotal)
	if err != nil {
		fmt.Println("Invalid PAYROLL_FLAT_DEDUCTION_TOTAL:", err)
		return
	}
	payrollDefaults := payroll.Settings{
		DeductionPolicy:    payroll.DeductionPolicy(cfg.Payroll.DeductionPolicy),
		FlatDeductionTotal: flatTotal,
		DefaultPeriodType:  payroll.PeriodWeekly,
	}

	empService := employeeService.NewEmployeeService(db, employeeRepo, archiveRepo)
	attService := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo)
	lvService := leaveService.NewLeaveService(leaveRepo, employeeRepo)
	payService := payrollService.NewPayrollService(payslipRepo, settingsRepo, employeeRepo, attendanceRepo, leaveRepo, payrollDefaults)
	authSvc := authService.NewAuthService(employeeRepo, jwtService)

	handlers := appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(authSvc, jwtService),
		Employee:   appHTTP.NewEmployeeHandler(empService, hub),
		Attendance: appHTTP.NewAttendanceHandler(attService, hub),
		Leave:      appHTTP.NewLeaveHandler(lvService, hub),
		Payroll:    appHTTP.NewPayrollHandler(payService, hub),
		Events:     appHTTP.NewEventsHandler(hub),
	}

	router := appHTTP.NewRouter(cfg, jwtService, handlers)

	scheduler := cron.NewScheduler()
	scheduler.AddJob("attendance-auto-close", time.Hour, func(ctx context.Context) error {
		_, err := attService.CloseOpenSessions(ctx, time.Now())
		return err
	})
	scheduler.Start()
	defer scheduler.Stop()

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.App.Port),
		Handler: router,
	}

	go func() {
		fmt.Printf("Server running at http://localhost%s\n", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			fmt.Println("Server error:", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		fmt.Println("Shutdown error:", err)
	}
}
