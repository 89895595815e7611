package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/c4sfood/payroll-backend-go/internal/config"
	"github.com/c4sfood/payroll-backend-go/internal/handler/http/middleware"
	"github.com/c4sfood/payroll-backend-go/internal/pkg/jwt"
)

type Handlers struct {
	Auth       AuthHandler
	Employee   EmployeeHandler
	Attendance AttendanceHandler
	Leave      LeaveHandler
	Payroll    PayrollHandler
	Events     EventsHandler
}

func NewRouter(cfg *config.Config, jwtService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "c4s-payroll"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/healthz"))

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.Auth.Login)
			r.Post("/refresh", h.Auth.RefreshToken)
			r.Post("/logout", h.Auth.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Get("/events", h.Events.Stream)

			r.Route("/employees", func(r chi.Router) {
				r.Get("/me", h.Employee.Me)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/", h.Employee.List)
					r.Post("/", h.Employee.Register)
					r.Get("/archived", h.Employee.ListArchived)
					r.Get("/{id}", h.Employee.Get)
					r.Put("/{id}", h.Employee.Update)
					r.Post("/{id}/archive", h.Employee.Archive)
					r.Post("/{id}/restore", h.Employee.Restore)
				})
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/time-in", h.Attendance.TimeIn)
				r.Post("/time-out", h.Attendance.TimeOut)
				r.Delete("/time-in", h.Attendance.CancelTimeIn)
				r.Get("/today", h.Attendance.Today)
				r.Get("/", h.Attendance.List)
			})

			r.Route("/leave-requests", func(r chi.Router) {
				r.Post("/", h.Leave.Create)
				r.Get("/", h.Leave.List)
				r.Post("/{id}/cancel", h.Leave.Cancel)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/{id}/approve", h.Leave.Approve)
					r.Post("/{id}/reject", h.Leave.Reject)
				})
			})

			r.Route("/payroll", func(r chi.Router) {
				r.Get("/periods", h.Payroll.Periods)

				r.Route("/payslips", func(r chi.Router) {
					r.Get("/", h.Payroll.ListPayslips)
					r.Get("/{id}", h.Payroll.GetPayslip)
					r.Get("/{id}/pdf", h.Payroll.DownloadPayslip)

					// Admin only
					r.With(middleware.AdminOnly).Patch("/{id}/status", h.Payroll.SetStatus)
				})

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/preview", h.Payroll.Preview)
					r.Post("/confirm", h.Payroll.Confirm)
					r.Get("/settings", h.Payroll.GetSettings)
					r.Put("/settings", h.Payroll.UpdateSettings)
				})
			})
		})
	})

	return r
}
