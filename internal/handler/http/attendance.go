package http

import (
	"net/http"
	"time"

	"github.com/c4sfood/payroll-backend-go/internal/domain/attendance"
	"github.com/c4sfood/payroll-backend-go/internal/handler/http/middleware"
	"github.com/c4sfood/payroll-backend-go/internal/handler/http/response"
	"github.com/c4sfood/payroll-backend-go/internal/pkg/sse"
)

type AttendanceHandler interface {
	TimeIn(w http.ResponseWriter, r *http.Request)
	TimeOut(w http.ResponseWriter, r *http.Request)
	CancelTimeIn(w http.ResponseWriter, r *http.Request)
	Today(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
	hub               *sse.Hub
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService, hub *sse.Hub) AttendanceHandler {
	return &AttendanceHandlerImpl{
		attendanceService: attendanceService,
		hub:               hub,
	}
}

// TimeIn implements AttendanceHandler.
func (h *AttendanceHandlerImpl) TimeIn(w http.ResponseWriter, r *http.Request) {
	rec, err := h.attendanceService.TimeIn(r.Context(), middleware.EmployeeID(r), time.Now())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	h.hub.Publish("attendance", rec)
	response.Success(w, rec)
}

// TimeOut implements AttendanceHandler.
func (h *AttendanceHandlerImpl) TimeOut(w http.ResponseWriter, r *http.Request) {
	rec, err := h.attendanceService.TimeOut(r.Context(), middleware.EmployeeID(r), time.Now())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	h.hub.Publish("attendance", rec)
	response.Success(w, rec)
}

// CancelTimeIn implements AttendanceHandler.
func (h *AttendanceHandlerImpl) CancelTimeIn(w http.ResponseWriter, r *http.Request) {
	employeeID := middleware.EmployeeID(r)

	if err := h.attendanceService.CancelTimeIn(r.Context(), employeeID, time.Now()); err != nil {
		response.HandleError(w, err)
		return
	}

	h.hub.Publish("attendance", map[string]string{"employee_id": employeeID, "action": "cancelled"})
	response.SuccessWithMessage(w, "Time in cancelled", nil)
}

// Today implements AttendanceHandler.
func (h *AttendanceHandlerImpl) Today(w http.ResponseWriter, r *http.Request) {
	rec, err := h.attendanceService.Today(r.Context(), middleware.EmployeeID(r), time.Now())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, rec)
}

// List implements AttendanceHandler. Non-admin callers only see their
// own records.
func (h *AttendanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := attendance.ListFilter{
		EmployeeID: r.URL.Query().Get("employee_id"),
		StartDate:  r.URL.Query().Get("start_date"),
		EndDate:    r.URL.Query().Get("end_date"),
	}
	if !middleware.IsAdmin(r) {
		filter.EmployeeID = middleware.EmployeeID(r)
	}

	records, err := h.attendanceService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}
