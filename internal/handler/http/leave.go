package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/c4sfood/payroll-backend-go/internal/domain/leave"
	"github.com/c4sfood/payroll-backend-go/internal/handler/http/middleware"
	"github.com/c4sfood/payroll-backend-go/internal/handler/http/response"
	"github.com/c4sfood/payroll-backend-go/internal/pkg/sse"
)

type LeaveHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
	Cancel(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type LeaveHandlerImpl struct {
	leaveService leave.LeaveService
	hub          *sse.Hub
}

func NewLeaveHandler(leaveService leave.LeaveService, hub *sse.Hub) LeaveHandler {
	return &LeaveHandlerImpl{
		leaveService: leaveService,
		hub:          hub,
	}
}

// Create implements LeaveHandler.
func (h *LeaveHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req leave.CreateLeaveRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create leave decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.EmployeeID = middleware.EmployeeID(r)

	created, err := h.leaveService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	h.hub.Publish("leave_requests", created)
	response.Created(w, "Leave request filed", created)
}

func (h *LeaveHandlerImpl) decide(w http.ResponseWriter, r *http.Request,
	fn func(r *http.Request, req leave.DecideLeaveRequest) (leave.LeaveResponse, error)) {

	var req leave.DecideLeaveRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			slog.Error("Decide leave decode error", "error", err)
			response.BadRequest(w, "Invalid request format", nil)
			return
		}
	}
	req.ID = chi.URLParam(r, "id")

	decided, err := fn(r, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	h.hub.Publish("leave_requests", decided)
	response.Success(w, decided)
}

// Approve implements LeaveHandler.
func (h *LeaveHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, func(r *http.Request, req leave.DecideLeaveRequest) (leave.LeaveResponse, error) {
		return h.leaveService.Approve(r.Context(), req)
	})
}

// Reject implements LeaveHandler.
func (h *LeaveHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, func(r *http.Request, req leave.DecideLeaveRequest) (leave.LeaveResponse, error) {
		return h.leaveService.Reject(r.Context(), req)
	})
}

// Cancel implements LeaveHandler.
func (h *LeaveHandlerImpl) Cancel(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	cancelled, err := h.leaveService.Cancel(r.Context(), id, middleware.EmployeeID(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	h.hub.Publish("leave_requests", cancelled)
	response.Success(w, cancelled)
}

// List implements LeaveHandler. Non-admin callers only see their own
// requests.
func (h *LeaveHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := leave.ListFilter{
		EmployeeID: r.URL.Query().Get("employee_id"),
		Status:     r.URL.Query().Get("status"),
	}
	if !middleware.IsAdmin(r) {
		filter.EmployeeID = middleware.EmployeeID(r)
	}

	requests, err := h.leaveService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, requests)
}
