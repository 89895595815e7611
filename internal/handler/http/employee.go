package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/c4sfood/payroll-backend-go/internal/domain/employee"
	"github.com/c4sfood/payroll-backend-go/internal/handler/http/middleware"
	"github.com/c4sfood/payroll-backend-go/internal/handler/http/response"
	"github.com/c4sfood/payroll-backend-go/internal/pkg/sse"
)

type EmployeeHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Me(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Archive(w http.ResponseWriter, r *http.Request)
	Restore(w http.ResponseWriter, r *http.Request)
	ListArchived(w http.ResponseWriter, r *http.Request)
}

type EmployeeHandlerImpl struct {
	employeeService employee.EmployeeService
	hub             *sse.Hub
}

func NewEmployeeHandler(employeeService employee.EmployeeService, hub *sse.Hub) EmployeeHandler {
	return &EmployeeHandlerImpl{
		employeeService: employeeService,
		hub:             hub,
	}
}

// Register implements EmployeeHandler.
func (h *EmployeeHandlerImpl) Register(w http.ResponseWriter, r *http.Request) {
	var req employee.CreateEmployeeRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Register decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.employeeService.Register(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	h.hub.Publish("employees", created)
	response.Created(w, "Employee registered", created)
}

// Get implements EmployeeHandler.
func (h *EmployeeHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	emp, err := h.employeeService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, emp)
}

// Me implements EmployeeHandler.
func (h *EmployeeHandlerImpl) Me(w http.ResponseWriter, r *http.Request) {
	emp, err := h.employeeService.Get(r.Context(), middleware.EmployeeID(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, emp)
}

// List implements EmployeeHandler.
func (h *EmployeeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	employees, err := h.employeeService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, employees)
}

// Update implements EmployeeHandler.
func (h *EmployeeHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req employee.UpdateEmployeeRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	updated, err := h.employeeService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	h.hub.Publish("employees", updated)
	response.Success(w, updated)
}

// Archive implements EmployeeHandler.
func (h *EmployeeHandlerImpl) Archive(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.employeeService.Archive(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	h.hub.Publish("employees", map[string]string{"id": id, "status": "archived"})
	response.SuccessWithMessage(w, "Employee archived", nil)
}

// Restore implements EmployeeHandler.
func (h *EmployeeHandlerImpl) Restore(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.employeeService.Restore(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	h.hub.Publish("employees", map[string]string{"id": id, "status": "active"})
	response.SuccessWithMessage(w, "Employee restored", nil)
}

// ListArchived implements EmployeeHandler.
func (h *EmployeeHandlerImpl) ListArchived(w http.ResponseWriter, r *http.Request) {
	archived, err := h.employeeService.ListArchived(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, archived)
}
