package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/c4sfood/payroll-backend-go/internal/domain/payroll"
	"github.com/c4sfood/payroll-backend-go/internal/handler/http/middleware"
	"github.com/c4sfood/payroll-backend-go/internal/handler/http/response"
	"github.com/c4sfood/payroll-backend-go/internal/pkg/pdf"
	"github.com/c4sfood/payroll-backend-go/internal/pkg/sse"
)

type PayrollHandler interface {
	Preview(w http.ResponseWriter, r *http.Request)
	Confirm(w http.ResponseWriter, r *http.Request)
	Periods(w http.ResponseWriter, r *http.Request)
	ListPayslips(w http.ResponseWriter, r *http.Request)
	GetPayslip(w http.ResponseWriter, r *http.Request)
	DownloadPayslip(w http.ResponseWriter, r *http.Request)
	SetStatus(w http.ResponseWriter, r *http.Request)
	GetSettings(w http.ResponseWriter, r *http.Request)
	UpdateSettings(w http.ResponseWriter, r *http.Request)
}

type PayrollHandlerImpl struct {
	payrollService payroll.PayrollService
	hub            *sse.Hub
}

func NewPayrollHandler(payrollService payroll.PayrollService, hub *sse.Hub) PayrollHandler {
	return &PayrollHandlerImpl{
		payrollService: payrollService,
		hub:            hub,
	}
}

// Preview implements PayrollHandler.
func (h *PayrollHandlerImpl) Preview(w http.ResponseWriter, r *http.Request) {
	var req payroll.RunPayrollRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Preview decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	preview, err := h.payrollService.Preview(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, preview)
}

// Confirm implements PayrollHandler.
func (h *PayrollHandlerImpl) Confirm(w http.ResponseWriter, r *http.Request) {
	var req payroll.RunPayrollRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Confirm decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	payslip, err := h.payrollService.Confirm(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	h.hub.Publish("payslips", payslip)
	response.Success(w, payslip)
}

// Periods implements PayrollHandler.
func (h *PayrollHandlerImpl) Periods(w http.ResponseWriter, r *http.Request) {
	count, _ := strconv.Atoi(r.URL.Query().Get("count"))

	options, err := h.payrollService.Periods(r.Context(), r.URL.Query().Get("type"), count)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, options)
}

// ListPayslips implements PayrollHandler. Non-admin callers only see
// their own payslips.
func (h *PayrollHandlerImpl) ListPayslips(w http.ResponseWriter, r *http.Request) {
	filter := payroll.ListFilter{
		EmployeeID:  r.URL.Query().Get("employee_id"),
		Status:      r.URL.Query().Get("status"),
		PeriodStart: r.URL.Query().Get("period_start"),
	}
	if !middleware.IsAdmin(r) {
		filter.EmployeeID = middleware.EmployeeID(r)
	}

	payslips, err := h.payrollService.ListPayslips(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, payslips)
}

// getOwnedPayslip loads a payslip and enforces that non-admin callers
// only read their own.
func (h *PayrollHandlerImpl) getOwnedPayslip(r *http.Request) (payroll.PayslipResponse, error) {
	payslip, err := h.payrollService.GetPayslip(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		return payroll.PayslipResponse{}, err
	}
	if !middleware.IsAdmin(r) && payslip.EmployeeID != middleware.EmployeeID(r) {
		return payroll.PayslipResponse{}, payroll.ErrPayslipNotFound
	}
	return payslip, nil
}

// GetPayslip implements PayrollHandler.
func (h *PayrollHandlerImpl) GetPayslip(w http.ResponseWriter, r *http.Request) {
	payslip, err := h.getOwnedPayslip(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, payslip)
}

// DownloadPayslip implements PayrollHandler.
func (h *PayrollHandlerImpl) DownloadPayslip(w http.ResponseWriter, r *http.Request) {
	payslip, err := h.getOwnedPayslip(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	filename := fmt.Sprintf("payslip-%s-%s.pdf", payslip.EmployeeID, payslip.PeriodStart)
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	if err := pdf.RenderPayslip(w, payslip); err != nil {
		slog.Error("payslip PDF render error", "payslip_id", payslip.ID, "error", err)
	}
}

// SetStatus implements PayrollHandler.
func (h *PayrollHandlerImpl) SetStatus(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("SetStatus decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	payslip, err := h.payrollService.SetStatus(r.Context(), chi.URLParam(r, "id"), req.Status)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	h.hub.Publish("payslips", payslip)
	response.Success(w, payslip)
}

// GetSettings implements PayrollHandler.
func (h *PayrollHandlerImpl) GetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.payrollService.GetSettings(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, settings)
}

// UpdateSettings implements PayrollHandler.
func (h *PayrollHandlerImpl) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req payroll.UpdateSettingsRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateSettings decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	settings, err := h.payrollService.UpdateSettings(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, settings)
}
