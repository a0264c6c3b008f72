package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/attendly/payroll-backend-go/internal/domain/payroll"
	"github.com/attendly/payroll-backend-go/internal/handler/http/response"
)

type PayrollHandler interface {
	Payslip(w http.ResponseWriter, r *http.Request)
	PayslipPDF(w http.ResponseWriter, r *http.Request)
	Payslips(w http.ResponseWriter, r *http.Request)
}

type PayrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &PayrollHandlerImpl{payrollService: payrollService}
}

// Payslip implements PayrollHandler. Employees can only reach their own
// payslip: the employee id always comes from the token.
func (p *PayrollHandlerImpl) Payslip(w http.ResponseWriter, r *http.Request) {
	periodID, ok := periodIDFromURL(w, r)
	if !ok {
		return
	}

	employeeID, err := claimsUserID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	slip, err := p.payrollService.GeneratePayslip(r.Context(), employeeID, periodID)
	if err != nil {
		slog.Error("Payslip service error", "error", err, "period_id", periodID)
		response.HandleError(w, err)
		return
	}

	response.Success(w, slip)
}

// PayslipPDF implements PayrollHandler.
func (p *PayrollHandlerImpl) PayslipPDF(w http.ResponseWriter, r *http.Request) {
	periodID, ok := periodIDFromURL(w, r)
	if !ok {
		return
	}

	employeeID, err := claimsUserID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	slip, err := p.payrollService.GeneratePayslip(r.Context(), employeeID, periodID)
	if err != nil {
		slog.Error("PayslipPDF service error", "error", err, "period_id", periodID)
		response.HandleError(w, err)
		return
	}

	data, err := p.payrollService.RenderPDF(r.Context(), slip)
	if err != nil {
		slog.Error("PayslipPDF render error", "error", err, "period_id", periodID)
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=payslip-%s.pdf", periodID))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// Payslips implements PayrollHandler. Admin summary across every
// employee.
func (p *PayrollHandlerImpl) Payslips(w http.ResponseWriter, r *http.Request) {
	periodID, ok := periodIDFromURL(w, r)
	if !ok {
		return
	}

	batch, err := p.payrollService.GenerateAll(r.Context(), periodID)
	if err != nil {
		slog.Error("Payslips service error", "error", err, "period_id", periodID)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, batch, &response.Meta{
		TotalItems: int64(len(batch.Payslips)),
	})
}
