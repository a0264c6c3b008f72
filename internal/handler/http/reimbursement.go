package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/attendly/payroll-backend-go/internal/domain/reimbursement"
	"github.com/attendly/payroll-backend-go/internal/handler/http/response"
)

type ReimbursementHandler interface {
	Submit(w http.ResponseWriter, r *http.Request)
}

type ReimbursementHandlerImpl struct {
	reimbursementService reimbursement.ReimbursementService
}

func NewReimbursementHandler(reimbursementService reimbursement.ReimbursementService) ReimbursementHandler {
	return &ReimbursementHandlerImpl{reimbursementService: reimbursementService}
}

// Submit implements ReimbursementHandler.
func (h *ReimbursementHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	periodID, ok := periodIDFromURL(w, r)
	if !ok {
		return
	}

	employeeID, err := claimsUserID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var reimbursementReq reimbursement.ReimbursementRequest
	if err := json.NewDecoder(r.Body).Decode(&reimbursementReq); err != nil {
		slog.Error("Reimbursement decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	reimbursementReq.EmployeeID = employeeID
	reimbursementReq.PeriodID = periodID

	reimbursementResponse, err := h.reimbursementService.Submit(r.Context(), reimbursementReq)
	if err != nil {
		slog.Error("Reimbursement service error", "error", err, "period_id", periodID)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Reimbursement submitted", reimbursementResponse)
}
