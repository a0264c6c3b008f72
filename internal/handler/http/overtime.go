package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/attendly/payroll-backend-go/internal/domain/overtime"
	"github.com/attendly/payroll-backend-go/internal/handler/http/response"
)

type OvertimeHandler interface {
	Request(w http.ResponseWriter, r *http.Request)
}

type OvertimeHandlerImpl struct {
	overtimeService overtime.OvertimeService
}

func NewOvertimeHandler(overtimeService overtime.OvertimeService) OvertimeHandler {
	return &OvertimeHandlerImpl{overtimeService: overtimeService}
}

// Request implements OvertimeHandler.
func (o *OvertimeHandlerImpl) Request(w http.ResponseWriter, r *http.Request) {
	periodID, ok := periodIDFromURL(w, r)
	if !ok {
		return
	}

	employeeID, err := claimsUserID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var overtimeReq overtime.OvertimeRequest
	if err := json.NewDecoder(r.Body).Decode(&overtimeReq); err != nil {
		slog.Error("Overtime decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	overtimeReq.EmployeeID = employeeID
	overtimeReq.PeriodID = periodID

	overtimeResponse, err := o.overtimeService.Request(r.Context(), overtimeReq)
	if err != nil {
		slog.Error("Overtime service error", "error", err, "period_id", periodID)
		response.HandleError(w, err)
		return
	}

	if overtimeResponse.Created {
		response.Created(w, "Overtime recorded", overtimeResponse)
		return
	}
	response.SuccessWithMessage(w, "Overtime updated", overtimeResponse)
}
