package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/attendly/payroll-backend-go/internal/domain/period"
	"github.com/attendly/payroll-backend-go/internal/handler/http/response"
	"github.com/attendly/payroll-backend-go/internal/pkg/validator"
)

type PeriodHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Process(w http.ResponseWriter, r *http.Request)
}

type PeriodHandlerImpl struct {
	periodService period.PeriodService
}

func NewPeriodHandler(periodService period.PeriodService) PeriodHandler {
	return &PeriodHandlerImpl{periodService: periodService}
}

// periodIDFromURL validates the {periodID} path segment before it
// reaches a repository query.
func periodIDFromURL(w http.ResponseWriter, r *http.Request) (string, bool) {
	periodID := chi.URLParam(r, "periodID")
	if !validator.IsValidUUID(periodID) {
		response.BadRequest(w, "Invalid period id", nil)
		return "", false
	}
	return periodID, true
}

// Create implements PeriodHandler.
func (p *PeriodHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq period.CreatePeriodRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create period decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	adminID, err := claimsUserID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	createReq.AdminID = adminID

	periodResponse, err := p.periodService.Create(r.Context(), createReq)
	if err != nil {
		slog.Error("Create period service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Attendance period created", "period_id", periodResponse.ID)
	response.Created(w, "Attendance period created", periodResponse)
}

// Get implements PeriodHandler.
func (p *PeriodHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	periodID, ok := periodIDFromURL(w, r)
	if !ok {
		return
	}

	periodResponse, err := p.periodService.Get(r.Context(), periodID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, periodResponse)
}

// Process implements PeriodHandler.
func (p *PeriodHandlerImpl) Process(w http.ResponseWriter, r *http.Request) {
	periodID, ok := periodIDFromURL(w, r)
	if !ok {
		return
	}

	adminID, err := claimsUserID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	periodResponse, err := p.periodService.Process(r.Context(), adminID, periodID)
	if err != nil {
		slog.Error("Process period service error", "error", err, "period_id", periodID)
		response.HandleError(w, err)
		return
	}

	slog.Info("Attendance period processed", "period_id", periodID)
	response.SuccessWithMessage(w, "Attendance period processed", periodResponse)
}
