package http

import (
	"log/slog"
	"net/http"

	"github.com/attendly/payroll-backend-go/internal/domain/attendance"
	"github.com/attendly/payroll-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	CheckIn(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &AttendanceHandlerImpl{attendanceService: attendanceService}
}

// CheckIn implements AttendanceHandler. The request carries no body; the
// employee comes from the token and the period from the URL.
func (a *AttendanceHandlerImpl) CheckIn(w http.ResponseWriter, r *http.Request) {
	periodID, ok := periodIDFromURL(w, r)
	if !ok {
		return
	}

	employeeID, err := claimsUserID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	attendanceResponse, err := a.attendanceService.CheckIn(r.Context(), attendance.CheckInRequest{
		EmployeeID: employeeID,
		PeriodID:   periodID,
	})
	if err != nil {
		slog.Error("CheckIn service error", "error", err, "period_id", periodID)
		response.HandleError(w, err)
		return
	}

	if attendanceResponse.Created {
		response.Created(w, "Attendance recorded", attendanceResponse)
		return
	}
	response.SuccessWithMessage(w, "Already checked in today", attendanceResponse)
}
