package response

import (
	"errors"
	"net/http"

	"github.com/attendly/payroll-backend-go/internal/domain/attendance"
	"github.com/attendly/payroll-backend-go/internal/domain/auth"
	"github.com/attendly/payroll-backend-go/internal/domain/overtime"
	"github.com/attendly/payroll-backend-go/internal/domain/payroll"
	"github.com/attendly/payroll-backend-go/internal/domain/period"
	"github.com/attendly/payroll-backend-go/internal/domain/user"
	"github.com/attendly/payroll-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, err.Error())
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, err.Error())
	case errors.Is(err, user.ErrEmployeeRoleRequired):
		Forbidden(w, err.Error())

	// Period domain errors
	case errors.Is(err, period.ErrPeriodNotFound):
		NotFound(w, "Attendance period not found")
	case errors.Is(err, period.ErrInvalidDateRange):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, period.ErrAlreadyProcessed):
		Conflict(w, err.Error())
	case errors.Is(err, period.ErrNotProcessed):
		Conflict(w, err.Error())

	// Attendance domain errors
	case errors.Is(err, attendance.ErrWeekendCheckIn):
		BadRequest(w, err.Error(), nil)

	// Overtime domain errors
	case errors.Is(err, overtime.ErrNoCheckIn):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, overtime.ErrWorkHoursNotDone):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, overtime.ErrCapExceeded):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, overtime.ErrInvalidHours):
		BadRequest(w, err.Error(), nil)

	// Payroll domain errors
	case errors.Is(err, payroll.ErrNoWorkingDays):
		BadRequest(w, err.Error(), nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
