package response

import (
	"errors"
	"net/http"

	"github.com/workdesk/workdesk-backend-go/internal/domain/auth"
	"github.com/workdesk/workdesk-backend-go/internal/domain/holiday"
	"github.com/workdesk/workdesk-backend-go/internal/domain/leave"
	"github.com/workdesk/workdesk-backend-go/internal/domain/overtime"
	"github.com/workdesk/workdesk-backend-go/internal/domain/user"
	"github.com/workdesk/workdesk-backend-go/internal/domain/worklog"
	"github.com/workdesk/workdesk-backend-go/internal/pkg/validator"
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
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrRefreshTokenCookieNotFound),
		errors.Is(err, auth.ErrRefreshTokenCookieEmpty):
		Unauthorized(w, "Refresh token missing")
	case errors.Is(err, auth.ErrUserNotFound):
		NotFound(w, "User not found")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrAdminAccessRequired),
		errors.Is(err, user.ErrManagerAccessRequired),
		errors.Is(err, user.ErrInsufficientPermissions):
		Forbidden(w, err.Error())

	// Work log domain errors
	case errors.Is(err, worklog.ErrWorkRecordNotFound):
		NotFound(w, "Work record not found")
	case errors.Is(err, worklog.ErrAlreadyCheckedIn),
		errors.Is(err, worklog.ErrNotCheckedIn),
		errors.Is(err, worklog.ErrAlreadyCheckedOut),
		errors.Is(err, worklog.ErrCheckOutBeforeInTime):
		Conflict(w, err.Error())
	case errors.Is(err, worklog.ErrUnauthorized):
		Forbidden(w, err.Error())

	// Leave domain errors
	case errors.Is(err, leave.ErrScheduleNotFound):
		NotFound(w, "Leave schedule not found")
	case errors.Is(err, leave.ErrScheduleAlreadyProcessed):
		Conflict(w, err.Error())
	case errors.Is(err, leave.ErrInvalidDateRange):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, leave.ErrSelfApproval):
		Forbidden(w, err.Error())

	// Overtime domain errors
	case errors.Is(err, overtime.ErrOvertimeNotFound):
		NotFound(w, "Overtime request not found")
	case errors.Is(err, overtime.ErrInvalidTransition),
		errors.Is(err, overtime.ErrNotCancelled),
		errors.Is(err, overtime.ErrRejectNeedsApproved):
		Conflict(w, err.Error())
	case errors.Is(err, overtime.ErrSelfApproval),
		errors.Is(err, overtime.ErrNotRequester):
		Forbidden(w, err.Error())

	// Holiday domain errors
	case errors.Is(err, holiday.ErrHolidayNotFound):
		NotFound(w, "Holiday not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
