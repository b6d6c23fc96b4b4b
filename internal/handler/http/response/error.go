package response

import (
	"errors"
	"net/http"

	"github.com/shiftnote/shiftnote-backend-go/internal/domain/auth"
	"github.com/shiftnote/shiftnote-backend-go/internal/domain/timesheet"
	"github.com/shiftnote/shiftnote-backend-go/internal/domain/user"
	"github.com/shiftnote/shiftnote-backend-go/internal/pkg/validator"
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
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrRefreshTokenCookieNotFound),
		errors.Is(err, auth.ErrRefreshTokenCookieEmpty):
		Unauthorized(w, "Refresh token cookie missing")
	case errors.Is(err, auth.ErrEmailNotVerified):
		Forbidden(w, "Google account email is not verified")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrManagerPrivilegeRequired):
		Forbidden(w, "Manager privilege required")

	// Timesheet domain errors
	case errors.Is(err, timesheet.ErrNoMonthLoaded):
		Conflict(w, "Load a month before editing or saving")
	case errors.Is(err, timesheet.ErrEntryNotFound):
		NotFound(w, "No entry for that date in the loaded month")
	case errors.Is(err, timesheet.ErrDateNotEditable):
		BadRequest(w, "Weekends and holidays are not editable", nil)
	case errors.Is(err, timesheet.ErrUnknownField):
		BadRequest(w, "Unknown shift entry field", nil)
	case errors.Is(err, timesheet.ErrSaveInProgress):
		Conflict(w, "A save is already in progress")
	case errors.Is(err, timesheet.ErrStaleLoad):
		Conflict(w, "Month changed while loading, result discarded")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
