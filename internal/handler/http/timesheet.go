package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"

	"github.com/shiftnote/shiftnote-backend-go/internal/domain/timesheet"
	"github.com/shiftnote/shiftnote-backend-go/internal/handler/http/response"
)

type TimesheetHandler interface {
	GetMonth(w http.ResponseWriter, r *http.Request)
	UpdateEntry(w http.ResponseWriter, r *http.Request)
	SaveMonth(w http.ResponseWriter, r *http.Request)
}

type TimesheetHandlerImpl struct {
	timesheetService timesheet.TimesheetService
}

func NewTimesheetHandler(timesheetService timesheet.TimesheetService) TimesheetHandler {
	return &TimesheetHandlerImpl{timesheetService: timesheetService}
}

// employeeIDFromContext pulls the authenticated employee out of the JWT claims.
// AuthRequired has already verified the token, so missing claims here mean a
// programming error rather than a client one.
func employeeIDFromContext(r *http.Request) (string, error) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", err
	}
	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return "", errors.New("employee_id claim missing")
	}
	return employeeID, nil
}

// GetMonth implements TimesheetHandler. The month query parameter selects
// which calendar month to load; when it is absent the currently loaded grid
// is returned instead.
func (t *TimesheetHandlerImpl) GetMonth(w http.ResponseWriter, r *http.Request) {
	employeeID, err := employeeIDFromContext(r)
	if err != nil {
		slog.Error("Employee claim error", "error", err)
		response.Unauthorized(w, "Invalid token claims")
		return
	}

	month := r.URL.Query().Get("month")
	if month == "" {
		monthResponse, err := t.timesheetService.GetMonth(r.Context(), employeeID)
		if err != nil {
			response.HandleError(w, err)
			return
		}
		response.Success(w, monthResponse)
		return
	}

	loadMonthReq := timesheet.LoadMonthRequest{Month: month}
	if err := loadMonthReq.Validate(); err != nil {
		slog.Error("Load month validation error", "error", err)
		response.HandleError(w, err)
		return
	}

	year, yearMonth := loadMonthReq.YearMonth()
	monthResponse, err := t.timesheetService.LoadMonth(r.Context(), employeeID, year, yearMonth)
	if err != nil {
		slog.Error("Load month service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, monthResponse)
}

// UpdateEntry implements TimesheetHandler.
func (t *TimesheetHandlerImpl) UpdateEntry(w http.ResponseWriter, r *http.Request) {
	employeeID, err := employeeIDFromContext(r)
	if err != nil {
		slog.Error("Employee claim error", "error", err)
		response.Unauthorized(w, "Invalid token claims")
		return
	}

	date := chi.URLParam(r, "date")

	var updateEntryReq timesheet.UpdateEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&updateEntryReq); err != nil {
		slog.Error("Update entry decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := updateEntryReq.Validate(); err != nil {
		slog.Error("Update entry validation error", "error", err)
		response.HandleError(w, err)
		return
	}

	entryResponse, err := t.timesheetService.UpdateEntry(r.Context(), employeeID, date, updateEntryReq)
	if err != nil {
		slog.Error("Update entry service error", "error", err, "date", date)
		response.HandleError(w, err)
		return
	}

	response.Success(w, entryResponse)
}

// SaveMonth implements TimesheetHandler. A month with no working shifts is
// not an error for the client, the grid is simply already in sync.
func (t *TimesheetHandlerImpl) SaveMonth(w http.ResponseWriter, r *http.Request) {
	employeeID, err := employeeIDFromContext(r)
	if err != nil {
		slog.Error("Employee claim error", "error", err)
		response.Unauthorized(w, "Invalid token claims")
		return
	}

	saveResponse, err := t.timesheetService.SaveMonth(r.Context(), employeeID)
	if err != nil {
		if errors.Is(err, timesheet.ErrNothingToSave) {
			response.SuccessWithMessage(w, "Nothing to save", timesheet.SaveResponse{SavedDays: 0})
			return
		}
		slog.Error("Save month service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Shifts saved", saveResponse)
}
