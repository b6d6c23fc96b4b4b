package http

import (
	"log/slog"
	"net/http"

	"github.com/shiftnote/shiftnote-backend-go/internal/domain/roster"
	"github.com/shiftnote/shiftnote-backend-go/internal/handler/http/response"
)

type RosterHandler interface {
	GetRoster(w http.ResponseWriter, r *http.Request)
}

type RosterHandlerImpl struct {
	rosterService roster.RosterService
}

func NewRosterHandler(rosterService roster.RosterService) RosterHandler {
	return &RosterHandlerImpl{rosterService: rosterService}
}

// GetRoster implements RosterHandler.
func (h *RosterHandlerImpl) GetRoster(w http.ResponseWriter, r *http.Request) {
	filter := roster.RosterFilter{
		Status: r.URL.Query().Get("status"),
		Search: r.URL.Query().Get("search"),
		Date:   r.URL.Query().Get("date"),
	}

	rosterResponse, err := h.rosterService.GetRoster(r.Context(), filter)
	if err != nil {
		slog.Error("Roster service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, rosterResponse)
}
