package get_match

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/weplay-team/WePlay-BookingService/internal/api/handlers"
	"github.com/weplay-team/WePlay-BookingService/internal/service/matches"
)

const (
	msgInvalidMatchID = "некорректный ID матча"
	msgNotFound       = "матч не найден"
)

type Handler struct {
	service MatchService
	logger  Logger
}

func NewHandler(service MatchService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/matches/{matchId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	matchID, err := strconv.ParseInt(vars["matchId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /matches/{id} - Invalid match ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidMatchID)
		return
	}

	match, err := h.service.GetByID(r.Context(), matchID)
	if err != nil {
		switch {
		case errors.Is(err, matches.ErrMatchNotFound):
			h.logger.Warn("GET /matches/{id} - Match not found: match_id=%d", matchID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /matches/{id} - Failed to get match: match_id=%d, error=%v", matchID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /matches/{id} - Match retrieved successfully: match_id=%d", matchID)
	handlers.RespondJSON(w, http.StatusOK, match)
}
