package update_match_status

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/weplay-team/WePlay-BookingService/internal/api/handlers"
	"github.com/weplay-team/WePlay-BookingService/internal/api/middleware"
	transitionMatch "github.com/weplay-team/WePlay-BookingService/internal/usecase/transition_match"
)

const (
	msgInvalidMatchID     = "некорректный ID матча"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgUnknownAction      = "неизвестное действие перехода"
	msgNotFound           = "матч не найден"
	msgForbidden          = "доступ запрещен"
	msgInvalidTransition  = "переход статуса недоступен"
	msgTooEarly           = "переход раньше расписания матча"
)

type Handler struct {
	useCase TransitionMatchUseCase
	logger  Logger
}

func NewHandler(useCase TransitionMatchUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/matches/{matchId}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	matchID, err := strconv.ParseInt(vars["matchId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /matches/{id}/status - Invalid match ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidMatchID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /matches/{id}/status - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req UpdateMatchStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /matches/{id}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &transitionMatch.Request{
		MatchID: matchID,
		ActorID: userID,
		Action:  transitionMatch.Action(req.Action),
	})
	if err != nil {
		switch {
		case errors.Is(err, transitionMatch.ErrUnknownAction):
			h.logger.Warn("PATCH /matches/{id}/status - Unknown action: match_id=%d, action=%s", matchID, req.Action)
			handlers.RespondBadRequest(w, msgUnknownAction)

		case errors.Is(err, transitionMatch.ErrMatchNotFound):
			h.logger.Warn("PATCH /matches/{id}/status - Match not found: match_id=%d", matchID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, transitionMatch.ErrAccessDenied):
			h.logger.Warn("PATCH /matches/{id}/status - Access denied: match_id=%d, user_id=%d", matchID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, transitionMatch.ErrTooEarly):
			h.logger.Warn("PATCH /matches/{id}/status - Too early: match_id=%d, action=%s", matchID, req.Action)
			handlers.RespondConflict(w, msgTooEarly)

		case errors.Is(err, transitionMatch.ErrInvalidTransition):
			h.logger.Warn("PATCH /matches/{id}/status - Invalid transition: match_id=%d, action=%s", matchID, req.Action)
			handlers.RespondConflict(w, msgInvalidTransition)

		default:
			h.logger.Error("PATCH /matches/{id}/status - Failed to transition: match_id=%d, action=%s, error=%v",
				matchID, req.Action, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("PATCH /matches/{id}/status - Transition applied: match_id=%d, status=%s", matchID, result.Status)
	handlers.RespondJSON(w, http.StatusOK, response)
}
