package join_match

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/weplay-team/WePlay-BookingService/internal/api/handlers"
	"github.com/weplay-team/WePlay-BookingService/internal/api/middleware"
	joinMatch "github.com/weplay-team/WePlay-BookingService/internal/usecase/join_match"
)

const (
	msgInvalidMatchID = "некорректный ID матча"
	msgMissingUserID  = "отсутствует ID пользователя"
	msgNotFound       = "матч не найден"
	msgNotJoinable    = "набор в матч закрыт или мест не осталось"
	msgAlreadyJoined  = "пользователь уже участвует в матче"
)

type Handler struct {
	useCase JoinMatchUseCase
	logger  Logger
}

func NewHandler(useCase JoinMatchUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/matches/{matchId}/join
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	matchID, err := strconv.ParseInt(vars["matchId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /matches/{id}/join - Invalid match ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidMatchID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /matches/{id}/join - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &joinMatch.Request{
		MatchID: matchID,
		UserID:  userID,
	})
	if err != nil {
		switch {
		case errors.Is(err, joinMatch.ErrMatchNotFound):
			h.logger.Warn("POST /matches/{id}/join - Match not found: match_id=%d", matchID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, joinMatch.ErrMatchNotJoinable):
			h.logger.Warn("POST /matches/{id}/join - Not joinable: match_id=%d, user_id=%d", matchID, userID)
			handlers.RespondConflict(w, msgNotJoinable)

		case errors.Is(err, joinMatch.ErrAlreadyJoined):
			h.logger.Warn("POST /matches/{id}/join - Already joined: match_id=%d, user_id=%d", matchID, userID)
			handlers.RespondConflict(w, msgAlreadyJoined)

		default:
			h.logger.Error("POST /matches/{id}/join - Failed to join match: match_id=%d, user_id=%d, error=%v",
				matchID, userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /matches/{id}/join - Joined successfully: match_id=%d, user_id=%d, booking_id=%d",
		matchID, userID, result.BookingID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
