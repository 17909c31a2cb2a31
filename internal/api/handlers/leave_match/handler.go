package leave_match

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/weplay-team/WePlay-BookingService/internal/api/handlers"
	"github.com/weplay-team/WePlay-BookingService/internal/api/middleware"
	leaveMatch "github.com/weplay-team/WePlay-BookingService/internal/usecase/leave_match"
)

const (
	msgInvalidMatchID     = "некорректный ID матча"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgNotFound           = "матч не найден"
	msgNotParticipant     = "пользователь не участвует в матче"
	msgCannotLeave        = "участие нельзя отменить"
	msgRefundGateway      = "платёжный шлюз недоступен, выход не выполнен"
)

type Handler struct {
	useCase LeaveMatchUseCase
	logger  Logger
}

func NewHandler(useCase LeaveMatchUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/matches/{matchId}/leave
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	matchID, err := strconv.ParseInt(vars["matchId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /matches/{id}/leave - Invalid match ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidMatchID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /matches/{id}/leave - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Тело опционально: выход без причины допустим
	var req LeaveMatchRequest
	if err := handlers.DecodeJSON(r, &req); err != nil && !errors.Is(err, handlers.ErrEmptyBody) {
		h.logger.Warn("POST /matches/{id}/leave - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &leaveMatch.Request{
		MatchID: matchID,
		UserID:  userID,
		Reason:  req.Reason,
	})
	if err != nil {
		switch {
		case errors.Is(err, leaveMatch.ErrMatchNotFound):
			h.logger.Warn("POST /matches/{id}/leave - Match not found: match_id=%d", matchID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, leaveMatch.ErrNotParticipant):
			h.logger.Warn("POST /matches/{id}/leave - Not a participant: match_id=%d, user_id=%d", matchID, userID)
			handlers.RespondNotFound(w, msgNotParticipant)

		case errors.Is(err, leaveMatch.ErrCannotLeave):
			h.logger.Warn("POST /matches/{id}/leave - Cannot leave: match_id=%d, user_id=%d", matchID, userID)
			handlers.RespondConflict(w, msgCannotLeave)

		case errors.Is(err, leaveMatch.ErrRefundGateway):
			h.logger.Error("POST /matches/{id}/leave - Refund gateway error: match_id=%d, user_id=%d, error=%v",
				matchID, userID, err)
			handlers.RespondError(w, http.StatusBadGateway, msgRefundGateway)

		default:
			h.logger.Error("POST /matches/{id}/leave - Failed to leave match: match_id=%d, user_id=%d, error=%v",
				matchID, userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /matches/{id}/leave - Left successfully: match_id=%d, user_id=%d, refund=%d",
		matchID, userID, result.RefundAmount)
	handlers.RespondJSON(w, http.StatusOK, response)
}
