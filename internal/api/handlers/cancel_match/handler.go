package cancel_match

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/weplay-team/WePlay-BookingService/internal/api/handlers"
	"github.com/weplay-team/WePlay-BookingService/internal/api/middleware"
	cancelMatch "github.com/weplay-team/WePlay-BookingService/internal/usecase/cancel_match"
)

const (
	msgInvalidMatchID     = "некорректный ID матча"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgNotFound           = "матч не найден"
	msgForbidden          = "доступ запрещен"
	msgInvalidStatus      = "статус матча не допускает отмену"
	msgHalfCapacity       = "матч набрал половину состава, отмена недоступна"
	msgRefundGateway      = "платёжный шлюз недоступен, отмена не выполнена"
)

type Handler struct {
	useCase CancelMatchUseCase
	logger  Logger
}

func NewHandler(useCase CancelMatchUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/matches/{matchId}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	matchID, err := strconv.ParseInt(vars["matchId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /matches/{id}/cancel - Invalid match ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidMatchID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /matches/{id}/cancel - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Тело опционально: отмена без причины допустима
	var req CancelMatchRequest
	if err := handlers.DecodeJSON(r, &req); err != nil && !errors.Is(err, handlers.ErrEmptyBody) {
		h.logger.Warn("PATCH /matches/{id}/cancel - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &cancelMatch.Request{
		MatchID: matchID,
		ActorID: userID,
		Reason:  req.Reason,
	})
	if err != nil {
		switch {
		case errors.Is(err, cancelMatch.ErrMatchNotFound):
			h.logger.Warn("PATCH /matches/{id}/cancel - Match not found: match_id=%d", matchID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, cancelMatch.ErrAccessDenied):
			h.logger.Warn("PATCH /matches/{id}/cancel - Access denied: match_id=%d, user_id=%d", matchID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, cancelMatch.ErrCancellationNotAllowed):
			h.logger.Warn("PATCH /matches/{id}/cancel - Half capacity reached: match_id=%d", matchID)
			handlers.RespondConflict(w, msgHalfCapacity)

		case errors.Is(err, cancelMatch.ErrInvalidStatus):
			h.logger.Warn("PATCH /matches/{id}/cancel - Invalid status: match_id=%d", matchID)
			handlers.RespondConflict(w, msgInvalidStatus)

		case errors.Is(err, cancelMatch.ErrRefundGateway):
			h.logger.Error("PATCH /matches/{id}/cancel - Refund gateway error: match_id=%d, error=%v", matchID, err)
			handlers.RespondError(w, http.StatusBadGateway, msgRefundGateway)

		default:
			h.logger.Error("PATCH /matches/{id}/cancel - Failed to cancel match: match_id=%d, error=%v", matchID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("PATCH /matches/{id}/cancel - Match cancelled: match_id=%d, refunded=%d participants",
		matchID, result.ParticipantsRefunded)
	handlers.RespondJSON(w, http.StatusOK, response)
}
