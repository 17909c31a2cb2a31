package get_refund_quote

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/weplay-team/WePlay-BookingService/internal/api/handlers"
	"github.com/weplay-team/WePlay-BookingService/internal/api/middleware"
	getRefundQuote "github.com/weplay-team/WePlay-BookingService/internal/usecase/get_refund_quote"
)

const (
	msgInvalidBookingID = "некорректный ID бронирования"
	msgMissingUserID    = "отсутствует ID пользователя"
	msgNotFound         = "бронирование не найдено"
	msgForbidden        = "доступ запрещен"
	msgCannotCancel     = "бронирование нельзя отменить"
)

type Handler struct {
	useCase GetRefundQuoteUseCase
	logger  Logger
}

func NewHandler(useCase GetRefundQuoteUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings/{bookingId}/refund-quote
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	bookingID, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /bookings/{id}/refund-quote - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /bookings/{id}/refund-quote - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getRefundQuote.Request{
		BookingID: bookingID,
		UserID:    userID,
	})
	if err != nil {
		switch {
		case errors.Is(err, getRefundQuote.ErrBookingNotFound):
			h.logger.Warn("GET /bookings/{id}/refund-quote - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, getRefundQuote.ErrAccessDenied):
			h.logger.Warn("GET /bookings/{id}/refund-quote - Access denied: booking_id=%d, user_id=%d", bookingID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, getRefundQuote.ErrCannotCancel):
			h.logger.Warn("GET /bookings/{id}/refund-quote - Cannot cancel: booking_id=%d", bookingID)
			handlers.RespondConflict(w, msgCannotCancel)

		default:
			h.logger.Error("GET /bookings/{id}/refund-quote - Failed to get quote: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /bookings/{id}/refund-quote - Quote retrieved: booking_id=%d, refund=%d (%s)",
		bookingID, result.RefundAmount, result.ReasonTier)
	handlers.RespondJSON(w, http.StatusOK, response)
}
