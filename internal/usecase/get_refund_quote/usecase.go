package get_refund_quote

import (
	"context"
	"errors"
	"fmt"

	"github.com/weplay-team/WePlay-BookingService/internal/domain"
	storage "github.com/weplay-team/WePlay-BookingService/internal/infra/storage/booking"
)

// UseCase предварительный расчёт возврата без отмены бронирования.
//
// Котировка справочная: обязательной для сервиса является только сумма,
// рассчитанная в момент фактической отмены
type UseCase struct {
	bookingRepo  BookingRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute возвращает котировку возврата для бронирования пользователя
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.BookingID <= 0 {
		return nil, fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}
	if req.UserID <= 0 {
		return nil, fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	booking, err := uc.bookingRepo.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, storage.ErrBookingNotFound) {
			return nil, fmt.Errorf("%w: bookingID=%d", ErrBookingNotFound, req.BookingID)
		}
		uc.logger.Error("[GetRefundQuote.Execute] Ошибка получения бронирования: %v", err)
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}

	if booking.UserID != req.UserID {
		return nil, fmt.Errorf("%w: userID=%d is not the owner of bookingID=%d",
			ErrAccessDenied, req.UserID, req.BookingID)
	}
	if !booking.CanBeCancelled() {
		return nil, fmt.Errorf("%w: bookingID=%d, status=%s", ErrCannotCancel, booking.ID, booking.Status)
	}

	now := uc.timeProvider.Now()
	quote := domain.QuoteRefund(booking.Type, booking.StartAt(), now, booking.PaidAmount)

	return &Response{
		BookingID:    booking.ID,
		BookingType:  booking.Type,
		QuotedAt:     now,
		PaidAmount:   quote.GrossAmount,
		RefundAmount: quote.RefundAmount,
		RefundRatio:  quote.RefundRatio,
		ReasonTier:   quote.ReasonTier,
	}, nil
}
