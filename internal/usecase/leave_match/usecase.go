package leave_match

import (
	"context"
	"errors"
	"fmt"

	"github.com/weplay-team/WePlay-BookingService/internal/domain"
	bookingStorage "github.com/weplay-team/WePlay-BookingService/internal/infra/storage/booking"
	matchStorage "github.com/weplay-team/WePlay-BookingService/internal/infra/storage/match"
)

// UseCase use case выхода участника из матча.
// Выход отменяет оплаченное участие по матчевой шкале возвратов и освобождает
// место; ошибка платёжного шлюза откатывает транзакцию целиком
type UseCase struct {
	matchRepo      MatchRepository
	bookingRepo    BookingRepository
	paymentGateway PaymentGateway
	txManager      TransactionManager
	timeProvider   TimeProvider
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	matchRepo MatchRepository,
	bookingRepo BookingRepository,
	paymentGateway PaymentGateway,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		matchRepo:      matchRepo,
		bookingRepo:    bookingRepo,
		paymentGateway: paymentGateway,
		txManager:      txManager,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// Execute выполняет use case выхода из матча
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("LeaveMatch: match=%d, user=%d", req.MatchID, req.UserID)

	if req.MatchID <= 0 {
		return nil, fmt.Errorf("%w: matchID must be positive", ErrInvalidInput)
	}
	if req.UserID <= 0 {
		return nil, fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}
	if len(req.Reason) > domain.MaxCancellationReasonLength {
		return nil, fmt.Errorf("%w: reason exceeds %d characters", ErrInvalidInput, domain.MaxCancellationReasonLength)
	}

	now := uc.timeProvider.Now()

	var resp *Response

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// Матч читается с блокировкой: выход конкурирует с присоединениями
		// и административными переходами
		match, err := uc.matchRepo.GetByID(txCtx, req.MatchID)
		if err != nil {
			if errors.Is(err, matchStorage.ErrMatchNotFound) {
				return fmt.Errorf("%w: matchID=%d", ErrMatchNotFound, req.MatchID)
			}
			return fmt.Errorf("%w: failed to get match: %v", ErrInternal, err)
		}

		booking, err := uc.bookingRepo.GetOccupyingByMatchAndUser(txCtx, req.MatchID, req.UserID)
		if err != nil {
			if errors.Is(err, bookingStorage.ErrBookingNotFound) {
				return fmt.Errorf("%w: matchID=%d, userID=%d", ErrNotParticipant, req.MatchID, req.UserID)
			}
			return fmt.Errorf("%w: failed to get participation: %v", ErrInternal, err)
		}

		if !booking.CanBeCancelled() {
			return fmt.Errorf("%w: bookingID=%d, status=%s", ErrCannotLeave, booking.ID, booking.Status)
		}

		// Котировка по матчевой шкале от авторитетного старта из хранилища
		quote := domain.QuoteRefund(domain.TypeMatchParticipation, booking.StartAt(), now, booking.PaidAmount)

		if err := uc.bookingRepo.Cancel(txCtx, booking.ID, domain.StatusCancelledByUser, req.Reason); err != nil {
			return fmt.Errorf("%w: failed to cancel participation: %v", ErrInternal, err)
		}

		if err := uc.matchRepo.RemoveParticipant(txCtx, match.ID); err != nil {
			return fmt.Errorf("%w: failed to release match seat: %v", ErrInternal, err)
		}

		if quote.RefundAmount > 0 {
			ref := fmt.Sprintf("booking-%d", booking.ID)
			if err := uc.paymentGateway.Refund(txCtx, ref, quote.RefundAmount); err != nil {
				uc.logger.Error("LeaveMatch: payment gateway error for booking id=%d: %v", booking.ID, err)
				return fmt.Errorf("%w: %v", ErrRefundGateway, err)
			}
		}

		resp = &Response{
			BookingID:    booking.ID,
			MatchID:      match.ID,
			CancelledAt:  now,
			PaidAmount:   quote.GrossAmount,
			RefundAmount: quote.RefundAmount,
			RefundRatio:  quote.RefundRatio,
			ReasonTier:   quote.ReasonTier,
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("LeaveMatch: user=%d left match=%d, refund=%d (%s)",
		req.UserID, resp.MatchID, resp.RefundAmount, resp.ReasonTier)

	return resp, nil
}
