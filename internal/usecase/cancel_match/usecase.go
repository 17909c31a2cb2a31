package cancel_match

import (
	"context"
	"errors"
	"fmt"

	"github.com/weplay-team/WePlay-BookingService/internal/domain"
	matchStorage "github.com/weplay-team/WePlay-BookingService/internal/infra/storage/match"
)

// UseCase use case административной отмены матча целиком.
// Отмена допустима лишь пока состав ниже половины; каждый участник получает
// полный возврат, слот корта освобождается. Всё в одной транзакции: любая
// ошибка шлюза откатывает и статус матча, и отмены участий
type UseCase struct {
	matchRepo      MatchRepository
	bookingRepo    BookingRepository
	facilityClient FacilityServiceClient
	paymentGateway PaymentGateway
	txManager      TransactionManager
	timeProvider   TimeProvider
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	matchRepo MatchRepository,
	bookingRepo BookingRepository,
	facilityClient FacilityServiceClient,
	paymentGateway PaymentGateway,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		matchRepo:      matchRepo,
		bookingRepo:    bookingRepo,
		facilityClient: facilityClient,
		paymentGateway: paymentGateway,
		txManager:      txManager,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// Execute выполняет use case отмены матча
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CancelMatch: match=%d, actor=%d", req.MatchID, req.ActorID)

	if req.MatchID <= 0 {
		return nil, fmt.Errorf("%w: matchID must be positive", ErrInvalidInput)
	}
	if req.ActorID <= 0 {
		return nil, fmt.Errorf("%w: actorID must be positive", ErrInvalidInput)
	}
	if len(req.Reason) > domain.MaxCancellationReasonLength {
		return nil, fmt.Errorf("%w: reason exceeds %d characters", ErrInvalidInput, domain.MaxCancellationReasonLength)
	}

	match, err := uc.matchRepo.GetByID(ctx, req.MatchID)
	if err != nil {
		if errors.Is(err, matchStorage.ErrMatchNotFound) {
			return nil, fmt.Errorf("%w: matchID=%d", ErrMatchNotFound, req.MatchID)
		}
		uc.logger.Error("CancelMatch: failed to get match id=%d: %v", req.MatchID, err)
		return nil, fmt.Errorf("%w: failed to get match: %v", ErrInternal, err)
	}

	facility, err := uc.facilityClient.GetFacility(ctx, match.FacilityID)
	if err != nil {
		uc.logger.Error("CancelMatch: failed to get facility id=%d: %v", match.FacilityID, err)
		return nil, fmt.Errorf("%w: failed to get facility: %v", ErrInternal, err)
	}
	if !facility.IsManagedBy(req.ActorID) {
		return nil, fmt.Errorf("%w: userID=%d is not a manager of facilityID=%d",
			ErrAccessDenied, req.ActorID, match.FacilityID)
	}

	now := uc.timeProvider.Now()

	var resp *Response

	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// Чтение с блокировкой: счётчик участников мог вырасти и запереть отмену
		m, err := uc.matchRepo.GetByID(txCtx, req.MatchID)
		if err != nil {
			return fmt.Errorf("%w: failed to get match for update: %v", ErrInternal, err)
		}

		if err := m.Cancel(req.Reason); err != nil {
			if errors.Is(err, domain.ErrCancellationNotAllowed) {
				return fmt.Errorf("%w: %d/%d participants", ErrCancellationNotAllowed,
					m.CurrentParticipants, m.TeamCapacity)
			}
			return fmt.Errorf("%w: status=%s", ErrInvalidStatus, m.Status)
		}

		if err := uc.matchRepo.Cancel(txCtx, m.ID, req.Reason); err != nil {
			return fmt.Errorf("%w: failed to cancel match: %v", ErrInternal, err)
		}

		// Отменяются все занимающие записи матча: оплаченные участия и
		// запись, державшая слот корта
		bookings, err := uc.bookingRepo.GetOccupyingByMatchID(txCtx, m.ID)
		if err != nil {
			return fmt.Errorf("%w: failed to get match bookings: %v", ErrInternal, err)
		}

		refunded := 0
		var total int64
		for _, b := range bookings {
			if err := uc.bookingRepo.Cancel(txCtx, b.ID, domain.StatusCancelledByFacility, req.Reason); err != nil {
				return fmt.Errorf("%w: failed to cancel booking id=%d: %v", ErrInternal, b.ID, err)
			}

			// Отмена по инициативе площадки возвращает взнос полностью,
			// независимо от оставшегося до матча времени
			if b.PaidAmount > 0 {
				ref := fmt.Sprintf("booking-%d", b.ID)
				if err := uc.paymentGateway.Refund(txCtx, ref, b.PaidAmount); err != nil {
					uc.logger.Error("CancelMatch: payment gateway error for booking id=%d: %v", b.ID, err)
					return fmt.Errorf("%w: %v", ErrRefundGateway, err)
				}
				refunded++
				total += b.PaidAmount
			}
		}

		resp = &Response{
			MatchID:              m.ID,
			Status:               domain.MatchCancelled,
			CancelledAt:          now,
			ParticipantsRefunded: refunded,
			TotalRefunded:        total,
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CancelMatch: match=%d cancelled, refunded %d participants, total=%d",
		resp.MatchID, resp.ParticipantsRefunded, resp.TotalRefunded)

	return resp, nil
}
