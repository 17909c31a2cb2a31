package cancel_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/weplay-team/WePlay-BookingService/internal/domain"
	storage "github.com/weplay-team/WePlay-BookingService/internal/infra/storage/booking"
)

// UseCase оркестратор отмены бронирования: проверяет права, считает возврат,
// отменяет запись и проводит возврат через платёжный шлюз в одной транзакции
type UseCase struct {
	bookingRepo     BookingRepository
	matchRepo       MatchRepository
	facilityService FacilityServiceClient
	paymentGateway  PaymentGateway
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	matchRepo MatchRepository,
	facilityService FacilityServiceClient,
	paymentGateway PaymentGateway,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:     bookingRepo,
		matchRepo:       matchRepo,
		facilityService: facilityService,
		paymentGateway:  paymentGateway,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute отменяет бронирование от имени пользователя или менеджера площадки.
//
// Возврат и смена статуса атомарны: ошибка платёжного шлюза откатывает
// транзакцию, бронирование остаётся в прежнем статусе
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("[CancelBooking.Execute] Начало отмены бронирования: bookingID=%d, actorID=%d",
		req.BookingID, req.ActorID)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("[CancelBooking.Execute] Ошибка валидации: %v", err)
		return nil, err
	}

	// Предварительное чтение вне транзакции: проверка прав доступа ходит во
	// внешний сервис, держать под ней транзакцию не нужно
	booking, err := uc.bookingRepo.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, storage.ErrBookingNotFound) {
			return nil, fmt.Errorf("%w: bookingID=%d", ErrBookingNotFound, req.BookingID)
		}
		uc.logger.Error("[CancelBooking.Execute] Ошибка получения бронирования: %v", err)
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}

	cancelStatus, err := uc.resolveActor(ctx, booking, req.ActorID)
	if err != nil {
		return nil, err
	}

	now := uc.timeProvider.Now()

	var resp *Response
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// Повторное чтение с блокировкой: статус мог измениться между
		// предварительной проверкой и началом транзакции
		b, err := uc.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, storage.ErrBookingNotFound) {
				return fmt.Errorf("%w: bookingID=%d", ErrBookingNotFound, req.BookingID)
			}
			return fmt.Errorf("%w: failed to get booking for update: %v", ErrInternal, err)
		}

		if b.IsTerminal() {
			return fmt.Errorf("%w: bookingID=%d, status=%s", ErrAlreadyTerminal, b.ID, b.Status)
		}
		if !b.CanBeCancelled() {
			return fmt.Errorf("%w: bookingID=%d, status=%s", ErrCannotCancel, b.ID, b.Status)
		}

		// Котировка считается строго по времени начала из хранилища.
		// Отмена по инициативе площадки возвращает оплату целиком
		var quote domain.RefundQuote
		if cancelStatus == domain.StatusCancelledByFacility {
			quote = domain.FullRefundQuote(b.PaidAmount)
		} else {
			quote = domain.QuoteRefund(b.Type, b.StartAt(), now, b.PaidAmount)
		}

		if err := uc.bookingRepo.Cancel(txCtx, b.ID, cancelStatus, req.Reason); err != nil {
			return fmt.Errorf("%w: failed to cancel booking: %v", ErrInternal, err)
		}

		// Уход участника освобождает место в матче
		if b.Type == domain.TypeMatchParticipation && b.MatchID != nil {
			if err := uc.matchRepo.RemoveParticipant(txCtx, *b.MatchID); err != nil {
				return fmt.Errorf("%w: failed to release match seat: %v", ErrInternal, err)
			}
		}

		if quote.RefundAmount > 0 {
			ref := fmt.Sprintf("booking-%d", b.ID)
			if err := uc.paymentGateway.Refund(txCtx, ref, quote.RefundAmount); err != nil {
				uc.logger.Error("[CancelBooking.Execute] Ошибка платёжного шлюза: bookingID=%d: %v", b.ID, err)
				return fmt.Errorf("%w: %v", ErrRefundGateway, err)
			}
		}

		resp = buildResponse(b, cancelStatus, now, quote)
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("[CancelBooking.Execute] Бронирование отменено: bookingID=%d, status=%s, refund=%d (%s)",
		resp.BookingID, resp.Status, resp.RefundAmount, resp.ReasonTier)

	return resp, nil
}

// resolveActor определяет, кто отменяет бронирование, и подбирает итоговый
// статус: владелец или менеджер площадки
func (uc *UseCase) resolveActor(ctx context.Context, b *domain.Booking, actorID int64) (domain.BookingStatus, error) {
	if b.UserID == actorID {
		return domain.StatusCancelledByUser, nil
	}

	facility, err := uc.facilityService.GetFacility(ctx, b.FacilityID)
	if err != nil {
		uc.logger.Error("[CancelBooking.resolveActor] Ошибка получения площадки: facilityID=%d: %v",
			b.FacilityID, err)
		return "", fmt.Errorf("%w: failed to get facility: %v", ErrInternal, err)
	}
	if !facility.IsManagedBy(actorID) {
		return "", fmt.Errorf("%w: userID=%d is neither owner nor manager of bookingID=%d",
			ErrAccessDenied, actorID, b.ID)
	}
	return domain.StatusCancelledByFacility, nil
}
