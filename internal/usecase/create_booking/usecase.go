package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/weplay-team/WePlay-BookingService/internal/domain"
	bookingRepo "github.com/weplay-team/WePlay-BookingService/internal/infra/storage/booking"
	facilityClient "github.com/weplay-team/WePlay-BookingService/internal/integrations/facilityservice"
)

// UseCase use case для создания бронирования корта
type UseCase struct {
	bookingRepo    BookingRepository
	facilityClient FacilityServiceClient
	txManager      TransactionManager
	timeProvider   TimeProvider
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	facilityClient FacilityServiceClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:    bookingRepo,
		facilityClient: facilityClient,
		txManager:      txManager,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// Execute выполняет use case создания бронирования
// Проверка конфликта и вставка идут в сериализуемой транзакции с FOR UPDATE
// чтением журнала корта: из двух конкурентных коммитов одного часа успевает
// ровно один, второй получает ErrSlotAlreadyBooked
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%d, facility=%d, court=%d, date=%s, hours=[%d,%d)",
		req.UserID, req.FacilityID, req.CourtID, req.Date.Format(domain.DateFormat), req.StartHour, req.EndHour)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем площадку и корт
	facility, err := uc.facilityClient.GetFacility(ctx, req.FacilityID)
	if err != nil {
		if errors.Is(err, facilityClient.ErrFacilityNotFound) {
			uc.logger.Warn("CreateBooking: facility id=%d not found", req.FacilityID)
			return nil, ErrFacilityNotFound
		}
		uc.logger.Error("CreateBooking: failed to get facility id=%d: %v", req.FacilityID, err)
		return nil, fmt.Errorf("%w: failed to get facility: %v", ErrInternal, err)
	}

	court, err := facility.CourtByID(req.CourtID)
	if err != nil {
		uc.logger.Warn("CreateBooking: court id=%d not found in facility id=%d", req.CourtID, req.FacilityID)
		return nil, ErrCourtNotFound
	}

	// 4. Окно работы корта на дату
	calendar, err := court.ToOperatingCalendar()
	if err != nil {
		uc.logger.Error("CreateBooking: invalid operating hours for court id=%d: %v", req.CourtID, err)
		return nil, fmt.Errorf("%w: invalid operating hours: %v", ErrInternal, err)
	}

	window, err := calendar.HoursFor(req.Date)
	if err != nil {
		if errors.Is(err, domain.ErrHoliday) || errors.Is(err, domain.ErrNotConfigured) {
			uc.logger.Warn("CreateBooking: court id=%d is closed on %s", req.CourtID, req.Date.Format(domain.DateFormat))
			return nil, ErrFacilityClosed
		}
		uc.logger.Error("CreateBooking: failed to resolve window: %v", err)
		return nil, fmt.Errorf("%w: failed to resolve operating window: %v", ErrInternal, err)
	}

	// 5. Запрошенные часы внутри окна работы
	if req.StartHour < window.OpenHour || req.EndHour > window.CloseHour {
		uc.logger.Warn("CreateBooking: hours [%d,%d) outside window [%d,%d)",
			req.StartHour, req.EndHour, window.OpenHour, window.CloseHour)
		return nil, ErrOutsideOperatingHours
	}

	// 6. Валидация даты и времени относительно "сейчас"
	if err := validateBookingTime(req, now); err != nil {
		uc.logger.Warn("CreateBooking: booking time validation failed: %v", err)
		return nil, err
	}

	var result *domain.Booking

	// 7. Коммит слота в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 7.1. Журнал корта на дату с блокировкой (FOR UPDATE)
		bookings, err := uc.bookingRepo.GetForCourtDate(txCtx, domain.CourtDayFilter{
			FacilityID: req.FacilityID,
			CourtID:    req.CourtID,
			Date:       req.Date,
		})
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// 7.2. Проверяем каждый запрошенный час
		for h := req.StartHour; h < req.EndHour; h++ {
			for _, b := range bookings {
				if b.IsOccupying() && b.CoversHour(h) {
					uc.logger.Warn("CreateBooking: hour %d already booked by booking id=%d", h, b.ID)
					return ErrSlotAlreadyBooked
				}
			}
		}

		// 7.3. Создаем бронирование с денормализацией данных
		booking := &domain.Booking{
			UserID:       req.UserID,
			FacilityID:   req.FacilityID,
			CourtID:      req.CourtID,
			Type:         domain.TypeFacilityReservation,
			BookingDate:  req.Date,
			StartHour:    req.StartHour,
			EndHour:      req.EndHour,
			Status:       domain.StatusConfirmed,
			PaidAmount:   court.HourlyRate * int64(req.EndHour-req.StartHour),
			FacilityName: facility.Name,
			CourtName:    court.Name,
			Notes:        req.Notes,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			// Уникальный индекс - последний рубеж против гонки
			if errors.Is(err, bookingRepo.ErrSlotAlreadyBooked) {
				return ErrSlotAlreadyBooked
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d, paid=%d", result.ID, result.PaidAmount)

	return fromDomain(result), nil
}
