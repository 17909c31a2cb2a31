package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/weplay-team/WePlay-BookingService/internal/domain"
	facilityClient "github.com/weplay-team/WePlay-BookingService/internal/integrations/facilityservice"
)

// UseCase use case для получения доступных слотов корта
//
// Результат носит справочный характер: журнал бронирований может измениться
// между расчётом и попыткой бронирования, авторитетная проверка конфликта
// выполняется в момент коммита (create_booking)
type UseCase struct {
	bookingRepo    BookingRepository
	facilityClient FacilityServiceClient
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	facilityClient FacilityServiceClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:    bookingRepo,
		facilityClient: facilityClient,
		logger:         logger,
	}
}

// Execute выполняет use case получения доступных слотов
// Чистое чтение: не блокирует и не меняет разделяемое состояние
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: facility=%d, court=%d, date=%s",
		req.FacilityID, req.CourtID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем площадку и корт
	facility, err := uc.facilityClient.GetFacility(ctx, req.FacilityID)
	if err != nil {
		if errors.Is(err, facilityClient.ErrFacilityNotFound) {
			uc.logger.Warn("GetAvailableSlots: facility id=%d not found", req.FacilityID)
			return nil, ErrFacilityNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get facility id=%d: %v", req.FacilityID, err)
		return nil, fmt.Errorf("%w: failed to get facility: %v", ErrInternal, err)
	}

	court, err := facility.CourtByID(req.CourtID)
	if err != nil {
		uc.logger.Warn("GetAvailableSlots: court id=%d not found in facility id=%d", req.CourtID, req.FacilityID)
		return nil, ErrCourtNotFound
	}

	// 3. Строим календарь работы корта
	calendar, err := court.ToOperatingCalendar()
	if err != nil {
		uc.logger.Error("GetAvailableSlots: invalid operating hours for court id=%d: %v", req.CourtID, err)
		return nil, fmt.Errorf("%w: invalid operating hours: %v", ErrInternal, err)
	}

	// 4. Окно работы на дату
	// Выходной и несконфигурированный день - это "нет слотов", а не ошибка
	window, err := calendar.HoursFor(req.Date)
	if err != nil {
		if errors.Is(err, domain.ErrHoliday) || errors.Is(err, domain.ErrNotConfigured) {
			uc.logger.Info("GetAvailableSlots: court id=%d has no window on %s: %v",
				req.CourtID, req.Date.Format(domain.DateFormat), err)
			return uc.emptyResponse(req), nil
		}
		uc.logger.Error("GetAvailableSlots: failed to resolve window: %v", err)
		return nil, fmt.Errorf("%w: failed to resolve operating window: %v", ErrInternal, err)
	}

	// 5. Журнал занимающих бронирований корта на дату
	bookings, err := uc.bookingRepo.GetForCourtDate(ctx, domain.CourtDayFilter{
		FacilityID: req.FacilityID,
		CourtID:    req.CourtID,
		Date:       req.Date,
	})
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 6. Свободные часы = окно минус занятые часы
	slots := domain.AvailableSlots(window, bookings)

	uc.logger.Info("GetAvailableSlots: %d slots for facility=%d, court=%d, date=%s",
		len(slots), req.FacilityID, req.CourtID, req.Date.Format(domain.DateFormat))

	return &Response{
		Date:       req.Date,
		FacilityID: req.FacilityID,
		CourtID:    req.CourtID,
		Slots:      fromDomainSlots(slots),
	}, nil
}

func (uc *UseCase) emptyResponse(req *Request) *Response {
	return &Response{
		Date:       req.Date,
		FacilityID: req.FacilityID,
		CourtID:    req.CourtID,
		Slots:      []Slot{},
	}
}
