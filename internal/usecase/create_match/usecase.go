package create_match

import (
	"context"
	"errors"
	"fmt"

	"github.com/weplay-team/WePlay-BookingService/internal/domain"
	bookingRepo "github.com/weplay-team/WePlay-BookingService/internal/infra/storage/booking"
	facilityClient "github.com/weplay-team/WePlay-BookingService/internal/integrations/facilityservice"
	"github.com/weplay-team/WePlay-BookingService/pkg/ptr"
)

// UseCase use case для создания социального матча менеджером площадки.
// Матч занимает часовой слот корта той же условной фиксацией, что и обычное
// бронирование: вместе со строкой матча создаётся занимающая запись в журнале
type UseCase struct {
	matchRepo      MatchRepository
	bookingRepo    BookingRepository
	facilityClient FacilityServiceClient
	txManager      TransactionManager
	timeProvider   TimeProvider
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	matchRepo MatchRepository,
	bookingRepo BookingRepository,
	facilityClient FacilityServiceClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		matchRepo:      matchRepo,
		bookingRepo:    bookingRepo,
		facilityClient: facilityClient,
		txManager:      txManager,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// Execute выполняет use case создания матча
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateMatch: organizer=%d, facility=%d, court=%d, date=%s, hours=[%d,%d), capacity=%d",
		req.OrganizerID, req.FacilityID, req.CourtID, req.Date.Format(domain.DateFormat),
		req.StartHour, req.EndHour, req.TeamCapacity)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateMatch: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	// 2. Площадка, корт и права организатора
	facility, err := uc.facilityClient.GetFacility(ctx, req.FacilityID)
	if err != nil {
		if errors.Is(err, facilityClient.ErrFacilityNotFound) {
			return nil, ErrFacilityNotFound
		}
		uc.logger.Error("CreateMatch: failed to get facility id=%d: %v", req.FacilityID, err)
		return nil, fmt.Errorf("%w: failed to get facility: %v", ErrInternal, err)
	}

	if !facility.IsManagedBy(req.OrganizerID) {
		uc.logger.Warn("CreateMatch: user id=%d is not a manager of facility id=%d", req.OrganizerID, req.FacilityID)
		return nil, fmt.Errorf("%w: userID=%d is not a manager of facilityID=%d",
			ErrAccessDenied, req.OrganizerID, req.FacilityID)
	}

	court, err := facility.CourtByID(req.CourtID)
	if err != nil {
		return nil, ErrCourtNotFound
	}

	// 3. Окно работы корта на дату
	calendar, err := court.ToOperatingCalendar()
	if err != nil {
		uc.logger.Error("CreateMatch: invalid operating hours for court id=%d: %v", req.CourtID, err)
		return nil, fmt.Errorf("%w: invalid operating hours: %v", ErrInternal, err)
	}

	window, err := calendar.HoursFor(req.Date)
	if err != nil {
		if errors.Is(err, domain.ErrHoliday) || errors.Is(err, domain.ErrNotConfigured) {
			return nil, ErrFacilityClosed
		}
		return nil, fmt.Errorf("%w: failed to resolve operating window: %v", ErrInternal, err)
	}

	if req.StartHour < window.OpenHour || req.EndHour > window.CloseHour {
		return nil, ErrOutsideOperatingHours
	}

	if err := validateMatchTime(req, now); err != nil {
		uc.logger.Warn("CreateMatch: match time validation failed: %v", err)
		return nil, err
	}

	var result *domain.Match

	// 4. Фиксация слота и создание матча в одной транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		bookings, err := uc.bookingRepo.GetForCourtDate(txCtx, domain.CourtDayFilter{
			FacilityID: req.FacilityID,
			CourtID:    req.CourtID,
			Date:       req.Date,
		})
		if err != nil {
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		for h := req.StartHour; h < req.EndHour; h++ {
			for _, b := range bookings {
				if b.IsOccupying() && b.CoversHour(h) {
					uc.logger.Warn("CreateMatch: hour %d already booked by booking id=%d", h, b.ID)
					return ErrSlotAlreadyBooked
				}
			}
		}

		match, err := uc.matchRepo.Create(txCtx, &domain.Match{
			FacilityID:   req.FacilityID,
			CourtID:      req.CourtID,
			MatchDate:    req.Date,
			StartHour:    req.StartHour,
			EndHour:      req.EndHour,
			TeamCapacity: req.TeamCapacity,
			EntryFee:     req.EntryFee,
			Status:       domain.MatchApplicable,
		})
		if err != nil {
			uc.logger.Error("CreateMatch: failed to create match: %v", err)
			return fmt.Errorf("%w: failed to create match: %v", ErrInternal, err)
		}

		// Занимающая запись в журнале корта: держит слот матча и делает его
		// видимым для расчёта доступности и конфликтов
		_, err = uc.bookingRepo.Create(txCtx, &domain.Booking{
			UserID:       req.OrganizerID,
			FacilityID:   req.FacilityID,
			CourtID:      req.CourtID,
			Type:         domain.TypeFacilityReservation,
			MatchID:      ptr.Ptr(match.ID),
			BookingDate:  req.Date,
			StartHour:    req.StartHour,
			EndHour:      req.EndHour,
			Status:       domain.StatusConfirmed,
			PaidAmount:   0,
			FacilityName: facility.Name,
			CourtName:    court.Name,
		})
		if err != nil {
			if errors.Is(err, bookingRepo.ErrSlotAlreadyBooked) {
				return ErrSlotAlreadyBooked
			}
			return fmt.Errorf("%w: failed to occupy court slot: %v", ErrInternal, err)
		}

		result = match
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateMatch: successfully created match id=%d", result.ID)

	return fromDomain(result), nil
}
