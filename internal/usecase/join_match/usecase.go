package join_match

import (
	"context"
	"errors"
	"fmt"

	"github.com/weplay-team/WePlay-BookingService/internal/domain"
	bookingStorage "github.com/weplay-team/WePlay-BookingService/internal/infra/storage/booking"
	matchStorage "github.com/weplay-team/WePlay-BookingService/internal/infra/storage/match"
	"github.com/weplay-team/WePlay-BookingService/pkg/ptr"
)

// UseCase use case присоединения участника к матчу.
// Счётчик участников увеличивается одним условным UPDATE в репозитории:
// ограничение ёмкости держится на атомарном инкременте, а не на чтении-записи
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

// Execute выполняет use case присоединения к матчу
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("JoinMatch: match=%d, user=%d", req.MatchID, req.UserID)

	if req.MatchID <= 0 {
		return nil, fmt.Errorf("%w: matchID must be positive", ErrInvalidInput)
	}
	if req.UserID <= 0 {
		return nil, fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	// Предварительное чтение вне транзакции: данные для денормализации и
	// быстрые отказы до захвата блокировок
	match, err := uc.matchRepo.GetByID(ctx, req.MatchID)
	if err != nil {
		if errors.Is(err, matchStorage.ErrMatchNotFound) {
			return nil, fmt.Errorf("%w: matchID=%d", ErrMatchNotFound, req.MatchID)
		}
		uc.logger.Error("JoinMatch: failed to get match id=%d: %v", req.MatchID, err)
		return nil, fmt.Errorf("%w: failed to get match: %v", ErrInternal, err)
	}

	if !match.IsRecruiting() {
		return nil, fmt.Errorf("%w: status is %s", ErrMatchNotJoinable, match.Status)
	}

	now := uc.timeProvider.Now()
	if !now.Before(match.StartAt()) {
		return nil, fmt.Errorf("%w: match has already started", ErrMatchNotJoinable)
	}

	facility, err := uc.facilityClient.GetFacility(ctx, match.FacilityID)
	if err != nil {
		uc.logger.Error("JoinMatch: failed to get facility id=%d: %v", match.FacilityID, err)
		return nil, fmt.Errorf("%w: failed to get facility: %v", ErrInternal, err)
	}

	courtName := ""
	if court, err := facility.CourtByID(match.CourtID); err == nil {
		courtName = court.Name
	}

	var resp *Response

	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// Повторное участие запрещено, пока предыдущее не отменено
		existing, err := uc.bookingRepo.GetOccupyingByMatchAndUser(txCtx, req.MatchID, req.UserID)
		if err != nil && !errors.Is(err, bookingStorage.ErrBookingNotFound) {
			return fmt.Errorf("%w: failed to check existing participation: %v", ErrInternal, err)
		}
		if existing != nil {
			return fmt.Errorf("%w: bookingID=%d", ErrAlreadyJoined, existing.ID)
		}

		// Атомарный условный инкремент: проигравший гонку за последнее место
		// получает ErrMatchNotJoinable
		updated, err := uc.matchRepo.JoinParticipant(txCtx, req.MatchID)
		if err != nil {
			if errors.Is(err, matchStorage.ErrMatchNotJoinable) {
				return fmt.Errorf("%w: match is full or recruiting is closed", ErrMatchNotJoinable)
			}
			return fmt.Errorf("%w: failed to join match: %v", ErrInternal, err)
		}

		booking, err := uc.bookingRepo.Create(txCtx, &domain.Booking{
			UserID:       req.UserID,
			FacilityID:   match.FacilityID,
			CourtID:      match.CourtID,
			Type:         domain.TypeMatchParticipation,
			MatchID:      ptr.Ptr(match.ID),
			BookingDate:  match.MatchDate,
			StartHour:    match.StartHour,
			EndHour:      match.EndHour,
			Status:       domain.StatusConfirmed,
			PaidAmount:   match.EntryFee,
			FacilityName: facility.Name,
			CourtName:    courtName,
		})
		if err != nil {
			return fmt.Errorf("%w: failed to create participation booking: %v", ErrInternal, err)
		}

		resp = buildResponse(booking, updated)
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("JoinMatch: user=%d joined match=%d (%d/%d, status=%s)",
		req.UserID, resp.MatchID, resp.CurrentParticipants, resp.TeamCapacity, resp.Status)

	return resp, nil
}
