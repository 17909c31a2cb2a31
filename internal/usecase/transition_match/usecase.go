package transition_match

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/weplay-team/WePlay-BookingService/internal/domain"
	matchStorage "github.com/weplay-team/WePlay-BookingService/internal/infra/storage/match"
)

// UseCase use case административных переходов жизненного цикла матча.
// Сами правила переходов живут в domain.Match; здесь проверка прав,
// временные ворота для start/end и сохранение нового статуса
type UseCase struct {
	matchRepo      MatchRepository
	facilityClient FacilityServiceClient
	txManager      TransactionManager
	timeProvider   TimeProvider
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	matchRepo MatchRepository,
	facilityClient FacilityServiceClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		matchRepo:      matchRepo,
		facilityClient: facilityClient,
		txManager:      txManager,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// Execute выполняет административный переход статуса матча
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("TransitionMatch: match=%d, actor=%d, action=%s", req.MatchID, req.ActorID, req.Action)

	if req.MatchID <= 0 {
		return nil, fmt.Errorf("%w: matchID must be positive", ErrInvalidInput)
	}
	if req.ActorID <= 0 {
		return nil, fmt.Errorf("%w: actorID must be positive", ErrInvalidInput)
	}
	switch req.Action {
	case ActionClose, ActionFinish, ActionReopen, ActionStart, ActionEnd:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAction, req.Action)
	}

	match, err := uc.matchRepo.GetByID(ctx, req.MatchID)
	if err != nil {
		if errors.Is(err, matchStorage.ErrMatchNotFound) {
			return nil, fmt.Errorf("%w: matchID=%d", ErrMatchNotFound, req.MatchID)
		}
		uc.logger.Error("TransitionMatch: failed to get match id=%d: %v", req.MatchID, err)
		return nil, fmt.Errorf("%w: failed to get match: %v", ErrInternal, err)
	}

	facility, err := uc.facilityClient.GetFacility(ctx, match.FacilityID)
	if err != nil {
		uc.logger.Error("TransitionMatch: failed to get facility id=%d: %v", match.FacilityID, err)
		return nil, fmt.Errorf("%w: failed to get facility: %v", ErrInternal, err)
	}
	if !facility.IsManagedBy(req.ActorID) {
		return nil, fmt.Errorf("%w: userID=%d is not a manager of facilityID=%d",
			ErrAccessDenied, req.ActorID, match.FacilityID)
	}

	now := uc.timeProvider.Now()

	var resp *Response

	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// Чтение с блокировкой: переход конкурирует с join/leave
		m, err := uc.matchRepo.GetByID(txCtx, req.MatchID)
		if err != nil {
			return fmt.Errorf("%w: failed to get match for update: %v", ErrInternal, err)
		}

		if err := uc.apply(m, req.Action, now); err != nil {
			return err
		}

		if err := uc.matchRepo.UpdateStatus(txCtx, m.ID, m.Status); err != nil {
			return fmt.Errorf("%w: failed to update match status: %v", ErrInternal, err)
		}

		resp = &Response{
			MatchID:             m.ID,
			Status:              m.Status,
			CurrentParticipants: m.CurrentParticipants,
			TeamCapacity:        m.TeamCapacity,
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("TransitionMatch: match=%d -> %s", resp.MatchID, resp.Status)

	return resp, nil
}

// apply применяет переход к матчу в памяти, включая временные ворота
func (uc *UseCase) apply(m *domain.Match, action Action, now time.Time) error {
	var err error
	switch action {
	case ActionClose:
		err = m.CloseRecruiting()
	case ActionFinish:
		err = m.FinishRecruiting()
	case ActionReopen:
		err = m.ReopenRecruiting()
	case ActionStart:
		if now.Before(m.StartAt()) {
			return fmt.Errorf("%w: match starts at %s", ErrTooEarly, m.StartAt().Format(domain.TimeFormat))
		}
		err = m.Begin()
	case ActionEnd:
		if now.Before(m.EndAt()) {
			return fmt.Errorf("%w: match ends at %s", ErrTooEarly, m.EndAt().Format(domain.TimeFormat))
		}
		err = m.Finish()
	}

	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTransition, err)
	}
	return nil
}
