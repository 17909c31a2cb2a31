package matches

import (
	"context"
	"errors"
	"fmt"

	matchRepo "github.com/weplay-team/WePlay-BookingService/internal/infra/storage/match"
	"github.com/weplay-team/WePlay-BookingService/internal/service/matches/models"
)

// Service сервис для чтения матчей
type Service struct {
	matchRepo MatchRepository
	logger    Logger
}

// NewService создает новый экземпляр сервиса матчей
func NewService(matchRepo MatchRepository, logger Logger) *Service {
	return &Service{
		matchRepo: matchRepo,
		logger:    logger,
	}
}

// GetByID получает карточку матча по ID
// Карточка публичная: набор участников виден без авторизации
func (s *Service) GetByID(ctx context.Context, id int64) (*models.MatchResponse, error) {
	s.logger.Info("GetByID: fetching match id=%d", id)

	match, err := s.matchRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, matchRepo.ErrMatchNotFound) {
			s.logger.Warn("GetByID: match id=%d not found", id)
			return nil, ErrMatchNotFound
		}
		s.logger.Error("GetByID: repository error for match id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainMatch(match), nil
}
