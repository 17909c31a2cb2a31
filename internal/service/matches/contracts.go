package matches

import (
	"context"

	"github.com/weplay-team/WePlay-BookingService/internal/domain"
)

// MatchRepository интерфейс репозитория матчей
type MatchRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Match, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
