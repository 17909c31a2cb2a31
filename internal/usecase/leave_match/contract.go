package leave_match

import (
	"context"
	"time"

	"github.com/weplay-team/WePlay-BookingService/internal/domain"
)

// MatchRepository интерфейс репозитория матчей
type MatchRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Match, error)
	RemoveParticipant(ctx context.Context, id int64) error
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetOccupyingByMatchAndUser(ctx context.Context, matchID, userID int64) (*domain.Booking, error)
	Cancel(ctx context.Context, id int64, status domain.BookingStatus, reason string) error
}

// PaymentGateway интерфейс платёжного шлюза
type PaymentGateway interface {
	Refund(ctx context.Context, bookingRef string, amount int64) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
