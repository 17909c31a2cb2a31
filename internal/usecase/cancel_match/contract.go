package cancel_match

import (
	"context"
	"time"

	"github.com/weplay-team/WePlay-BookingService/internal/domain"
	"github.com/weplay-team/WePlay-BookingService/internal/integrations/facilityservice"
)

// MatchRepository интерфейс репозитория матчей
type MatchRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Match, error)
	Cancel(ctx context.Context, id int64, reason string) error
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetOccupyingByMatchID(ctx context.Context, matchID int64) ([]*domain.Booking, error)
	Cancel(ctx context.Context, id int64, status domain.BookingStatus, reason string) error
}

// FacilityServiceClient интерфейс клиента справочника площадок
type FacilityServiceClient interface {
	GetFacility(ctx context.Context, facilityID int64) (*facilityservice.Facility, error)
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
