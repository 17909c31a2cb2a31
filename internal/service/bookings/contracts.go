package bookings

import (
	"context"

	"github.com/weplay-team/WePlay-BookingService/internal/domain"
	"github.com/weplay-team/WePlay-BookingService/internal/integrations/facilityservice"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByUserID(ctx context.Context, userID int64, status *domain.BookingStatus) ([]*domain.Booking, error)
}

// FacilityServiceClient интерфейс клиента справочника площадок
type FacilityServiceClient interface {
	GetFacility(ctx context.Context, facilityID int64) (*facilityservice.Facility, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
