package get_available_slots

import (
	"context"

	"github.com/weplay-team/WePlay-BookingService/internal/domain"
	"github.com/weplay-team/WePlay-BookingService/internal/integrations/facilityservice"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// GetForCourtDate получает журнал бронирований корта на дату
	GetForCourtDate(ctx context.Context, filter domain.CourtDayFilter) ([]*domain.Booking, error)
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
