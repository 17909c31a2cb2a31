package create_booking

import (
	"time"

	"github.com/weplay-team/WePlay-BookingService/internal/domain"
)

// Request модель запроса на создание бронирования корта
type Request struct {
	UserID     int64     // ID пользователя
	FacilityID int64     // ID площадки
	CourtID    int64     // ID корта
	Date       time.Time // Дата бронирования (без времени)
	StartHour  int       // Начало, целый час
	EndHour    int       // Конец, целый час (полуоткрытый интервал)
	Notes      *string   // Дополнительные заметки (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID          int64
	UserID      int64
	FacilityID  int64
	CourtID     int64
	BookingDate time.Time
	StartHour   int
	EndHour     int
	Status      string
	PaidAmount  int64

	// Денормализованные данные
	FacilityName string
	CourtName    string
	Notes        *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// fromDomain конвертирует доменное бронирование в ответ
func fromDomain(b *domain.Booking) *Response {
	return &Response{
		ID:           b.ID,
		UserID:       b.UserID,
		FacilityID:   b.FacilityID,
		CourtID:      b.CourtID,
		BookingDate:  b.BookingDate,
		StartHour:    b.StartHour,
		EndHour:      b.EndHour,
		Status:       string(b.Status),
		PaidAmount:   b.PaidAmount,
		FacilityName: b.FacilityName,
		CourtName:    b.CourtName,
		Notes:        b.Notes,
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
	}
}
