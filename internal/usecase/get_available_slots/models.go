package get_available_slots

import (
	"time"

	"github.com/weplay-team/WePlay-BookingService/internal/domain"
	"github.com/weplay-team/WePlay-BookingService/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	FacilityID int64     // ID площадки
	CourtID    int64     // ID корта
	Date       time.Time // Дата для получения слотов (без времени)
}

// Response модель ответа со списком доступных слотов
type Response struct {
	Date       time.Time // Дата, на которую запрашивались слоты
	FacilityID int64     // ID площадки
	CourtID    int64     // ID корта
	Slots      []Slot    // Упорядоченный список свободных часовых слотов
}

// Slot свободный часовой слот
type Slot struct {
	StartHour int              // Начало слота (целый час)
	EndHour   int              // Конец слота (StartHour + 1)
	StartTime types.TimeString // Начало слота в формате "HH:MM"
}

// fromDomainSlots конвертирует доменные слоты в модель ответа
func fromDomainSlots(slots []domain.Slot) []Slot {
	result := make([]Slot, len(slots))
	for i, s := range slots {
		result[i] = Slot{
			StartHour: s.StartHour,
			EndHour:   s.EndHour,
			StartTime: types.FromHour(s.StartHour),
		}
	}
	return result
}
