package get_available_slots

import (
	"time"

	"github.com/weplay-team/WePlay-BookingService/internal/domain"
	getAvailableSlots "github.com/weplay-team/WePlay-BookingService/internal/usecase/get_available_slots"
)

// SlotResponse свободный часовой слот
type SlotResponse struct {
	StartHour int    `json:"startHour"`
	EndHour   int    `json:"endHour"`
	StartTime string `json:"startTime"` // "10:00"
}

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	FacilityID int64          `json:"facilityId"`
	CourtID    int64          `json:"courtId"`
	Date       string         `json:"date"` // "2025-10-15"
	Slots      []SlotResponse `json:"slots"`
}

// ToUseCaseRequest формирует запрос use case из параметров HTTP запроса
func ToUseCaseRequest(facilityID, courtID int64, dateStr string) (*getAvailableSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{
		FacilityID: facilityID,
		CourtID:    courtID,
		Date:       date,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]SlotResponse, len(resp.Slots))
	for i, s := range resp.Slots {
		slots[i] = SlotResponse{
			StartHour: s.StartHour,
			EndHour:   s.EndHour,
			StartTime: s.StartTime.String(),
		}
	}

	return &AvailableSlotsResponse{
		FacilityID: resp.FacilityID,
		CourtID:    resp.CourtID,
		Date:       resp.Date.Format(domain.DateFormat),
		Slots:      slots,
	}
}
