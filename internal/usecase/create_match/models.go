package create_match

import (
	"time"

	"github.com/weplay-team/WePlay-BookingService/internal/domain"
)

// Request запрос на создание матча менеджером площадки
type Request struct {
	OrganizerID  int64
	FacilityID   int64
	CourtID      int64
	Date         time.Time
	StartHour    int
	EndHour      int
	TeamCapacity int
	EntryFee     int64
}

// Response созданный матч
type Response struct {
	MatchID             int64
	FacilityID          int64
	CourtID             int64
	Date                time.Time
	StartHour           int
	EndHour             int
	TeamCapacity        int
	CurrentParticipants int
	EntryFee            int64
	Status              domain.MatchStatus
	CreatedAt           time.Time
}

func fromDomain(m *domain.Match) *Response {
	return &Response{
		MatchID:             m.ID,
		FacilityID:          m.FacilityID,
		CourtID:             m.CourtID,
		Date:                m.MatchDate,
		StartHour:           m.StartHour,
		EndHour:             m.EndHour,
		TeamCapacity:        m.TeamCapacity,
		CurrentParticipants: m.CurrentParticipants,
		EntryFee:            m.EntryFee,
		Status:              m.Status,
		CreatedAt:           m.CreatedAt,
	}
}
