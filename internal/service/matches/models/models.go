package models

import (
	"time"

	"github.com/weplay-team/WePlay-BookingService/internal/domain"
)

// MatchResponse публичная карточка матча
type MatchResponse struct {
	ID                  int64  `json:"id"`
	FacilityID          int64  `json:"facilityId"`
	CourtID             int64  `json:"courtId"`
	MatchDate           string `json:"matchDate"` // "2025-10-15"
	StartHour           int    `json:"startHour"`
	EndHour             int    `json:"endHour"`
	StartTime           string `json:"startTime"` // "10:00"
	TeamCapacity        int    `json:"teamCapacity"`
	CurrentParticipants int    `json:"currentParticipants"`
	EntryFee            int64  `json:"entryFee"`
	Status              string `json:"status"`

	CancellationReason *string `json:"cancellationReason,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// FromDomainMatch конвертирует domain модель в DTO
func FromDomainMatch(m *domain.Match) *MatchResponse {
	if m == nil {
		return nil
	}

	return &MatchResponse{
		ID:                  m.ID,
		FacilityID:          m.FacilityID,
		CourtID:             m.CourtID,
		MatchDate:           m.MatchDate.Format(domain.DateFormat),
		StartHour:           m.StartHour,
		EndHour:             m.EndHour,
		StartTime:           m.StartAt().Format(domain.TimeFormat),
		TeamCapacity:        m.TeamCapacity,
		CurrentParticipants: m.CurrentParticipants,
		EntryFee:            m.EntryFee,
		Status:              string(m.Status),
		CancellationReason:  m.CancellationReason,
		CreatedAt:           m.CreatedAt,
		UpdatedAt:           m.UpdatedAt,
	}
}
