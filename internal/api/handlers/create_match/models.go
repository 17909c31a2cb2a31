package create_match

import (
	"time"

	"github.com/weplay-team/WePlay-BookingService/internal/domain"
	createMatch "github.com/weplay-team/WePlay-BookingService/internal/usecase/create_match"
)

// CreateMatchRequest HTTP request model
type CreateMatchRequest struct {
	FacilityID   int64  `json:"facilityId"`
	CourtID      int64  `json:"courtId"`
	MatchDate    string `json:"matchDate"` // "2025-10-15"
	StartHour    int    `json:"startHour"`
	EndHour      int    `json:"endHour"`
	TeamCapacity int    `json:"teamCapacity"`
	EntryFee     int64  `json:"entryFee"`
}

// MatchResponse HTTP response model
type MatchResponse struct {
	ID                  int64  `json:"id"`
	FacilityID          int64  `json:"facilityId"`
	CourtID             int64  `json:"courtId"`
	MatchDate           string `json:"matchDate"`
	StartHour           int    `json:"startHour"`
	EndHour             int    `json:"endHour"`
	TeamCapacity        int    `json:"teamCapacity"`
	CurrentParticipants int    `json:"currentParticipants"`
	EntryFee            int64  `json:"entryFee"`
	Status              string `json:"status"`
	CreatedAt           string `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateMatchRequest) ToUseCaseRequest(organizerID int64) (*createMatch.Request, error) {
	matchDate, err := time.Parse(domain.DateFormat, r.MatchDate)
	if err != nil {
		return nil, err
	}

	return &createMatch.Request{
		OrganizerID:  organizerID,
		FacilityID:   r.FacilityID,
		CourtID:      r.CourtID,
		Date:         matchDate,
		StartHour:    r.StartHour,
		EndHour:      r.EndHour,
		TeamCapacity: r.TeamCapacity,
		EntryFee:     r.EntryFee,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createMatch.Response) *MatchResponse {
	return &MatchResponse{
		ID:                  resp.MatchID,
		FacilityID:          resp.FacilityID,
		CourtID:             resp.CourtID,
		MatchDate:           resp.Date.Format(domain.DateFormat),
		StartHour:           resp.StartHour,
		EndHour:             resp.EndHour,
		TeamCapacity:        resp.TeamCapacity,
		CurrentParticipants: resp.CurrentParticipants,
		EntryFee:            resp.EntryFee,
		Status:              string(resp.Status),
		CreatedAt:           resp.CreatedAt.Format(time.RFC3339),
	}
}
