package update_match_status

import (
	transitionMatch "github.com/weplay-team/WePlay-BookingService/internal/usecase/transition_match"
)

// UpdateMatchStatusRequest HTTP request model
type UpdateMatchStatusRequest struct {
	Action string `json:"action"` // close | finish | reopen | start | end
}

// MatchStatusResponse HTTP response model
type MatchStatusResponse struct {
	MatchID             int64  `json:"matchId"`
	Status              string `json:"status"`
	CurrentParticipants int    `json:"currentParticipants"`
	TeamCapacity        int    `json:"teamCapacity"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *transitionMatch.Response) *MatchStatusResponse {
	return &MatchStatusResponse{
		MatchID:             resp.MatchID,
		Status:              string(resp.Status),
		CurrentParticipants: resp.CurrentParticipants,
		TeamCapacity:        resp.TeamCapacity,
	}
}
