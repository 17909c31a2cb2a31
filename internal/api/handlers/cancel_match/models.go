package cancel_match

import (
	"time"

	cancelMatch "github.com/weplay-team/WePlay-BookingService/internal/usecase/cancel_match"
)

// CancelMatchRequest HTTP request model
type CancelMatchRequest struct {
	Reason string `json:"reason,omitempty"`
}

// CancelMatchResponse HTTP response model: итог отмены матча
type CancelMatchResponse struct {
	MatchID              int64  `json:"matchId"`
	Status               string `json:"status"`
	CancelledAt          string `json:"cancelledAt"` // ISO 8601
	ParticipantsRefunded int    `json:"participantsRefunded"`
	TotalRefunded        int64  `json:"totalRefunded"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *cancelMatch.Response) *CancelMatchResponse {
	return &CancelMatchResponse{
		MatchID:              resp.MatchID,
		Status:               string(resp.Status),
		CancelledAt:          resp.CancelledAt.Format(time.RFC3339),
		ParticipantsRefunded: resp.ParticipantsRefunded,
		TotalRefunded:        resp.TotalRefunded,
	}
}
