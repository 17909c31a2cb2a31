package join_match

import (
	joinMatch "github.com/weplay-team/WePlay-BookingService/internal/usecase/join_match"
)

// JoinMatchResponse HTTP response model: оплаченное участие и состояние матча
type JoinMatchResponse struct {
	BookingID           int64  `json:"bookingId"`
	MatchID             int64  `json:"matchId"`
	PaidAmount          int64  `json:"paidAmount"`
	Status              string `json:"status"`
	CurrentParticipants int    `json:"currentParticipants"`
	TeamCapacity        int    `json:"teamCapacity"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *joinMatch.Response) *JoinMatchResponse {
	return &JoinMatchResponse{
		BookingID:           resp.BookingID,
		MatchID:             resp.MatchID,
		PaidAmount:          resp.PaidAmount,
		Status:              string(resp.Status),
		CurrentParticipants: resp.CurrentParticipants,
		TeamCapacity:        resp.TeamCapacity,
	}
}
