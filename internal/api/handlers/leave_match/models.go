package leave_match

import (
	"time"

	leaveMatch "github.com/weplay-team/WePlay-BookingService/internal/usecase/leave_match"
)

// LeaveMatchRequest HTTP request model
type LeaveMatchRequest struct {
	Reason string `json:"reason,omitempty"`
}

// LeaveMatchResponse HTTP response model: отменённое участие и возврат
type LeaveMatchResponse struct {
	BookingID    int64   `json:"bookingId"`
	MatchID      int64   `json:"matchId"`
	CancelledAt  string  `json:"cancelledAt"` // ISO 8601
	PaidAmount   int64   `json:"paidAmount"`
	RefundAmount int64   `json:"refundAmount"`
	RefundRatio  float64 `json:"refundRatio"`
	ReasonTier   string  `json:"reasonTier"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *leaveMatch.Response) *LeaveMatchResponse {
	return &LeaveMatchResponse{
		BookingID:    resp.BookingID,
		MatchID:      resp.MatchID,
		CancelledAt:  resp.CancelledAt.Format(time.RFC3339),
		PaidAmount:   resp.PaidAmount,
		RefundAmount: resp.RefundAmount,
		RefundRatio:  resp.RefundRatio,
		ReasonTier:   string(resp.ReasonTier),
	}
}
