package cancel_booking

import (
	"time"

	cancelBooking "github.com/weplay-team/WePlay-BookingService/internal/usecase/cancel_booking"
)

// CancelBookingRequest HTTP request model
type CancelBookingRequest struct {
	Reason string `json:"reason,omitempty"`
}

// CancelBookingResponse HTTP response model: статус отмены и возврат
type CancelBookingResponse struct {
	BookingID    int64   `json:"bookingId"`
	Status       string  `json:"status"`
	CancelledAt  string  `json:"cancelledAt"` // ISO 8601
	PaidAmount   int64   `json:"paidAmount"`
	RefundAmount int64   `json:"refundAmount"`
	RefundRatio  float64 `json:"refundRatio"`
	ReasonTier   string  `json:"reasonTier"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *cancelBooking.Response) *CancelBookingResponse {
	return &CancelBookingResponse{
		BookingID:    resp.BookingID,
		Status:       string(resp.Status),
		CancelledAt:  resp.CancelledAt.Format(time.RFC3339),
		PaidAmount:   resp.PaidAmount,
		RefundAmount: resp.RefundAmount,
		RefundRatio:  resp.RefundRatio,
		ReasonTier:   string(resp.ReasonTier),
	}
}
