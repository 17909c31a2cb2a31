package get_refund_quote

import (
	"time"

	getRefundQuote "github.com/weplay-team/WePlay-BookingService/internal/usecase/get_refund_quote"
)

// RefundQuoteResponse HTTP response model: справочная котировка возврата
type RefundQuoteResponse struct {
	BookingID    int64   `json:"bookingId"`
	BookingType  string  `json:"bookingType"`
	QuotedAt     string  `json:"quotedAt"` // ISO 8601
	PaidAmount   int64   `json:"paidAmount"`
	RefundAmount int64   `json:"refundAmount"`
	RefundRatio  float64 `json:"refundRatio"`
	ReasonTier   string  `json:"reasonTier"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getRefundQuote.Response) *RefundQuoteResponse {
	return &RefundQuoteResponse{
		BookingID:    resp.BookingID,
		BookingType:  string(resp.BookingType),
		QuotedAt:     resp.QuotedAt.Format(time.RFC3339),
		PaidAmount:   resp.PaidAmount,
		RefundAmount: resp.RefundAmount,
		RefundRatio:  resp.RefundRatio,
		ReasonTier:   string(resp.ReasonTier),
	}
}
