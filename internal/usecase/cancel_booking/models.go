package cancel_booking

import (
	"time"

	"github.com/weplay-team/WePlay-BookingService/internal/domain"
)

// Request запрос на отмену бронирования
type Request struct {
	BookingID int64
	ActorID   int64
	Reason    string
}

// Response результат отмены с рассчитанным возвратом
type Response struct {
	BookingID    int64
	Status       domain.BookingStatus
	CancelledAt  time.Time
	PaidAmount   int64
	RefundAmount int64
	RefundRatio  float64
	ReasonTier   domain.RefundTier
}

func buildResponse(b *domain.Booking, status domain.BookingStatus, cancelledAt time.Time, quote domain.RefundQuote) *Response {
	return &Response{
		BookingID:    b.ID,
		Status:       status,
		CancelledAt:  cancelledAt,
		PaidAmount:   quote.GrossAmount,
		RefundAmount: quote.RefundAmount,
		RefundRatio:  quote.RefundRatio,
		ReasonTier:   quote.ReasonTier,
	}
}
