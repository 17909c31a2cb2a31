package get_refund_quote

import (
	"time"

	"github.com/weplay-team/WePlay-BookingService/internal/domain"
)

// Request запрос предварительного расчёта возврата
type Request struct {
	BookingID int64
	UserID    int64
}

// Response котировка возврата на текущий момент
type Response struct {
	BookingID    int64
	BookingType  domain.BookingType
	QuotedAt     time.Time
	PaidAmount   int64
	RefundAmount int64
	RefundRatio  float64
	ReasonTier   domain.RefundTier
}
