package leave_match

import (
	"time"

	"github.com/weplay-team/WePlay-BookingService/internal/domain"
)

// Request запрос участника на выход из матча
type Request struct {
	MatchID int64
	UserID  int64
	Reason  string
}

// Response результат выхода с рассчитанным возвратом
type Response struct {
	BookingID    int64
	MatchID      int64
	CancelledAt  time.Time
	PaidAmount   int64
	RefundAmount int64
	RefundRatio  float64
	ReasonTier   domain.RefundTier
}
