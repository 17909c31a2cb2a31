package join_match

import (
	"github.com/weplay-team/WePlay-BookingService/internal/domain"
)

// Request запрос на участие в матче
type Request struct {
	MatchID int64
	UserID  int64
}

// Response результат присоединения: оплаченное участие и состояние матча
type Response struct {
	BookingID           int64
	MatchID             int64
	PaidAmount          int64
	Status              domain.MatchStatus
	CurrentParticipants int
	TeamCapacity        int
}

func buildResponse(b *domain.Booking, m *domain.Match) *Response {
	return &Response{
		BookingID:           b.ID,
		MatchID:             m.ID,
		PaidAmount:          b.PaidAmount,
		Status:              m.Status,
		CurrentParticipants: m.CurrentParticipants,
		TeamCapacity:        m.TeamCapacity,
	}
}
