package cancel_match

import (
	"time"

	"github.com/weplay-team/WePlay-BookingService/internal/domain"
)

// Request запрос менеджера площадки на отмену матча целиком
type Request struct {
	MatchID int64
	ActorID int64
	Reason  string
}

// Response результат отмены матча
type Response struct {
	MatchID              int64
	Status               domain.MatchStatus
	CancelledAt          time.Time
	ParticipantsRefunded int
	TotalRefunded        int64
}
