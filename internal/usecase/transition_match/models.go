package transition_match

import (
	"github.com/weplay-team/WePlay-BookingService/internal/domain"
)

// Action административный переход жизненного цикла матча
type Action string

const (
	ActionClose  Action = "close"  // applicable -> close_to_deadline
	ActionFinish Action = "finish" // close_to_deadline -> finish
	ActionReopen Action = "reopen" // finish -> close_to_deadline
	ActionStart  Action = "start"  // finish -> ongoing, не раньше начала
	ActionEnd    Action = "end"    // ongoing -> end, не раньше конца
)

// Request запрос на административный переход статуса матча
type Request struct {
	MatchID int64
	ActorID int64
	Action  Action
}

// Response состояние матча после перехода
type Response struct {
	MatchID             int64
	Status              domain.MatchStatus
	CurrentParticipants int
	TeamCapacity        int
}
