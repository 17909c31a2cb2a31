package domain

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrInvalidTransition возвращается при недопустимом переходе статуса матча
	ErrInvalidTransition = errors.New("domain: invalid match status transition")

	// ErrMatchNotJoinable возвращается при попытке присоединиться к матчу,
	// который не набирает участников или уже заполнен
	ErrMatchNotJoinable = errors.New("domain: match is not joinable")

	// ErrCancellationNotAllowed возвращается при попытке отменить матч,
	// набравший половину состава и больше
	ErrCancellationNotAllowed = errors.New("domain: match cancellation is not allowed")
)

// MatchStatus lifecycle state of a social match
type MatchStatus string

const (
	// MatchApplicable набор открыт (начальный статус)
	MatchApplicable MatchStatus = "applicable"
	// MatchCloseToDeadline набор закрывается: достигнута половина состава
	// или полный состав
	MatchCloseToDeadline MatchStatus = "close_to_deadline"
	// MatchFinish набор завершён, состав зафиксирован
	MatchFinish MatchStatus = "finish"
	// MatchOngoing матч идёт
	MatchOngoing MatchStatus = "ongoing"
	// MatchEnd матч завершён (терминальный)
	MatchEnd MatchStatus = "end"
	// MatchCancelled матч отменён (терминальный)
	MatchCancelled MatchStatus = "cancelled"
)

// Match социальный матч: платная групповая игра с набором участников
// Статус и счётчик участников меняются только через методы переходов
type Match struct {
	ID         int64
	FacilityID int64
	CourtID    int64

	MatchDate time.Time
	StartHour int
	EndHour   int

	TeamCapacity        int
	CurrentParticipants int
	EntryFee            int64 // per participant, minor currency units

	Status MatchStatus

	CancellationReason *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// StartAt returns the absolute scheduled start of the match
func (m *Match) StartAt() time.Time {
	d := m.MatchDate
	return time.Date(d.Year(), d.Month(), d.Day(), m.StartHour, 0, 0, 0, d.Location())
}

// EndAt returns the absolute scheduled end of the match
func (m *Match) EndAt() time.Time {
	d := m.MatchDate
	return time.Date(d.Year(), d.Month(), d.Day(), m.EndHour, 0, 0, 0, d.Location())
}

// IsTerminal returns true if no further transitions are possible
func (m *Match) IsTerminal() bool {
	return m.Status == MatchEnd || m.Status == MatchCancelled
}

// IsRecruiting returns true if new participants may join
func (m *Match) IsRecruiting() bool {
	return m.Status == MatchApplicable || m.Status == MatchCloseToDeadline
}

// IsFull returns true if the match reached team capacity
func (m *Match) IsFull() bool {
	return m.CurrentParticipants >= m.TeamCapacity
}

// HalfSubscribedWithNext reports whether the match counting one more joiner
// reaches the half-capacity threshold
// Сравнение через удвоение, чтобы не терять половину при нечётном составе
func (m *Match) HalfSubscribedWithNext() bool {
	return 2*(m.CurrentParticipants+1) >= m.TeamCapacity
}

// BelowHalfCapacity reports whether the current headcount is still under the
// half-capacity threshold (the only window in which outright cancellation
// is allowed)
func (m *Match) BelowHalfCapacity() bool {
	return 2*m.CurrentParticipants < m.TeamCapacity
}

// Join admits one participant
// Permitted only while recruiting and below capacity; keeps the invariant
// CurrentParticipants <= TeamCapacity. A full roster closes recruiting
func (m *Match) Join() error {
	if !m.IsRecruiting() {
		return fmt.Errorf("%w: status is %s", ErrMatchNotJoinable, m.Status)
	}
	if m.IsFull() {
		return fmt.Errorf("%w: match is full (%d/%d)", ErrMatchNotJoinable, m.CurrentParticipants, m.TeamCapacity)
	}

	m.CurrentParticipants++
	if m.IsFull() && m.Status == MatchApplicable {
		m.Status = MatchCloseToDeadline
	}
	return nil
}

// RemoveParticipant removes one participant (self-cancellation or eject)
// Never goes below zero and never changes the status by itself
func (m *Match) RemoveParticipant() {
	if m.CurrentParticipants > 0 {
		m.CurrentParticipants--
	}
}

// CloseRecruiting transitions Applicable -> CloseToDeadline
// Requires the half-capacity threshold counting the next joiner, or a full roster
func (m *Match) CloseRecruiting() error {
	if m.Status != MatchApplicable {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, m.Status, MatchCloseToDeadline)
	}
	if !m.HalfSubscribedWithNext() && !m.IsFull() {
		return fmt.Errorf("%w: match is under half capacity (%d/%d)", ErrInvalidTransition, m.CurrentParticipants, m.TeamCapacity)
	}
	m.Status = MatchCloseToDeadline
	return nil
}

// FinishRecruiting transitions CloseToDeadline -> Finish
// Only while the half-capacity condition still holds
func (m *Match) FinishRecruiting() error {
	if m.Status != MatchCloseToDeadline {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, m.Status, MatchFinish)
	}
	if !m.HalfSubscribedWithNext() {
		return fmt.Errorf("%w: match dropped under half capacity (%d/%d)", ErrInvalidTransition, m.CurrentParticipants, m.TeamCapacity)
	}
	m.Status = MatchFinish
	return nil
}

// ReopenRecruiting transitions Finish -> CloseToDeadline
// Permitted only for a non-full roster that still meets the half-capacity condition
func (m *Match) ReopenRecruiting() error {
	if m.Status != MatchFinish {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, m.Status, MatchCloseToDeadline)
	}
	if m.IsFull() {
		return fmt.Errorf("%w: match is full, nothing to recruit", ErrInvalidTransition)
	}
	if !m.HalfSubscribedWithNext() {
		return fmt.Errorf("%w: match is under half capacity (%d/%d)", ErrInvalidTransition, m.CurrentParticipants, m.TeamCapacity)
	}
	m.Status = MatchCloseToDeadline
	return nil
}

// Begin transitions Finish -> Ongoing
// The time gate (not before the scheduled start) is enforced by the caller
func (m *Match) Begin() error {
	if m.Status != MatchFinish {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, m.Status, MatchOngoing)
	}
	m.Status = MatchOngoing
	return nil
}

// Finish transitions Ongoing -> End
// The time gate (not before the scheduled end) is enforced by the caller
func (m *Match) Finish() error {
	if m.Status != MatchOngoing {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, m.Status, MatchEnd)
	}
	m.Status = MatchEnd
	return nil
}

// Cancel transitions the match to Cancelled
// Reachable only from Applicable, CloseToDeadline or Finish, and only while
// the roster is under half capacity; a more committed match needs every
// participant refunded individually instead
func (m *Match) Cancel(reason string) error {
	switch m.Status {
	case MatchApplicable, MatchCloseToDeadline, MatchFinish:
	default:
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, m.Status, MatchCancelled)
	}
	if !m.BelowHalfCapacity() {
		return fmt.Errorf("%w: %d/%d participants already committed", ErrCancellationNotAllowed, m.CurrentParticipants, m.TeamCapacity)
	}
	m.Status = MatchCancelled
	m.CancellationReason = &reason
	return nil
}
