package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMatch(status MatchStatus, participants, capacity int) *Match {
	return &Match{
		ID:                  1,
		FacilityID:          1,
		CourtID:             2,
		MatchDate:           time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC),
		StartHour:           18,
		EndHour:             20,
		TeamCapacity:        capacity,
		CurrentParticipants: participants,
		EntryFee:            500,
		Status:              status,
	}
}

func TestMatch_Join(t *testing.T) {
	t.Run("admits a participant while recruiting", func(t *testing.T) {
		m := newMatch(MatchApplicable, 3, 10)

		err := m.Join()

		require.NoError(t, err)
		assert.Equal(t, 4, m.CurrentParticipants)
		assert.Equal(t, MatchApplicable, m.Status)
	})

	t.Run("last seat closes recruiting", func(t *testing.T) {
		m := newMatch(MatchApplicable, 9, 10)

		err := m.Join()

		require.NoError(t, err)
		assert.Equal(t, 10, m.CurrentParticipants)
		assert.Equal(t, MatchCloseToDeadline, m.Status)
	})

	t.Run("full match rejects joins", func(t *testing.T) {
		m := newMatch(MatchCloseToDeadline, 10, 10)

		err := m.Join()

		assert.ErrorIs(t, err, ErrMatchNotJoinable)
		assert.Equal(t, 10, m.CurrentParticipants)
	})

	t.Run("non-recruiting statuses reject joins", func(t *testing.T) {
		for _, status := range []MatchStatus{MatchFinish, MatchOngoing, MatchEnd, MatchCancelled} {
			m := newMatch(status, 3, 10)

			err := m.Join()

			assert.ErrorIs(t, err, ErrMatchNotJoinable, "status %s", status)
		}
	})
}

func TestMatch_RemoveParticipant(t *testing.T) {
	m := newMatch(MatchApplicable, 2, 10)

	m.RemoveParticipant()
	assert.Equal(t, 1, m.CurrentParticipants)

	m.RemoveParticipant()
	m.RemoveParticipant() // уже ноль, ниже не уходит
	assert.Equal(t, 0, m.CurrentParticipants)
}

func TestMatch_HalfCapacityThresholds(t *testing.T) {
	tests := []struct {
		name         string
		participants int
		capacity     int
		withNext     bool
		belowHalf    bool
	}{
		{name: "empty match of ten", participants: 0, capacity: 10, withNext: false, belowHalf: true},
		{name: "four of ten, next is half", participants: 4, capacity: 10, withNext: true, belowHalf: true},
		{name: "five of ten is exactly half", participants: 5, capacity: 10, withNext: true, belowHalf: false},
		{name: "odd capacity rounds half up", participants: 3, capacity: 7, withNext: true, belowHalf: true},
		{name: "odd capacity at ceil half", participants: 4, capacity: 7, withNext: true, belowHalf: false},
		{name: "odd capacity under half", participants: 2, capacity: 7, withNext: false, belowHalf: true},
		{name: "minimal match of two", participants: 1, capacity: 2, withNext: true, belowHalf: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newMatch(MatchApplicable, tt.participants, tt.capacity)

			assert.Equal(t, tt.withNext, m.HalfSubscribedWithNext())
			assert.Equal(t, tt.belowHalf, m.BelowHalfCapacity())
		})
	}
}

func TestMatch_RecruitingTransitions(t *testing.T) {
	t.Run("close requires half capacity", func(t *testing.T) {
		m := newMatch(MatchApplicable, 2, 10)

		err := m.CloseRecruiting()

		assert.ErrorIs(t, err, ErrInvalidTransition)
		assert.Equal(t, MatchApplicable, m.Status)
	})

	t.Run("close succeeds at half capacity", func(t *testing.T) {
		m := newMatch(MatchApplicable, 5, 10)

		require.NoError(t, m.CloseRecruiting())
		assert.Equal(t, MatchCloseToDeadline, m.Status)
	})

	t.Run("finish fixes the roster", func(t *testing.T) {
		m := newMatch(MatchCloseToDeadline, 6, 10)

		require.NoError(t, m.FinishRecruiting())
		assert.Equal(t, MatchFinish, m.Status)
	})

	t.Run("finish rejected when roster dropped under half", func(t *testing.T) {
		m := newMatch(MatchCloseToDeadline, 2, 10)

		err := m.FinishRecruiting()

		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("reopen returns a non-full roster to recruiting", func(t *testing.T) {
		m := newMatch(MatchFinish, 6, 10)

		require.NoError(t, m.ReopenRecruiting())
		assert.Equal(t, MatchCloseToDeadline, m.Status)
	})

	t.Run("reopen rejected for a full roster", func(t *testing.T) {
		m := newMatch(MatchFinish, 10, 10)

		err := m.ReopenRecruiting()

		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("close from a non-applicable status fails", func(t *testing.T) {
		m := newMatch(MatchOngoing, 6, 10)

		assert.ErrorIs(t, m.CloseRecruiting(), ErrInvalidTransition)
	})
}

func TestMatch_BeginAndFinish(t *testing.T) {
	m := newMatch(MatchFinish, 6, 10)

	require.NoError(t, m.Begin())
	assert.Equal(t, MatchOngoing, m.Status)

	require.NoError(t, m.Finish())
	assert.Equal(t, MatchEnd, m.Status)
	assert.True(t, m.IsTerminal())

	// терминальный статус дальше не двигается
	assert.ErrorIs(t, m.Begin(), ErrInvalidTransition)
	assert.ErrorIs(t, m.Finish(), ErrInvalidTransition)
}

func TestMatch_Cancel(t *testing.T) {
	t.Run("cancellable while under half capacity", func(t *testing.T) {
		m := newMatch(MatchApplicable, 2, 10)

		err := m.Cancel("court flooded")

		require.NoError(t, err)
		assert.Equal(t, MatchCancelled, m.Status)
		require.NotNil(t, m.CancellationReason)
		assert.Equal(t, "court flooded", *m.CancellationReason)
	})

	t.Run("rejected at half capacity and above", func(t *testing.T) {
		m := newMatch(MatchCloseToDeadline, 5, 10)

		err := m.Cancel("rain")

		assert.ErrorIs(t, err, ErrCancellationNotAllowed)
		assert.Equal(t, MatchCloseToDeadline, m.Status)
	})

	t.Run("rejected from ongoing and terminal statuses", func(t *testing.T) {
		for _, status := range []MatchStatus{MatchOngoing, MatchEnd, MatchCancelled} {
			m := newMatch(status, 1, 10)

			assert.ErrorIs(t, m.Cancel("x"), ErrInvalidTransition, "status %s", status)
		}
	})
}

func TestMatch_ScheduledTimes(t *testing.T) {
	m := newMatch(MatchApplicable, 0, 10)

	assert.Equal(t, time.Date(2026, 6, 10, 18, 0, 0, 0, time.UTC), m.StartAt())
	assert.Equal(t, time.Date(2026, 6, 10, 20, 0, 0, 0, time.UTC), m.EndAt())
}
