package transition_match

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weplay-team/WePlay-BookingService/internal/domain"
	matchStorage "github.com/weplay-team/WePlay-BookingService/internal/infra/storage/match"
	"github.com/weplay-team/WePlay-BookingService/internal/integrations/facilityservice"
)

type fakeMatchRepo struct {
	match     *domain.Match
	newStatus domain.MatchStatus
}

func (f *fakeMatchRepo) GetByID(_ context.Context, id int64) (*domain.Match, error) {
	if f.match == nil || f.match.ID != id {
		return nil, matchStorage.ErrMatchNotFound
	}
	copied := *f.match
	return &copied, nil
}

func (f *fakeMatchRepo) UpdateStatus(_ context.Context, _ int64, status domain.MatchStatus) error {
	f.newStatus = status
	return nil
}

type fakeFacilityClient struct {
	facility *facilityservice.Facility
}

func (f *fakeFacilityClient) GetFacility(_ context.Context, _ int64) (*facilityservice.Facility, error) {
	return f.facility, nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

const managerID = int64(42)

// матч 2026-06-10 18:00-20:00
var matchDate = time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC)

func testMatch(status domain.MatchStatus, participants int) *domain.Match {
	return &domain.Match{
		ID:                  5,
		FacilityID:          1,
		CourtID:             2,
		MatchDate:           matchDate,
		StartHour:           18,
		EndHour:             20,
		TeamCapacity:        10,
		CurrentParticipants: participants,
		Status:              status,
	}
}

func newTestUseCase(repo *fakeMatchRepo, now time.Time) *UseCase {
	facility := &facilityservice.Facility{ID: 1, ManagerIDs: []int64{managerID}}
	uc := NewUseCase(repo, &fakeFacilityClient{facility: facility}, fakeTxManager{}, nopLogger{})
	uc.timeProvider = fixedTime{now: now}
	return uc
}

func TestTransitionMatch_Execute(t *testing.T) {
	dayBefore := matchDate.Add(-10 * time.Hour)

	t.Run("close", func(t *testing.T) {
		repo := &fakeMatchRepo{match: testMatch(domain.MatchApplicable, 5)}
		uc := newTestUseCase(repo, dayBefore)

		resp, err := uc.Execute(context.Background(), &Request{MatchID: 5, ActorID: managerID, Action: ActionClose})

		require.NoError(t, err)
		assert.Equal(t, domain.MatchCloseToDeadline, resp.Status)
		assert.Equal(t, domain.MatchCloseToDeadline, repo.newStatus)
	})

	t.Run("finish", func(t *testing.T) {
		repo := &fakeMatchRepo{match: testMatch(domain.MatchCloseToDeadline, 6)}
		uc := newTestUseCase(repo, dayBefore)

		resp, err := uc.Execute(context.Background(), &Request{MatchID: 5, ActorID: managerID, Action: ActionFinish})

		require.NoError(t, err)
		assert.Equal(t, domain.MatchFinish, resp.Status)
	})

	t.Run("reopen", func(t *testing.T) {
		repo := &fakeMatchRepo{match: testMatch(domain.MatchFinish, 6)}
		uc := newTestUseCase(repo, dayBefore)

		resp, err := uc.Execute(context.Background(), &Request{MatchID: 5, ActorID: managerID, Action: ActionReopen})

		require.NoError(t, err)
		assert.Equal(t, domain.MatchCloseToDeadline, resp.Status)
	})

	t.Run("start before the scheduled time is too early", func(t *testing.T) {
		repo := &fakeMatchRepo{match: testMatch(domain.MatchFinish, 6)}
		uc := newTestUseCase(repo, matchDate.Add(17*time.Hour+59*time.Minute))

		_, err := uc.Execute(context.Background(), &Request{MatchID: 5, ActorID: managerID, Action: ActionStart})

		assert.ErrorIs(t, err, ErrTooEarly)
	})

	t.Run("start at the scheduled time", func(t *testing.T) {
		repo := &fakeMatchRepo{match: testMatch(domain.MatchFinish, 6)}
		uc := newTestUseCase(repo, matchDate.Add(18*time.Hour))

		resp, err := uc.Execute(context.Background(), &Request{MatchID: 5, ActorID: managerID, Action: ActionStart})

		require.NoError(t, err)
		assert.Equal(t, domain.MatchOngoing, resp.Status)
	})

	t.Run("end before the scheduled end is too early", func(t *testing.T) {
		repo := &fakeMatchRepo{match: testMatch(domain.MatchOngoing, 6)}
		uc := newTestUseCase(repo, matchDate.Add(19*time.Hour))

		_, err := uc.Execute(context.Background(), &Request{MatchID: 5, ActorID: managerID, Action: ActionEnd})

		assert.ErrorIs(t, err, ErrTooEarly)
	})

	t.Run("end after the scheduled end", func(t *testing.T) {
		repo := &fakeMatchRepo{match: testMatch(domain.MatchOngoing, 6)}
		uc := newTestUseCase(repo, matchDate.Add(20*time.Hour))

		resp, err := uc.Execute(context.Background(), &Request{MatchID: 5, ActorID: managerID, Action: ActionEnd})

		require.NoError(t, err)
		assert.Equal(t, domain.MatchEnd, resp.Status)
	})

	t.Run("close under half capacity is rejected", func(t *testing.T) {
		repo := &fakeMatchRepo{match: testMatch(domain.MatchApplicable, 2)}
		uc := newTestUseCase(repo, dayBefore)

		_, err := uc.Execute(context.Background(), &Request{MatchID: 5, ActorID: managerID, Action: ActionClose})

		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("start from a recruiting status is rejected", func(t *testing.T) {
		repo := &fakeMatchRepo{match: testMatch(domain.MatchApplicable, 6)}
		uc := newTestUseCase(repo, matchDate.Add(18*time.Hour))

		_, err := uc.Execute(context.Background(), &Request{MatchID: 5, ActorID: managerID, Action: ActionStart})

		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("unknown action", func(t *testing.T) {
		repo := &fakeMatchRepo{match: testMatch(domain.MatchApplicable, 6)}
		uc := newTestUseCase(repo, dayBefore)

		_, err := uc.Execute(context.Background(), &Request{MatchID: 5, ActorID: managerID, Action: "promote"})

		assert.ErrorIs(t, err, ErrUnknownAction)
	})

	t.Run("non-manager is denied", func(t *testing.T) {
		repo := &fakeMatchRepo{match: testMatch(domain.MatchApplicable, 6)}
		uc := newTestUseCase(repo, dayBefore)

		_, err := uc.Execute(context.Background(), &Request{MatchID: 5, ActorID: 999, Action: ActionClose})

		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("unknown match", func(t *testing.T) {
		repo := &fakeMatchRepo{}
		uc := newTestUseCase(repo, dayBefore)

		_, err := uc.Execute(context.Background(), &Request{MatchID: 5, ActorID: managerID, Action: ActionClose})

		assert.ErrorIs(t, err, ErrMatchNotFound)
	})
}
