package leave_match

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weplay-team/WePlay-BookingService/internal/domain"
	bookingStorage "github.com/weplay-team/WePlay-BookingService/internal/infra/storage/booking"
	matchStorage "github.com/weplay-team/WePlay-BookingService/internal/infra/storage/match"
)

type fakeMatchRepo struct {
	match   *domain.Match
	removed int
}

func (f *fakeMatchRepo) GetByID(_ context.Context, id int64) (*domain.Match, error) {
	if f.match == nil || f.match.ID != id {
		return nil, matchStorage.ErrMatchNotFound
	}
	copied := *f.match
	return &copied, nil
}

func (f *fakeMatchRepo) RemoveParticipant(_ context.Context, _ int64) error {
	f.removed++
	return nil
}

type fakeBookingRepo struct {
	participation *domain.Booking
	cancelled     bool
}

func (f *fakeBookingRepo) GetOccupyingByMatchAndUser(_ context.Context, _, _ int64) (*domain.Booking, error) {
	if f.participation == nil {
		return nil, bookingStorage.ErrBookingNotFound
	}
	copied := *f.participation
	return &copied, nil
}

func (f *fakeBookingRepo) Cancel(_ context.Context, _ int64, status domain.BookingStatus, _ string) error {
	f.cancelled = true
	f.participation.Status = status
	return nil
}

type fakePaymentGateway struct {
	refunds map[string]int64
	err     error
}

func (f *fakePaymentGateway) Refund(_ context.Context, ref string, amount int64) error {
	if f.err != nil {
		return f.err
	}
	if f.refunds == nil {
		f.refunds = make(map[string]int64)
	}
	f.refunds[ref] = amount
	return nil
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

var (
	matchDate = time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC) // матч в 18:00
	testNow   = time.Date(2026, 6, 9, 12, 0, 0, 0, time.UTC) // за 30 часов
)

func testMatch() *domain.Match {
	return &domain.Match{
		ID:                  5,
		FacilityID:          1,
		CourtID:             2,
		MatchDate:           matchDate,
		StartHour:           18,
		EndHour:             20,
		TeamCapacity:        10,
		CurrentParticipants: 4,
		EntryFee:            500,
		Status:              domain.MatchApplicable,
	}
}

func participation() *domain.Booking {
	matchID := int64(5)
	return &domain.Booking{
		ID:          33,
		UserID:      7,
		FacilityID:  1,
		CourtID:     2,
		Type:        domain.TypeMatchParticipation,
		MatchID:     &matchID,
		BookingDate: matchDate,
		StartHour:   18,
		EndHour:     20,
		Status:      domain.StatusConfirmed,
		PaidAmount:  500,
	}
}

type testEnv struct {
	matchRepo   *fakeMatchRepo
	bookingRepo *fakeBookingRepo
	gateway     *fakePaymentGateway
	uc          *UseCase
}

func newTestEnv(b *domain.Booking) *testEnv {
	matchRepo := &fakeMatchRepo{match: testMatch()}
	bookingRepo := &fakeBookingRepo{participation: b}
	gateway := &fakePaymentGateway{}
	uc := NewUseCase(matchRepo, bookingRepo, gateway, fakeTxManager{}, nopLogger{})
	uc.timeProvider = fixedTime{now: testNow}
	return &testEnv{matchRepo: matchRepo, bookingRepo: bookingRepo, gateway: gateway, uc: uc}
}

func TestLeaveMatch_Execute(t *testing.T) {
	t.Run("leaves a day before and gets 80 percent back", func(t *testing.T) {
		env := newTestEnv(participation())

		resp, err := env.uc.Execute(context.Background(), &Request{MatchID: 5, UserID: 7, Reason: "травма"})

		require.NoError(t, err)
		assert.Equal(t, int64(33), resp.BookingID)
		assert.Equal(t, int64(500), resp.PaidAmount)
		assert.Equal(t, int64(400), resp.RefundAmount)
		assert.Equal(t, domain.TierMatchDayBefore, resp.ReasonTier)

		assert.True(t, env.bookingRepo.cancelled)
		assert.Equal(t, domain.StatusCancelledByUser, env.bookingRepo.participation.Status)
		assert.Equal(t, 1, env.matchRepo.removed)
		assert.Equal(t, int64(400), env.gateway.refunds["booking-33"])
	})

	t.Run("same day leave gets 20 percent", func(t *testing.T) {
		env := newTestEnv(participation())
		env.uc.timeProvider = fixedTime{now: matchDate.Add(15 * time.Hour)} // за 3 часа

		resp, err := env.uc.Execute(context.Background(), &Request{MatchID: 5, UserID: 7})

		require.NoError(t, err)
		assert.Equal(t, int64(100), resp.RefundAmount)
		assert.Equal(t, domain.TierMatchSameDay, resp.ReasonTier)
	})

	t.Run("too late leave frees the seat without a refund", func(t *testing.T) {
		env := newTestEnv(participation())
		env.uc.timeProvider = fixedTime{now: matchDate.Add(17*time.Hour + 30*time.Minute)} // за 30 минут

		resp, err := env.uc.Execute(context.Background(), &Request{MatchID: 5, UserID: 7})

		require.NoError(t, err)
		assert.Equal(t, int64(0), resp.RefundAmount)
		assert.Equal(t, domain.TierNoRefund, resp.ReasonTier)
		assert.Equal(t, 1, env.matchRepo.removed)
		assert.Empty(t, env.gateway.refunds)
	})

	t.Run("gateway failure aborts the leave", func(t *testing.T) {
		env := newTestEnv(participation())
		env.gateway.err = errors.New("gateway down")

		_, err := env.uc.Execute(context.Background(), &Request{MatchID: 5, UserID: 7})

		assert.ErrorIs(t, err, ErrRefundGateway)
	})

	t.Run("non-participant", func(t *testing.T) {
		env := newTestEnv(nil)

		_, err := env.uc.Execute(context.Background(), &Request{MatchID: 5, UserID: 7})

		assert.ErrorIs(t, err, ErrNotParticipant)
	})

	t.Run("completed participation cannot leave", func(t *testing.T) {
		b := participation()
		b.Status = domain.StatusCompleted
		env := newTestEnv(b)

		_, err := env.uc.Execute(context.Background(), &Request{MatchID: 5, UserID: 7})

		assert.ErrorIs(t, err, ErrCannotLeave)
	})

	t.Run("unknown match", func(t *testing.T) {
		env := newTestEnv(participation())
		env.matchRepo.match = nil

		_, err := env.uc.Execute(context.Background(), &Request{MatchID: 5, UserID: 7})

		assert.ErrorIs(t, err, ErrMatchNotFound)
	})

	t.Run("validation", func(t *testing.T) {
		env := newTestEnv(participation())

		_, err := env.uc.Execute(context.Background(), &Request{MatchID: 0, UserID: 7})
		assert.ErrorIs(t, err, ErrInvalidInput)

		_, err = env.uc.Execute(context.Background(), &Request{MatchID: 5, UserID: 0})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}
