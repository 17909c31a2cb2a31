package cancel_match

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weplay-team/WePlay-BookingService/internal/domain"
	"github.com/weplay-team/WePlay-BookingService/internal/integrations/facilityservice"
)

type fakeMatchRepo struct {
	match     *domain.Match
	cancelled bool
}

func (f *fakeMatchRepo) GetByID(_ context.Context, id int64) (*domain.Match, error) {
	copied := *f.match
	return &copied, nil
}

func (f *fakeMatchRepo) Cancel(_ context.Context, _ int64, reason string) error {
	f.cancelled = true
	f.match.Status = domain.MatchCancelled
	f.match.CancellationReason = &reason
	return nil
}

type fakeBookingRepo struct {
	occupying []*domain.Booking
	cancelled map[int64]domain.BookingStatus
}

func (f *fakeBookingRepo) GetOccupyingByMatchID(_ context.Context, _ int64) ([]*domain.Booking, error) {
	return f.occupying, nil
}

func (f *fakeBookingRepo) Cancel(_ context.Context, id int64, status domain.BookingStatus, _ string) error {
	if f.cancelled == nil {
		f.cancelled = make(map[int64]domain.BookingStatus)
	}
	f.cancelled[id] = status
	return nil
}

type fakeFacilityClient struct {
	facility *facilityservice.Facility
}

func (f *fakeFacilityClient) GetFacility(_ context.Context, _ int64) (*facilityservice.Facility, error) {
	return f.facility, nil
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

const managerID = int64(42)

var testNow = time.Date(2026, 6, 9, 12, 0, 0, 0, time.UTC)

func testMatch() *domain.Match {
	return &domain.Match{
		ID:                  5,
		FacilityID:          1,
		CourtID:             2,
		MatchDate:           time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC),
		StartHour:           18,
		EndHour:             20,
		TeamCapacity:        10,
		CurrentParticipants: 2,
		EntryFee:            500,
		Status:              domain.MatchApplicable,
	}
}

// журнал матча: запись-держатель слота (без оплаты) и два оплаченных участия
func matchLedger() []*domain.Booking {
	return []*domain.Booking{
		{ID: 10, Type: domain.TypeFacilityReservation, PaidAmount: 0, Status: domain.StatusConfirmed},
		{ID: 11, Type: domain.TypeMatchParticipation, PaidAmount: 500, Status: domain.StatusConfirmed},
		{ID: 12, Type: domain.TypeMatchParticipation, PaidAmount: 500, Status: domain.StatusConfirmed},
	}
}

type testEnv struct {
	matchRepo   *fakeMatchRepo
	bookingRepo *fakeBookingRepo
	gateway     *fakePaymentGateway
	uc          *UseCase
}

func newTestEnv(m *domain.Match, ledger []*domain.Booking) *testEnv {
	matchRepo := &fakeMatchRepo{match: m}
	bookingRepo := &fakeBookingRepo{occupying: ledger}
	gateway := &fakePaymentGateway{}
	facility := &facilityservice.Facility{ID: 1, Name: "Сетка и Мяч", ManagerIDs: []int64{managerID}}
	uc := NewUseCase(matchRepo, bookingRepo, &fakeFacilityClient{facility: facility}, gateway, fakeTxManager{}, nopLogger{})
	uc.timeProvider = fixedTime{now: testNow}
	return &testEnv{matchRepo: matchRepo, bookingRepo: bookingRepo, gateway: gateway, uc: uc}
}

func TestCancelMatch_Execute(t *testing.T) {
	t.Run("cancels the match and fully refunds every participant", func(t *testing.T) {
		env := newTestEnv(testMatch(), matchLedger())

		resp, err := env.uc.Execute(context.Background(), &Request{MatchID: 5, ActorID: managerID, Reason: "корт затоплен"})

		require.NoError(t, err)
		assert.Equal(t, domain.MatchCancelled, resp.Status)
		assert.Equal(t, 2, resp.ParticipantsRefunded)
		assert.Equal(t, int64(1000), resp.TotalRefunded)
		assert.True(t, env.matchRepo.cancelled)

		// все занимающие записи отменены площадкой, включая держатель слота
		assert.Len(t, env.bookingRepo.cancelled, 3)
		for id, status := range env.bookingRepo.cancelled {
			assert.Equal(t, domain.StatusCancelledByFacility, status, "booking %d", id)
		}

		// возврат полный, без снижающих коэффициентов
		assert.Equal(t, int64(500), env.gateway.refunds["booking-11"])
		assert.Equal(t, int64(500), env.gateway.refunds["booking-12"])
		assert.NotContains(t, env.gateway.refunds, "booking-10")
	})

	t.Run("half capacity locks the cancellation", func(t *testing.T) {
		m := testMatch()
		m.CurrentParticipants = 5
		env := newTestEnv(m, matchLedger())

		_, err := env.uc.Execute(context.Background(), &Request{MatchID: 5, ActorID: managerID, Reason: "x"})

		assert.ErrorIs(t, err, ErrCancellationNotAllowed)
		assert.False(t, env.matchRepo.cancelled)
	})

	t.Run("ongoing match cannot be cancelled", func(t *testing.T) {
		m := testMatch()
		m.Status = domain.MatchOngoing
		m.CurrentParticipants = 2
		env := newTestEnv(m, matchLedger())

		_, err := env.uc.Execute(context.Background(), &Request{MatchID: 5, ActorID: managerID, Reason: "x"})

		assert.ErrorIs(t, err, ErrInvalidStatus)
	})

	t.Run("non-manager is denied", func(t *testing.T) {
		env := newTestEnv(testMatch(), matchLedger())

		_, err := env.uc.Execute(context.Background(), &Request{MatchID: 5, ActorID: 999, Reason: "x"})

		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("gateway failure aborts the whole cancellation", func(t *testing.T) {
		env := newTestEnv(testMatch(), matchLedger())
		env.gateway.err = errors.New("gateway down")

		_, err := env.uc.Execute(context.Background(), &Request{MatchID: 5, ActorID: managerID, Reason: "x"})

		assert.ErrorIs(t, err, ErrRefundGateway)
	})

	t.Run("validation", func(t *testing.T) {
		env := newTestEnv(testMatch(), matchLedger())

		_, err := env.uc.Execute(context.Background(), &Request{MatchID: 0, ActorID: managerID})
		assert.ErrorIs(t, err, ErrInvalidInput)

		_, err = env.uc.Execute(context.Background(), &Request{MatchID: 5, ActorID: 0})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}
