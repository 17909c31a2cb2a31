package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weplay-team/WePlay-BookingService/internal/domain"
	bookingRepo "github.com/weplay-team/WePlay-BookingService/internal/infra/storage/booking"
	"github.com/weplay-team/WePlay-BookingService/internal/integrations/facilityservice"
	"github.com/weplay-team/WePlay-BookingService/pkg/types"
)

type fakeBookingRepo struct {
	bookings  []*domain.Booking
	createErr error
	nextID    int64
	created   *domain.Booking
}

func (f *fakeBookingRepo) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.nextID++
	b.ID = f.nextID
	f.created = b
	f.bookings = append(f.bookings, b)
	return b, nil
}

func (f *fakeBookingRepo) GetForCourtDate(_ context.Context, _ domain.CourtDayFilter) ([]*domain.Booking, error) {
	return f.bookings, nil
}

type fakeFacilityClient struct {
	facility *facilityservice.Facility
	err      error
}

func (f *fakeFacilityClient) GetFacility(_ context.Context, _ int64) (*facilityservice.Facility, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.facility, nil
}

// fakeTxManager выполняет замыкание напрямую, без базы
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

func ts(s string) *types.TimeString {
	v := types.TimeString(s)
	return &v
}

func testFacility() *facilityservice.Facility {
	var days []facilityservice.DayHours
	for _, d := range []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday"} {
		days = append(days, facilityservice.DayHours{DayOfWeek: d, OpenTime: ts("09:00"), CloseTime: ts("22:00")})
	}
	days = append(days, facilityservice.DayHours{DayOfWeek: "sunday", IsHoliday: true})
	return &facilityservice.Facility{
		ID:   1,
		Name: "Сетка и Мяч",
		Courts: []facilityservice.Court{
			{ID: 2, Name: "Корт 1", HourlyRate: 1500, OperatingHours: days},
		},
	}
}

// 2026-06-08 понедельник; "сейчас" - утро предыдущей пятницы
var (
	bookingDate = time.Date(2026, 6, 8, 0, 0, 0, 0, time.UTC)
	testNow     = time.Date(2026, 6, 5, 10, 30, 0, 0, time.UTC)
)

func validRequest() *Request {
	return &Request{
		UserID:     7,
		FacilityID: 1,
		CourtID:    2,
		Date:       bookingDate,
		StartHour:  10,
		EndHour:    12,
	}
}

func newTestUseCase(repo *fakeBookingRepo, client *fakeFacilityClient) *UseCase {
	uc := NewUseCase(repo, client, fakeTxManager{}, nopLogger{})
	uc.timeProvider = fixedTime{now: testNow}
	return uc
}

func TestCreateBooking_Execute(t *testing.T) {
	t.Run("books a free slot and charges per hour", func(t *testing.T) {
		repo := &fakeBookingRepo{}
		uc := newTestUseCase(repo, &fakeFacilityClient{facility: testFacility()})

		resp, err := uc.Execute(context.Background(), validRequest())

		require.NoError(t, err)
		assert.Equal(t, int64(1), resp.ID)
		assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
		assert.Equal(t, int64(3000), resp.PaidAmount) // 2 часа по 1500
		assert.Equal(t, "Сетка и Мяч", resp.FacilityName)
		assert.Equal(t, "Корт 1", resp.CourtName)

		require.NotNil(t, repo.created)
		assert.Equal(t, domain.TypeFacilityReservation, repo.created.Type)
		assert.Nil(t, repo.created.MatchID)
	})

	t.Run("occupied hour rejects the booking", func(t *testing.T) {
		repo := &fakeBookingRepo{bookings: []*domain.Booking{
			{ID: 50, Status: domain.StatusConfirmed, StartHour: 11, EndHour: 13},
		}}
		uc := newTestUseCase(repo, &fakeFacilityClient{facility: testFacility()})

		_, err := uc.Execute(context.Background(), validRequest())

		assert.ErrorIs(t, err, ErrSlotAlreadyBooked)
	})

	t.Run("cancelled booking does not block the slot", func(t *testing.T) {
		repo := &fakeBookingRepo{nextID: 50, bookings: []*domain.Booking{
			{ID: 50, Status: domain.StatusCancelledByUser, StartHour: 11, EndHour: 13},
		}}
		uc := newTestUseCase(repo, &fakeFacilityClient{facility: testFacility()})

		resp, err := uc.Execute(context.Background(), validRequest())

		require.NoError(t, err)
		assert.Equal(t, int64(51), resp.ID)
	})

	t.Run("unique index violation maps to slot conflict", func(t *testing.T) {
		// гонка: журнал пуст, но вставка бьётся об индекс
		repo := &fakeBookingRepo{createErr: bookingRepo.ErrSlotAlreadyBooked}
		uc := newTestUseCase(repo, &fakeFacilityClient{facility: testFacility()})

		_, err := uc.Execute(context.Background(), validRequest())

		assert.ErrorIs(t, err, ErrSlotAlreadyBooked)
	})

	t.Run("holiday", func(t *testing.T) {
		uc := newTestUseCase(&fakeBookingRepo{}, &fakeFacilityClient{facility: testFacility()})
		req := validRequest()
		req.Date = bookingDate.AddDate(0, 0, 6) // воскресенье

		_, err := uc.Execute(context.Background(), req)

		assert.ErrorIs(t, err, ErrFacilityClosed)
	})

	t.Run("hours outside the operating window", func(t *testing.T) {
		uc := newTestUseCase(&fakeBookingRepo{}, &fakeFacilityClient{facility: testFacility()})
		req := validRequest()
		req.StartHour, req.EndHour = 8, 10

		_, err := uc.Execute(context.Background(), req)

		assert.ErrorIs(t, err, ErrOutsideOperatingHours)
	})

	t.Run("date in the past", func(t *testing.T) {
		uc := newTestUseCase(&fakeBookingRepo{}, &fakeFacilityClient{facility: testFacility()})
		req := validRequest()
		req.Date = testNow.AddDate(0, 0, -1)

		_, err := uc.Execute(context.Background(), req)

		assert.ErrorIs(t, err, ErrInvalidDate)
	})

	t.Run("same day started hour is too late", func(t *testing.T) {
		uc := newTestUseCase(&fakeBookingRepo{}, &fakeFacilityClient{facility: testFacility()})
		req := validRequest()
		req.Date = testNow // пятница, сейчас 10:30
		req.StartHour, req.EndHour = 10, 11

		_, err := uc.Execute(context.Background(), req)

		assert.ErrorIs(t, err, ErrTooLateToBook)
	})

	t.Run("same day future hour is fine", func(t *testing.T) {
		uc := newTestUseCase(&fakeBookingRepo{}, &fakeFacilityClient{facility: testFacility()})
		req := validRequest()
		req.Date = testNow
		req.StartHour, req.EndHour = 11, 12

		_, err := uc.Execute(context.Background(), req)

		assert.NoError(t, err)
	})

	t.Run("unknown facility", func(t *testing.T) {
		uc := newTestUseCase(&fakeBookingRepo{}, &fakeFacilityClient{err: facilityservice.ErrFacilityNotFound})

		_, err := uc.Execute(context.Background(), validRequest())

		assert.ErrorIs(t, err, ErrFacilityNotFound)
	})

	t.Run("unknown court", func(t *testing.T) {
		uc := newTestUseCase(&fakeBookingRepo{}, &fakeFacilityClient{facility: testFacility()})
		req := validRequest()
		req.CourtID = 99

		_, err := uc.Execute(context.Background(), req)

		assert.ErrorIs(t, err, ErrCourtNotFound)
	})

	t.Run("validation", func(t *testing.T) {
		uc := newTestUseCase(&fakeBookingRepo{}, &fakeFacilityClient{facility: testFacility()})

		longNotes := make([]byte, domain.MaxNotesLength+1)
		for i := range longNotes {
			longNotes[i] = 'a'
		}
		notes := string(longNotes)

		tests := []struct {
			name   string
			mutate func(*Request)
		}{
			{name: "zero user id", mutate: func(r *Request) { r.UserID = 0 }},
			{name: "inverted hours", mutate: func(r *Request) { r.StartHour, r.EndHour = 12, 10 }},
			{name: "hour above midnight", mutate: func(r *Request) { r.EndHour = 25 }},
			{name: "negative start hour", mutate: func(r *Request) { r.StartHour = -1 }},
			{name: "too long notes", mutate: func(r *Request) { r.Notes = &notes }},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				req := validRequest()
				tt.mutate(req)

				_, err := uc.Execute(context.Background(), req)

				assert.ErrorIs(t, err, ErrInvalidInput)
			})
		}
	})
}
