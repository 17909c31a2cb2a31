package get_available_slots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weplay-team/WePlay-BookingService/internal/domain"
	"github.com/weplay-team/WePlay-BookingService/internal/integrations/facilityservice"
	"github.com/weplay-team/WePlay-BookingService/pkg/types"
)

type fakeBookingRepo struct {
	bookings []*domain.Booking
	err      error
}

func (f *fakeBookingRepo) GetForCourtDate(_ context.Context, _ domain.CourtDayFilter) ([]*domain.Booking, error) {
	if f.err != nil {
		return nil, f.err
	}
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

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func ts(s string) *types.TimeString {
	v := types.TimeString(s)
	return &v
}

// testFacility площадка с одним кортом: пн-пт 09:00-18:00, воскресенье выходной
func testFacility() *facilityservice.Facility {
	days := []facilityservice.DayHours{
		{DayOfWeek: "monday", OpenTime: ts("09:00"), CloseTime: ts("18:00")},
		{DayOfWeek: "tuesday", OpenTime: ts("09:00"), CloseTime: ts("18:00")},
		{DayOfWeek: "wednesday", OpenTime: ts("09:00"), CloseTime: ts("18:00")},
		{DayOfWeek: "thursday", OpenTime: ts("09:00"), CloseTime: ts("18:00")},
		{DayOfWeek: "friday", OpenTime: ts("09:00"), CloseTime: ts("18:00")},
		{DayOfWeek: "sunday", IsHoliday: true},
	}
	return &facilityservice.Facility{
		ID:   1,
		Name: "Сетка и Мяч",
		Courts: []facilityservice.Court{
			{ID: 2, Name: "Корт 1", HourlyRate: 1500, OperatingHours: days},
		},
	}
}

// 2026-06-08 понедельник
var monday = time.Date(2026, 6, 8, 0, 0, 0, 0, time.UTC)

func TestGetAvailableSlots_Execute(t *testing.T) {
	t.Run("free day returns the whole window ordered", func(t *testing.T) {
		uc := NewUseCase(&fakeBookingRepo{}, &fakeFacilityClient{facility: testFacility()}, nopLogger{})

		resp, err := uc.Execute(context.Background(), &Request{FacilityID: 1, CourtID: 2, Date: monday})

		require.NoError(t, err)
		require.Len(t, resp.Slots, 9)
		assert.Equal(t, 9, resp.Slots[0].StartHour)
		assert.Equal(t, types.TimeString("09:00"), resp.Slots[0].StartTime)
		assert.Equal(t, 17, resp.Slots[8].StartHour)
		for i := 1; i < len(resp.Slots); i++ {
			assert.Greater(t, resp.Slots[i].StartHour, resp.Slots[i-1].StartHour)
		}
	})

	t.Run("booked hours are excluded", func(t *testing.T) {
		repo := &fakeBookingRepo{bookings: []*domain.Booking{
			{Status: domain.StatusConfirmed, StartHour: 10, EndHour: 12},
			{Status: domain.StatusPending, StartHour: 15, EndHour: 16},
		}}
		uc := NewUseCase(repo, &fakeFacilityClient{facility: testFacility()}, nopLogger{})

		resp, err := uc.Execute(context.Background(), &Request{FacilityID: 1, CourtID: 2, Date: monday})

		require.NoError(t, err)
		starts := make([]int, 0, len(resp.Slots))
		for _, s := range resp.Slots {
			starts = append(starts, s.StartHour)
		}
		assert.Equal(t, []int{9, 12, 13, 14, 16, 17}, starts)
	})

	t.Run("holiday yields empty slots without error", func(t *testing.T) {
		sunday := monday.AddDate(0, 0, 6)
		uc := NewUseCase(&fakeBookingRepo{}, &fakeFacilityClient{facility: testFacility()}, nopLogger{})

		resp, err := uc.Execute(context.Background(), &Request{FacilityID: 1, CourtID: 2, Date: sunday})

		require.NoError(t, err)
		assert.Empty(t, resp.Slots)
		assert.NotNil(t, resp.Slots)
	})

	t.Run("weekday without schedule yields empty slots", func(t *testing.T) {
		saturday := monday.AddDate(0, 0, 5)
		uc := NewUseCase(&fakeBookingRepo{}, &fakeFacilityClient{facility: testFacility()}, nopLogger{})

		resp, err := uc.Execute(context.Background(), &Request{FacilityID: 1, CourtID: 2, Date: saturday})

		require.NoError(t, err)
		assert.Empty(t, resp.Slots)
	})

	t.Run("repeated reads do not change the result", func(t *testing.T) {
		repo := &fakeBookingRepo{bookings: []*domain.Booking{
			{Status: domain.StatusConfirmed, StartHour: 11, EndHour: 13},
		}}
		uc := NewUseCase(repo, &fakeFacilityClient{facility: testFacility()}, nopLogger{})
		req := &Request{FacilityID: 1, CourtID: 2, Date: monday}

		first, err := uc.Execute(context.Background(), req)
		require.NoError(t, err)
		second, err := uc.Execute(context.Background(), req)
		require.NoError(t, err)

		assert.Equal(t, first.Slots, second.Slots)
	})

	t.Run("unknown facility", func(t *testing.T) {
		uc := NewUseCase(&fakeBookingRepo{}, &fakeFacilityClient{err: facilityservice.ErrFacilityNotFound}, nopLogger{})

		_, err := uc.Execute(context.Background(), &Request{FacilityID: 99, CourtID: 2, Date: monday})

		assert.ErrorIs(t, err, ErrFacilityNotFound)
	})

	t.Run("unknown court", func(t *testing.T) {
		uc := NewUseCase(&fakeBookingRepo{}, &fakeFacilityClient{facility: testFacility()}, nopLogger{})

		_, err := uc.Execute(context.Background(), &Request{FacilityID: 1, CourtID: 99, Date: monday})

		assert.ErrorIs(t, err, ErrCourtNotFound)
	})

	t.Run("repository failure is internal", func(t *testing.T) {
		repo := &fakeBookingRepo{err: errors.New("connection reset")}
		uc := NewUseCase(repo, &fakeFacilityClient{facility: testFacility()}, nopLogger{})

		_, err := uc.Execute(context.Background(), &Request{FacilityID: 1, CourtID: 2, Date: monday})

		assert.ErrorIs(t, err, ErrInternal)
	})

	t.Run("validation", func(t *testing.T) {
		uc := NewUseCase(&fakeBookingRepo{}, &fakeFacilityClient{facility: testFacility()}, nopLogger{})

		tests := []struct {
			name string
			req  *Request
		}{
			{name: "zero facility id", req: &Request{CourtID: 2, Date: monday}},
			{name: "zero court id", req: &Request{FacilityID: 1, Date: monday}},
			{name: "zero date", req: &Request{FacilityID: 1, CourtID: 2}},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := uc.Execute(context.Background(), tt.req)

				assert.ErrorIs(t, err, ErrInvalidInput)
			})
		}
	})
}
