package facilityservice

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weplay-team/WePlay-BookingService/internal/domain"
	"github.com/weplay-team/WePlay-BookingService/pkg/types"
)

func ts(s string) *types.TimeString {
	v := types.TimeString(s)
	return &v
}

func TestFacility_CourtByID(t *testing.T) {
	f := &Facility{
		ID:     1,
		Courts: []Court{{ID: 2, Name: "Корт 1"}, {ID: 3, Name: "Корт 2"}},
	}

	court, err := f.CourtByID(3)
	require.NoError(t, err)
	assert.Equal(t, "Корт 2", court.Name)

	_, err = f.CourtByID(99)
	assert.ErrorIs(t, err, ErrCourtNotFound)
}

func TestFacility_IsManagedBy(t *testing.T) {
	f := &Facility{ID: 1, ManagerIDs: []int64{42, 43}}

	assert.True(t, f.IsManagedBy(42))
	assert.True(t, f.IsManagedBy(43))
	assert.False(t, f.IsManagedBy(7))
}

func TestCourt_ToOperatingCalendar(t *testing.T) {
	t.Run("builds a calendar from the directory schedule", func(t *testing.T) {
		court := &Court{
			ID: 2,
			OperatingHours: []DayHours{
				{DayOfWeek: "Monday", OpenTime: ts("09:00"), CloseTime: ts("22:00")},
				{DayOfWeek: "friday", OpenTime: ts("10:00"), CloseTime: ts("00:00")},
				{DayOfWeek: "sunday", IsHoliday: true},
			},
		}

		calendar, err := court.ToOperatingCalendar()
		require.NoError(t, err)

		// 2026-06-08 понедельник
		window, err := calendar.HoursFor(time.Date(2026, 6, 8, 0, 0, 0, 0, time.UTC))
		require.NoError(t, err)
		assert.Equal(t, domain.DayWindow{OpenHour: 9, CloseHour: 22}, window)

		// закрытие в полночь нормализуется к концу дня
		window, err = calendar.HoursFor(time.Date(2026, 6, 12, 0, 0, 0, 0, time.UTC))
		require.NoError(t, err)
		assert.Equal(t, domain.DayWindow{OpenHour: 10, CloseHour: 24}, window)

		_, err = calendar.HoursFor(time.Date(2026, 6, 14, 0, 0, 0, 0, time.UTC))
		assert.ErrorIs(t, err, domain.ErrHoliday)
	})

	t.Run("unknown weekday is rejected", func(t *testing.T) {
		court := &Court{OperatingHours: []DayHours{
			{DayOfWeek: "someday", OpenTime: ts("09:00"), CloseTime: ts("22:00")},
		}}

		_, err := court.ToOperatingCalendar()

		assert.ErrorIs(t, err, ErrInvalidResponse)
	})

	t.Run("working day without times is rejected", func(t *testing.T) {
		court := &Court{OperatingHours: []DayHours{
			{DayOfWeek: "monday", OpenTime: ts("09:00")},
		}}

		_, err := court.ToOperatingCalendar()

		assert.ErrorIs(t, err, ErrInvalidResponse)
	})

	t.Run("holiday needs no times", func(t *testing.T) {
		court := &Court{OperatingHours: []DayHours{
			{DayOfWeek: "monday", IsHoliday: true},
		}}

		_, err := court.ToOperatingCalendar()

		assert.NoError(t, err)
	})
}
