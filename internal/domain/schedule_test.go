package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOperatingHours_Validate(t *testing.T) {
	tests := []struct {
		name    string
		hours   OperatingHours
		wantErr bool
	}{
		{
			name:  "regular working day",
			hours: OperatingHours{DayOfWeek: time.Monday, OpenHour: 9, CloseHour: 22},
		},
		{
			name:  "midnight close is normalized",
			hours: OperatingHours{DayOfWeek: time.Friday, OpenHour: 10, CloseHour: 0},
		},
		{
			name:  "holiday skips hour checks",
			hours: OperatingHours{DayOfWeek: time.Sunday, IsHoliday: true},
		},
		{
			name:    "open after close",
			hours:   OperatingHours{DayOfWeek: time.Monday, OpenHour: 20, CloseHour: 9},
			wantErr: true,
		},
		{
			name:    "open equals close",
			hours:   OperatingHours{DayOfWeek: time.Monday, OpenHour: 9, CloseHour: 9},
			wantErr: true,
		},
		{
			name:    "open hour out of range",
			hours:   OperatingHours{DayOfWeek: time.Monday, OpenHour: 24, CloseHour: 0},
			wantErr: true,
		},
		{
			name:    "negative open hour",
			hours:   OperatingHours{DayOfWeek: time.Monday, OpenHour: -1, CloseHour: 10},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.hours.Validate()

			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidOperatingHours)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNewOperatingCalendar(t *testing.T) {
	t.Run("builds from valid entries", func(t *testing.T) {
		calendar, err := NewOperatingCalendar([]OperatingHours{
			{DayOfWeek: time.Monday, OpenHour: 9, CloseHour: 22},
			{DayOfWeek: time.Sunday, IsHoliday: true},
		})

		require.NoError(t, err)
		require.NotNil(t, calendar)
	})

	t.Run("rejects duplicate weekdays", func(t *testing.T) {
		_, err := NewOperatingCalendar([]OperatingHours{
			{DayOfWeek: time.Monday, OpenHour: 9, CloseHour: 22},
			{DayOfWeek: time.Monday, OpenHour: 10, CloseHour: 20},
		})

		assert.ErrorIs(t, err, ErrInvalidOperatingHours)
	})

	t.Run("rejects invalid entries", func(t *testing.T) {
		_, err := NewOperatingCalendar([]OperatingHours{
			{DayOfWeek: time.Monday, OpenHour: 22, CloseHour: 9},
		})

		assert.ErrorIs(t, err, ErrInvalidOperatingHours)
	})
}

func TestOperatingCalendar_HoursFor(t *testing.T) {
	calendar, err := NewOperatingCalendar([]OperatingHours{
		{DayOfWeek: time.Monday, OpenHour: 9, CloseHour: 22},
		{DayOfWeek: time.Friday, OpenHour: 10, CloseHour: 0},
		{DayOfWeek: time.Sunday, IsHoliday: true},
	})
	require.NoError(t, err)

	// 2026-06-08 понедельник, 2026-06-12 пятница, 2026-06-14 воскресенье
	monday := time.Date(2026, 6, 8, 0, 0, 0, 0, time.UTC)
	tuesday := monday.AddDate(0, 0, 1)
	friday := monday.AddDate(0, 0, 4)
	sunday := monday.AddDate(0, 0, 6)

	t.Run("configured weekday returns its window", func(t *testing.T) {
		window, err := calendar.HoursFor(monday)

		require.NoError(t, err)
		assert.Equal(t, DayWindow{OpenHour: 9, CloseHour: 22}, window)
	})

	t.Run("midnight close becomes end of day", func(t *testing.T) {
		window, err := calendar.HoursFor(friday)

		require.NoError(t, err)
		assert.Equal(t, DayWindow{OpenHour: 10, CloseHour: 24}, window)
	})

	t.Run("holiday", func(t *testing.T) {
		_, err := calendar.HoursFor(sunday)

		assert.ErrorIs(t, err, ErrHoliday)
	})

	t.Run("weekday without an entry", func(t *testing.T) {
		_, err := calendar.HoursFor(tuesday)

		assert.ErrorIs(t, err, ErrNotConfigured)
	})
}
