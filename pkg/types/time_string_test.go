package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeString(t *testing.T) {
	t.Run("from time", func(t *testing.T) {
		ts := NewTimeString(time.Date(2026, 6, 8, 9, 30, 45, 0, time.UTC))

		assert.Equal(t, "09:30", ts.String())
	})

	t.Run("from string with validation", func(t *testing.T) {
		ts, err := NewTimeStringFromString("18:45")
		require.NoError(t, err)
		assert.Equal(t, "18:45", ts.String())

		_, err = NewTimeStringFromString("25:00")
		assert.Error(t, err)

		_, err = NewTimeStringFromString("9:00:00")
		assert.Error(t, err)
	})

	t.Run("from hour", func(t *testing.T) {
		assert.Equal(t, TimeString("09:00"), FromHour(9))
		assert.Equal(t, TimeString("23:00"), FromHour(23))
		// час 24 - это полночь следующего дня
		assert.Equal(t, TimeString("00:00"), FromHour(24))
	})

	t.Run("components", func(t *testing.T) {
		ts := TimeString("18:45")

		hour, err := ts.Hour()
		require.NoError(t, err)
		assert.Equal(t, 18, hour)

		minute, err := ts.Minute()
		require.NoError(t, err)
		assert.Equal(t, 45, minute)
	})

	t.Run("ordering", func(t *testing.T) {
		assert.True(t, TimeString("09:00").IsBefore(TimeString("18:00")))
		assert.False(t, TimeString("18:00").IsBefore(TimeString("09:00")))
		assert.False(t, TimeString("09:00").IsBefore(TimeString("09:00")))
	})

	t.Run("zero value", func(t *testing.T) {
		assert.True(t, TimeString("").IsZero())
		assert.False(t, TimeString("09:00").IsZero())
	})
}
