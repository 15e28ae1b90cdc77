//go:build unit

package schedule_test

import (
	"errors"
	"testing"
	"time"

	"guideway/internal/domain/schedule"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeekday(t *testing.T) {
	t.Run("valid range", func(t *testing.T) {
		for n := 0; n <= 6; n++ {
			_, err := schedule.NewWeekday(n)
			assert.NoError(t, err, "weekday %d", n)
		}
	})

	t.Run("out of range", func(t *testing.T) {
		for _, n := range []int{-1, 7, 100} {
			_, err := schedule.NewWeekday(n)
			assert.True(t, errors.Is(err, schedule.ErrInvalidWeekday), "weekday %d", n)
		}
	})

	t.Run("monday is zero", func(t *testing.T) {
		monday := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC) // a Monday
		sunday := time.Date(2025, 6, 8, 10, 0, 0, 0, time.UTC)

		assert.Equal(t, 0, schedule.WeekdayOf(monday).Int())
		assert.Equal(t, 6, schedule.WeekdayOf(sunday).Int())
	})
}

func TestParseTimeOfDay(t *testing.T) {
	cases := []struct {
		input   string
		minutes int
		wantErr bool
	}{
		{input: "00:00", minutes: 0},
		{input: "09:30", minutes: 570},
		{input: "23:59", minutes: 1439},
		{input: "24:00", minutes: 1440},
		{input: "09:30:00", minutes: 570},
		{input: "25:00", wantErr: true},
		{input: "09:60", wantErr: true},
		{input: "nonsense", wantErr: true},
		{input: "", wantErr: true},
	}
	for _, c := range cases {
		t.Run(c.input, func(t *testing.T) {
			got, err := schedule.ParseTimeOfDay(c.input)
			if c.wantErr {
				assert.True(t, errors.Is(err, schedule.ErrInvalidTimeOfDay))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.minutes, got.Minutes())
		})
	}
}

func TestTimeRange(t *testing.T) {
	mustRange := func(t *testing.T, start, end string) schedule.TimeRange {
		t.Helper()
		r, err := schedule.ParseTimeRange(start, end)
		require.NoError(t, err)
		return r
	}

	t.Run("start must precede end", func(t *testing.T) {
		_, err := schedule.ParseTimeRange("10:00", "09:00")
		assert.True(t, errors.Is(err, schedule.ErrInvalidTimeRange))

		_, err = schedule.ParseTimeRange("10:00", "10:00")
		assert.True(t, errors.Is(err, schedule.ErrInvalidTimeRange))
	})

	t.Run("overlap is half open", func(t *testing.T) {
		morning := mustRange(t, "09:00", "10:00")

		// Back to back slots do not conflict.
		assert.False(t, morning.Overlaps(mustRange(t, "10:00", "11:00")))
		assert.False(t, mustRange(t, "10:00", "11:00").Overlaps(morning))

		assert.True(t, morning.Overlaps(mustRange(t, "09:30", "10:30")))
		assert.True(t, morning.Overlaps(mustRange(t, "08:00", "12:00")))
		assert.True(t, morning.Overlaps(morning))
		assert.False(t, morning.Overlaps(mustRange(t, "12:00", "13:00")))
	})

	t.Run("containment", func(t *testing.T) {
		window := mustRange(t, "08:00", "18:00")

		assert.True(t, window.Contains(mustRange(t, "08:00", "18:00")))
		assert.True(t, window.Contains(mustRange(t, "09:00", "12:00")))
		assert.False(t, window.Contains(mustRange(t, "07:00", "09:00")))
		assert.False(t, window.Contains(mustRange(t, "17:00", "19:00")))
	})

	t.Run("duration", func(t *testing.T) {
		assert.Equal(t, 90, mustRange(t, "09:00", "10:30").DurationMinutes())
	})

	t.Run("string round trip", func(t *testing.T) {
		r := mustRange(t, "09:00", "17:30")
		assert.Equal(t, "09:00", r.Start().String())
		assert.Equal(t, "17:30", r.End().String())
	})
}
