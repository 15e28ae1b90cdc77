//go:build unit

package booking_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"guideway/internal/domain/booking"
	"guideway/internal/domain/schedule"
	"guideway/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBooking(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, booking.StatusPending, actual.Status())
		// 3 hours at 5000 cents/hour
		assert.Equal(t, int64(15000), actual.TotalCents())
	})

	t.Run("self booking rejected", func(t *testing.T) {
		id := uuid.New()
		_, err := builder.NewBookingBuilder().WithGuideID(id).WithTravelerID(id).BuildDomain()
		assert.True(t, errors.Is(err, booking.ErrSelfBooking))
	})

	t.Run("past date rejected", func(t *testing.T) {
		b := builder.NewBookingBuilder()
		_, err := b.WithDate(b.Today.AddDate(0, 0, -1)).BuildDomain()
		assert.True(t, errors.Is(err, booking.ErrDateInPast))
	})

	t.Run("same day allowed", func(t *testing.T) {
		b := builder.NewBookingBuilder()
		actual, err := b.WithDate(b.Today).BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, b.Today, actual.Date())
	})

	t.Run("date truncated to midnight UTC", func(t *testing.T) {
		b := builder.NewBookingBuilder()
		actual, err := b.WithDate(b.Today.Add(15 * time.Hour)).BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, b.Today, actual.Date())
	})

	t.Run("partial hours rejected", func(t *testing.T) {
		_, err := builder.NewBookingBuilder().WithSlot("09:00", "10:30").BuildDomain()
		assert.True(t, errors.Is(err, booking.ErrInvalidDuration))
	})

	t.Run("slot longer than eight hours rejected", func(t *testing.T) {
		_, err := builder.NewBookingBuilder().WithSlot("08:00", "17:00").BuildDomain()
		assert.True(t, errors.Is(err, booking.ErrInvalidDuration))
	})

	t.Run("eight hour slot allowed", func(t *testing.T) {
		actual, err := builder.NewBookingBuilder().WithSlot("09:00", "17:00").BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, 8, actual.Hours())
	})

	t.Run("special requests trimmed and capped", func(t *testing.T) {
		actual, err := builder.NewBookingBuilder().WithSpecialRequests("  bring an umbrella  ").BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, "bring an umbrella", actual.SpecialRequests())

		long := strings.Repeat("x", 501)
		_, err = builder.NewBookingBuilder().WithSpecialRequests(long).BuildDomain()
		assert.True(t, errors.Is(err, booking.ErrSpecialRequestsTooLong))
	})
}

func TestPriceCents(t *testing.T) {
	cases := []struct {
		name  string
		start string
		end   string
		rate  int64
		want  int64
	}{
		{name: "full hour", start: "09:00", end: "10:00", rate: 5000, want: 5000},
		{name: "half hour pro rata", start: "09:00", end: "09:30", rate: 5000, want: 2500},
		{name: "ninety minutes", start: "09:00", end: "10:30", rate: 4000, want: 6000},
		{name: "full day", start: "00:00", end: "24:00", rate: 1000, want: 24000},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			slot, err := schedule.ParseTimeRange(c.start, c.end)
			require.NoError(t, err)
			assert.Equal(t, c.want, booking.PriceCents(slot, c.rate))
		})
	}
}

func TestStatusTransitions(t *testing.T) {
	cases := []struct {
		from    string
		to      string
		allowed bool
	}{
		{from: "pending", to: "confirmed", allowed: true},
		{from: "pending", to: "cancelled", allowed: true},
		{from: "pending", to: "completed", allowed: true},
		{from: "confirmed", to: "completed", allowed: true},
		{from: "confirmed", to: "cancelled", allowed: true},
		{from: "confirmed", to: "confirmed", allowed: false},
		{from: "pending", to: "pending", allowed: false},
		{from: "confirmed", to: "pending", allowed: false},
		{from: "cancelled", to: "confirmed", allowed: false},
		{from: "cancelled", to: "pending", allowed: false},
		{from: "completed", to: "cancelled", allowed: false},
		{from: "completed", to: "confirmed", allowed: false},
	}
	for _, c := range cases {
		t.Run(c.from+" to "+c.to, func(t *testing.T) {
			from, err := booking.NewStatus(c.from)
			require.NoError(t, err)
			to, err := booking.NewStatus(c.to)
			require.NoError(t, err)

			assert.Equal(t, c.allowed, from.CanTransitionTo(to))
		})
	}

	t.Run("unknown status rejected", func(t *testing.T) {
		_, err := booking.NewStatus("archived")
		assert.True(t, errors.Is(err, booking.ErrInvalidStatus))
	})

	t.Run("transition mutates entity", func(t *testing.T) {
		entity, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)

		require.NoError(t, entity.Transition(booking.StatusConfirmed))
		assert.Equal(t, booking.StatusConfirmed, entity.Status())

		err = entity.Transition(booking.StatusPending)
		assert.True(t, errors.Is(err, booking.ErrInvalidStatus))
	})
}

func TestBlocksSlot(t *testing.T) {
	entity, err := builder.NewBookingBuilder().BuildDomain()
	require.NoError(t, err)
	assert.True(t, entity.BlocksSlot())

	require.NoError(t, entity.Transition(booking.StatusCancelled))
	assert.False(t, entity.BlocksSlot())
}
