//go:build unit

package booking_test

import (
	"testing"
	"time"

	"booking-calculator/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := booking.ParseDate(" 2025-02-28 ")
	require.NoError(t, err)
	assert.Equal(t, "2025-02-28", d.String())
	assert.Equal(t, "2025-03-01", d.AddDays(1).String())

	for _, bad := range []string{"", "2025-02-30", "28/02/2025", "2025-2-28"} {
		_, err := booking.ParseDate(bad)
		assert.ErrorIs(t, err, booking.ErrInvalidDate, "input %q", bad)
		assert.ErrorIs(t, err, booking.ErrValidation, "input %q", bad)
	}
}

func TestParseClockTime(t *testing.T) {
	c, err := booking.ParseClockTime("07:05")
	require.NoError(t, err)
	assert.Equal(t, 7, c.Hour())
	assert.Equal(t, 5, c.Minute())
	assert.Equal(t, "07:05", c.String())

	for _, bad := range []string{"", "24:00", "7pm", "12:60"} {
		_, err := booking.ParseClockTime(bad)
		assert.ErrorIs(t, err, booking.ErrInvalidClockTime, "input %q", bad)
	}

	_, err = booking.NewClockTime(23, 59)
	assert.NoError(t, err)
	_, err = booking.NewClockTime(-1, 0)
	assert.ErrorIs(t, err, booking.ErrInvalidClockTime)
}

func TestDate_DaysSince(t *testing.T) {
	assert.Equal(t, 2, mustDate(t, "2025-01-03").DaysSince(mustDate(t, "2025-01-01")))
	assert.Equal(t, 0, mustDate(t, "2025-01-01").DaysSince(mustDate(t, "2025-01-01")))
	assert.Equal(t, -1, mustDate(t, "2024-12-31").DaysSince(mustDate(t, "2025-01-01")))
	// leap day
	assert.Equal(t, 2, mustDate(t, "2024-03-01").DaysSince(mustDate(t, "2024-02-28")))
}

func TestDateOf(t *testing.T) {
	ist := time.FixedZone("IST", 19800)
	instant := time.Date(2025, 1, 1, 20, 0, 0, 0, time.UTC)

	assert.Equal(t, "2025-01-01", booking.DateOf(instant, time.UTC).String())
	assert.Equal(t, "2025-01-02", booking.DateOf(instant, ist).String())
	assert.Equal(t, "2025-01-01", booking.DateOf(instant, nil).String())
}

func TestDateWindow(t *testing.T) {
	window := booking.NewDateWindow(mustDate(t, "2025-01-31"), 3)

	assert.Equal(t, "2025-01-31", window.Min().String())
	// month arithmetic normalises like time.AddDate
	assert.Equal(t, "2025-05-01", window.Max().String())

	assert.True(t, window.Contains(mustDate(t, "2025-01-31")))
	assert.True(t, window.Contains(mustDate(t, "2025-05-01")))
	assert.False(t, window.Contains(mustDate(t, "2025-01-30")))
	assert.False(t, window.Contains(mustDate(t, "2025-05-02")))

	from, to, ok := window.Clamp(mustDate(t, "2025-01-01"), mustDate(t, "2025-02-10"))
	require.True(t, ok)
	assert.Equal(t, "2025-01-31", from.String())
	assert.Equal(t, "2025-02-10", to.String())

	_, _, ok = window.Clamp(mustDate(t, "2025-06-01"), mustDate(t, "2025-06-10"))
	assert.False(t, ok)
}

func TestReturnSlotAndStatus(t *testing.T) {
	slot, err := booking.ParseReturnSlot(" Half ")
	require.NoError(t, err)
	assert.Equal(t, booking.ReturnSlotHalf, slot)

	_, err = booking.ParseReturnSlot("morning")
	assert.ErrorIs(t, err, booking.ErrUnknownReturnSlot)

	for _, s := range []booking.Status{booking.StatusPending, booking.StatusConfirmed, booking.StatusCompleted, booking.StatusCancelled} {
		assert.False(t, s.CanExtend(), "status %s", s)
	}
	assert.True(t, booking.StatusActive.CanExtend())
	assert.False(t, booking.Status("unknown").IsValid())
}
