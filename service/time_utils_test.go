package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCalendarDay(t *testing.T) {
	assert.Equal(t, "2024-06-15", CalendarDay(time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)))

	// non-UTC times are normalized before formatting
	est := time.FixedZone("EST", -5*3600)
	assert.Equal(t, "2024-06-16", CalendarDay(time.Date(2024, 6, 15, 20, 0, 0, 0, est)))
}

func TestSameCalendarDay(t *testing.T) {
	a := time.Date(2024, 6, 15, 0, 0, 1, 0, time.UTC)
	b := time.Date(2024, 6, 15, 23, 59, 59, 0, time.UTC)
	c := time.Date(2024, 6, 16, 0, 0, 1, 0, time.UTC)

	assert.True(t, SameCalendarDay(a, b))
	assert.False(t, SameCalendarDay(b, c))

	// two minutes apart but across midnight is a different day
	assert.False(t, SameCalendarDay(
		time.Date(2024, 6, 15, 23, 59, 0, 0, time.UTC),
		time.Date(2024, 6, 16, 0, 1, 0, 0, time.UTC),
	))
}

func TestRevivesUsedToday(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, 2, revivesUsedToday(2, "2024-06-15", now))
	assert.Equal(t, 0, revivesUsedToday(3, "2024-06-14", now))
	assert.Equal(t, 0, revivesUsedToday(1, "", now))
}

func TestTransferTax(t *testing.T) {
	// tax rounds up: 50 * 0.05 = 2.5 -> 3
	assert.Equal(t, int64(3), transferTax(50, 0.05))
	assert.Equal(t, int64(5), transferTax(100, 0.05))
	assert.Equal(t, int64(1), transferTax(1, 0.05))
	assert.Equal(t, int64(0), transferTax(100, 0))
}
