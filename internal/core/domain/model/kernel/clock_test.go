package kernel_test

import (
	"testing"
	"time"

	"chapatis/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartOfDay(t *testing.T) {
	london, err := time.LoadLocation("Europe/London")
	require.NoError(t, err)

	t.Run("truncates to local midnight", func(t *testing.T) {
		now := time.Date(2026, time.October, 19, 15, 42, 7, 123, london)

		day := kernel.StartOfDay(now, london)

		assert.Equal(t, time.Date(2026, time.October, 19, 0, 0, 0, 0, london), day)
	})

	t.Run("uses the calendar day of the target location", func(t *testing.T) {
		// 23:30 UTC on 18 Oct is 00:30 BST on 19 Oct.
		now := time.Date(2026, time.October, 18, 23, 30, 0, 0, time.UTC)

		day := kernel.StartOfDay(now, london)

		assert.Equal(t, 19, day.Day())
		assert.Equal(t, 0, day.Hour())
	})
}

func TestSameDay(t *testing.T) {
	a := time.Date(2026, time.October, 21, 0, 0, 0, 0, time.UTC)

	assert.True(t, kernel.SameDay(a, a.Add(23*time.Hour)))
	assert.False(t, kernel.SameDay(a, a.Add(24*time.Hour)))
}

func TestClockFunc(t *testing.T) {
	fixed := time.Date(2026, time.October, 19, 9, 0, 0, 0, time.UTC)
	var clock kernel.Clock = kernel.ClockFunc(func() time.Time { return fixed })

	assert.Equal(t, fixed, clock.Now())
	assert.False(t, kernel.SystemClock{}.Now().IsZero())
}
