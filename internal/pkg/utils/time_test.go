package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSlotStart(t *testing.T) {
	loc := time.FixedZone("EAT", 3*60*60)

	t.Run("Minutes Layout", func(t *testing.T) {
		start, err := ParseSlotStart("2024-03-01", "09:00", loc)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 3, 1, 9, 0, 0, 0, loc), start)
	})

	t.Run("Seconds Layout", func(t *testing.T) {
		start, err := ParseSlotStart("2024-03-01", "14:30:15", loc)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 3, 1, 14, 30, 15, 0, loc), start)
	})

	t.Run("Invalid Slot", func(t *testing.T) {
		_, err := ParseSlotStart("2024-03-01", "morning", loc)
		assert.Error(t, err)
	})

	t.Run("Invalid Date", func(t *testing.T) {
		_, err := ParseSlotStart("03/01/2024", "09:00", loc)
		assert.Error(t, err)
	})
}

func TestCalculateSessionEnd(t *testing.T) {
	starts := []time.Time{
		time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC),
		time.Date(2024, 12, 31, 23, 30, 0, 0, time.UTC),
		time.Date(2024, 2, 29, 16, 0, 0, 0, time.UTC),
	}
	for _, start := range starts {
		end := CalculateSessionEnd(start)
		assert.Equal(t, 50*time.Minute, end.Sub(start), "session end should be 50 minutes after %s", start)
	}
}

func TestNextDates(t *testing.T) {
	now := time.Date(2024, 2, 27, 10, 0, 0, 0, time.UTC)

	dates := NextDates(now, 7)

	assert.Equal(t, []string{
		"2024-02-28", "2024-02-29", "2024-03-01", "2024-03-02",
		"2024-03-03", "2024-03-04", "2024-03-05",
	}, dates)
}
