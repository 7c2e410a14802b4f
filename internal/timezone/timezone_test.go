package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocation_FallsBackToDefault(t *testing.T) {
	assert.Equal(t, "UTC", Location("UTC").String())
	assert.Equal(t, DefaultTimezone, Location("").String())
	assert.Equal(t, DefaultTimezone, Location("Nowhere/Land").String())
}

func TestMinBookable_TruncatesToMinute(t *testing.T) {
	now := time.Date(2026, 3, 2, 9, 14, 59, 999, time.UTC)
	assert.Equal(t, time.Date(2026, 3, 2, 9, 14, 0, 0, time.UTC), MinBookable(now))
}

func TestParseDateTime(t *testing.T) {
	got, err := ParseDateTime(time.UTC, "2026-03-02", "09:30")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC), got)

	_, err = ParseDateTime(time.UTC, "2026-03-02", "9h30")
	assert.Error(t, err)
}

func TestDayBounds(t *testing.T) {
	start, end := DayBounds(time.Date(2026, 3, 2, 15, 4, 5, 0, time.UTC))
	assert.Equal(t, time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC), end)
}
