package dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustLoc(t *testing.T, name string) *time.Location {
	t.Helper()
	loc, err := LoadLocation(name)
	require.NoError(t, err)
	return loc
}

func TestNormalizer_Day_ConvertsToReferenceZone(t *testing.T) {
	loc := mustLoc(t, "Asia/Kolkata")
	n := New(loc, nil)

	// 20:00 UTC on March 1st is already March 2nd in IST.
	instant := time.Date(2025, 3, 1, 20, 0, 0, 0, time.UTC)

	day := n.Day(instant)

	assert.Equal(t, time.Date(2025, 3, 2, 0, 0, 0, 0, loc), day)
}

func TestNormalizer_Parse_DateOnly(t *testing.T) {
	loc := mustLoc(t, "Asia/Kolkata")
	n := New(loc, nil)

	day, err := n.Parse("2025-03-05")

	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 5, 0, 0, 0, 0, loc), day)
}

func TestNormalizer_Parse_RFC3339(t *testing.T) {
	n := New(time.UTC, nil)

	day, err := n.Parse("2025-03-05T17:45:00+05:30")

	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC), day)
}

func TestNormalizer_Parse_Invalid(t *testing.T) {
	n := New(time.UTC, nil)

	_, err := n.Parse("05/03/2025")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestNormalizer_Today_UsesClock(t *testing.T) {
	fixed := time.Date(2025, 2, 28, 23, 30, 0, 0, time.UTC)
	n := New(time.UTC, func() time.Time { return fixed })

	assert.Equal(t, time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC), n.Today())
}

func TestNormalizer_Nights(t *testing.T) {
	n := New(time.UTC, nil)

	in := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	out := time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 4, n.Nights(in, out))
	assert.Equal(t, 0, n.Nights(out, in))
}

func TestNormalizer_FromStorage_KeepsCalendarDay(t *testing.T) {
	loc := mustLoc(t, "America/New_York")
	n := New(loc, nil)

	stored := time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, time.Date(2025, 3, 5, 0, 0, 0, 0, loc), n.FromStorage(stored))
}

func TestNormalizer_Location(t *testing.T) {
	loc := mustLoc(t, "Asia/Kolkata")

	assert.Equal(t, "Asia/Kolkata", New(loc, nil).Location().String())
	assert.Equal(t, time.UTC, New(nil, nil).Location())
}

func TestLoadLocation_Invalid(t *testing.T) {
	_, err := LoadLocation("Mars/Olympus")

	require.Error(t, err)
}
