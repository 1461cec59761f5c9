package interval

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBucketTime(t *testing.T) {
	ts := time.Date(2025, 6, 18, 14, 37, 42, 0, time.UTC) // Wednesday

	testCases := []struct {
		name     string
		interval Interval
		expected time.Time
	}{
		{name: "1m", interval: Interval1m, expected: time.Date(2025, 6, 18, 14, 37, 0, 0, time.UTC)},
		{name: "3m", interval: Interval3m, expected: time.Date(2025, 6, 18, 14, 36, 0, 0, time.UTC)},
		{name: "15m", interval: Interval15m, expected: time.Date(2025, 6, 18, 14, 30, 0, 0, time.UTC)},
		{name: "1h", interval: Interval1h, expected: time.Date(2025, 6, 18, 14, 0, 0, 0, time.UTC)},
		{name: "4h", interval: Interval4h, expected: time.Date(2025, 6, 18, 12, 0, 0, 0, time.UTC)},
		{name: "1d", interval: Interval1d, expected: time.Date(2025, 6, 18, 0, 0, 0, 0, time.UTC)},
		{name: "1w starts monday", interval: Interval1w, expected: time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.interval.BucketTime(ts))
		})
	}
}

func TestBucketTime_WeekKeepsLocation(t *testing.T) {
	loc := time.FixedZone("UTC+5", 5*60*60)
	ts := time.Date(2025, 6, 18, 2, 15, 0, 0, loc) // Wednesday, local

	// The week opens at the location-local Monday midnight, same as the
	// day bucket does for its midnight.
	assert.Equal(t, time.Date(2025, 6, 16, 0, 0, 0, 0, loc), Interval1w.BucketTime(ts))
	assert.Equal(t, time.Date(2025, 6, 18, 0, 0, 0, 0, loc), Interval1d.BucketTime(ts))
}

func TestSameBucket(t *testing.T) {
	a := time.Date(2025, 6, 18, 14, 0, 10, 0, time.UTC)
	b := time.Date(2025, 6, 18, 14, 0, 50, 0, time.UTC)
	c := time.Date(2025, 6, 18, 14, 1, 5, 0, time.UTC)

	assert.True(t, Interval1m.SameBucket(a, b))
	assert.False(t, Interval1m.SameBucket(a, c))
	assert.True(t, Interval1h.SameBucket(a, c))
}

func TestBucketRange(t *testing.T) {
	ts := time.Date(2025, 6, 18, 14, 37, 42, 0, time.UTC)

	start, end := Interval5m.BucketRange(ts)
	assert.Equal(t, time.Date(2025, 6, 18, 14, 35, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2025, 6, 18, 14, 40, 0, 0, time.UTC), end)
}

func TestRegistry(t *testing.T) {
	require.Len(t, Names(), 13)

	for _, name := range []string{"1m", "3m", "5m", "15m", "30m", "1h", "2h", "4h", "6h", "12h", "1d", "3d", "1w"} {
		got, err := Get(name)
		require.NoError(t, err)
		assert.Equal(t, name, got.Name)
		assert.True(t, IsValid(name))
	}

	_, err := Get("2w")
	assert.Error(t, err)
	assert.False(t, IsValid("2w"))
}
