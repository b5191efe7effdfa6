package daily

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZoneClockUsesReferenceZone(t *testing.T) {
	c, err := NewZoneClock(DefaultZone)
	require.NoError(t, err)

	// 03:30 UTC on Jan 3 is still Jan 2 in New York.
	c.Now = func() time.Time { return time.Date(2024, 1, 3, 3, 30, 0, 0, time.UTC) }
	assert.Equal(t, "2024-01-02", c.TodayKey())

	// Same instant seen from Tokyo does not change the key.
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)
	c.Now = func() time.Time { return time.Date(2024, 1, 3, 12, 30, 0, 0, tokyo) }
	assert.Equal(t, "2024-01-02", c.TodayKey())
}

func TestNewZoneClockUnknownZone(t *testing.T) {
	_, err := NewZoneClock("Mars/Olympus_Mons")
	assert.Error(t, err)
}

func TestPrevKey(t *testing.T) {
	cases := map[string]string{
		"2024-01-03": "2024-01-02",
		"2024-01-01": "2023-12-31",
		"2024-03-01": "2024-02-29",
		"2023-03-01": "2023-02-28",
	}
	for in, want := range cases {
		got, err := PrevKey(in)
		require.NoError(t, err)
		assert.Equal(t, want, got, "PrevKey(%s)", in)
	}

	_, err := PrevKey("yesterday")
	assert.Error(t, err)
}

func TestIndexDeterministic(t *testing.T) {
	a := Index("2024-01-03", "salt", 50)
	b := Index("2024-01-03", "salt", 50)
	assert.Equal(t, a, b)
	assert.GreaterOrEqual(t, a, 0)
	assert.Less(t, a, 50)

	assert.Zero(t, Index("2024-01-03", "salt", 0))
}

func TestFixedClock(t *testing.T) {
	assert.Equal(t, "2024-05-06", FixedClock("2024-05-06").TodayKey())
}
