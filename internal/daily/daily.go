// internal/daily/daily.go
//
// Calendar-day helpers for the daily puzzle.
//   - Clock: the date provider; "today" is always computed in one fixed zone so
//     every player worldwide shares the same puzzle day.
//   - DateKey / ParseKey / PrevKey: YYYY-MM-DD keys and day arithmetic on them.
//   - Index: deterministic HMAC(salt, key) % n selection.

package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"time"
	_ "time/tzdata" // zone lookups must not depend on the host
)

// KeyLayout is the calendar key format.
const KeyLayout = "2006-01-02"

// DefaultZone is the reference zone for the puzzle day.
const DefaultZone = "America/New_York"

// Clock produces today's calendar key.
type Clock interface {
	TodayKey() string
}

// ZoneClock reports the date in a fixed location.
type ZoneClock struct {
	Loc *time.Location
	Now func() time.Time // defaults to time.Now
}

// NewZoneClock loads the named zone (e.g. "America/New_York").
func NewZoneClock(zone string) (*ZoneClock, error) {
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return nil, fmt.Errorf("load zone %s: %w", zone, err)
	}
	return &ZoneClock{Loc: loc}, nil
}

// TodayKey implements Clock.
func (c *ZoneClock) TodayKey() string {
	now := time.Now
	if c.Now != nil {
		now = c.Now
	}
	loc := c.Loc
	if loc == nil {
		loc = time.UTC
	}
	return DateKey(now(), loc)
}

// FixedClock always reports the same key. Useful for tests and replays.
type FixedClock string

// TodayKey implements Clock.
func (f FixedClock) TodayKey() string { return string(f) }

// DateKey returns YYYY-MM-DD for t as seen in loc.
func DateKey(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(KeyLayout)
}

// ParseKey parses a YYYY-MM-DD key as a calendar date (UTC midnight).
func ParseKey(key string) (time.Time, error) {
	return time.Parse(KeyLayout, key)
}

// PrevKey returns the key of the day before key.
func PrevKey(key string) (string, error) {
	t, err := ParseKey(key)
	if err != nil {
		return "", err
	}
	return t.AddDate(0, 0, -1).Format(KeyLayout), nil
}

// Index returns a deterministic index for a day key using HMAC(salt, key) % n.
func Index(key, salt string, n int) int {
	if n <= 0 {
		return 0
	}
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(key))
	sum := h.Sum(nil)
	// take first 8 bytes to uint64 for modulus distribution
	v := binary.BigEndian.Uint64(sum[:8])
	return int(v % uint64(n))
}
