// internal/geo/direction.go
//
// Compass hints between countries.
// Bearing is planar (lat/lng deltas on a flat map), not great-circle, so the
// arrow matches what a player sees on an ordinary world map rather than
// pointing over a pole. The result is bucketed into 8 sectors of 45°.

package geo

import (
	"math"
	"sort"
	"strings"
	"sync"
)

// Point is a [lat, lng] pair in degrees.
type Point struct {
	Lat float64
	Lng float64
}

// Direction is one of the 8 compass sectors.
type Direction struct {
	Name  string `json:"name"`  // N, NE, E, SE, S, SW, W, NW
	Arrow string `json:"arrow"` // ↑ ↗ → ↘ ↓ ↙ ← ↖
}

var directions = [8]Direction{
	{"N", "↑"}, {"NE", "↗"}, {"E", "→"}, {"SE", "↘"},
	{"S", "↓"}, {"SW", "↙"}, {"W", "←"}, {"NW", "↖"},
}

var (
	indexOnce sync.Once
	index     map[string]string // lowercased name → display name
	names     []string          // sorted display names
)

func buildIndex() {
	index = make(map[string]string, len(centroids))
	names = make([]string, 0, len(centroids))
	for name := range centroids {
		index[strings.ToLower(name)] = name
		names = append(names, name)
	}
	sort.Strings(names)
}

// Lookup resolves a country name case-insensitively (surrounding spaces ignored).
func Lookup(country string) (string, Point, bool) {
	indexOnce.Do(buildIndex)
	name, ok := index[strings.ToLower(strings.TrimSpace(country))]
	if !ok {
		return "", Point{}, false
	}
	return name, centroids[name], true
}

// Countries returns all known country names, sorted.
func Countries() []string {
	indexOnce.Do(buildIndex)
	out := make([]string, len(names))
	copy(out, names)
	return out
}

// Bearing returns the planar compass bearing from → to in degrees:
// 0 = north, 90 = east, clockwise, in [0, 360).
func Bearing(from, to Point) float64 {
	dLat := to.Lat - from.Lat
	dLng := to.Lng - from.Lng
	// atan2 gives 0° = east, 90° = north.
	angle := math.Atan2(dLat, dLng) * 180 / math.Pi
	return math.Mod(90-angle+360, 360)
}

// Sector buckets a bearing into one of the 8 directions; boundaries round up.
func Sector(bearing float64) Direction {
	i := int(math.Floor(bearing/45+0.5)) % 8
	if i < 0 {
		i += 8
	}
	return directions[i]
}

// Hint returns the direction from the guessed country toward the correct one.
// ok is false when either name is not in the table.
func Hint(guessed, correct string) (Direction, bool) {
	_, from, ok := Lookup(guessed)
	if !ok {
		return Direction{}, false
	}
	_, to, ok := Lookup(correct)
	if !ok {
		return Direction{}, false
	}
	return Sector(Bearing(from, to)), true
}
