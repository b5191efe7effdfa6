// internal/landmarks/landmarks.go
//
// The landmark dataset and the puzzle schedule built on it.
//
// Responsibilities:
//   - Load landmarks from a JSON file (LANDMARKS_FILE) or fall back to the embedded default.
//   - Validate the dataset (non-empty, unique ids, every answer present).
//   - Pick today's landmark deterministically from the day key + salt.
//   - Offer past puzzles (every landmark except today's) and random picks among them.
//   - Provide country and city name lists for autocomplete.

package landmarks

import (
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"os"
	"sort"
	"strings"

	"github.com/robalobadob/landmark/assets"
	"github.com/robalobadob/landmark/internal/daily"
	"github.com/robalobadob/landmark/internal/game"
	"github.com/robalobadob/landmark/internal/geo"
)

// Catalog is an immutable, validated landmark dataset.
type Catalog struct {
	list      []game.Landmark
	byID      map[string]int
	salt      string
	countries []string
	cities    []string
}

// Load reads the dataset from path, or the embedded default when path is empty.
func Load(path, salt string) (*Catalog, error) {
	var (
		raw []byte
		err error
	)
	if path != "" {
		raw, err = os.ReadFile(path)
	} else {
		raw, err = assets.LandmarksJSON()
	}
	if err != nil {
		return nil, fmt.Errorf("read landmarks: %w", err)
	}

	var list []game.Landmark
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, fmt.Errorf("parse landmarks: %w", err)
	}
	extra, err := assets.CitiesList()
	if err != nil {
		return nil, fmt.Errorf("read cities: %w", err)
	}
	return New(list, extra, salt)
}

// New validates list and builds a Catalog. extraCities extend the city suggestions.
func New(list []game.Landmark, extraCities []string, salt string) (*Catalog, error) {
	if len(list) == 0 {
		return nil, errors.New("landmarks: dataset is empty")
	}
	c := &Catalog{
		list: make([]game.Landmark, len(list)),
		byID: make(map[string]int, len(list)),
		salt: salt,
	}
	copy(c.list, list)

	for i, l := range c.list {
		if strings.TrimSpace(l.ID) == "" {
			return nil, fmt.Errorf("landmarks: entry %d has no id", i)
		}
		if _, dup := c.byID[l.ID]; dup {
			return nil, fmt.Errorf("landmarks: duplicate id %q", l.ID)
		}
		if l.Name == "" || l.Country == "" || l.City == "" {
			return nil, fmt.Errorf("landmarks: %q is missing an answer", l.ID)
		}
		c.byID[l.ID] = i
	}

	countries := geo.Countries()
	cities := append([]string{}, extraCities...)
	for _, l := range c.list {
		countries = append(countries, l.Country)
		cities = append(cities, l.City)
	}
	c.countries = dedupSorted(countries)
	c.cities = dedupSorted(cities)
	return c, nil
}

// Len reports the number of landmarks.
func (c *Catalog) Len() int { return len(c.list) }

// ByID looks up a landmark.
func (c *Catalog) ByID(id string) (game.Landmark, bool) {
	i, ok := c.byID[id]
	if !ok {
		return game.Landmark{}, false
	}
	return c.list[i], true
}

// Daily returns the landmark scheduled for dayKey. Same key, same landmark.
func (c *Catalog) Daily(dayKey string) game.Landmark {
	return c.list[daily.Index(dayKey, c.salt, len(c.list))]
}

// PastIDs lists every puzzle id other than today's, sorted.
func (c *Catalog) PastIDs(dayKey string) []string {
	today := c.Daily(dayKey).ID
	out := make([]string, 0, len(c.list)-1)
	for _, l := range c.list {
		if l.ID != today {
			out = append(out, l.ID)
		}
	}
	sort.Strings(out)
	return out
}

// RandomPast picks a random past puzzle whose id is not in exclude.
// ok is false when every past puzzle is excluded.
func (c *Catalog) RandomPast(dayKey string, exclude []string) (game.Landmark, bool) {
	skip := make(map[string]struct{}, len(exclude))
	for _, id := range exclude {
		skip[id] = struct{}{}
	}
	var candidates []string
	for _, id := range c.PastIDs(dayKey) {
		if _, ok := skip[id]; !ok {
			candidates = append(candidates, id)
		}
	}
	if len(candidates) == 0 {
		return game.Landmark{}, false
	}
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(candidates))))
	if err != nil {
		return c.mustID(candidates[0]), true
	}
	return c.mustID(candidates[n.Int64()]), true
}

func (c *Catalog) mustID(id string) game.Landmark {
	l, _ := c.ByID(id)
	return l
}

// Countries returns country names for suggestions (centroid table ∪ dataset).
func (c *Catalog) Countries() []string { return c.countries }

// Cities returns city names for suggestions (extra list ∪ dataset).
func (c *Catalog) Cities() []string { return c.cities }

func dedupSorted(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}
