// internal/stats/stats.go
//
// Aggregates a player's daily history into win rates and a streak.
//   - Compute: win percentage overall (all three rounds) and per round.
//   - Streak:  consecutive full-win days ending today.
//
// History records are the persisted GameResult entries, one per calendar day.

package stats

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/robalobadob/landmark/internal/daily"
)

// GameResult is the persisted outcome of one daily puzzle.
type GameResult struct {
	Date            string `json:"date"`
	LandmarkID      string `json:"landmarkId"`
	LandmarkGuessed bool   `json:"landmarkGuessed"`
	CountryGuessed  bool   `json:"countryGuessed"`
	CityGuessed     bool   `json:"cityGuessed"`
}

// FullWin reports whether all three rounds were solved.
func (g GameResult) FullWin() bool {
	return g.LandmarkGuessed && g.CountryGuessed && g.CityGuessed
}

// Percent is a rounded percentage that may be undefined (no games yet).
type Percent struct {
	Value int
	Valid bool
}

// String renders "NN%" or an em dash placeholder.
func (p Percent) String() string {
	if !p.Valid {
		return "—"
	}
	return fmt.Sprintf("%d%%", p.Value)
}

// MarshalJSON encodes an undefined percentage as null.
func (p Percent) MarshalJSON() ([]byte, error) {
	if !p.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(p.Value)
}

// UnmarshalJSON accepts a number or null.
func (p *Percent) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*p = Percent{}
		return nil
	}
	if err := json.Unmarshal(b, &p.Value); err != nil {
		return err
	}
	p.Valid = true
	return nil
}

func pct(wins, total int) Percent {
	if total == 0 {
		return Percent{}
	}
	return Percent{Value: int(math.Round(100 * float64(wins) / float64(total))), Valid: true}
}

// Summary holds the aggregated win rates.
type Summary struct {
	GamesPlayed    int     `json:"gamesPlayed"`
	OverallWinPct  Percent `json:"overallWinPct"`
	LandmarkWinPct Percent `json:"landmarkWinPct"`
	CountryWinPct  Percent `json:"countryWinPct"`
	CityWinPct     Percent `json:"cityWinPct"`
}

// Compute folds history into win percentages.
func Compute(history []GameResult) Summary {
	var overall, landmark, country, city int
	for _, g := range history {
		if g.FullWin() {
			overall++
		}
		if g.LandmarkGuessed {
			landmark++
		}
		if g.CountryGuessed {
			country++
		}
		if g.CityGuessed {
			city++
		}
	}
	n := len(history)
	return Summary{
		GamesPlayed:    n,
		OverallWinPct:  pct(overall, n),
		LandmarkWinPct: pct(landmark, n),
		CountryWinPct:  pct(country, n),
		CityWinPct:     pct(city, n),
	}
}

// Streak counts consecutive full-win days walking backward from todayKey.
// A missing or partial day ends the walk; no record today means 0.
func Streak(history []GameResult, todayKey string) int {
	byDate := make(map[string]GameResult, len(history))
	for _, g := range history {
		byDate[g.Date] = g
	}

	streak := 0
	key := todayKey
	for {
		g, ok := byDate[key]
		if !ok || !g.FullWin() {
			return streak
		}
		streak++
		prev, err := daily.PrevKey(key)
		if err != nil {
			return streak
		}
		key = prev
	}
}

// Upsert replaces the record with r.Date or appends r when none exists.
// The input slice is not modified.
func Upsert(history []GameResult, r GameResult) []GameResult {
	out := make([]GameResult, 0, len(history)+1)
	for _, g := range history {
		if g.Date != r.Date {
			out = append(out, g)
		}
	}
	return append(out, r)
}

// Plural renders "1 day" / "3 days" style counters for the stats view.
func Plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
