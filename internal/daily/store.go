package daily

import (
	"context"
	"database/sql"
	"time"

	sq "github.com/Masterminds/squirrel"
)

var builder = sq.StatementBuilder.PlaceholderFormat(sq.Question)

// Result is one player's completion of a daily puzzle.
type Result struct {
	PlayerID        string `json:"playerId"`
	Date            string `json:"date"`
	LandmarkID      string `json:"landmarkId"`
	LandmarkGuessed bool   `json:"landmarkGuessed"`
	CountryGuessed  bool   `json:"countryGuessed"`
	CityGuessed     bool   `json:"cityGuessed"`
}

// Tally aggregates all completions for one day.
type Tally struct {
	Date          string `json:"date"`
	Players       int    `json:"players"`
	LandmarkSolve int    `json:"landmarkSolved"`
	CountrySolve  int    `json:"countrySolved"`
	CitySolve     int    `json:"citySolved"`
	FullWins      int    `json:"fullWins"`
}

// Store persists daily completions across players (daily_results table).
type Store struct{ db *sql.DB }

func NewStore(db *sql.DB) *Store { return &Store{db: db} }

// Record inserts the first completion for (player, date); later ones are ignored.
func (s *Store) Record(ctx context.Context, r Result) error {
	q, args, err := builder.Insert("daily_results").
		Options("OR IGNORE").
		Columns("player_id", "date", "landmark_id", "landmark_guessed", "country_guessed", "city_guessed", "created_at").
		Values(r.PlayerID, r.Date, r.LandmarkID, r.LandmarkGuessed, r.CountryGuessed, r.CityGuessed,
			time.Now().UTC().Format(time.RFC3339)).
		ToSql()
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, q, args...)
	return err
}

// AlreadyRecorded reports whether the player has a completion for date.
func (s *Store) AlreadyRecorded(ctx context.Context, playerID, date string) (bool, error) {
	q, args, err := builder.Select("COUNT(1)").From("daily_results").
		Where(sq.Eq{"player_id": playerID, "date": date}).ToSql()
	if err != nil {
		return false, err
	}
	var cnt int
	err = s.db.QueryRowContext(ctx, q, args...).Scan(&cnt)
	return cnt > 0, err
}

// Tally returns the aggregate counts for date. A day with no results is all zeros.
func (s *Store) Tally(ctx context.Context, date string) (Tally, error) {
	q, args, err := builder.Select(
		"COUNT(1)",
		"COALESCE(SUM(landmark_guessed), 0)",
		"COALESCE(SUM(country_guessed), 0)",
		"COALESCE(SUM(city_guessed), 0)",
		"COALESCE(SUM(landmark_guessed AND country_guessed AND city_guessed), 0)",
	).From("daily_results").Where(sq.Eq{"date": date}).ToSql()
	if err != nil {
		return Tally{}, err
	}
	t := Tally{Date: date}
	err = s.db.QueryRowContext(ctx, q, args...).
		Scan(&t.Players, &t.LandmarkSolve, &t.CountrySolve, &t.CitySolve, &t.FullWins)
	return t, err
}
