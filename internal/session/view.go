package session

import (
	"github.com/robalobadob/landmark/internal/game"
	"github.com/robalobadob/landmark/internal/geo"
	"github.com/robalobadob/landmark/internal/normalize"
	"github.com/robalobadob/landmark/internal/stats"
)

// GuessView is one recorded attempt as shown to the player.
type GuessView struct {
	Text    string `json:"text"`
	Correct bool   `json:"correct"`
	// Direction points from the guessed country to the answer (country round only).
	Direction *geo.Direction `json:"direction,omitempty"`
}

// RoundView is one round as shown to the player. Answer is set once the round is finished.
type RoundView struct {
	Round     game.Round  `json:"round"`
	Status    game.Status `json:"status"`
	Guesses   []GuessView `json:"guesses"`
	Remaining int         `json:"remaining"`
	Answer    string      `json:"answer,omitempty"`
}

// View is the client-facing projection of a puzzle. It never leaks unfinished answers.
type View struct {
	Mode         Mode        `json:"mode"`
	Date         string      `json:"date"`
	PuzzleID     string      `json:"puzzleId"`
	ImageURL     string      `json:"imageUrl"`
	CurrentRound game.Round  `json:"currentRound"`
	Rounds       []RoundView `json:"rounds"`
	HintUsed     bool        `json:"hintUsed"`
	Continent    string      `json:"continent,omitempty"`
	GameComplete bool        `json:"gameComplete"`
	TotalGuesses int         `json:"totalGuesses"`
	Description  string      `json:"description,omitempty"`
	Accepted     bool        `json:"accepted"`
}

func buildView(p puzzle) View {
	l, st := p.landmark, p.state
	v := View{
		Mode:         p.mode,
		Date:         p.dayKey,
		PuzzleID:     l.ID,
		ImageURL:     l.ImageURL,
		CurrentRound: st.CurrentRound,
		Rounds:       make([]RoundView, 0, len(game.Rounds)),
		HintUsed:     st.HintUsed,
		GameComplete: st.GameComplete,
		TotalGuesses: st.TotalGuesses(),
	}
	if st.HintUsed {
		v.Continent = l.Continent
	}
	if st.GameComplete {
		v.Description = l.Description
	}

	for _, r := range game.Rounds {
		rs := st.Round(r)
		rv := RoundView{
			Round:     r,
			Status:    rs.Status,
			Guesses:   make([]GuessView, 0, rs.AttemptCount()),
			Remaining: game.MaxAttempts - rs.AttemptCount(),
		}
		answer := l.Answer(r)
		for _, text := range rs.Attempts {
			g := GuessView{Text: text, Correct: normalize.Equal(text, answer)}
			if r == game.RoundCountry && !g.Correct {
				if d, ok := geo.Hint(text, answer); ok {
					g.Direction = &d
				}
			}
			rv.Guesses = append(rv.Guesses, g)
		}
		if rs.Finished() {
			rv.Answer = answer
		}
		v.Rounds = append(v.Rounds, rv)
	}
	return v
}

// StatsDisplay carries the preformatted strings the stats panel shows.
type StatsDisplay struct {
	GamesPlayed string `json:"gamesPlayed"`
	Streak      string `json:"streak"`
	Overall     string `json:"overall"`
	Landmark    string `json:"landmark"`
	Country     string `json:"country"`
	City        string `json:"city"`
}

type StatsView struct {
	stats.Summary
	Streak  int                `json:"streak"`
	Display StatsDisplay       `json:"display"`
	History []stats.GameResult `json:"history"`
}
