// internal/game/engine.go
//
// Reducer for a single landmark puzzle.
// Responsibilities:
//   - Apply player intents to an immutable State, returning the next State.
//   - Validate guesses with the shared normalizer (case/accent/punctuation-insensitive).
//   - Enforce the five-attempt limit and the landmark → country → city order.
//   - Complete the game when the city round finishes.
//
// Invalid transitions (wrong round, finished round, empty guess, completed game)
// return the input state unchanged. Nothing here fails.
package game

import (
	"slices"
	"strings"

	"github.com/robalobadob/landmark/internal/normalize"
)

// Apply is the single entry point: (state, intent) → state.
func Apply(s State, l Landmark, in Intent) State {
	switch in.Kind {
	case IntentGuess:
		return SubmitGuess(s, l, in.Round, in.Text)
	case IntentReveal:
		return RevealRound(s, in.Round)
	case IntentAdvance:
		return AdvanceRound(s)
	case IntentHint:
		return UseHint(s)
	}
	return s
}

// SubmitGuess records text as the next attempt in round r.
//
// Accepted only when r is the live round, that round is in progress,
// the game is not complete and text is non-blank. The guess is stored verbatim;
// correctness is decided on normalized forms. A correct fifth attempt counts as
// solved. Finishing the city round completes the game.
func SubmitGuess(s State, l Landmark, r Round, text string) State {
	if !accepts(s, r) || strings.TrimSpace(text) == "" {
		return s
	}
	rs := s.Round(r)

	next := RoundState{
		Attempts: append(slices.Clip(rs.Attempts), text),
		Status:   StatusInProgress,
	}
	switch {
	case normalize.Equal(text, l.Answer(r)):
		next.Status = StatusSolved
	case len(next.Attempts) >= MaxAttempts:
		next.Status = StatusExhausted
	}
	return withRound(s, r, next)
}

// RevealRound gives up on round r without consuming an attempt.
func RevealRound(s State, r Round) State {
	if !accepts(s, r) {
		return s
	}
	rs := s.Round(r)
	return withRound(s, r, RoundState{Attempts: rs.Attempts, Status: StatusRevealed})
}

// AdvanceRound moves the live round forward once it is finished.
// The city round has nothing to advance to; its completion sets GameComplete instead.
func AdvanceRound(s State) State {
	if s.GameComplete || s.CurrentRound == RoundCity {
		return s
	}
	if !s.Round(s.CurrentRound).Finished() {
		return s
	}
	s.CurrentRound++
	return s
}

// UseHint reveals the continent during the country round. Idempotent.
func UseHint(s State) State {
	if s.GameComplete || s.HintUsed || s.CurrentRound != RoundCountry || s.Country.Finished() {
		return s
	}
	s.HintUsed = true
	return s
}

// accepts reports whether round r can take a guess or a reveal right now.
func accepts(s State, r Round) bool {
	return r.Valid() && !s.GameComplete && s.CurrentRound == r && !s.Round(r).Finished()
}

// withRound returns a copy of s with round r replaced by rs.
func withRound(s State, r Round, rs RoundState) State {
	switch r {
	case RoundLandmark:
		s.Landmark = rs
	case RoundCountry:
		s.Country = rs
	case RoundCity:
		s.City = rs
		if rs.Finished() {
			s.GameComplete = true
		}
	}
	return s
}

// Result summarizes the outcome of a completed game.
type Result struct {
	LandmarkGuessed bool
	CountryGuessed  bool
	CityGuessed     bool
}

// Outcome returns which rounds were solved.
func (s State) Outcome() Result {
	return Result{
		LandmarkGuessed: s.Landmark.Solved(),
		CountryGuessed:  s.Country.Solved(),
		CityGuessed:     s.City.Solved(),
	}
}

// Consistent checks the structural invariants of a snapshot. Snapshots read back
// from storage are discarded when this fails.
func (s State) Consistent() bool {
	if !s.CurrentRound.Valid() {
		return false
	}
	for _, r := range Rounds {
		rs := s.Round(r)
		switch rs.Status {
		case StatusInProgress, StatusSolved, StatusRevealed, StatusExhausted:
		default:
			return false
		}
		n := rs.AttemptCount()
		if n > MaxAttempts {
			return false
		}
		if rs.Status == StatusExhausted && n != MaxAttempts {
			return false
		}
		if rs.Status == StatusInProgress && n == MaxAttempts {
			return false
		}
		if r > s.CurrentRound && (n > 0 || rs.Status != StatusInProgress) {
			return false
		}
		if r < s.CurrentRound && !rs.Finished() {
			return false
		}
	}
	return s.GameComplete == s.City.Finished()
}
