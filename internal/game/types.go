// internal/game/types.go
//
// Core type definitions for the landmark round state machine.
// Defines:
//   - Landmark: the externally supplied puzzle (answers for all three rounds).
//   - Round: landmark → country → city, strictly ordered.
//   - Status: per-round tagged state (in progress, solved, revealed, exhausted).
//   - RoundState / State: immutable snapshots produced by the reducer.
//   - Intent: what a player asked for (guess, reveal, advance, hint).

package game

import (
	"encoding/json"
	"fmt"
	"slices"
)

// MaxAttempts is the number of guesses allowed per round.
const MaxAttempts = 5

// Landmark is one puzzle. IDs are unique across the dataset and over time.
type Landmark struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Country     string `json:"country"`
	City        string `json:"city"`
	Continent   string `json:"continent"`
	ImageURL    string `json:"imageUrl"`
	Description string `json:"description,omitempty"`
}

// Answer returns the reference answer for round r.
func (l Landmark) Answer(r Round) string {
	switch r {
	case RoundLandmark:
		return l.Name
	case RoundCountry:
		return l.Country
	case RoundCity:
		return l.City
	}
	return ""
}

// Round identifies one of the three guessing phases.
type Round int

const (
	RoundLandmark Round = iota
	RoundCountry
	RoundCity
)

// Rounds lists all rounds in play order.
var Rounds = [...]Round{RoundLandmark, RoundCountry, RoundCity}

var roundNames = [...]string{"landmark", "country", "city"}

func (r Round) String() string {
	if r.Valid() {
		return roundNames[r]
	}
	return fmt.Sprintf("round(%d)", int(r))
}

// Valid reports whether r is one of the three known rounds.
func (r Round) Valid() bool { return r >= RoundLandmark && r <= RoundCity }

// ParseRound maps "landmark" | "country" | "city" to a Round.
func ParseRound(s string) (Round, bool) {
	for i, n := range roundNames {
		if n == s {
			return Round(i), true
		}
	}
	return 0, false
}

func (r Round) MarshalText() ([]byte, error) {
	if !r.Valid() {
		return nil, fmt.Errorf("invalid round %d", int(r))
	}
	return []byte(r.String()), nil
}

func (r *Round) UnmarshalText(b []byte) error {
	v, ok := ParseRound(string(b))
	if !ok {
		return fmt.Errorf("unknown round %q", string(b))
	}
	*r = v
	return nil
}

// Status is the tagged sub-state of a single round.
// Only InProgress accepts guesses; the other three are terminal.
type Status string

const (
	StatusInProgress Status = "in_progress"
	StatusSolved     Status = "solved"
	StatusRevealed   Status = "revealed"
	StatusExhausted  Status = "exhausted"
)

// RoundState is the history of one round.
// Attempts holds guesses verbatim in submission order; len(Attempts) is the attempt count.
type RoundState struct {
	Attempts []string `json:"attempts"`
	Status   Status   `json:"status"`
}

// AttemptCount returns the number of recorded guesses.
func (rs RoundState) AttemptCount() int { return len(rs.Attempts) }

// Solved reports whether a guess matched the answer.
func (rs RoundState) Solved() bool { return rs.Status == StatusSolved }

// Revealed reports whether the player gave up on this round.
func (rs RoundState) Revealed() bool { return rs.Status == StatusRevealed }

// Finished is true once the round is solved, revealed or out of attempts.
func (rs RoundState) Finished() bool {
	return rs.Status == StatusSolved || rs.Status == StatusRevealed || rs.Status == StatusExhausted
}

// UnmarshalJSON tolerates snapshots written without a status (fresh rounds).
func (rs *RoundState) UnmarshalJSON(b []byte) error {
	type plain RoundState
	var p plain
	if err := json.Unmarshal(b, &p); err != nil {
		return err
	}
	if p.Status == "" {
		p.Status = StatusInProgress
	}
	if p.Attempts == nil {
		p.Attempts = []string{}
	}
	*rs = RoundState(p)
	return nil
}

// State is the full snapshot of one puzzle's progress.
// It is only ever replaced by the reducer, never edited in place.
type State struct {
	CurrentRound Round      `json:"currentRound"`
	Landmark     RoundState `json:"landmark"`
	Country      RoundState `json:"country"`
	City         RoundState `json:"city"`
	HintUsed     bool       `json:"hintUsed"`
	GameComplete bool       `json:"gameComplete"`
}

// New returns the initial state: landmark round, nothing guessed.
func New() State {
	fresh := func() RoundState { return RoundState{Attempts: []string{}, Status: StatusInProgress} }
	return State{
		CurrentRound: RoundLandmark,
		Landmark:     fresh(),
		Country:      fresh(),
		City:         fresh(),
	}
}

// Round returns the state of round r.
func (s State) Round(r Round) RoundState {
	switch r {
	case RoundCountry:
		return s.Country
	case RoundCity:
		return s.City
	default:
		return s.Landmark
	}
}

// TotalGuesses sums attempts over all rounds.
func (s State) TotalGuesses() int {
	return s.Landmark.AttemptCount() + s.Country.AttemptCount() + s.City.AttemptCount()
}

// Equal reports whether two snapshots are identical, attempts included.
func (s State) Equal(o State) bool {
	same := func(a, b RoundState) bool {
		return a.Status == b.Status && slices.Equal(a.Attempts, b.Attempts)
	}
	return s.CurrentRound == o.CurrentRound &&
		s.HintUsed == o.HintUsed &&
		s.GameComplete == o.GameComplete &&
		same(s.Landmark, o.Landmark) &&
		same(s.Country, o.Country) &&
		same(s.City, o.City)
}

// IntentKind enumerates player intents.
type IntentKind string

const (
	IntentGuess   IntentKind = "guess"
	IntentReveal  IntentKind = "reveal"
	IntentAdvance IntentKind = "advance"
	IntentHint    IntentKind = "hint"
)

// Intent is a single player request dispatched into Apply.
// Round is ignored for advance and hint; Text only matters for guesses.
type Intent struct {
	Kind  IntentKind `json:"kind"`
	Round Round      `json:"round"`
	Text  string     `json:"text,omitempty"`
}

// Guess builds a guess intent.
func Guess(r Round, text string) Intent { return Intent{Kind: IntentGuess, Round: r, Text: text} }

// Reveal builds a give-up intent.
func Reveal(r Round) Intent { return Intent{Kind: IntentReveal, Round: r} }

// Advance builds a move-to-next-round intent.
func Advance() Intent { return Intent{Kind: IntentAdvance} }

// Hint builds a continent-hint intent.
func Hint() Intent { return Intent{Kind: IntentHint} }
