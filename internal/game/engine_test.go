package game

import (
	"encoding/json"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var eiffel = Landmark{
	ID:        "eiffel-tower",
	Name:      "Eiffel Tower",
	Country:   "France",
	City:      "Paris",
	Continent: "Europe",
	ImageURL:  "https://example.com/eiffel.jpg",
}

func play(s State, intents ...Intent) State {
	for _, in := range intents {
		s = Apply(s, eiffel, in)
	}
	return s
}

func TestNewState(t *testing.T) {
	s := New()
	assert.Equal(t, RoundLandmark, s.CurrentRound)
	assert.False(t, s.GameComplete)
	for _, r := range Rounds {
		assert.Equal(t, StatusInProgress, s.Round(r).Status)
		assert.Zero(t, s.Round(r).AttemptCount())
	}
	assert.True(t, s.Consistent())
}

func TestGuessNormalizedMatch(t *testing.T) {
	s := play(New(), Guess(RoundLandmark, "eiffel   tower!!"))
	assert.True(t, s.Landmark.Solved())
	assert.Equal(t, []string{"eiffel   tower!!"}, s.Landmark.Attempts, "guess stored verbatim")
	assert.Equal(t, RoundLandmark, s.CurrentRound, "no implicit advance")
	assert.False(t, s.GameComplete)
}

func TestEmptyGuessIgnored(t *testing.T) {
	s := play(New(), Guess(RoundLandmark, "   "), Guess(RoundLandmark, ""))
	assert.Zero(t, s.Landmark.AttemptCount())
}

func TestGuessWrongRoundIgnored(t *testing.T) {
	s := play(New(), Guess(RoundCountry, "France"), Guess(RoundCity, "Paris"))
	assert.Zero(t, s.Country.AttemptCount())
	assert.Zero(t, s.City.AttemptCount())
}

func TestFifthCorrectGuessIsSolved(t *testing.T) {
	s := play(New(),
		Guess(RoundLandmark, "Big Ben"),
		Guess(RoundLandmark, "Louvre"),
		Guess(RoundLandmark, "Notre Dame"),
		Guess(RoundLandmark, "Arc de Triomphe"),
		Guess(RoundLandmark, "Eiffel Tower"),
	)
	assert.Equal(t, StatusSolved, s.Landmark.Status)
	assert.Equal(t, 5, s.Landmark.AttemptCount())
}

func TestExhaustLandmarkThenAdvance(t *testing.T) {
	s := New()
	for i := 0; i < 5; i++ {
		s = play(s, Guess(RoundLandmark, "wrong"))
	}
	assert.Equal(t, StatusExhausted, s.Landmark.Status)

	after := play(s, Guess(RoundLandmark, "Eiffel Tower"))
	assert.Equal(t, s, after, "guess after finish is a no-op")

	s = play(s, Advance())
	assert.Equal(t, RoundCountry, s.CurrentRound)
}

func TestAdvanceRequiresFinishedRound(t *testing.T) {
	s := play(New(), Guess(RoundLandmark, "wrong"), Advance())
	assert.Equal(t, RoundLandmark, s.CurrentRound)
}

func TestRevealDoesNotConsumeAttempt(t *testing.T) {
	s := play(New(), Guess(RoundLandmark, "wrong"), Reveal(RoundLandmark))
	assert.True(t, s.Landmark.Revealed())
	assert.False(t, s.Landmark.Solved())
	assert.Equal(t, 1, s.Landmark.AttemptCount())

	again := play(s, Reveal(RoundLandmark), Guess(RoundLandmark, "Eiffel Tower"))
	assert.Equal(t, s, again)
}

func TestCityExhaustionCompletesGame(t *testing.T) {
	s := play(New(), Reveal(RoundLandmark), Advance(), Reveal(RoundCountry), Advance())
	require.Equal(t, RoundCity, s.CurrentRound)

	for i := 1; i <= 4; i++ {
		s = play(s, Guess(RoundCity, "Lyon"))
		assert.False(t, s.GameComplete, "attempt %d", i)
	}
	s = play(s, Guess(RoundCity, "Marseille"))
	assert.True(t, s.GameComplete)
	assert.Equal(t, StatusExhausted, s.City.Status)
	assert.False(t, s.Outcome().CityGuessed)
	assert.Equal(t, 5, s.City.AttemptCount())

	sixth := play(s, Guess(RoundCity, "Paris"))
	assert.Equal(t, s, sixth)
}

func TestCitySolveCompletesGame(t *testing.T) {
	s := play(New(),
		Guess(RoundLandmark, "eiffel tower"), Advance(),
		Guess(RoundCountry, "FRANCE"), Advance(),
		Guess(RoundCity, "paris."),
	)
	assert.True(t, s.GameComplete)
	assert.Equal(t, Result{LandmarkGuessed: true, CountryGuessed: true, CityGuessed: true}, s.Outcome())
	assert.Equal(t, 3, s.TotalGuesses())
}

func TestCityRevealCompletesGame(t *testing.T) {
	s := play(New(), Reveal(RoundLandmark), Advance(), Reveal(RoundCountry), Advance(), Reveal(RoundCity))
	assert.True(t, s.GameComplete)
	assert.True(t, s.City.Revealed())
	assert.Zero(t, s.City.AttemptCount())
}

func TestCompletedGameIsFrozen(t *testing.T) {
	s := play(New(), Reveal(RoundLandmark), Advance(), Reveal(RoundCountry), Advance(), Reveal(RoundCity))
	frozen := play(s, Advance(), Hint(), Guess(RoundCity, "Paris"), Reveal(RoundCity))
	assert.Equal(t, s, frozen)
}

func TestHintOnlyInCountryRound(t *testing.T) {
	s := play(New(), Hint())
	assert.False(t, s.HintUsed)

	s = play(s, Reveal(RoundLandmark), Advance(), Hint())
	assert.True(t, s.HintUsed)
	assert.Zero(t, s.Country.AttemptCount())
}

func TestApplyDoesNotAliasHistory(t *testing.T) {
	base := play(New(), Guess(RoundLandmark, "a"), Guess(RoundLandmark, "b"))
	left := play(base, Guess(RoundLandmark, "c"))
	right := play(base, Guess(RoundLandmark, "d"))

	assert.Equal(t, []string{"a", "b"}, base.Landmark.Attempts)
	assert.Equal(t, []string{"a", "b", "c"}, left.Landmark.Attempts)
	assert.Equal(t, []string{"a", "b", "d"}, right.Landmark.Attempts)
}

func TestStateJSONRoundTrip(t *testing.T) {
	s := play(New(), Guess(RoundLandmark, "São"), Reveal(RoundLandmark), Advance(), Hint())
	b, err := json.Marshal(s)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"currentRound":"country"`)

	var back State
	require.NoError(t, json.Unmarshal(b, &back))
	assert.Equal(t, s, back)
}

func TestUnmarshalRejectsUnknownRound(t *testing.T) {
	var s State
	err := json.Unmarshal([]byte(`{"currentRound":"continent"}`), &s)
	assert.Error(t, err)
}

// TestRandomSequencesKeepInvariants drives the reducer with random intents and
// checks the reachable-state invariants after every step.
func TestRandomSequencesKeepInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	guesses := []string{"", "  ", "Eiffel Tower", "France", "Paris", "nope", "louvre", "PARIS!"}

	for run := 0; run < 500; run++ {
		s := New()
		for step := 0; step < 40; step++ {
			var in Intent
			r := Rounds[rng.Intn(len(Rounds))]
			switch rng.Intn(10) {
			case 0:
				in = Reveal(r)
			case 1, 2:
				in = Advance()
			case 3:
				in = Hint()
			default:
				in = Guess(r, guesses[rng.Intn(len(guesses))])
			}

			prev := s
			s = Apply(s, eiffel, in)

			require.True(t, s.Consistent(), "run %d step %d: %+v", run, step, s)
			require.GreaterOrEqual(t, s.CurrentRound, prev.CurrentRound, "round regressed")
			for _, rr := range Rounds {
				require.LessOrEqual(t, s.Round(rr).AttemptCount(), MaxAttempts)
				if prev.Round(rr).Finished() {
					require.Equal(t, prev.Round(rr), s.Round(rr), "finished round changed")
				}
			}
			if prev.GameComplete {
				require.Equal(t, prev, s, "completed game changed")
			}
			if s.GameComplete {
				require.True(t, s.City.Finished())
			}
			if s.CurrentRound == RoundCity {
				require.True(t, s.Country.Finished())
			}
			if s.CurrentRound != RoundLandmark {
				require.True(t, s.Landmark.Finished())
			}
		}
	}
}

func TestParseRound(t *testing.T) {
	r, ok := ParseRound("city")
	assert.True(t, ok)
	assert.Equal(t, RoundCity, r)

	_, ok = ParseRound("City")
	assert.False(t, ok)
}

func TestStateEqual(t *testing.T) {
	a := play(New(), Guess(RoundLandmark, "Louvre"))
	b := play(New(), Guess(RoundLandmark, "Louvre"))
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(play(b, Guess(RoundLandmark, "Eiffel Tower"))))
	assert.True(t, New().Equal(play(New(), Advance())))
}
