package store

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/landmark/internal/game"
	"github.com/robalobadob/landmark/internal/stats"
)

var tower = game.Landmark{ID: "eiffel-tower", Name: "Eiffel Tower", Country: "France", City: "Paris"}

func midGame() game.State {
	s := game.New()
	for _, in := range []game.Intent{
		game.Guess(game.RoundLandmark, "Louvre"),
		game.Guess(game.RoundLandmark, "Eiffel Tower"),
		game.Advance(),
		game.Hint(),
		game.Guess(game.RoundCountry, "Bélgica"),
	} {
		s = game.Apply(s, tower, in)
	}
	return s
}

// brokenKV fails every operation, like disabled or full browser storage.
type brokenKV struct{}

var errBroken = errors.New("quota exceeded")

func (brokenKV) Get(context.Context, string) ([]byte, error) { return nil, errBroken }
func (brokenKV) Put(context.Context, string, []byte) error   { return errBroken }

func TestSaveLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	a := NewAdapter(NewMemory(), "p1")
	s := midGame()

	a.Save(ctx, SlotDaily, "eiffel-tower", "2024-01-02", s)
	got, ok := a.Load(ctx, SlotDaily, "eiffel-tower", "2024-01-02")
	require.True(t, ok)
	assert.Equal(t, s, got)
}

func TestLoadStaleDay(t *testing.T) {
	ctx := context.Background()
	a := NewAdapter(NewMemory(), "p1")
	a.Save(ctx, SlotDaily, "X", "2024-01-01", midGame())

	_, ok := a.Load(ctx, SlotDaily, "X", "2024-01-02")
	assert.False(t, ok)
}

func TestLoadDifferentPuzzle(t *testing.T) {
	ctx := context.Background()
	a := NewAdapter(NewMemory(), "p1")
	a.Save(ctx, SlotDaily, "X", "2024-01-02", midGame())

	_, ok := a.Load(ctx, SlotDaily, "Y", "2024-01-02")
	assert.False(t, ok)
}

func TestLoadNothingStored(t *testing.T) {
	_, ok := NewAdapter(NewMemory(), "p1").Load(context.Background(), SlotDaily, "X", "2024-01-02")
	assert.False(t, ok)
}

func TestLoadCorruptBlob(t *testing.T) {
	ctx := context.Background()
	kv := NewMemory()
	require.NoError(t, kv.Put(ctx, "p1:"+string(SlotDaily), []byte("{not json")))

	_, ok := NewAdapter(kv, "p1").Load(ctx, SlotDaily, "X", "2024-01-02")
	assert.False(t, ok)
}

func TestLoadInconsistentSnapshot(t *testing.T) {
	ctx := context.Background()
	kv := NewMemory()
	blob := `{"date":"2024-01-02","landmarkId":"X","state":{"currentRound":"city",
		"landmark":{"attempts":[],"status":"in_progress"},
		"country":{"attempts":[],"status":"in_progress"},
		"city":{"attempts":[],"status":"in_progress"}}}`
	require.NoError(t, kv.Put(ctx, "p1:"+string(SlotDaily), []byte(blob)))

	_, ok := NewAdapter(kv, "p1").Load(ctx, SlotDaily, "X", "2024-01-02")
	assert.False(t, ok)
}

func TestLoadToleratesExtraFields(t *testing.T) {
	ctx := context.Background()
	kv := NewMemory()
	blob := `{"date":"2024-01-02","landmarkId":"X","version":7,"state":{"currentRound":"landmark",
		"landmark":{"attempts":["a"],"status":"in_progress","flair":true},
		"country":{"attempts":[],"status":"in_progress"},
		"city":{"attempts":[]},"showPreviousRound":false}}`
	require.NoError(t, kv.Put(ctx, "p1:"+string(SlotDaily), []byte(blob)))

	s, ok := NewAdapter(kv, "p1").Load(ctx, SlotDaily, "X", "2024-01-02")
	require.True(t, ok)
	assert.Equal(t, []string{"a"}, s.Landmark.Attempts)
	assert.Equal(t, game.StatusInProgress, s.City.Status)
}

func TestSlotsAndPlayersAreIndependent(t *testing.T) {
	ctx := context.Background()
	kv := NewMemory()
	p1, p2 := NewAdapter(kv, "p1"), NewAdapter(kv, "p2")

	p1.Save(ctx, SlotDaily, "X", "2024-01-02", midGame())

	_, ok := p1.Load(ctx, SlotPast, "X", "2024-01-02")
	assert.False(t, ok)
	_, ok = p2.Load(ctx, SlotDaily, "X", "2024-01-02")
	assert.False(t, ok)
}

func TestStorageFailureIsAbsorbed(t *testing.T) {
	ctx := context.Background()
	a := NewAdapter(brokenKV{}, "p1")

	assert.NotPanics(t, func() {
		a.Save(ctx, SlotDaily, "X", "2024-01-02", midGame())
		a.RecordResult(ctx, stats.GameResult{Date: "2024-01-02"})
		a.MarkPastPlayed(ctx, "X")
	})
	_, ok := a.Load(ctx, SlotDaily, "X", "2024-01-02")
	assert.False(t, ok)
	assert.Empty(t, a.History(ctx))
	assert.Empty(t, a.PastPlayed(ctx))
}

func TestRecordResultUpsertsByDate(t *testing.T) {
	ctx := context.Background()
	a := NewAdapter(NewMemory(), "p1")

	a.RecordResult(ctx, stats.GameResult{Date: "2024-01-01", LandmarkID: "a"})
	a.RecordResult(ctx, stats.GameResult{Date: "2024-01-02", LandmarkID: "b"})
	a.RecordResult(ctx, stats.GameResult{Date: "2024-01-01", LandmarkID: "a", CityGuessed: true})

	h := a.History(ctx)
	require.Len(t, h, 2)
	assert.Equal(t, "2024-01-02", h[0].Date)
	assert.Equal(t, "2024-01-01", h[1].Date)
	assert.True(t, h[1].CityGuessed)
}

func TestMarkPastPlayedDedups(t *testing.T) {
	ctx := context.Background()
	a := NewAdapter(NewMemory(), "p1")
	a.MarkPastPlayed(ctx, "a")
	a.MarkPastPlayed(ctx, "b")
	a.MarkPastPlayed(ctx, "a")
	assert.Equal(t, []string{"a", "b"}, a.PastPlayed(ctx))
}

func TestPeekReturnsAnyPuzzle(t *testing.T) {
	ctx := context.Background()
	a := NewAdapter(NewMemory(), "p1")
	a.Save(ctx, SlotPast, "big-ben", "2024-01-02", game.New())

	snap, ok := a.Peek(ctx, SlotPast)
	require.True(t, ok)
	assert.Equal(t, "big-ben", snap.LandmarkID)
	assert.Equal(t, "2024-01-02", snap.Date)
}

func TestMemoryCopiesValues(t *testing.T) {
	ctx := context.Background()
	kv := NewMemory()
	v := []byte("abc")
	require.NoError(t, kv.Put(ctx, "k", v))
	v[0] = 'z'

	got, err := kv.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(got))

	_, err = kv.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestClaimCopiesOnlyMissingKeys(t *testing.T) {
	ctx := context.Background()
	kv := NewMemory()
	anon, acct := NewAdapter(kv, "anon"), NewAdapter(kv, "acct")

	anon.Save(ctx, SlotDaily, "eiffel-tower", "2024-01-02", midGame())
	anon.RecordResult(ctx, stats.GameResult{Date: "2024-01-01", LandmarkID: "a"})
	acct.RecordResult(ctx, stats.GameResult{Date: "2023-12-31", LandmarkID: "z"})

	Claim(ctx, kv, "anon", "acct")

	got, ok := acct.Load(ctx, SlotDaily, "eiffel-tower", "2024-01-02")
	require.True(t, ok)
	assert.Equal(t, midGame(), got)

	h := acct.History(ctx)
	require.Len(t, h, 1)
	assert.Equal(t, "z", h[0].LandmarkID)

	Claim(ctx, brokenKV{}, "anon", "acct")
	Claim(ctx, kv, "acct", "acct")
}
