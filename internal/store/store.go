// internal/store/store.go
//
// Persistence for player progress.
//
// Two layers:
//   - KV: "read/write a blob under a key". Memory and SQLite implementations.
//   - Adapter: the only component that talks to KV on behalf of a player. It
//     round-trips game snapshots (single slot per mode, stale ones discarded)
//     and the append-only daily history (upsert by date).
//
// The Adapter never reports storage failures to callers: a failed save is a
// logged no-op and a failed load is "nothing stored". The in-memory snapshot
// stays authoritative for the session either way.

package store

import (
	"context"
	"encoding/json"
	"errors"
	"slices"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/landmark/internal/game"
	"github.com/robalobadob/landmark/internal/stats"
)

// ErrNotFound is returned by KV.Get for a missing key.
var ErrNotFound = errors.New("not found")

// KV is the raw blob storage contract.
// Implementations may be backed by memory (this package), SQLite, Redis, etc.
type KV interface {
	// Get returns the blob under key or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Put stores value under key, overwriting unconditionally.
	Put(ctx context.Context, key string, value []byte) error
}

// Slot selects which single-slot snapshot to use.
type Slot string

const (
	SlotDaily Slot = "landmark-game-state"
	SlotPast  Slot = "landmark-past-state"
)

const (
	historyKey    = "landmark-game-history"
	pastPlayedKey = "landmark-past-played"
)

// Snapshot is the persisted single-slot record.
type Snapshot struct {
	Date       string     `json:"date"`
	LandmarkID string     `json:"landmarkId"`
	State      game.State `json:"state"`
}

// Adapter persists one player's progress. Keys are namespaced by player id.
type Adapter struct {
	kv        KV
	namespace string
}

// NewAdapter returns an adapter for playerID over kv.
func NewAdapter(kv KV, playerID string) *Adapter {
	return &Adapter{kv: kv, namespace: playerID}
}

func (a *Adapter) key(name string) string {
	if a.namespace == "" {
		return name
	}
	return a.namespace + ":" + name
}

// Save overwrites the slot with {dayKey, puzzleID, state}. Failures are logged and dropped.
func (a *Adapter) Save(ctx context.Context, slot Slot, puzzleID, dayKey string, s game.State) {
	a.putJSON(ctx, string(slot), Snapshot{Date: dayKey, LandmarkID: puzzleID, State: s})
}

// Load returns the stored state when it belongs to puzzleID on dayKey.
// Missing, unreadable, inconsistent or stale snapshots all yield ok=false.
func (a *Adapter) Load(ctx context.Context, slot Slot, puzzleID, dayKey string) (game.State, bool) {
	snap, ok := a.Peek(ctx, slot)
	if !ok || snap.Date != dayKey || snap.LandmarkID != puzzleID {
		return game.State{}, false
	}
	return snap.State, true
}

// Peek returns whatever snapshot is in the slot without staleness checks.
func (a *Adapter) Peek(ctx context.Context, slot Slot) (Snapshot, bool) {
	var snap Snapshot
	if !a.getJSON(ctx, string(slot), &snap) {
		return Snapshot{}, false
	}
	if snap.LandmarkID == "" || !snap.State.Consistent() {
		log.Warn().Str("key", a.key(string(slot))).Msg("discarding inconsistent snapshot")
		return Snapshot{}, false
	}
	return snap, true
}

// History returns the stored daily results in append order; empty on any failure.
func (a *Adapter) History(ctx context.Context) []stats.GameResult {
	var h []stats.GameResult
	if !a.getJSON(ctx, historyKey, &h) {
		return []stats.GameResult{}
	}
	return h
}

// RecordResult upserts r by date into the history.
func (a *Adapter) RecordResult(ctx context.Context, r stats.GameResult) {
	a.putJSON(ctx, historyKey, stats.Upsert(a.History(ctx), r))
}

// PastPlayed returns ids of completed past puzzles.
func (a *Adapter) PastPlayed(ctx context.Context) []string {
	var ids []string
	if !a.getJSON(ctx, pastPlayedKey, &ids) {
		return []string{}
	}
	return ids
}

// MarkPastPlayed adds id to the completed past puzzles (no duplicates).
func (a *Adapter) MarkPastPlayed(ctx context.Context, id string) {
	ids := a.PastPlayed(ctx)
	if slices.Contains(ids, id) {
		return
	}
	a.putJSON(ctx, pastPlayedKey, append(ids, id))
}

// Claim copies from's progress into to when to has none of its own yet.
// Used when an anonymous player signs up or logs in.
func Claim(ctx context.Context, kv KV, from, to string) {
	if from == "" || to == "" || from == to {
		return
	}
	src, dst := NewAdapter(kv, from), NewAdapter(kv, to)
	for _, name := range []string{string(SlotDaily), string(SlotPast), historyKey, pastPlayedKey} {
		if _, err := kv.Get(ctx, dst.key(name)); err == nil {
			continue
		}
		b, err := kv.Get(ctx, src.key(name))
		if err != nil {
			continue
		}
		if err := kv.Put(ctx, dst.key(name), b); err != nil {
			log.Warn().Err(err).Str("key", dst.key(name)).Msg("claim progress")
		}
	}
}

func (a *Adapter) getJSON(ctx context.Context, name string, v any) bool {
	key := a.key(name)
	b, err := a.kv.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			log.Warn().Err(err).Str("key", key).Msg("storage read failed")
		}
		return false
	}
	if err := json.Unmarshal(b, v); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("discarding unreadable blob")
		return false
	}
	return true
}

func (a *Adapter) putJSON(ctx context.Context, name string, v any) {
	key := a.key(name)
	b, err := json.Marshal(v)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("encode blob")
		return
	}
	if err := a.kv.Put(ctx, key, b); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("storage write failed")
	}
}
