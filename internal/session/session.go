// internal/session/session.go
//
// Session service: owns a player's daily and past puzzles.
// Responsibilities:
//   - Resolve today's landmark (Clock + Catalog) and resume or start the saved game.
//   - Dispatch player intents through game.Apply and persist the result.
//   - On first completion of a daily game: append to history and record the daily tally.
//   - On completion of a past puzzle: mark it played (never touches history).
//   - Build stats and share text.
//
// Storage failures never surface here; the store.Adapter absorbs them.
// Calls for the same player are serialized; different players run concurrently.

package session

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/landmark/internal/daily"
	"github.com/robalobadob/landmark/internal/game"
	"github.com/robalobadob/landmark/internal/share"
	"github.com/robalobadob/landmark/internal/stats"
	"github.com/robalobadob/landmark/internal/store"
)

var (
	ErrNoPastGame     = errors.New("no past puzzle in progress")
	ErrNoPastPuzzles  = errors.New("no past puzzles left")
	ErrGameInProgress = errors.New("game not complete")
	ErrUnknownMode    = errors.New("unknown mode")
)

// Mode selects which puzzle a request targets.
type Mode string

const (
	ModeDaily Mode = "daily"
	ModePast  Mode = "past"
)

// Catalog is the landmark provider the service needs.
type Catalog interface {
	ByID(id string) (game.Landmark, bool)
	Daily(dayKey string) game.Landmark
	RandomPast(dayKey string, exclude []string) (game.Landmark, bool)
}

// Tally receives first completions of daily puzzles. *daily.Store implements it.
type Tally interface {
	AlreadyRecorded(ctx context.Context, playerID, date string) (bool, error)
	Record(ctx context.Context, r daily.Result) error
}

// Options configures a Service. Tally may be nil.
type Options struct {
	KV       store.KV
	Catalog  Catalog
	Clock    daily.Clock
	Tally    Tally
	ShareURL string
}

type Service struct {
	kv       store.KV
	catalog  Catalog
	clock    daily.Clock
	tally    Tally
	shareURL string

	locks sync.Map // player id -> *sync.Mutex
}

func New(o Options) *Service {
	return &Service{
		kv:       o.KV,
		catalog:  o.Catalog,
		clock:    o.Clock,
		tally:    o.Tally,
		shareURL: o.ShareURL,
	}
}

func (s *Service) lock(player string) func() {
	m, _ := s.locks.LoadOrStore(player, &sync.Mutex{})
	mu := m.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}

// puzzle is a resolved game: which landmark, which day key it is saved under, and its state.
type puzzle struct {
	mode     Mode
	dayKey   string
	landmark game.Landmark
	state    game.State
}

func (s *Service) slot(m Mode) store.Slot {
	if m == ModePast {
		return store.SlotPast
	}
	return store.SlotDaily
}

// current loads the puzzle for mode. Daily always succeeds (a fresh game when
// nothing usable is stored); past requires a started past puzzle.
func (s *Service) current(ctx context.Context, a *store.Adapter, m Mode) (puzzle, error) {
	today := s.clock.TodayKey()
	switch m {
	case ModeDaily:
		l := s.catalog.Daily(today)
		st, ok := a.Load(ctx, store.SlotDaily, l.ID, today)
		if !ok {
			st = game.New()
		}
		return puzzle{mode: m, dayKey: today, landmark: l, state: st}, nil
	case ModePast:
		snap, ok := a.Peek(ctx, store.SlotPast)
		if !ok {
			return puzzle{}, ErrNoPastGame
		}
		l, ok := s.catalog.ByID(snap.LandmarkID)
		if !ok {
			log.Warn().Str("landmark", snap.LandmarkID).Msg("past snapshot references unknown landmark")
			return puzzle{}, ErrNoPastGame
		}
		return puzzle{mode: m, dayKey: snap.Date, landmark: l, state: snap.State}, nil
	}
	return puzzle{}, ErrUnknownMode
}

// Daily returns today's game for player, starting one if needed.
func (s *Service) Daily(ctx context.Context, player string) View {
	defer s.lock(player)()
	a := store.NewAdapter(s.kv, player)
	p, _ := s.current(ctx, a, ModeDaily)
	a.Save(ctx, store.SlotDaily, p.landmark.ID, p.dayKey, p.state)
	return buildView(p)
}

// Past returns the past puzzle in progress, or ErrNoPastGame.
func (s *Service) Past(ctx context.Context, player string) (View, error) {
	defer s.lock(player)()
	p, err := s.current(ctx, store.NewAdapter(s.kv, player), ModePast)
	if err != nil {
		return View{}, err
	}
	return buildView(p), nil
}

// NewPast starts a random past puzzle the player has not completed yet.
func (s *Service) NewPast(ctx context.Context, player string) (View, error) {
	defer s.lock(player)()
	a := store.NewAdapter(s.kv, player)
	today := s.clock.TodayKey()
	l, ok := s.catalog.RandomPast(today, a.PastPlayed(ctx))
	if !ok {
		return View{}, ErrNoPastPuzzles
	}
	p := puzzle{mode: ModePast, dayKey: today, landmark: l, state: game.New()}
	a.Save(ctx, store.SlotPast, l.ID, today, p.state)
	return buildView(p), nil
}

// Dispatch applies in to the player's puzzle for mode and persists the result.
// Rejected intents leave the game untouched and report Accepted=false.
func (s *Service) Dispatch(ctx context.Context, player string, m Mode, in game.Intent) (View, error) {
	defer s.lock(player)()
	a := store.NewAdapter(s.kv, player)
	p, err := s.current(ctx, a, m)
	if err != nil {
		return View{}, err
	}

	prev := p.state
	p.state = game.Apply(prev, p.landmark, in)
	accepted := !p.state.Equal(prev)
	if accepted {
		a.Save(ctx, s.slot(m), p.landmark.ID, p.dayKey, p.state)
		if !prev.GameComplete && p.state.GameComplete {
			s.complete(ctx, a, player, p)
		}
	}

	log.Debug().
		Str("player", player).
		Str("mode", string(m)).
		Str("intent", string(in.Kind)).
		Bool("accepted", accepted).
		Msg("dispatch")

	v := buildView(p)
	v.Accepted = accepted
	return v, nil
}

func (s *Service) complete(ctx context.Context, a *store.Adapter, player string, p puzzle) {
	if p.mode == ModePast {
		a.MarkPastPlayed(ctx, p.landmark.ID)
		return
	}
	out := p.state.Outcome()
	a.RecordResult(ctx, stats.GameResult{
		Date:            p.dayKey,
		LandmarkID:      p.landmark.ID,
		LandmarkGuessed: out.LandmarkGuessed,
		CountryGuessed:  out.CountryGuessed,
		CityGuessed:     out.CityGuessed,
	})
	if s.tally == nil {
		return
	}
	// A replay after lost local progress keeps the first recorded outcome.
	if done, err := s.tally.AlreadyRecorded(ctx, player, p.dayKey); err == nil && done {
		log.Debug().Str("player", player).Str("date", p.dayKey).Msg("daily tally already recorded")
		return
	}
	err := s.tally.Record(ctx, daily.Result{
		PlayerID:        player,
		Date:            p.dayKey,
		LandmarkID:      p.landmark.ID,
		LandmarkGuessed: out.LandmarkGuessed,
		CountryGuessed:  out.CountryGuessed,
		CityGuessed:     out.CityGuessed,
	})
	if err != nil {
		log.Warn().Err(err).Str("player", player).Str("date", p.dayKey).Msg("record daily tally")
	}
}

// Share returns the share text for a completed puzzle.
func (s *Service) Share(ctx context.Context, player string, m Mode) (string, error) {
	defer s.lock(player)()
	p, err := s.current(ctx, store.NewAdapter(s.kv, player), m)
	if err != nil {
		return "", err
	}
	if !p.state.GameComplete {
		return "", ErrGameInProgress
	}
	return share.Text(p.state, p.landmark, p.dayKey, s.shareURL), nil
}

// Stats aggregates the player's daily history.
func (s *Service) Stats(ctx context.Context, player string) StatsView {
	defer s.lock(player)()
	history := store.NewAdapter(s.kv, player).History(ctx)
	sum := stats.Compute(history)
	streak := stats.Streak(history, s.clock.TodayKey())
	return StatsView{
		Summary: sum,
		Streak:  streak,
		Display: StatsDisplay{
			GamesPlayed: stats.Plural(sum.GamesPlayed, "game") + " played",
			Streak:      stats.Plural(streak, "day"),
			Overall:     sum.OverallWinPct.String(),
			Landmark:    sum.LandmarkWinPct.String(),
			Country:     sum.CountryWinPct.String(),
			City:        sum.CityWinPct.String(),
		},
		History: history,
	}
}
