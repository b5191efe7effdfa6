// internal/httpserver/routes_game.go
//
// HTTP routes for play. The same intent endpoints are mounted twice:
//   - /daily → today's puzzle (same landmark for everyone, one per calendar day)
//   - /past  → a random earlier puzzle, never counted in stats
//
//   GET  /daily            → start or resume today's game
//   POST /past/new         → start a random past puzzle
//   GET  /past             → resume the past puzzle in progress
//   POST /{mode}/guess     {round, text}
//   POST /{mode}/reveal    {round}
//   POST /{mode}/advance
//   POST /{mode}/hint
//   GET  /{mode}/share     → plain share text once the game is complete
//   GET  /daily/tally      → per-date completion counts across all players
//
// Intents the game rejects (wrong round, finished round, empty guess) are not
// errors: the response is the unchanged view with "accepted": false.

package httpserver

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/landmark/internal/game"
	"github.com/robalobadob/landmark/internal/session"
)

// intentReq is the body of guess/reveal requests.
type intentReq struct {
	Round *game.Round `json:"round"`
	Text  string      `json:"text"`
}

// mountGame registers /daily and /past under r.
func (s *Server) mountGame(r chi.Router) {
	r.Route("/daily", func(r chi.Router) {
		r.Get("/", s.handleDaily)
		r.Get("/tally", s.handleTally)
		s.mountIntents(r, session.ModeDaily)
	})
	r.Route("/past", func(r chi.Router) {
		r.Get("/", s.handlePast)
		r.Post("/new", s.handleNewPast)
		s.mountIntents(r, session.ModePast)
	})
}

func (s *Server) mountIntents(r chi.Router, m session.Mode) {
	r.Post("/guess", s.handleIntent(m, game.IntentGuess))
	r.Post("/reveal", s.handleIntent(m, game.IntentReveal))
	r.Post("/advance", s.handleIntent(m, game.IntentAdvance))
	r.Post("/hint", s.handleIntent(m, game.IntentHint))
	r.Get("/share", s.handleShare(m))
}

func (s *Server) handleDaily(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.deps.Games.Daily(r.Context(), playerFrom(r.Context())))
}

func (s *Server) handlePast(w http.ResponseWriter, r *http.Request) {
	v, err := s.deps.Games.Past(r.Context(), playerFrom(r.Context()))
	if err != nil {
		writeGameError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, v)
}

func (s *Server) handleNewPast(w http.ResponseWriter, r *http.Request) {
	v, err := s.deps.Games.NewPast(r.Context(), playerFrom(r.Context()))
	if err != nil {
		writeGameError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, v)
}

// handleIntent builds the handler for one intent kind in mode m.
func (s *Server) handleIntent(m session.Mode, kind game.IntentKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		in := game.Intent{Kind: kind}
		if kind == game.IntentGuess || kind == game.IntentReveal {
			var req intentReq
			if err := decode(r, &req); err != nil {
				writeError(w, http.StatusBadRequest, "bad_json")
				return
			}
			if req.Round == nil {
				writeError(w, http.StatusBadRequest, "missing_round")
				return
			}
			in.Round, in.Text = *req.Round, req.Text
		}

		v, err := s.deps.Games.Dispatch(r.Context(), playerFrom(r.Context()), m, in)
		if err != nil {
			writeGameError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, v)
	}
}

type shareRes struct {
	Text string `json:"text"`
}

func (s *Server) handleShare(m session.Mode) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		text, err := s.deps.Games.Share(r.Context(), playerFrom(r.Context()), m)
		if err != nil {
			writeGameError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, shareRes{Text: text})
	}
}

// writeGameError maps session errors to status codes.
func writeGameError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, session.ErrNoPastGame):
		writeError(w, http.StatusNotFound, "no_past_game")
	case errors.Is(err, session.ErrNoPastPuzzles):
		writeError(w, http.StatusNotFound, "no_past_puzzles")
	case errors.Is(err, session.ErrGameInProgress):
		writeError(w, http.StatusConflict, "game_in_progress")
	default:
		log.Error().Err(err).Msg("game request")
		writeError(w, http.StatusInternalServerError, "internal")
	}
}
