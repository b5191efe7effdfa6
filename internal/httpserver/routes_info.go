package httpserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/landmark/internal/daily"
	"github.com/robalobadob/landmark/internal/geo"
	"github.com/robalobadob/landmark/internal/landmarks"
	"github.com/robalobadob/landmark/internal/session"
)

type statsRes struct {
	session.StatsView
	Username string `json:"username,omitempty"`
}

// handleStats returns the player's win rates, streak and history.
func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	res := statsRes{StatsView: s.deps.Games.Stats(r.Context(), playerFrom(r.Context()))}
	if u := userFrom(r.Context()); u != nil {
		res.Username = u.Username
	}
	writeJSON(w, http.StatusOK, res)
}

// handleDirection answers GET /direction?from=&to= with the arrow, or null
// when either country is unknown.
func (s *Server) handleDirection(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	d, ok := geo.Hint(q.Get("from"), q.Get("to"))
	if !ok {
		writeJSON(w, http.StatusOK, nil)
		return
	}
	writeJSON(w, http.StatusOK, d)
}

// handleSuggest answers GET /suggest/{countries|cities}?q=.
func (s *Server) handleSuggest(w http.ResponseWriter, r *http.Request) {
	var list []string
	switch chi.URLParam(r, "list") {
	case "countries":
		list = s.deps.Catalog.Countries()
	case "cities":
		list = s.deps.Catalog.Cities()
	default:
		writeError(w, http.StatusNotFound, "unknown_list")
		return
	}
	writeJSON(w, http.StatusOK, landmarks.Suggest(r.URL.Query().Get("q"), list, landmarks.MaxSuggestions))
}

// handleTally answers GET /daily/tally?date= (defaults to today).
func (s *Server) handleTally(w http.ResponseWriter, r *http.Request) {
	if s.deps.Tally == nil {
		writeError(w, http.StatusServiceUnavailable, "tally_disabled")
		return
	}
	date := r.URL.Query().Get("date")
	if date == "" {
		date = s.deps.Clock.TodayKey()
	} else if _, err := daily.ParseKey(date); err != nil {
		writeError(w, http.StatusBadRequest, "bad_date")
		return
	}
	t, err := s.deps.Tally.Tally(r.Context(), date)
	if err != nil {
		log.Error().Err(err).Str("date", date).Msg("daily tally")
		writeError(w, http.StatusInternalServerError, "db_error")
		return
	}
	writeJSON(w, http.StatusOK, t)
}
