// internal/httpserver/routes.go
//
// Game, suggestion, standings, stats and share endpoints.
//   - POST /game/daily    → enter daily mode (restores today's session)
//   - POST /game/endless  → enter endless mode (always fresh)
//   - POST /game/reset    → brand-new session in the current mode
//   - POST /game/guess    → submit a guess by entity id
//   - GET  /suggest       → fuzzy name suggestions (?q=, ?limit=)
//   - GET  /standings     → full ranked list (?park= filters to one park)
//   - GET  /rank/{id}     → rank of one entity within the pool
//   - GET  /stats         → persisted player stats
//   - GET  /share         → share text for the current session
//
// Responses never include the answer while a session is still playing.

package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/parkdex/coastle/internal/catalog"
	"github.com/parkdex/coastle/internal/game"
	"github.com/parkdex/coastle/internal/match"
	"github.com/parkdex/coastle/internal/rank"
)

// mountGame registers all game-core routes.
func (s *Server) mountGame() {
	s.r.Route("/game", func(r chi.Router) {
		r.Post("/daily", s.handleDaily)
		r.Post("/endless", s.handleEndless)
		r.Post("/reset", s.handleReset)
		r.Post("/guess", s.handleGuess)
	})
	s.r.Get("/suggest", s.handleSuggest)
	s.r.Get("/standings", s.handleStandings)
	s.r.Get("/rank/{id}", s.handleRank)
	s.r.Get("/stats", s.handleStats)
	s.r.Get("/share", s.handleShare)
}

// ------------------------------ views --------------------------------------

// guessView is one evaluated guess with render-ready hints.
type guessView struct {
	ID           string                  `json:"id"`
	Name         string                  `json:"name"`
	Matches      map[string]game.Verdict `json:"matches"`
	NumericDiffs map[string]int          `json:"numericDiffs"`
	Hints        map[string]string       `json:"hints"`
}

// sessionView is the sanitized session state. Answer appears only once the
// game is finished.
type sessionView struct {
	Mode       game.Mode       `json:"mode"`
	Seed       int             `json:"seed,omitempty"`
	Status     game.Status     `json:"status"`
	MaxGuesses int             `json:"maxGuesses"`
	Guesses    []guessView     `json:"guesses"`
	Answer     *catalog.Entity `json:"answer,omitempty"`
}

func toGuessView(rec game.GuessRecord) guessView {
	hints := make(map[string]string)
	for attr, diff := range rec.NumericDiffs {
		if h := game.Hint(diff); h != "" {
			hints[attr] = h
		}
	}
	return guessView{
		ID:           rec.Entity.ID,
		Name:         rec.Entity.Name,
		Matches:      rec.Matches,
		NumericDiffs: rec.NumericDiffs,
		Hints:        hints,
	}
}

func toSessionView(sess *game.Session) sessionView {
	v := sessionView{
		Mode:       sess.Mode,
		Seed:       sess.Seed,
		Status:     sess.Status,
		MaxGuesses: game.MaxGuesses,
		Guesses:    make([]guessView, 0, len(sess.Guesses)),
	}
	for _, g := range sess.Guesses {
		v.Guesses = append(v.Guesses, toGuessView(g))
	}
	if sess.Finished() {
		answer := sess.Answer
		v.Answer = &answer
	}
	return v
}

// ------------------------------ handlers -----------------------------------

func (s *Server) handleDaily(w http.ResponseWriter, r *http.Request) {
	sess, err := s.mgr.StartDaily(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("start daily")
		http.Error(w, `{"error":"catalog_unavailable"}`, http.StatusServiceUnavailable)
		return
	}
	_ = json.NewEncoder(w).Encode(toSessionView(sess))
}

func (s *Server) handleEndless(w http.ResponseWriter, r *http.Request) {
	sess, err := s.mgr.StartEndless(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("start endless")
		http.Error(w, `{"error":"catalog_unavailable"}`, http.StatusServiceUnavailable)
		return
	}
	_ = json.NewEncoder(w).Encode(toSessionView(sess))
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	sess, err := s.mgr.Reset(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("reset session")
		http.Error(w, `{"error":"catalog_unavailable"}`, http.StatusServiceUnavailable)
		return
	}
	_ = json.NewEncoder(w).Encode(toSessionView(sess))
}

// guessReq is the payload for POST /game/guess.
type guessReq struct {
	EntityID string `json:"entityId"`
}

func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	var req guessReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.EntityID == "" {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}

	candidate, ok := s.findEntity(req.EntityID)
	if !ok {
		http.Error(w, `{"error":"unknown_entity"}`, http.StatusBadRequest)
		return
	}

	_, sess, err := s.mgr.SubmitGuess(r.Context(), candidate)
	switch {
	case errors.Is(err, game.ErrNoSession):
		http.Error(w, `{"error":"no_session"}`, http.StatusConflict)
		return
	case errors.Is(err, game.ErrDuplicateGuess):
		http.Error(w, `{"error":"already_guessed"}`, http.StatusConflict)
		return
	case errors.Is(err, game.ErrFinished):
		http.Error(w, `{"error":"game_finished"}`, http.StatusConflict)
		return
	case err != nil:
		log.Error().Err(err).Msg("submit guess")
		http.Error(w, `{"error":"internal"}`, http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(toSessionView(sess))
}

func (s *Server) handleSuggest(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	limit := 10
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 50 {
			limit = n
		}
	}

	type suggestion struct {
		ID   string `json:"id"`
		Name string `json:"name"`
		Park string `json:"park"`
	}
	out := []suggestion{}
	for _, e := range match.Suggest(q, s.mgr.Pool(), limit) {
		out = append(out, suggestion{ID: e.ID, Name: e.Name, Park: e.Park})
	}
	_ = json.NewEncoder(w).Encode(out)
}

func (s *Server) handleStandings(w http.ResponseWriter, r *http.Request) {
	subset := s.mgr.Pool()
	if park := r.URL.Query().Get("park"); park != "" {
		filtered := make([]catalog.Entity, 0, len(subset))
		for _, e := range subset {
			if e.GroupKey == park {
				filtered = append(filtered, e)
			}
		}
		subset = filtered
	}

	type row struct {
		Rank  int     `json:"rank"`
		ID    string  `json:"id"`
		Name  string  `json:"name"`
		Park  string  `json:"park"`
		Score float64 `json:"score"`
	}
	sorted := rank.SortByRank(subset)
	out := make([]row, 0, len(sorted))
	for i, e := range sorted {
		out = append(out, row{Rank: i + 1, ID: e.ID, Name: e.Name, Park: e.Park, Score: e.Score})
	}
	_ = json.NewEncoder(w).Encode(out)
}

func (s *Server) handleRank(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	_ = json.NewEncoder(w).Encode(rank.RankOf(id, s.mgr.Pool()))
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	_ = json.NewEncoder(w).Encode(s.mgr.Stats(r.Context()))
}

func (s *Server) handleShare(w http.ResponseWriter, r *http.Request) {
	sess := s.mgr.Current()
	if sess == nil {
		http.Error(w, `{"error":"no_session"}`, http.StatusConflict)
		return
	}
	// Share text describes a result; an unfinished game has none yet.
	if !sess.Finished() {
		http.Error(w, `{"error":"game_in_progress"}`, http.StatusConflict)
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]string{"text": game.ShareText(sess)})
}

// findEntity locates a pool entity by ID.
func (s *Server) findEntity(id string) (catalog.Entity, bool) {
	for _, e := range s.mgr.Pool() {
		if e.ID == id {
			return e, true
		}
	}
	return catalog.Entity{}, false
}
