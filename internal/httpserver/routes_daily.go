// apps/go-solver/internal/httpserver/routes_daily.go
//
// HTTP routes for the daily game.
//   - GET  /daily      → today's date key and list size (never the answer)
//   - POST /daily/new  → start or resume today's game for this client
//
// A client is identified by the X-Client-ID header, falling back to the
// remote address (RealIP runs first). Guesses go through POST /game/guess.
// Deterministic word selection is based on date + salt.

package httpserver

import (
	"context"
	"errors"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"

	"github.com/robalobadob/wordle/apps/go-solver/internal/daily"
	"github.com/robalobadob/wordle/apps/go-solver/internal/game"
	"github.com/robalobadob/wordle/apps/go-solver/internal/store"
)

// dailyGames maps client|date to the game ID started for it. Only the
// current date is kept, and entries whose game was evicted are swept.
type dailyGames struct {
	mu   sync.Mutex
	date string
	ids  map[string]string
}

// prune drops entries from other dates and, once the map outgrows the
// store, entries whose game is gone. Callers hold mu.
func (d *dailyGames) prune(ctx context.Context, date string, games store.Store) {
	if d.date != date {
		clear(d.ids)
		d.date = date
	}
	if len(d.ids) <= games.Len() {
		return
	}
	for key, id := range d.ids {
		if _, err := games.Get(ctx, id); errors.Is(err, store.ErrNotFound) {
			delete(d.ids, key)
		}
	}
}

func (s *Server) mountDaily(r chi.Router) {
	r.Route("/daily", func(r chi.Router) {
		r.Get("/", s.handleDailyInfo)
		r.Post("/new", s.handleDailyNew)
	})
}

// dailyAnswer returns today's date key, word index, and answer.
func (s *Server) dailyAnswer() (date string, idx int, answer game.Word) {
	now := s.d.Now()
	date = daily.DateKey(now)
	idx = daily.WordIndex(now, s.d.DailySalt, s.d.Words.Len())
	return date, idx, s.d.Words.At(idx)
}

func (s *Server) handleDailyInfo(w http.ResponseWriter, r *http.Request) {
	date, _, _ := s.dailyAnswer()
	writeJSON(w, http.StatusOK, map[string]any{"date": date, "words": s.d.Words.Len()})
}

type dailyNewRes struct {
	GameID  string `json:"gameId"`
	Date    string `json:"date"`
	Resumed bool   `json:"resumed"`
}

// handleDailyNew reuses today's game for the client when it is still stored,
// otherwise creates one.
func (s *Server) handleDailyNew(w http.ResponseWriter, r *http.Request) {
	client := r.Header.Get("X-Client-ID")
	if client == "" {
		client = r.RemoteAddr
	}
	date, _, answer := s.dailyAnswer()
	key := client + "|" + date

	s.daily.mu.Lock()
	defer s.daily.mu.Unlock()
	s.daily.prune(r.Context(), date, s.d.Games)
	if id, ok := s.daily.ids[key]; ok {
		if _, err := s.d.Games.Get(r.Context(), id); err == nil {
			writeJSON(w, http.StatusOK, dailyNewRes{GameID: id, Date: date, Resumed: true})
			return
		}
	}

	g := game.New(answer, s.d.Solver.Policy)
	if err := s.d.Games.Save(r.Context(), g); err != nil {
		writeError(w, http.StatusInternalServerError, "save_failed")
		return
	}
	s.daily.ids[key] = g.ID
	s.daily.prune(r.Context(), date, s.d.Games)
	writeJSON(w, http.StatusOK, dailyNewRes{GameID: g.ID, Date: date})
}
