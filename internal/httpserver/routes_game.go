// apps/go-solver/internal/httpserver/routes_game.go
//
// Interactive games: a player guesses against a hidden answer and may ask the
// solver for a hint based on the feedback seen so far.
//   - POST /game/new        → {gameId}; answer is random, fixed, or today's daily word
//   - POST /game/guess      → {mask, state, guesses}
//   - GET  /game/{id}/hint  → solver's next guess for this game

package httpserver

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-solver/internal/game"
	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
	"github.com/robalobadob/wordle/apps/go-solver/internal/store"
)

func (s *Server) mountGame(r chi.Router) {
	r.Post("/game/new", s.handleNewGame)
	r.Post("/game/guess", s.handleGuess)
	r.Get("/game/{id}/hint", s.handleHint)
}

// newGameReq/Res payloads for POST /game/new.
type newGameReq struct {
	Answer string `json:"answer"` // optional fixed answer (testing)
	Daily  bool   `json:"daily"`
	Policy string `json:"policy"` // optional; defaults to the server's policy
}
type newGameRes struct {
	GameID string `json:"gameId"`
	Policy string `json:"policy"`
	Rows   int    `json:"rows"`
	Date   string `json:"date,omitempty"`
}

// handleNewGame creates a new in-memory game.
func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req newGameReq
	if err := decode(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}

	policy := s.d.Solver.Policy
	if req.Policy != "" {
		p, err := game.ParsePolicy(req.Policy)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		policy = p
	}

	var (
		answer game.Word
		date   string
	)
	switch {
	case req.Daily:
		date, _, answer = s.dailyAnswer()
	case req.Answer != "":
		a, err := parseWord(req.Answer)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		answer = a
	default:
		answer = s.randomAnswer()
	}

	g := game.New(answer, policy)
	if err := s.d.Games.Save(r.Context(), g); err != nil {
		log.Error().Err(err).Msg("save game")
		writeError(w, http.StatusInternalServerError, "save_failed")
		return
	}
	log.Debug().Str("gameId", g.ID).Bool("daily", req.Daily).Stringer("policy", policy).Msg("game created")
	writeJSON(w, http.StatusOK, newGameRes{GameID: g.ID, Policy: policy.String(), Rows: g.Rows, Date: date})
}

// guessReq/Res payloads for POST /game/guess.
type guessReq struct {
	GameID string `json:"gameId"`
	Guess  string `json:"guess"`
}
type guessRes struct {
	Mask    game.Mask `json:"mask"`
	State   string    `json:"state"` // "playing" | "won" | "lost"
	Guesses int       `json:"guesses"`
	Answer  string    `json:"answer,omitempty"` // revealed once lost
}

// handleGuess applies a guess to a stored game. The load, apply and store
// happen under the store's lock, so concurrent guesses are never lost.
func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	var req guessReq
	if err := decode(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	var res guessRes
	err := s.d.Games.Update(r.Context(), req.GameID, func(g *game.Game) error {
		mask, state, err := g.ApplyGuess(req.Guess, s.d.Words)
		if err != nil {
			return err
		}
		res = guessRes{Mask: mask, State: state, Guesses: len(g.Guesses)}
		if state == "lost" {
			res.Answer = g.Answer.String()
		}
		return nil
	})
	switch {
	case errors.Is(err, store.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found")
	case errors.Is(err, game.ErrGameFinished):
		writeError(w, http.StatusConflict, err.Error())
	case err != nil:
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		writeJSON(w, http.StatusOK, res)
	}
}

type hintRes struct {
	Guess     string `json:"guess"`
	Strategy  string `json:"strategy"`
	Remaining int    `json:"remaining"`
}

// handleHint replays the game's feedback into a fresh solver session.
func (s *Server) handleHint(w http.ResponseWriter, r *http.Request) {
	g, ok := s.loadGame(w, r, chi.URLParam(r, "id"))
	if !ok {
		return
	}
	if g.Finished {
		writeError(w, http.StatusConflict, game.ErrGameFinished.Error())
		return
	}
	cfg := s.d.Solver
	cfg.Policy = g.Policy
	guess, st, pool, err := s.suggest(cfg, g.Guesses, g.Marks)
	if err != nil {
		s.solverError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, hintRes{Guess: guess.String(), Strategy: st.String(), Remaining: len(pool)})
}

// randomAnswer draws an answer from the server's seeded source.
func (s *Server) randomAnswer() game.Word {
	s.answerMu.Lock()
	defer s.answerMu.Unlock()
	return s.d.Words.At(s.answers.Intn(s.d.Words.Len()))
}

func (s *Server) loadGame(w http.ResponseWriter, r *http.Request, id string) (*game.Game, bool) {
	g, err := s.d.Games.Get(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "not_found")
		return nil, false
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "load_failed")
		return nil, false
	}
	return g, true
}

// suggest replays guesses and masks into a new session and returns the next
// guess together with the strategy used and the pool it was chosen from.
func (s *Server) suggest(cfg solver.Config, guesses []game.Word, masks []game.Mask) (game.Word, solver.Strategy, solver.Pool, error) {
	sess, err := solver.NewSession(s.d.Words.Words(), cfg, solver.NewRandSampler(s.d.Seed))
	if err != nil {
		return game.Word{}, 0, nil, err
	}
	for i, gw := range guesses {
		if err := sess.Observe(gw, masks[i]); err != nil {
			return game.Word{}, 0, nil, err
		}
	}
	pool := sess.Pool()
	guess, st, err := sess.Next()
	return guess, st, pool, err
}

// solverError maps solver failures to HTTP status codes.
func (s *Server) solverError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, solver.ErrNoCandidates):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, game.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		log.Error().Err(err).Msg("solver")
		writeError(w, http.StatusInternalServerError, "solver_failed")
	}
}
