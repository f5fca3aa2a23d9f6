// apps/go-solver/internal/httpserver/routes_solver.go
//
// Stateless solver endpoints.
//   - POST /solve    {target, seed?}               → full solve trace
//   - POST /suggest  {guesses:[{guess, mask}], ...} → next guess for observed feedback

package httpserver

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/robalobadob/wordle/apps/go-solver/internal/game"
	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
)

// maxListedCandidates bounds the candidates echoed by /suggest.
const maxListedCandidates = 20

func (s *Server) mountSolver(r chi.Router) {
	r.Post("/solve", s.handleSolve)
	r.Post("/suggest", s.handleSuggest)
}

type solveReq struct {
	Target string `json:"target"`
	Seed   int64  `json:"seed"`
	Policy string `json:"policy"`
}

type solveRes struct {
	solver.Result
	Error string `json:"error,omitempty"`
}

// handleSolve runs a full local solve. A target outside the list may empty
// the pool; the partial trace is still returned, with status 422.
func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	var req solveReq
	if err := decode(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	target, err := parseWord(req.Target)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	cfg, err := s.configFor(req.Policy)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	seed := req.Seed
	if seed == 0 {
		seed = s.d.Seed
	}

	res, err := solver.Run(s.d.Words.Words(), target, cfg, solver.NewRandSampler(seed))
	switch {
	case errors.Is(err, solver.ErrNoCandidates):
		writeJSON(w, http.StatusUnprocessableEntity, solveRes{Result: res, Error: err.Error()})
	case err != nil:
		s.solverError(w, err)
	default:
		writeJSON(w, http.StatusOK, solveRes{Result: res})
	}
}

type observation struct {
	Guess string `json:"guess"`
	Mask  string `json:"mask"`
}

type suggestReq struct {
	Guesses []observation `json:"guesses"`
	Policy  string        `json:"policy"`
}

type suggestRes struct {
	Guess      string   `json:"guess"`
	Strategy   string   `json:"strategy"`
	Remaining  int      `json:"remaining"`
	Candidates []string `json:"candidates"`
}

// handleSuggest returns the next guess for feedback observed elsewhere, e.g.
// a game played on another site.
func (s *Server) handleSuggest(w http.ResponseWriter, r *http.Request) {
	var req suggestReq
	if err := decode(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	cfg, err := s.configFor(req.Policy)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	guesses := make([]game.Word, len(req.Guesses))
	masks := make([]game.Mask, len(req.Guesses))
	for i, o := range req.Guesses {
		if guesses[i], err = parseWord(o.Guess); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		if masks[i], err = game.ParseMask(o.Mask); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
	}

	guess, st, pool, err := s.suggest(cfg, guesses, masks)
	if err != nil {
		s.solverError(w, err)
		return
	}

	listed := pool
	if len(listed) > maxListedCandidates {
		listed = listed[:maxListedCandidates]
	}
	writeJSON(w, http.StatusOK, suggestRes{
		Guess:      guess.String(),
		Strategy:   st.String(),
		Remaining:  len(pool),
		Candidates: listed.Strings(),
	})
}

// configFor returns the server's solver config, with the policy overridden
// when name is non-empty.
func (s *Server) configFor(name string) (solver.Config, error) {
	cfg := s.d.Solver
	if name == "" {
		return cfg, nil
	}
	p, err := game.ParsePolicy(name)
	if err != nil {
		return cfg, err
	}
	cfg.Policy = p
	return cfg, nil
}
