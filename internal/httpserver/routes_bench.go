// apps/go-solver/internal/httpserver/routes_bench.go
//
// Benchmark routes (auth required).
//   - POST /bench           {count, seed} → run, persist and return the summary
//   - GET  /bench/runs      ?limit=N      → most recent runs
//   - GET  /bench/runs/{id}               → one run with its outcomes

package httpserver

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-solver/internal/bench"
	"github.com/robalobadob/wordle/apps/go-solver/internal/results"
	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
)

// DefaultBenchCount matches the reference harness: 150 targets.
const DefaultBenchCount = 150

func (s *Server) mountBench(r chi.Router) {
	r.Route("/bench", func(r chi.Router) {
		r.Post("/", s.handleBench)
		r.Get("/runs", s.handleListRuns)
		r.Get("/runs/{id}", s.handleGetRun)
	})
}

type benchReq struct {
	Count  int    `json:"count"`
	Seed   int64  `json:"seed"`
	Policy string `json:"policy"`
}

type benchRes struct {
	bench.Summary
	Outcomes []results.Outcome `json:"outcomes"`
}

func (s *Server) handleBench(w http.ResponseWriter, r *http.Request) {
	if s.d.Results == nil {
		writeError(w, http.StatusServiceUnavailable, "results_disabled")
		return
	}
	var req benchReq
	if err := decode(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	if req.Count <= 0 {
		req.Count = DefaultBenchCount
	}
	if req.Seed == 0 {
		req.Seed = s.d.Seed
	}
	cfg, err := s.configFor(req.Policy)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	targets := s.d.Words.Sample(req.Count, req.Seed)
	sum, outcomes, err := bench.Run(r.Context(), s.d.Words.Words(), targets, cfg, bench.Options{
		Workers:    s.d.BenchWorkers,
		Seed:       req.Seed,
		WordSource: s.d.Words.Source,
	})
	if err != nil {
		if errors.Is(err, solver.ErrBadConfig) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		log.Error().Err(err).Msg("bench run")
		writeError(w, http.StatusInternalServerError, "bench_failed")
		return
	}
	if err := s.d.Results.SaveRun(r.Context(), sum.Run, outcomes); err != nil {
		log.Warn().Err(err).Str("run", sum.ID).Msg("save bench run")
	}
	log.Info().
		Str("run", sum.ID).
		Str("by", Subject(r.Context())).
		Int("targets", sum.Targets).
		Float64("mean", sum.Mean).
		Msg("bench complete")
	writeJSON(w, http.StatusOK, benchRes{Summary: sum, Outcomes: outcomes})
}

func (s *Server) handleListRuns(w http.ResponseWriter, r *http.Request) {
	if s.d.Results == nil {
		writeError(w, http.StatusServiceUnavailable, "results_disabled")
		return
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	runs, err := s.d.Results.ListRuns(r.Context(), limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "db_error")
		return
	}
	writeJSON(w, http.StatusOK, runs)
}

type runRes struct {
	results.Run
	Mean     float64           `json:"mean"`
	Outcomes []results.Outcome `json:"outcomes"`
}

func (s *Server) handleGetRun(w http.ResponseWriter, r *http.Request) {
	if s.d.Results == nil {
		writeError(w, http.StatusServiceUnavailable, "results_disabled")
		return
	}
	id := chi.URLParam(r, "id")
	run, err := s.d.Results.GetRun(r.Context(), id)
	if errors.Is(err, results.ErrNotFound) {
		writeError(w, http.StatusNotFound, "not_found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "db_error")
		return
	}
	outcomes, err := s.d.Results.Outcomes(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "db_error")
		return
	}
	writeJSON(w, http.StatusOK, runRes{Run: run, Mean: run.Mean(), Outcomes: outcomes})
}
