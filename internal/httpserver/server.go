// apps/go-solver/internal/httpserver/server.go
//
// HTTP server wiring for the solver.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs).
//   - Public endpoints: "/", "/health", "/debug/words".
//   - Interactive games: POST /game/new, POST /game/guess, GET /game/{id}/hint.
//   - Daily game: mounted under /daily.
//   - Solver endpoints: POST /solve, POST /suggest.
//   - Benchmarks (require auth): POST /bench, GET /bench/runs, GET /bench/runs/{id}.
//   - Token issuance: POST /auth/token (bcrypt-checked admin credentials).
//
// Notes:
//   - Bench routes get a longer timeout than the rest of the API.
//   - Without a results store the bench routes answer 503.

package httpserver

import (
	"encoding/json"
	"errors"
	"io"
	"math/rand"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-solver/internal/game"
	"github.com/robalobadob/wordle/apps/go-solver/internal/results"
	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
	"github.com/robalobadob/wordle/apps/go-solver/internal/store"
	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

const (
	apiTimeout   = 10 * time.Second
	benchTimeout = 5 * time.Minute
	maxBodyBytes = 1 << 16
)

// Deps are the collaborators a Server needs.
type Deps struct {
	Games   store.Store
	Words   *words.List
	Results *results.Store // optional

	Solver       solver.Config
	Seed         int64
	BenchWorkers int

	Auth         AuthConfig
	DailySalt    string
	ClientOrigin string

	Now        func() time.Time // defaults to time.Now
	AnswerSeed int64            // seeds random /game/new answers; 0 uses the clock
}

// Server bundles the router and its dependencies.
type Server struct {
	r     *chi.Mux
	d     Deps
	daily *dailyGames

	answerMu sync.Mutex
	answers  *rand.Rand
}

// New constructs a Server, installs middleware, and registers routes.
func New(d Deps) *Server {
	if d.Now == nil {
		d.Now = time.Now
	}
	seed := d.AnswerSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	s := &Server{
		r:       chi.NewRouter(),
		d:       d,
		daily:   &dailyGames{ids: make(map[string]string)},
		answers: rand.New(rand.NewSource(seed)),
	}

	// --- middleware ---
	s.r.Use(chimw.RequestID)
	s.r.Use(chimw.RealIP)
	s.r.Use(chimw.Recoverer)
	s.r.Use(jsonContentType)
	s.r.Use(cors(d.ClientOrigin))

	s.r.Group(func(r chi.Router) {
		r.Use(chimw.Timeout(apiTimeout))

		// --- diagnostics ---
		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, map[string]any{
				"service": "wordle-solver",
				"endpoints": []string{
					"/health", "POST /game/new", "POST /game/guess", "GET /game/{id}/hint",
					"/daily", "POST /solve", "POST /suggest", "POST /auth/token", "/bench/*",
				},
			})
		})
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
		})
		r.Get("/debug/words", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, map[string]any{
				"source":  s.d.Words.Source,
				"words":   s.d.Words.Len(),
				"dropped": s.d.Words.Dropped,
			})
		})

		s.mountGame(r)
		s.mountDaily(r)
		s.mountSolver(r)
		r.Post("/auth/token", s.handleToken)
	})

	s.r.Group(func(r chi.Router) {
		r.Use(chimw.Timeout(benchTimeout))
		r.Use(s.requireAuth())
		s.mountBench(r)
	})

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not_found", "path": r.URL.Path})
	})

	return s
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.r,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return srv.ListenAndServe()
}

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// cors enables credentialed CORS for a single origin.
func cors(origin string) func(http.Handler) http.Handler {
	if origin == "" {
		origin = "http://localhost:5173"
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Vary", "Origin")
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// ------------------------------- helpers -----------------------------------

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Warn().Err(err).Msg("encode response")
	}
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"error": msg})
}

// parseWord encodes user text, ignoring case and surrounding space.
func parseWord(text string) (game.Word, error) {
	return game.Encode(strings.ToUpper(strings.TrimSpace(text)))
}

// decode reads a JSON body into v. An empty body leaves v untouched.
func decode(w http.ResponseWriter, r *http.Request, v any) error {
	if r.Body == nil {
		return nil
	}
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(v); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
