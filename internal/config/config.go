// apps/go-solver/internal/config/config.go
//
// Environment-driven configuration for the server, CLI and benchmark.
// main loads .env (godotenv) first, so values here see both sources.

package config

import (
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/robalobadob/wordle/apps/go-solver/internal/game"
	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
)

// DevSecret signs tokens when JWT_SECRET is unset.
const DevSecret = "dev_secret_change_me"

// Config is everything read from the environment.
type Config struct {
	Port         string
	LogLevel     string
	DBPath       string
	WordsFile    string
	ClientOrigin string
	CookieSecure bool // APP_ENV=production

	JWTSecret   string
	JWTExpiry   time.Duration
	AdminUser   string
	AdminHash   string // bcrypt hash; empty disables POST /auth/token
	DailySalt   string
	BenchWorker int

	Seed   int64
	Solver solver.Config
}

// Load reads the environment. Malformed values are errors, missing ones
// fall back to defaults.
func Load() (Config, error) {
	c := Config{
		Port:         getEnv("PORT", "5175"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		DBPath:       getEnv("DB_PATH", "./data/solver.db"),
		WordsFile:    os.Getenv("WORDS_FILE"),
		ClientOrigin: getEnv("CLIENT_ORIGIN", "http://localhost:5173"),
		CookieSecure: os.Getenv("APP_ENV") == "production",
		JWTSecret:    getEnv("JWT_SECRET", DevSecret),
		AdminUser:    getEnv("ADMIN_USERNAME", "admin"),
		AdminHash:    os.Getenv("ADMIN_PASSWORD_HASH"),
		DailySalt:    getEnv("DAILY_SALT", "local_dev_salt"),
		Solver:       solver.DefaultConfig(),
	}

	days, err := envInt("JWT_EXPIRES_DAYS", 14)
	if err != nil {
		return c, err
	}
	c.JWTExpiry = time.Duration(days) * 24 * time.Hour

	if c.BenchWorker, err = envInt("BENCH_WORKERS", runtime.GOMAXPROCS(0)); err != nil {
		return c, err
	}
	seed, err := envInt("SOLVER_SEED", int(solver.DefaultSeed))
	if err != nil {
		return c, err
	}
	c.Seed = int64(seed)

	if v := os.Getenv("SOLVER_POLICY"); v != "" {
		if c.Solver.Policy, err = game.ParsePolicy(v); err != nil {
			return c, fmt.Errorf("SOLVER_POLICY: %w", err)
		}
	}
	if c.Solver.SampleThreshold, err = envInt("SOLVER_SAMPLE_THRESHOLD", c.Solver.SampleThreshold); err != nil {
		return c, err
	}
	if c.Solver.SampleBudget, err = envInt("SOLVER_SAMPLE_BUDGET", c.Solver.SampleBudget); err != nil {
		return c, err
	}
	if c.Solver.MaxTurns, err = envInt("SOLVER_MAX_TURNS", c.Solver.MaxTurns); err != nil {
		return c, err
	}
	if c.Solver.UseMatrix, err = envBool("SOLVER_USE_MATRIX", c.Solver.UseMatrix); err != nil {
		return c, err
	}
	return c, c.Solver.Validate()
}

// getEnv returns the value of k or def if unset/empty.
func getEnv(k, def string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return def
}

func envInt(k string, def int) (int, error) {
	v := getEnv(k, "")
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def, fmt.Errorf("%s: %w", k, err)
	}
	return n, nil
}

func envBool(k string, def bool) (bool, error) {
	v := getEnv(k, "")
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def, fmt.Errorf("%s: %w", k, err)
	}
	return b, nil
}
