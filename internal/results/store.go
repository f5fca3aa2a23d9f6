// apps/go-solver/internal/results/store.go
//
// SQLite-backed storage for benchmark runs and their per-target outcomes.

package results

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrNotFound is returned when a run ID is unknown.
var ErrNotFound = errors.New("results: not found")

// timeLayout is fixed-width so created_at sorts lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Run is the stored summary of one benchmark.
type Run struct {
	ID         string    `json:"id"`
	CreatedAt  time.Time `json:"createdAt"`
	Policy     string    `json:"policy"`
	Seed       int64     `json:"seed"`
	WordSource string    `json:"wordSource"`
	Targets    int       `json:"targets"`
	TotalTurns int       `json:"totalTurns"`
	Wins       int       `json:"wins"`
	Failures   int       `json:"failures"`
	ElapsedMs  int64     `json:"elapsedMs"`
}

// Mean returns the average score per target.
func (r Run) Mean() float64 {
	if r.Targets == 0 {
		return 0
	}
	return float64(r.TotalTurns) / float64(r.Targets)
}

// Outcome is the result of solving one target.
type Outcome struct {
	Target    string   `json:"target"`
	Turns     int      `json:"turns"`
	Won       bool     `json:"won"`
	Err       string   `json:"error,omitempty"`
	ElapsedUs int64    `json:"elapsedUs"`
	Guesses   []string `json:"guesses"`
}

// Store wraps a database handle.
type Store struct{ db *sql.DB }

// NewStore returns a Store over an opened, migrated database.
func NewStore(db *sql.DB) *Store { return &Store{db: db} }

// SaveRun inserts the run and all outcomes in one transaction.
func (s *Store) SaveRun(ctx context.Context, r Run, outcomes []Outcome) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now().UTC()
	}
	if _, err := tx.ExecContext(ctx, `
        INSERT INTO bench_runs
            (id, created_at, policy, seed, word_source, targets, total_turns, wins, failures, elapsed_ms)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.CreatedAt.UTC().Format(timeLayout), r.Policy, r.Seed, r.WordSource,
		r.Targets, r.TotalTurns, r.Wins, r.Failures, r.ElapsedMs,
	); err != nil {
		return fmt.Errorf("insert run: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
        INSERT INTO bench_outcomes (run_id, target, turns, won, error, elapsed_us, guesses)
        VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare outcome: %w", err)
	}
	defer stmt.Close()
	for _, o := range outcomes {
		if _, err := stmt.ExecContext(ctx, r.ID, o.Target, o.Turns, o.Won, nullIfEmpty(o.Err),
			o.ElapsedUs, strings.Join(o.Guesses, " ")); err != nil {
			return fmt.Errorf("insert outcome %s: %w", o.Target, err)
		}
	}
	return tx.Commit()
}

const runColumns = `id, created_at, policy, seed, word_source, targets, total_turns, wins, failures, elapsed_ms`

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(row scanner) (Run, error) {
	var r Run
	var created string
	if err := row.Scan(&r.ID, &created, &r.Policy, &r.Seed, &r.WordSource,
		&r.Targets, &r.TotalTurns, &r.Wins, &r.Failures, &r.ElapsedMs); err != nil {
		return r, err
	}
	r.CreatedAt, _ = time.Parse(timeLayout, created)
	return r, nil
}

// GetRun loads one run by ID.
func (s *Store) GetRun(ctx context.Context, id string) (Run, error) {
	r, err := scanRun(s.db.QueryRowContext(ctx,
		`SELECT `+runColumns+` FROM bench_runs WHERE id=?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return r, ErrNotFound
	}
	return r, err
}

// ListRuns returns the most recent runs first. Default limit is 20.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+runColumns+` FROM bench_runs ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Run, 0, limit)
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// Outcomes returns the per-target results of a run, worst score first.
func (s *Store) Outcomes(ctx context.Context, runID string) ([]Outcome, error) {
	rows, err := s.db.QueryContext(ctx, `
        SELECT target, turns, won, COALESCE(error, ''), elapsed_us, guesses
        FROM bench_outcomes
        WHERE run_id=?
        ORDER BY turns DESC, target ASC`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Outcome
	for rows.Next() {
		var o Outcome
		var guesses string
		if err := rows.Scan(&o.Target, &o.Turns, &o.Won, &o.Err, &o.ElapsedUs, &guesses); err != nil {
			return nil, err
		}
		if guesses != "" {
			o.Guesses = strings.Fields(guesses)
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
