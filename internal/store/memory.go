// apps/go-solver/internal/store/memory.go
//
// In-memory store for interactive games served over HTTP.
//
// Characteristics:
//   - Games are keyed by ID; Save stores a copy so handlers never share
//     slices with the store.
//   - Concurrency-safe via RWMutex; Update holds the write lock across a
//     read-modify-write.
//   - Capacity-bounded: once full, the oldest game is evicted on Save.
//   - State is lost when the process restarts.

package store

import (
	"context"
	"errors"
	"slices"
	"sync"

	"github.com/robalobadob/wordle/apps/go-solver/internal/game"
)

// ErrNotFound is returned by Get for unknown IDs.
var ErrNotFound = errors.New("store: game not found")

// DefaultCapacity bounds the number of games held at once.
const DefaultCapacity = 10000

// Store persists interactive games.
type Store interface {
	// Save inserts or replaces a game.
	Save(ctx context.Context, g *game.Game) error

	// Get returns a copy of the game with the given ID, or ErrNotFound.
	Get(ctx context.Context, id string) (*game.Game, error)

	// Update loads the game, applies fn and stores the result as one atomic
	// step. When fn fails nothing is stored and its error is returned.
	Update(ctx context.Context, id string, fn func(*game.Game) error) error

	// Delete removes a game. Unknown IDs are ignored.
	Delete(ctx context.Context, id string) error

	// Len reports how many games are held.
	Len() int
}

type memory struct {
	mu    sync.RWMutex
	cap   int
	games map[string]*game.Game
	order []string // insertion order, for eviction
}

// NewMemoryStore returns a Store holding at most capacity games
// (DefaultCapacity when capacity <= 0).
func NewMemoryStore(capacity int) Store {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &memory{cap: capacity, games: make(map[string]*game.Game)}
}

func (m *memory) Save(_ context.Context, g *game.Game) error {
	if g == nil || g.ID == "" {
		return errors.New("store: game has no ID")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.games[g.ID]; !ok {
		for len(m.games) >= m.cap && len(m.order) > 0 {
			delete(m.games, m.order[0])
			m.order = m.order[1:]
		}
		m.order = append(m.order, g.ID)
	}
	m.games[g.ID] = clone(g)
	return nil
}

func (m *memory) Get(_ context.Context, id string) (*game.Game, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if g, ok := m.games[id]; ok {
		return clone(g), nil
	}
	return nil, ErrNotFound
}

func (m *memory) Update(_ context.Context, id string, fn func(*game.Game) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	g, ok := m.games[id]
	if !ok {
		return ErrNotFound
	}
	c := clone(g)
	if err := fn(c); err != nil {
		return err
	}
	m.games[id] = c
	return nil
}

func (m *memory) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.games[id]; !ok {
		return nil
	}
	delete(m.games, id)
	for i, v := range m.order {
		if v == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}

func (m *memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.games)
}

func clone(g *game.Game) *game.Game {
	c := *g
	c.Guesses = slices.Clone(g.Guesses)
	c.Marks = slices.Clone(g.Marks)
	return &c
}
