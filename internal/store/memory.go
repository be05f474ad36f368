// internal/store/memory.go
//
// In-memory store for active solve sessions behind the HTTP surface.
//
// Characteristics:
//   - Stores *solver.Session values keyed by an opaque ID.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - Each entry carries its own mutex; Update serialises work on one session
//     without blocking the others.
//   - State is lost when the process restarts.

package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
)

// ErrNotFound is returned for unknown or expired session IDs.
var ErrNotFound = errors.New("store: session not found")

// Store defines the persistence interface for solve sessions.
type Store interface {
	// Save adds or replaces the session under id.
	Save(ctx context.Context, id string, s *solver.Session) error

	// Update runs fn with exclusive access to the session under id.
	Update(ctx context.Context, id string, fn func(*solver.Session) error) error

	// Delete drops the session under id. Unknown IDs are ignored.
	Delete(ctx context.Context, id string) error

	// Prune drops sessions idle for longer than maxIdle and reports how many.
	Prune(ctx context.Context, maxIdle time.Duration) int
}

type entry struct {
	mu      sync.Mutex
	session *solver.Session
	touched time.Time
}

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu       sync.RWMutex
	sessions map[string]*entry
	now      func() time.Time
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{sessions: make(map[string]*entry), now: time.Now}
}

func (m *memory) Save(ctx context.Context, id string, s *solver.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[id] = &entry{session: s, touched: m.now()}
	return nil
}

func (m *memory) Update(ctx context.Context, id string, fn func(*solver.Session) error) error {
	m.mu.RLock()
	e, ok := m.sessions[id]
	m.mu.RUnlock()
	if !ok {
		return ErrNotFound
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.touched = m.now()
	return fn(e.session)
}

func (m *memory) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
	return nil
}

func (m *memory) Prune(ctx context.Context, maxIdle time.Duration) int {
	cutoff := m.now().Add(-maxIdle)

	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for id, e := range m.sessions {
		e.mu.Lock()
		idle := e.touched.Before(cutoff)
		e.mu.Unlock()
		if idle {
			delete(m.sessions, id)
			n++
		}
	}
	return n
}
