// internal/store/memory.go
//
// High score persistence for the guessing game.
// The game keeps exactly one durable value: the best cumulative score.
// Backends implement HighScoreStore:
//   - memory (this file): tests and throwaway sessions, lost on exit.
//   - file:   a single decimal integer in a plain text file (default).
//   - sqlite: a one-row table, for users who keep other state in SQLite.

package store

import (
	"context"
	"sync"
)

// HighScoreStore persists the single high score value.
type HighScoreStore interface {
	// Load returns the stored value. ok is false when nothing has been stored yet.
	// A non-nil error means the stored value could not be read or parsed.
	Load(ctx context.Context) (value int, ok bool, err error)

	// Save overwrites the stored value.
	Save(ctx context.Context, value int) error
}

// Memory is an in-process HighScoreStore.
type Memory struct {
	mu    sync.RWMutex // guards value/set/saves
	value int
	set   bool
	saves int
}

// NewMemoryStore constructs an empty Memory store.
func NewMemoryStore() *Memory {
	return &Memory{}
}

// NewMemoryStoreWith constructs a Memory store already holding value.
func NewMemoryStoreWith(value int) *Memory {
	return &Memory{value: value, set: true}
}

func (m *Memory) Load(ctx context.Context) (int, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.value, m.set, nil
}

func (m *Memory) Save(ctx context.Context, value int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.value, m.set = value, true
	m.saves++
	return nil
}

// Saves reports how many times Save was called.
func (m *Memory) Saves() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.saves
}
