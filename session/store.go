// Package session keeps storefront state per browsing session.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/autoparts/storefront/storefront"
)

var ErrNotFound = errors.New("session not found")

// Store persists session state by id.
type Store interface {
	Get(ctx context.Context, id string) (storefront.State, error)
	Save(ctx context.Context, id string, s storefront.State) error
	Delete(ctx context.Context, id string) error
}

type memoryEntry struct {
	state     storefront.State
	touchedAt time.Time
}

// MemoryStore keeps sessions in process. Entries idle for longer than ttl
// are treated as gone.
type MemoryStore struct {
	ttl time.Duration
	now func() time.Time

	mu      sync.Mutex
	entries map[string]memoryEntry
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]memoryEntry),
	}
}

func (m *MemoryStore) Get(_ context.Context, id string) (storefront.State, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.entries[id]
	if !ok {
		return storefront.State{}, ErrNotFound
	}
	if m.now().Sub(e.touchedAt) > m.ttl {
		delete(m.entries, id)
		return storefront.State{}, ErrNotFound
	}
	e.touchedAt = m.now()
	m.entries[id] = e
	return e.state, nil
}

func (m *MemoryStore) Save(_ context.Context, id string, s storefront.State) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[id] = memoryEntry{state: s, touchedAt: m.now()}
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, id)
	return nil
}

// Sweep drops expired entries and returns how many were removed.
func (m *MemoryStore) Sweep() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for id, e := range m.entries {
		if m.now().Sub(e.touchedAt) > m.ttl {
			delete(m.entries, id)
			n++
		}
	}
	return n
}

// RunSweeper calls Sweep every interval until ctx is done.
func (m *MemoryStore) RunSweeper(ctx context.Context, interval time.Duration, onSweep func(removed int)) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := m.Sweep(); n > 0 && onSweep != nil {
				onSweep(n)
			}
		}
	}
}
