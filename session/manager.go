package session

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/autoparts/storefront/storefront"
)

// Manager serialises updates per session so the actions of one session
// are applied one at a time, in arrival order.
type Manager struct {
	store Store

	mu    sync.Mutex
	locks map[string]*lockRef
}

type lockRef struct {
	mu   sync.Mutex
	refs int
}

func NewManager(store Store) *Manager {
	return &Manager{store: store, locks: make(map[string]*lockRef)}
}

// Start creates a session with the initial state.
func (m *Manager) Start(ctx context.Context) (string, storefront.State, error) {
	id := uuid.NewString()
	s := storefront.NewState()
	if err := m.store.Save(ctx, id, s); err != nil {
		return "", storefront.State{}, err
	}
	return id, s, nil
}

func (m *Manager) Get(ctx context.Context, id string) (storefront.State, error) {
	return m.store.Get(ctx, id)
}

// Exists reports whether id names a live session.
func (m *Manager) Exists(ctx context.Context, id string) (bool, error) {
	_, err := m.store.Get(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	return err == nil, err
}

// Apply reduces the session state with actions and saves the result.
func (m *Manager) Apply(ctx context.Context, id string, actions ...storefront.Action) (storefront.State, error) {
	return m.Update(ctx, id, func(s storefront.State) (storefront.State, error) {
		for _, a := range actions {
			s = storefront.Reduce(s, a)
		}
		return s, nil
	})
}

// Update runs load, fn and save under the session's lock. Nothing is saved
// when fn fails.
func (m *Manager) Update(ctx context.Context, id string, fn func(storefront.State) (storefront.State, error)) (storefront.State, error) {
	unlock := m.lock(id)
	defer unlock()

	s, err := m.store.Get(ctx, id)
	if err != nil {
		return storefront.State{}, err
	}
	next, err := fn(s)
	if err != nil {
		return storefront.State{}, err
	}
	if err := m.store.Save(ctx, id, next); err != nil {
		return storefront.State{}, err
	}
	return next, nil
}

func (m *Manager) End(ctx context.Context, id string) error {
	return m.store.Delete(ctx, id)
}

func (m *Manager) lock(id string) func() {
	m.mu.Lock()
	l, ok := m.locks[id]
	if !ok {
		l = &lockRef{}
		m.locks[id] = l
	}
	l.refs++
	m.mu.Unlock()

	l.mu.Lock()
	return func() {
		l.mu.Unlock()
		m.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(m.locks, id)
		}
		m.mu.Unlock()
	}
}
