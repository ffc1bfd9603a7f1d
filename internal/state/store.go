// Package state holds the canonical in-memory journal tree.
//
// A Store is created when a session starts and reset when it ends. The only
// way to change it is Update, which applies a pure transform to the latest
// state, so every write is derived from the one before it.
package state

import (
	"slices"
	"sync"

	"diario/internal/domain"
)

// Listener is called with the new state after every change
type Listener func(domain.JournalState)

// Store owns a JournalState
type Store struct {
	mu        sync.Mutex
	state     domain.JournalState
	listeners map[int]Listener
	nextID    int

	// pending holds states not yet delivered to listeners. Only the Update
	// that set draining delivers them, so listeners may call Update.
	pending  []domain.JournalState
	draining bool
}

// NewStore creates a store seeded with the empty journal
func NewStore() *Store {
	return &Store{
		state:     domain.EmptyState(),
		listeners: make(map[int]Listener),
	}
}

// State returns the current state. Callers must treat it as read-only.
func (s *Store) State() domain.JournalState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Update replaces the state with fn(previous) and notifies listeners.
// Returns the state fn produced.
//
// Listeners see every state in update order. An Update made while another
// is notifying, including one made from a listener, applies its transform
// and returns; the notifying call delivers its state afterwards.
func (s *Store) Update(fn domain.Transform) domain.JournalState {
	s.mu.Lock()
	next := fn(s.state)
	s.state = next
	s.pending = append(s.pending, next)
	if s.draining {
		s.mu.Unlock()
		return next
	}
	s.draining = true
	s.mu.Unlock()

	s.drain()
	return next
}

func (s *Store) drain() {
	s.mu.Lock()
	defer func() {
		s.draining = false
		s.mu.Unlock()
	}()
	for len(s.pending) > 0 {
		st := s.pending[0]
		s.pending = s.pending[1:]
		listeners := s.snapshotListeners()

		s.mu.Unlock()
		for _, l := range listeners {
			l(st)
		}
		s.mu.Lock()
	}
}

// Reset drops everything back to the empty journal
func (s *Store) Reset() {
	s.Update(func(domain.JournalState) domain.JournalState {
		return domain.EmptyState()
	})
}

// Subscribe registers l for every future change. The returned func removes it.
func (s *Store) Subscribe(l Listener) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = l
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.listeners, id)
	}
}

// ActiveCountry resolves the selected country
func (s *Store) ActiveCountry() (domain.Country, bool) {
	return s.State().ResolveActiveCountry()
}

// ActiveCity resolves the selected city
func (s *Store) ActiveCity() (domain.City, bool) {
	return s.State().ResolveActiveCity()
}

// ActivePage resolves the selected page
func (s *Store) ActivePage() (domain.Page, bool) {
	return s.State().ResolveActivePage()
}

func (s *Store) snapshotListeners() []Listener {
	ids := make([]int, 0, len(s.listeners))
	for id := range s.listeners {
		ids = append(ids, id)
	}
	slices.Sort(ids) // registration order
	out := make([]Listener, len(ids))
	for i, id := range ids {
		out[i] = s.listeners[id]
	}
	return out
}
