package session

import (
	"errors"
	"sync"

	"github.com/google/uuid"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrTooManySessions = errors.New("too many sessions")
)

// Store keeps one State per session id in memory. Each session belongs to a single
// user, but the store itself is shared by concurrent requests.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]State
	max      int
}

// StoreOption configures a Store
type StoreOption func(*Store)

// WithMaxSessions caps the number of live sessions; n <= 0 means no cap
func WithMaxSessions(n int) StoreOption {
	return func(s *Store) {
		s.max = n
	}
}

// NewStore creates an empty store
func NewStore(opts ...StoreOption) *Store {
	s := &Store{
		sessions: make(map[string]State),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create registers a new session in its initial state and returns its id.
// It fails with ErrTooManySessions once the cap is reached.
func (s *Store) Create() (string, State, error) {
	id := uuid.New().String()
	state := NewState()

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.max > 0 && len(s.sessions) >= s.max {
		return "", State{}, ErrTooManySessions
	}
	s.sessions[id] = state
	return id, state, nil
}

// Get returns the current state of a session
func (s *Store) Get(id string) (State, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	state, ok := s.sessions[id]
	if !ok {
		return State{}, ErrSessionNotFound
	}
	return state, nil
}

// Update replaces a session's state with fn(current) atomically
func (s *Store) Update(id string, fn func(State) State) (State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, ok := s.sessions[id]
	if !ok {
		return State{}, ErrSessionNotFound
	}
	state = fn(state)
	s.sessions[id] = state
	return state, nil
}

// Delete removes a session
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[id]; !ok {
		return ErrSessionNotFound
	}
	delete(s.sessions, id)
	return nil
}

// Len returns the number of live sessions
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
