package appstate

import "sync"

// SessionStore holds the materialized app state per user. All mutation goes
// through Dispatch so the reducer stays the single transition point.
type SessionStore struct {
	mu     sync.RWMutex
	states map[string]State
}

func NewSessionStore() *SessionStore {
	return &SessionStore{states: make(map[string]State)}
}

func (s *SessionStore) Get(userID string) State {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if st, ok := s.states[userID]; ok {
		return st
	}
	return InitialState()
}

func (s *SessionStore) Dispatch(userID string, action Action) State {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.states[userID]
	if !ok {
		st = InitialState()
	}
	st = Reduce(st, action)
	s.states[userID] = st
	return st
}

// Clear drops a user's in-memory state, used on logout and user switch so
// one user's current trip never leaks into another session.
func (s *SessionStore) Clear(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.states, userID)
}
