package store

import (
	"fmt"
	"log"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

// SessionStore keeps the most recently used page sessions
type SessionStore struct {
	sessions  *lru.Cache[string, *Session]
	evictHook func(*Session)
}

// StoreOption configures a SessionStore
type StoreOption func(*SessionStore)

// WithEvictHook runs fn on every evicted session with its lock held,
// after the session has been reset.
func WithEvictHook(fn func(*Session)) StoreOption {
	return func(st *SessionStore) { st.evictHook = fn }
}

// NewSessionStore creates a store holding up to capacity sessions.
// Evicted sessions are reset so their chart is disposed.
func NewSessionStore(capacity int, opts ...StoreOption) (*SessionStore, error) {
	st := &SessionStore{}
	for _, opt := range opts {
		opt(st)
	}
	cache, err := lru.NewWithEvict[string, *Session](capacity, st.onEvict)
	if err != nil {
		return nil, fmt.Errorf("creating session store: %w", err)
	}
	st.sessions = cache
	return st, nil
}

func (st *SessionStore) onEvict(id string, s *Session) {
	s.Lock()
	defer s.Unlock()
	s.Renderer.Reset()
	s.Page.Flush()
	if st.evictHook != nil {
		st.evictHook(s)
	}
	log.Printf("Evicted session: id=%s age=%s", id, time.Since(s.CreatedAt).Round(time.Second))
}

// Get retrieves a session by id
func (s *SessionStore) Get(id string) (*Session, bool) {
	return s.sessions.Get(id)
}

// Set stores a session
func (s *SessionStore) Set(id string, session *Session) {
	s.sessions.Add(id, session)
}

// Delete removes and resets a session. The caller must not hold its lock.
func (s *SessionStore) Delete(id string) {
	s.sessions.Remove(id)
}

// Exists checks if a session id exists without refreshing it
func (s *SessionStore) Exists(id string) bool {
	return s.sessions.Contains(id)
}

// Len returns the number of stored sessions
func (s *SessionStore) Len() int {
	return s.sessions.Len()
}
