// Package session keeps per-browser diagram controllers in memory.
//
// Sessions are never persisted; an idle session is evicted and the next
// request starts over from an empty selection.
package session

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/louisbranch/synapse.space/internal/network"
)

// DefaultIdleTTL evicts sessions nobody touched for this long.
const DefaultIdleTTL = 30 * time.Minute

// DefaultMaxSessions bounds how many sessions a Store keeps at once.
const DefaultMaxSessions = 10000

var idCounter atomic.Uint64

type entry struct {
	mu         sync.Mutex
	controller *network.Controller
	lastSeen   time.Time
}

// Store is a thread-safe in-memory session store.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*entry
	ttl      time.Duration
	max      int
	now      func() time.Time
	read     func([]byte) (int, error)
}

// Option configures a Store.
type Option func(*Store)

// WithIdleTTL overrides the idle eviction window.
func WithIdleTTL(ttl time.Duration) Option {
	return func(s *Store) {
		if ttl > 0 {
			s.ttl = ttl
		}
	}
}

// WithMaxSessions caps the number of tracked sessions. Creating a session
// at capacity evicts the least recently seen one.
func WithMaxSessions(n int) Option {
	return func(s *Store) {
		if n > 0 {
			s.max = n
		}
	}
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// NewStore creates an empty session store.
func NewStore(opts ...Option) *Store {
	s := &Store{
		sessions: make(map[string]*entry),
		ttl:      DefaultIdleTTL,
		max:      DefaultMaxSessions,
		now:      time.Now,
		read:     rand.Read,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// Acquire returns the id of a live session, creating a fresh one when id is
// empty, unknown or expired. created reports whether a new id was issued.
func (s *Store) Acquire(id string) (string, bool) {
	now := s.now()
	s.mu.Lock()
	defer s.mu.Unlock()
	if sess, ok := s.sessions[id]; ok && id != "" {
		if now.Sub(sess.lastSeen) <= s.ttl {
			sess.lastSeen = now
			return id, false
		}
		delete(s.sessions, id)
	}
	if len(s.sessions) >= s.max {
		s.evictLocked(now)
	}
	newID := s.generateID()
	s.sessions[newID] = &entry{
		controller: network.NewController(),
		lastSeen:   now,
	}
	return newID, true
}

// With runs fn against the session's controller while holding the session
// lock. It returns false when the session does not exist.
func (s *Store) With(id string, fn func(*network.Controller)) bool {
	now := s.now()
	s.mu.Lock()
	sess, ok := s.sessions[id]
	if ok {
		sess.lastSeen = now
	}
	s.mu.Unlock()
	if !ok {
		return false
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	if fn != nil {
		fn(sess.controller)
	}
	return true
}

// Delete removes a session.
func (s *Store) Delete(id string) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}

// Len reports the number of tracked sessions.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Sweep evicts every idle session and returns how many were removed.
func (s *Store) Sweep() int {
	cutoff := s.now().Add(-s.ttl)
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for id, sess := range s.sessions {
		if sess.lastSeen.Before(cutoff) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

// evictLocked drops expired sessions, then the least recently seen one if
// the store is still full. Callers hold s.mu.
func (s *Store) evictLocked(now time.Time) {
	cutoff := now.Add(-s.ttl)
	oldestID := ""
	var oldest time.Time
	for id, sess := range s.sessions {
		if sess.lastSeen.Before(cutoff) {
			delete(s.sessions, id)
			continue
		}
		if oldestID == "" || sess.lastSeen.Before(oldest) {
			oldestID, oldest = id, sess.lastSeen
		}
	}
	if len(s.sessions) >= s.max && oldestID != "" {
		delete(s.sessions, oldestID)
	}
}

func (s *Store) generateID() string {
	b := make([]byte, 16)
	counter := idCounter.Add(1)
	if _, err := s.read(b); err != nil {
		return fmt.Sprintf("s%d_%d", s.now().UnixNano(), counter)
	}
	return fmt.Sprintf("%s%x", hex.EncodeToString(b), counter)
}
