package study

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dmarkov/flashdeck-backend/internal/domain"
)

// Session is the live state of one study run: the owned queue, the running
// stats and the eviction deadlines. Every mutation goes through mu, so two
// requests racing on the same session id serialize; different sessions never
// contend.
type Session struct {
	mu sync.Mutex

	ID         string
	UserID     uuid.UUID
	DeckID     uuid.UUID
	DeckName   string
	Status     domain.SessionStatus
	StartedAt  time.Time
	ExpiresAt  time.Time
	FinishedAt *time.Time
	TotalCards int
	Queue      *StudyQueue
	Stats      domain.SessionStats

	// removeAfter is set when the session finishes: the store keeps it until
	// this deadline so late status reads still succeed.
	removeAfter *time.Time
}

// Evictable reports whether the sweep should drop the session: either its TTL
// elapsed or its post-finish retention window closed.
func (s *Session) Evictable(now time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if now.After(s.ExpiresAt) {
		return true
	}
	return s.removeAfter != nil && !now.Before(*s.removeAfter)
}

// MemorySessionStore is a process-lifetime session table guarded by a RWMutex.
// It is injected into the Service so tests get isolation from a fresh
// instance instead of sharing package state.
type MemorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewMemorySessionStore creates an empty session store.
func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{sessions: make(map[string]*Session)}
}

func (st *MemorySessionStore) Get(id string) (*Session, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	sess, ok := st.sessions[id]
	return sess, ok
}

func (st *MemorySessionStore) Put(sess *Session) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.sessions[sess.ID] = sess
}

func (st *MemorySessionStore) Delete(id string) {
	st.mu.Lock()
	defer st.mu.Unlock()
	delete(st.sessions, id)
}

// Sweep removes every evictable session and returns how many were dropped.
//
// Eviction checks take each session's mutex, so they run against a snapshot
// with the store lock released. The store lock and a session mutex are never
// held together here; the service keeps the same rule on its side and never
// calls the store while holding a session mutex.
func (st *MemorySessionStore) Sweep(now time.Time) int {
	st.mu.RLock()
	candidates := make([]*Session, 0, len(st.sessions))
	for _, sess := range st.sessions {
		candidates = append(candidates, sess)
	}
	st.mu.RUnlock()

	// Evictability is monotonic: TTLs are never extended and removeAfter is
	// only ever set, so a positive check cannot go stale before the delete.
	evict := make([]string, 0, len(candidates))
	for _, sess := range candidates {
		if sess.Evictable(now) {
			evict = append(evict, sess.ID)
		}
	}
	if len(evict) == 0 {
		return 0
	}

	st.mu.Lock()
	defer st.mu.Unlock()
	removed := 0
	for _, id := range evict {
		if _, ok := st.sessions[id]; ok {
			delete(st.sessions, id)
			removed++
		}
	}
	return removed
}

// All returns a snapshot of every session currently held.
func (st *MemorySessionStore) All() []*Session {
	st.mu.RLock()
	defer st.mu.RUnlock()

	all := make([]*Session, 0, len(st.sessions))
	for _, sess := range st.sessions {
		all = append(all, sess)
	}
	return all
}
