package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	DefaultTTL         = 24 * time.Hour
	DefaultMaxSessions = 10000

	sweepInterval = time.Minute
)

// Manager keeps sessions in memory, keyed by id. Sessions idle for longer
// than the TTL are dropped, and the oldest one is evicted when the map is
// full.
type Manager struct {
	mu        sync.Mutex
	sessions  map[string]*Session
	ttl       time.Duration
	max       int
	now       func() time.Time
	lastSweep time.Time
}

// NewManager creates a manager. Non-positive arguments select DefaultTTL
// and DefaultMaxSessions.
func NewManager(ttl time.Duration, maxSessions int) *Manager {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if maxSessions <= 0 {
		maxSessions = DefaultMaxSessions
	}
	return &Manager{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		max:      maxSessions,
		now:      time.Now,
	}
}

// Get returns the live session for id. An unknown id that looks like one
// this manager issues is adopted, so a browser keeps its cookie across
// restarts; any other id gets a fresh session. Either way the result is
// stored.
func (m *Manager) Get(id string) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	if s, ok := m.lookupLocked(id, now); ok {
		return s
	}
	if !wellFormed(id) {
		id = uuid.NewString()
	}
	return m.storeLocked(id, now)
}

// View is Get for read-only requests. A caller without a well-formed id is
// handed a session that is not stored; it is only kept once the browser
// sends its cookie back.
func (m *Manager) View(id string) *Session {
	if !wellFormed(id) {
		return New(uuid.NewString())
	}
	return m.Get(id)
}

// Len returns the number of stored sessions.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.sessions)
}

func (m *Manager) lookupLocked(id string, now time.Time) (*Session, bool) {
	s, ok := m.sessions[id]
	if !ok {
		return nil, false
	}
	if now.Sub(s.lastSeen) > m.ttl {
		delete(m.sessions, id)
		return nil, false
	}
	s.lastSeen = now
	return s, true
}

func (m *Manager) storeLocked(id string, now time.Time) *Session {
	if now.Sub(m.lastSweep) >= sweepInterval {
		m.sweepLocked(now)
	}
	if len(m.sessions) >= m.max {
		m.evictOldestLocked()
	}

	s := New(id)
	s.lastSeen = now
	m.sessions[id] = s
	return s
}

func (m *Manager) sweepLocked(now time.Time) {
	m.lastSweep = now

	expired := 0
	for id, s := range m.sessions {
		if now.Sub(s.lastSeen) > m.ttl {
			delete(m.sessions, id)
			expired++
		}
	}
	if expired > 0 {
		log.Debug().Str("mod", "session").Int("expired", expired).Int("live", len(m.sessions)).Msg("swept idle sessions")
	}
}

func (m *Manager) evictOldestLocked() {
	var oldest *Session
	for _, s := range m.sessions {
		if oldest == nil || s.lastSeen.Before(oldest.lastSeen) {
			oldest = s
		}
	}
	if oldest != nil {
		delete(m.sessions, oldest.ID)
	}
}

func wellFormed(id string) bool {
	if id == "" {
		return false
	}
	_, err := uuid.Parse(id)
	return err == nil
}
