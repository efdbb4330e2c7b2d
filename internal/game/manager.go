package game

import (
	"sync"
	"time"
)

type seat struct {
	mu       sync.Mutex
	table    *Table
	lastUsed time.Time
	evicted  bool
}

// Manager keeps one table per session key. Intents on the same key are
// serialized; different keys never block each other.
type Manager struct {
	tables   map[string]*seat
	mu       sync.RWMutex
	newTable func() *Table
	now      func() time.Time
}

func NewManager(newTable func() *Table) *Manager {
	return &Manager{
		tables:   make(map[string]*seat),
		newTable: newTable,
		now:      time.Now,
	}
}

func (m *Manager) seat(key string) *seat {
	m.mu.RLock()
	s, ok := m.tables[key]
	m.mu.RUnlock()
	if ok {
		return s
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.tables[key]; ok {
		return s
	}
	s = &seat{table: m.newTable(), lastUsed: m.now()}
	m.tables[key] = s
	return s
}

// acquire returns the locked seat for key. A seat evicted between lookup
// and lock is replaced by a fresh one.
func (m *Manager) acquire(key string) *seat {
	for {
		s := m.seat(key)
		s.mu.Lock()
		if !s.evicted {
			s.lastUsed = m.now()
			return s
		}
		s.mu.Unlock()
	}
}

// Do runs fn against the table for key, creating it on first use.
func (m *Manager) Do(key string, fn func(*Table) error) error {
	s := m.acquire(key)
	defer s.mu.Unlock()
	return fn(s.table)
}

// View runs fn against the table for key without seating anyone: an unknown
// key sees a fresh table that is thrown away afterwards.
func (m *Manager) View(key string, fn func(*Table)) {
	m.mu.RLock()
	s, ok := m.tables[key]
	m.mu.RUnlock()
	if !ok {
		fn(m.newTable())
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.evicted {
		fn(m.newTable())
		return
	}
	s.lastUsed = m.now()
	fn(s.table)
}

// Reset replaces the table for key with a fresh one, keeping the
// visibility setting, and returns its first snapshot.
func (m *Manager) Reset(key string) Snapshot {
	s := m.acquire(key)
	defer s.mu.Unlock()

	t := m.newTable()
	t.visibility = s.table.visibility
	s.table = t
	return t.Snapshot()
}

// Evict drops every table not used for longer than idle and returns how
// many were dropped. Tables busy with an intent are skipped.
func (m *Manager) Evict(idle time.Duration) int {
	cutoff := m.now().Add(-idle)

	m.mu.Lock()
	defer m.mu.Unlock()

	n := 0
	for key, s := range m.tables {
		if !s.mu.TryLock() {
			continue
		}
		if s.lastUsed.Before(cutoff) {
			m.delete(key, s)
			n++
		}
		s.mu.Unlock()
	}
	return n
}

// delete must be called with m.mu and s.mu held.
func (m *Manager) delete(key string, s *seat) {
	s.evicted = true
	delete(m.tables, key)
}

func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.tables)
}
