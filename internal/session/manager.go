// Package session tracks short-lived manual-pick sessions keyed by the
// acting admin. A session accumulates member picks and is removed on
// completion, cancellation or TTL expiry.
package session

import (
	"context"
	"sync"
	"time"

	"duty-rotation-service/internal/entities"
)

type record struct {
	picks     []int64
	expiresAt time.Time
}

// Manager owns all active sessions behind a single mutex.
type Manager struct {
	ttl time.Duration

	mu       sync.Mutex
	sessions map[int64]*record
}

// NewManager creates a session manager with the given TTL.
func NewManager(ttl time.Duration) *Manager {
	return &Manager{
		ttl:      ttl,
		sessions: make(map[int64]*record),
	}
}

// Run purges expired sessions periodically until ctx is done.
func (m *Manager) Run(ctx context.Context) {
	ticker := time.NewTicker(m.ttl)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.purge(time.Now())
		}
	}
}

// Start opens a fresh session for the actor, replacing any previous one.
func (m *Manager) Start(actorID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[actorID] = &record{expiresAt: time.Now().Add(m.ttl)}
}

// Append adds a pick to the actor's session. Duplicate picks are kept
// out so finishing never assigns the same member twice.
func (m *Manager) Append(actorID, memberID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	r, ok := m.active(actorID, time.Now())
	if !ok {
		return entities.ErrSessionNotFound
	}
	for _, id := range r.picks {
		if id == memberID {
			return nil
		}
	}
	r.picks = append(r.picks, memberID)
	r.expiresAt = time.Now().Add(m.ttl)
	return nil
}

// Complete closes the actor's session and returns the accumulated picks.
func (m *Manager) Complete(actorID int64) ([]int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	r, ok := m.active(actorID, time.Now())
	if !ok {
		return nil, entities.ErrSessionNotFound
	}
	delete(m.sessions, actorID)
	return r.picks, nil
}

// Cancel discards the actor's session if one exists.
func (m *Manager) Cancel(actorID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, actorID)
}

// active returns the actor's session unless it is absent or expired.
// Expired sessions are dropped on access. Caller holds the lock.
func (m *Manager) active(actorID int64, now time.Time) (*record, bool) {
	r, ok := m.sessions[actorID]
	if !ok {
		return nil, false
	}
	if now.After(r.expiresAt) {
		delete(m.sessions, actorID)
		return nil, false
	}
	return r, true
}

func (m *Manager) purge(now time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, r := range m.sessions {
		if now.After(r.expiresAt) {
			delete(m.sessions, id)
		}
	}
}
