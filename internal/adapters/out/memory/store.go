// Package memory keeps ordering sessions in process memory. It is the default
// session store: history lives as long as the process, and idle sessions are
// purged by the session purge job.
//
// Writes go through a UnitOfWork that stages them and applies them atomically
// on Commit, checking session versions the same way the postgres store does.
package memory

import (
	"sync"
	"time"

	"chapatis/internal/core/domain/model/order"
	"chapatis/internal/core/domain/model/session"

	"github.com/google/uuid"
)

// record is an immutable copy of a session. Orders and quantities are
// immutable values and can be shared between copies.
type record struct {
	view         session.View
	selectedDate *time.Time
	quantity     order.Quantity
	customer     order.Customer
	history      []*order.Order
	confirmedID  order.ID
	version      int
	updatedAt    time.Time
}

func recordFromDomain(s *session.Session) record {
	r := record{
		view:      s.View(),
		quantity:  s.Quantity(),
		customer:  s.Customer(),
		history:   s.History(),
		version:   s.Version(),
		updatedAt: s.UpdatedAt(),
	}
	if date, ok := s.SelectedDate(); ok {
		r.selectedDate = &date
	}
	if confirmed := s.ConfirmedOrder(); confirmed != nil {
		r.confirmedID = confirmed.ID()
	}
	return r
}

func (r record) toDomain(id uuid.UUID) (*session.Session, error) {
	sessionID, err := uuidToKernel(id)
	if err != nil {
		return nil, err
	}
	return session.RestoreSession(
		sessionID,
		r.view,
		r.selectedDate,
		r.quantity,
		r.customer,
		r.history,
		r.confirmedID,
		r.version,
		r.updatedAt,
	)
}

// Store is a concurrency-safe session map.
type Store struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]record
}

func NewStore() *Store {
	return &Store{sessions: make(map[uuid.UUID]record)}
}

// Len returns the number of stored sessions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

func (s *Store) load(id uuid.UUID) (record, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.sessions[id]
	return r, ok
}

func (s *Store) idleSince(cutoff time.Time) []uuid.UUID {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]uuid.UUID, 0)
	for id, r := range s.sessions {
		if r.updatedAt.Before(cutoff) {
			ids = append(ids, id)
		}
	}
	return ids
}

// apply checks every staged write against the stored versions and then
// applies all of them, or none.
func (s *Store) apply(writes map[uuid.UUID]pendingWrite, purge purgeRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, w := range writes {
		stored, exists := s.sessions[id]
		switch {
		case w.isNew && exists:
			return errSessionExists(id)
		case !w.isNew && !exists:
			return errSessionNotFound(id)
		case !w.isNew && stored.version != w.expectedVersion:
			return errStaleVersion(id, w.expectedVersion, stored.version)
		}
	}

	for id, w := range writes {
		s.sessions[id] = w.rec
	}

	for _, id := range purge.ids {
		if r, ok := s.sessions[id]; ok && r.updatedAt.Before(purge.cutoff) {
			delete(s.sessions, id)
		}
	}

	return nil
}
