package boltstore

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"chapatis/internal/core/domain/model/kernel"
	"chapatis/internal/core/domain/model/session"
	"chapatis/internal/pkg/errs"

	"go.etcd.io/bbolt"
)

// SessionRepository reads and writes through its UnitOfWork.
type SessionRepository struct {
	uow *UnitOfWork
}

func (r *SessionRepository) Add(ctx context.Context, s *session.Session) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.Validate(); err != nil {
		return err
	}

	payload, err := json.Marshal(recordFromDomain(s))
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}

	key := sessionKey(s.ID())
	return r.uow.write(func(b *bbolt.Bucket) error {
		if b.Get(key) != nil {
			return errs.NewValueIsInvalidErrorWithCause("session", fmt.Errorf("session %s already exists", s.ID()))
		}
		return b.Put(key, payload)
	})
}

// Update stores s with its version incremented. The stored version must
// still equal s.Version().
func (r *SessionRepository) Update(ctx context.Context, s *session.Session) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.Validate(); err != nil {
		return err
	}

	rec := recordFromDomain(s)
	rec.Version = s.Version() + 1
	payload, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}

	key := sessionKey(s.ID())
	return r.uow.write(func(b *bbolt.Bucket) error {
		stored := b.Get(key)
		if stored == nil {
			return errs.NewObjectNotFoundError("session", s.ID())
		}

		var h header
		if unmarshalErr := json.Unmarshal(stored, &h); unmarshalErr != nil {
			return fmt.Errorf("unmarshal session %s: %w", s.ID(), unmarshalErr)
		}
		if h.Version != s.Version() {
			return errs.NewVersionIsInvalidErrorWithCause(
				"session",
				fmt.Errorf("session %s was loaded at version %d but is at version %d", s.ID(), s.Version(), h.Version),
			)
		}

		return b.Put(key, payload)
	})
}

func (r *SessionRepository) Get(ctx context.Context, id kernel.UUID) (*session.Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var rec sessionRecord
	err := r.uow.read(func(b *bbolt.Bucket) error {
		payload := b.Get(sessionKey(id))
		if payload == nil {
			return errs.NewObjectNotFoundError("session", id)
		}
		if unmarshalErr := json.Unmarshal(payload, &rec); unmarshalErr != nil {
			return fmt.Errorf("unmarshal session %s: %w", id, unmarshalErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return rec.toDomain(id, r.uow.store.location)
}

// DeleteIdleSince removes sessions last updated before cutoff together
// with their history.
func (r *SessionRepository) DeleteIdleSince(ctx context.Context, cutoff time.Time) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	var removed int
	err := r.uow.write(func(b *bbolt.Bucket) error {
		idle := make([][]byte, 0)
		err := b.ForEach(func(k, v []byte) error {
			var h header
			if unmarshalErr := json.Unmarshal(v, &h); unmarshalErr != nil {
				return fmt.Errorf("unmarshal session header: %w", unmarshalErr)
			}
			if h.TouchedAt.Before(cutoff) {
				idle = append(idle, append([]byte(nil), k...))
			}
			return nil
		})
		if err != nil {
			return err
		}

		for _, k := range idle {
			if err = b.Delete(k); err != nil {
				return err
			}
		}
		removed = len(idle)
		return nil
	})
	if err != nil {
		return 0, err
	}

	return removed, nil
}

func sessionKey(id kernel.UUID) []byte {
	key := id.Bytes()
	return key[:]
}
