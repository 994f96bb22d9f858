package memory

import (
	"context"
	"time"

	"chapatis/internal/core/domain/model/kernel"
	"chapatis/internal/core/domain/model/session"
)

// SessionRepository is bound to one UnitOfWork and sees its staged writes.
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

	return r.uow.stage(s.ID().Bytes(), pendingWrite{
		rec:   recordFromDomain(s),
		isNew: true,
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
	rec.version = s.Version() + 1

	return r.uow.stage(s.ID().Bytes(), pendingWrite{
		rec:             rec,
		expectedVersion: s.Version(),
	})
}

func (r *SessionRepository) Get(ctx context.Context, id kernel.UUID) (*session.Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := id.Validate(); err != nil {
		return nil, err
	}

	key := id.Bytes()
	if r.uow.active {
		if staged, ok := r.uow.writes[key]; ok {
			return staged.rec.toDomain(key)
		}
	}

	rec, ok := r.uow.store.load(key)
	if !ok {
		return nil, errSessionNotFound(key)
	}
	return rec.toDomain(key)
}

// DeleteIdleSince removes sessions last updated before cutoff. Inside a
// transaction the removal happens on Commit, skipping sessions that were
// touched in the meantime.
func (r *SessionRepository) DeleteIdleSince(ctx context.Context, cutoff time.Time) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	ids := r.uow.store.idleSince(cutoff)
	purge := purgeRequest{ids: ids, cutoff: cutoff}

	if !r.uow.active {
		return len(ids), r.uow.store.apply(nil, purge)
	}

	r.uow.purge = purge
	return len(ids), nil
}
