package memory

import (
	"context"
	"errors"
	"time"

	"chapatis/internal/core/ports"

	"github.com/google/uuid"
)

// ErrNoActiveTransaction is returned by Commit and Rollback without Begin.
var ErrNoActiveTransaction = errors.New("no active transaction")

type pendingWrite struct {
	rec             record
	isNew           bool
	expectedVersion int
}

type purgeRequest struct {
	ids    []uuid.UUID
	cutoff time.Time
}

// UnitOfWorkFactory creates units of work over one Store.
type UnitOfWorkFactory struct {
	store *Store
}

func NewUnitOfWorkFactory(store *Store) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{store: store}
}

func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{store: f.store}
}

// UnitOfWork stages writes between Begin and Commit. Outside of a
// transaction the repository writes straight through to the store.
type UnitOfWork struct {
	store  *Store
	active bool
	writes map[uuid.UUID]pendingWrite
	purge  purgeRequest
}

func (uow *UnitOfWork) Begin(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if uow.active {
		return nil
	}

	uow.active = true
	uow.writes = make(map[uuid.UUID]pendingWrite)
	uow.purge = purgeRequest{}
	return nil
}

func (uow *UnitOfWork) Commit(ctx context.Context) error {
	if !uow.active {
		return ErrNoActiveTransaction
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	err := uow.store.apply(uow.writes, uow.purge)
	uow.reset()
	return err
}

func (uow *UnitOfWork) Rollback(_ context.Context) error {
	if !uow.active {
		return ErrNoActiveTransaction
	}

	uow.reset()
	return nil
}

func (uow *UnitOfWork) SessionRepository() ports.SessionRepository {
	return &SessionRepository{uow: uow}
}

func (uow *UnitOfWork) reset() {
	uow.active = false
	uow.writes = nil
	uow.purge = purgeRequest{}
}

// stage records a write, or applies it immediately outside of a transaction.
func (uow *UnitOfWork) stage(id uuid.UUID, w pendingWrite) error {
	if !uow.active {
		return uow.store.apply(map[uuid.UUID]pendingWrite{id: w}, purgeRequest{})
	}

	if staged, ok := uow.writes[id]; ok {
		if w.isNew {
			return errSessionExists(id)
		}
		if staged.rec.version != w.expectedVersion {
			return errStaleVersion(id, w.expectedVersion, staged.rec.version)
		}
		w.isNew = staged.isNew
		w.expectedVersion = staged.expectedVersion
	}

	uow.writes[id] = w
	return nil
}
