package boltstore

import (
	"context"
	"errors"

	"chapatis/internal/core/ports"

	"go.etcd.io/bbolt"
)

// ErrNoActiveTransaction is returned by Commit and Rollback without Begin.
var ErrNoActiveTransaction = errors.New("no active transaction")

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

// UnitOfWork wraps a read-write bbolt transaction. Begin blocks while another
// unit of work holds the write transaction. Do not read through a second
// unit of work from the same goroutine while a transaction is open.
type UnitOfWork struct {
	store *Store
	tx    *bbolt.Tx
}

// Begin starts a transaction. Calling it twice keeps the first transaction.
func (uow *UnitOfWork) Begin(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if uow.tx != nil {
		return nil
	}

	tx, err := uow.store.db.Begin(true)
	if err != nil {
		return err
	}
	uow.tx = tx
	return nil
}

func (uow *UnitOfWork) Commit(ctx context.Context) error {
	if uow.tx == nil {
		return ErrNoActiveTransaction
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	err := uow.tx.Commit()
	uow.tx = nil
	return err
}

func (uow *UnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return ErrNoActiveTransaction
	}

	err := uow.tx.Rollback()
	uow.tx = nil
	return err
}

func (uow *UnitOfWork) SessionRepository() ports.SessionRepository {
	return &SessionRepository{uow: uow}
}

// read runs fn in the open transaction, or in a read-only one.
func (uow *UnitOfWork) read(fn func(b *bbolt.Bucket) error) error {
	if uow.tx != nil {
		return withBucket(uow.tx, fn)
	}
	return uow.store.db.View(func(tx *bbolt.Tx) error {
		return withBucket(tx, fn)
	})
}

// write runs fn in the open transaction, or in its own read-write one.
func (uow *UnitOfWork) write(fn func(b *bbolt.Bucket) error) error {
	if uow.tx != nil {
		return withBucket(uow.tx, fn)
	}
	return uow.store.db.Update(func(tx *bbolt.Tx) error {
		return withBucket(tx, fn)
	})
}

func withBucket(tx *bbolt.Tx, fn func(b *bbolt.Bucket) error) error {
	b := tx.Bucket([]byte(sessionsBucket))
	if b == nil {
		return errBucketMissing
	}
	return fn(b)
}
