// Package postgres provides the GORM-based unit of work for the postgres
// session store.
//
//	factory := NewGormUnitOfWorkFactory(db, location)
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer uow.Rollback(ctx)
//
//	repo := uow.SessionRepository()
//	s, err := repo.Get(ctx, id)
//	// ... mutate s
//	if err = repo.Update(ctx, s); err != nil {
//	    return err
//	}
//	return uow.Commit(ctx)
//
// Each UnitOfWork owns at most one transaction; use one instance per
// goroutine.
package postgres

import (
	"context"
	"time"

	"chapatis/internal/adapters/out/postgres/sessionrepo"
	"chapatis/internal/core/ports"

	"gorm.io/gorm"
)

// GormUnitOfWorkFactory creates units of work over one database handle.
type GormUnitOfWorkFactory struct {
	db       *gorm.DB
	location *time.Location
}

// NewGormUnitOfWorkFactory creates a factory. location is the delivery time
// zone used to restore stored dates.
func NewGormUnitOfWorkFactory(db *gorm.DB, location *time.Location) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db, location: location}
}

func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{db: f.db, location: f.location}
}

// GormUnitOfWork wraps a GORM transaction.
type GormUnitOfWork struct {
	db       *gorm.DB
	tx       *gorm.DB
	location *time.Location
}

// Begin starts a transaction. Calling it twice keeps the first transaction.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	return nil
}

// Commit finalizes the transaction.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards the transaction. After Commit it returns
// gorm.ErrInvalidTransaction.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// SessionRepository returns a repository bound to the current transaction,
// or to the plain connection when none is active.
func (uow *GormUnitOfWork) SessionRepository() ports.SessionRepository {
	db := uow.db
	if uow.tx != nil {
		db = uow.tx
	}
	return sessionrepo.NewGormSessionRepository(db, uow.location)
}
