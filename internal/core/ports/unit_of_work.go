package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is a business transaction boundary. Writes made through
// SessionRepository become visible to others only after Commit.
type UnitOfWork interface {
	// Begin starts a new transaction.
	Begin(ctx context.Context) error

	// Commit applies the transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback discards the transaction. Calling it after Commit is a no-op.
	Rollback(ctx context.Context) error

	// SessionRepository returns a repository bound to the current transaction.
	SessionRepository() SessionRepository
}
