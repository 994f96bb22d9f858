// Package commands contains business operations that modify ordering sessions.
// Every command follows the same pattern: a constructor that validates input,
// and a handler that loads the session inside a unit of work, mutates it and
// commits.
package commands

import (
	"context"

	"chapatis/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
type (
	// TxManager handles transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// SessionRepoFactory provides access to the session repository within a transaction.
	SessionRepoFactory interface {
		SessionRepository() ports.SessionRepository
	}

	// UoW manages transactions for session operations.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   repo := uow.SessionRepository()
	//   // ... load, mutate, update
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		SessionRepoFactory
	}

	// UoWFactory creates new unit of work instances.
	UoWFactory interface {
		Create() UoW
	}
)
