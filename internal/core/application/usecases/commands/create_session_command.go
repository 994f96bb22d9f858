package commands

import (
	"errors"

	"chapatis/internal/core/domain/model/kernel"
	"chapatis/internal/pkg/guard"
)

var ErrCreateSessionCommandIsNotConstructed = errors.New(
	"CreateSessionCommand must be created via NewCreateSessionCommand constructor",
)

// CreateSessionCommand opens a new ordering session.
//
// Example:
//
//	cmd, err := NewCreateSessionCommand(kernel.NewUUID())
//	if err != nil {
//	    return err
//	}
//	err = handler.Handle(ctx, cmd)
type CreateSessionCommand struct { //nolint:recvcheck //using for validation
	sessionID kernel.UUID

	guard guard.ConstructorGuard
}

func NewCreateSessionCommand(sessionID kernel.UUID) (CreateSessionCommand, error) {
	if err := sessionID.Validate(); err != nil {
		return CreateSessionCommand{}, err
	}

	return CreateSessionCommand{sessionID: sessionID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateSessionCommand) Validate() error {
	return c.guard.Validate(ErrCreateSessionCommandIsNotConstructed)
}

func (c CreateSessionCommand) SessionID() kernel.UUID {
	return c.sessionID
}
