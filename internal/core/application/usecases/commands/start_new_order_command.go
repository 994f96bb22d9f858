package commands

import (
	"errors"

	"chapatis/internal/core/domain/model/kernel"
	"chapatis/internal/pkg/guard"
)

var ErrStartNewOrderCommandIsNotConstructed = errors.New(
	"StartNewOrderCommand must be created via NewStartNewOrderCommand constructor",
)

// StartNewOrderCommand leaves the confirmation view and clears the selection,
// keeping the customer details for the next order.
type StartNewOrderCommand struct { //nolint:recvcheck //using for validation
	sessionID kernel.UUID

	guard guard.ConstructorGuard
}

func NewStartNewOrderCommand(sessionID kernel.UUID) (StartNewOrderCommand, error) {
	if err := sessionID.Validate(); err != nil {
		return StartNewOrderCommand{}, err
	}

	return StartNewOrderCommand{sessionID: sessionID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the command was created through the constructor.
func (c StartNewOrderCommand) Validate() error {
	return c.guard.Validate(ErrStartNewOrderCommandIsNotConstructed)
}

func (c StartNewOrderCommand) SessionID() kernel.UUID {
	return c.sessionID
}
