package commands

import (
	"errors"

	"chapatis/internal/core/domain/model/kernel"
	"chapatis/internal/pkg/guard"
)

var ErrAdjustQuantityCommandIsNotConstructed = errors.New(
	"AdjustQuantityCommand must be created via NewAdjustQuantityCommand constructor",
)

// AdjustQuantityCommand moves the box count by delta. The result is clamped
// to the order limits, so any delta is accepted.
type AdjustQuantityCommand struct { //nolint:recvcheck //using for validation
	sessionID kernel.UUID
	delta     int

	guard guard.ConstructorGuard
}

func NewAdjustQuantityCommand(sessionID kernel.UUID, delta int) (AdjustQuantityCommand, error) {
	if err := sessionID.Validate(); err != nil {
		return AdjustQuantityCommand{}, err
	}

	return AdjustQuantityCommand{
		sessionID: sessionID,
		delta:     delta,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AdjustQuantityCommand) Validate() error {
	return c.guard.Validate(ErrAdjustQuantityCommandIsNotConstructed)
}

func (c AdjustQuantityCommand) SessionID() kernel.UUID {
	return c.sessionID
}

func (c AdjustQuantityCommand) Delta() int {
	return c.delta
}
