package commands

import (
	"errors"

	"chapatis/internal/core/domain/model/kernel"
	"chapatis/internal/pkg/guard"
)

var ErrSubmitOrderCommandIsNotConstructed = errors.New(
	"SubmitOrderCommand must be created via NewSubmitOrderCommand constructor",
)

// SubmitOrderCommand confirms the current selection of a session as an order.
//
// Example:
//
//	cmd, _ := NewSubmitOrderCommand(sessionID)
//	o, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, session.ErrMissingDeliveryDate) {
//	    // ask the customer to pick a day first
//	}
//	fmt.Println(o.ID(), o.TotalPrice())
type SubmitOrderCommand struct { //nolint:recvcheck //using for validation
	sessionID kernel.UUID

	guard guard.ConstructorGuard
}

func NewSubmitOrderCommand(sessionID kernel.UUID) (SubmitOrderCommand, error) {
	if err := sessionID.Validate(); err != nil {
		return SubmitOrderCommand{}, err
	}

	return SubmitOrderCommand{sessionID: sessionID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitOrderCommand) Validate() error {
	return c.guard.Validate(ErrSubmitOrderCommandIsNotConstructed)
}

func (c SubmitOrderCommand) SessionID() kernel.UUID {
	return c.sessionID
}
