package commands

import (
	"errors"

	"chapatis/internal/core/domain/model/kernel"
	"chapatis/internal/core/domain/model/order"
	"chapatis/internal/pkg/guard"
)

var ErrUpdateCustomerCommandIsNotConstructed = errors.New(
	"UpdateCustomerCommand must be created via NewUpdateCustomerCommand constructor",
)

// UpdateCustomerCommand replaces the customer details of a session. Fields
// are free-form and may be blank until the order is submitted.
type UpdateCustomerCommand struct { //nolint:recvcheck //using for validation
	sessionID kernel.UUID
	customer  order.Customer

	guard guard.ConstructorGuard
}

func NewUpdateCustomerCommand(sessionID kernel.UUID, customer order.Customer) (UpdateCustomerCommand, error) {
	if err := sessionID.Validate(); err != nil {
		return UpdateCustomerCommand{}, err
	}

	return UpdateCustomerCommand{
		sessionID: sessionID,
		customer:  customer,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateCustomerCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCustomerCommandIsNotConstructed)
}

func (c UpdateCustomerCommand) SessionID() kernel.UUID {
	return c.sessionID
}

func (c UpdateCustomerCommand) Customer() order.Customer {
	return c.customer
}
