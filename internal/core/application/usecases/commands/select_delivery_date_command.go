package commands

import (
	"errors"
	"time"

	"chapatis/internal/core/domain/model/kernel"
	"chapatis/internal/pkg/errs"
	"chapatis/internal/pkg/guard"
)

var ErrSelectDeliveryDateCommandIsNotConstructed = errors.New(
	"SelectDeliveryDateCommand must be created via NewSelectDeliveryDateCommand constructor",
)

// SelectDeliveryDateCommand chooses one of the offered delivery days.
//
// Example:
//
//	date := time.Date(2026, time.October, 21, 0, 0, 0, 0, time.UTC)
//	cmd, err := NewSelectDeliveryDateCommand(sessionID, date)
//	if err != nil {
//	    return err
//	}
//	if err = handler.Handle(ctx, cmd); errors.Is(err, slot.ErrSlotFullyBooked) {
//	    // pick another day
//	}
type SelectDeliveryDateCommand struct { //nolint:recvcheck //using for validation
	sessionID kernel.UUID
	date      time.Time

	guard guard.ConstructorGuard
}

func NewSelectDeliveryDateCommand(sessionID kernel.UUID, date time.Time) (SelectDeliveryDateCommand, error) {
	cmd := SelectDeliveryDateCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		cmd.setSessionID(sessionID),
		cmd.setDate(date),
	); err != nil {
		return SelectDeliveryDateCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SelectDeliveryDateCommand) Validate() error {
	return c.guard.Validate(ErrSelectDeliveryDateCommandIsNotConstructed)
}

func (c SelectDeliveryDateCommand) SessionID() kernel.UUID {
	return c.sessionID
}

// Date returns the requested calendar day.
func (c SelectDeliveryDateCommand) Date() time.Time {
	return c.date
}

func (c *SelectDeliveryDateCommand) setSessionID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.sessionID = id
	return nil
}

func (c *SelectDeliveryDateCommand) setDate(date time.Time) error {
	if date.IsZero() {
		return errs.NewValueIsRequiredError("date")
	}
	c.date = date
	return nil
}
