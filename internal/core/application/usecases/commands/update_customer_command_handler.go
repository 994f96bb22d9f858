package commands

import (
	"context"

	"chapatis/internal/core/domain/model/kernel"
	"chapatis/internal/core/domain/model/session"
)

type UpdateCustomerCommandHandler struct {
	uowFactory UoWFactory
	clock      kernel.Clock
}

func NewUpdateCustomerCommandHandler(uowFactory UoWFactory, clock kernel.Clock) UpdateCustomerCommandHandler {
	return UpdateCustomerCommandHandler{uowFactory: uowFactory, clock: clock}
}

func (h *UpdateCustomerCommandHandler) Handle(ctx context.Context, cmd UpdateCustomerCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return updateSession(ctx, h.uowFactory, cmd.SessionID(), func(s *session.Session) error {
		s.UpdateCustomer(cmd.Customer(), h.clock.Now())
		return nil
	})
}
