package commands

import (
	"context"

	"chapatis/internal/core/domain/model/kernel"
	"chapatis/internal/core/domain/model/session"
)

type StartNewOrderCommandHandler struct {
	uowFactory UoWFactory
	clock      kernel.Clock
}

func NewStartNewOrderCommandHandler(uowFactory UoWFactory, clock kernel.Clock) StartNewOrderCommandHandler {
	return StartNewOrderCommandHandler{uowFactory: uowFactory, clock: clock}
}

func (h *StartNewOrderCommandHandler) Handle(ctx context.Context, cmd StartNewOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return updateSession(ctx, h.uowFactory, cmd.SessionID(), func(s *session.Session) error {
		return s.StartNewOrder(h.clock.Now())
	})
}
