package commands

import (
	"context"

	"chapatis/internal/core/domain/model/kernel"
	"chapatis/internal/core/domain/model/order"
	"chapatis/internal/core/domain/model/session"
)

// CreateSessionCommandHandler stores a fresh session on the Ordering view
// with the minimum quantity selected.
type CreateSessionCommandHandler struct {
	uowFactory UoWFactory
	limits     order.Limits
	clock      kernel.Clock
}

func NewCreateSessionCommandHandler(
	uowFactory UoWFactory,
	limits order.Limits,
	clock kernel.Clock,
) CreateSessionCommandHandler {
	return CreateSessionCommandHandler{
		uowFactory: uowFactory,
		limits:     limits,
		clock:      clock,
	}
}

func (h *CreateSessionCommandHandler) Handle(ctx context.Context, cmd CreateSessionCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	s, err := session.NewSession(cmd.SessionID(), h.limits, h.clock.Now())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.SessionRepository().Add(ctx, s); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
