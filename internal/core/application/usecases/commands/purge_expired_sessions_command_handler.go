package commands

import (
	"context"

	"chapatis/internal/core/domain/model/kernel"
)

type PurgeExpiredSessionsCommandHandler struct {
	uowFactory UoWFactory
	clock      kernel.Clock
}

func NewPurgeExpiredSessionsCommandHandler(
	uowFactory UoWFactory,
	clock kernel.Clock,
) PurgeExpiredSessionsCommandHandler {
	return PurgeExpiredSessionsCommandHandler{uowFactory: uowFactory, clock: clock}
}

// Handle deletes sessions last updated more than TTL ago and returns the
// number removed.
func (h *PurgeExpiredSessionsCommandHandler) Handle(ctx context.Context, cmd PurgeExpiredSessionsCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cutoff := h.clock.Now().Add(-cmd.TTL())
	removed, err := uow.SessionRepository().DeleteIdleSince(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return removed, nil
}
