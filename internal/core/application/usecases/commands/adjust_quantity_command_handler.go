package commands

import (
	"context"

	"chapatis/internal/core/domain/model/kernel"
	"chapatis/internal/core/domain/model/session"
)

type AdjustQuantityCommandHandler struct {
	uowFactory UoWFactory
	clock      kernel.Clock
}

func NewAdjustQuantityCommandHandler(uowFactory UoWFactory, clock kernel.Clock) AdjustQuantityCommandHandler {
	return AdjustQuantityCommandHandler{uowFactory: uowFactory, clock: clock}
}

// Handle applies the delta and returns the resulting box count.
func (h *AdjustQuantityCommandHandler) Handle(ctx context.Context, cmd AdjustQuantityCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	var boxes int
	err := updateSession(ctx, h.uowFactory, cmd.SessionID(), func(s *session.Session) error {
		s.AdjustQuantity(cmd.Delta(), h.clock.Now())
		boxes = s.Quantity().Boxes()
		return nil
	})
	if err != nil {
		return 0, err
	}

	return boxes, nil
}
