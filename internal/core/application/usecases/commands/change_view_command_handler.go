package commands

import (
	"context"

	"chapatis/internal/core/domain/model/kernel"
	"chapatis/internal/core/domain/model/session"
)

// ChangeViewCommandHandler applies session.Navigate. Going back to Ordering
// from Confirmation starts a new order.
type ChangeViewCommandHandler struct {
	uowFactory UoWFactory
	clock      kernel.Clock
}

func NewChangeViewCommandHandler(uowFactory UoWFactory, clock kernel.Clock) ChangeViewCommandHandler {
	return ChangeViewCommandHandler{uowFactory: uowFactory, clock: clock}
}

func (h *ChangeViewCommandHandler) Handle(ctx context.Context, cmd ChangeViewCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return updateSession(ctx, h.uowFactory, cmd.SessionID(), func(s *session.Session) error {
		return s.Navigate(cmd.View(), h.clock.Now())
	})
}
