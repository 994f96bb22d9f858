package commands

import (
	"context"
	"log/slog"

	"chapatis/internal/core/domain/model/kernel"
	"chapatis/internal/core/domain/model/order"
	"chapatis/internal/core/domain/model/session"
	"chapatis/internal/core/ports"
)

// SubmitOrderCommandHandler places an order for the session and, once the
// change is committed, hands it to the notifier. Notification failures are
// logged and do not fail the command: the order is already confirmed.
type SubmitOrderCommandHandler struct {
	uowFactory UoWFactory
	catalog    order.Catalog
	clock      kernel.Clock
	notifier   ports.OrderNotifier
	logger     *slog.Logger
}

func NewSubmitOrderCommandHandler(
	uowFactory UoWFactory,
	catalog order.Catalog,
	clock kernel.Clock,
	notifier ports.OrderNotifier,
	logger *slog.Logger,
) SubmitOrderCommandHandler {
	if logger == nil {
		logger = slog.Default()
	}

	return SubmitOrderCommandHandler{
		uowFactory: uowFactory,
		catalog:    catalog,
		clock:      clock,
		notifier:   notifier,
		logger:     logger.With("component", "SubmitOrderCommandHandler"),
	}
}

func (h *SubmitOrderCommandHandler) Handle(ctx context.Context, cmd SubmitOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	var placed *order.Order
	err := updateSession(ctx, h.uowFactory, cmd.SessionID(), func(s *session.Session) error {
		now := h.clock.Now()
		o, err := s.Submit(order.NewID(now), h.catalog, now)
		if err != nil {
			return err
		}
		placed = o
		return nil
	})
	if err != nil {
		return nil, err
	}

	h.logger.InfoContext(ctx, "order confirmed",
		"session_id", cmd.SessionID().String(),
		"order_id", placed.ID().String(),
		"boxes", placed.Quantity().Boxes(),
		"total", placed.TotalPrice().String(),
	)

	if h.notifier != nil {
		if err = h.notifier.OrderConfirmed(ctx, cmd.SessionID(), placed); err != nil {
			h.logger.ErrorContext(ctx, "failed to send order confirmation",
				"order_id", placed.ID().String(),
				"error", err,
			)
		}
	}

	return placed, nil
}
