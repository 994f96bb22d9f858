// Package lognotifier reports order confirmations as structured log lines.
// It is the notifier used when no message broker is configured.
package lognotifier

import (
	"context"
	"log/slog"
	"time"

	"chapatis/internal/core/domain/model/kernel"
	"chapatis/internal/core/domain/model/order"
)

type Notifier struct {
	logger *slog.Logger
}

func New(logger *slog.Logger) *Notifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &Notifier{logger: logger.With("component", "OrderNotifier")}
}

// OrderConfirmed logs the confirmation the customer would receive by email.
func (n *Notifier) OrderConfirmed(ctx context.Context, sessionID kernel.UUID, o *order.Order) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	n.logger.InfoContext(ctx, "confirmation sent",
		"session_id", sessionID.String(),
		"order_id", o.ID().String(),
		"email", o.Customer().Email(),
		"delivery_date", o.DeliveryDate().Format(time.DateOnly),
		"boxes", o.Quantity().Boxes(),
		"total", o.TotalPrice().String(),
	)
	return nil
}
