package ports

import (
	"context"

	"chapatis/internal/core/domain/model/kernel"
	"chapatis/internal/core/domain/model/order"
)

// OrderNotifier tells the outside world about confirmed orders, e.g. to send
// the confirmation email the customer is promised.
type OrderNotifier interface {
	OrderConfirmed(ctx context.Context, sessionID kernel.UUID, o *order.Order) error
}
