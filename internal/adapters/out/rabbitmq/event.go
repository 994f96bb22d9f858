// Package rabbitmq publishes order confirmations to a RabbitMQ fanout
// exchange.
package rabbitmq

import (
	"time"

	"chapatis/internal/core/domain/model/kernel"
	"chapatis/internal/core/domain/model/order"
)

// OrderConfirmedEvent is the JSON body of an order confirmation message.
type OrderConfirmedEvent struct {
	SessionID    string        `json:"session_id"`
	OrderID      string        `json:"order_id"`
	DeliveryDate string        `json:"delivery_date"`
	Boxes        int           `json:"boxes"`
	Chapatis     int           `json:"chapatis"`
	TotalPence   int64         `json:"total_pence"`
	TotalPrice   string        `json:"total_price"`
	Customer     EventCustomer `json:"customer"`
	PlacedAt     time.Time     `json:"placed_at"`
}

type EventCustomer struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

func NewOrderConfirmedEvent(sessionID kernel.UUID, o *order.Order) OrderConfirmedEvent {
	c := o.Customer()
	return OrderConfirmedEvent{
		SessionID:    sessionID.String(),
		OrderID:      o.ID().String(),
		DeliveryDate: o.DeliveryDate().Format(time.DateOnly),
		Boxes:        o.Quantity().Boxes(),
		Chapatis:     o.Chapatis(),
		TotalPence:   o.TotalPrice().Pence(),
		TotalPrice:   o.TotalPrice().String(),
		Customer: EventCustomer{
			Name:    c.Name(),
			Email:   c.Email(),
			Phone:   c.Phone(),
			Address: c.Address(),
		},
		PlacedAt: o.PlacedAt().UTC(),
	}
}
