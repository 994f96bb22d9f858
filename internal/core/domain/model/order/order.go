package order

import (
	"errors"
	"time"

	"chapatis/internal/core/domain/model/kernel"
	"chapatis/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order was not created through
// NewOrder or RestoreOrder.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Order is a confirmed purchase. It is created once and never mutated;
// sessions keep their orders in a history list.
//
// Order follows these invariants:
//   - id has the "ORD-<millis>" form
//   - deliveryDate is set
//   - totalPrice == quantity * price per box at the time of placement
//   - all customer fields are present
type Order struct {
	id           ID
	deliveryDate time.Time
	quantity     Quantity
	totalPrice   kernel.Money
	chapatis     int
	customer     Customer
	placedAt     time.Time

	isConstructed bool
}

// NewOrder prices quantity with catalog and snapshots customer.
//
//	catalog := order.DefaultCatalog()
//	q := catalog.Limits().Clamp(10)
//	o, err := order.NewOrder(order.NewID(now), deliveryDate, q, catalog, customer, now)
//	// o.TotalPrice().String() == "£45.00"
func NewOrder(
	id ID,
	deliveryDate time.Time,
	quantity Quantity,
	catalog Catalog,
	customer Customer,
	placedAt time.Time,
) (*Order, error) {
	if err := catalog.Validate(); err != nil {
		return nil, err
	}
	if err := quantity.Validate(); err != nil {
		return nil, err
	}

	total, err := catalog.Price(quantity)
	if err != nil {
		return nil, err
	}

	return RestoreOrder(id, deliveryDate, quantity, total, catalog.Chapatis(quantity), customer, placedAt)
}

// RestoreOrder rebuilds an order from storage without re-pricing it.
func RestoreOrder(
	id ID,
	deliveryDate time.Time,
	quantity Quantity,
	totalPrice kernel.Money,
	chapatis int,
	customer Customer,
	placedAt time.Time,
) (*Order, error) {
	o := &Order{isConstructed: true}

	if err := errors.Join(
		o.setID(id),
		o.setDeliveryDate(deliveryDate),
		o.setQuantity(quantity),
		o.setTotalPrice(totalPrice),
		o.setChapatis(chapatis),
		o.setCustomer(customer),
		o.setPlacedAt(placedAt),
	); err != nil {
		return nil, err
	}

	return o, nil
}

func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares orders by id.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id == other.id
}

func (o *Order) ID() ID {
	return o.id
}

func (o *Order) DeliveryDate() time.Time {
	return o.deliveryDate
}

func (o *Order) Quantity() Quantity {
	return o.quantity
}

func (o *Order) TotalPrice() kernel.Money {
	return o.totalPrice
}

// Chapatis returns the number of chapatis in the order.
func (o *Order) Chapatis() int {
	return o.chapatis
}

func (o *Order) Customer() Customer {
	return o.customer
}

func (o *Order) PlacedAt() time.Time {
	return o.placedAt
}

func (o *Order) setID(id ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setDeliveryDate(date time.Time) error {
	if date.IsZero() {
		return errs.NewValueIsRequiredError("delivery date")
	}
	o.deliveryDate = date
	return nil
}

func (o *Order) setQuantity(q Quantity) error {
	if err := q.Validate(); err != nil {
		return err
	}
	o.quantity = q
	return nil
}

func (o *Order) setTotalPrice(total kernel.Money) error {
	if err := total.Validate(); err != nil {
		return err
	}
	o.totalPrice = total
	return nil
}

func (o *Order) setChapatis(n int) error {
	if n < 0 {
		return errs.NewValueIsOutOfRangeError("chapatis", n, 0, "unbounded")
	}
	o.chapatis = n
	return nil
}

func (o *Order) setCustomer(c Customer) error {
	if err := c.ValidateRequired(); err != nil {
		return err
	}
	o.customer = c
	return nil
}

func (o *Order) setPlacedAt(t time.Time) error {
	if t.IsZero() {
		return errs.NewValueIsRequiredError("placed at")
	}
	o.placedAt = t
	return nil
}
