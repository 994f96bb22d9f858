package session

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"chapatis/internal/core/domain/model/kernel"
	"chapatis/internal/core/domain/model/order"
	"chapatis/internal/core/domain/model/slot"
	"chapatis/internal/pkg/errs"
	"chapatis/internal/pkg/guard"
)

var (
	// ErrMissingDeliveryDate is returned by Submit when no delivery date was selected.
	ErrMissingDeliveryDate = errs.NewValueIsRequiredError("delivery date")

	// ErrSessionIsNotConstructed is returned when using a zero-value Session.
	ErrSessionIsNotConstructed = errors.New("Session must be created via NewSession constructor")
)

// Session is the aggregate root of the ordering flow. It owns the current
// selection (date, quantity, customer), the view and the order history of one
// customer visit.
//
// Invariants:
//   - quantity always lies within the limits it was created with
//   - history is ordered most recent first and only ever grows at the front
//   - the confirmed order, if any, is history[0]
//   - a failed operation leaves the session unchanged
//
// Example:
//
//	s, _ := session.NewSession(kernel.NewUUID(), catalog.Limits(), now)
//	_ = s.SelectDeliveryDate(slots[0], now)
//	s.AdjustQuantity(+5, now)
//	s.UpdateCustomer(customer, now)
//	o, err := s.Submit(order.NewID(now), catalog, now)
type Session struct {
	id           kernel.UUID
	view         View
	selectedDate *time.Time
	quantity     order.Quantity
	customer     order.Customer
	history      []*order.Order
	confirmed    *order.Order
	version      int
	updatedAt    time.Time

	guard guard.ConstructorGuard
}

// NewSession starts a session in the Ordering view with the minimum quantity.
func NewSession(id kernel.UUID, limits order.Limits, now time.Time) (*Session, error) {
	if err := errors.Join(id.Validate(), limits.Validate()); err != nil {
		return nil, err
	}
	if now.IsZero() {
		return nil, errs.NewValueIsRequiredError("now")
	}

	return &Session{
		id:        id,
		view:      Ordering,
		quantity:  limits.Minimum(),
		updatedAt: now,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// RestoreSession rebuilds a session from storage. history must be ordered
// most recent first; confirmedID, when not empty, must be the id of
// history[0].
func RestoreSession(
	id kernel.UUID,
	view View,
	selectedDate *time.Time,
	quantity order.Quantity,
	customer order.Customer,
	history []*order.Order,
	confirmedID order.ID,
	version int,
	updatedAt time.Time,
) (*Session, error) {
	s := &Session{
		customer: customer,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		s.setID(id),
		s.setView(view),
		s.setSelectedDate(selectedDate),
		s.setQuantity(quantity),
		s.setHistory(history, confirmedID),
		s.setVersion(version),
		s.setUpdatedAt(updatedAt),
	); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *Session) Validate() error {
	if s == nil {
		return ErrSessionIsNotConstructed
	}
	return s.guard.Validate(ErrSessionIsNotConstructed)
}

func (s *Session) ID() kernel.UUID {
	return s.id
}

func (s *Session) View() View {
	return s.view
}

// SelectedDate returns the chosen delivery day and whether one is set.
func (s *Session) SelectedDate() (time.Time, bool) {
	if s.selectedDate == nil {
		return time.Time{}, false
	}
	return *s.selectedDate, true
}

func (s *Session) Quantity() order.Quantity {
	return s.quantity
}

func (s *Session) Customer() order.Customer {
	return s.customer
}

// History returns a copy of the confirmed orders, most recent first.
func (s *Session) History() []*order.Order {
	return slices.Clone(s.history)
}

// ConfirmedOrder returns the order shown on the Confirmation view, or nil.
func (s *Session) ConfirmedOrder() *order.Order {
	return s.confirmed
}

// Version is the storage version the session was loaded with.
func (s *Session) Version() int {
	return s.version
}

func (s *Session) UpdatedAt() time.Time {
	return s.updatedAt
}

// IsIdleSince reports whether the session was last touched before cutoff.
func (s *Session) IsIdleSince(cutoff time.Time) bool {
	return s.updatedAt.Before(cutoff)
}

// SelectDeliveryDate chooses the slot's day for delivery. Fully booked slots
// are rejected with slot.ErrSlotFullyBooked and the selection is kept.
func (s *Session) SelectDeliveryDate(ds slot.DeliverySlot, now time.Time) error {
	if err := ds.EnsureBookable(); err != nil {
		return err
	}

	date := ds.Date()
	s.selectedDate = &date
	s.touch(now)
	return nil
}

// AdjustQuantity adds delta boxes, clamping the result to the limits.
func (s *Session) AdjustQuantity(delta int, now time.Time) {
	s.quantity = s.quantity.Adjust(delta)
	s.touch(now)
}

// UpdateCustomer replaces the customer snapshot used by the next order.
func (s *Session) UpdateCustomer(c order.Customer, now time.Time) {
	s.customer = c
	s.touch(now)
}

// Submit confirms the current selection as a new order.
//
// The session must be on the Ordering view, a delivery date must be selected
// (ErrMissingDeliveryDate otherwise) and every customer field must be filled
// in. On success the order is prepended to the history and the session moves
// to Confirmation. On failure nothing changes.
func (s *Session) Submit(id order.ID, catalog order.Catalog, now time.Time) (*order.Order, error) {
	next, err := s.view.Submit()
	if err != nil {
		return nil, err
	}

	if s.selectedDate == nil {
		return nil, ErrMissingDeliveryDate
	}

	if err = s.customer.ValidateRequired(); err != nil {
		return nil, err
	}

	placed, err := order.NewOrder(id, *s.selectedDate, s.quantity, catalog, s.customer, now)
	if err != nil {
		return nil, fmt.Errorf("place order: %w", err)
	}

	s.history = append([]*order.Order{placed}, s.history...)
	s.confirmed = placed
	s.view = next
	s.touch(now)

	return placed, nil
}

// StartNewOrder leaves the Confirmation view. The delivery date is cleared
// and the quantity reset to the minimum; customer details are kept.
func (s *Session) StartNewOrder(now time.Time) error {
	next, err := s.view.StartNewOrder()
	if err != nil {
		return err
	}

	s.resetSelection()
	s.view = next
	s.touch(now)
	return nil
}

// ShowHistory switches to the History view.
func (s *Session) ShowHistory(now time.Time) error {
	next, err := s.view.ShowHistory()
	if err != nil {
		return err
	}
	if next == s.view {
		return nil
	}

	s.view = next
	s.touch(now)
	return nil
}

// ShowOrdering switches to the Ordering view. Leaving Confirmation this way
// starts a new order.
func (s *Session) ShowOrdering(now time.Time) error {
	if s.view == Confirmation {
		return s.StartNewOrder(now)
	}

	next, err := s.view.ShowOrdering()
	if err != nil {
		return err
	}
	if next == s.view {
		return nil
	}

	s.view = next
	s.touch(now)
	return nil
}

// Navigate dispatches to ShowOrdering or ShowHistory. Confirmation can only
// be reached by submitting an order.
func (s *Session) Navigate(target View, now time.Time) error {
	switch target { //nolint:exhaustive // other views are not navigable
	case Ordering:
		return s.ShowOrdering(now)
	case History:
		return s.ShowHistory(now)
	default:
		if target == s.view {
			return nil
		}
		return errs.NewValueIsInvalidErrorWithCause(
			"view is invalid",
			fmt.Errorf("%s cannot be navigated to", target.String()),
		)
	}
}

func (s *Session) resetSelection() {
	s.selectedDate = nil
	s.quantity = s.quantity.Reset()
	s.confirmed = nil
}

func (s *Session) touch(now time.Time) {
	if now.After(s.updatedAt) {
		s.updatedAt = now
	}
}

func (s *Session) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Session) setView(v View) error {
	if err := v.Validate(); err != nil {
		return err
	}
	s.view = v
	return nil
}

func (s *Session) setSelectedDate(date *time.Time) error {
	if date == nil {
		return nil
	}
	if date.IsZero() {
		return errs.NewValueIsRequiredError("selected date")
	}
	d := *date
	s.selectedDate = &d
	return nil
}

func (s *Session) setQuantity(q order.Quantity) error {
	if err := q.Validate(); err != nil {
		return err
	}
	s.quantity = q
	return nil
}

func (s *Session) setHistory(history []*order.Order, confirmedID order.ID) error {
	for i, o := range history {
		if err := o.Validate(); err != nil {
			return fmt.Errorf("history[%d]: %w", i, err)
		}
	}
	s.history = slices.Clone(history)

	if confirmedID == "" {
		return nil
	}
	if s.view != Confirmation {
		return errs.NewValueIsInvalidErrorWithCause(
			"confirmed order",
			fmt.Errorf("only the %s view holds a confirmed order", Confirmation),
		)
	}
	if len(s.history) == 0 || s.history[0].ID() != confirmedID {
		return errs.NewObjectNotFoundError("confirmed order", confirmedID)
	}
	s.confirmed = s.history[0]
	return nil
}

func (s *Session) setVersion(version int) error {
	if version < 0 {
		return errs.NewValueIsOutOfRangeError("version", version, 0, "unbounded")
	}
	s.version = version
	return nil
}

func (s *Session) setUpdatedAt(t time.Time) error {
	if t.IsZero() {
		return errs.NewValueIsRequiredError("updated at")
	}
	s.updatedAt = t
	return nil
}
