package slot

import (
	"errors"
	"time"

	"chapatis/internal/pkg/errs"
	"chapatis/internal/pkg/guard"
)

var (
	// ErrDeliverySlotIsNotConstructed is returned when validating a zero-value DeliverySlot.
	ErrDeliverySlotIsNotConstructed = errors.New("DeliverySlot must be created via NewDeliverySlot constructor")

	// ErrSlotFullyBooked is returned when a fully booked day is chosen for delivery.
	ErrSlotFullyBooked = errors.New("delivery slot is fully booked")
)

// DeliverySlot is a bookable delivery day. Availability is derived from the
// capacity numbers so IsAvailable() == (CapacityUsed() < MaxCapacity()) always holds.
type DeliverySlot struct { //nolint:recvcheck //using for validation
	date         time.Time
	capacityUsed int
	maxCapacity  int

	guard guard.ConstructorGuard
}

// NewDeliverySlot creates a slot for date. maxCapacity must be positive and
// capacityUsed must lie in [0, maxCapacity].
func NewDeliverySlot(date time.Time, capacityUsed, maxCapacity int) (DeliverySlot, error) {
	s := DeliverySlot{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		s.setDate(date),
		s.setCapacity(capacityUsed, maxCapacity),
	); err != nil {
		return DeliverySlot{}, err
	}

	return s, nil
}

func (s DeliverySlot) Validate() error {
	return s.guard.Validate(ErrDeliverySlotIsNotConstructed)
}

// Date returns local midnight of the delivery day.
func (s DeliverySlot) Date() time.Time {
	return s.date
}

// DayName returns the English weekday name, e.g. "Wednesday".
func (s DeliverySlot) DayName() string {
	return s.date.Weekday().String()
}

func (s DeliverySlot) CapacityUsed() int {
	return s.capacityUsed
}

func (s DeliverySlot) MaxCapacity() int {
	return s.maxCapacity
}

func (s DeliverySlot) IsAvailable() bool {
	return s.capacityUsed < s.maxCapacity
}

// RemainingCapacity returns how many boxes can still be booked for the day.
func (s DeliverySlot) RemainingCapacity() int {
	return s.maxCapacity - s.capacityUsed
}

// OccupancyRate returns the booked share of capacity as a percentage (0-100).
func (s DeliverySlot) OccupancyRate() float64 {
	if s.maxCapacity == 0 {
		return 0
	}
	return float64(s.capacityUsed) / float64(s.maxCapacity) * 100
}

// EnsureBookable returns ErrSlotFullyBooked for a full slot.
func (s DeliverySlot) EnsureBookable() error {
	if err := s.Validate(); err != nil {
		return err
	}
	if !s.IsAvailable() {
		return ErrSlotFullyBooked
	}
	return nil
}

func (s *DeliverySlot) setDate(date time.Time) error {
	if date.IsZero() {
		return errs.NewValueIsRequiredError("date")
	}
	s.date = date
	return nil
}

func (s *DeliverySlot) setCapacity(used, maxCapacity int) error {
	if maxCapacity <= 0 {
		return errs.NewValueIsOutOfRangeError("maxCapacity", maxCapacity, 1, "unbounded")
	}
	if used < 0 || used > maxCapacity {
		return errs.NewValueIsOutOfRangeError("capacityUsed", used, 0, maxCapacity)
	}
	s.capacityUsed = used
	s.maxCapacity = maxCapacity
	return nil
}
