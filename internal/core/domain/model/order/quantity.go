package order

import (
	"errors"

	"chapatis/internal/pkg/errs"
	"chapatis/internal/pkg/guard"
)

var (
	// ErrLimitsAreNotConstructed is returned when validating zero-value Limits.
	ErrLimitsAreNotConstructed = errors.New("Limits must be created via NewLimits constructor")

	// ErrQuantityIsNotConstructed is returned when validating a zero-value Quantity.
	ErrQuantityIsNotConstructed = errors.New("Quantity must be created via Limits.Clamp or NewQuantity")
)

// Limits bounds the number of boxes per order.
type Limits struct { //nolint:recvcheck //using for validation
	minBoxes int
	maxBoxes int

	guard guard.ConstructorGuard
}

// NewLimits requires 1 <= minBoxes <= maxBoxes.
func NewLimits(minBoxes, maxBoxes int) (Limits, error) {
	if minBoxes < 1 {
		return Limits{}, errs.NewValueIsOutOfRangeError("minBoxes", minBoxes, 1, maxBoxes)
	}
	if maxBoxes < minBoxes {
		return Limits{}, errs.NewValueIsOutOfRangeError("maxBoxes", maxBoxes, minBoxes, "unbounded")
	}
	return Limits{minBoxes: minBoxes, maxBoxes: maxBoxes, guard: guard.NewConstructorGuard()}, nil
}

func (l Limits) Validate() error {
	return l.guard.Validate(ErrLimitsAreNotConstructed)
}

func (l Limits) Min() int {
	return l.minBoxes
}

func (l Limits) Max() int {
	return l.maxBoxes
}

// Clamp returns a Quantity of boxes forced into [Min, Max]. The quantity
// inherits the limits' guard, so clamping zero-value limits yields an
// unconstructed quantity.
func (l Limits) Clamp(boxes int) Quantity {
	return Quantity{
		boxes:  min(max(boxes, l.minBoxes), l.maxBoxes),
		limits: l,
		guard:  l.guard,
	}
}

// Minimum returns the smallest allowed quantity.
func (l Limits) Minimum() Quantity {
	return l.Clamp(l.minBoxes)
}

// Quantity is a number of boxes that always lies within its Limits.
type Quantity struct { //nolint:recvcheck //using for validation
	boxes  int
	limits Limits

	guard guard.ConstructorGuard
}

// NewQuantity is the strict constructor used when restoring stored orders:
// out-of-range counts are an error rather than clamped.
func NewQuantity(boxes int, limits Limits) (Quantity, error) {
	if err := limits.Validate(); err != nil {
		return Quantity{}, err
	}
	if boxes < limits.Min() || boxes > limits.Max() {
		return Quantity{}, errs.NewValueIsOutOfRangeError("quantity", boxes, limits.Min(), limits.Max())
	}
	return limits.Clamp(boxes), nil
}

func (q Quantity) Validate() error {
	return q.guard.Validate(ErrQuantityIsNotConstructed)
}

func (q Quantity) Boxes() int {
	return q.boxes
}

func (q Quantity) Limits() Limits {
	return q.limits
}

// Adjust returns the quantity moved by delta boxes, clamped to the limits.
// Deltas past either bound saturate before the addition so it cannot overflow.
func (q Quantity) Adjust(delta int) Quantity {
	switch {
	case delta > q.limits.Max()-q.boxes:
		return q.limits.Clamp(q.limits.Max())
	case delta < q.limits.Min()-q.boxes:
		return q.limits.Minimum()
	}
	return q.limits.Clamp(q.boxes + delta)
}

// Reset returns the minimum quantity.
func (q Quantity) Reset() Quantity {
	return q.limits.Minimum()
}

// CanIncrease reports whether another box can be added.
func (q Quantity) CanIncrease() bool {
	return q.boxes < q.limits.Max()
}

// CanDecrease reports whether a box can be removed.
func (q Quantity) CanDecrease() bool {
	return q.boxes > q.limits.Min()
}
