package kernel

import (
	"fmt"

	"chapatis/internal/pkg/errs"
	"chapatis/internal/pkg/guard"
)

// ErrMoneyIsNotConstructed is returned when validating a zero-value Money.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError("money must be created via NewMoney")

// Money is an amount in pence. Integer pence keep order totals exact:
// 10 boxes at £4.50 is exactly £45.00.
type Money struct { //nolint:recvcheck //using for validation
	pence int64
	guard guard.ConstructorGuard
}

// NewMoney creates an amount from pence. Negative amounts are rejected.
func NewMoney(pence int64) (Money, error) {
	if pence < 0 {
		return Money{}, errs.NewValueIsOutOfRangeError("pence", pence, 0, "unbounded")
	}
	return Money{pence: pence, guard: guard.NewConstructorGuard()}, nil
}

// Validate rejects the zero value.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

func (m Money) Pence() int64 {
	return m.pence
}

// Amount returns the value in pounds, as exposed by the API.
func (m Money) Amount() float64 {
	return float64(m.pence) / 100
}

// Times multiplies the amount by a non-negative count.
func (m Money) Times(n int) (Money, error) {
	if err := m.Validate(); err != nil {
		return Money{}, err
	}
	return NewMoney(m.pence * int64(n))
}

func (m Money) IsEqual(other Money) bool {
	return m.pence == other.pence
}

// String renders the amount as pounds sterling, e.g. "£45.00".
func (m Money) String() string {
	return fmt.Sprintf("£%d.%02d", m.pence/100, m.pence%100)
}
