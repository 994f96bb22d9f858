package order

import (
	"errors"

	"chapatis/internal/core/domain/model/kernel"
	"chapatis/internal/pkg/errs"
	"chapatis/internal/pkg/guard"
)

const (
	DefaultMinBoxes         = 5
	DefaultMaxBoxes         = 50
	DefaultPricePerBoxPence = 450
	DefaultChapatisPerBox   = 10
)

// ErrCatalogIsNotConstructed is returned when validating a zero-value Catalog.
var ErrCatalogIsNotConstructed = errors.New("Catalog must be created via NewCatalog constructor")

// Catalog describes what is sold: boxes of chapatis at a fixed price.
type Catalog struct { //nolint:recvcheck //using for validation
	limits         Limits
	pricePerBox    kernel.Money
	chapatisPerBox int

	guard guard.ConstructorGuard
}

// DefaultCatalog sells 5 to 50 boxes of 10 chapatis at £4.50 per box.
func DefaultCatalog() Catalog {
	return MustNewCatalog(DefaultMinBoxes, DefaultMaxBoxes, DefaultPricePerBoxPence, DefaultChapatisPerBox)
}

// MustNewCatalog builds a catalog from plain values and panics when they are
// invalid. It is meant for compile-time constants.
func MustNewCatalog(minBoxes, maxBoxes int, pricePerBoxPence int64, chapatisPerBox int) Catalog {
	limits, err := NewLimits(minBoxes, maxBoxes)
	if err != nil {
		panic(err)
	}

	price, err := kernel.NewMoney(pricePerBoxPence)
	if err != nil {
		panic(err)
	}

	c, err := NewCatalog(limits, price, chapatisPerBox)
	if err != nil {
		panic(err)
	}

	return c
}

func NewCatalog(limits Limits, pricePerBox kernel.Money, chapatisPerBox int) (Catalog, error) {
	c := Catalog{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		c.setLimits(limits),
		c.setPricePerBox(pricePerBox),
		c.setChapatisPerBox(chapatisPerBox),
	); err != nil {
		return Catalog{}, err
	}

	return c, nil
}

func (c Catalog) Validate() error {
	return c.guard.Validate(ErrCatalogIsNotConstructed)
}

func (c Catalog) Limits() Limits {
	return c.limits
}

func (c Catalog) PricePerBox() kernel.Money {
	return c.pricePerBox
}

func (c Catalog) ChapatisPerBox() int {
	return c.chapatisPerBox
}

// Price returns quantity * price per box.
func (c Catalog) Price(q Quantity) (kernel.Money, error) {
	if err := errors.Join(c.Validate(), q.Validate()); err != nil {
		return kernel.Money{}, err
	}
	return c.pricePerBox.Times(q.Boxes())
}

// Chapatis returns the number of chapatis in q boxes.
func (c Catalog) Chapatis(q Quantity) int {
	return q.Boxes() * c.chapatisPerBox
}

func (c *Catalog) setLimits(limits Limits) error {
	if err := limits.Validate(); err != nil {
		return err
	}
	c.limits = limits
	return nil
}

func (c *Catalog) setPricePerBox(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	c.pricePerBox = price
	return nil
}

func (c *Catalog) setChapatisPerBox(n int) error {
	if n <= 0 {
		return errs.NewValueIsOutOfRangeError("chapatisPerBox", n, 1, "unbounded")
	}
	c.chapatisPerBox = n
	return nil
}
