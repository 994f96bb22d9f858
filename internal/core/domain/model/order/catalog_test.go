package order_test

import (
	"testing"

	"chapatis/internal/core/domain/model/kernel"
	"chapatis/internal/core/domain/model/order"
	"chapatis/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	c := order.DefaultCatalog()

	require.NoError(t, c.Validate())
	assert.Equal(t, 5, c.Limits().Min())
	assert.Equal(t, 50, c.Limits().Max())
	assert.Equal(t, "£4.50", c.PricePerBox().String())
	assert.Equal(t, 10, c.ChapatisPerBox())
}

func TestMustNewCatalog(t *testing.T) {
	assert.NotPanics(t, func() { order.DefaultCatalog() })

	c := order.MustNewCatalog(2, 12, 300, 8)
	require.NoError(t, c.Validate())
	assert.Equal(t, 12, c.Limits().Max())
	assert.Equal(t, 8, c.ChapatisPerBox())

	tests := []struct {
		name           string
		minBoxes       int
		maxBoxes       int
		pricePence     int64
		chapatisPerBox int
	}{
		{"min below one", 0, 50, 450, 10},
		{"max below min", 10, 5, 450, 10},
		{"negative price", 5, 50, -1, 10},
		{"no chapatis per box", 5, 50, 450, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Panics(t, func() {
				order.MustNewCatalog(tt.minBoxes, tt.maxBoxes, tt.pricePence, tt.chapatisPerBox)
			})
		})
	}
}

func TestCatalog_Price(t *testing.T) {
	c := order.DefaultCatalog()

	total, err := c.Price(c.Limits().Clamp(10))

	require.NoError(t, err)
	assert.Equal(t, "£45.00", total.String())
	assert.Equal(t, 100, c.Chapatis(c.Limits().Clamp(10)))

	_, err = c.Price(order.Quantity{})
	require.ErrorIs(t, err, order.ErrQuantityIsNotConstructed)
}

func TestNewCatalog_Invalid(t *testing.T) {
	_, err := order.NewCatalog(order.Limits{}, kernel.Money{}, 0)

	require.ErrorIs(t, err, order.ErrLimitsAreNotConstructed)
	require.ErrorIs(t, err, kernel.ErrMoneyIsNotConstructed)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}
