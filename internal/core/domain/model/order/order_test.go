package order_test

import (
	"testing"
	"time"

	"chapatis/internal/core/domain/model/kernel"
	"chapatis/internal/core/domain/model/order"
	"chapatis/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	placedAt     = time.Date(2026, time.October, 19, 10, 30, 0, 0, time.UTC)
	deliveryDate = time.Date(2026, time.October, 21, 0, 0, 0, 0, time.UTC)
	customer     = order.NewCustomer("Amina", "amina@example.com", "07700 900123", "1 Mill Lane")
)

func TestNewOrder(t *testing.T) {
	catalog := order.DefaultCatalog()

	t.Run("should price ten boxes at 45.00", func(t *testing.T) {
		q := catalog.Limits().Clamp(10)

		o, err := order.NewOrder(order.NewID(placedAt), deliveryDate, q, catalog, customer, placedAt)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Equal(t, order.NewID(placedAt), o.ID())
		assert.Equal(t, deliveryDate, o.DeliveryDate())
		assert.Equal(t, 10, o.Quantity().Boxes())
		assert.Equal(t, int64(4500), o.TotalPrice().Pence())
		assert.InDelta(t, 45.00, o.TotalPrice().Amount(), 1e-9)
		assert.Equal(t, 100, o.Chapatis())
		assert.Equal(t, customer, o.Customer())
		assert.Equal(t, placedAt, o.PlacedAt())
	})

	t.Run("should fail without delivery date", func(t *testing.T) {
		o, err := order.NewOrder(order.NewID(placedAt), time.Time{}, catalog.Limits().Minimum(), catalog, customer, placedAt)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "delivery date")
	})

	t.Run("should fail with missing customer fields", func(t *testing.T) {
		incomplete := order.NewCustomer("Amina", "", "  ", "1 Mill Lane")

		o, err := order.NewOrder(order.NewID(placedAt), deliveryDate, catalog.Limits().Minimum(), catalog, incomplete, placedAt)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "value is required: email")
		assert.Contains(t, err.Error(), "value is required: phone")
	})

	t.Run("should fail with unconstructed quantity", func(t *testing.T) {
		o, err := order.NewOrder(order.NewID(placedAt), deliveryDate, order.Quantity{}, catalog, customer, placedAt)

		require.ErrorIs(t, err, order.ErrQuantityIsNotConstructed)
		assert.Nil(t, o)
	})

	t.Run("should fail with unconstructed catalog", func(t *testing.T) {
		o, err := order.NewOrder(order.NewID(placedAt), deliveryDate, catalog.Limits().Minimum(), order.Catalog{}, customer, placedAt)

		require.ErrorIs(t, err, order.ErrCatalogIsNotConstructed)
		assert.Nil(t, o)
	})
}

func TestRestoreOrder(t *testing.T) {
	limits := order.DefaultCatalog().Limits()
	q, err := order.NewQuantity(12, limits)
	require.NoError(t, err)
	total, _ := kernel.NewMoney(5400)

	t.Run("should keep the stored price", func(t *testing.T) {
		o, err := order.RestoreOrder("ORD-1792405800000", deliveryDate, q, total, 120, customer, placedAt)

		require.NoError(t, err)
		assert.Equal(t, "£54.00", o.TotalPrice().String())
		assert.Equal(t, 120, o.Chapatis())
	})

	t.Run("should join all validation errors", func(t *testing.T) {
		o, err := order.RestoreOrder("bad", time.Time{}, q, kernel.Money{}, -1, order.Customer{}, time.Time{})

		require.Error(t, err)
		assert.Nil(t, o)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		require.ErrorIs(t, err, kernel.ErrMoneyIsNotConstructed)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Contains(t, err.Error(), "placed at")
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("nil order", func(t *testing.T) {
		var o *order.Order

		assert.Equal(t, order.ErrOrderIsNotConstructed, o.Validate())
	})

	t.Run("zero value order", func(t *testing.T) {
		var o order.Order

		assert.Equal(t, order.ErrOrderIsNotConstructed, o.Validate())
	})
}

func TestOrder_IsEqual(t *testing.T) {
	catalog := order.DefaultCatalog()
	o1, _ := order.NewOrder(order.NewID(placedAt), deliveryDate, catalog.Limits().Clamp(5), catalog, customer, placedAt)
	o2, _ := order.NewOrder(order.NewID(placedAt), deliveryDate, catalog.Limits().Clamp(20), catalog, customer, placedAt)
	o3, _ := order.NewOrder(order.NewID(placedAt.Add(time.Millisecond)), deliveryDate, catalog.Limits().Clamp(5), catalog, customer, placedAt)

	assert.True(t, o1.IsEqual(o2))
	assert.False(t, o1.IsEqual(o3))
	assert.False(t, o1.IsEqual(nil))
}
