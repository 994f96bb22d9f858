package session_test

import (
	"errors"
	"testing"
	"time"

	"chapatis/internal/core/domain/model/kernel"
	"chapatis/internal/core/domain/model/order"
	"chapatis/internal/core/domain/model/session"
	"chapatis/internal/core/domain/model/slot"
	"chapatis/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	created  = time.Date(2026, time.October, 19, 9, 0, 0, 0, time.UTC)
	wed      = time.Date(2026, time.October, 21, 0, 0, 0, 0, time.UTC)
	sat      = time.Date(2026, time.October, 24, 0, 0, 0, 0, time.UTC)
	catalog  = order.DefaultCatalog()
	customer = order.NewCustomer("Amina", "amina@example.com", "07700 900123", "1 Mill Lane")
)

func newSession(t *testing.T) *session.Session {
	t.Helper()
	s, err := session.NewSession(kernel.NewUUID(), catalog.Limits(), created)
	require.NoError(t, err)
	return s
}

func openSlot(t *testing.T, date time.Time) slot.DeliverySlot {
	t.Helper()
	s, err := slot.NewDeliverySlot(date, 40, 100)
	require.NoError(t, err)
	return s
}

func readySession(t *testing.T) *session.Session {
	t.Helper()
	s := newSession(t)
	require.NoError(t, s.SelectDeliveryDate(openSlot(t, wed), created))
	s.UpdateCustomer(customer, created)
	return s
}

func TestNewSession(t *testing.T) {
	t.Run("starts on ordering with the minimum quantity", func(t *testing.T) {
		s := newSession(t)

		require.NoError(t, s.Validate())
		assert.Equal(t, session.Ordering, s.View())
		assert.Equal(t, 5, s.Quantity().Boxes())
		_, ok := s.SelectedDate()
		assert.False(t, ok)
		assert.Empty(t, s.History())
		assert.Nil(t, s.ConfirmedOrder())
		assert.Equal(t, 0, s.Version())
		assert.Equal(t, created, s.UpdatedAt())
	})

	t.Run("rejects zero id and limits", func(t *testing.T) {
		s, err := session.NewSession(kernel.UUID{}, order.Limits{}, created)

		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
		require.ErrorIs(t, err, order.ErrLimitsAreNotConstructed)
		assert.Nil(t, s)
	})

	t.Run("zero value session is invalid", func(t *testing.T) {
		var s session.Session
		var nilSession *session.Session

		require.ErrorIs(t, s.Validate(), session.ErrSessionIsNotConstructed)
		require.ErrorIs(t, nilSession.Validate(), session.ErrSessionIsNotConstructed)
	})
}

func TestSession_SelectDeliveryDate(t *testing.T) {
	t.Run("selects an available slot", func(t *testing.T) {
		s := newSession(t)
		later := created.Add(time.Minute)

		require.NoError(t, s.SelectDeliveryDate(openSlot(t, sat), later))

		date, ok := s.SelectedDate()
		assert.True(t, ok)
		assert.Equal(t, sat, date)
		assert.Equal(t, later, s.UpdatedAt())
	})

	t.Run("rejects a fully booked slot and keeps the selection", func(t *testing.T) {
		s := newSession(t)
		require.NoError(t, s.SelectDeliveryDate(openSlot(t, wed), created))
		full, err := slot.NewDeliverySlot(sat, 100, 100)
		require.NoError(t, err)

		err = s.SelectDeliveryDate(full, created)

		require.ErrorIs(t, err, slot.ErrSlotFullyBooked)
		date, _ := s.SelectedDate()
		assert.Equal(t, wed, date)
	})
}

func TestSession_AdjustQuantity(t *testing.T) {
	s := newSession(t)

	s.AdjustQuantity(1, created)
	assert.Equal(t, 6, s.Quantity().Boxes())

	s.AdjustQuantity(-10, created)
	assert.Equal(t, 5, s.Quantity().Boxes())

	s.AdjustQuantity(100, created)
	assert.Equal(t, 50, s.Quantity().Boxes())
}

func TestSession_Submit(t *testing.T) {
	t.Run("confirms the order and prepends it to history", func(t *testing.T) {
		s := readySession(t)
		s.AdjustQuantity(5, created)
		at := created.Add(time.Hour)

		o, err := s.Submit(order.NewID(at), catalog, at)

		require.NoError(t, err)
		assert.Equal(t, session.Confirmation, s.View())
		assert.Equal(t, o, s.ConfirmedOrder())
		assert.Equal(t, []*order.Order{o}, s.History())
		assert.Equal(t, wed, o.DeliveryDate())
		assert.Equal(t, 10, o.Quantity().Boxes())
		assert.Equal(t, "£45.00", o.TotalPrice().String())
		assert.Equal(t, customer, o.Customer())
		assert.Equal(t, at, s.UpdatedAt())
	})

	t.Run("without a delivery date leaves the session unchanged", func(t *testing.T) {
		s := newSession(t)
		s.UpdateCustomer(customer, created)

		o, err := s.Submit(order.NewID(created), catalog, created.Add(time.Hour))

		require.ErrorIs(t, err, session.ErrMissingDeliveryDate)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Nil(t, o)
		assert.Equal(t, session.Ordering, s.View())
		assert.Empty(t, s.History())
		assert.Equal(t, created, s.UpdatedAt())
	})

	t.Run("reports the missing date before missing customer fields", func(t *testing.T) {
		s := newSession(t)

		_, err := s.Submit(order.NewID(created), catalog, created)

		assert.Equal(t, session.ErrMissingDeliveryDate, err)
	})

	t.Run("with blank customer fields leaves the session unchanged", func(t *testing.T) {
		s := newSession(t)
		require.NoError(t, s.SelectDeliveryDate(openSlot(t, wed), created))
		s.UpdateCustomer(order.NewCustomer("Amina", "", "", "1 Mill Lane"), created)

		o, err := s.Submit(order.NewID(created), catalog, created)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.NotErrorIs(t, err, session.ErrMissingDeliveryDate)
		assert.Nil(t, o)
		assert.Equal(t, session.Ordering, s.View())
		assert.Empty(t, s.History())
	})

	t.Run("cannot submit twice without starting a new order", func(t *testing.T) {
		s := readySession(t)
		_, err := s.Submit(order.NewID(created), catalog, created)
		require.NoError(t, err)

		_, err = s.Submit(order.NewID(created.Add(time.Second)), catalog, created)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Len(t, s.History(), 1)
	})

	t.Run("keeps history most recent first", func(t *testing.T) {
		s := readySession(t)
		first, err := s.Submit(order.NewID(created), catalog, created)
		require.NoError(t, err)
		require.NoError(t, s.StartNewOrder(created))
		require.NoError(t, s.SelectDeliveryDate(openSlot(t, sat), created))

		second, err := s.Submit(order.NewID(created.Add(time.Second)), catalog, created.Add(time.Second))
		require.NoError(t, err)

		assert.Equal(t, []*order.Order{second, first}, s.History())
	})
}

func TestSession_StartNewOrder(t *testing.T) {
	t.Run("resets date and quantity and keeps the customer", func(t *testing.T) {
		s := readySession(t)
		s.AdjustQuantity(20, created)
		_, err := s.Submit(order.NewID(created), catalog, created)
		require.NoError(t, err)

		require.NoError(t, s.StartNewOrder(created))

		assert.Equal(t, session.Ordering, s.View())
		_, ok := s.SelectedDate()
		assert.False(t, ok)
		assert.Equal(t, 5, s.Quantity().Boxes())
		assert.Equal(t, customer, s.Customer())
		assert.Nil(t, s.ConfirmedOrder())
		assert.Len(t, s.History(), 1)
	})

	t.Run("is only allowed from confirmation", func(t *testing.T) {
		s := readySession(t)

		err := s.StartNewOrder(created)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		_, ok := s.SelectedDate()
		assert.True(t, ok)
	})
}

func TestSession_Navigate(t *testing.T) {
	t.Run("ordering to history and back", func(t *testing.T) {
		s := readySession(t)

		require.NoError(t, s.Navigate(session.History, created))
		assert.Equal(t, session.History, s.View())

		require.NoError(t, s.Navigate(session.History, created))
		assert.Equal(t, session.History, s.View())

		require.NoError(t, s.Navigate(session.Ordering, created))
		assert.Equal(t, session.Ordering, s.View())
		_, ok := s.SelectedDate()
		assert.True(t, ok, "leaving history keeps the selection")
	})

	t.Run("confirmation to ordering starts a new order", func(t *testing.T) {
		s := readySession(t)
		_, err := s.Submit(order.NewID(created), catalog, created)
		require.NoError(t, err)

		require.NoError(t, s.Navigate(session.Ordering, created))

		assert.Equal(t, session.Ordering, s.View())
		_, ok := s.SelectedDate()
		assert.False(t, ok)
	})

	t.Run("confirmation to history is rejected", func(t *testing.T) {
		s := readySession(t)
		_, err := s.Submit(order.NewID(created), catalog, created)
		require.NoError(t, err)

		err = s.Navigate(session.History, created)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, session.Confirmation, s.View())
	})

	t.Run("confirmation cannot be navigated to", func(t *testing.T) {
		s := newSession(t)

		err := s.Navigate(session.Confirmation, created)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, session.Ordering, s.View())
	})
}

func TestSession_History_ReturnsCopy(t *testing.T) {
	s := readySession(t)
	_, err := s.Submit(order.NewID(created), catalog, created)
	require.NoError(t, err)

	h := s.History()
	h[0] = nil

	assert.NotNil(t, s.History()[0])
}

func TestSession_IsIdleSince(t *testing.T) {
	s := newSession(t)

	assert.True(t, s.IsIdleSince(created.Add(time.Second)))
	assert.False(t, s.IsIdleSince(created))
}

func TestRestoreSession(t *testing.T) {
	o, err := order.NewOrder(order.NewID(created), wed, catalog.Limits().Clamp(10), catalog, customer, created)
	require.NoError(t, err)
	id := kernel.NewUUID()

	t.Run("restores a confirmed session", func(t *testing.T) {
		s, err := session.RestoreSession(
			id, session.Confirmation, nil, catalog.Limits().Minimum(), customer,
			[]*order.Order{o}, o.ID(), 3, created,
		)

		require.NoError(t, err)
		assert.True(t, id.IsEqual(s.ID()))
		assert.Equal(t, o, s.ConfirmedOrder())
		assert.Equal(t, 3, s.Version())
	})

	t.Run("restores the selected date", func(t *testing.T) {
		date := sat
		s, err := session.RestoreSession(
			id, session.Ordering, &date, catalog.Limits().Clamp(7), customer, nil, "", 0, created,
		)

		require.NoError(t, err)
		got, ok := s.SelectedDate()
		assert.True(t, ok)
		assert.Equal(t, sat, got)
		assert.Equal(t, 7, s.Quantity().Boxes())
	})

	t.Run("confirmed order must head the history", func(t *testing.T) {
		_, err := session.RestoreSession(
			id, session.Confirmation, nil, catalog.Limits().Minimum(), customer,
			nil, o.ID(), 0, created,
		)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("joins every invalid field", func(t *testing.T) {
		_, err := session.RestoreSession(
			kernel.UUID{}, session.Unknown, nil, order.Quantity{}, customer, nil, "", -1, time.Time{},
		)

		require.Error(t, err)
		for _, target := range []error{
			kernel.ErrUUIDIsNotConstructed,
			errs.ErrValueIsInvalid,
			order.ErrQuantityIsNotConstructed,
			errs.ErrValueIsOutOfRange,
			errs.ErrValueIsRequired,
		} {
			assert.True(t, errors.Is(err, target), target.Error())
		}
	})
}
