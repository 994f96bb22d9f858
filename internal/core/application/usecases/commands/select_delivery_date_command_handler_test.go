package commands_test

import (
	"testing"
	"time"

	"chapatis/internal/core/application/usecases/commands"
	"chapatis/internal/core/domain/model/kernel"
	"chapatis/internal/core/domain/model/slot"
	"chapatis/internal/core/domain/services"
	"chapatis/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tinyGenerator offers slots with a capacity of one box, so generated days are
// either empty or fully booked.
func tinyGenerator(t *testing.T) slot.Generator {
	t.Helper()
	policy, err := slot.NewPolicy([]time.Weekday{time.Wednesday, time.Saturday}, 28, 6, 1, time.UTC)
	require.NoError(t, err)
	return slot.NewGenerator(policy, fixedClock())
}

func findSlot(t *testing.T, gen slot.Generator, available bool) slot.DeliverySlot {
	t.Helper()
	for _, s := range gen.Generate() {
		if s.IsAvailable() == available {
			return s
		}
	}
	t.Fatalf("no slot with availability %v", available)
	return slot.DeliverySlot{}
}

func TestNewSelectDeliveryDateCommand(t *testing.T) {
	_, err := commands.NewSelectDeliveryDateCommand(kernel.UUID{}, time.Time{})

	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestSelectDeliveryDateCommandHandler_Handle(t *testing.T) {
	gen := tinyGenerator(t)

	t.Run("selects an offered day", func(t *testing.T) {
		s := newSession()
		open := findSlot(t, gen, true)
		factory, uow, repo := expectLoadAndUpdate(s)
		cmd, err := commands.NewSelectDeliveryDateCommand(s.ID(), open.Date().Add(9*time.Hour))
		require.NoError(t, err)

		h := commands.NewSelectDeliveryDateCommandHandler(factory, gen, fixedClock())
		err = h.Handle(t.Context(), cmd)

		require.NoError(t, err)
		date, ok := s.SelectedDate()
		assert.True(t, ok)
		assert.True(t, open.Date().Equal(date))
		assert.Equal(t, now, s.UpdatedAt())
		repo.AssertExpectations(t)
		uow.AssertExpectations(t)
		factory.AssertExpectations(t)
	})

	t.Run("rejects a fully booked day without writing", func(t *testing.T) {
		s := newSession()
		full := findSlot(t, gen, false)
		factory, uow, repo := expectLoadOnly(s)
		cmd, _ := commands.NewSelectDeliveryDateCommand(s.ID(), full.Date())

		h := commands.NewSelectDeliveryDateCommandHandler(factory, gen, fixedClock())
		err := h.Handle(t.Context(), cmd)

		require.ErrorIs(t, err, slot.ErrSlotFullyBooked)
		_, ok := s.SelectedDate()
		assert.False(t, ok)
		repo.AssertNumberOfCalls(t, "Update", 0)
		uow.AssertNumberOfCalls(t, "Commit", 0)
		uow.AssertExpectations(t)
	})

	t.Run("rejects a day that is not offered before opening a transaction", func(t *testing.T) {
		factory := new(MockUoWFactory)
		// Monday is never a delivery day.
		cmd, _ := commands.NewSelectDeliveryDateCommand(kernel.NewUUID(), now)

		h := commands.NewSelectDeliveryDateCommandHandler(factory, gen, fixedClock())
		err := h.Handle(t.Context(), cmd)

		require.ErrorIs(t, err, services.ErrSlotNotOffered)
		factory.AssertNotCalled(t, "Create")
	})

	t.Run("rejects a day beyond the window", func(t *testing.T) {
		factory := new(MockUoWFactory)
		cmd, _ := commands.NewSelectDeliveryDateCommand(kernel.NewUUID(), now.AddDate(0, 2, 2))

		h := commands.NewSelectDeliveryDateCommandHandler(factory, gen, fixedClock())
		err := h.Handle(t.Context(), cmd)

		require.ErrorIs(t, err, services.ErrSlotNotOffered)
	})
}
