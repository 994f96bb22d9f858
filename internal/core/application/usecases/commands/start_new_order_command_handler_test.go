package commands_test

import (
	"testing"

	"chapatis/internal/core/application/usecases/commands"
	"chapatis/internal/core/domain/model/order"
	"chapatis/internal/core/domain/model/session"
	"chapatis/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartNewOrderCommandHandler_Handle(t *testing.T) {
	t.Run("resets a confirmed session", func(t *testing.T) {
		s := readySession(t)
		_, err := s.Submit(order.NewID(now), order.DefaultCatalog(), now)
		require.NoError(t, err)
		factory, uow, _ := expectLoadAndUpdate(s)
		cmd, _ := commands.NewStartNewOrderCommand(s.ID())

		h := commands.NewStartNewOrderCommandHandler(factory, fixedClock())
		err = h.Handle(t.Context(), cmd)

		require.NoError(t, err)
		assert.Equal(t, session.Ordering, s.View())
		assert.Equal(t, 5, s.Quantity().Boxes())
		assert.Equal(t, "Amina", s.Customer().Name())
		_, ok := s.SelectedDate()
		assert.False(t, ok)
		uow.AssertExpectations(t)
	})

	t.Run("rejects sessions still ordering", func(t *testing.T) {
		s := newSession()
		factory, uow, _ := expectLoadOnly(s)
		cmd, _ := commands.NewStartNewOrderCommand(s.ID())

		h := commands.NewStartNewOrderCommandHandler(factory, fixedClock())
		err := h.Handle(t.Context(), cmd)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		uow.AssertNumberOfCalls(t, "Commit", 0)
	})
}
