package commands_test

import (
	"errors"
	"testing"

	"chapatis/internal/core/application/usecases/commands"
	"chapatis/internal/core/domain/model/kernel"
	"chapatis/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAdjustQuantityCommandHandler_Handle(t *testing.T) {
	t.Run("increments and reports the new count", func(t *testing.T) {
		s := newSession()
		factory, uow, repo := expectLoadAndUpdate(s)
		cmd, err := commands.NewAdjustQuantityCommand(s.ID(), 1)
		require.NoError(t, err)

		h := commands.NewAdjustQuantityCommandHandler(factory, fixedClock())
		boxes, err := h.Handle(t.Context(), cmd)

		require.NoError(t, err)
		assert.Equal(t, 6, boxes)
		assert.Equal(t, 6, s.Quantity().Boxes())
		repo.AssertExpectations(t)
		uow.AssertExpectations(t)
	})

	t.Run("clamps at the minimum", func(t *testing.T) {
		s := newSession()
		factory, _, _ := expectLoadAndUpdate(s)
		cmd, _ := commands.NewAdjustQuantityCommand(s.ID(), -1)

		h := commands.NewAdjustQuantityCommandHandler(factory, fixedClock())
		boxes, err := h.Handle(t.Context(), cmd)

		require.NoError(t, err)
		assert.Equal(t, 5, boxes)
	})

	t.Run("unknown session", func(t *testing.T) {
		ctx := t.Context()
		id := kernel.NewUUID()
		repo := new(MockSessionRepository)
		uow := new(MockUoW)
		factory := new(MockUoWFactory)
		factory.On("Create").Return(uow).Once()
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("SessionRepository").Return(repo).Once(),
			repo.On("Get", ctx, id).Return(nil, errs.NewObjectNotFoundError("session", id)).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)
		cmd, _ := commands.NewAdjustQuantityCommand(id, 1)

		h := commands.NewAdjustQuantityCommandHandler(factory, fixedClock())
		_, err := h.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		uow.AssertExpectations(t)
	})

	t.Run("stale version", func(t *testing.T) {
		ctx := t.Context()
		s := newSession()
		repo := new(MockSessionRepository)
		uow := new(MockUoW)
		factory := new(MockUoWFactory)
		factory.On("Create").Return(uow).Once()
		conflict := errs.NewVersionIsInvalidError("session")
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("SessionRepository").Return(repo).Once(),
			repo.On("Get", ctx, s.ID()).Return(s, nil).Once(),
			repo.On("Update", ctx, s).Return(conflict).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)
		cmd, _ := commands.NewAdjustQuantityCommand(s.ID(), 1)

		h := commands.NewAdjustQuantityCommandHandler(factory, fixedClock())
		_, err := h.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrVersionIsInvalid)
		uow.AssertNotCalled(t, "Commit", ctx)
	})

	t.Run("commit error", func(t *testing.T) {
		ctx := t.Context()
		s := newSession()
		repo := new(MockSessionRepository)
		uow := new(MockUoW)
		factory := new(MockUoWFactory)
		factory.On("Create").Return(uow).Once()
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("SessionRepository").Return(repo).Once(),
			repo.On("Get", ctx, s.ID()).Return(s, nil).Once(),
			repo.On("Update", ctx, s).Return(nil).Once(),
			uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)
		cmd, _ := commands.NewAdjustQuantityCommand(s.ID(), 1)

		h := commands.NewAdjustQuantityCommandHandler(factory, fixedClock())
		_, err := h.Handle(ctx, cmd)

		require.EqualError(t, err, "commit error")
	})

	t.Run("not constructed", func(t *testing.T) {
		h := commands.NewAdjustQuantityCommandHandler(new(MockUoWFactory), fixedClock())

		_, err := h.Handle(t.Context(), commands.AdjustQuantityCommand{})

		require.ErrorIs(t, err, commands.ErrAdjustQuantityCommandIsNotConstructed)
	})
}
