package commands

import (
	"context"

	"chapatis/internal/core/domain/model/kernel"
	"chapatis/internal/core/domain/model/session"
)

// updateSession loads the session, applies mutate and stores the result in a
// single unit of work. Nothing is written when mutate fails.
func updateSession(
	ctx context.Context,
	uowFactory UoWFactory,
	id kernel.UUID,
	mutate func(s *session.Session) error,
) error {
	uow := uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.SessionRepository()
	s, err := repo.Get(ctx, id)
	if err != nil {
		return err
	}

	if err = mutate(s); err != nil {
		return err
	}

	if err = repo.Update(ctx, s); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
