package commands

import (
	"errors"

	"chapatis/internal/core/domain/model/kernel"
	"chapatis/internal/core/domain/model/session"
	"chapatis/internal/pkg/guard"
)

var ErrChangeViewCommandIsNotConstructed = errors.New(
	"ChangeViewCommand must be created via NewChangeViewCommand constructor",
)

// ChangeViewCommand navigates a session between the Ordering and History
// views.
type ChangeViewCommand struct { //nolint:recvcheck //using for validation
	sessionID kernel.UUID
	view      session.View

	guard guard.ConstructorGuard
}

func NewChangeViewCommand(sessionID kernel.UUID, view session.View) (ChangeViewCommand, error) {
	if err := errors.Join(sessionID.Validate(), view.Validate()); err != nil {
		return ChangeViewCommand{}, err
	}

	return ChangeViewCommand{
		sessionID: sessionID,
		view:      view,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeViewCommand) Validate() error {
	return c.guard.Validate(ErrChangeViewCommandIsNotConstructed)
}

func (c ChangeViewCommand) SessionID() kernel.UUID {
	return c.sessionID
}

func (c ChangeViewCommand) View() session.View {
	return c.view
}
