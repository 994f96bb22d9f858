package commands

import (
	"errors"
	"time"

	"chapatis/internal/pkg/errs"
	"chapatis/internal/pkg/guard"
)

var ErrPurgeExpiredSessionsCommandIsNotConstructed = errors.New(
	"PurgeExpiredSessionsCommand must be created via NewPurgeExpiredSessionsCommand constructor",
)

// PurgeExpiredSessionsCommand removes sessions idle for longer than ttl,
// together with their order history.
type PurgeExpiredSessionsCommand struct { //nolint:recvcheck //using for validation
	ttl time.Duration

	guard guard.ConstructorGuard
}

func NewPurgeExpiredSessionsCommand(ttl time.Duration) (PurgeExpiredSessionsCommand, error) {
	if ttl <= 0 {
		return PurgeExpiredSessionsCommand{}, errs.NewValueIsOutOfRangeError("ttl", ttl, "1ns", "unbounded")
	}

	return PurgeExpiredSessionsCommand{ttl: ttl, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the command was created through the constructor.
func (c PurgeExpiredSessionsCommand) Validate() error {
	return c.guard.Validate(ErrPurgeExpiredSessionsCommandIsNotConstructed)
}

func (c PurgeExpiredSessionsCommand) TTL() time.Duration {
	return c.ttl
}
