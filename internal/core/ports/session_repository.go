// Package ports defines the contracts between the ordering core and its
// infrastructure: session storage, transactions and order notifications.
package ports

import (
	"context"
	"time"

	"chapatis/internal/core/domain/model/kernel"
	"chapatis/internal/core/domain/model/session"
)

// SessionRepository defines the persistence contract for session aggregates,
// including their order history.
type SessionRepository interface {
	// Add persists a new session. Adding an existing id fails.
	Add(ctx context.Context, s *session.Session) error

	// Update persists changes to an existing session. The write only succeeds
	// when the stored version still equals s.Version(); otherwise an
	// errs.VersionIsInvalidError is returned. Orders already stored are
	// never rewritten.
	Update(ctx context.Context, s *session.Session) error

	// Get loads a session with its history. An unknown id yields an
	// errs.ObjectNotFoundError.
	Get(ctx context.Context, id kernel.UUID) (*session.Session, error)

	// DeleteIdleSince removes sessions last updated before cutoff and returns
	// how many were removed.
	DeleteIdleSince(ctx context.Context, cutoff time.Time) (int, error)
}
