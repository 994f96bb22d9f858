// Package queries contains read operations over delivery slots and ordering
// sessions. Queries never modify state and return flat read models.
package queries

import (
	"context"

	"chapatis/internal/core/domain/model/kernel"
	"chapatis/internal/core/domain/model/session"
)

// SessionReader loads sessions for read models. Session repositories used
// outside of a transaction satisfy it.
type SessionReader interface {
	Get(ctx context.Context, id kernel.UUID) (*session.Session, error)
}
