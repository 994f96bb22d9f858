package queries

import (
	"errors"

	"chapatis/internal/core/domain/model/kernel"
	"chapatis/internal/pkg/guard"
)

var ErrGetOrderHistoryQueryIsNotConstructed = errors.New(
	"GetOrderHistoryQuery must be created via NewGetOrderHistoryQuery constructor",
)

// GetOrderHistoryQuery lists the orders of a session, most recent first.
type GetOrderHistoryQuery struct {
	sessionID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetOrderHistoryQuery(sessionID kernel.UUID) (GetOrderHistoryQuery, error) {
	if err := sessionID.Validate(); err != nil {
		return GetOrderHistoryQuery{}, err
	}
	return GetOrderHistoryQuery{sessionID: sessionID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderHistoryQueryIsNotConstructed)
}

func (q GetOrderHistoryQuery) SessionID() kernel.UUID {
	return q.sessionID
}
