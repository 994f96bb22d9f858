package queries

import (
	"errors"
	"time"

	"chapatis/internal/core/domain/model/kernel"
	"chapatis/internal/pkg/guard"
)

var ErrGetSessionQueryIsNotConstructed = errors.New(
	"GetSessionQuery must be created via NewGetSessionQuery constructor",
)

// GetSessionQuery reads the state a client needs to render the current view.
type GetSessionQuery struct {
	sessionID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetSessionQuery(sessionID kernel.UUID) (GetSessionQuery, error) {
	if err := sessionID.Validate(); err != nil {
		return GetSessionQuery{}, err
	}
	return GetSessionQuery{sessionID: sessionID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetSessionQuery) Validate() error {
	return q.guard.Validate(ErrGetSessionQueryIsNotConstructed)
}

func (q GetSessionQuery) SessionID() kernel.UUID {
	return q.sessionID
}

// CustomerResponse mirrors the customer form.
type CustomerResponse struct {
	Name    string
	Email   string
	Phone   string
	Address string
}

// OrderResponse is the read model of a confirmed order.
type OrderResponse struct {
	ID           string
	DeliveryDate time.Time
	Quantity     int
	Chapatis     int
	TotalPrice   float64
	Customer     CustomerResponse
	PlacedAt     time.Time
}

// GetSessionQueryResponse carries the session state plus the previews shown
// next to the quantity picker.
type GetSessionQueryResponse struct {
	ID           kernel.UUID
	View         string
	SelectedDate *time.Time
	Quantity     int
	MinQuantity  int
	MaxQuantity  int
	CanIncrease  bool
	CanDecrease  bool
	PricePerBox  float64
	TotalPrice   float64
	Chapatis     int
	Customer     CustomerResponse
	Confirmed    *OrderResponse
	OrderCount   int
	UpdatedAt    time.Time
}
