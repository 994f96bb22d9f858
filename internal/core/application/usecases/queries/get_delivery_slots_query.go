package queries

import (
	"errors"
	"time"

	"chapatis/internal/pkg/guard"
)

var ErrGetDeliverySlotsQueryIsNotConstructed = errors.New(
	"GetDeliverySlotsQuery must be created via NewGetDeliverySlotsQuery constructor",
)

// GetDeliverySlotsQuery lists the delivery days offered today.
//
// Example:
//
//	slots, err := handler.Handle(ctx, NewGetDeliverySlotsQuery())
//	for _, s := range slots {
//	    fmt.Printf("%s %s available=%v\n", s.DayName, s.Date.Format(time.DateOnly), s.IsAvailable)
//	}
type GetDeliverySlotsQuery struct {
	guard guard.ConstructorGuard
}

func NewGetDeliverySlotsQuery() GetDeliverySlotsQuery {
	return GetDeliverySlotsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetDeliverySlotsQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliverySlotsQueryIsNotConstructed)
}

// DeliverySlotResponse is the read model of one bookable day.
type DeliverySlotResponse struct {
	Date              time.Time
	DayName           string
	IsAvailable       bool
	CapacityUsed      int
	MaxCapacity       int
	RemainingCapacity int
	OccupancyRate     float64
}
