package queries

import (
	"context"

	"chapatis/internal/core/domain/model/slot"
)

// GetDeliverySlotsQueryHandler regenerates the slot list on every call.
type GetDeliverySlotsQueryHandler struct {
	generator slot.Generator
}

func NewGetDeliverySlotsQueryHandler(generator slot.Generator) GetDeliverySlotsQueryHandler {
	return GetDeliverySlotsQueryHandler{generator: generator}
}

func (h GetDeliverySlotsQueryHandler) Handle(
	_ context.Context,
	query GetDeliverySlotsQuery,
) ([]DeliverySlotResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	slots := h.generator.Generate()
	response := make([]DeliverySlotResponse, 0, len(slots))
	for _, s := range slots {
		response = append(response, DeliverySlotResponse{
			Date:              s.Date(),
			DayName:           s.DayName(),
			IsAvailable:       s.IsAvailable(),
			CapacityUsed:      s.CapacityUsed(),
			MaxCapacity:       s.MaxCapacity(),
			RemainingCapacity: s.RemainingCapacity(),
			OccupancyRate:     s.OccupancyRate(),
		})
	}

	return response, nil
}
