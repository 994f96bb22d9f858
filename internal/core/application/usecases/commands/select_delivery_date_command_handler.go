package commands

import (
	"context"

	"chapatis/internal/core/domain/model/kernel"
	"chapatis/internal/core/domain/model/session"
	"chapatis/internal/core/domain/model/slot"
	"chapatis/internal/core/domain/services"
)

// SelectDeliveryDateCommandHandler regenerates today's delivery slots and
// selects the requested one. Days outside the offered slots fail with
// services.ErrSlotNotOffered, fully booked days with slot.ErrSlotFullyBooked.
type SelectDeliveryDateCommandHandler struct {
	uowFactory UoWFactory
	generator  slot.Generator
	picker     services.SlotPicker
	clock      kernel.Clock
}

func NewSelectDeliveryDateCommandHandler(
	uowFactory UoWFactory,
	generator slot.Generator,
	clock kernel.Clock,
) SelectDeliveryDateCommandHandler {
	return SelectDeliveryDateCommandHandler{
		uowFactory: uowFactory,
		generator:  generator,
		picker:     services.NewSlotPicker(),
		clock:      clock,
	}
}

func (h *SelectDeliveryDateCommandHandler) Handle(ctx context.Context, cmd SelectDeliveryDateCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	slots := h.generator.Generate()
	if _, err := h.picker.Pick(slots, cmd.Date()); err != nil {
		return err
	}

	return updateSession(ctx, h.uowFactory, cmd.SessionID(), func(s *session.Session) error {
		_, err := h.picker.Select(s, slots, cmd.Date(), h.clock.Now())
		return err
	})
}
