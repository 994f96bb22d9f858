package services

import (
	"errors"
	"fmt"
	"time"

	"chapatis/internal/core/domain/model/kernel"
	"chapatis/internal/core/domain/model/session"
	"chapatis/internal/core/domain/model/slot"
)

// ErrSlotNotOffered is returned when the requested day is not among the
// delivery slots currently offered.
var ErrSlotNotOffered = errors.New("delivery date is not offered")

// SlotPicker resolves a requested calendar day to one of the generated
// delivery slots. Slots are regenerated on every request, so a client can
// only ever select a day that is still inside the offered window.
//
// Example usage:
//
//	picker := services.NewSlotPicker()
//	picked, err := picker.Select(sess, generator.Generate(), requestedDate, now)
//	if errors.Is(err, services.ErrSlotNotOffered) {
//	    // the day is not a delivery day or is beyond the window
//	}
type SlotPicker struct{}

func NewSlotPicker() SlotPicker {
	return SlotPicker{}
}

// Pick returns the slot falling on the same calendar day as date. The
// comparison happens in the slot's time zone, so a client may send either
// a plain date or a full timestamp.
func (SlotPicker) Pick(slots []slot.DeliverySlot, date time.Time) (slot.DeliverySlot, error) {
	if date.IsZero() {
		return slot.DeliverySlot{}, fmt.Errorf("%w: date is empty", ErrSlotNotOffered)
	}

	for _, s := range slots {
		if s.Validate() != nil {
			continue
		}
		if kernel.SameDay(s.Date(), date) {
			return s, nil
		}
	}

	return slot.DeliverySlot{}, fmt.Errorf("%w: %s", ErrSlotNotOffered, date.Format(time.DateOnly))
}

// Select picks the slot for date and selects it on the session. A fully
// booked slot is reported as slot.ErrSlotFullyBooked.
func (p SlotPicker) Select(
	s *session.Session,
	slots []slot.DeliverySlot,
	date time.Time,
	now time.Time,
) (slot.DeliverySlot, error) {
	if err := s.Validate(); err != nil {
		return slot.DeliverySlot{}, err
	}

	picked, err := p.Pick(slots, date)
	if err != nil {
		return slot.DeliverySlot{}, err
	}

	if err = s.SelectDeliveryDate(picked, now); err != nil {
		return slot.DeliverySlot{}, err
	}

	return picked, nil
}
