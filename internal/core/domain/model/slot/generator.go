package slot

import (
	"time"

	"chapatis/internal/core/domain/model/kernel"
)

// Generator produces the delivery slots offered today.
//
//	gen := slot.NewGenerator(policy, kernel.SystemClock{})
//	for _, s := range gen.Generate() {
//	    fmt.Println(s.DayName(), s.IsAvailable())
//	}
type Generator struct {
	policy Policy
	clock  kernel.Clock
}

func NewGenerator(policy Policy, clock kernel.Clock) Generator {
	return Generator{policy: policy, clock: clock}
}

// Policy returns the rules the generator applies.
func (g Generator) Policy() Policy {
	return g.policy
}

// Generate scans LookaheadDays calendar days starting today (inclusive) and
// returns the first MaxSlots delivery days in date order. Later qualifying
// days are discarded.
func (g Generator) Generate() []DeliverySlot {
	loc := g.policy.Location()
	today := kernel.StartOfDay(g.clock.Now(), loc)

	slots := make([]DeliverySlot, 0, g.policy.MaxSlots())
	for i := 0; i < g.policy.LookaheadDays() && len(slots) < g.policy.MaxSlots(); i++ {
		day := time.Date(today.Year(), today.Month(), today.Day()+i, 0, 0, 0, 0, loc)
		if !g.policy.IsDeliveryDay(day.Weekday()) {
			continue
		}

		capacity := g.policy.DailyCapacity()
		s, err := NewDeliverySlot(day, occupancy(day, capacity), capacity)
		if err != nil {
			// occupancy is clamped to [0, capacity] and day is never zero.
			continue
		}
		slots = append(slots, s)
	}

	return slots
}
