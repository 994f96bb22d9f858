// Package slot generates the bookable delivery days shown to customers.
//
// The package includes:
//   - DeliverySlot: an immutable day with its capacity state
//   - Policy: which weekdays are delivered, how far ahead to look, how many
//     slots to offer and the daily capacity in boxes
//   - Generator: builds the slot list for "today"
//
// Occupancy is not stored anywhere. It is derived from a sine-seeded
// pseudo-random value keyed by the day's timestamp, so every call made on the
// same calendar day sees the same numbers.
package slot
