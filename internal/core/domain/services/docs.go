// Package services provides domain services that work across the slot and
// session aggregates of the ordering system.
//
// The package includes:
//   - SlotPicker: matches a requested delivery date against the slots offered
//     today and books it on a session
package services
