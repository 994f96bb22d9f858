// Package kernel provides the shared value objects of the ordering domain.
//
// The package includes:
//   - UUID: identifier of ordering sessions
//   - Money: non-negative amount in pence
//   - Clock: source of "now", plus calendar-day helpers used by slot generation
//
// Values are immutable and only valid when built through their constructors.
package kernel
