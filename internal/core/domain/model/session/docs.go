// Package session contains the ordering session aggregate: the state machine
// a customer walks through while placing orders.
//
// A session starts in the Ordering view with the minimum quantity selected.
// The allowed transitions are:
//
//	Ordering ──submit──> Confirmation ──new order──> Ordering
//	   │  ▲
//	   ▼  │
//	  History
//
// Navigating to the current view is a no-op. Submitting requires a delivery
// date and a complete customer; a failed submit leaves the session untouched.
// Confirmed orders are prepended to the session history, so History()[0] is
// always the most recent one.
package session
