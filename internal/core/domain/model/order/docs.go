// Package order provides the Order aggregate and the values it is built from.
//
// The package includes:
//   - Order: an immutable confirmed order with its customer snapshot
//   - ID: "ORD-<unix millis>" identifiers derived from the placement time
//   - Quantity: a box count that is always clamped to the catalog limits
//   - Customer: free-form contact details, checked only for presence
//   - Catalog: box limits, price per box and chapatis per box
//
// Key business rules:
//   - totalPrice = quantity * price per box, fixed at placement
//   - quantity adjustments never fail; they clamp to [min, max]
//   - an order is never mutated once created
package order
