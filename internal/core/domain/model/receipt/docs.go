// Package receipt provides the goods receipt aggregate.
//
// Receipts are append-only. A posted line is never removed; cancelling it
// sets a flag, and a receipt whose lines are all cancelled is itself
// CANCELLED. Only active lines count towards the quantity received against
// the purchase order.
package receipt
