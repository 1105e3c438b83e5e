// Package services provides domain services that work across several
// aggregates.
//
// The package includes:
//   - QuantityReconciler: derives the fulfillment of a purchase order from its
//     goods receipts and cascades completion to the DELIVERED status
//
// Services here are pure: they never load or lock anything. Callers hold the
// purchase order row lock for the whole read, recompute and write cycle.
package services
