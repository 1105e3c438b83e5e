// Package kernel provides the shared primitives of the procurement domain.
//
// The package includes:
//   - UUID: identifier value object for receipts, receipt lines and sessions
//   - Quantity: a non-negative decimal quantity of goods
//   - Actor: the user (or the system itself) performing an operation
//
// All primitives are immutable values; their zero values are invalid and
// fail Validate.
package kernel
