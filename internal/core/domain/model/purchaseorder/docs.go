// Package purchaseorder provides the PurchaseOrder aggregate: a confirmed
// commitment to buy items from a vendor.
//
// The package includes:
//   - PurchaseOrder: header, controlling user and ordered lines
//   - Status: the approval and delivery lifecycle, a static transition table
//   - Fulfillment: the receipt-derived status computed by the quantity
//     reconciler
//
// Lifecycle:
//
//	SAVED -> CONFIRMED -> APPROVED -> SENT -> DELIVERED -> CLOSED
//	  ^          |
//	  |          v
//	  +------ REJECTED
//
// Only the assigned controlling user may change the status; the service
// itself does so when receipts complete a SENT order.
package purchaseorder
