// Package docnumber defines the document numbering rules shared by every
// document type of the procurement service.
//
// A document number is made of a type prefix, an optional date segment and a
// zero-padded sequence number, e.g. PO202610140007. Sequences are counted
// per (document type, key date). The key date comes from the type's reset
// policy:
//
//   - Daily: the business date itself, so numbering restarts every day
//   - Yearly: January 1st of the business date's year
//   - None: a fixed sentinel date, so the sequence never restarts
//
// The package is pure: the counter itself lives behind
// ports.DocNumberAllocator.
package docnumber
