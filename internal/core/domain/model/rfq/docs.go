// Package rfq provides the request for quotation aggregate.
//
// An RFQ carries two state machines: the header lifecycle owned by the
// requester
//
//	DRAFT -> SENT -> CLOSED -> OPENED -> SELECTED
//
// and one sub-state per invited vendor, driven by the vendor account
//
//	DRAFT | SENT -> ACCEPTED -> QUOTE_DRAFT -> QUOTE_SUBMITTED
//	DRAFT | SENT -> DECLINED
//
// Vendors move from DRAFT to SENT when the header is sent. Responses are
// taken only while the header is SENT, and only a vendor whose quote was
// submitted can be selected.
package rfq
