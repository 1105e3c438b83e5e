package commands

import (
	"context"

	"procurement/internal/core/domain/model/rfq"
)

// TransitionRfqCommandHandler moves a sent request for quotation forward:
// OPENED when responses are reviewed, SELECTED with the chosen vendor, or
// CLOSED. Only the requester may transition; the request row is locked for
// the whole change.
//
// Example:
//
//	handler := NewTransitionRfqCommandHandler(uowFactory)
//	cmd, _ := NewTransitionRfqCommand("RFQ202610140001", requester, rfq.Selected, "V2")
//	status, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrIllegalTransition) {
//	    // the request was not OPENED
//	}
type TransitionRfqCommandHandler struct {
	uowFactory RfqUoWFactory
}

// NewTransitionRfqCommandHandler creates a handler that runs each
// transition in its own unit of work.
func NewTransitionRfqCommandHandler(uowFactory RfqUoWFactory) TransitionRfqCommandHandler {
	return TransitionRfqCommandHandler{uowFactory: uowFactory}
}

// Handle applies the transition and returns the resulting status.
// Returns rfq.Unknown together with any error.
func (h TransitionRfqCommandHandler) Handle(ctx context.Context, cmd TransitionRfqCommand) (rfq.Status, error) {
	if err := cmd.Validate(); err != nil {
		return rfq.Unknown, err
	}

	request, err := mutateRfq(ctx, h.uowFactory, cmd.Number(), func(r *rfq.Rfq) error {
		switch cmd.Next() {
		case rfq.Closed:
			return r.Close(cmd.Actor())
		case rfq.Opened:
			return r.Open(cmd.Actor())
		default:
			return r.Select(cmd.Actor(), cmd.VendorID())
		}
	})
	if err != nil {
		return rfq.Unknown, err
	}
	return request.Status(), nil
}
