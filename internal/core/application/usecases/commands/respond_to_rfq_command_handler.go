package commands

import (
	"context"

	"procurement/internal/core/domain/model/rfq"
)

// RespondToRfqCommandHandler records a vendor response on a sent request
// under its row lock.
type RespondToRfqCommandHandler struct {
	uowFactory RfqUoWFactory
}

// NewRespondToRfqCommandHandler creates a handler.
func NewRespondToRfqCommandHandler(uowFactory RfqUoWFactory) RespondToRfqCommandHandler {
	return RespondToRfqCommandHandler{uowFactory: uowFactory}
}

// Handle returns the vendor sub-state after the response.
func (h RespondToRfqCommandHandler) Handle(ctx context.Context, cmd RespondToRfqCommand) (rfq.VendorStatus, error) {
	if err := cmd.Validate(); err != nil {
		return rfq.VendorUnknown, err
	}

	request, err := mutateRfq(ctx, h.uowFactory, cmd.Number(), func(r *rfq.Rfq) error {
		return r.Respond(cmd.Actor(), cmd.VendorID(), cmd.Next())
	})
	if err != nil {
		return rfq.VendorUnknown, err
	}

	vendor, _ := request.Vendor(cmd.VendorID())
	return vendor.Status(), nil
}
