package commands

import (
	"context"

	"procurement/internal/core/domain/model/rfq"
)

// UpdateRfqVendorsCommandHandler edits the vendor list of a draft under its
// row lock. Only the requester may edit.
type UpdateRfqVendorsCommandHandler struct {
	uowFactory RfqUoWFactory
}

// NewUpdateRfqVendorsCommandHandler creates a handler.
func NewUpdateRfqVendorsCommandHandler(uowFactory RfqUoWFactory) UpdateRfqVendorsCommandHandler {
	return UpdateRfqVendorsCommandHandler{uowFactory: uowFactory}
}

// Handle returns the vendor list now persisted, which the caller should send
// back with SendRfqCommand.
func (h UpdateRfqVendorsCommandHandler) Handle(ctx context.Context, cmd UpdateRfqVendorsCommand) ([]string, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	request, err := mutateRfq(ctx, h.uowFactory, cmd.Number(), func(r *rfq.Rfq) error {
		return r.ReplaceVendors(cmd.Actor(), cmd.VendorIDs())
	})
	if err != nil {
		return nil, err
	}
	return request.VendorIDs(), nil
}
