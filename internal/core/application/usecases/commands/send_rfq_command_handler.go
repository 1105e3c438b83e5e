package commands

import (
	"context"

	"procurement/internal/core/domain/model/rfq"
)

// SendRfqCommandHandler sends a request under its row lock. A vendor list
// that no longer matches fails with StaleStateError and nothing changes.
type SendRfqCommandHandler struct {
	uowFactory RfqUoWFactory
}

// NewSendRfqCommandHandler creates a handler.
func NewSendRfqCommandHandler(uowFactory RfqUoWFactory) SendRfqCommandHandler {
	return SendRfqCommandHandler{uowFactory: uowFactory}
}

// Handle returns the status after sending, which is SENT on success.
func (h SendRfqCommandHandler) Handle(ctx context.Context, cmd SendRfqCommand) (rfq.Status, error) {
	if err := cmd.Validate(); err != nil {
		return rfq.Unknown, err
	}

	request, err := mutateRfq(ctx, h.uowFactory, cmd.Number(), func(r *rfq.Rfq) error {
		return r.Send(cmd.Actor(), cmd.VendorIDs())
	})
	if err != nil {
		return rfq.Unknown, err
	}
	return request.Status(), nil
}
