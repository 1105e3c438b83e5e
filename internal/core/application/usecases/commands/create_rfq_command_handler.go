package commands

import (
	"context"
	"slices"

	"procurement/internal/core/domain/model/docnumber"
	"procurement/internal/core/domain/model/rfq"
	"procurement/internal/core/ports"
	"procurement/internal/pkg/errs"
)

// CreateRfqCommandHandler allocates an RFQ number, then persists the draft.
type CreateRfqCommandHandler struct {
	allocator  ports.DocNumberAllocator
	uowFactory RfqUoWFactory
}

// NewCreateRfqCommandHandler creates a handler.
func NewCreateRfqCommandHandler(allocator ports.DocNumberAllocator, uowFactory RfqUoWFactory) CreateRfqCommandHandler {
	return CreateRfqCommandHandler{allocator: allocator, uowFactory: uowFactory}
}

// Handle returns the allocated number. A number taken by an allocation that
// never committed is skipped, not reused.
func (h CreateRfqCommandHandler) Handle(ctx context.Context, cmd CreateRfqCommand) (string, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}
	if slices.Contains(cmd.VendorIDs(), "") {
		return "", errs.NewValueIsInvalidError("vendorIDs must not contain empty ids")
	}

	number, err := h.allocator.Allocate(ctx, docnumber.RequestForQuotation, cmd.BusinessDate())
	if err != nil {
		return "", err
	}

	request, err := rfq.NewRfq(number, cmd.Requester(), cmd.Title(), cmd.VendorIDs())
	if err != nil {
		return "", err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return "", err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.RfqRepository().Add(ctx, request); err != nil {
		return "", err
	}

	if err = uow.Commit(ctx); err != nil {
		return "", err
	}

	return request.Number(), nil
}
