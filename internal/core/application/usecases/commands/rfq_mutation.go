package commands

import (
	"context"

	"procurement/internal/core/domain/model/rfq"
)

// mutateRfq runs change on the locked RFQ and persists the result. Nothing
// is written when change fails.
func mutateRfq(ctx context.Context, factory RfqUoWFactory, number string, change func(*rfq.Rfq) error) (*rfq.Rfq, error) {
	uow := factory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.RfqRepository()
	request, err := repo.GetForUpdate(ctx, number)
	if err != nil {
		return nil, err
	}

	if err = change(request); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, request); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}
	return request, nil
}
