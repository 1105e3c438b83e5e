package commands_test

import (
	"testing"

	"procurement/internal/core/application/usecases/commands"
	"procurement/internal/core/domain/model/docnumber"
	"procurement/internal/core/domain/model/purchaseorder"
	"procurement/internal/core/domain/model/receipt"
	"procurement/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPostGoodsReceiptCommandHandler_Handle_CompletesAndDelivers(t *testing.T) {
	ctx := t.Context()
	m := newReceivingMocks()
	m.expectPrecheck(orderWithStatus(t, purchaseorder.Sent, 30))

	locked := orderWithStatus(t, purchaseorder.Sent, 30)
	existing := []*receipt.Receipt{postedReceipt(t, "GR202610140001", 10), postedReceipt(t, "GR202610140002", 10)}
	m.allocator.On("Allocate", ctx, docnumber.GoodsReceipt, businessDate).
		Return(number(t, docnumber.GoodsReceipt, 3), nil).Once()
	mock.InOrder(
		m.factory.On("Create").Return(m.uow).Once(),
		m.orders.On("GetForUpdate", ctx, poNo).Return(locked, nil).Once(),
		m.receipts.On("GetAllByPurchaseOrder", ctx, poNo).Return(existing, nil).Once(),
		m.orders.On("Update", ctx, locked).Return(nil).Once(),
		m.receipts.On("Add", ctx, mock.AnythingOfType("*receipt.Receipt")).Return(nil).Once(),
		m.uow.On("Commit", ctx).Return(nil).Once(),
	)

	h := commands.NewPostGoodsReceiptCommandHandler(m.allocator, m.factory, discardLogger())
	outcome, err := h.Handle(ctx, postCommand(t, lineInput("ITEM-A", 10)))

	require.NoError(t, err)
	assert.Equal(t, "GR202610140003", outcome.ReceiptNo)
	assert.Equal(t, purchaseorder.Completed, outcome.Fulfillment)
	assert.Equal(t, purchaseorder.Delivered, outcome.Status)
	line, _ := locked.Line("ITEM-A")
	assert.True(t, line.Received().Equal(quantity(t, 30)))
	m.allocator.AssertExpectations(t)
	m.orders.AssertExpectations(t)
	m.receipts.AssertExpectations(t)
	m.uow.AssertExpectations(t)
	m.precheckUoW.AssertCalled(t, "Rollback", mock.Anything)
}

func TestPostGoodsReceiptCommandHandler_Handle_Partial(t *testing.T) {
	ctx := t.Context()
	m := newReceivingMocks()
	m.expectPrecheck(orderWithStatus(t, purchaseorder.Sent, 30))

	locked := orderWithStatus(t, purchaseorder.Sent, 30)
	m.allocator.On("Allocate", ctx, docnumber.GoodsReceipt, businessDate).
		Return(number(t, docnumber.GoodsReceipt, 1), nil).Once()
	m.factory.On("Create").Return(m.uow).Once()
	m.orders.On("GetForUpdate", ctx, poNo).Return(locked, nil).Once()
	m.receipts.On("GetAllByPurchaseOrder", ctx, poNo).Return([]*receipt.Receipt{}, nil).Once()
	m.orders.On("Update", ctx, locked).Return(nil).Once()
	m.receipts.On("Add", ctx, mock.Anything).Return(nil).Once()
	m.uow.On("Commit", ctx).Return(nil).Once()

	h := commands.NewPostGoodsReceiptCommandHandler(m.allocator, m.factory, discardLogger())
	outcome, err := h.Handle(ctx, postCommand(t, lineInput("ITEM-A", 4), lineInput("ITEM-A", 6)))

	require.NoError(t, err)
	assert.Equal(t, purchaseorder.Partial, outcome.Fulfillment)
	assert.Equal(t, purchaseorder.Sent, outcome.Status)
	line, _ := locked.Line("ITEM-A")
	assert.True(t, line.Received().Equal(quantity(t, 10)))
}

func TestPostGoodsReceiptCommandHandler_Handle_RejectedBeforeAllocation(t *testing.T) {
	t.Run("order not sent", func(t *testing.T) {
		m := newReceivingMocks()
		m.expectPrecheck(orderWithStatus(t, purchaseorder.Approved, 30))

		h := commands.NewPostGoodsReceiptCommandHandler(m.allocator, m.factory, discardLogger())
		_, err := h.Handle(t.Context(), postCommand(t, lineInput("ITEM-A", 10)))

		require.ErrorIs(t, err, errs.ErrIllegalTransition)
		assert.Contains(t, err.Error(), "APPROVED -> receive")
		m.allocator.AssertNotCalled(t, "Allocate", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("item not ordered", func(t *testing.T) {
		m := newReceivingMocks()
		m.expectPrecheck(orderWithStatus(t, purchaseorder.Sent, 30))

		h := commands.NewPostGoodsReceiptCommandHandler(m.allocator, m.factory, discardLogger())
		_, err := h.Handle(t.Context(), postCommand(t, lineInput("ITEM-Z", 1)))

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		m.allocator.AssertNotCalled(t, "Allocate", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unknown order", func(t *testing.T) {
		m := newReceivingMocks()
		m.factory.On("Create").Return(m.precheckUoW).Once()
		m.orders.On("Get", mock.Anything, poNo).Return(nil, errs.NewObjectNotFoundError("purchaseOrderNo", poNo)).Once()

		h := commands.NewPostGoodsReceiptCommandHandler(m.allocator, m.factory, discardLogger())
		_, err := h.Handle(t.Context(), postCommand(t, lineInput("ITEM-A", 1)))

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestPostGoodsReceiptCommandHandler_Handle_LockTimeout(t *testing.T) {
	ctx := t.Context()
	m := newReceivingMocks()
	m.expectPrecheck(orderWithStatus(t, purchaseorder.Sent, 30))
	m.allocator.On("Allocate", ctx, docnumber.GoodsReceipt, businessDate).
		Return(number(t, docnumber.GoodsReceipt, 4), nil).Once()
	m.factory.On("Create").Return(m.uow).Once()
	m.orders.On("GetForUpdate", ctx, poNo).
		Return(nil, errs.NewTransientContentionError("purchase order "+poNo)).Once()

	h := commands.NewPostGoodsReceiptCommandHandler(m.allocator, m.factory, discardLogger())
	_, err := h.Handle(ctx, postCommand(t, lineInput("ITEM-A", 10)))

	require.ErrorIs(t, err, errs.ErrTransientContention)
	m.receipts.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	m.uow.AssertNotCalled(t, "Commit", mock.Anything)
	m.uow.AssertCalled(t, "Rollback", mock.Anything)
}

func TestPostGoodsReceiptCommandHandler_Handle_ConsistencyViolation(t *testing.T) {
	ctx := t.Context()
	m := newReceivingMocks()
	m.expectPrecheck(orderWithStatus(t, purchaseorder.Sent, 30))

	broken, err := receipt.RestoreReceipt("GR202610140001", poNo, clerkID.String(), receipt.Active, nil)
	require.NoError(t, err)
	m.allocator.On("Allocate", ctx, docnumber.GoodsReceipt, businessDate).
		Return(number(t, docnumber.GoodsReceipt, 2), nil).Once()
	m.factory.On("Create").Return(m.uow).Once()
	m.orders.On("GetForUpdate", ctx, poNo).Return(orderWithStatus(t, purchaseorder.Sent, 30), nil).Once()
	m.receipts.On("GetAllByPurchaseOrder", ctx, poNo).Return([]*receipt.Receipt{broken}, nil).Once()

	h := commands.NewPostGoodsReceiptCommandHandler(m.allocator, m.factory, discardLogger())
	_, err = h.Handle(ctx, postCommand(t, lineInput("ITEM-A", 10)))

	require.ErrorIs(t, err, errs.ErrConsistencyViolation)
	m.orders.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	m.receipts.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}
