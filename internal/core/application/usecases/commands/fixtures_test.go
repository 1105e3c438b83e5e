package commands_test

import (
	"log/slog"
	"testing"
	"time"

	"procurement/internal/core/application/usecases/commands"
	"procurement/internal/core/domain/model/docnumber"
	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/purchaseorder"
	"procurement/internal/core/domain/model/receipt"
	"procurement/internal/core/domain/model/rfq"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	controllerID = kernel.Actor("ctrl-1")
	clerkID      = kernel.Actor("clerk-1")
	requesterID  = kernel.Actor("buyer-1")
	poNo         = "PO202610140007"
)

var businessDate = time.Date(2026, 10, 14, 9, 30, 0, 0, time.UTC)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func number(t *testing.T, docType docnumber.DocType, seq int64) docnumber.Number {
	t.Helper()
	n, err := docnumber.NewNumber(docType, businessDate, seq)
	require.NoError(t, err)
	return n
}

func quantity(t *testing.T, v int64) kernel.Quantity {
	t.Helper()
	q, err := kernel.QuantityFromInt(v)
	require.NoError(t, err)
	return q
}

func lineInput(item string, v int64) commands.LineInput {
	return commands.LineInput{ItemCode: item, Quantity: decimal.NewFromInt(v)}
}

func orderWithStatus(t *testing.T, status purchaseorder.Status, ordered int64) *purchaseorder.PurchaseOrder {
	t.Helper()
	line, err := purchaseorder.NewLine("ITEM-A", quantity(t, ordered))
	require.NoError(t, err)
	o, err := purchaseorder.RestorePurchaseOrder(poNo, controllerID.String(), "V000001", status,
		purchaseorder.NotReceived, []purchaseorder.Line{line})
	require.NoError(t, err)
	return o
}

func postedReceipt(t *testing.T, grNo string, received int64) *receipt.Receipt {
	t.Helper()
	line, err := receipt.NewLine("ITEM-A", quantity(t, received))
	require.NoError(t, err)
	r, err := receipt.RestoreReceipt(grNo, poNo, clerkID.String(), receipt.Active, []receipt.Line{line})
	require.NoError(t, err)
	return r
}

func draftRfq(t *testing.T, vendorIDs ...string) *rfq.Rfq {
	t.Helper()
	r, err := rfq.NewRfq(number(t, docnumber.RequestForQuotation, 1), requesterID, "Steel bolts", vendorIDs)
	require.NoError(t, err)
	return r
}

type receivingMocks struct {
	allocator   *MockAllocator
	orders      *MockPurchaseOrderRepository
	receipts    *MockReceiptRepository
	precheckUoW *MockUoW
	uow         *MockUoW
	factory     *MockReceivingUoWFactory
}

func newReceivingMocks() receivingMocks {
	m := receivingMocks{
		allocator:   new(MockAllocator),
		orders:      new(MockPurchaseOrderRepository),
		receipts:    new(MockReceiptRepository),
		precheckUoW: new(MockUoW),
		uow:         new(MockUoW),
		factory:     new(MockReceivingUoWFactory),
	}
	for _, uow := range []*MockUoW{m.precheckUoW, m.uow} {
		uow.On("PurchaseOrderRepository").Return(m.orders)
		uow.On("ReceiptRepository").Return(m.receipts)
		uow.On("Begin", mock.Anything).Return(nil).Once()
		uow.On("Rollback", mock.Anything).Return(nil).Once()
	}
	return m
}

// expectPrecheck wires the unlocked read done before a GR number is allocated.
func (m receivingMocks) expectPrecheck(order *purchaseorder.PurchaseOrder) {
	m.factory.On("Create").Return(m.precheckUoW).Once()
	m.orders.On("Get", mock.Anything, poNo).Return(order, nil).Once()
}

func postCommand(t *testing.T, lines ...commands.LineInput) commands.PostGoodsReceiptCommand {
	t.Helper()
	cmd, err := commands.NewPostGoodsReceiptCommand(poNo, clerkID, businessDate, lines)
	require.NoError(t, err)
	return cmd
}

const rfqNo = "RFQ202610140001"

// lockedRfq wires one unit of work that returns request from GetForUpdate.
func lockedRfq(request *rfq.Rfq) (*MockUoW, *MockRfqRepository, *MockRfqUoWFactory) {
	repo := new(MockRfqRepository)
	uow := new(MockUoW)
	uow.On("RfqRepository").Return(repo)
	uow.On("Begin", mock.Anything).Return(nil).Once()
	uow.On("Rollback", mock.Anything).Return(nil).Once()
	repo.On("GetForUpdate", mock.Anything, rfqNo).Return(request, nil).Once()
	factory := new(MockRfqUoWFactory)
	factory.On("Create").Return(uow).Once()
	return uow, repo, factory
}

func expectSaved(uow *MockUoW, repo *MockRfqRepository, request *rfq.Rfq) {
	repo.On("Update", mock.Anything, request).Return(nil).Once()
	uow.On("Commit", mock.Anything).Return(nil).Once()
}
