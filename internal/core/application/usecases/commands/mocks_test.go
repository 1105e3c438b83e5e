package commands_test

import (
	"context"
	"time"

	"procurement/internal/core/application/usecases/commands"
	"procurement/internal/core/domain/model/docnumber"
	"procurement/internal/core/domain/model/purchaseorder"
	"procurement/internal/core/domain/model/receipt"
	"procurement/internal/core/domain/model/rfq"
	"procurement/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockPurchaseOrderRepository struct{ mock.Mock }

func (m *MockPurchaseOrderRepository) Add(ctx context.Context, o *purchaseorder.PurchaseOrder) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockPurchaseOrderRepository) Update(ctx context.Context, o *purchaseorder.PurchaseOrder) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockPurchaseOrderRepository) Get(ctx context.Context, number string) (*purchaseorder.PurchaseOrder, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*purchaseorder.PurchaseOrder), args.Error(1)
}

func (m *MockPurchaseOrderRepository) GetForUpdate(ctx context.Context, number string) (*purchaseorder.PurchaseOrder, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*purchaseorder.PurchaseOrder), args.Error(1)
}

type MockReceiptRepository struct{ mock.Mock }

func (m *MockReceiptRepository) Add(ctx context.Context, r *receipt.Receipt) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockReceiptRepository) Update(ctx context.Context, r *receipt.Receipt) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockReceiptRepository) Get(ctx context.Context, number string) (*receipt.Receipt, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*receipt.Receipt), args.Error(1)
}

func (m *MockReceiptRepository) GetAllByPurchaseOrder(ctx context.Context, poNo string) ([]*receipt.Receipt, error) {
	args := m.Called(ctx, poNo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*receipt.Receipt), args.Error(1)
}

type MockRfqRepository struct{ mock.Mock }

func (m *MockRfqRepository) Add(ctx context.Context, r *rfq.Rfq) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRfqRepository) Update(ctx context.Context, r *rfq.Rfq) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRfqRepository) Get(ctx context.Context, number string) (*rfq.Rfq, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*rfq.Rfq), args.Error(1)
}

func (m *MockRfqRepository) GetForUpdate(ctx context.Context, number string) (*rfq.Rfq, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*rfq.Rfq), args.Error(1)
}

// MockUoW satisfies every unit of work flavour used by the handlers.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) PurchaseOrderRepository() ports.PurchaseOrderRepository {
	args := m.Called()
	return args.Get(0).(ports.PurchaseOrderRepository)
}

func (m *MockUoW) ReceiptRepository() ports.ReceiptRepository {
	args := m.Called()
	return args.Get(0).(ports.ReceiptRepository)
}

func (m *MockUoW) RfqRepository() ports.RfqRepository {
	args := m.Called()
	return args.Get(0).(ports.RfqRepository)
}

type MockPurchaseOrderUoWFactory struct{ mock.Mock }

func (m *MockPurchaseOrderUoWFactory) Create() commands.PurchaseOrderUoW {
	args := m.Called()
	return args.Get(0).(commands.PurchaseOrderUoW)
}

type MockReceivingUoWFactory struct{ mock.Mock }

func (m *MockReceivingUoWFactory) Create() commands.ReceivingUoW {
	args := m.Called()
	return args.Get(0).(commands.ReceivingUoW)
}

type MockRfqUoWFactory struct{ mock.Mock }

func (m *MockRfqUoWFactory) Create() commands.RfqUoW {
	args := m.Called()
	return args.Get(0).(commands.RfqUoW)
}

type MockAllocator struct{ mock.Mock }

func (m *MockAllocator) Allocate(ctx context.Context, docType docnumber.DocType, businessDate time.Time) (docnumber.Number, error) {
	args := m.Called(ctx, docType, businessDate)
	return args.Get(0).(docnumber.Number), args.Error(1)
}

type MockSessionRegistry struct{ mock.Mock }

func (m *MockSessionRegistry) RegisterLogin(ctx context.Context, userID, sessionID string) error {
	args := m.Called(ctx, userID, sessionID)
	return args.Error(0)
}

func (m *MockSessionRegistry) RemoveLogoutTarget(ctx context.Context, sessionID string) (bool, error) {
	args := m.Called(ctx, sessionID)
	return args.Bool(0), args.Error(1)
}

func (m *MockSessionRegistry) UnregisterBySessionID(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

func (m *MockSessionRegistry) SessionOf(ctx context.Context, userID string) (string, bool, error) {
	args := m.Called(ctx, userID)
	return args.String(0), args.Bool(1), args.Error(2)
}

func (m *MockSessionRegistry) UserOf(ctx context.Context, sessionID string) (string, bool, error) {
	args := m.Called(ctx, sessionID)
	return args.String(0), args.Bool(1), args.Error(2)
}

type MockSessionActivity struct{ mock.Mock }

func (m *MockSessionActivity) Touch(sessionID string) {
	m.Called(sessionID)
}

func (m *MockSessionActivity) Forget(sessionID string) {
	m.Called(sessionID)
}

type MockCredentialVerifier struct{ mock.Mock }

func (m *MockCredentialVerifier) Verify(ctx context.Context, userID, password string) error {
	args := m.Called(ctx, userID, password)
	return args.Error(0)
}
