package purchaseorder_test

import (
	"fmt"
	"testing"
	"time"

	"procurement/internal/core/domain/model/docnumber"
	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/purchaseorder"
	"procurement/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const controller = kernel.Actor("ctrl-1")

func qty(t *testing.T, v int64) kernel.Quantity {
	t.Helper()
	q, err := kernel.QuantityFromInt(v)
	require.NoError(t, err)
	return q
}

func poNumber(t *testing.T) docnumber.Number {
	t.Helper()
	n, err := docnumber.NewNumber(docnumber.PurchaseOrder, time.Date(2026, 10, 14, 0, 0, 0, 0, time.UTC), 7)
	require.NoError(t, err)
	return n
}

func newLine(t *testing.T, item string, ordered int64) purchaseorder.Line {
	t.Helper()
	l, err := purchaseorder.NewLine(item, qty(t, ordered))
	require.NoError(t, err)
	return l
}

func newOrder(t *testing.T) *purchaseorder.PurchaseOrder {
	t.Helper()
	o, err := purchaseorder.NewPurchaseOrder(poNumber(t), controller.String(), "V000001",
		[]purchaseorder.Line{newLine(t, "ITEM-A", 30), newLine(t, "ITEM-B", 5)})
	require.NoError(t, err)
	return o
}

func restoreOrder(t *testing.T, status purchaseorder.Status) *purchaseorder.PurchaseOrder {
	t.Helper()
	o, err := purchaseorder.RestorePurchaseOrder("PO202610140007", controller.String(), "V000001",
		status, purchaseorder.NotReceived, []purchaseorder.Line{newLine(t, "ITEM-A", 30)})
	require.NoError(t, err)
	return o
}

func TestNewLine(t *testing.T) {
	t.Run("should fail without item code", func(t *testing.T) {
		_, err := purchaseorder.NewLine("", qty(t, 1))
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail with zero ordered quantity", func(t *testing.T) {
		_, err := purchaseorder.NewLine("ITEM-A", kernel.ZeroQuantity())
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should fail with unconstructed quantity", func(t *testing.T) {
		_, err := purchaseorder.NewLine("ITEM-A", kernel.Quantity{})
		require.Error(t, err)
	})
}

func TestNewPurchaseOrder(t *testing.T) {
	t.Run("should create a saved order with nothing received", func(t *testing.T) {
		o := newOrder(t)

		require.NoError(t, o.Validate())
		assert.Equal(t, "PO202610140007", o.Number())
		assert.Equal(t, "ctrl-1", o.ControllerID())
		assert.Equal(t, "V000001", o.VendorID())
		assert.Equal(t, purchaseorder.Saved, o.Status())
		assert.Equal(t, purchaseorder.NotReceived, o.Fulfillment())
		require.Len(t, o.Lines(), 2)
		for _, l := range o.Lines() {
			assert.True(t, l.Received().IsZero())
		}
	})

	t.Run("should reject a number of another document type", func(t *testing.T) {
		n, err := docnumber.NewNumber(docnumber.GoodsReceipt, time.Date(2026, 10, 14, 0, 0, 0, 0, time.UTC), 1)
		require.NoError(t, err)

		_, err = purchaseorder.NewPurchaseOrder(n, "ctrl-1", "V1", []purchaseorder.Line{newLine(t, "ITEM-A", 1)})

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should require lines", func(t *testing.T) {
		_, err := purchaseorder.NewPurchaseOrder(poNumber(t), "ctrl-1", "V1", nil)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject duplicate items", func(t *testing.T) {
		_, err := purchaseorder.NewPurchaseOrder(poNumber(t), "ctrl-1", "V1",
			[]purchaseorder.Line{newLine(t, "ITEM-A", 1), newLine(t, "ITEM-A", 2)})
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should require controller and vendor", func(t *testing.T) {
		_, err := purchaseorder.NewPurchaseOrder(poNumber(t), "", "V1", []purchaseorder.Line{newLine(t, "ITEM-A", 1)})
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = purchaseorder.NewPurchaseOrder(poNumber(t), "ctrl-1", "", []purchaseorder.Line{newLine(t, "ITEM-A", 1)})
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should copy the line slice", func(t *testing.T) {
		lines := []purchaseorder.Line{newLine(t, "ITEM-A", 1)}
		o, err := purchaseorder.NewPurchaseOrder(poNumber(t), "ctrl-1", "V1", lines)
		require.NoError(t, err)

		lines[0] = newLine(t, "ITEM-Z", 9)

		_, ok := o.Line("ITEM-A")
		assert.True(t, ok)
	})
}

func TestRestorePurchaseOrder(t *testing.T) {
	t.Run("should accept an order without lines", func(t *testing.T) {
		o, err := purchaseorder.RestorePurchaseOrder("PO1", "ctrl-1", "V1", purchaseorder.Sent, purchaseorder.NotReceived, nil)
		require.NoError(t, err)
		assert.Empty(t, o.Lines())
	})

	t.Run("should reject an unknown status", func(t *testing.T) {
		_, err := purchaseorder.RestorePurchaseOrder("PO1", "ctrl-1", "V1", purchaseorder.Unknown, purchaseorder.NotReceived, nil)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject an unknown fulfillment", func(t *testing.T) {
		_, err := purchaseorder.RestorePurchaseOrder("PO1", "ctrl-1", "V1", purchaseorder.Sent, purchaseorder.FulfillmentUnknown, nil)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestPurchaseOrder_Validate(t *testing.T) {
	var o *purchaseorder.PurchaseOrder
	require.ErrorIs(t, o.Validate(), purchaseorder.ErrPurchaseOrderIsNotConstructed)
	require.ErrorIs(t, (&purchaseorder.PurchaseOrder{}).Validate(), purchaseorder.ErrPurchaseOrderIsNotConstructed)
}

func TestPurchaseOrder_Transition(t *testing.T) {
	t.Run("should walk the happy path", func(t *testing.T) {
		o := newOrder(t)

		for _, next := range []purchaseorder.Status{
			purchaseorder.Confirmed,
			purchaseorder.Approved,
			purchaseorder.Sent,
			purchaseorder.Delivered,
			purchaseorder.Closed,
		} {
			require.NoError(t, o.Transition(next, controller))
			assert.Equal(t, next, o.Status())
		}
	})

	t.Run("should allow rework after rejection", func(t *testing.T) {
		o := restoreOrder(t, purchaseorder.Confirmed)

		require.NoError(t, o.Transition(purchaseorder.Rejected, controller))
		require.NoError(t, o.Transition(purchaseorder.Saved, controller))
		assert.Equal(t, purchaseorder.Saved, o.Status())
	})

	t.Run("should leave the status unchanged on illegal transitions", func(t *testing.T) {
		for _, from := range allStatuses {
			for _, to := range allStatuses {
				if purchaseorder.Transitions.CanTransition(from, to) {
					continue
				}
				t.Run(fmt.Sprintf("%s to %s", from, to), func(t *testing.T) {
					o := restoreOrder(t, from)

					err := o.Transition(to, controller)

					require.ErrorIs(t, err, errs.ErrIllegalTransition)
					assert.Equal(t, from, o.Status())
				})
			}
		}
	})

	t.Run("should refuse anyone but the controller", func(t *testing.T) {
		o := newOrder(t)

		err := o.Transition(purchaseorder.Confirmed, kernel.Actor("intruder"))

		require.ErrorIs(t, err, errs.ErrNotOwner)
		assert.Equal(t, purchaseorder.Saved, o.Status())
	})

	t.Run("should let the system actor cascade", func(t *testing.T) {
		o := restoreOrder(t, purchaseorder.Sent)

		require.NoError(t, o.Transition(purchaseorder.Delivered, kernel.SystemActor))
		assert.Equal(t, purchaseorder.Delivered, o.Status())
	})
}

func TestPurchaseOrder_CheckReceivable(t *testing.T) {
	for _, status := range allStatuses {
		t.Run(status.String(), func(t *testing.T) {
			o := restoreOrder(t, status)

			err := o.CheckReceivable()

			if status == purchaseorder.Sent || status == purchaseorder.Delivered {
				require.NoError(t, err)
				assert.True(t, o.IsReceivable())
				return
			}
			require.ErrorIs(t, err, errs.ErrIllegalTransition)
			assert.Contains(t, err.Error(), "-> receive")
		})
	}
}

func TestPurchaseOrder_RecordReceipts(t *testing.T) {
	o := newOrder(t)

	err := o.RecordReceipts(map[string]kernel.Quantity{"ITEM-A": qty(t, 12)}, purchaseorder.Partial)

	require.NoError(t, err)
	assert.Equal(t, purchaseorder.Partial, o.Fulfillment())
	a, _ := o.Line("ITEM-A")
	b, _ := o.Line("ITEM-B")
	assert.True(t, a.Received().Equal(qty(t, 12)))
	assert.True(t, b.Received().IsZero())
	assert.False(t, a.IsFulfilled())

	require.ErrorIs(t, o.RecordReceipts(nil, purchaseorder.FulfillmentUnknown), errs.ErrValueIsInvalid)
}
