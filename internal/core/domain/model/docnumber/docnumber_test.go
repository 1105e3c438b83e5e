package docnumber_test

import (
	"testing"
	"time"

	"procurement/internal/core/domain/model/docnumber"
	"procurement/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var businessDate = time.Date(2026, time.October, 14, 15, 30, 0, 0, time.UTC)

func TestDocType_Validate(t *testing.T) {
	t.Run("known types are valid", func(t *testing.T) {
		for _, dt := range []docnumber.DocType{
			docnumber.PurchaseRequest,
			docnumber.RequestForQuotation,
			docnumber.PurchaseOrder,
			docnumber.GoodsReceipt,
			docnumber.Notice,
			docnumber.Vendor,
		} {
			require.NoError(t, dt.Validate(), dt.String())
		}
	})

	t.Run("empty type is required", func(t *testing.T) {
		require.ErrorIs(t, docnumber.DocType("").Validate(), errs.ErrValueIsRequired)
	})

	t.Run("unknown type is invalid", func(t *testing.T) {
		err := docnumber.DocType("INVOICE").Validate()
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), `"INVOICE" is not a known document type`)
	})
}

func TestCounterKey(t *testing.T) {
	testCases := []struct {
		name     string
		docType  docnumber.DocType
		expected time.Time
	}{
		{"daily reset keeps the day", docnumber.PurchaseOrder, time.Date(2026, 10, 14, 0, 0, 0, 0, time.UTC)},
		{"yearly reset keeps January 1st", docnumber.Notice, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)},
		{"no reset uses the sentinel", docnumber.Vendor, docnumber.NoResetKeyDate},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			key, err := docnumber.CounterKey(tc.docType, businessDate)
			require.NoError(t, err)
			assert.True(t, tc.expected.Equal(key), "got %s", key)
		})
	}

	t.Run("zero business date is rejected", func(t *testing.T) {
		_, err := docnumber.CounterKey(docnumber.PurchaseOrder, time.Time{})
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("daily key uses the date in its own location", func(t *testing.T) {
		tokyo := time.FixedZone("JST", 9*60*60)
		late := time.Date(2026, 10, 15, 1, 0, 0, 0, tokyo)
		key, err := docnumber.CounterKey(docnumber.GoodsReceipt, late)
		require.NoError(t, err)
		assert.Equal(t, "2026-10-15", key.Format(time.DateOnly))
	})
}

func TestNewNumber(t *testing.T) {
	testCases := []struct {
		docType  docnumber.DocType
		seqNo    int64
		expected string
	}{
		{docnumber.PurchaseOrder, 7, "PO202610140007"},
		{docnumber.RequestForQuotation, 12, "RFQ202610140012"},
		{docnumber.GoodsReceipt, 1, "GR202610140001"},
		{docnumber.PurchaseRequest, 10000, "PR2026101410000"},
		{docnumber.Notice, 12, "NT202600012"},
		{docnumber.Vendor, 42, "V000042"},
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			n, err := docnumber.NewNumber(tc.docType, businessDate, tc.seqNo)
			require.NoError(t, err)
			require.NoError(t, n.Validate())
			assert.Equal(t, tc.expected, n.String())
			assert.Equal(t, tc.seqNo, n.SeqNo())
			assert.Equal(t, tc.docType, n.DocType())
		})
	}

	t.Run("rejects non-positive sequence numbers", func(t *testing.T) {
		_, err := docnumber.NewNumber(docnumber.PurchaseOrder, businessDate, 0)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestNumber_ValidateType(t *testing.T) {
	n, err := docnumber.NewNumber(docnumber.GoodsReceipt, businessDate, 3)
	require.NoError(t, err)

	require.NoError(t, n.ValidateType(docnumber.GoodsReceipt))
	require.ErrorIs(t, n.ValidateType(docnumber.PurchaseOrder), errs.ErrValueIsInvalid)

	var zero docnumber.Number
	require.ErrorIs(t, zero.ValidateType(docnumber.GoodsReceipt), docnumber.ErrNumberIsNotConstructed)
}
