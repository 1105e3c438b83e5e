package purchaseorder_test

import (
	"fmt"
	"slices"
	"testing"

	"procurement/internal/core/domain/model/purchaseorder"
	"procurement/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allStatuses = []purchaseorder.Status{
	purchaseorder.Saved,
	purchaseorder.Confirmed,
	purchaseorder.Approved,
	purchaseorder.Rejected,
	purchaseorder.Sent,
	purchaseorder.Delivered,
	purchaseorder.Closed,
}

func TestStatus_Validate(t *testing.T) {
	for _, status := range allStatuses {
		require.NoError(t, status.Validate(), status.String())
	}

	require.ErrorIs(t, purchaseorder.Unknown.Validate(), errs.ErrValueIsInvalid)
	require.ErrorIs(t, purchaseorder.Status(42).Validate(), errs.ErrValueIsInvalid)
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "SAVED", purchaseorder.Saved.String())
	assert.Equal(t, "DELIVERED", purchaseorder.Delivered.String())
	assert.Equal(t, "UNKNOWN", purchaseorder.Status(42).String())
}

func TestParseStatus(t *testing.T) {
	for _, status := range allStatuses {
		parsed, err := purchaseorder.ParseStatus(status.String())
		require.NoError(t, err)
		assert.Equal(t, status, parsed)
	}

	_, err := purchaseorder.ParseStatus("UNKNOWN")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	_, err = purchaseorder.ParseStatus("shipped")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestTransitions_Graph(t *testing.T) {
	expected := map[purchaseorder.Status][]purchaseorder.Status{
		purchaseorder.Saved:     {purchaseorder.Confirmed},
		purchaseorder.Confirmed: {purchaseorder.Approved, purchaseorder.Rejected},
		purchaseorder.Rejected:  {purchaseorder.Saved},
		purchaseorder.Approved:  {purchaseorder.Sent},
		purchaseorder.Sent:      {purchaseorder.Delivered},
		purchaseorder.Delivered: {purchaseorder.Closed},
		purchaseorder.Closed:    nil,
	}

	for _, from := range allStatuses {
		for _, to := range allStatuses {
			t.Run(fmt.Sprintf("%s to %s", from, to), func(t *testing.T) {
				want := slices.Contains(expected[from], to)
				assert.Equal(t, want, purchaseorder.Transitions.CanTransition(from, to))
			})
		}
	}

	assert.True(t, purchaseorder.Transitions.IsTerminal(purchaseorder.Closed))
}

func TestFulfillment_Validate(t *testing.T) {
	require.NoError(t, purchaseorder.NotReceived.Validate())
	require.NoError(t, purchaseorder.Partial.Validate())
	require.NoError(t, purchaseorder.Completed.Validate())
	require.ErrorIs(t, purchaseorder.FulfillmentUnknown.Validate(), errs.ErrValueIsInvalid)
	assert.Equal(t, "NOT_RECEIVED", purchaseorder.NotReceived.String())
}
