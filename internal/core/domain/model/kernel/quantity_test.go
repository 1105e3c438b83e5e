package kernel_test

import (
	"testing"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQuantity(t *testing.T) {
	t.Run("accepts zero and positive values", func(t *testing.T) {
		for _, v := range []string{"0", "1", "12.5", "0.001"} {
			q, err := kernel.NewQuantity(decimal.RequireFromString(v))
			require.NoError(t, err)
			require.NoError(t, q.Validate())
		}
	})

	t.Run("rejects negative values", func(t *testing.T) {
		_, err := kernel.NewQuantity(decimal.NewFromInt(-1))
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "-1 is negative")
	})
}

func TestNewPositiveQuantity(t *testing.T) {
	_, err := kernel.NewPositiveQuantity(decimal.Zero)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	q, err := kernel.NewPositiveQuantity(decimal.NewFromFloat(2.5))
	require.NoError(t, err)
	assert.Equal(t, "2.5", q.String())
}

func TestQuantity_Arithmetic(t *testing.T) {
	ten, _ := kernel.QuantityFromInt(10)
	twenty, _ := kernel.QuantityFromInt(20)

	sum := ten.Add(ten)
	assert.True(t, sum.Equal(twenty))
	assert.True(t, sum.GreaterThanOrEqual(twenty))
	assert.False(t, ten.GreaterThanOrEqual(twenty))
	assert.True(t, kernel.ZeroQuantity().IsZero())
	require.NoError(t, sum.Validate())
}

func TestQuantity_ZeroValueIsInvalid(t *testing.T) {
	var q kernel.Quantity
	require.ErrorIs(t, q.Validate(), errs.ErrValueIsRequired)
}
