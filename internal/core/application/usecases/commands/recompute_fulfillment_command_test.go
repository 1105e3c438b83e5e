package commands_test

import (
	"testing"

	"procurement/internal/core/application/usecases/commands"
	"procurement/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRecomputeFulfillmentCommand(t *testing.T) {
	cmd, err := commands.NewRecomputeFulfillmentCommand(poNo)
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, poNo, cmd.PurchaseOrderNo())

	_, err = commands.NewRecomputeFulfillmentCommand("")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	var zero commands.RecomputeFulfillmentCommand
	assert.ErrorIs(t, zero.Validate(), commands.ErrRecomputeFulfillmentCommandIsNotConstructed)
}
