package kernel_test

import (
	"testing"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewActor(t *testing.T) {
	_, err := kernel.NewActor("")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	actor, err := kernel.NewActor("buyer-1")
	require.NoError(t, err)
	assert.Equal(t, "buyer-1", actor.String())
	assert.False(t, actor.IsSystem())
}

func TestActor_May(t *testing.T) {
	assert.True(t, kernel.Actor("buyer-1").May("buyer-1"))
	assert.False(t, kernel.Actor("buyer-2").May("buyer-1"))
	assert.True(t, kernel.SystemActor.May("buyer-1"))
}
