package commands_test

import (
	"testing"

	"procurement/internal/core/application/usecases/commands"
	"procurement/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogoutCommand(t *testing.T) {
	cmd, err := commands.NewLogoutCommand("session-1")
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, "session-1", cmd.SessionID())

	_, err = commands.NewLogoutCommand("")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	var zero commands.LogoutCommand
	assert.ErrorIs(t, zero.Validate(), commands.ErrLogoutCommandIsNotConstructed)
}
