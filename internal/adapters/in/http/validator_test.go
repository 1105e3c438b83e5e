package http

import (
	"testing"

	"procurement/internal/generated/servers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublicOperations(t *testing.T) {
	swagger, err := servers.GetSwagger()
	require.NoError(t, err)

	public := publicOperations(swagger)

	assert.Equal(t, map[string]struct{}{
		"GET /health":           {},
		"POST /api/v1/sessions": {},
	}, public)
}

func TestEchoPath(t *testing.T) {
	assert.Equal(t, "/api/v1/receipts/:number/lines/:lineId/cancel",
		echoPath("/api/v1/receipts/{number}/lines/{lineId}/cancel"))
	assert.Equal(t, "/health", echoPath("/health"))
}

func TestValidationMessage_KeepsFirstLine(t *testing.T) {
	err := assert.AnError
	assert.Equal(t, err.Error(), validationMessage(err))

	multi := &multiLineError{"request body has an error: doesn't match schema\nSchema:\n  {...}"}
	assert.Equal(t, "request body has an error: doesn't match schema", validationMessage(multi))
}

type multiLineError struct{ text string }

func (e *multiLineError) Error() string { return e.text }
