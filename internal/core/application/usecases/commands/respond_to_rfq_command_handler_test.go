package commands_test

import (
	"testing"

	"procurement/internal/core/application/usecases/commands"
	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/rfq"
	"procurement/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRespondToRfqCommandHandler_Handle(t *testing.T) {
	t.Run("vendor accepts", func(t *testing.T) {
		request := draftRfq(t, "V1")
		require.NoError(t, request.Send(requesterID, []string{"V1"}))
		uow, repo, factory := lockedRfq(request)
		expectSaved(uow, repo, request)
		cmd, err := commands.NewRespondToRfqCommand(rfqNo, kernel.Actor("V1"), "V1", rfq.Accepted)
		require.NoError(t, err)

		status, err := commands.NewRespondToRfqCommandHandler(factory).Handle(t.Context(), cmd)

		require.NoError(t, err)
		assert.Equal(t, rfq.Accepted, status)
	})

	t.Run("another vendor is refused", func(t *testing.T) {
		request := draftRfq(t, "V1")
		require.NoError(t, request.Send(requesterID, []string{"V1"}))
		_, repo, factory := lockedRfq(request)
		cmd, _ := commands.NewRespondToRfqCommand(rfqNo, kernel.Actor("V2"), "V1", rfq.Accepted)

		_, err := commands.NewRespondToRfqCommandHandler(factory).Handle(t.Context(), cmd)

		require.ErrorIs(t, err, errs.ErrNotOwner)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("unknown vendor status", func(t *testing.T) {
		_, err := commands.NewRespondToRfqCommand(rfqNo, kernel.Actor("V1"), "V1", rfq.VendorUnknown)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
