package commands_test

import (
	"testing"

	"procurement/internal/core/application/usecases/commands"
	"procurement/internal/core/domain/model/rfq"
	"procurement/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSendRfqCommandHandler_Handle(t *testing.T) {
	t.Run("matching vendor list sends the request", func(t *testing.T) {
		request := draftRfq(t, "V1", "V2")
		uow, repo, factory := lockedRfq(request)
		expectSaved(uow, repo, request)
		cmd, _ := commands.NewSendRfqCommand(rfqNo, requesterID, []string{"V2", "V1"})

		status, err := commands.NewSendRfqCommandHandler(factory).Handle(t.Context(), cmd)

		require.NoError(t, err)
		assert.Equal(t, rfq.Sent, status)
		uow.AssertExpectations(t)
		repo.AssertExpectations(t)
	})

	t.Run("stale vendor list changes nothing", func(t *testing.T) {
		request := draftRfq(t, "V1", "V2")
		uow, repo, factory := lockedRfq(request)
		cmd, _ := commands.NewSendRfqCommand(rfqNo, requesterID, []string{"V1"})

		_, err := commands.NewSendRfqCommandHandler(factory).Handle(t.Context(), cmd)

		require.ErrorIs(t, err, errs.ErrStaleState)
		assert.Equal(t, rfq.Draft, request.Status())
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
		uow.AssertNotCalled(t, "Commit", mock.Anything)
	})

	t.Run("not found", func(t *testing.T) {
		repo := new(MockRfqRepository)
		uow := new(MockUoW)
		uow.On("RfqRepository").Return(repo)
		uow.On("Begin", mock.Anything).Return(nil).Once()
		uow.On("Rollback", mock.Anything).Return(nil).Once()
		repo.On("GetForUpdate", mock.Anything, rfqNo).Return(nil, errs.NewObjectNotFoundError("number", rfqNo)).Once()
		factory := new(MockRfqUoWFactory)
		factory.On("Create").Return(uow).Once()
		cmd, _ := commands.NewSendRfqCommand(rfqNo, requesterID, []string{"V1"})

		_, err := commands.NewSendRfqCommandHandler(factory).Handle(t.Context(), cmd)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}
