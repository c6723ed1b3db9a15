package commands_test

import (
	"testing"

	"forwarding/internal/core/application/usecases/commands"
	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func tbilisiAddress(t *testing.T) kernel.FullAddress {
	t.Helper()
	address, err := kernel.NewFullAddress("GEO", "Tbilisi", "Tbilisi", "0105", "12 Rustaveli Ave")
	require.NoError(t, err)
	return address
}

func TestNewChangeAddressCommand_Validation(t *testing.T) {
	t.Run("requires a constructed address", func(t *testing.T) {
		// When
		_, err := commands.NewChangeAddressCommand(kernel.NewUUID(), kernel.FullAddress{})

		// Then
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		var cmd commands.ChangeAddressCommand
		assert.ErrorIs(t, cmd.Validate(), commands.ErrChangeAddressCommandIsNotConstructed)
	})
}

func TestChangeAddressCommandHandler_Handle_StoresAddress(t *testing.T) {
	// Given
	ctx := t.Context()
	user := userWithBalance(t, 1000)
	address := tbilisiAddress(t)
	cmd, err := commands.NewChangeAddressCommand(user.ID(), address)
	require.NoError(t, err)

	userRepo := new(MockUserRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("Get", ctx, user.ID()).Return(user, nil).Once(),
		userRepo.On("Update", ctx, user).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUserUoWFactory)
	factory.On("Create").Return(uow).Once()

	// When
	err = commands.NewChangeAddressCommandHandler(factory).Handle(ctx, cmd)

	// Then
	require.NoError(t, err)
	assert.Equal(t, kernel.Address(address), user.Address())
	userRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestChangeAddressCommandHandler_Handle_UnknownUser(t *testing.T) {
	// Given
	ctx := t.Context()
	userID := kernel.NewUUID()
	cmd, err := commands.NewChangeAddressCommand(userID, tbilisiAddress(t))
	require.NoError(t, err)

	userRepo := new(MockUserRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("Get", ctx, userID).Return(nil, errs.NewObjectNotFoundError("userID", userID.String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUserUoWFactory)
	factory.On("Create").Return(uow).Once()

	// When
	err = commands.NewChangeAddressCommandHandler(factory).Handle(ctx, cmd)

	// Then
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	userRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}
