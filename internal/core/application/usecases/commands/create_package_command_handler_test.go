package commands_test

import (
	"errors"
	"testing"

	"forwarding/internal/core/application/usecases/commands"
	"forwarding/internal/core/domain/model/account"
	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/core/domain/model/parcel"
	"forwarding/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createPackageCommand(t *testing.T, ownerID kernel.UUID, code *kernel.TrackingCode, house bool) commands.CreatePackageCommand {
	t.Helper()
	cmd, err := commands.NewCreatePackageCommand(ownerID, parcel.Declaration{
		TrackingCode:  code,
		Category:      parcel.Electronics,
		Description:   "Headphones",
		RetailPrice:   usd(t, 4999),
		ItemCount:     1,
		HouseDelivery: house,
	})
	require.NoError(t, err)
	return cmd
}

func TestCreatePackageCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	owner := userWithBalance(t, 0)
	code, err := kernel.NewTrackingCode("1Z999AA10123456784")
	require.NoError(t, err)
	cmd := createPackageCommand(t, owner.ID(), &code, false)

	userRepo := new(MockUserRepository)
	packageRepo := new(MockPackageRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		uow.On("PackageRepository").Return(packageRepo).Once(),
		userRepo.On("Get", ctx, owner.ID()).Return(owner, nil).Once(),
		packageRepo.On("GetByTrackingCode", ctx, code).Return(nil, errs.NewObjectNotFoundError("trackingCode", code)).Once(),
		packageRepo.On("Add", ctx, mock.AnythingOfType("*parcel.Package")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreatePackageCommandHandler(factory, fixedClock{now})
	result, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, code, result.TrackingCode)
	assert.Contains(t, owner.PackageIDs(), result.PackageID)

	added := packageRepo.Calls[1].Arguments[1].(*parcel.Package)
	assert.Equal(t, parcel.Awaiting, added.CurrentStatus())
	assert.Equal(t, owner.ID(), added.OwnerID())
	assert.Equal(t, now, added.CurrentReceptionStatus().Date())

	userRepo.AssertExpectations(t)
	packageRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreatePackageCommandHandler_Handle_GeneratesTrackingCode(t *testing.T) {
	ctx := t.Context()
	owner := userWithBalance(t, 0)
	cmd := createPackageCommand(t, owner.ID(), nil, false)

	userRepo := new(MockUserRepository)
	packageRepo := new(MockPackageRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		uow.On("PackageRepository").Return(packageRepo).Once(),
		userRepo.On("Get", ctx, owner.ID()).Return(owner, nil).Once(),
		packageRepo.On("Add", ctx, mock.AnythingOfType("*parcel.Package")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreatePackageCommandHandler(factory, fixedClock{now})
	result, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, kernel.IsValidTrackingCode(result.TrackingCode.String()))
	packageRepo.AssertNotCalled(t, "GetByTrackingCode", mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}

func TestCreatePackageCommandHandler_Handle_TrackingCodeIsTaken(t *testing.T) {
	ctx := t.Context()
	owner := userWithBalance(t, 0)
	existing := packageIn(t, owner, parcel.Awaiting)
	code := existing.TrackingCode()
	cmd := createPackageCommand(t, owner.ID(), &code, false)

	userRepo := new(MockUserRepository)
	packageRepo := new(MockPackageRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		uow.On("PackageRepository").Return(packageRepo).Once(),
		userRepo.On("Get", ctx, owner.ID()).Return(owner, nil).Once(),
		packageRepo.On("GetByTrackingCode", ctx, code).Return(existing, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreatePackageCommandHandler(factory, fixedClock{now})
	_, err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrTrackingCodeIsTaken)
	packageRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestCreatePackageCommandHandler_Handle_LookupError(t *testing.T) {
	ctx := t.Context()
	owner := userWithBalance(t, 0)
	code, err := kernel.NewTrackingCode("1Z999AA10123456784")
	require.NoError(t, err)
	cmd := createPackageCommand(t, owner.ID(), &code, false)

	userRepo := new(MockUserRepository)
	packageRepo := new(MockPackageRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		uow.On("PackageRepository").Return(packageRepo).Once(),
		userRepo.On("Get", ctx, owner.ID()).Return(owner, nil).Once(),
		packageRepo.On("GetByTrackingCode", ctx, code).Return(nil, errors.New("database error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreatePackageCommandHandler(factory, fixedClock{now})
	_, err = handler.Handle(ctx, cmd)

	require.EqualError(t, err, "database error")
}

func TestCreatePackageCommandHandler_Handle_HouseDeliveryWithoutAddress(t *testing.T) {
	ctx := t.Context()
	owner := userWithBalance(t, 0)
	cmd := createPackageCommand(t, owner.ID(), nil, true)

	userRepo := new(MockUserRepository)
	packageRepo := new(MockPackageRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		uow.On("PackageRepository").Return(packageRepo).Once(),
		userRepo.On("Get", ctx, owner.ID()).Return(owner, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreatePackageCommandHandler(factory, fixedClock{now})
	_, err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrHouseDeliveryRequiresAddress)
}

func TestCreatePackageCommandHandler_Handle_HouseDeliveryWithAddress(t *testing.T) {
	ctx := t.Context()
	address, err := kernel.NewFullAddress("US", "NY", "Albany", "12207", "100 State St")
	require.NoError(t, err)
	owner, err := account.RestoreUser(kernel.NewUUID(), usd(t, 0), address, nil, 3)
	require.NoError(t, err)
	cmd := createPackageCommand(t, owner.ID(), nil, true)

	userRepo := new(MockUserRepository)
	packageRepo := new(MockPackageRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("UserRepository").Return(userRepo).Once()
	uow.On("PackageRepository").Return(packageRepo).Once()
	userRepo.On("Get", ctx, owner.ID()).Return(owner, nil).Once()
	packageRepo.On("Add", ctx, mock.AnythingOfType("*parcel.Package")).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreatePackageCommandHandler(factory, fixedClock{now})
	_, err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	added := packageRepo.Calls[0].Arguments[1].(*parcel.Package)
	assert.True(t, added.HouseDelivery())
}

func TestCreatePackageCommandHandler_Handle_OwnerNotFound(t *testing.T) {
	ctx := t.Context()
	ownerID := kernel.NewUUID()
	cmd := createPackageCommand(t, ownerID, nil, false)

	userRepo := new(MockUserRepository)
	packageRepo := new(MockPackageRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		uow.On("PackageRepository").Return(packageRepo).Once(),
		userRepo.On("Get", ctx, ownerID).Return(nil, errs.NewObjectNotFoundError("userID", ownerID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreatePackageCommandHandler(factory, fixedClock{now})
	_, err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestCreatePackageCommandHandler_Handle_ValidationError(t *testing.T) {
	factory := new(MockUoWFactory)
	handler := commands.NewCreatePackageCommandHandler(factory, fixedClock{now})

	_, err := handler.Handle(t.Context(), commands.CreatePackageCommand{})

	require.ErrorIs(t, err, commands.ErrCreatePackageCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestCreatePackageCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd := createPackageCommand(t, kernel.NewUUID(), nil, false)

	uow := new(MockUoW)
	factory := new(MockUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	handler := commands.NewCreatePackageCommandHandler(factory, fixedClock{now})
	_, err := handler.Handle(ctx, cmd)

	require.EqualError(t, err, "begin error")
}
