package commands_test

import (
	"testing"
	"time"

	"forwarding/internal/core/application/usecases/commands"
	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/core/domain/model/parcel"
	"forwarding/internal/core/domain/model/race"
	"forwarding/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSendPackageToDestinationCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	pkg := packageIn(t, userWithBalance(t, 0), parcel.InWarehouse)
	r := futureRace(t)
	cmd, err := commands.NewSendPackageToDestinationCommand(kernel.NewUUID(), pkg.ID(), r.ID())
	require.NoError(t, err)

	raceRepo := new(MockRaceRepository)
	packageRepo := new(MockPackageRepository)
	outboxRepo := new(MockOutboxRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RaceRepository").Return(raceRepo).Once(),
		uow.On("PackageRepository").Return(packageRepo).Once(),
		raceRepo.On("Get", ctx, r.ID()).Return(r, nil).Once(),
		packageRepo.On("Get", ctx, pkg.ID()).Return(pkg, nil).Once(),
		packageRepo.On("Update", ctx, pkg).Return(nil).Once(),
		uow.On("OutboxRepository").Return(outboxRepo).Once(),
		outboxRepo.On("Add", ctx, now, eventOfType(parcel.PackageSentToDestinationEventType)).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewSendPackageToDestinationCommandHandler(factory, fixedClock{now})
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, parcel.InTransit, pkg.CurrentStatus())
	require.NotNil(t, pkg.RaceID())
	assert.Equal(t, r.ID(), *pkg.RaceID())
	assert.Contains(t, r.PackageIDs(), pkg.ID())
	uow.AssertExpectations(t)
	outboxRepo.AssertExpectations(t)
}

func TestSendPackageToDestinationCommandHandler_Handle_RaceHasStarted(t *testing.T) {
	ctx := t.Context()
	pkg := packageIn(t, userWithBalance(t, 0), parcel.InWarehouse)
	r, err := race.NewRace("NYC-TBS-02", "NYC", "TBS", now.Add(-time.Minute), now.Add(20*time.Hour))
	require.NoError(t, err)
	cmd, err := commands.NewSendPackageToDestinationCommand(kernel.NewUUID(), pkg.ID(), r.ID())
	require.NoError(t, err)

	raceRepo := new(MockRaceRepository)
	packageRepo := new(MockPackageRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RaceRepository").Return(raceRepo).Once(),
		uow.On("PackageRepository").Return(packageRepo).Once(),
		raceRepo.On("Get", ctx, r.ID()).Return(r, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewSendPackageToDestinationCommandHandler(factory, fixedClock{now})
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrRaceHasStarted)
	packageRepo.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
}

func TestSendPackageToDestinationCommandHandler_Handle_PackageNotInWarehouse(t *testing.T) {
	ctx := t.Context()
	pkg := packageIn(t, userWithBalance(t, 0), parcel.Awaiting)
	r := futureRace(t)
	cmd, err := commands.NewSendPackageToDestinationCommand(kernel.NewUUID(), pkg.ID(), r.ID())
	require.NoError(t, err)

	raceRepo := new(MockRaceRepository)
	packageRepo := new(MockPackageRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RaceRepository").Return(raceRepo).Once(),
		uow.On("PackageRepository").Return(packageRepo).Once(),
		raceRepo.On("Get", ctx, r.ID()).Return(r, nil).Once(),
		packageRepo.On("Get", ctx, pkg.ID()).Return(pkg, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewSendPackageToDestinationCommandHandler(factory, fixedClock{now})
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, parcel.ErrInvalidTransition)
	assert.Empty(t, r.PackageIDs())
	assert.Nil(t, pkg.RaceID())
}

func TestSendPackageToDestinationCommandHandler_Handle_RaceNotFound(t *testing.T) {
	ctx := t.Context()
	raceID := kernel.NewUUID()
	cmd, err := commands.NewSendPackageToDestinationCommand(kernel.NewUUID(), kernel.NewUUID(), raceID)
	require.NoError(t, err)

	raceRepo := new(MockRaceRepository)
	packageRepo := new(MockPackageRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RaceRepository").Return(raceRepo).Once(),
		uow.On("PackageRepository").Return(packageRepo).Once(),
		raceRepo.On("Get", ctx, raceID).Return(nil, errs.NewObjectNotFoundError("raceID", raceID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewSendPackageToDestinationCommandHandler(factory, fixedClock{now})
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}
