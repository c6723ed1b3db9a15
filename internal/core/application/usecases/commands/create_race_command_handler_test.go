package commands_test

import (
	"testing"
	"time"

	"forwarding/internal/core/application/usecases/commands"
	"forwarding/internal/core/domain/model/race"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateRaceCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateRaceCommand("NYC-TBS-07", "New York", "Tbilisi", now.Add(48*time.Hour), now.Add(60*time.Hour))
	require.NoError(t, err)

	raceRepo := new(MockRaceRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RaceRepository").Return(raceRepo).Once(),
		raceRepo.On("ExistsByName", ctx, "NYC-TBS-07").Return(false, nil).Once(),
		raceRepo.On("Add", ctx, mock.AnythingOfType("*race.Race")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRaceUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateRaceCommandHandler(factory, fixedClock{now})
	id, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	added := raceRepo.Calls[1].Arguments[1].(*race.Race)
	assert.Equal(t, id, added.ID())
	assert.Equal(t, "Tbilisi", added.Destination())
	assert.Empty(t, added.PackageIDs())
	raceRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateRaceCommandHandler_Handle_NameIsTaken(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateRaceCommand("NYC-TBS-07", "New York", "Tbilisi", now.Add(48*time.Hour), now.Add(60*time.Hour))
	require.NoError(t, err)

	raceRepo := new(MockRaceRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RaceRepository").Return(raceRepo).Once(),
		raceRepo.On("ExistsByName", ctx, "NYC-TBS-07").Return(true, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRaceUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateRaceCommandHandler(factory, fixedClock{now})
	_, err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrRaceNameIsTaken)
	raceRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestCreateRaceCommandHandler_Handle_StartInThePast(t *testing.T) {
	cmd, err := commands.NewCreateRaceCommand("NYC-TBS-07", "New York", "Tbilisi", now.Add(-time.Hour), now.Add(60*time.Hour))
	require.NoError(t, err)

	factory := new(MockRaceUoWFactory)
	handler := commands.NewCreateRaceCommandHandler(factory, fixedClock{now})
	_, err = handler.Handle(t.Context(), cmd)

	require.ErrorIs(t, err, commands.ErrRaceStartIsInThePast)
	factory.AssertNotCalled(t, "Create")
}
