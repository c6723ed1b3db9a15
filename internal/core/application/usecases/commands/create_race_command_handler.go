package commands

import (
	"context"
	"errors"
	"fmt"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/core/domain/model/race"
	"forwarding/internal/core/ports"
)

var (
	ErrRaceNameIsTaken      = errors.New("race name is already taken")
	ErrRaceStartIsInThePast = errors.New("race start must be in the future")
)

// CreateRaceCommandHandler schedules races with unique names.
type CreateRaceCommandHandler struct {
	uowFactory RaceUoWFactory
	clock      ports.Clock
}

func NewCreateRaceCommandHandler(uowFactory RaceUoWFactory, clock ports.Clock) CreateRaceCommandHandler {
	return CreateRaceCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle returns the identifier of the new race.
func (h CreateRaceCommandHandler) Handle(ctx context.Context, cmd CreateRaceCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	if !cmd.Start().After(h.clock.Now()) {
		return kernel.UUID{}, ErrRaceStartIsInThePast
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	raceRepo := uow.RaceRepository()

	exists, err := raceRepo.ExistsByName(ctx, cmd.Name())
	if err != nil {
		return kernel.UUID{}, err
	}
	if exists {
		return kernel.UUID{}, fmt.Errorf("%w: %s", ErrRaceNameIsTaken, cmd.Name())
	}

	r, err := race.NewRace(cmd.Name(), cmd.Origin(), cmd.Destination(), cmd.Start(), cmd.Arrival())
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = raceRepo.Add(ctx, r); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return r.ID(), nil
}
