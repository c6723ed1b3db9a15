package commands

import (
	"context"
	"errors"
	"fmt"

	"forwarding/internal/core/ports"
)

var ErrRaceHasStarted = errors.New("race has already started")

// SendPackageToDestinationCommandHandler attaches warehoused packages to races
// that have not departed yet.
type SendPackageToDestinationCommandHandler struct {
	uowFactory UoWFactory
	clock      ports.Clock
}

func NewSendPackageToDestinationCommandHandler(
	uowFactory UoWFactory,
	clock ports.Clock,
) SendPackageToDestinationCommandHandler {
	return SendPackageToDestinationCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

func (h SendPackageToDestinationCommandHandler) Handle(ctx context.Context, cmd SendPackageToDestinationCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	raceRepo := uow.RaceRepository()
	packageRepo := uow.PackageRepository()
	now := h.clock.Now()

	race, err := raceRepo.Get(ctx, cmd.RaceID())
	if err != nil {
		return err
	}

	if race.HasStarted(now) {
		return fmt.Errorf("%w: %s departed at %s", ErrRaceHasStarted, race.Name(), race.Start().Format("2006-01-02 15:04"))
	}

	pkg, err := packageRepo.Get(ctx, cmd.PackageID())
	if err != nil {
		return err
	}

	event, err := pkg.SentToDestination(cmd.StaffID(), race, now)
	if err != nil {
		return err
	}

	if err = packageRepo.Update(ctx, pkg); err != nil {
		return err
	}

	if err = uow.OutboxRepository().Add(ctx, now, event); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
