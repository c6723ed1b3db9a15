package commands

import (
	"context"

	"forwarding/internal/core/ports"
)

// ReceivePackageAtDestinationCommandHandler moves in-transit packages to Arrived.
type ReceivePackageAtDestinationCommandHandler struct {
	uowFactory PackageUoWFactory
	clock      ports.Clock
}

func NewReceivePackageAtDestinationCommandHandler(
	uowFactory PackageUoWFactory,
	clock ports.Clock,
) ReceivePackageAtDestinationCommandHandler {
	return ReceivePackageAtDestinationCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle rejects a second scan with parcel.ErrInvalidTransition.
func (h ReceivePackageAtDestinationCommandHandler) Handle(
	ctx context.Context,
	cmd ReceivePackageAtDestinationCommand,
) error {
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

	packageRepo := uow.PackageRepository()
	now := h.clock.Now()

	pkg, err := packageRepo.GetByTrackingCode(ctx, cmd.TrackingCode())
	if err != nil {
		return err
	}

	event, err := pkg.ArrivedAtDestination(cmd.StaffID(), now)
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
