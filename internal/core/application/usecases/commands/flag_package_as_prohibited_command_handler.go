package commands

import (
	"context"

	"forwarding/internal/core/ports"
)

// FlagPackageAsProhibitedCommandHandler marks packages as prohibited in any status.
type FlagPackageAsProhibitedCommandHandler struct {
	uowFactory PackageUoWFactory
	clock      ports.Clock
}

func NewFlagPackageAsProhibitedCommandHandler(
	uowFactory PackageUoWFactory,
	clock ports.Clock,
) FlagPackageAsProhibitedCommandHandler {
	return FlagPackageAsProhibitedCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

func (h FlagPackageAsProhibitedCommandHandler) Handle(ctx context.Context, cmd FlagPackageAsProhibitedCommand) error {
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

	pkg, err := packageRepo.GetByTrackingCode(ctx, cmd.TrackingCode())
	if err != nil {
		return err
	}

	event := pkg.FlagAsProhibited()

	if err = packageRepo.Update(ctx, pkg); err != nil {
		return err
	}

	if err = uow.OutboxRepository().Add(ctx, h.clock.Now(), event); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
