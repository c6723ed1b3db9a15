package commands

import (
	"context"
	"errors"
	"fmt"

	"forwarding/internal/core/ports"
)

var ErrPackageIsNotPaid = errors.New("package must be paid for before it can be delivered")

// DeliverPackageCommandHandler closes the lifecycle of paid packages.
type DeliverPackageCommandHandler struct {
	uowFactory PackageUoWFactory
	clock      ports.Clock
}

func NewDeliverPackageCommandHandler(uowFactory PackageUoWFactory, clock ports.Clock) DeliverPackageCommandHandler {
	return DeliverPackageCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

func (h DeliverPackageCommandHandler) Handle(ctx context.Context, cmd DeliverPackageCommand) error {
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

	pkg, err := packageRepo.Get(ctx, cmd.PackageID())
	if err != nil {
		return err
	}

	if !pkg.IsPaid() {
		return fmt.Errorf("%w: %s", ErrPackageIsNotPaid, pkg.TrackingCode())
	}

	event, err := pkg.Delivered(now)
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
