package commands

import (
	"context"

	"forwarding/internal/core/domain/model/parcel"
	"forwarding/internal/core/ports"
)

// CreatePersonalPackageCommandHandler stores person-to-person packages owned by the receiver.
type CreatePersonalPackageCommandHandler struct {
	uowFactory UoWFactory
	clock      ports.Clock
}

func NewCreatePersonalPackageCommandHandler(uowFactory UoWFactory, clock ports.Clock) CreatePersonalPackageCommandHandler {
	return CreatePersonalPackageCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

func (h CreatePersonalPackageCommandHandler) Handle(
	ctx context.Context,
	cmd CreatePersonalPackageCommand,
) (CreatePackageResult, error) {
	if err := cmd.Validate(); err != nil {
		return CreatePackageResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return CreatePackageResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()

	sender, err := userRepo.Get(ctx, cmd.SenderID())
	if err != nil {
		return CreatePackageResult{}, err
	}

	receiver, err := userRepo.Get(ctx, cmd.ReceiverID())
	if err != nil {
		return CreatePackageResult{}, err
	}

	pkg, err := parcel.NewPersonalPackage(parcel.OtherConsumerProducts, sender, receiver, cmd.RetailPrice(), h.clock.Now())
	if err != nil {
		return CreatePackageResult{}, err
	}

	if err = uow.PackageRepository().Add(ctx, pkg); err != nil {
		return CreatePackageResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return CreatePackageResult{}, err
	}

	return CreatePackageResult{
		PackageID:    pkg.ID(),
		TrackingCode: pkg.TrackingCode(),
	}, nil
}
