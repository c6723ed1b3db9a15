package commands

import (
	"context"
	"errors"
	"fmt"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/core/domain/model/parcel"
	"forwarding/internal/core/ports"
	"forwarding/internal/pkg/errs"
)

var (
	ErrTrackingCodeIsTaken          = errors.New("tracking code is already declared")
	ErrHouseDeliveryRequiresAddress = errors.New("house delivery requires a full delivery address")
)

// CreatePackageResult identifies the declared package.
type CreatePackageResult struct {
	PackageID    kernel.UUID
	TrackingCode kernel.TrackingCode
}

// CreatePackageCommandHandler declares packages for existing users.
//
// Example:
//
//	handler := NewCreatePackageCommandHandler(uowFactory, clock)
//	result, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, ErrTrackingCodeIsTaken) {
//	    // the code was declared before
//	}
type CreatePackageCommandHandler struct {
	uowFactory UoWFactory
	clock      ports.Clock
}

func NewCreatePackageCommandHandler(uowFactory UoWFactory, clock ports.Clock) CreatePackageCommandHandler {
	return CreatePackageCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle loads the owner, rejects a tracking code that is already declared and
// stores the new package in Awaiting status.
//
// Parameters:
//   - ctx: bounds the transaction
//   - cmd: the owner and the declaration; an empty tracking code gets a generated one
//
// Returns:
//   - CreatePackageResult: id and tracking code of the declared package
//   - error: ErrTrackingCodeIsTaken, ErrHouseDeliveryRequiresAddress,
//     errs.ErrObjectNotFound for an unknown owner, or a storage error
func (h CreatePackageCommandHandler) Handle(ctx context.Context, cmd CreatePackageCommand) (CreatePackageResult, error) {
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
	packageRepo := uow.PackageRepository()

	owner, err := userRepo.Get(ctx, cmd.OwnerID())
	if err != nil {
		return CreatePackageResult{}, err
	}

	declaration := cmd.Declaration()
	if declaration.HouseDelivery {
		if _, ok := owner.Address().(kernel.FullAddress); !ok {
			return CreatePackageResult{}, ErrHouseDeliveryRequiresAddress
		}
	}

	if declaration.TrackingCode != nil {
		_, err = packageRepo.GetByTrackingCode(ctx, *declaration.TrackingCode)
		switch {
		case err == nil:
			return CreatePackageResult{}, fmt.Errorf("%w: %s", ErrTrackingCodeIsTaken, declaration.TrackingCode)
		case !errors.Is(err, errs.ErrObjectNotFound):
			return CreatePackageResult{}, err
		}
	}

	pkg, err := parcel.NewPackage(declaration, owner, h.clock.Now())
	if err != nil {
		return CreatePackageResult{}, err
	}

	if err = packageRepo.Add(ctx, pkg); err != nil {
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
