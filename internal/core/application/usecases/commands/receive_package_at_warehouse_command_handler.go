package commands

import (
	"context"
	"errors"
	"time"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/core/domain/model/parcel"
	"forwarding/internal/core/ports"
	"forwarding/internal/pkg/errs"
)

// undeclaredDescription is stored for packages that arrive without a declaration.
const undeclaredDescription = "-"

// ReceptionResult tells the warehouse terminal what happened to a scanned package.
type ReceptionResult int

const (
	ReceptionUnknown ReceptionResult = iota

	// ReceptionSucceeded means a declared package was checked in.
	ReceptionSucceeded

	// ReceptionNoOwnerFound means nobody declared the tracking code. The package
	// was checked in under the receiving staff member until its owner is found.
	ReceptionNoOwnerFound

	// ReceptionAlreadyInWarehouse means the package was scanned before; nothing changed.
	ReceptionAlreadyInWarehouse
)

func (r ReceptionResult) String() string {
	switch r {
	case ReceptionSucceeded:
		return "Succeeded"
	case ReceptionNoOwnerFound:
		return "NoOwnerFound"
	case ReceptionAlreadyInWarehouse:
		return "AlreadyInWarehouse"
	default:
		return "Unknown"
	}
}

// ReceivePackageAtWarehouseCommandHandler checks scanned packages into the warehouse.
//
// Example:
//
//	handler := NewReceivePackageAtWarehouseCommandHandler(uowFactory, clock)
//	result, err := handler.Handle(ctx, cmd)
//	if result == ReceptionNoOwnerFound {
//	    // put the package on the unclaimed shelf
//	}
type ReceivePackageAtWarehouseCommandHandler struct {
	uowFactory UoWFactory
	clock      ports.Clock
}

func NewReceivePackageAtWarehouseCommandHandler(
	uowFactory UoWFactory,
	clock ports.Clock,
) ReceivePackageAtWarehouseCommandHandler {
	return ReceivePackageAtWarehouseCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle finds the package by tracking code and records its arrival.
// An undeclared package is created under the staff member, who must exist as a user.
// A package already past Awaiting is reported as ReceptionAlreadyInWarehouse.
//
// Returns:
//   - ReceptionResult: what the terminal shows for the scan
//   - error: a validation, lookup or storage error; the reception is not stored then
func (h ReceivePackageAtWarehouseCommandHandler) Handle(
	ctx context.Context,
	cmd ReceivePackageAtWarehouseCommand,
) (ReceptionResult, error) {
	if err := cmd.Validate(); err != nil {
		return ReceptionUnknown, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return ReceptionUnknown, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	packageRepo := uow.PackageRepository()
	outboxRepo := uow.OutboxRepository()
	now := h.clock.Now()

	result := ReceptionSucceeded
	pkg, err := packageRepo.GetByTrackingCode(ctx, cmd.TrackingCode())
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		result = ReceptionNoOwnerFound
		pkg, err = h.declareUnclaimed(ctx, uow.UserRepository(), cmd, now)
		if err != nil {
			return ReceptionUnknown, err
		}
	case err != nil:
		return ReceptionUnknown, err
	case pkg.CurrentStatus() >= parcel.InWarehouse:
		return ReceptionAlreadyInWarehouse, nil
	}

	event, err := pkg.ArrivedAtWarehouse(cmd.StaffID(), cmd.Dimensions(), cmd.WeightGrams(), now, cmd.PricePerKg())
	if err != nil {
		return ReceptionUnknown, err
	}

	if result == ReceptionNoOwnerFound {
		err = packageRepo.Add(ctx, pkg)
	} else {
		err = packageRepo.Update(ctx, pkg)
	}
	if err != nil {
		return ReceptionUnknown, err
	}

	if err = outboxRepo.Add(ctx, now, event); err != nil {
		return ReceptionUnknown, err
	}

	if err = uow.Commit(ctx); err != nil {
		return ReceptionUnknown, err
	}

	return result, nil
}

func (h ReceivePackageAtWarehouseCommandHandler) declareUnclaimed(
	ctx context.Context,
	userRepo ports.UserRepository,
	cmd ReceivePackageAtWarehouseCommand,
	now time.Time,
) (*parcel.Package, error) {
	staff, err := userRepo.Get(ctx, cmd.StaffID())
	if err != nil {
		return nil, err
	}

	retailPrice, err := kernel.ZeroMoney(kernel.USD)
	if err != nil {
		return nil, err
	}

	code := cmd.TrackingCode()
	return parcel.NewPackage(parcel.Declaration{
		TrackingCode: &code,
		Category:     parcel.OtherConsumerProducts,
		Description:  undeclaredDescription,
		RetailPrice:  retailPrice,
		ItemCount:    1,
	}, staff, now)
}
