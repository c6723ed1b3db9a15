package commands

import (
	"context"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/core/domain/model/pricing"
	"forwarding/internal/core/domain/services"
	"forwarding/internal/core/ports"
)

// PayForShippingCommandHandler runs the payment gate: the package and the
// balance are saved together with the payment event, or not at all.
//
// Example:
//
//	handler := NewPayForShippingCommandHandler(uowFactory, clock, pricing.DefaultPolicy())
//	paid, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, account.ErrInsufficientBalance):
//	    // ask for a top-up
//	case errors.Is(err, services.ErrPackageHasNotArrived):
//	    // too early
//	}
type PayForShippingCommandHandler struct {
	uowFactory UoWFactory
	clock      ports.Clock
	payment    services.ShippingPayment
}

// NewPayForShippingCommandHandler charges with policy, which must be the policy
// the price queries quote with.
func NewPayForShippingCommandHandler(
	uowFactory UoWFactory,
	clock ports.Clock,
	policy pricing.Policy,
) PayForShippingCommandHandler {
	return PayForShippingCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
		payment:    services.NewShippingPayment(policy),
	}
}

// Handle debits the owner of an arrived package within one transaction.
// The user, the package and the UserPaidForPackage event are written together.
//
// Parameters:
//   - ctx: bounds the transaction
//   - cmd: the paying user and the package, built by NewPayForShippingCommand
//
// Returns:
//   - kernel.Money: the debited amount, equal to the quote under the same policy
//   - error: services.ErrPackageNotOwned, services.ErrPackageHasNotArrived,
//     parcel.ErrPackageAlreadyPaid, account.ErrInsufficientBalance,
//     errs.ErrObjectNotFound or a storage error; nothing is written in that case
func (h PayForShippingCommandHandler) Handle(ctx context.Context, cmd PayForShippingCommand) (kernel.Money, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.Money{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.Money{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()
	packageRepo := uow.PackageRepository()

	user, err := userRepo.Get(ctx, cmd.UserID())
	if err != nil {
		return kernel.Money{}, err
	}

	pkg, err := packageRepo.Get(ctx, cmd.PackageID())
	if err != nil {
		return kernel.Money{}, err
	}

	event, err := h.payment.Pay(user, pkg)
	if err != nil {
		return kernel.Money{}, err
	}

	if err = packageRepo.Update(ctx, pkg); err != nil {
		return kernel.Money{}, err
	}

	if err = userRepo.Update(ctx, user); err != nil {
		return kernel.Money{}, err
	}

	if err = uow.OutboxRepository().Add(ctx, h.clock.Now(), event); err != nil {
		return kernel.Money{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.Money{}, err
	}

	return event.Amount, nil
}
