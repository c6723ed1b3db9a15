package commands

import (
	"context"
)

// ChangeAddressCommandHandler stores a new delivery address for a user.
type ChangeAddressCommandHandler struct {
	uowFactory UserUoWFactory
}

func NewChangeAddressCommandHandler(uowFactory UserUoWFactory) ChangeAddressCommandHandler {
	return ChangeAddressCommandHandler{uowFactory: uowFactory}
}

// Handle returns errs.ErrObjectNotFound for an unknown user and
// errs.ErrVersionIsInvalid when the user changed concurrently.
func (h ChangeAddressCommandHandler) Handle(ctx context.Context, cmd ChangeAddressCommand) error {
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

	userRepo := uow.UserRepository()

	user, err := userRepo.Get(ctx, cmd.UserID())
	if err != nil {
		return err
	}

	if err = user.SetAddress(cmd.Address()); err != nil {
		return err
	}

	if err = userRepo.Update(ctx, user); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
