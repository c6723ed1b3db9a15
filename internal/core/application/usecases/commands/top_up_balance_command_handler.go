package commands

import (
	"context"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/core/ports"
)

// TopUpBalanceCommandHandler converts top-ups into the balance currency and credits them.
type TopUpBalanceCommandHandler struct {
	uowFactory UserUoWFactory
	converter  ports.CurrencyConverter
	clock      ports.Clock
}

func NewTopUpBalanceCommandHandler(
	uowFactory UserUoWFactory,
	converter ports.CurrencyConverter,
	clock ports.Clock,
) TopUpBalanceCommandHandler {
	return TopUpBalanceCommandHandler{
		uowFactory: uowFactory,
		converter:  converter,
		clock:      clock,
	}
}

// Handle returns the balance after the top-up.
func (h TopUpBalanceCommandHandler) Handle(ctx context.Context, cmd TopUpBalanceCommand) (kernel.Money, error) {
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

	user, err := userRepo.Get(ctx, cmd.UserID())
	if err != nil {
		return kernel.Money{}, err
	}

	amount, err := h.converter.ConvertTo(ctx, cmd.Amount(), user.Balance().Currency())
	if err != nil {
		return kernel.Money{}, err
	}

	event, err := user.AddBalance(amount, cmd.PaymentMethod(), cmd.SessionID())
	if err != nil {
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

	return user.Balance(), nil
}
