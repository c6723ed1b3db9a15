package commands

import (
	"errors"

	"forwarding/internal/core/domain/model/account"
	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/pkg/guard"
)

var (
	ErrTopUpBalanceCommandIsNotConstructed = errors.New(
		"TopUpBalanceCommand must be created via NewTopUpBalanceCommand constructor",
	)
)

// TopUpBalanceCommand credits a completed payment to a user's balance. The
// amount may be in any supported currency; it is converted to the balance currency.
type TopUpBalanceCommand struct { //nolint:recvcheck //using for validation
	userID        kernel.UUID
	amount        kernel.Money
	paymentMethod account.PaymentMethod
	sessionID     string

	guard guard.ConstructorGuard
}

func NewTopUpBalanceCommand(
	userID kernel.UUID,
	amount kernel.Money,
	paymentMethod account.PaymentMethod,
	sessionID string,
) (TopUpBalanceCommand, error) {
	if err := errors.Join(
		userID.Validate(),
		amount.Validate(),
		paymentMethod.Validate(),
		maxLengthString("paymentSessionID", sessionID, 255),
	); err != nil {
		return TopUpBalanceCommand{}, err
	}

	return TopUpBalanceCommand{
		userID:        userID,
		amount:        amount,
		paymentMethod: paymentMethod,
		sessionID:     sessionID,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func (c TopUpBalanceCommand) Validate() error {
	return c.guard.Validate(ErrTopUpBalanceCommandIsNotConstructed)
}

func (c TopUpBalanceCommand) UserID() kernel.UUID {
	return c.userID
}

func (c TopUpBalanceCommand) Amount() kernel.Money {
	return c.amount
}

func (c TopUpBalanceCommand) PaymentMethod() account.PaymentMethod {
	return c.paymentMethod
}

func (c TopUpBalanceCommand) SessionID() string {
	return c.sessionID
}
