package commands

import (
	"errors"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/pkg/guard"
)

var (
	ErrCreateUserCommandIsNotConstructed = errors.New(
		"CreateUserCommand must be created via NewCreateUserCommand constructor",
	)
)

// CreateUserCommand opens a balance account. The address may be kernel.NoAddress{}.
type CreateUserCommand struct { //nolint:recvcheck //using for validation
	userID   kernel.UUID
	currency kernel.Currency
	address  kernel.Address

	guard guard.ConstructorGuard
}

func NewCreateUserCommand(userID kernel.UUID, currency kernel.Currency, address kernel.Address) (CreateUserCommand, error) {
	if address == nil {
		address = kernel.NoAddress{}
	}

	if err := errors.Join(userID.Validate(), currency.Validate()); err != nil {
		return CreateUserCommand{}, err
	}

	return CreateUserCommand{
		userID:   userID,
		currency: currency,
		address:  address,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c CreateUserCommand) Validate() error {
	return c.guard.Validate(ErrCreateUserCommandIsNotConstructed)
}

func (c CreateUserCommand) UserID() kernel.UUID {
	return c.userID
}

func (c CreateUserCommand) Currency() kernel.Currency {
	return c.currency
}

func (c CreateUserCommand) Address() kernel.Address {
	return c.address
}
