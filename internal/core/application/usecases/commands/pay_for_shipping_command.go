package commands

import (
	"errors"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/pkg/guard"
)

var (
	ErrPayForShippingCommandIsNotConstructed = errors.New(
		"PayForShippingCommand must be created via NewPayForShippingCommand constructor",
	)
)

// PayForShippingCommand debits the shipping price of an arrived package from its owner's balance.
type PayForShippingCommand struct { //nolint:recvcheck //using for validation
	userID    kernel.UUID
	packageID kernel.UUID

	guard guard.ConstructorGuard
}

func NewPayForShippingCommand(userID, packageID kernel.UUID) (PayForShippingCommand, error) {
	if err := errors.Join(userID.Validate(), packageID.Validate()); err != nil {
		return PayForShippingCommand{}, err
	}

	return PayForShippingCommand{
		userID:    userID,
		packageID: packageID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c PayForShippingCommand) Validate() error {
	return c.guard.Validate(ErrPayForShippingCommandIsNotConstructed)
}

func (c PayForShippingCommand) UserID() kernel.UUID {
	return c.userID
}

func (c PayForShippingCommand) PackageID() kernel.UUID {
	return c.packageID
}
