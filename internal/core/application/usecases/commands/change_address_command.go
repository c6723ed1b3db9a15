package commands

import (
	"errors"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/pkg/errs"
	"forwarding/internal/pkg/guard"
)

var (
	ErrChangeAddressCommandIsNotConstructed = errors.New(
		"ChangeAddressCommand must be created via NewChangeAddressCommand constructor",
	)
)

// ChangeAddressCommand replaces the delivery address of a user. House
// delivery of packages paid afterwards goes to the new address.
type ChangeAddressCommand struct { //nolint:recvcheck //using for validation
	userID  kernel.UUID
	address kernel.FullAddress

	guard guard.ConstructorGuard
}

func NewChangeAddressCommand(userID kernel.UUID, address kernel.FullAddress) (ChangeAddressCommand, error) {
	var addressErr error
	if address == (kernel.FullAddress{}) {
		addressErr = errs.NewValueIsRequiredError("address")
	}

	if err := errors.Join(userID.Validate(), addressErr); err != nil {
		return ChangeAddressCommand{}, err
	}

	return ChangeAddressCommand{
		userID:  userID,
		address: address,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c ChangeAddressCommand) Validate() error {
	return c.guard.Validate(ErrChangeAddressCommandIsNotConstructed)
}

func (c ChangeAddressCommand) UserID() kernel.UUID {
	return c.userID
}

func (c ChangeAddressCommand) Address() kernel.FullAddress {
	return c.address
}
