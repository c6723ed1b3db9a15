package commands

import (
	"errors"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/pkg/errs"
	"forwarding/internal/pkg/guard"
)

var (
	ErrCreatePersonalPackageCommandIsNotConstructed = errors.New(
		"CreatePersonalPackageCommand must be created via NewCreatePersonalPackageCommand constructor",
	)
)

// CreatePersonalPackageCommand registers a person-to-person shipment between two existing users.
type CreatePersonalPackageCommand struct { //nolint:recvcheck //using for validation
	senderID    kernel.UUID
	receiverID  kernel.UUID
	retailPrice kernel.Money

	guard guard.ConstructorGuard
}

func NewCreatePersonalPackageCommand(
	senderID, receiverID kernel.UUID,
	retailPrice kernel.Money,
) (CreatePersonalPackageCommand, error) {
	cmd := CreatePersonalPackageCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setParties(senderID, receiverID),
		cmd.setRetailPrice(retailPrice),
	); err != nil {
		return CreatePersonalPackageCommand{}, err
	}

	return cmd, nil
}

func (c CreatePersonalPackageCommand) Validate() error {
	return c.guard.Validate(ErrCreatePersonalPackageCommandIsNotConstructed)
}

func (c CreatePersonalPackageCommand) SenderID() kernel.UUID {
	return c.senderID
}

func (c CreatePersonalPackageCommand) ReceiverID() kernel.UUID {
	return c.receiverID
}

func (c CreatePersonalPackageCommand) RetailPrice() kernel.Money {
	return c.retailPrice
}

func (c *CreatePersonalPackageCommand) setParties(senderID, receiverID kernel.UUID) error {
	if err := errors.Join(senderID.Validate(), receiverID.Validate()); err != nil {
		return err
	}

	if senderID.IsEqual(receiverID) {
		return errs.NewValueIsInvalidErrorWithCause("receiverID", errors.New("sender and receiver must differ"))
	}

	c.senderID = senderID
	c.receiverID = receiverID
	return nil
}

func (c *CreatePersonalPackageCommand) setRetailPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}

	c.retailPrice = price
	return nil
}
