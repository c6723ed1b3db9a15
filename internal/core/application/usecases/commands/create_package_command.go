package commands

import (
	"errors"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/core/domain/model/parcel"
	"forwarding/internal/pkg/guard"
)

var (
	ErrCreatePackageCommandIsNotConstructed = errors.New(
		"CreatePackageCommand must be created via NewCreatePackageCommand constructor",
	)
)

// CreatePackageCommand declares a package a customer expects at the warehouse.
//
// Example:
//
//	retail, _ := kernel.NewMoney(kernel.USD, 4999)
//	cmd, err := NewCreatePackageCommand(ownerID, parcel.Declaration{
//	    Category:    parcel.Electronics,
//	    Description: "Headphones",
//	    RetailPrice: retail,
//	    ItemCount:   1,
//	})
//	if err != nil {
//	    return fmt.Errorf("invalid declaration: %w", err)
//	}
//
//	result, err := handler.Handle(ctx, cmd)
type CreatePackageCommand struct { //nolint:recvcheck //using for validation
	ownerID     kernel.UUID
	declaration parcel.Declaration

	guard guard.ConstructorGuard
}

// NewCreatePackageCommand validates the owner identifier and the fields of the
// declaration that can be checked without storage. Tracking code uniqueness and
// the house delivery address are checked by the handler.
func NewCreatePackageCommand(ownerID kernel.UUID, declaration parcel.Declaration) (CreatePackageCommand, error) {
	cmd := CreatePackageCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOwnerID(ownerID),
		cmd.setDeclaration(declaration),
	); err != nil {
		return CreatePackageCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreatePackageCommand) Validate() error {
	return c.guard.Validate(ErrCreatePackageCommandIsNotConstructed)
}

func (c CreatePackageCommand) OwnerID() kernel.UUID {
	return c.ownerID
}

func (c CreatePackageCommand) Declaration() parcel.Declaration {
	return c.declaration
}

func (c *CreatePackageCommand) setOwnerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.ownerID = id
	return nil
}

func (c *CreatePackageCommand) setDeclaration(d parcel.Declaration) error {
	var tracking error
	if d.TrackingCode != nil {
		tracking = d.TrackingCode.Validate()
	}

	if err := errors.Join(
		tracking,
		d.Category.Validate(),
		d.RetailPrice.Validate(),
		requiredString("description", d.Description),
		positiveInt("itemCount", d.ItemCount),
	); err != nil {
		return err
	}

	c.declaration = d
	return nil
}
