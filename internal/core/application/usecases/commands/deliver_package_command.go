package commands

import (
	"errors"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/pkg/guard"
)

var (
	ErrDeliverPackageCommandIsNotConstructed = errors.New(
		"DeliverPackageCommand must be created via NewDeliverPackageCommand constructor",
	)
)

// DeliverPackageCommand hands an arrived package over to its owner.
type DeliverPackageCommand struct { //nolint:recvcheck //using for validation
	packageID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeliverPackageCommand(packageID kernel.UUID) (DeliverPackageCommand, error) {
	if err := packageID.Validate(); err != nil {
		return DeliverPackageCommand{}, err
	}

	return DeliverPackageCommand{
		packageID: packageID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c DeliverPackageCommand) Validate() error {
	return c.guard.Validate(ErrDeliverPackageCommandIsNotConstructed)
}

func (c DeliverPackageCommand) PackageID() kernel.UUID {
	return c.packageID
}
