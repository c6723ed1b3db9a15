package commands

import (
	"errors"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/pkg/guard"
)

var (
	ErrSendPackageToDestinationCommandIsNotConstructed = errors.New(
		"SendPackageToDestinationCommand must be created via NewSendPackageToDestinationCommand constructor",
	)
)

// SendPackageToDestinationCommand loads a warehoused package onto a race.
type SendPackageToDestinationCommand struct { //nolint:recvcheck //using for validation
	staffID   kernel.UUID
	packageID kernel.UUID
	raceID    kernel.UUID

	guard guard.ConstructorGuard
}

func NewSendPackageToDestinationCommand(staffID, packageID, raceID kernel.UUID) (SendPackageToDestinationCommand, error) {
	if err := errors.Join(staffID.Validate(), packageID.Validate(), raceID.Validate()); err != nil {
		return SendPackageToDestinationCommand{}, err
	}

	return SendPackageToDestinationCommand{
		staffID:   staffID,
		packageID: packageID,
		raceID:    raceID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c SendPackageToDestinationCommand) Validate() error {
	return c.guard.Validate(ErrSendPackageToDestinationCommandIsNotConstructed)
}

func (c SendPackageToDestinationCommand) StaffID() kernel.UUID {
	return c.staffID
}

func (c SendPackageToDestinationCommand) PackageID() kernel.UUID {
	return c.packageID
}

func (c SendPackageToDestinationCommand) RaceID() kernel.UUID {
	return c.raceID
}
