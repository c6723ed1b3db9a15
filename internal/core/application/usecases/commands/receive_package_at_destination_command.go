package commands

import (
	"errors"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/pkg/guard"
)

var (
	ErrReceivePackageAtDestinationCommandIsNotConstructed = errors.New(
		"ReceivePackageAtDestinationCommand must be created via NewReceivePackageAtDestinationCommand constructor",
	)
)

// ReceivePackageAtDestinationCommand records that the destination office received a package.
type ReceivePackageAtDestinationCommand struct { //nolint:recvcheck //using for validation
	staffID      kernel.UUID
	trackingCode kernel.TrackingCode

	guard guard.ConstructorGuard
}

func NewReceivePackageAtDestinationCommand(
	staffID kernel.UUID,
	trackingCode kernel.TrackingCode,
) (ReceivePackageAtDestinationCommand, error) {
	if err := errors.Join(staffID.Validate(), trackingCode.Validate()); err != nil {
		return ReceivePackageAtDestinationCommand{}, err
	}

	return ReceivePackageAtDestinationCommand{
		staffID:      staffID,
		trackingCode: trackingCode,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c ReceivePackageAtDestinationCommand) Validate() error {
	return c.guard.Validate(ErrReceivePackageAtDestinationCommandIsNotConstructed)
}

func (c ReceivePackageAtDestinationCommand) StaffID() kernel.UUID {
	return c.staffID
}

func (c ReceivePackageAtDestinationCommand) TrackingCode() kernel.TrackingCode {
	return c.trackingCode
}
