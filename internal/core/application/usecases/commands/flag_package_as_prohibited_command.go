package commands

import (
	"errors"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/pkg/guard"
)

var (
	ErrFlagPackageAsProhibitedCommandIsNotConstructed = errors.New(
		"FlagPackageAsProhibitedCommand must be created via NewFlagPackageAsProhibitedCommand constructor",
	)
)

// FlagPackageAsProhibitedCommand stops a package whose contents may not be shipped.
type FlagPackageAsProhibitedCommand struct { //nolint:recvcheck //using for validation
	trackingCode kernel.TrackingCode

	guard guard.ConstructorGuard
}

func NewFlagPackageAsProhibitedCommand(trackingCode kernel.TrackingCode) (FlagPackageAsProhibitedCommand, error) {
	if err := trackingCode.Validate(); err != nil {
		return FlagPackageAsProhibitedCommand{}, err
	}

	return FlagPackageAsProhibitedCommand{
		trackingCode: trackingCode,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c FlagPackageAsProhibitedCommand) Validate() error {
	return c.guard.Validate(ErrFlagPackageAsProhibitedCommandIsNotConstructed)
}

func (c FlagPackageAsProhibitedCommand) TrackingCode() kernel.TrackingCode {
	return c.trackingCode
}
