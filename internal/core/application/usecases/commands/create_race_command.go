package commands

import (
	"errors"
	"fmt"
	"time"

	"forwarding/internal/pkg/errs"
	"forwarding/internal/pkg/guard"
)

const (
	maxRaceNameLength     = 32
	maxRaceLocationLength = 16
)

var (
	ErrCreateRaceCommandIsNotConstructed = errors.New(
		"CreateRaceCommand must be created via NewCreateRaceCommand constructor",
	)
)

// CreateRaceCommand schedules a new transport batch.
type CreateRaceCommand struct { //nolint:recvcheck //using for validation
	name        string
	origin      string
	destination string
	start       time.Time
	arrival     time.Time

	guard guard.ConstructorGuard
}

// NewCreateRaceCommand validates lengths and that the arrival follows the start.
// Whether the start lies in the future is checked by the handler against its clock.
func NewCreateRaceCommand(name, origin, destination string, start, arrival time.Time) (CreateRaceCommand, error) {
	cmd := CreateRaceCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setName(name),
		cmd.setRoute(origin, destination),
		cmd.setSchedule(start, arrival),
	); err != nil {
		return CreateRaceCommand{}, err
	}

	return cmd, nil
}

func (c CreateRaceCommand) Validate() error {
	return c.guard.Validate(ErrCreateRaceCommandIsNotConstructed)
}

func (c CreateRaceCommand) Name() string {
	return c.name
}

func (c CreateRaceCommand) Origin() string {
	return c.origin
}

func (c CreateRaceCommand) Destination() string {
	return c.destination
}

func (c CreateRaceCommand) Start() time.Time {
	return c.start
}

func (c CreateRaceCommand) Arrival() time.Time {
	return c.arrival
}

func (c *CreateRaceCommand) setName(name string) error {
	if err := maxLengthString("name", name, maxRaceNameLength); err != nil {
		return err
	}

	c.name = name
	return nil
}

func (c *CreateRaceCommand) setRoute(origin, destination string) error {
	if err := errors.Join(
		maxLengthString("origin", origin, maxRaceLocationLength),
		maxLengthString("destination", destination, maxRaceLocationLength),
	); err != nil {
		return err
	}

	c.origin = origin
	c.destination = destination
	return nil
}

func (c *CreateRaceCommand) setSchedule(start, arrival time.Time) error {
	if start.IsZero() {
		return errs.NewValueIsRequiredError("start")
	}

	if !arrival.After(start) {
		return errs.NewValueIsInvalidErrorWithCause("arrival", fmt.Errorf("%s is not after start %s",
			arrival.Format(time.RFC3339), start.Format(time.RFC3339)))
	}

	c.start = start.UTC()
	c.arrival = arrival.UTC()
	return nil
}
