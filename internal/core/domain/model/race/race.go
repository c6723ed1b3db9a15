package race

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/core/domain/model/parcel"
	"forwarding/internal/pkg/errs"
)

var (
	// ErrRaceIsNotConstructed is returned when a Race was not created through NewRace or RestoreRace.
	ErrRaceIsNotConstructed = errors.New("Race must be created via NewRace or RestoreRace")

	// ErrRaceAttachmentRejected is the sentinel behind RaceAttachmentRejectedError.
	ErrRaceAttachmentRejected = errors.New("package cannot be attached to the race")
)

// RaceAttachmentRejectedError is returned by AddPackage for a package that is
// not in the warehouse.
type RaceAttachmentRejectedError struct {
	RaceID    kernel.UUID
	PackageID kernel.UUID
	Status    parcel.Status
}

func NewRaceAttachmentRejectedError(raceID, packageID kernel.UUID, status parcel.Status) *RaceAttachmentRejectedError {
	return &RaceAttachmentRejectedError{RaceID: raceID, PackageID: packageID, Status: status}
}

func (e *RaceAttachmentRejectedError) Error() string {
	return fmt.Sprintf("%s: package %s is %s, race %s accepts only %s packages",
		ErrRaceAttachmentRejected, e.PackageID, e.Status, e.RaceID, parcel.InWarehouse)
}

func (e *RaceAttachmentRejectedError) Unwrap() error {
	return ErrRaceAttachmentRejected
}

// Race is a transport batch carrying packages from origin to destination.
// Scheduling rules are checked when a race is created or dispatched, not here.
type Race struct {
	id          kernel.UUID
	name        string
	origin      string
	destination string
	start       time.Time
	arrival     time.Time
	packageIDs  []kernel.UUID

	isConstructed bool
}

func NewRace(name, origin, destination string, start, arrival time.Time) (*Race, error) {
	return RestoreRace(kernel.NewUUID(), name, origin, destination, start, arrival, nil)
}

func RestoreRace(
	id kernel.UUID,
	name, origin, destination string,
	start, arrival time.Time,
	packageIDs []kernel.UUID,
) (*Race, error) {
	r := &Race{
		isConstructed: true,
	}

	if err := errors.Join(
		r.setID(id),
		r.setName(name),
		r.setRoute(origin, destination),
		r.setSchedule(start, arrival),
	); err != nil {
		return nil, err
	}

	r.packageIDs = slices.Clone(packageIDs)
	return r, nil
}

func (r *Race) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRaceIsNotConstructed
	}
	return nil
}

func (r *Race) ID() kernel.UUID {
	return r.id
}

func (r *Race) Name() string {
	return r.name
}

func (r *Race) Origin() string {
	return r.origin
}

func (r *Race) Destination() string {
	return r.destination
}

func (r *Race) Start() time.Time {
	return r.start
}

func (r *Race) Arrival() time.Time {
	return r.arrival
}

// PackageIDs returns a copy of the attached package identifiers in attachment order.
func (r *Race) PackageIDs() []kernel.UUID {
	return slices.Clone(r.packageIDs)
}

// HasStarted reports whether the race departed at or before now.
func (r *Race) HasStarted(now time.Time) bool {
	return !now.Before(r.start)
}

// AddPackage attaches a warehoused package. It is called by
// parcel.Package.SentToDestination, which then moves the package to InTransit.
func (r *Race) AddPackage(p *parcel.Package) error {
	if err := r.Validate(); err != nil {
		return err
	}

	if err := p.Validate(); err != nil {
		return err
	}

	if status := p.CurrentStatus(); status != parcel.InWarehouse {
		return NewRaceAttachmentRejectedError(r.id, p.ID(), status)
	}

	if slices.ContainsFunc(r.packageIDs, p.ID().IsEqual) {
		return NewRaceAttachmentRejectedError(r.id, p.ID(), p.CurrentStatus())
	}

	r.packageIDs = append(r.packageIDs, p.ID())
	return nil
}

func (r *Race) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	r.id = id
	return nil
}

func (r *Race) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}

	r.name = name
	return nil
}

func (r *Race) setRoute(origin, destination string) error {
	if strings.TrimSpace(origin) == "" {
		return errs.NewValueIsRequiredError("origin")
	}
	if strings.TrimSpace(destination) == "" {
		return errs.NewValueIsRequiredError("destination")
	}

	r.origin = origin
	r.destination = destination
	return nil
}

func (r *Race) setSchedule(start, arrival time.Time) error {
	if start.IsZero() {
		return errs.NewValueIsRequiredError("start")
	}
	if arrival.IsZero() {
		return errs.NewValueIsRequiredError("arrival")
	}

	r.start = start
	r.arrival = arrival
	return nil
}
