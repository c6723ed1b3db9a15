package parcel

import (
	"errors"
	"fmt"
	"time"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/pkg/errs"
	"forwarding/internal/pkg/guard"
)

// ErrReceptionStatusIsNotConstructed is returned when a zero value ReceptionStatus is used.
var ErrReceptionStatusIsNotConstructed = errs.NewValueIsRequiredError(
	"reception status must be created by a Package transition or RestoreReceptionStatus")

// ReceptionStatus records one lifecycle step of a package: which status was
// reached, when, and (for warehouse, dispatch and destination steps) which
// staff member performed it. Records are created once per transition and never
// change afterwards.
type ReceptionStatus struct { //nolint:recvcheck //using for validation
	id        kernel.UUID
	packageID kernel.UUID
	status    Status
	staffID   *kernel.UUID
	date      time.Time
	guard     guard.ConstructorGuard
}

func newReceptionStatus(packageID kernel.UUID, status Status, staffID *kernel.UUID, date time.Time) (ReceptionStatus, error) {
	return RestoreReceptionStatus(kernel.NewUUID(), packageID, status, staffID, date)
}

// RestoreReceptionStatus rebuilds a stored record. Staff must be present exactly
// for InWarehouse, InTransit and Arrived.
func RestoreReceptionStatus(
	id kernel.UUID,
	packageID kernel.UUID,
	status Status,
	staffID *kernel.UUID,
	date time.Time,
) (ReceptionStatus, error) {
	rs := ReceptionStatus{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		rs.setID(id),
		rs.setPackageID(packageID),
		rs.setStatus(status),
		rs.setDate(date),
	); err != nil {
		return ReceptionStatus{}, err
	}

	if err := rs.setStaffID(staffID); err != nil {
		return ReceptionStatus{}, err
	}

	return rs, nil
}

// Validate returns ErrReceptionStatusIsNotConstructed for the zero value.
func (rs ReceptionStatus) Validate() error {
	return rs.guard.Validate(ErrReceptionStatusIsNotConstructed)
}

func (rs ReceptionStatus) ID() kernel.UUID {
	return rs.id
}

func (rs ReceptionStatus) PackageID() kernel.UUID {
	return rs.packageID
}

func (rs ReceptionStatus) Status() Status {
	return rs.status
}

// StaffID returns the staff member who performed the step, or nil for Awaiting and Delivered.
func (rs ReceptionStatus) StaffID() *kernel.UUID {
	if rs.staffID == nil {
		return nil
	}
	id := *rs.staffID
	return &id
}

func (rs ReceptionStatus) Date() time.Time {
	return rs.date
}

func (rs *ReceptionStatus) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	rs.id = id
	return nil
}

func (rs *ReceptionStatus) setPackageID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	rs.packageID = id
	return nil
}

func (rs *ReceptionStatus) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	rs.status = status
	return nil
}

func (rs *ReceptionStatus) setDate(date time.Time) error {
	if date.IsZero() {
		return errs.NewValueIsRequiredError("date")
	}

	rs.date = date
	return nil
}

func (rs *ReceptionStatus) setStaffID(staffID *kernel.UUID) error {
	if rs.status.RequiresStaff() {
		if staffID == nil {
			return errs.NewValueIsRequiredErrorWithCause(
				"staffID",
				fmt.Errorf("%s status must name the staff member", rs.status),
			)
		}
		if err := staffID.Validate(); err != nil {
			return err
		}

		id := *staffID
		rs.staffID = &id
		return nil
	}

	if staffID != nil {
		return errs.NewValueIsInvalidErrorWithCause(
			"staffID",
			fmt.Errorf("%s status must not name a staff member", rs.status),
		)
	}

	return nil
}
