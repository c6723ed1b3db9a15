package parcel

import (
	"errors"
	"fmt"

	"forwarding/internal/pkg/errs"
)

// Status is the custody state of a package.
//
// State transitions (each step exactly +1, no skipping, no repeating):
//
//	Awaiting ──> InWarehouse ──> InTransit ──> Arrived ──> Delivered
//
// The prohibited flag is orthogonal to Status: it is kept on the Package and
// freezes every transition once set.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Awaiting is the initial status of a declared package that has not reached the warehouse.
	Awaiting

	// InWarehouse means staff checked the package in, measured and weighed it.
	InWarehouse

	// InTransit means the package left the warehouse as part of a race.
	InTransit

	// Arrived means the package reached the destination office.
	Arrived

	// Delivered is the final status.
	Delivered
)

var (
	// ErrInvalidTransition is the sentinel behind InvalidTransitionError.
	ErrInvalidTransition = errors.New("invalid status transition")
)

// InvalidTransitionError is returned when a status change is attempted out of
// order or repeated.
type InvalidTransitionError struct {
	From Status
	To   Status
}

func NewInvalidTransitionError(from, to Status) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, To: to}
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: %s -> %s", ErrInvalidTransition, e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:     "Unknown",
		Awaiting:    "Awaiting",
		InWarehouse: "InWarehouse",
		InTransit:   "InTransit",
		Arrived:     "Arrived",
		Delivered:   "Delivered",
	}
}

// Validate checks that s is one of Awaiting..Delivered.
// Values read from storage or requests should be validated before use.
func (s Status) Validate() error {
	if s < Awaiting || s > Delivered {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// RequiresStaff reports whether a reception record of this status must name
// the staff member who performed the step.
func (s Status) RequiresStaff() bool {
	return s == InWarehouse || s == InTransit || s == Arrived
}

// ValidateTransitionTo accepts only target == s+1.
//
// Example:
//
//	Awaiting.ValidateTransitionTo(InWarehouse) // nil
//	Awaiting.ValidateTransitionTo(Delivered)   // *InvalidTransitionError
//	Arrived.ValidateTransitionTo(Arrived)      // *InvalidTransitionError
func (s Status) ValidateTransitionTo(target Status) error {
	if err := errors.Join(s.Validate(), target.Validate()); err != nil {
		return err
	}

	if target != s+1 {
		return NewInvalidTransitionError(s, target)
	}

	return nil
}

// Next returns the status that follows s. Delivered has no successor.
func (s Status) Next() (Status, error) {
	if err := s.ValidateTransitionTo(s + 1); err != nil {
		if s == Delivered {
			return Unknown, NewInvalidTransitionError(s, s+1)
		}
		return Unknown, err
	}

	return s + 1, nil
}
