// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries read the tables directly and return read models, not aggregates.
package queries

import (
	"errors"
	"time"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/core/domain/model/parcel"
	"forwarding/internal/pkg/errs"
	"forwarding/internal/pkg/guard"
)

const (
	minTrackingCodeLength = 10
	maxTrackingCodeLength = 64
)

var (
	ErrGetPackageByTrackingCodeQueryIsNotConstructed = errors.New(
		"GetPackageByTrackingCodeQuery must be created via NewGetPackageByTrackingCodeQuery constructor",
	)
)

// GetPackageByTrackingCodeQuery looks a package up by the code printed on its label.
//
// Example:
//
//	query, err := NewGetPackageByTrackingCodeQuery("1Z999AA10123456784")
//	if err != nil {
//	    return err
//	}
//	view, err := handler.Handle(ctx, query)
type GetPackageByTrackingCodeQuery struct { //nolint:recvcheck //using for validation
	trackingCode kernel.TrackingCode
	guard        guard.ConstructorGuard
}

// NewGetPackageByTrackingCodeQuery accepts codes of 10 to 64 characters that
// match a known carrier format.
func NewGetPackageByTrackingCodeQuery(trackingCode string) (GetPackageByTrackingCodeQuery, error) {
	q := GetPackageByTrackingCodeQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := q.setTrackingCode(trackingCode); err != nil {
		return GetPackageByTrackingCodeQuery{}, err
	}

	return q, nil
}

func (q GetPackageByTrackingCodeQuery) Validate() error {
	return q.guard.Validate(ErrGetPackageByTrackingCodeQueryIsNotConstructed)
}

func (q GetPackageByTrackingCodeQuery) TrackingCode() kernel.TrackingCode {
	return q.trackingCode
}

func (q *GetPackageByTrackingCodeQuery) setTrackingCode(code string) error {
	if n := len(code); n < minTrackingCodeLength || n > maxTrackingCodeLength {
		return errs.NewValueIsOutOfRangeError("trackingCode length", n, minTrackingCodeLength, maxTrackingCodeLength)
	}

	tc, err := kernel.NewTrackingCode(code)
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("trackingCode", err)
	}

	q.trackingCode = tc
	return nil
}

// GetPackageByTrackingCodeQueryResponse is the package read model shown to
// customers and staff.
type GetPackageByTrackingCodeQueryResponse struct {
	ID            kernel.UUID
	TrackingCode  string
	Category      parcel.Category
	Description   string
	ItemCount     int
	OwnerID       kernel.UUID
	Status        parcel.Status
	HouseDelivery bool
	IsPaid        bool
	IsProhibited  bool
	RaceID        *kernel.UUID

	// ShippingPrice is nil until the package has been measured at the warehouse.
	ShippingPrice *kernel.Money

	// History lists the reception records oldest first.
	History []ReceptionStatusView
}

// ReceptionStatusView is one entry of the package history.
type ReceptionStatusView struct {
	Status  parcel.Status
	StaffID *kernel.UUID
	Date    time.Time
}
