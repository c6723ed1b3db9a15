// Package ports defines the contracts between the forwarding domain and its
// infrastructure: repositories, the transactional outbox, the event publisher,
// currency conversion and the clock.
package ports

import (
	"context"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/core/domain/model/parcel"
)

// PackageRepository defines the persistence contract for package aggregates,
// including their status history and measurements.
type PackageRepository interface {
	// Add persists a new package with its initial status.
	// Fails when the tracking code is already taken.
	Add(ctx context.Context, aggregate *parcel.Package) error

	// Update persists a changed package and appends the new status records.
	// The stored version must match aggregate.Version(); otherwise
	// errs.ErrVersionIsInvalid is returned and nothing is written.
	Update(ctx context.Context, aggregate *parcel.Package) error

	// Get retrieves a package by identifier.
	// Returns errs.ErrObjectNotFound when it does not exist.
	Get(ctx context.Context, id kernel.UUID) (*parcel.Package, error)

	// GetByTrackingCode retrieves a package by its tracking code.
	// Returns errs.ErrObjectNotFound when it does not exist.
	GetByTrackingCode(ctx context.Context, code kernel.TrackingCode) (*parcel.Package, error)
}
