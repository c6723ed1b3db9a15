package ports

import (
	"context"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/core/domain/model/race"
)

// RaceRepository defines the persistence contract for races.
// Attached packages are stored on the package side, so a race is never updated.
type RaceRepository interface {
	// Add persists a new race. Race names are unique.
	Add(ctx context.Context, aggregate *race.Race) error

	// Get retrieves a race with the identifiers of its packages.
	Get(ctx context.Context, id kernel.UUID) (*race.Race, error)

	// ExistsByName reports whether a race with the name was already created.
	ExistsByName(ctx context.Context, name string) (bool, error)
}
