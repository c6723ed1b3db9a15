package ports

import (
	"context"

	"forwarding/internal/core/domain/model/account"
	"forwarding/internal/core/domain/model/kernel"
)

// UserRepository defines the persistence contract for user balances.
type UserRepository interface {
	Add(ctx context.Context, aggregate *account.User) error

	// Update persists the balance and address with optimistic concurrency,
	// like PackageRepository.Update.
	Update(ctx context.Context, aggregate *account.User) error

	// Get retrieves a user with the identifiers of the packages the user owns.
	Get(ctx context.Context, id kernel.UUID) (*account.User, error)
}
