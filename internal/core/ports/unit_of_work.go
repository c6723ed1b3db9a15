package ports

import (
	"context"
)

// UnitOfWorkFactory hands out one UnitOfWork per command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork spans one database transaction. Aggregates and the outbox
// messages they produce are written through the repositories it returns and
// become visible together on Commit.
type UnitOfWork interface {
	Begin(ctx context.Context) error

	// Commit fails when no transaction is active.
	Commit(ctx context.Context) error

	// Rollback fails when no transaction is active, so a deferred Rollback
	// after a successful Commit is harmless.
	Rollback(ctx context.Context) error

	PackageRepository() PackageRepository
	RaceRepository() RaceRepository
	UserRepository() UserRepository
	OutboxRepository() OutboxRepository
}
