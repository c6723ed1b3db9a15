package ports

import (
	"context"
	"time"

	"forwarding/internal/core/domain/model/kernel"
)

// OutboxMessage is a domain event stored in the same transaction as the
// aggregate change that produced it.
type OutboxMessage struct {
	ID          kernel.UUID
	EventType   string
	AggregateID kernel.UUID
	Payload     []byte
	OccurredAt  time.Time
}

// OutboxRepository stores domain events for later publication.
type OutboxRepository interface {
	// Add serialises events and stores them as unpublished messages.
	Add(ctx context.Context, occurredAt time.Time, events ...kernel.DomainEvent) error

	// GetUnpublished returns up to limit unpublished messages, oldest first.
	GetUnpublished(ctx context.Context, limit int) ([]OutboxMessage, error)

	// MarkPublished records that the messages were delivered to the broker.
	MarkPublished(ctx context.Context, publishedAt time.Time, ids ...kernel.UUID) error
}

// EventPublisher delivers outbox messages to the message broker.
type EventPublisher interface {
	Publish(ctx context.Context, messages ...OutboxMessage) error
}
