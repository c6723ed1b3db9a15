// Package outboxrepo stores domain events in the same transaction as the
// aggregates that produced them, for later relay to the broker.
package outboxrepo

import (
	"encoding/json"
	"fmt"
	"time"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/core/ports"

	"github.com/google/uuid"
)

// OutboxMessageDTO is a row of the outbox_messages table.
type OutboxMessageDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	EventType   string     `gorm:"type:varchar(128);not null"`
	AggregateID uuid.UUID  `gorm:"type:uuid;not null;index"`
	Payload     []byte     `gorm:"type:jsonb;not null"`
	OccurredAt  time.Time  `gorm:"type:timestamptz;not null;index"`
	PublishedAt *time.Time `gorm:"type:timestamptz;index"`
}

func (OutboxMessageDTO) TableName() string {
	return "outbox_messages"
}

func fromEvent(event kernel.DomainEvent, occurredAt time.Time) (OutboxMessageDTO, error) {
	payload, err := json.Marshal(event)
	if err != nil {
		return OutboxMessageDTO{}, fmt.Errorf("marshal %s: %w", event.EventType(), err)
	}

	return OutboxMessageDTO{
		ID:          kernel.NewUUID().Bytes(),
		EventType:   event.EventType(),
		AggregateID: event.AggregateID().Bytes(),
		Payload:     payload,
		OccurredAt:  occurredAt.UTC(),
	}, nil
}

func toMessage(dto OutboxMessageDTO) (ports.OutboxMessage, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return ports.OutboxMessage{}, err
	}

	aggregateID, err := kernel.UUIDFromBytes(dto.AggregateID[:])
	if err != nil {
		return ports.OutboxMessage{}, err
	}

	return ports.OutboxMessage{
		ID:          id,
		EventType:   dto.EventType,
		AggregateID: aggregateID,
		Payload:     dto.Payload,
		OccurredAt:  dto.OccurredAt,
	}, nil
}
