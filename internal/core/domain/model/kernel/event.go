package kernel

// DomainEvent is a plain data record returned by aggregate mutations. Callers
// decide when and where to dispatch it; aggregates never keep pending events.
type DomainEvent interface {
	// EventType is the stable name used as the outbox and broker message type.
	EventType() string
	// AggregateID identifies the aggregate the event is about and keys broker partitions.
	AggregateID() UUID
}
