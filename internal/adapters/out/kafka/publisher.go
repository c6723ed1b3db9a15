// Package kafka publishes outbox messages to a Kafka topic.
//
// Messages are keyed by aggregate id so the events of one package or user
// keep their order within a partition. The event type and outbox id travel as
// headers; the value is the JSON payload stored in the outbox.
package kafka

import (
	"context"
	"time"

	"forwarding/internal/core/ports"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/segmentio/kafka-go"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	HeaderEventType = "event-type"
	HeaderMessageID = "message-id"
)

var (
	messagesPublished = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "forwarding",
		Subsystem: "kafka_publisher",
		Name:      "messages_published_total",
		Help:      "Outbox messages written to Kafka.",
	}, []string{"event_type"})

	publishErrors = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "forwarding",
		Subsystem: "kafka_publisher",
		Name:      "publish_errors_total",
		Help:      "Failed batch writes to Kafka.",
	})
)

// MessageWriter is the part of *kafka.Writer the publisher uses.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Config describes the target topic.
type Config struct {
	Brokers      []string
	Topic        string
	BatchTimeout time.Duration
}

// Publisher implements ports.EventPublisher.
type Publisher struct {
	writer MessageWriter
	tracer trace.Tracer
}

// NewPublisher creates a publisher writing to cfg.Topic with hash balancing on the key.
func NewPublisher(cfg Config) *Publisher {
	return NewPublisherWithWriter(&kafka.Writer{
		Addr:                   kafka.TCP(cfg.Brokers...),
		Topic:                  cfg.Topic,
		Balancer:               &kafka.Hash{},
		BatchTimeout:           cfg.BatchTimeout,
		RequiredAcks:           kafka.RequireAll,
		AllowAutoTopicCreation: true,
	})
}

func NewPublisherWithWriter(writer MessageWriter) *Publisher {
	return &Publisher{
		writer: writer,
		tracer: otel.Tracer("forwarding/kafka"),
	}
}

// Publish writes all messages in one batch. Either every message is
// acknowledged or an error is returned and the batch must be retried.
func (p *Publisher) Publish(ctx context.Context, messages ...ports.OutboxMessage) error {
	if len(messages) == 0 {
		return nil
	}

	ctx, span := p.tracer.Start(ctx, "kafka.publish",
		trace.WithSpanKind(trace.SpanKindProducer),
		trace.WithAttributes(attribute.Int("messaging.batch.message_count", len(messages))),
	)
	defer span.End()

	batch := make([]kafka.Message, 0, len(messages))
	for _, m := range messages {
		batch = append(batch, toKafkaMessage(m))
	}

	if err := p.writer.WriteMessages(ctx, batch...); err != nil {
		publishErrors.Inc()
		span.RecordError(err)
		span.SetStatus(codes.Error, "write failed")
		return err
	}

	for _, m := range messages {
		messagesPublished.WithLabelValues(m.EventType).Inc()
	}

	return nil
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}

func toKafkaMessage(m ports.OutboxMessage) kafka.Message {
	return kafka.Message{
		Key:   []byte(m.AggregateID.String()),
		Value: m.Payload,
		Time:  m.OccurredAt,
		Headers: []kafka.Header{
			{Key: HeaderEventType, Value: []byte(m.EventType)},
			{Key: HeaderMessageID, Value: []byte(m.ID.String())},
		},
	}
}
