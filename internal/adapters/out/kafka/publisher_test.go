package kafka_test

import (
	"context"
	"errors"
	"testing"
	"time"

	kafkaadapter "forwarding/internal/adapters/out/kafka"
	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/core/ports"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockMessageWriter struct {
	mock.Mock
}

func (m *MockMessageWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	args := m.Called(ctx, msgs)
	return args.Error(0)
}

func (m *MockMessageWriter) Close() error {
	return m.Called().Error(0)
}

func outboxMessage(eventType string) ports.OutboxMessage {
	return ports.OutboxMessage{
		ID:          kernel.NewUUID(),
		EventType:   eventType,
		AggregateID: kernel.NewUUID(),
		Payload:     []byte(`{"packageId":"x"}`),
		OccurredAt:  time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestPublisher_Publish(t *testing.T) {
	t.Run("writes one keyed message per outbox message", func(t *testing.T) {
		// Given
		writer := new(MockMessageWriter)
		first := outboxMessage("PackageDelivered")
		second := outboxMessage("UserBalanceTopUp")
		writer.On("WriteMessages", mock.Anything, mock.Anything).Return(nil).Once()

		// When
		err := kafkaadapter.NewPublisherWithWriter(writer).Publish(t.Context(), first, second)

		// Then
		require.NoError(t, err)
		written := writer.Calls[0].Arguments[1].([]kafka.Message)
		require.Len(t, written, 2)

		assert.Equal(t, first.AggregateID.String(), string(written[0].Key))
		assert.Equal(t, first.Payload, written[0].Value)
		assert.Equal(t, first.OccurredAt, written[0].Time)
		assert.Equal(t, []kafka.Header{
			{Key: kafkaadapter.HeaderEventType, Value: []byte("PackageDelivered")},
			{Key: kafkaadapter.HeaderMessageID, Value: []byte(first.ID.String())},
		}, written[0].Headers)
		assert.Equal(t, second.AggregateID.String(), string(written[1].Key))
		writer.AssertExpectations(t)
	})

	t.Run("returns the write error", func(t *testing.T) {
		writer := new(MockMessageWriter)
		writeErr := errors.New("leader not available")
		writer.On("WriteMessages", mock.Anything, mock.Anything).Return(writeErr).Once()

		err := kafkaadapter.NewPublisherWithWriter(writer).Publish(t.Context(), outboxMessage("PackageDelivered"))

		require.ErrorIs(t, err, writeErr)
	})

	t.Run("empty batch does not touch the writer", func(t *testing.T) {
		writer := new(MockMessageWriter)

		err := kafkaadapter.NewPublisherWithWriter(writer).Publish(t.Context())

		require.NoError(t, err)
		writer.AssertNotCalled(t, "WriteMessages", mock.Anything, mock.Anything)
	})
}

func TestPublisher_Close(t *testing.T) {
	writer := new(MockMessageWriter)
	writer.On("Close").Return(nil).Once()

	require.NoError(t, kafkaadapter.NewPublisherWithWriter(writer).Close())
	writer.AssertExpectations(t)
}
