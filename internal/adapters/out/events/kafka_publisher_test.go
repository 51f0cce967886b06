package events_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"laundry/internal/adapters/out/events"
	"laundry/internal/core/domain/model/access"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/ports"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockWriter struct{ mock.Mock }

func (m *MockWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	return m.Called(ctx, msgs).Error(0)
}

func (m *MockWriter) Close() error {
	return m.Called().Error(0)
}

func TestKafkaPublisher_PublishOrderChanged(t *testing.T) {
	event := ports.OrderChanged{
		OrderID:   kernel.NewUUID(),
		Number:    "LD-20261019-000011",
		Kind:      ports.ChangeStatusChanged,
		From:      order.Ready,
		To:        order.Delivered,
		ActorID:   kernel.NewUUID(),
		ActorRole: access.Admin,
		Override:  true,
		Version:   7,
		At:        time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC),
	}

	writer := &MockWriter{}
	var sent []kafka.Message
	writer.On("WriteMessages", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { sent = args.Get(1).([]kafka.Message) }).
		Return(nil).Once()

	require.NoError(t, events.NewKafkaPublisher(writer).PublishOrderChanged(t.Context(), event))
	require.Len(t, sent, 1)
	assert.Equal(t, event.OrderID.String(), string(sent[0].Key))

	var body events.Message
	require.NoError(t, json.Unmarshal(sent[0].Value, &body))
	assert.Equal(t, events.EventType, body.Type)
	assert.Equal(t, "status_changed", body.Kind)
	assert.Equal(t, "READY", body.From)
	assert.Equal(t, "DELIVERED", body.To)
	assert.True(t, body.Override)
	assert.Equal(t, int64(7), body.Version)
	assert.NotEmpty(t, body.EventID)
}

func TestKafkaPublisher_PlacedHasNoFromStatus(t *testing.T) {
	writer := &MockWriter{}
	var sent []kafka.Message
	writer.On("WriteMessages", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { sent = args.Get(1).([]kafka.Message) }).
		Return(nil).Once()

	err := events.NewKafkaPublisher(writer).PublishOrderChanged(t.Context(), ports.OrderChanged{
		OrderID: kernel.NewUUID(),
		Kind:    ports.ChangePlaced,
		From:    order.Unknown,
		To:      order.Placed,
	})
	require.NoError(t, err)

	var body events.Message
	require.NoError(t, json.Unmarshal(sent[0].Value, &body))
	assert.Empty(t, body.From)
	assert.Equal(t, "PLACED", body.To)
}

func TestKafkaPublisher_WriteError(t *testing.T) {
	writer := &MockWriter{}
	writer.On("WriteMessages", mock.Anything, mock.Anything).Return(errors.New("leader not available")).Once()

	err := events.NewKafkaPublisher(writer).PublishOrderChanged(t.Context(), ports.OrderChanged{OrderID: kernel.NewUUID()})
	require.EqualError(t, err, "leader not available")
}
