// Package events publishes committed workflow changes to Kafka for the
// ticket and SLA subsystem.
package events

import (
	"context"
	"encoding/json"
	"time"

	"laundry/internal/core/ports"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

const EventType = "OrderStatusChanged"

var _ ports.EventPublisher = (*KafkaPublisher)(nil)

// MessageWriter is the part of *kafka.Writer the publisher uses.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Message is the JSON body of an order change. Consumers key on order_id and
// order by version.
type Message struct {
	EventID    string    `json:"event_id"`
	Type       string    `json:"type"`
	Kind       string    `json:"kind"`
	OrderID    string    `json:"order_id"`
	Number     string    `json:"number"`
	From       string    `json:"from"`
	To         string    `json:"to"`
	ActorID    string    `json:"actor_id"`
	ActorRole  string    `json:"actor_role"`
	Override   bool      `json:"override"`
	Version    int64     `json:"version"`
	OccurredAt time.Time `json:"occurred_at"`
}

type KafkaPublisher struct {
	writer MessageWriter
}

// NewKafkaWriter builds a writer that hashes on the message key, so all
// changes of one order land on one partition in commit order.
func NewKafkaWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireAll,
		AllowAutoTopicCreation: true,
	}
}

func NewKafkaPublisher(writer MessageWriter) *KafkaPublisher {
	return &KafkaPublisher{writer: writer}
}

func (p *KafkaPublisher) PublishOrderChanged(ctx context.Context, event ports.OrderChanged) error {
	body, err := json.Marshal(toMessage(event))
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.OrderID.String()),
		Value: body,
		Headers: []kafka.Header{
			{Key: "event-type", Value: []byte(EventType)},
		},
		Time: event.At,
	})
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

func toMessage(e ports.OrderChanged) Message {
	from := ""
	if e.From.Validate() == nil {
		from = e.From.String()
	}
	return Message{
		EventID:    uuid.NewString(),
		Type:       EventType,
		Kind:       string(e.Kind),
		OrderID:    e.OrderID.String(),
		Number:     e.Number,
		From:       from,
		To:         e.To.String(),
		ActorID:    e.ActorID.String(),
		ActorRole:  e.ActorRole.String(),
		Override:   e.Override,
		Version:    e.Version,
		OccurredAt: e.At.UTC(),
	}
}

// Discard drops every event. It stands in when no brokers are configured.
type Discard struct{}

func (Discard) PublishOrderChanged(context.Context, ports.OrderChanged) error {
	return nil
}
