// Package kafka publishes outbox messages to a Kafka topic.
package kafka

import (
	"context"
	"fmt"
	"time"

	"ordering/internal/core/ports"

	kafkago "github.com/segmentio/kafka-go"
)

// Message headers set on every published event.
const (
	HeaderEventID       = "event_id"
	HeaderEventName     = "event_name"
	HeaderAggregateType = "aggregate_type"
)

// EventPublisher writes outbox messages to one topic. Messages are keyed by
// aggregate id, so the events of one order keep their order within a partition.
type EventPublisher struct {
	writer *kafkago.Writer
	topic  string
}

func NewEventPublisher(brokers []string, topic string) *EventPublisher {
	return &EventPublisher{
		topic: topic,
		writer: &kafkago.Writer{
			Addr:                   kafkago.TCP(brokers...),
			Topic:                  topic,
			Balancer:               &kafkago.Hash{},
			RequiredAcks:           kafkago.RequireAll,
			AllowAutoTopicCreation: true,
			BatchTimeout:           10 * time.Millisecond,
		},
	}
}

// Publish blocks until the broker acknowledged the message or ctx ends.
func (p *EventPublisher) Publish(ctx context.Context, message ports.OutboxMessage) error {
	msg := kafkago.Message{
		Key:   []byte(message.AggregateID),
		Value: message.Payload,
		Time:  message.OccurredOn,
		Headers: []kafkago.Header{
			{Key: HeaderEventID, Value: []byte(message.ID.String())},
			{Key: HeaderEventName, Value: []byte(message.EventName)},
			{Key: HeaderAggregateType, Value: []byte(message.AggregateType)},
		},
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("publish %s %s to %s: %w", message.EventName, message.ID, p.topic, err)
	}
	return nil
}

func (p *EventPublisher) Close() error {
	return p.writer.Close()
}
