// Package logpublisher is an EventPublisher that writes events to the log. It
// is used when no message broker is configured.
package logpublisher

import (
	"context"
	"log/slog"

	"ordering/internal/core/ports"
)

type EventPublisher struct {
	logger *slog.Logger
}

func NewEventPublisher(logger *slog.Logger) *EventPublisher {
	return &EventPublisher{
		logger: logger.With("component", "log_publisher"),
	}
}

// Publish logs the message at info level and never fails.
func (p *EventPublisher) Publish(ctx context.Context, message ports.OutboxMessage) error {
	p.logger.InfoContext(ctx, "domain event published",
		"event_id", message.ID.String(),
		"event_name", message.EventName,
		"aggregate_type", message.AggregateType,
		"aggregate_id", message.AggregateID,
		"occurred_on", message.OccurredOn,
		"retry_count", message.RetryCount,
		"payload", string(message.Payload),
	)
	return nil
}
