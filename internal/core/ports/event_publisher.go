package ports

import "context"

// EventPublisher delivers outbox messages to the outside world.
type EventPublisher interface {
	Publish(ctx context.Context, message OutboxMessage) error
}
