package ports

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// OutboxMessage is a domain event stored in the transactional outbox, waiting to
// be handed to an EventPublisher.
type OutboxMessage struct {
	ID            uuid.UUID
	AggregateType string
	AggregateID   string
	EventName     string
	// Payload is the JSON envelope of the event.
	Payload    []byte
	OccurredOn time.Time
	RetryCount int
}

// OutboxRepository reads and settles pending outbox messages. Messages are
// written by the unit of work on commit, never through this interface.
type OutboxRepository interface {
	// GetPending returns up to limit pending messages, oldest first. Rows are
	// locked with SKIP LOCKED so concurrent relays do not pick the same batch.
	GetPending(ctx context.Context, limit int) ([]OutboxMessage, error)

	// MarkPublished settles a message after successful delivery.
	MarkPublished(ctx context.Context, id uuid.UUID) error

	// MarkFailed increments the retry count. A message reaching maxRetries is
	// moved to the failed state and never picked again.
	MarkFailed(ctx context.Context, id uuid.UUID, maxRetries int) error
}
