package commands

import (
	"context"
	"log/slog"

	"ordering/internal/core/ports"
)

// PublishOutboxEventsResult counts the outcome of one relay batch.
type PublishOutboxEventsResult struct {
	Published int
	Failed    int
}

// PublishOutboxEventsCommandHandler hands pending outbox messages to an
// EventPublisher. The batch is fetched and settled in one transaction, so a
// crash before commit leaves every message pending and it is published again
// on the next run. Consumers must tolerate duplicates.
type PublishOutboxEventsCommandHandler struct {
	uowFactory OutboxUoWFactory
	publisher  ports.EventPublisher
	logger     *slog.Logger
}

func NewPublishOutboxEventsCommandHandler(
	uowFactory OutboxUoWFactory,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) PublishOutboxEventsCommandHandler {
	return PublishOutboxEventsCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     logger.With("component", "outbox_relay"),
	}
}

// Handle publishes up to BatchSize messages in occurrence order. A failed
// publish does not stop the batch; the message is marked failed and retried
// on a later run until MaxRetries is reached.
func (h *PublishOutboxEventsCommandHandler) Handle(
	ctx context.Context,
	cmd PublishOutboxEventsCommand,
) (PublishOutboxEventsResult, error) {
	var result PublishOutboxEventsResult
	if err := cmd.Validate(); err != nil {
		return result, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return result, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	outboxRepo := uow.OutboxRepository()
	messages, err := outboxRepo.GetPending(ctx, cmd.BatchSize())
	if err != nil {
		return result, err
	}
	if len(messages) == 0 {
		return result, nil
	}

	for _, message := range messages {
		if publishErr := h.publisher.Publish(ctx, message); publishErr != nil {
			h.logger.WarnContext(ctx, "Outbox message publish failed",
				"message_id", message.ID,
				"event_name", message.EventName,
				"retry_count", message.RetryCount,
				"error", publishErr,
			)
			if err = outboxRepo.MarkFailed(ctx, message.ID, cmd.MaxRetries()); err != nil {
				return result, err
			}
			result.Failed++
			continue
		}

		if err = outboxRepo.MarkPublished(ctx, message.ID); err != nil {
			return result, err
		}
		result.Published++
	}

	if err = uow.Commit(ctx); err != nil {
		return PublishOutboxEventsResult{}, err
	}

	return result, nil
}
