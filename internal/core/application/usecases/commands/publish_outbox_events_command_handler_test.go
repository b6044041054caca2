package commands_test

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/ports"
	"ordering/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func outboxMessage(eventName string) ports.OutboxMessage {
	return ports.OutboxMessage{
		ID:            uuid.New(),
		AggregateType: "Order",
		AggregateID:   "42",
		EventName:     eventName,
		Payload:       []byte(`{}`),
	}
}

func TestNewPublishOutboxEventsCommand(t *testing.T) {
	cmd, err := commands.NewPublishOutboxEventsCommand(100, 5)
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, 100, cmd.BatchSize())
	assert.Equal(t, 5, cmd.MaxRetries())

	_, err = commands.NewPublishOutboxEventsCommand(0, 101)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	assert.Contains(t, err.Error(), "batch size is 0")
	assert.Contains(t, err.Error(), "max retries is 101")

	_, err = commands.NewPublishOutboxEventsCommand(commands.MaxOutboxBatchSize+1, 1)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}

func TestPublishOutboxEventsCommandHandler_Handle_PublishesBatch(t *testing.T) {
	ctx := t.Context()
	created := outboxMessage("OrderCreated")
	paid := outboxMessage("OrderPaid")
	cmd, _ := commands.NewPublishOutboxEventsCommand(10, 3)

	repo := new(MockOutboxRepository)
	publisher := new(MockEventPublisher)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OutboxRepository").Return(repo).Once(),
		repo.On("GetPending", ctx, 10).Return([]ports.OutboxMessage{created, paid}, nil).Once(),
		publisher.On("Publish", ctx, created).Return(nil).Once(),
		repo.On("MarkPublished", ctx, created.ID).Return(nil).Once(),
		publisher.On("Publish", ctx, paid).Return(nil).Once(),
		repo.On("MarkPublished", ctx, paid.ID).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockOutboxUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPublishOutboxEventsCommandHandler(factory, publisher, discardLogger())
	result, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, commands.PublishOutboxEventsResult{Published: 2}, result)
	repo.AssertExpectations(t)
	publisher.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestPublishOutboxEventsCommandHandler_Handle_ContinuesAfterFailure(t *testing.T) {
	ctx := t.Context()
	first := outboxMessage("OrderCreated")
	second := outboxMessage("OrderPaid")
	cmd, _ := commands.NewPublishOutboxEventsCommand(10, 3)

	repo := new(MockOutboxRepository)
	publisher := new(MockEventPublisher)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OutboxRepository").Return(repo).Once(),
		repo.On("GetPending", ctx, 10).Return([]ports.OutboxMessage{first, second}, nil).Once(),
		publisher.On("Publish", ctx, first).Return(errors.New("broker down")).Once(),
		repo.On("MarkFailed", ctx, first.ID, 3).Return(nil).Once(),
		publisher.On("Publish", ctx, second).Return(nil).Once(),
		repo.On("MarkPublished", ctx, second.ID).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockOutboxUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPublishOutboxEventsCommandHandler(factory, publisher, discardLogger())
	result, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, commands.PublishOutboxEventsResult{Published: 1, Failed: 1}, result)
	repo.AssertExpectations(t)
}

func TestPublishOutboxEventsCommandHandler_Handle_EmptyOutbox(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewPublishOutboxEventsCommand(10, 3)

	repo := new(MockOutboxRepository)
	publisher := new(MockEventPublisher)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OutboxRepository").Return(repo).Once(),
		repo.On("GetPending", ctx, 10).Return(nil, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockOutboxUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPublishOutboxEventsCommandHandler(factory, publisher, discardLogger())
	result, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Zero(t, result)
	publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestPublishOutboxEventsCommandHandler_Handle_MarkError(t *testing.T) {
	ctx := t.Context()
	message := outboxMessage("OrderCreated")
	cmd, _ := commands.NewPublishOutboxEventsCommand(10, 3)

	repo := new(MockOutboxRepository)
	publisher := new(MockEventPublisher)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OutboxRepository").Return(repo).Once(),
		repo.On("GetPending", ctx, 10).Return([]ports.OutboxMessage{message}, nil).Once(),
		publisher.On("Publish", ctx, message).Return(nil).Once(),
		repo.On("MarkPublished", ctx, message.ID).Return(errors.New("update failed")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockOutboxUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPublishOutboxEventsCommandHandler(factory, publisher, discardLogger())
	_, err := h.Handle(ctx, cmd)

	require.EqualError(t, err, "update failed")
	uow.AssertNotCalled(t, "Commit", ctx)
}
