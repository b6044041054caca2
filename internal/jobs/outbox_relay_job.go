package jobs

import (
	"context"
	"log/slog"

	"ordering/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

type outboxEventsHandler interface {
	Handle(ctx context.Context, cmd commands.PublishOutboxEventsCommand) (commands.PublishOutboxEventsResult, error)
}

// OutboxRelayJob publishes pending outbox events every second. A tick is
// skipped while the previous one is still running.
type OutboxRelayJob struct {
	handler outboxEventsHandler
	cmd     commands.PublishOutboxEventsCommand
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOutboxRelayJob creates the relay job. It fails when batchSize or
// maxRetries are out of range.
func NewOutboxRelayJob(
	handler outboxEventsHandler,
	batchSize, maxRetries int,
	logger *slog.Logger,
) (*OutboxRelayJob, error) {
	cmd, err := commands.NewPublishOutboxEventsCommand(batchSize, maxRetries)
	if err != nil {
		return nil, err
	}

	return &OutboxRelayJob{
		handler: handler,
		cmd:     cmd,
		cron:    cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:  logger.With("component", "outbox_relay_job"),
	}, nil
}

// Start schedules the relay to run every second.
func (j *OutboxRelayJob) Start() error {
	_, err := j.cron.AddFunc("* * * * * *", func() {
		j.RunOnce(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Outbox relay job started (running every second)")
	return nil
}

// RunOnce relays a single batch and logs the outcome.
func (j *OutboxRelayJob) RunOnce(ctx context.Context) {
	result, err := j.handler.Handle(ctx, j.cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Outbox relay job failed", "error", err)
		return
	}

	if result.Published > 0 || result.Failed > 0 {
		j.logger.InfoContext(ctx, "Outbox batch relayed",
			"published", result.Published,
			"failed", result.Failed,
		)
	}
}

// Stop stops scheduling and waits for a running batch to finish.
func (j *OutboxRelayJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Outbox relay job stopped")
}
