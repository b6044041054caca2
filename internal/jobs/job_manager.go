package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	outboxRelayJob *OutboxRelayJob
}

// NewJobManager creates the job manager and its jobs.
func NewJobManager(
	outboxHandler outboxEventsHandler,
	outboxBatchSize, outboxMaxRetries int,
	logger *slog.Logger,
) (*JobManager, error) {
	outboxRelayJob, err := NewOutboxRelayJob(outboxHandler, outboxBatchSize, outboxMaxRetries, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create outbox relay job: %w", err)
	}

	return &JobManager{
		outboxRelayJob: outboxRelayJob,
	}, nil
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.outboxRelayJob.Start(); err != nil {
		return fmt.Errorf("failed to start outbox relay job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.outboxRelayJob.Stop()
}
