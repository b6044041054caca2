// Package jobs provides scheduled background tasks for the ordering service.
//
// Jobs are cron-based and use github.com/robfig/cron/v3 with second precision.
//
// # Available Jobs
//
// OutboxRelayJob runs every second and publishes pending outbox events through
// the configured EventPublisher. Overlapping runs are skipped.
//
// # Usage
//
//	jobManager, err := jobs.NewJobManager(publishOutboxHandler, 100, 10, logger)
//	if err != nil {
//		log.Fatal("Failed to create jobs:", err)
//	}
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Relay errors are logged and the next tick tries again. Messages that keep
// failing are parked as FAILED once they reach the retry limit.
package jobs
