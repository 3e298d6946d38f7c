// Package jobs provides scheduled background tasks for the dispatch engine.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for order dispatch.
//
// # Available Jobs
//
// 1. PendingOrderRenotifyJob - Re-broadcasts immediate orders that have sat
// unclaimed in pending provider status for longer than the stale window.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(renotifyHandler, staleAfter, schedule, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The renotify job takes a six-field cron expression with a seconds column,
// e.g. "0 * * * * *" for once a minute. The sweep is idempotent over stale
// orders, so overlapping runs only cost duplicate notifications.
//
// # Error Handling
//
// A sweep with nothing stale is a no-op. Failures are logged and retried on
// the next tick; a job that fails to start stops any already running jobs.
package jobs
