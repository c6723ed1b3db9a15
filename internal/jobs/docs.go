// Package jobs provides scheduled background tasks for the forwarding service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. OutboxRelayJob - publishes domain events stored in the outbox to Kafka
//
// # Usage
//
// Jobs are managed through JobManager:
//
//	jobManager := jobs.NewJobManager(jobs.Config{
//		OutboxRelaySchedule:  "*/2 * * * * *",
//		OutboxRelayBatchSize: 100,
//	}, relayHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Schedules use the six-field cron format with seconds. A tick that is still
// running when the next one fires causes the next one to be skipped.
//
// # Error Handling
//
// A failed relay is logged and retried on the next tick. Messages are only
// marked published after the broker accepted them, so they are never lost.
package jobs
