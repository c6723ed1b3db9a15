package jobs

import (
	"fmt"
	"log/slog"
)

// Config holds the schedules of the background jobs.
type Config struct {
	OutboxRelaySchedule  string
	OutboxRelayBatchSize int
}

// JobManager owns the scheduled jobs of the service.
type JobManager struct {
	outboxRelayJob *OutboxRelayJob
}

func NewJobManager(cfg Config, relayer OutboxRelayer, logger *slog.Logger) *JobManager {
	return &JobManager{
		outboxRelayJob: NewOutboxRelayJob(relayer, cfg.OutboxRelaySchedule, cfg.OutboxRelayBatchSize, logger),
	}
}

// StartAll schedules every job. Nothing is left running when it fails.
func (jm *JobManager) StartAll() error {
	if err := jm.outboxRelayJob.Start(); err != nil {
		return fmt.Errorf("failed to start outbox relay job: %w", err)
	}

	return nil
}

// StopAll waits for running ticks and stops the schedulers.
func (jm *JobManager) StopAll() {
	jm.outboxRelayJob.Stop()
}
