package jobs

import (
	"context"
	"log/slog"

	"forwarding/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// maxBatchesPerTick bounds how long a single tick may keep draining the outbox.
const maxBatchesPerTick = 10

// OutboxRelayer is the use case behind OutboxRelayJob.
type OutboxRelayer interface {
	Handle(ctx context.Context, cmd commands.RelayOutboxCommand) (int, error)
}

// OutboxRelayJob publishes stored domain events to the broker.
// Runs on a cron schedule and drains full batches until the outbox is empty.
type OutboxRelayJob struct {
	relayer   OutboxRelayer
	schedule  string
	batchSize int
	cron      *cron.Cron
	logger    *slog.Logger
}

func NewOutboxRelayJob(relayer OutboxRelayer, schedule string, batchSize int, logger *slog.Logger) *OutboxRelayJob {
	return &OutboxRelayJob{
		relayer:   relayer,
		schedule:  schedule,
		batchSize: batchSize,
		cron:      cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:    logger.With("component", "outbox_relay_job"),
	}
}

// Start schedules the relay. An invalid schedule or batch size is returned as an error.
func (j *OutboxRelayJob) Start() error {
	cmd, err := commands.NewRelayOutboxCommand(j.batchSize)
	if err != nil {
		return err
	}

	if _, err = j.cron.AddFunc(j.schedule, func() {
		j.tick(context.Background(), cmd)
	}); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Outbox relay job started",
		"schedule", j.schedule, "batch_size", j.batchSize)
	return nil
}

// Stop waits for a running tick to finish.
func (j *OutboxRelayJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Outbox relay job stopped")
}

// tick returns the number of messages published.
func (j *OutboxRelayJob) tick(ctx context.Context, cmd commands.RelayOutboxCommand) int {
	total := 0
	for range maxBatchesPerTick {
		published, err := j.relayer.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Outbox relay failed", "error", err, "published", total)
			return total
		}

		total += published
		if published < cmd.BatchSize() {
			break
		}
	}

	if total > 0 {
		j.logger.DebugContext(ctx, "Outbox relayed", "published", total)
	}
	return total
}
