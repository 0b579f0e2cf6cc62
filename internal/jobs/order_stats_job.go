package jobs

import (
	"context"
	"log/slog"

	"dispatch/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// OrderStatsJob periodically logs the order count per lifecycle status.
// Operators watch these lines to spot a growing pending backlog without
// querying the database by hand.
type OrderStatsJob struct {
	handler  queries.GetOrderStatsQueryHandler
	cron     *cron.Cron
	logger   *slog.Logger
	schedule string
}

// NewOrderStatsJob creates the stats job. The schedule is a standard
// five-field cron expression, e.g. "*/5 * * * *" for every five minutes.
func NewOrderStatsJob(
	handler queries.GetOrderStatsQueryHandler,
	schedule string,
	logger *slog.Logger,
) *OrderStatsJob {
	return &OrderStatsJob{
		handler:  handler,
		cron:     cron.New(),
		logger:   logger.With("component", "order_stats_job"),
		schedule: schedule,
	}
}

// Start registers the schedule and begins running the job.
func (j *OrderStatsJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()

		stats, err := j.handler.Handle(ctx, queries.NewGetOrderStatsQuery())
		if err != nil {
			j.logger.ErrorContext(ctx, "Order stats job failed", "error", err)
			return
		}

		attrs := make([]any, 0, len(stats)*2)
		for _, stat := range stats {
			attrs = append(attrs, stat.Status, stat.Count)
		}
		j.logger.InfoContext(ctx, "Order counts by status", attrs...)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order stats job started", "schedule", j.schedule)
	return nil
}

// Stop stops the job. Already running invocations finish on their own.
func (j *OrderStatsJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order stats job stopped")
}
