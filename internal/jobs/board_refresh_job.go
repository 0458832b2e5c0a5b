package jobs

import (
	"context"
	"log/slog"

	"larica/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// BoardRefreshJob periodically re-runs the order board query for the watched
// restaurant and logs the open-order count. Status visibility stays
// refresh-on-demand; this job is the operator's refresh on a timer.
type BoardRefreshJob struct {
	handler      queries.GetOrderHistoryQueryHandler
	restaurantID int64
	schedule     string
	cron         *cron.Cron
	logger       *slog.Logger
}

// NewBoardRefreshJob creates a board refresh job for one restaurant.
// The schedule is a six-field cron expression.
func NewBoardRefreshJob(
	handler queries.GetOrderHistoryQueryHandler,
	restaurantID int64,
	schedule string,
	logger *slog.Logger,
) *BoardRefreshJob {
	return &BoardRefreshJob{
		handler:      handler,
		restaurantID: restaurantID,
		schedule:     schedule,
		cron:         cron.New(cron.WithSeconds()),
		logger:       logger.With("component", "board_refresh_job"),
	}
}

// Start schedules the board refresh.
func (j *BoardRefreshJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.runOnce(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Board refresh job started",
		"restaurant_id", j.restaurantID, "schedule", j.schedule)
	return nil
}

// Stop stops the board refresh job.
func (j *BoardRefreshJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Board refresh job stopped")
}

func (j *BoardRefreshJob) runOnce(ctx context.Context) {
	query, err := queries.NewGetOrderHistoryQuery(queries.OwnerRestaurant, j.restaurantID)
	if err != nil {
		j.logger.ErrorContext(ctx, "Board refresh job failed", "error", err)
		return
	}

	board, err := j.handler.Handle(ctx, query)
	if err != nil {
		j.logger.ErrorContext(ctx, "Board refresh job failed", "error", err)
		return
	}

	open := 0
	for _, o := range board {
		if !o.Status.IsTerminal() {
			open++
		}
	}

	j.logger.InfoContext(ctx, "Order board refreshed",
		"restaurant_id", j.restaurantID, "orders", len(board), "open", open)
}
