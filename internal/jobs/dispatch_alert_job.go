package jobs

import (
	"context"
	"log/slog"
	"sync"

	"larica/internal/core/application/usecases/queries"
	"larica/internal/core/domain/services"

	"github.com/robfig/cron/v3"
)

// DispatchAlertJob scans the watched restaurant's board and logs the
// composed courier notification the first time each order becomes
// dispatch-eligible. It never sends anything; opening the messaging link
// stays a human decision.
type DispatchAlertJob struct {
	boardHandler      queries.GetOrderHistoryQueryHandler
	orderHandler      queries.GetTrackedOrderQueryHandler
	restaurantHandler queries.GetRestaurantQueryHandler
	composer          services.DispatchComposer
	restaurantID      int64
	schedule          string
	cron              *cron.Cron
	logger            *slog.Logger

	mu      sync.Mutex
	alerted map[int64]bool
}

// NewDispatchAlertJob creates a dispatch alert job for one restaurant.
func NewDispatchAlertJob(
	boardHandler queries.GetOrderHistoryQueryHandler,
	orderHandler queries.GetTrackedOrderQueryHandler,
	restaurantHandler queries.GetRestaurantQueryHandler,
	composer services.DispatchComposer,
	restaurantID int64,
	schedule string,
	logger *slog.Logger,
) *DispatchAlertJob {
	return &DispatchAlertJob{
		boardHandler:      boardHandler,
		orderHandler:      orderHandler,
		restaurantHandler: restaurantHandler,
		composer:          composer,
		restaurantID:      restaurantID,
		schedule:          schedule,
		cron:              cron.New(cron.WithSeconds()),
		logger:            logger.With("component", "dispatch_alert_job"),
		alerted:           make(map[int64]bool),
	}
}

// Start schedules the dispatch scan.
func (j *DispatchAlertJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.runOnce(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Dispatch alert job started",
		"restaurant_id", j.restaurantID, "schedule", j.schedule)
	return nil
}

// Stop stops the dispatch alert job.
func (j *DispatchAlertJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Dispatch alert job stopped")
}

func (j *DispatchAlertJob) runOnce(ctx context.Context) {
	// Cron runs invocations in their own goroutines; overlapping scans must
	// not alert the same order twice.
	j.mu.Lock()
	defer j.mu.Unlock()

	boardQuery, err := queries.NewGetOrderHistoryQuery(queries.OwnerRestaurant, j.restaurantID)
	if err != nil {
		j.logger.ErrorContext(ctx, "Dispatch alert job failed", "error", err)
		return
	}
	board, err := j.boardHandler.Handle(ctx, boardQuery)
	if err != nil {
		j.logger.ErrorContext(ctx, "Dispatch alert job failed", "error", err)
		return
	}

	for _, entry := range board {
		if !entry.Status.IsDispatchEligible() || j.alerted[entry.ID] {
			continue
		}

		if alertErr := j.alert(ctx, entry.ID); alertErr != nil {
			j.logger.ErrorContext(ctx, "Dispatch alert failed",
				"order_id", entry.ID, "error", alertErr)
			continue
		}
		j.alerted[entry.ID] = true
	}
}

func (j *DispatchAlertJob) alert(ctx context.Context, orderID int64) error {
	orderQuery, err := queries.NewGetTrackedOrderQuery(orderID)
	if err != nil {
		return err
	}
	o, err := j.orderHandler.Handle(ctx, orderQuery)
	if err != nil {
		return err
	}

	restaurantQuery, err := queries.NewGetRestaurantQuery(j.restaurantID)
	if err != nil {
		return err
	}
	r, err := j.restaurantHandler.Handle(ctx, restaurantQuery)
	if err != nil {
		return err
	}

	notification, err := j.composer.Compose(o, r)
	if err != nil {
		return err
	}

	j.logger.InfoContext(ctx, "Order ready for dispatch",
		"order_id", orderID, "text", notification.Text, "link", notification.Link)
	return nil
}
