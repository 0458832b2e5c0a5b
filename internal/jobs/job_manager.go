package jobs

import (
	"fmt"
	"log/slog"

	"larica/internal/core/application/usecases/queries"
	"larica/internal/core/domain/services"
)

// Settings configures the optional background jobs. A zero watched
// restaurant id disables both jobs.
type Settings struct {
	WatchedRestaurantID   int64
	BoardRefreshSchedule  string
	DispatchAlertSchedule string
}

// Enabled reports whether the jobs should run at all.
func (s Settings) Enabled() bool {
	return s.WatchedRestaurantID > 0
}

// JobManager coordinates the scheduled jobs of the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	boardRefreshJob  *BoardRefreshJob
	dispatchAlertJob *DispatchAlertJob
}

// NewJobManager creates a job manager wired to the same query handlers the
// HTTP facade uses. Returns a manager with no jobs when settings disable
// them.
func NewJobManager(
	settings Settings,
	boardHandler queries.GetOrderHistoryQueryHandler,
	orderHandler queries.GetTrackedOrderQueryHandler,
	restaurantHandler queries.GetRestaurantQueryHandler,
	composer services.DispatchComposer,
	logger *slog.Logger,
) *JobManager {
	if !settings.Enabled() {
		return &JobManager{}
	}

	return &JobManager{
		boardRefreshJob: NewBoardRefreshJob(
			boardHandler, settings.WatchedRestaurantID, settings.BoardRefreshSchedule, logger),
		dispatchAlertJob: NewDispatchAlertJob(
			boardHandler, orderHandler, restaurantHandler, composer,
			settings.WatchedRestaurantID, settings.DispatchAlertSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if jm.boardRefreshJob == nil {
		return nil
	}

	if err := jm.boardRefreshJob.Start(); err != nil {
		return fmt.Errorf("failed to start board refresh job: %w", err)
	}

	if err := jm.dispatchAlertJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.boardRefreshJob.Stop()
		return fmt.Errorf("failed to start dispatch alert job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	if jm.boardRefreshJob == nil {
		return
	}

	jm.dispatchAlertJob.Stop()
	jm.boardRefreshJob.Stop()
}
