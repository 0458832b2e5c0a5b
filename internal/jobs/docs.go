// Package jobs provides scheduled background tasks for the ordering client.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
// The core stays refresh-on-demand; both jobs are optional operator
// conveniences gated by configuration.
//
// # Available Jobs
//
// 1. BoardRefreshJob - periodically re-runs the order board query for the
// watched restaurant and logs the open-order count
// 2. DispatchAlertJob - scans the watched restaurant's board and logs the
// composed courier notification the first time each order becomes
// dispatch-eligible
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(settings, boardHandler, orderHandler,
//		restaurantHandler, composer, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Both jobs take six-field cron expressions from configuration. A zero
// watched restaurant id disables the jobs entirely.
//
// # Error Handling
//
// Jobs log failures and wait for the next tick; they never retry a failed
// run on their own.
package jobs
