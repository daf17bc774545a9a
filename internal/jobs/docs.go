// Package jobs provides scheduled background tasks for the marketplace.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for order fulfilment.
//
// # Available Jobs
//
// 1. WarehouseRelayJob - Periodically assigns orders parked at a warehouse to
// shippers located in the destination city, resuming deliveries that were
// dropped off mid-route.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(relayHandler, "*/10 * * * * *", logger)
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
// The relay job takes a six-field cron expression with a seconds column, so
// deployments can tune how aggressively parked orders are re-dispatched.
//
// # Error Handling
//
// - Relay job ignores expected business outcomes (no parked orders, no local shippers)
// - Any other error is logged and the job keeps running
// - Failed job starts will stop any already running jobs
package jobs
