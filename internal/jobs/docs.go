// Package jobs provides scheduled background tasks for the procurement
// service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. SessionExpiryJob - Runs every minute and unregisters sessions idle for
// longer than the configured timeout
// 2. FulfillmentSweepJob - Recomputes the fulfillment of every open purchase
// order on a configurable schedule
//
// # Usage
//
//	jobManager := jobs.NewJobManager(
//		jobs.NewSessionExpiryJob(tracker, logger),
//		jobs.NewFulfillmentSweepJob(openOrders, recompute, retry.DefaultPolicy(), "*/15 * * * *", logger),
//	)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// - The sweep retries lock contention and skips orders that stay busy
// - Every other failure is logged and the sweep moves on to the next order
// - Failed job starts will stop any already running jobs
package jobs
