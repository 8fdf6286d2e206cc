// Package jobs provides scheduled background tasks for the fulfillment system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the billing workflow.
//
// # Available Jobs
//
// 1. OverdueSweepJob - Periodically persists the Overdue status on invoice
// rows whose due date has passed while still stored as Pending. Overdue is
// derived on every read, so the sweep only exists to converge the stored
// status column used by filtered listings.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(sweepHandler, sweepSpec, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The sweep schedule comes from configuration; hourly is plenty since the
// read side derives Overdue live and never waits on the sweep.
//
// # Error Handling
//
// Sweep failures are logged and retried on the next tick. A failed job
// start stops any already running jobs.
package jobs
