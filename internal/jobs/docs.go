// Package jobs provides scheduled background tasks for the laundry workflow.
//
// Jobs are cron-based (github.com/robfig/cron/v3, six-field expressions with
// seconds) and are started and stopped together through JobManager.
//
// # Available Jobs
//
// 1. StaffWorkloadJob - releases delivered and cancelled orders from staff
// workloads. Status transitions never touch staff records, so without it
// finished orders would keep counting against a staff member's limit.
//
// # Usage
//
//	workload := jobs.NewStaffWorkloadJob(releaseHandler, cfg.ReconcileSchedule, logger)
//	manager := jobs.NewJobManager(logger, workload)
//
//	if err := manager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer manager.StopAll()
//
// # Error Handling
//
// A failed run is logged and retried on the next tick. A job that fails to
// start stops the jobs started before it.
package jobs
