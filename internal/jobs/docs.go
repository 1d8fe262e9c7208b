// Package jobs provides scheduled background tasks for the order subsystem.
//
// Jobs are cron-based, using github.com/robfig/cron/v3 with seconds-capable
// expressions.
//
// ReadyOrderCleanupJob periodically removes ready orders that have sat
// untouched past a retention window. Removal goes through the order flow, so
// connected displays receive the deletion like any other change and the
// table frees up for a fresh order.
//
// Jobs are managed through JobManager:
//
//	jobManager := jobs.NewJobManager(cleanupJob)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
package jobs
