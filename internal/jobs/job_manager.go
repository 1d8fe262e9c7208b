package jobs

import "fmt"

// JobManager coordinates the application's scheduled jobs behind a single
// start/stop surface.
type JobManager struct {
	cleanupJob *ReadyOrderCleanupJob
}

// NewJobManager creates a manager over the given jobs.
func NewJobManager(cleanupJob *ReadyOrderCleanupJob) *JobManager {
	return &JobManager{
		cleanupJob: cleanupJob,
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.cleanupJob.Start(); err != nil {
		return fmt.Errorf("failed to start ready order cleanup job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.cleanupJob.Stop()
}
