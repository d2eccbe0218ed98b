package jobs

import (
	"fmt"
	"log/slog"

	"cargotracker/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	handlingReportImportJob *HandlingReportImportJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	registerHandler commands.RegisterHandlingEventCommandHandler,
	reportInboxDir string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		handlingReportImportJob: NewHandlingReportImportJob(registerHandler, reportInboxDir, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.handlingReportImportJob.Start(); err != nil {
		return fmt.Errorf("failed to start handling report import job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.handlingReportImportJob.Stop()
}
