// Package jobs provides scheduled background tasks for the cargo tracking
// system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the tracking service.
//
// # Available Jobs
//
// 1. HandlingReportImportJob - Scans an inbox directory every ten seconds
// for handling report files dropped by port operators and registers the
// events they contain.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(registerHandler, inboxDir, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Report Format
//
// Reports are plain text files with one event per line:
//
//	completionTime,trackingID,voyageNumber,locode,eventType
//
// The voyage number field is empty for events that happen ashore. Lines
// starting with # are skipped. Processed files move to archive/; lines that
// could not be registered are collected in failed/ for manual follow-up.
//
// # Error Handling
//
// A bad line never stops the rest of the file: each line is registered
// independently, matching the per-event transaction boundary of the
// registration handler.
package jobs
