package jobs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"log/slog"

	"cargotracker/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

const (
	archiveDirName = "archive"
	failedDirName  = "failed"
)

// HandlingReportImportJob periodically scans an inbox directory for handling
// report files dropped by port operators and registers the events they
// contain. Processed files move to archive/; lines that could not be
// registered are collected in failed/ for manual follow-up, one .failed
// file per report.
type HandlingReportImportJob struct {
	handler  commands.RegisterHandlingEventCommandHandler
	inboxDir string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewHandlingReportImportJob creates a job watching the given inbox
// directory. Reports are plain text, one event per line.
func NewHandlingReportImportJob(
	handler commands.RegisterHandlingEventCommandHandler,
	inboxDir string,
	logger *slog.Logger,
) *HandlingReportImportJob {
	return &HandlingReportImportJob{
		handler:  handler,
		inboxDir: inboxDir,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "handling_report_import_job"),
	}
}

// Start begins scanning the inbox every ten seconds.
func (j *HandlingReportImportJob) Start() error {
	if err := j.ensureDirs(); err != nil {
		return err
	}

	_, err := j.cron.AddFunc("*/10 * * * * *", func() {
		ctx := context.Background()
		if err := j.ProcessInbox(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Handling report import run failed", "error", err)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(),
		"Handling report import job started", "inbox", j.inboxDir)
	return nil
}

// Stop stops the handling report import job.
func (j *HandlingReportImportJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Handling report import job stopped")
}

// ProcessInbox processes every report file currently in the inbox. Exported
// so an import can also be triggered outside the schedule.
func (j *HandlingReportImportJob) ProcessInbox(ctx context.Context) error {
	entries, err := os.ReadDir(j.inboxDir)
	if err != nil {
		return fmt.Errorf("read inbox: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".csv") {
			continue
		}

		if err := j.processFile(ctx, entry.Name()); err != nil {
			j.logger.ErrorContext(ctx, "Failed to process handling report",
				"file", entry.Name(), "error", err)
		}
	}

	return nil
}

func (j *HandlingReportImportJob) processFile(ctx context.Context, name string) error {
	path := filepath.Join(j.inboxDir, name)

	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read report: %w", err)
	}

	var failedLines []string
	imported := 0

	for _, line := range strings.Split(string(content), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if err := j.importLine(ctx, line); err != nil {
			failedLines = append(failedLines, fmt.Sprintf("%s # %v", line, err))
			continue
		}
		imported++
	}

	if len(failedLines) > 0 {
		failedPath := filepath.Join(j.inboxDir, failedDirName, name+".failed")
		failedContent := strings.Join(failedLines, "\n") + "\n"
		if err := os.WriteFile(failedPath, []byte(failedContent), 0o644); err != nil {
			return fmt.Errorf("write failed lines: %w", err)
		}
	}

	archivePath := filepath.Join(j.inboxDir, archiveDirName, name)
	if err := os.Rename(path, archivePath); err != nil {
		return fmt.Errorf("archive report: %w", err)
	}

	j.logger.InfoContext(ctx, "Handling report processed",
		"file", name, "imported", imported, "failed", len(failedLines))
	return nil
}

func (j *HandlingReportImportJob) importLine(ctx context.Context, line string) error {
	command, err := parseHandlingReportLine(line)
	if err != nil {
		return err
	}

	return j.handler.Handle(ctx, command)
}

func (j *HandlingReportImportJob) ensureDirs() error {
	for _, dir := range []string{
		j.inboxDir,
		filepath.Join(j.inboxDir, archiveDirName),
		filepath.Join(j.inboxDir, failedDirName),
	} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	return nil
}
