package jobs

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"shipnotice/internal/adapters/in/order"
	"shipnotice/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultSweepSchedule runs the sweep every five seconds.
const DefaultSweepSchedule = "*/5 * * * * *"

// NoticeSweepJob watches an inbox directory for order files and turns each
// one into a ship notice. Processed files are moved out of the inbox so a
// sweep never picks up the same order twice.
type NoticeSweepJob struct {
	parser       *order.Parser
	handler      *commands.GenerateShipNoticeCommandHandler
	inboxDir     string
	processedDir string
	failedDir    string
	schedule     string
	cron         *cron.Cron
	logger       *slog.Logger
}

// NewNoticeSweepJob creates a sweep job over the given inbox directory.
// An empty schedule falls back to DefaultSweepSchedule.
func NewNoticeSweepJob(
	parser *order.Parser,
	handler *commands.GenerateShipNoticeCommandHandler,
	inboxDir string,
	processedDir string,
	failedDir string,
	schedule string,
	logger *slog.Logger,
) *NoticeSweepJob {
	if schedule == "" {
		schedule = DefaultSweepSchedule
	}
	return &NoticeSweepJob{
		parser:       parser,
		handler:      handler,
		inboxDir:     inboxDir,
		processedDir: processedDir,
		failedDir:    failedDir,
		schedule:     schedule,
		cron:         cron.New(cron.WithSeconds()),
		logger:       logger.With("component", "notice_sweep_job"),
	}
}

// Start begins sweeping the inbox on the configured schedule.
func (j *NoticeSweepJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		if err := j.Sweep(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Notice sweep failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Notice sweep job started",
		"inbox", j.inboxDir, "schedule", j.schedule)
	return nil
}

// Stop stops the sweep job.
func (j *NoticeSweepJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Notice sweep job stopped")
}

// Sweep processes every order file currently in the inbox. Files that yield
// a document move to the processed directory; files that fail move to the
// failed directory so one bad order never blocks the rest.
func (j *NoticeSweepJob) Sweep(ctx context.Context) error {
	entries, err := os.ReadDir(j.inboxDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		j.processFile(ctx, entry.Name())
	}

	return nil
}

func (j *NoticeSweepJob) processFile(ctx context.Context, name string) {
	path := filepath.Join(j.inboxDir, name)

	payload, err := os.ReadFile(path)
	if err != nil {
		j.logger.ErrorContext(ctx, "Failed to read order file", "file", name, "error", err)
		return
	}

	response, err := j.generate(ctx, payload)
	if err != nil {
		j.logger.ErrorContext(ctx, "Failed to process order file", "file", name, "error", err)
		j.move(ctx, path, j.failedDir)
		return
	}

	j.logger.InfoContext(ctx, "Generated ship notice",
		"file", name,
		"shipment_id", response.ShipmentID,
		"control_number", response.ControlNumber,
		"cartons", response.TotalCartons,
		"document_path", response.DocumentPath)
	j.move(ctx, path, j.processedDir)
}

func (j *NoticeSweepJob) generate(ctx context.Context, payload []byte) (*commands.GenerateShipNoticeResponse, error) {
	request, err := j.parser.Parse(payload)
	if err != nil {
		return nil, err
	}

	cmd, err := request.ToCommand()
	if err != nil {
		return nil, err
	}

	return j.handler.Handle(ctx, cmd)
}

func (j *NoticeSweepJob) move(ctx context.Context, path, destDir string) {
	if err := os.MkdirAll(destDir, 0o755); err != nil {
		j.logger.ErrorContext(ctx, "Failed to create directory", "dir", destDir, "error", err)
		return
	}
	dest := filepath.Join(destDir, filepath.Base(path))
	if err := os.Rename(path, dest); err != nil {
		j.logger.ErrorContext(ctx, "Failed to move order file", "file", path, "error", err)
	}
}
