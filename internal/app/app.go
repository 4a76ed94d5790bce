package app

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"attendcli/internal/config"
	"attendcli/internal/dataprocessing"
	"attendcli/internal/exporter"
	"attendcli/internal/infrastructure"
)

// Mirror file names written next to each other when a CSV directory is set.
const (
	DailyCSVName   = "timesheet_daily.csv"
	SummaryCSVName = "summary_by_employee.csv"
)

// Options are the per-run parameters of the report pipeline.
type Options struct {
	// InputPath is the attendance table to read (.csv or .xlsx).
	InputPath string
	// OutputPath is where the report workbook is written.
	OutputPath string
	// CSVDir, when non-empty, receives CSV mirrors of the daily and
	// summary tables.
	CSVDir string
}

// Application wires the report pipeline components together.
type Application struct {
	Config     *config.Config
	Logger     *slog.Logger
	Summarizer *dataprocessing.Summarizer
	Workbook   *exporter.ReportWriter
	CSV        *exporter.CSVWriter
}

// NewApplication builds the application from configuration: loads the config
// file and environment overrides, initializes the logger, and constructs the
// pipeline components.
func NewApplication(configFile string) (*Application, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return newWith(cfg, logger), nil
}

// newWith assembles the container around an existing config and logger.
func newWith(cfg *config.Config, logger *slog.Logger) *Application {
	return &Application{
		Config:     cfg,
		Logger:     logger,
		Summarizer: dataprocessing.NewSummarizer(logger),
		Workbook:   exporter.NewReportWriter(logger),
		CSV:        exporter.NewCSVWriter(logger),
	}
}

// Run executes the full pipeline: load, derive, summarize, rank, export.
// It either completes and emits the whole report or fails before any output
// file is put in place.
func (a *Application) Run(ctx context.Context, opts Options) error {
	a.Logger.InfoContext(ctx, "starting attendance report generation",
		slog.String("input", opts.InputPath),
		slog.String("output", opts.OutputPath))

	records, err := dataprocessing.LoadRecords(opts.InputPath, a.Config.Policy)
	if err != nil {
		return err
	}
	a.Logger.InfoContext(ctx, "attendance records loaded",
		slog.Int("record_count", len(records)))

	daily := dataprocessing.BuildTimesheet(records, a.Config.Policy)
	summaries := a.Summarizer.Summarize(ctx, daily)
	insights := dataprocessing.RankInsights(summaries, a.Config.Policy.TopN)

	if err := a.Workbook.WriteWorkbook(ctx, opts.OutputPath, daily, summaries, insights); err != nil {
		return err
	}

	if opts.CSVDir != "" {
		if err := a.CSV.WriteDailyCSV(filepath.Join(opts.CSVDir, DailyCSVName), daily); err != nil {
			return err
		}
		if err := a.CSV.WriteSummaryCSV(filepath.Join(opts.CSVDir, SummaryCSVName), summaries); err != nil {
			return err
		}
	}

	a.Logger.InfoContext(ctx, "report generation complete",
		slog.Int("daily_rows", len(daily)),
		slog.Int("employee_count", len(summaries)))
	return nil
}
