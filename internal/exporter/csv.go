package exporter

import (
	"encoding/csv"
	"log/slog"
	"os"
	"path/filepath"

	"attendcli/internal/errors"
	"attendcli/pkg/contracts/domain"
)

// CSVWriter mirrors the daily and summary tables as CSV files for tooling
// that does not read workbooks.
type CSVWriter struct {
	logger *slog.Logger
}

// NewCSVWriter creates a new CSV mirror writer.
func NewCSVWriter(logger *slog.Logger) *CSVWriter {
	if logger == nil {
		logger = slog.Default()
	}
	return &CSVWriter{logger: logger}
}

// WriteDailyCSV writes the full daily timesheet table to a CSV file.
func (w *CSVWriter) WriteDailyCSV(path string, daily []domain.DailyResult) error {
	records := make([][]string, 0, len(daily))
	for _, d := range daily {
		records = append(records, dailyCSVRow(d))
	}
	return w.writeCSV(path, dailyHeaders, records)
}

// WriteSummaryCSV writes the per-employee summary table to a CSV file.
func (w *CSVWriter) WriteSummaryCSV(path string, summaries []domain.EmployeeSummary) error {
	records := make([][]string, 0, len(summaries))
	for _, s := range summaries {
		records = append(records, summaryCSVRow(s))
	}
	return w.writeCSV(path, summaryHeaders, records)
}

// writeCSV writes one table with a UTF-8 BOM so Excel opens it correctly.
func (w *CSVWriter) writeCSV(path string, headers []string, records [][]string) error {
	w.logger.Info("writing CSV file",
		slog.String("path", path),
		slog.Int("record_count", len(records)))

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.NewStorageError("failed to create CSV directory", err).
			WithContext("path", path)
	}

	file, err := os.Create(path)
	if err != nil {
		return errors.NewStorageError("failed to create CSV file", err).
			WithContext("path", path)
	}
	defer file.Close()

	if _, err := file.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
		return errors.NewStorageError("failed to write BOM", err)
	}

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write(headers); err != nil {
		return errors.NewStorageError("failed to write CSV header row", err)
	}
	for _, record := range records {
		if err := writer.Write(record); err != nil {
			return errors.NewStorageError("failed to write CSV data row", err)
		}
	}
	return writer.Error()
}

// dailyCSVRow converts a daily result to a CSV row in dailyHeaders order.
func dailyCSVRow(d domain.DailyResult) []string {
	return []string{
		d.EmployeeID,
		d.EmployeeName,
		formatDate(d.Date),
		formatClock(d.CheckIn),
		formatClock(d.CheckOut),
		formatClock(d.ShiftStart),
		formatClock(d.ShiftEnd),
		formatFloat(d.BreakMinutes),
		formatFloat(d.ExpectedHours),
		d.WorkType,
		d.LeaveType,
		formatOptFloat(d.WorkedHoursRaw),
		formatOptFloat(d.WorkedHours),
		formatFloat(d.LateHours),
		formatFloat(d.EarlyExitHours),
		formatFloat(d.OvertimeHours),
		formatFloat(d.UnderHours),
		formatBool(d.MissingPunch),
		formatBool(d.Absent),
		formatBool(d.ComplianceAlert),
	}
}

// summaryCSVRow converts an employee summary to a CSV row in summaryHeaders
// order. Utilization keeps its one-decimal rounding.
func summaryCSVRow(s domain.EmployeeSummary) []string {
	return []string{
		s.EmployeeID,
		s.EmployeeName,
		formatInt(s.DaysWorked),
		formatFloat(s.TotalHours),
		formatFloat(s.ExpectedHoursTotal),
		formatFloat(s.OvertimeTotal),
		formatInt(s.LateCount),
		formatInt(s.EarlyExitCount),
		formatInt(s.MissingPunches),
		formatInt(s.Absences),
		formatInt(s.ComplianceAlerts),
		formatPct(s.UtilizationPct),
	}
}
