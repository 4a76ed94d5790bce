package exporter

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/xuri/excelize/v2"

	"attendcli/internal/errors"
	"attendcli/pkg/contracts/domain"
)

// Report sheet names, in workbook order.
const (
	SheetDaily            = "Timesheet_Daily"
	SheetSummary          = "Summary_By_Employee"
	SheetTopLatecomers    = "Top_Latecomers"
	SheetTopOvertime      = "Top_Overtime"
	SheetTopMissingPunch  = "Top_MissingPunches"
	SheetTopAbsentees     = "Top_Absentees"
	defaultWorkbookSheet  = "Sheet1"
)

// dailyHeaders is the fixed column order of the daily timesheet table.
var dailyHeaders = []string{
	"employee_id", "employee_name", "date",
	"check_in", "check_out", "shift_start", "shift_end",
	"break_minutes", "expected_hours", "work_type", "leave_type",
	"worked_hours_raw", "worked_hours",
	"late_hours", "early_exit_hours", "overtime_hours", "under_hours",
	"missing_punch", "absent", "compliance_alert",
}

// summaryHeaders is the fixed column order of the summary and ranked tables.
var summaryHeaders = []string{
	"employee_id", "employee_name",
	"days_worked", "total_hours", "expected_hours_total", "overtime_total",
	"late_count", "early_exit_count", "missing_punches", "absences",
	"compliance_alerts", "utilization_pct",
}

// ReportWriter writes the multi-sheet attendance report workbook.
type ReportWriter struct {
	logger *slog.Logger
}

// NewReportWriter creates a new workbook report writer.
func NewReportWriter(logger *slog.Logger) *ReportWriter {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReportWriter{logger: logger}
}

// WriteWorkbook writes the six report tables as named sheets: the full daily
// timesheet, the per-employee summary, and the four ranked insight views.
// The workbook is assembled fully in memory and saved through a temporary
// file renamed into place, so an aborted run never leaves a half-populated
// report behind.
func (w *ReportWriter) WriteWorkbook(ctx context.Context, path string, daily []domain.DailyResult, summaries []domain.EmployeeSummary, insights domain.Insights) error {
	w.logger.InfoContext(ctx, "writing report workbook",
		slog.String("path", path),
		slog.Int("daily_rows", len(daily)),
		slog.Int("employee_count", len(summaries)))

	f := excelize.NewFile()
	defer f.Close()

	if err := w.writeDailySheet(f, daily); err != nil {
		return err
	}

	rankedTables := []struct {
		sheet string
		rows  []domain.EmployeeSummary
	}{
		{SheetSummary, summaries},
		{SheetTopLatecomers, insights.TopLatecomers},
		{SheetTopOvertime, insights.TopOvertime},
		{SheetTopMissingPunch, insights.TopMissingPunches},
		{SheetTopAbsentees, insights.TopAbsentees},
	}
	for _, table := range rankedTables {
		if err := w.writeSummarySheet(f, table.sheet, table.rows); err != nil {
			return err
		}
	}

	if err := f.DeleteSheet(defaultWorkbookSheet); err != nil {
		return errors.NewStorageError("failed to drop default workbook sheet", err)
	}
	index, err := f.GetSheetIndex(SheetDaily)
	if err != nil {
		return errors.NewStorageError("failed to locate daily sheet", err)
	}
	f.SetActiveSheet(index)

	return w.save(f, path)
}

// writeDailySheet writes the full timesheet table, one row per input record.
func (w *ReportWriter) writeDailySheet(f *excelize.File, daily []domain.DailyResult) error {
	return w.writeTable(f, SheetDaily, dailyHeaders, len(daily), func(i int) []interface{} {
		return dailyRow(daily[i])
	})
}

// writeSummarySheet writes one summary-shaped table under the given name.
func (w *ReportWriter) writeSummarySheet(f *excelize.File, sheet string, rows []domain.EmployeeSummary) error {
	return w.writeTable(f, sheet, summaryHeaders, len(rows), func(i int) []interface{} {
		return summaryRow(rows[i])
	})
}

// writeTable creates a sheet and fills it with a header row plus n data rows.
func (w *ReportWriter) writeTable(f *excelize.File, sheet string, headers []string, n int, row func(i int) []interface{}) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return errors.NewStorageError(fmt.Sprintf("failed to create sheet %s", sheet), err)
	}

	headerCells := make([]interface{}, len(headers))
	for i, h := range headers {
		headerCells[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &headerCells); err != nil {
		return errors.NewStorageError(fmt.Sprintf("failed to write header row of %s", sheet), err)
	}

	for i := 0; i < n; i++ {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return errors.NewStorageError("failed to compute cell coordinates", err)
		}
		cells := row(i)
		if err := f.SetSheetRow(sheet, cell, &cells); err != nil {
			return errors.NewStorageError(fmt.Sprintf("failed to write row %d of %s", i+2, sheet), err)
		}
	}
	return nil
}

// save writes the workbook atomically: temp file first, then rename.
func (w *ReportWriter) save(f *excelize.File, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.NewStorageError("failed to create report directory", err).
			WithContext("dir", dir)
	}

	tmp := path + ".tmp"
	if err := f.SaveAs(tmp); err != nil {
		return errors.NewStorageError("failed to save report workbook", err).
			WithContext("path", tmp)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return errors.NewStorageError("failed to finalize report workbook", err).
			WithContext("path", path)
	}

	w.logger.Info("report workbook saved", slog.String("path", path))
	return nil
}

// dailyRow converts a daily result to workbook cells in dailyHeaders order.
// Nil pointers become blank cells.
func dailyRow(d domain.DailyResult) []interface{} {
	return []interface{}{
		d.EmployeeID,
		d.EmployeeName,
		dateCell(d.Date),
		clockCell(d.CheckIn),
		clockCell(d.CheckOut),
		clockCell(d.ShiftStart),
		clockCell(d.ShiftEnd),
		d.BreakMinutes,
		d.ExpectedHours,
		d.WorkType,
		d.LeaveType,
		optFloatCell(d.WorkedHoursRaw),
		optFloatCell(d.WorkedHours),
		d.LateHours,
		d.EarlyExitHours,
		d.OvertimeHours,
		d.UnderHours,
		d.MissingPunch,
		d.Absent,
		d.ComplianceAlert,
	}
}

// summaryRow converts an employee summary to workbook cells in
// summaryHeaders order.
func summaryRow(s domain.EmployeeSummary) []interface{} {
	return []interface{}{
		s.EmployeeID,
		s.EmployeeName,
		s.DaysWorked,
		s.TotalHours,
		s.ExpectedHoursTotal,
		s.OvertimeTotal,
		s.LateCount,
		s.EarlyExitCount,
		s.MissingPunches,
		s.Absences,
		s.ComplianceAlerts,
		s.UtilizationPct,
	}
}

// dateCell renders a nullable date as an ISO string cell, nil as blank.
func dateCell(t *time.Time) interface{} {
	if t == nil {
		return nil
	}
	return t.Format("2006-01-02")
}

// clockCell renders a nullable time of day as an "HH:MM" cell, nil as blank.
func clockCell(c *domain.Clock) interface{} {
	if c == nil {
		return nil
	}
	return c.String()
}

// optFloatCell renders a nullable number cell, nil as blank.
func optFloatCell(f *float64) interface{} {
	if f == nil {
		return nil
	}
	return *f
}
