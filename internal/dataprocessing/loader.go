package dataprocessing

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"attendcli/internal/config"
	"attendcli/internal/errors"
	"attendcli/pkg/contracts/domain"
)

// requiredColumns are the input header names the loader insists on. A missing
// column is a structural failure that aborts the run; a missing value inside
// a present column only degrades that row.
var requiredColumns = []string{
	"employee_id",
	"employee_name",
	"date",
	"check_in",
	"check_out",
	"break_minutes",
	"shift_start",
	"shift_end",
	"expected_hours",
	"work_type",
	"leave_type",
}

// LoadRecords reads an attendance table from a CSV or XLSX file and
// normalizes each row into a typed AttendanceRecord using the total parsers.
// Numeric fallbacks come from the policy configuration.
func LoadRecords(path string, policy config.PolicyConfig) ([]domain.AttendanceRecord, error) {
	rows, err := readRows(path)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, errors.NewValidationError("input file has no header row").
			WithContext("path", path)
	}

	columns, err := mapColumns(rows[0])
	if err != nil {
		return nil, err
	}

	records := make([]domain.AttendanceRecord, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if isBlankRow(row) {
			continue
		}
		records = append(records, rowToRecord(row, columns, policy))
	}
	return records, nil
}

// readRows loads the raw cell grid from disk, dispatching on file extension.
func readRows(path string) ([][]string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return readExcelRows(path)
	default:
		return readCSVRows(path)
	}
}

// readCSVRows reads all rows of a CSV file, tolerating ragged records.
func readCSVRows(path string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.NewStorageError("failed to open input file", err).
			WithContext("path", path)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, errors.NewParsingError("failed to read CSV input", err).
			WithContext("path", path)
	}
	return rows, nil
}

// readExcelRows reads the first sheet of an XLSX workbook as a cell grid.
func readExcelRows(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.NewStorageError("failed to open input workbook", err).
			WithContext("path", path)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.NewValidationError("input workbook has no sheets").
			WithContext("path", path)
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, errors.NewParsingError("failed to read workbook rows", err).
			WithContext("path", path).
			WithContext("sheet", sheets[0])
	}
	return rows, nil
}

// mapColumns builds a name→index map from the header row and verifies every
// required column is present. Header matching is case-insensitive and BOM
// and whitespace tolerant.
func mapColumns(header []string) (map[string]int, error) {
	columns := make(map[string]int, len(header))
	for i, name := range header {
		normalized := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))
		if normalized == "" {
			continue
		}
		if _, exists := columns[normalized]; !exists {
			columns[normalized] = i
		}
	}

	for _, col := range requiredColumns {
		if _, ok := columns[col]; !ok {
			return nil, errors.NewValidationError(fmt.Sprintf("missing required column: %s", col))
		}
	}
	return columns, nil
}

// rowToRecord normalizes one data row into a typed record. Every field goes
// through a total parser, so malformed cells degrade rather than fail.
func rowToRecord(row []string, columns map[string]int, policy config.PolicyConfig) domain.AttendanceRecord {
	cell := func(name string) string {
		idx := columns[name]
		if idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	return domain.AttendanceRecord{
		EmployeeID:    cell("employee_id"),
		EmployeeName:  cell("employee_name"),
		Date:          ParseDate(cell("date")),
		CheckIn:       ParseClock(cell("check_in")),
		CheckOut:      ParseClock(cell("check_out")),
		ShiftStart:    ParseClock(cell("shift_start")),
		ShiftEnd:      ParseClock(cell("shift_end")),
		BreakMinutes:  ParseNumber(cell("break_minutes"), policy.DefaultBreakMinutes),
		ExpectedHours: ParseNumber(cell("expected_hours"), policy.DefaultExpectedHours),
		WorkType:      cell("work_type"),
		LeaveType:     cell("leave_type"),
	}
}

// isBlankRow reports whether every cell in the row is empty.
func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
