package exporter

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readCSVFile(t *testing.T, path string) [][]string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(data, []byte{0xEF, 0xBB, 0xBF}), "file must start with a UTF-8 BOM")

	rows, err := csv.NewReader(bytes.NewReader(data[3:])).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestCSVWriter_WriteDailyCSV(t *testing.T) {
	daily, _, _ := reportFixture()
	path := filepath.Join(t.TempDir(), "timesheet_daily.csv")

	writer := NewCSVWriter(nil)
	require.NoError(t, writer.WriteDailyCSV(path, daily))

	rows := readCSVFile(t, path)
	require.Len(t, rows, 3)
	assert.Equal(t, dailyHeaders, rows[0])

	first := rows[1]
	assert.Equal(t, "E001", first[0])
	assert.Equal(t, "2025-07-14", first[2])
	assert.Equal(t, "09:00", first[3])
	assert.Equal(t, "8.50", first[11])
	assert.Equal(t, "8.00", first[12])
	assert.Equal(t, "false", first[17])

	second := rows[2]
	assert.Empty(t, second[2], "nil date renders empty")
	assert.Empty(t, second[3], "nil punch renders empty")
	assert.Empty(t, second[11], "nil raw hours render empty")
	assert.Equal(t, "true", second[17])
	assert.Equal(t, "true", second[18])
}

func TestCSVWriter_WriteSummaryCSV(t *testing.T) {
	_, summaries, _ := reportFixture()
	path := filepath.Join(t.TempDir(), "summary_by_employee.csv")

	writer := NewCSVWriter(nil)
	require.NoError(t, writer.WriteSummaryCSV(path, summaries))

	rows := readCSVFile(t, path)
	require.Len(t, rows, 3)
	assert.Equal(t, summaryHeaders, rows[0])

	first := rows[1]
	assert.Equal(t, "E001", first[0])
	assert.Equal(t, "1", first[2])
	assert.Equal(t, "8.00", first[3])
	assert.Equal(t, "100.0", first[11], "utilization keeps one decimal")

	second := rows[2]
	assert.Equal(t, "E002", second[0])
	assert.Equal(t, "1", second[8])
	assert.Equal(t, "0.0", second[11])
}

func TestCSVWriter_CreatesMissingDirectory(t *testing.T) {
	_, summaries, _ := reportFixture()
	path := filepath.Join(t.TempDir(), "nested", "out", "summary.csv")

	writer := NewCSVWriter(nil)
	require.NoError(t, writer.WriteSummaryCSV(path, summaries))

	_, err := os.Stat(path)
	require.NoError(t, err)
}

func TestCSVWriter_EmptyTableStillWritesHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.csv")

	writer := NewCSVWriter(nil)
	require.NoError(t, writer.WriteDailyCSV(path, nil))

	rows := readCSVFile(t, path)
	require.Len(t, rows, 1)
	assert.Equal(t, strings.Join(dailyHeaders, ","), strings.Join(rows[0], ","))
}
