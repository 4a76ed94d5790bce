package dataprocessing

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"attendcli/internal/config"
	"attendcli/pkg/contracts/domain"
)

// monthFor builds a small month of attendance for one employee.
func monthFor(id, name string, days int, in, out *domain.Clock) []domain.AttendanceRecord {
	records := make([]domain.AttendanceRecord, 0, days)
	for i := 0; i < days; i++ {
		records = append(records, domain.AttendanceRecord{
			EmployeeID:    id,
			EmployeeName:  name,
			CheckIn:       in,
			CheckOut:      out,
			ExpectedHours: 8,
		})
	}
	return records
}

func TestSummarizer_Summarize(t *testing.T) {
	ctx := context.Background()
	summarizer := NewSummarizer(nil)
	policy := config.DefaultPolicy()

	records := []domain.AttendanceRecord{
		// E001: one full day, one late day, one missing punch.
		{EmployeeID: "E001", EmployeeName: "Amira Hassan", CheckIn: clock(9, 0), CheckOut: clock(17, 0), ShiftStart: clock(9, 0), ShiftEnd: clock(17, 0), ExpectedHours: 8},
		{EmployeeID: "E001", EmployeeName: "Amira Hassan", CheckIn: clock(10, 30), CheckOut: clock(17, 0), ShiftStart: clock(9, 0), ShiftEnd: clock(17, 0), ExpectedHours: 8},
		{EmployeeID: "E001", EmployeeName: "Amira Hassan", CheckOut: clock(17, 0), ExpectedHours: 8},
		// E002: overtime day.
		{EmployeeID: "E002", EmployeeName: "Basim Karim", CheckIn: clock(9, 0), CheckOut: clock(20, 0), ShiftStart: clock(9, 0), ShiftEnd: clock(17, 0), ExpectedHours: 8},
	}

	summaries := summarizer.Summarize(ctx, BuildTimesheet(records, policy))

	require.Len(t, summaries, 2)
	assert.Equal(t, "E001", summaries[0].EmployeeID, "output sorted by employee_id")
	assert.Equal(t, "E002", summaries[1].EmployeeID)

	e1 := summaries[0]
	assert.Equal(t, 2, e1.DaysWorked)
	assert.InDelta(t, 14.5, e1.TotalHours, 1e-9)
	assert.InDelta(t, 24.0, e1.ExpectedHoursTotal, 1e-9)
	assert.Equal(t, 1, e1.LateCount)
	assert.Equal(t, 1, e1.MissingPunches)
	assert.Equal(t, 1, e1.Absences)
	assert.Equal(t, 2, e1.ComplianceAlerts, "late day and missing-punch day both alert")
	assert.InDelta(t, 60.4, e1.UtilizationPct, 1e-9) // 14.5/24*100 = 60.41... → 60.4

	e2 := summaries[1]
	assert.Equal(t, 1, e2.DaysWorked)
	assert.InDelta(t, 3.0, e2.OvertimeTotal, 1e-9)
	assert.Equal(t, 1, e2.ComplianceAlerts)
	assert.InDelta(t, 137.5, e2.UtilizationPct, 1e-9)
}

func TestSummarizer_OrderIndependent(t *testing.T) {
	ctx := context.Background()
	summarizer := NewSummarizer(nil)
	policy := config.DefaultPolicy()

	records := append(
		monthFor("E001", "Amira Hassan", 10, clock(9, 0), clock(17, 30)),
		monthFor("E002", "Basim Karim", 10, clock(9, 15), clock(17, 0))...,
	)
	records = append(records, domain.AttendanceRecord{EmployeeID: "E001", EmployeeName: "Amira Hassan", ExpectedHours: 8})

	base := summarizer.Summarize(ctx, BuildTimesheet(records, policy))

	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 5; trial++ {
		shuffled := make([]domain.AttendanceRecord, len(records))
		copy(shuffled, records)
		rng.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})

		got := summarizer.Summarize(ctx, BuildTimesheet(shuffled, policy))
		require.Len(t, got, len(base))
		for i := range base {
			assert.Equal(t, base[i].EmployeeID, got[i].EmployeeID)
			assert.Equal(t, base[i].DaysWorked, got[i].DaysWorked)
			assert.InDelta(t, base[i].TotalHours, got[i].TotalHours, 1e-9)
			assert.InDelta(t, base[i].UtilizationPct, got[i].UtilizationPct, 1e-9)
			assert.Equal(t, base[i].LateCount, got[i].LateCount)
			assert.Equal(t, base[i].MissingPunches, got[i].MissingPunches)
			assert.Equal(t, base[i].Absences, got[i].Absences)
		}
	}
}

func TestSummarizer_UtilizationExactMatch(t *testing.T) {
	ctx := context.Background()
	summarizer := NewSummarizer(nil)
	policy := config.DefaultPolicy()

	// 8h worked against 8h expected, across several day counts.
	for _, days := range []int{1, 3, 20} {
		records := monthFor("E001", "Amira Hassan", days, clock(9, 0), clock(17, 0))
		summaries := summarizer.Summarize(ctx, BuildTimesheet(records, policy))

		require.Len(t, summaries, 1)
		assert.Equal(t, 100.0, summaries[0].UtilizationPct, "days=%d", days)
	}
}

func TestSummarizer_ZeroExpectedTotal(t *testing.T) {
	ctx := context.Background()
	summarizer := NewSummarizer(nil)

	daily := []domain.DailyResult{{
		AttendanceRecord: domain.AttendanceRecord{EmployeeID: "E001", ExpectedHours: 0},
	}}

	summaries := summarizer.Summarize(ctx, daily)
	require.Len(t, summaries, 1)
	assert.Zero(t, summaries[0].UtilizationPct)
}

func TestSummarizer_NameVariantsFormSeparateGroups(t *testing.T) {
	ctx := context.Background()
	summarizer := NewSummarizer(nil)
	policy := config.DefaultPolicy()

	records := []domain.AttendanceRecord{
		{EmployeeID: "E001", EmployeeName: "Amira Hassan", CheckIn: clock(9, 0), CheckOut: clock(17, 0), ExpectedHours: 8},
		{EmployeeID: "E001", EmployeeName: "A. Hassan", CheckIn: clock(9, 0), CheckOut: clock(17, 0), ExpectedHours: 8},
	}

	summaries := summarizer.Summarize(ctx, BuildTimesheet(records, policy))

	// Grouping is by (id, name) jointly; a renamed employee splits.
	require.Len(t, summaries, 2)
	assert.Equal(t, "A. Hassan", summaries[0].EmployeeName)
	assert.Equal(t, "Amira Hassan", summaries[1].EmployeeName)
}

func TestSummarizer_SubMinuteLatenessDoesNotCount(t *testing.T) {
	ctx := context.Background()
	summarizer := NewSummarizer(nil)

	lateHalfMinute := []domain.DailyResult{{
		AttendanceRecord: domain.AttendanceRecord{EmployeeID: "E001", ExpectedHours: 8},
		LateHours:        0.008, // under the 0.01h counting threshold
		EarlyExitHours:   0.008,
	}}

	summaries := summarizer.Summarize(ctx, lateHalfMinute)
	require.Len(t, summaries, 1)
	assert.Zero(t, summaries[0].LateCount)
	assert.Zero(t, summaries[0].EarlyExitCount)
}
