package dataprocessing

import (
	"context"
	"log/slog"
	"math"
	"sort"

	"attendcli/pkg/contracts/domain"
)

// presenceEpsilon is the threshold, in hours, above which a late arrival or
// early exit counts towards the monthly tallies. Sub-minute noise from punch
// clocks does not count.
const presenceEpsilon = 0.01

// Summarizer aggregates daily timesheet rows into per-employee monthly
// summaries.
type Summarizer struct {
	logger *slog.Logger
}

// NewSummarizer creates a new monthly summarizer.
func NewSummarizer(logger *slog.Logger) *Summarizer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Summarizer{logger: logger}
}

// groupKey identifies one summary group. Grouping is by employee_id and
// employee_name jointly: an id appearing under two spellings of a name forms
// two groups, matching the upstream report's behavior.
type groupKey struct {
	id   string
	name string
}

// Summarize groups the daily table by employee and computes the monthly
// aggregates. Every aggregate is a commutative sum or count, so the result is
// independent of row order. Output rows are sorted ascending by employee_id,
// with employee_name as a deterministic secondary key.
func (s *Summarizer) Summarize(ctx context.Context, daily []domain.DailyResult) []domain.EmployeeSummary {
	s.logger.InfoContext(ctx, "summarizing daily results",
		slog.Int("row_count", len(daily)))

	groups := make(map[groupKey]*domain.EmployeeSummary)

	for _, row := range daily {
		key := groupKey{id: row.EmployeeID, name: row.EmployeeName}
		sum, ok := groups[key]
		if !ok {
			sum = &domain.EmployeeSummary{
				EmployeeID:   row.EmployeeID,
				EmployeeName: row.EmployeeName,
			}
			groups[key] = sum
		}

		worked := 0.0
		if row.WorkedHours != nil {
			worked = *row.WorkedHours
		}
		if worked > 0 {
			sum.DaysWorked++
		}
		sum.TotalHours += worked
		sum.ExpectedHoursTotal += row.ExpectedHours
		sum.OvertimeTotal += row.OvertimeHours
		if row.LateHours > presenceEpsilon {
			sum.LateCount++
		}
		if row.EarlyExitHours > presenceEpsilon {
			sum.EarlyExitCount++
		}
		if row.MissingPunch {
			sum.MissingPunches++
		}
		if row.Absent {
			sum.Absences++
		}
		if row.ComplianceAlert {
			sum.ComplianceAlerts++
		}
	}

	summaries := make([]domain.EmployeeSummary, 0, len(groups))
	for _, sum := range groups {
		sum.UtilizationPct = utilizationPct(sum.TotalHours, sum.ExpectedHoursTotal)
		summaries = append(summaries, *sum)
	}

	sort.Slice(summaries, func(i, j int) bool {
		if summaries[i].EmployeeID != summaries[j].EmployeeID {
			return summaries[i].EmployeeID < summaries[j].EmployeeID
		}
		return summaries[i].EmployeeName < summaries[j].EmployeeName
	})

	s.logger.InfoContext(ctx, "generated employee summaries",
		slog.Int("employee_count", len(summaries)))

	return summaries
}

// utilizationPct returns total/expected as a percentage, rounded half away
// from zero at one decimal. A zero expected total yields 0 so the report cell
// stays numeric.
func utilizationPct(total, expected float64) float64 {
	if expected == 0 {
		return 0
	}
	return math.Round(total/expected*1000) / 10
}
