package dataprocessing

import (
	"sort"

	"attendcli/pkg/contracts/domain"
)

// RankInsights produces the four ranked views over the monthly summary: top
// latecomers, top overtime, top missing punches and top absentees. Each view
// keeps at most topN rows, sorted descending by its metric. Summaries are
// expected in employee_id order; a stable sort preserves that order between
// tied employees. Fewer than topN employees means every view returns all of
// them.
func RankInsights(summaries []domain.EmployeeSummary, topN int) domain.Insights {
	return domain.Insights{
		TopLatecomers: topBy(summaries, topN, func(a, b domain.EmployeeSummary) bool {
			return a.LateCount > b.LateCount
		}),
		TopOvertime: topBy(summaries, topN, func(a, b domain.EmployeeSummary) bool {
			return a.OvertimeTotal > b.OvertimeTotal
		}),
		TopMissingPunches: topBy(summaries, topN, func(a, b domain.EmployeeSummary) bool {
			return a.MissingPunches > b.MissingPunches
		}),
		TopAbsentees: topBy(summaries, topN, func(a, b domain.EmployeeSummary) bool {
			return a.Absences > b.Absences
		}),
	}
}

// topBy returns the first n summaries under the given strict ordering,
// without mutating the input slice.
func topBy(summaries []domain.EmployeeSummary, n int, more func(a, b domain.EmployeeSummary) bool) []domain.EmployeeSummary {
	ranked := make([]domain.EmployeeSummary, len(summaries))
	copy(ranked, summaries)

	sort.SliceStable(ranked, func(i, j int) bool {
		return more(ranked[i], ranked[j])
	})

	if n >= 0 && len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}
