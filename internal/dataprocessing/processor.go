package dataprocessing

import (
	"math"
	"strings"

	"attendcli/internal/config"
	"attendcli/pkg/contracts/domain"
)

// leaveUnplanned is the only leave type that still counts as an absence.
const leaveUnplanned = "unplanned"

// DeriveDay computes the derived timesheet fields for a single attendance
// record. All inputs are already typed; the function is pure and applies the
// compliance policy thresholds from cfg.
//
// Punch spans are evaluated on the same calendar day: a check-out earlier
// than the check-in produces a negative raw span, which is treated as an
// invalid punch pair rather than a shift crossing midnight.
func DeriveDay(rec domain.AttendanceRecord, policy config.PolicyConfig) domain.DailyResult {
	result := domain.DailyResult{AttendanceRecord: rec}

	if rec.CheckIn != nil && rec.CheckOut != nil {
		raw := rec.CheckIn.HoursUntil(*rec.CheckOut)
		result.WorkedHoursRaw = &raw

		// A negative net duration is reported as unknown, not clamped to
		// zero, so the invalid-punch signal survives aggregation.
		net := raw - rec.BreakMinutes/60.0
		if net >= 0 {
			result.WorkedHours = &net
		}
	}

	// Missing punch is purely about punch presence, independent of whether
	// a leave type explains the gap.
	result.MissingPunch = result.WorkedHoursRaw == nil

	// Arriving early is never "late"; leaving late is never an "early exit".
	if rec.ShiftStart != nil && rec.CheckIn != nil {
		result.LateHours = math.Max(0, rec.ShiftStart.HoursUntil(*rec.CheckIn))
	}
	if rec.CheckOut != nil && rec.ShiftEnd != nil {
		result.EarlyExitHours = math.Max(0, rec.CheckOut.HoursUntil(*rec.ShiftEnd))
	}

	// Overtime and under-hours are the two non-negative parts of
	// worked−expected; at most one of them can be positive.
	if result.WorkedHours != nil {
		result.OvertimeHours = math.Max(0, *result.WorkedHours-rec.ExpectedHours)
		result.UnderHours = math.Max(0, rec.ExpectedHours-*result.WorkedHours)
	}

	worked := 0.0
	if result.WorkedHours != nil {
		worked = *result.WorkedHours
	}
	leave := strings.ToLower(rec.LeaveType)
	result.Absent = worked == 0 && (leave == "" || leave == leaveUnplanned)

	result.ComplianceAlert = result.OvertimeHours > policy.OvertimeAlertHours ||
		result.LateHours > policy.LateAlertHours ||
		result.MissingPunch ||
		result.EarlyExitHours > policy.EarlyExitAlertHours

	return result
}

// BuildTimesheet derives the daily table from the full record set. Records
// are independent; output order matches input order.
func BuildTimesheet(records []domain.AttendanceRecord, policy config.PolicyConfig) []domain.DailyResult {
	results := make([]domain.DailyResult, 0, len(records))
	for _, rec := range records {
		results = append(results, DeriveDay(rec, policy))
	}
	return results
}
