package domain

import (
	"fmt"
	"time"
)

// Clock is a minute-precision time of day. Punch and shift times carry no
// date component; spans are always evaluated on the same calendar day.
type Clock struct {
	Hour   int `json:"hour"`
	Minute int `json:"minute"`
}

// NewClock creates a Clock from an hour and minute.
func NewClock(hour, minute int) Clock {
	return Clock{Hour: hour, Minute: minute}
}

// Minutes returns the number of minutes since midnight.
func (c Clock) Minutes() int {
	return c.Hour*60 + c.Minute
}

// HoursUntil returns the signed span in hours from c to other, interpreted on
// the same reference day. A negative result means other is earlier than c;
// crossing midnight is not modeled.
func (c Clock) HoursUntil(other Clock) float64 {
	return float64(other.Minutes()-c.Minutes()) / 60.0
}

// String renders the clock in 24-hour "HH:MM" form.
func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// AttendanceRecord is one employee's attendance row for one date, with all
// free-form fields already normalized to typed values. Nil pointers stand for
// values that were missing or failed to parse.
type AttendanceRecord struct {
	EmployeeID    string     `json:"employee_id" csv:"employee_id" validate:"required"`
	EmployeeName  string     `json:"employee_name" csv:"employee_name"`
	Date          *time.Time `json:"date,omitempty" csv:"date"`
	CheckIn       *Clock     `json:"check_in,omitempty" csv:"check_in"`
	CheckOut      *Clock     `json:"check_out,omitempty" csv:"check_out"`
	ShiftStart    *Clock     `json:"shift_start,omitempty" csv:"shift_start"`
	ShiftEnd      *Clock     `json:"shift_end,omitempty" csv:"shift_end"`
	BreakMinutes  float64    `json:"break_minutes" csv:"break_minutes"`
	ExpectedHours float64    `json:"expected_hours" csv:"expected_hours"`
	WorkType      string     `json:"work_type" csv:"work_type"`
	LeaveType     string     `json:"leave_type" csv:"leave_type"`
}

// DailyResult is the derived timesheet row for one attendance record. It is
// computed once and never mutated afterwards.
type DailyResult struct {
	AttendanceRecord

	// WorkedHoursRaw is the elapsed check_in to check_out span. Nil when
	// either punch is missing. An inverted pair (check_out before check_in)
	// keeps its negative value so MissingPunch stays a pure punch-presence
	// signal.
	WorkedHoursRaw *float64 `json:"worked_hours_raw"`

	// WorkedHours is WorkedHoursRaw minus the break. Nil when the raw span
	// is nil or the net result is negative; an invalid span is reported as
	// unknown rather than clamped to zero.
	WorkedHours *float64 `json:"worked_hours"`

	LateHours       float64 `json:"late_hours"`
	EarlyExitHours  float64 `json:"early_exit_hours"`
	OvertimeHours   float64 `json:"overtime_hours"`
	UnderHours      float64 `json:"under_hours"`
	MissingPunch    bool    `json:"missing_punch"`
	Absent          bool    `json:"absent"`
	ComplianceAlert bool    `json:"compliance_alert"`
}

// EmployeeSummary aggregates one employee's daily results over the month.
type EmployeeSummary struct {
	EmployeeID         string  `json:"employee_id"`
	EmployeeName       string  `json:"employee_name"`
	DaysWorked         int     `json:"days_worked"`
	TotalHours         float64 `json:"total_hours"`
	ExpectedHoursTotal float64 `json:"expected_hours_total"`
	OvertimeTotal      float64 `json:"overtime_total"`
	LateCount          int     `json:"late_count"`
	EarlyExitCount     int     `json:"early_exit_count"`
	MissingPunches     int     `json:"missing_punches"`
	Absences           int     `json:"absences"`
	ComplianceAlerts   int     `json:"compliance_alerts"`
	UtilizationPct     float64 `json:"utilization_pct"`
}

// Insights holds the ranked top-N views over the monthly summary, one per
// compliance metric.
type Insights struct {
	TopLatecomers     []EmployeeSummary `json:"top_latecomers"`
	TopOvertime       []EmployeeSummary `json:"top_overtime"`
	TopMissingPunches []EmployeeSummary `json:"top_missing_punches"`
	TopAbsentees      []EmployeeSummary `json:"top_absentees"`
}
