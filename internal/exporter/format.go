package exporter

import (
	"fmt"
	"time"

	"attendcli/pkg/contracts/domain"
)

// formatFloat formats a float64 value for CSV output with exactly 2 decimal places
func formatFloat(f float64) string {
	return fmt.Sprintf("%.2f", f)
}

// formatOptFloat formats a nullable float; nil becomes an empty cell
func formatOptFloat(f *float64) string {
	if f == nil {
		return ""
	}
	return formatFloat(*f)
}

// formatInt formats an int value for CSV output
func formatInt(i int) string {
	return fmt.Sprintf("%d", i)
}

// formatPct formats a percentage with the one-decimal rounding it carries
func formatPct(f float64) string {
	return fmt.Sprintf("%.1f", f)
}

// formatBool formats a boolean value for CSV output
func formatBool(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

// formatDate formats a nullable calendar date; nil becomes an empty cell
func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}

// formatClock formats a nullable time of day; nil becomes an empty cell
func formatClock(c *domain.Clock) string {
	if c == nil {
		return ""
	}
	return c.String()
}
