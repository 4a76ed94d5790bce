package dataprocessing

import (
	"strconv"
	"strings"
	"time"

	"attendcli/pkg/contracts/domain"
)

// dateLayouts are tried in order by ParseDate. Month-first slash dates match
// the convention of the upstream HR export.
var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
	"02-Jan-2006",
	"2 Jan 2006",
	"January 2, 2006",
	time.RFC3339,
}

// ParseClock normalizes a free-form time-of-day string into a Clock.
// Input must be strict 24-hour "HH:MM" after trimming; empty or malformed
// text yields nil. It never returns an error: an unparseable punch is a
// compliance signal, not a failure.
func ParseClock(text string) *domain.Clock {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil
	}
	t, err := time.Parse("15:04", trimmed)
	if err != nil {
		return nil
	}
	clock := domain.NewClock(t.Hour(), t.Minute())
	return &clock
}

// ParseDate normalizes a free-form date string into a calendar date.
// Empty or unparseable text yields nil.
func ParseDate(text string) *time.Time {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			date := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
			return &date
		}
	}
	return nil
}

// ParseNumber normalizes numeric text, tolerating thousands separators and
// surrounding whitespace. Missing or non-numeric input yields def.
func ParseNumber(text string, def float64) float64 {
	trimmed := strings.ReplaceAll(strings.TrimSpace(text), ",", "")
	if trimmed == "" {
		return def
	}
	val, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return def
	}
	return val
}
