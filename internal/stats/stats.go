// Package stats derives progress totals from the work log collection.
// All functions are pure over the full collection and an explicit
// reference time so callers (and tests) control the clock.
package stats

import (
	"fmt"
	"time"

	"focusflow/internal/models"
)

// TodayTotal sums the durations of logs whose local calendar date
// matches now's.
func TodayTotal(logs []models.WorkLog, now time.Time) int {
	y, m, d := now.Date()
	total := 0
	for _, l := range logs {
		ly, lm, ld := l.Timestamp.In(now.Location()).Date()
		if ly == y && lm == m && ld == d {
			total += l.DurationSeconds
		}
	}
	return total
}

// WeekTotal sums the durations of logs within the sliding 168-hour
// window ending at now. This is deliberately not an aligned calendar
// week.
func WeekTotal(logs []models.WorkLog, now time.Time) int {
	cutoff := now.Add(-7 * 24 * time.Hour)
	total := 0
	for _, l := range logs {
		if !l.Timestamp.Before(cutoff) {
			total += l.DurationSeconds
		}
	}
	return total
}

// MonthTotal sums the durations of logs whose local month and year
// match now's (a calendar window, unlike WeekTotal).
func MonthTotal(logs []models.WorkLog, now time.Time) int {
	total := 0
	for _, l := range logs {
		lt := l.Timestamp.In(now.Location())
		if lt.Month() == now.Month() && lt.Year() == now.Year() {
			total += l.DurationSeconds
		}
	}
	return total
}

// DaysActive counts how many days the user has been around, starting
// at 1 on the first day.
func DaysActive(start, now time.Time) int {
	days := int(now.Sub(start).Hours()/24) + 1
	if days < 1 {
		return 1
	}
	return days
}

// FormatDuration renders seconds as "1h 40m", "45m" or "30s".
func FormatDuration(seconds int) string {
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	if h > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	if m > 0 {
		return fmt.Sprintf("%dm", m)
	}
	return fmt.Sprintf("%ds", s)
}
