// Package journal implements daily reflection entries, the projected
// rating formula and the streak computation.
package journal

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"focusflow/internal/models"
)

// Daily targets for productive time. The target steps up once the
// user is past their first ten days.
const (
	RampUpTargetSeconds = 4 * 3600
	FullTargetSeconds   = 5 * 3600
	RampUpDays          = 10
)

// QualifyingRating is the minimum rating an entry needs to extend a
// streak.
const QualifyingRating = 3

// TargetSeconds returns the productive-time goal for a user who has
// been active the given number of days.
func TargetSeconds(daysActive int) int {
	if daysActive <= RampUpDays {
		return RampUpTargetSeconds
	}
	return FullTargetSeconds
}

// ProjectedRating estimates today's rating from time worked so far,
// scaled against the daily target and capped at 5.
func ProjectedRating(todaySeconds, daysActive int) int {
	target := TargetSeconds(daysActive)
	rating := int(math.Round(float64(todaySeconds) / float64(target) * 5))
	if rating > models.RatingMax {
		return models.RatingMax
	}
	return rating
}

// NewEntry validates highlight and rating and builds today's journal
// entry. An empty or whitespace-only highlight is rejected; the rating
// must be within [0, 5].
func NewEntry(highlight string, rating int, now time.Time) (models.DailyJournal, error) {
	if strings.TrimSpace(highlight) == "" {
		return models.DailyJournal{}, fmt.Errorf("highlight must not be empty")
	}
	if rating < models.RatingMin || rating > models.RatingMax {
		return models.DailyJournal{}, fmt.Errorf("rating must be between %d and %d", models.RatingMin, models.RatingMax)
	}
	return models.DailyJournal{
		Date:      now.Format(models.DateFormat),
		Highlight: highlight,
		Rating:    rating,
	}, nil
}

// EntryFor returns the entry with the given date key, if present.
func EntryFor(entries []models.DailyJournal, date string) (models.DailyJournal, bool) {
	for _, e := range entries {
		if e.Date == date {
			return e, true
		}
	}
	return models.DailyJournal{}, false
}

// Streak counts the most recent consecutive qualifying entries
// (rating >= 3), newest first, stopping at the first entry below the
// bar. It counts entries in date order, not calendar days: a day with
// no entry at all does not break the streak.
func Streak(entries []models.DailyJournal) int {
	sorted := make([]models.DailyJournal, len(entries))
	copy(sorted, entries)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Date > sorted[j].Date
	})

	streak := 0
	for _, e := range sorted {
		if e.Rating < QualifyingRating {
			break
		}
		streak++
	}
	return streak
}
