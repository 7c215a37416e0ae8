// Package validation checks stored collections for integrity problems
// that would skew totals, projections or the streak.
package validation

import (
	"fmt"
	"time"

	"focusflow/internal/models"
)

// ConflictType represents the type of validation conflict
type ConflictType string

const (
	ConflictNonPositiveDuration  ConflictType = "non_positive_duration"
	ConflictDuplicateLogID       ConflictType = "duplicate_log_id"
	ConflictDuplicateJournalDate ConflictType = "duplicate_journal_date"
	ConflictRatingOutOfRange     ConflictType = "rating_out_of_range"
	ConflictInvalidDateKey       ConflictType = "invalid_date_key"
	ConflictEmptyHighlight       ConflictType = "empty_highlight"
)

// Conflict represents one detected integrity problem.
type Conflict struct {
	Type        ConflictType
	Description string
	Items       []string // record keys involved
}

// ValidationResult contains all detected conflicts
type ValidationResult struct {
	Conflicts []Conflict
}

// HasConflicts returns true if there are any conflicts
func (vr *ValidationResult) HasConflicts() bool {
	return len(vr.Conflicts) > 0
}

// FormatReport returns a human-readable report of all conflicts
func (vr *ValidationResult) FormatReport() string {
	if !vr.HasConflicts() {
		return "No conflicts detected."
	}

	report := "Conflicts detected:\n"
	for _, conflict := range vr.Conflicts {
		report += fmt.Sprintf("- %s\n", conflict.Description)
	}
	return report
}

type Validator struct{}

func New() *Validator {
	return &Validator{}
}

// ValidateWorkLogs flags logs that violate the append-only collection's
// invariants: unique ids and strictly positive durations.
func (v *Validator) ValidateWorkLogs(logs []models.WorkLog) ValidationResult {
	var result ValidationResult

	seen := make(map[string]bool, len(logs))
	for _, l := range logs {
		if l.DurationSeconds <= 0 {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictNonPositiveDuration,
				Description: fmt.Sprintf("work log %s has non-positive duration %d", l.ID, l.DurationSeconds),
				Items:       []string{l.ID},
			})
		}
		if seen[l.ID] {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictDuplicateLogID,
				Description: fmt.Sprintf("duplicate work log id %s", l.ID),
				Items:       []string{l.ID},
			})
		}
		seen[l.ID] = true
	}
	return result
}

// ValidateJournals flags entries that violate the one-entry-per-date
// rule, carry out-of-range ratings, or have malformed date keys.
func (v *Validator) ValidateJournals(entries []models.DailyJournal) ValidationResult {
	var result ValidationResult

	seen := make(map[string]bool, len(entries))
	for _, e := range entries {
		if seen[e.Date] {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictDuplicateJournalDate,
				Description: fmt.Sprintf("duplicate journal entry for %s", e.Date),
				Items:       []string{e.Date},
			})
		}
		seen[e.Date] = true

		if _, err := time.Parse(models.DateFormat, e.Date); err != nil {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictInvalidDateKey,
				Description: fmt.Sprintf("journal date %q is not a valid YYYY-MM-DD key", e.Date),
				Items:       []string{e.Date},
			})
		}
		if e.Rating < models.RatingMin || e.Rating > models.RatingMax {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictRatingOutOfRange,
				Description: fmt.Sprintf("journal %s has rating %d outside [%d, %d]", e.Date, e.Rating, models.RatingMin, models.RatingMax),
				Items:       []string{e.Date},
			})
		}
		if e.Highlight == "" {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictEmptyHighlight,
				Description: fmt.Sprintf("journal %s has an empty highlight", e.Date),
				Items:       []string{e.Date},
			})
		}
	}
	return result
}
