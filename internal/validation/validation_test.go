package validation

import (
	"testing"
	"time"

	"focusflow/internal/models"
)

func TestValidateWorkLogs_Clean(t *testing.T) {
	validator := New()

	logs := []models.WorkLog{
		{ID: "1", Timestamp: time.Now(), DurationSeconds: 1500},
		{ID: "2", Timestamp: time.Now(), DurationSeconds: 300},
	}

	result := validator.ValidateWorkLogs(logs)
	if result.HasConflicts() {
		t.Errorf("expected no conflicts, got: %s", result.FormatReport())
	}
}

func TestValidateWorkLogs_NonPositiveDuration(t *testing.T) {
	validator := New()

	logs := []models.WorkLog{
		{ID: "1", Timestamp: time.Now(), DurationSeconds: 0},
		{ID: "2", Timestamp: time.Now(), DurationSeconds: -60},
	}

	result := validator.ValidateWorkLogs(logs)
	if len(result.Conflicts) != 2 {
		t.Fatalf("expected 2 conflicts, got %d", len(result.Conflicts))
	}
	for _, c := range result.Conflicts {
		if c.Type != ConflictNonPositiveDuration {
			t.Errorf("expected ConflictNonPositiveDuration, got %s", c.Type)
		}
	}
}

func TestValidateWorkLogs_DuplicateIDs(t *testing.T) {
	validator := New()

	logs := []models.WorkLog{
		{ID: "1", Timestamp: time.Now(), DurationSeconds: 1500},
		{ID: "1", Timestamp: time.Now(), DurationSeconds: 300},
	}

	result := validator.ValidateWorkLogs(logs)
	found := false
	for _, c := range result.Conflicts {
		if c.Type == ConflictDuplicateLogID {
			found = true
		}
	}
	if !found {
		t.Error("expected ConflictDuplicateLogID conflict type")
	}
}

func TestValidateJournals_DuplicateDates(t *testing.T) {
	validator := New()

	entries := []models.DailyJournal{
		{Date: "2025-06-01", Highlight: "a", Rating: 3},
		{Date: "2025-06-01", Highlight: "b", Rating: 4},
	}

	result := validator.ValidateJournals(entries)
	found := false
	for _, c := range result.Conflicts {
		if c.Type == ConflictDuplicateJournalDate {
			found = true
		}
	}
	if !found {
		t.Error("expected ConflictDuplicateJournalDate conflict type")
	}
}

func TestValidateJournals_RatingAndDateAndHighlight(t *testing.T) {
	validator := New()

	entries := []models.DailyJournal{
		{Date: "2025-06-01", Highlight: "fine", Rating: 6},
		{Date: "not-a-date", Highlight: "fine", Rating: 3},
		{Date: "2025-06-03", Highlight: "", Rating: 3},
	}

	result := validator.ValidateJournals(entries)

	types := make(map[ConflictType]bool)
	for _, c := range result.Conflicts {
		types[c.Type] = true
	}
	for _, want := range []ConflictType{ConflictRatingOutOfRange, ConflictInvalidDateKey, ConflictEmptyHighlight} {
		if !types[want] {
			t.Errorf("expected conflict type %s", want)
		}
	}
}

func TestValidateJournals_Clean(t *testing.T) {
	validator := New()

	entries := []models.DailyJournal{
		{Date: "2025-06-01", Highlight: "good", Rating: 5},
		{Date: "2025-06-02", Highlight: "ok", Rating: 0},
	}

	result := validator.ValidateJournals(entries)
	if result.HasConflicts() {
		t.Errorf("expected no conflicts, got: %s", result.FormatReport())
	}
}
