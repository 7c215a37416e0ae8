package models

import "time"

// WorkLog records one completed block of focused work. Logs are
// append-only; once written they are never edited or deleted in-app.
type WorkLog struct {
	ID              string    `json:"id"`
	Timestamp       time.Time `json:"timestamp"`
	DurationSeconds int       `json:"duration_seconds"`
}

// UserSettings is a per-principal singleton created on first run.
type UserSettings struct {
	StartDate time.Time `json:"start_date"`
}
