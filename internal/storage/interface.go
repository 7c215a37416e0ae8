package storage

import (
	"context"
	"errors"

	"focusflow/internal/models"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("record not found")

// Provider is the persistence boundary. Every collection is scoped to
// a principal id; switching principals swaps the whole visible data
// set. Implementations are not safe for concurrent use by multiple
// goroutines without external synchronization, and sharing one store
// path between processes is not supported.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Settings (singleton per principal)
	GetSettings(principal string) (models.UserSettings, error)
	SaveSettings(principal string, settings models.UserSettings) error

	// Work logs (append-only, keyed by id)
	AddWorkLog(principal string, log models.WorkLog) error
	GetAllWorkLogs(principal string) ([]models.WorkLog, error)

	// Journals (upsert keyed by date)
	UpsertJournal(principal string, entry models.DailyJournal) error
	GetAllJournals(principal string) ([]models.DailyJournal, error)

	// Utils
	GetConfigPath() string
}

// Subscriber is an optional capability of push-based stores. Each
// value received on the channel is a complete snapshot of the
// principal's work logs; consumers must replace their in-memory
// collection wholesale. The channel closes when ctx is cancelled.
type Subscriber interface {
	SubscribeWorkLogs(ctx context.Context, principal string) (<-chan []models.WorkLog, error)
}
