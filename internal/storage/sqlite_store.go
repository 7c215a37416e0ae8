package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"focusflow/internal/models"
)

// schemaVersion is stamped into the database's user_version pragma so
// a newer binary can detect an older file and vice versa.
const schemaVersion = 1

const schema = `
CREATE TABLE IF NOT EXISTS settings (
	principal  TEXT PRIMARY KEY,
	start_date TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS work_logs (
	id               TEXT PRIMARY KEY,
	principal        TEXT NOT NULL,
	timestamp        TEXT NOT NULL,
	duration_seconds INTEGER NOT NULL CHECK (duration_seconds > 0)
);
CREATE INDEX IF NOT EXISTS idx_work_logs_principal ON work_logs(principal);

CREATE TABLE IF NOT EXISTS journals (
	principal TEXT NOT NULL,
	date      TEXT NOT NULL,
	highlight TEXT NOT NULL,
	rating    INTEGER NOT NULL CHECK (rating BETWEEN 0 AND 5),
	PRIMARY KEY (principal, date)
);
`

type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{path: path}
}

func (s *SQLiteStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	if _, err := s.db.Exec(fmt.Sprintf("PRAGMA user_version = %d", schemaVersion)); err != nil {
		return fmt.Errorf("failed to stamp schema version: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Load() error {
	if s.db != nil {
		return nil
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run 'focusflow init' first")
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	var version int
	if err := s.db.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}
	if version != schemaVersion {
		return fmt.Errorf("unsupported schema version %d (expected %d)", version, schemaVersion)
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLiteStore) GetSettings(principal string) (models.UserSettings, error) {
	var startDate string
	err := s.db.QueryRow(
		"SELECT start_date FROM settings WHERE principal = ?", principal,
	).Scan(&startDate)
	if err == sql.ErrNoRows {
		return models.UserSettings{}, ErrNotFound
	}
	if err != nil {
		return models.UserSettings{}, err
	}

	ts, err := time.Parse(time.RFC3339Nano, startDate)
	if err != nil {
		return models.UserSettings{}, fmt.Errorf("parsing start_date: %w", err)
	}
	return models.UserSettings{StartDate: ts}, nil
}

func (s *SQLiteStore) SaveSettings(principal string, settings models.UserSettings) error {
	_, err := s.db.Exec(
		"INSERT OR REPLACE INTO settings (principal, start_date) VALUES (?, ?)",
		principal, settings.StartDate.Format(time.RFC3339Nano),
	)
	return err
}

func (s *SQLiteStore) AddWorkLog(principal string, log models.WorkLog) error {
	_, err := s.db.Exec(
		"INSERT INTO work_logs (id, principal, timestamp, duration_seconds) VALUES (?, ?, ?, ?)",
		log.ID, principal, log.Timestamp.Format(time.RFC3339Nano), log.DurationSeconds,
	)
	return err
}

func (s *SQLiteStore) GetAllWorkLogs(principal string) ([]models.WorkLog, error) {
	rows, err := s.db.Query(
		"SELECT id, timestamp, duration_seconds FROM work_logs WHERE principal = ? ORDER BY timestamp",
		principal,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var logs []models.WorkLog
	for rows.Next() {
		var l models.WorkLog
		var ts string
		if err := rows.Scan(&l.ID, &ts, &l.DurationSeconds); err != nil {
			return nil, err
		}
		l.Timestamp, err = time.Parse(time.RFC3339Nano, ts)
		if err != nil {
			return nil, fmt.Errorf("parsing timestamp: %w", err)
		}
		logs = append(logs, l)
	}
	return logs, rows.Err()
}

func (s *SQLiteStore) UpsertJournal(principal string, entry models.DailyJournal) error {
	_, err := s.db.Exec(
		"INSERT OR REPLACE INTO journals (principal, date, highlight, rating) VALUES (?, ?, ?, ?)",
		principal, entry.Date, entry.Highlight, entry.Rating,
	)
	return err
}

func (s *SQLiteStore) GetAllJournals(principal string) ([]models.DailyJournal, error) {
	rows, err := s.db.Query(
		"SELECT date, highlight, rating FROM journals WHERE principal = ? ORDER BY date",
		principal,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []models.DailyJournal
	for rows.Next() {
		var e models.DailyJournal
		if err := rows.Scan(&e.Date, &e.Highlight, &e.Rating); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (s *SQLiteStore) GetConfigPath() string {
	return s.path
}
