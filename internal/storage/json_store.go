package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"focusflow/internal/models"
)

// account groups one principal's collections inside the JSON file.
type account struct {
	Settings *models.UserSettings           `json:"settings,omitempty"`
	WorkLogs []models.WorkLog               `json:"work_logs"`
	Journals map[string]models.DailyJournal `json:"journals"`
}

type jsonDocument struct {
	Version  int                 `json:"version"`
	Accounts map[string]*account `json:"accounts"`
}

// JSONStore keeps everything in a single JSON file, rewritten whole on
// each mutation. Good enough for the data volumes involved; use the
// SQLite store for anything bigger.
type JSONStore struct {
	path string
	doc  *jsonDocument
}

func NewJSONStore(path string) *JSONStore {
	return &JSONStore{path: path}
}

func (s *JSONStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.doc = &jsonDocument{
		Version:  1,
		Accounts: make(map[string]*account),
	}
	return s.save()
}

func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'focusflow init' first")
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	s.doc = &jsonDocument{}
	if err := json.Unmarshal(data, s.doc); err != nil {
		return fmt.Errorf("failed to parse storage: %w", err)
	}

	if s.doc.Accounts == nil {
		s.doc.Accounts = make(map[string]*account)
	}
	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}
	return nil
}

func (s *JSONStore) accountFor(principal string) (*account, error) {
	if s.doc == nil {
		return nil, fmt.Errorf("storage not loaded")
	}
	acc, ok := s.doc.Accounts[principal]
	if !ok {
		acc = &account{Journals: make(map[string]models.DailyJournal)}
		s.doc.Accounts[principal] = acc
	}
	if acc.Journals == nil {
		acc.Journals = make(map[string]models.DailyJournal)
	}
	return acc, nil
}

func (s *JSONStore) GetSettings(principal string) (models.UserSettings, error) {
	acc, err := s.accountFor(principal)
	if err != nil {
		return models.UserSettings{}, err
	}
	if acc.Settings == nil {
		return models.UserSettings{}, ErrNotFound
	}
	return *acc.Settings, nil
}

func (s *JSONStore) SaveSettings(principal string, settings models.UserSettings) error {
	acc, err := s.accountFor(principal)
	if err != nil {
		return err
	}
	acc.Settings = &settings
	return s.save()
}

func (s *JSONStore) AddWorkLog(principal string, log models.WorkLog) error {
	acc, err := s.accountFor(principal)
	if err != nil {
		return err
	}
	acc.WorkLogs = append(acc.WorkLogs, log)
	return s.save()
}

func (s *JSONStore) GetAllWorkLogs(principal string) ([]models.WorkLog, error) {
	acc, err := s.accountFor(principal)
	if err != nil {
		return nil, err
	}
	logs := make([]models.WorkLog, len(acc.WorkLogs))
	copy(logs, acc.WorkLogs)
	return logs, nil
}

func (s *JSONStore) UpsertJournal(principal string, entry models.DailyJournal) error {
	acc, err := s.accountFor(principal)
	if err != nil {
		return err
	}
	acc.Journals[entry.Date] = entry
	return s.save()
}

func (s *JSONStore) GetAllJournals(principal string) ([]models.DailyJournal, error) {
	acc, err := s.accountFor(principal)
	if err != nil {
		return nil, err
	}
	entries := make([]models.DailyJournal, 0, len(acc.Journals))
	for _, e := range acc.Journals {
		entries = append(entries, e)
	}
	return entries, nil
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}
