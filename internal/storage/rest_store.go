package storage

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"focusflow/internal/models"
)

// DefaultPollInterval is how often RestStore refreshes subscribed
// collections when the caller does not override it.
const DefaultPollInterval = 5 * time.Second

// RestStore talks to a remote document store over HTTP. Collections
// live under /v1/principals/{principal}/; records are upserted with
// PUT on their key. Subscription is poll-based: each poll delivers a
// complete snapshot that consumers swap in wholesale.
type RestStore struct {
	baseURL      string
	client       *resty.Client
	pollInterval time.Duration
}

func NewRestStore(baseURL, token string, pollInterval time.Duration) *RestStore {
	if pollInterval <= 0 {
		pollInterval = DefaultPollInterval
	}

	c := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Content-Type", "application/json").
		SetTimeout(15 * time.Second)
	if token != "" {
		c.SetAuthToken(token)
	}

	return &RestStore{
		baseURL:      baseURL,
		client:       c,
		pollInterval: pollInterval,
	}
}

// Init verifies the remote endpoint is reachable. The backing service
// owns its own schema, so there is nothing to create locally.
func (s *RestStore) Init() error {
	return s.ping()
}

func (s *RestStore) Load() error {
	return s.ping()
}

func (s *RestStore) ping() error {
	resp, err := s.client.R().Get("/v1/health")
	if err != nil {
		return fmt.Errorf("document store unreachable: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("document store health check failed: %s", resp.Status())
	}
	return nil
}

func (s *RestStore) Close() error {
	return nil
}

func (s *RestStore) GetSettings(principal string) (models.UserSettings, error) {
	var settings models.UserSettings
	resp, err := s.client.R().
		SetResult(&settings).
		Get(fmt.Sprintf("/v1/principals/%s/settings", principal))
	if err != nil {
		return models.UserSettings{}, err
	}
	if resp.StatusCode() == http.StatusNotFound {
		return models.UserSettings{}, ErrNotFound
	}
	if resp.IsError() {
		return models.UserSettings{}, fmt.Errorf("get settings: %s", resp.Status())
	}
	return settings, nil
}

func (s *RestStore) SaveSettings(principal string, settings models.UserSettings) error {
	resp, err := s.client.R().
		SetBody(settings).
		Put(fmt.Sprintf("/v1/principals/%s/settings", principal))
	if err != nil {
		return err
	}
	if resp.IsError() {
		return fmt.Errorf("save settings: %s", resp.Status())
	}
	return nil
}

func (s *RestStore) AddWorkLog(principal string, log models.WorkLog) error {
	resp, err := s.client.R().
		SetBody(log).
		Put(fmt.Sprintf("/v1/principals/%s/worklogs/%s", principal, log.ID))
	if err != nil {
		return err
	}
	if resp.IsError() {
		return fmt.Errorf("add work log: %s", resp.Status())
	}
	return nil
}

func (s *RestStore) GetAllWorkLogs(principal string) ([]models.WorkLog, error) {
	var logs []models.WorkLog
	resp, err := s.client.R().
		SetResult(&logs).
		Get(fmt.Sprintf("/v1/principals/%s/worklogs", principal))
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("get work logs: %s", resp.Status())
	}
	return logs, nil
}

func (s *RestStore) UpsertJournal(principal string, entry models.DailyJournal) error {
	resp, err := s.client.R().
		SetBody(entry).
		Put(fmt.Sprintf("/v1/principals/%s/journals/%s", principal, entry.Date))
	if err != nil {
		return err
	}
	if resp.IsError() {
		return fmt.Errorf("upsert journal: %s", resp.Status())
	}
	return nil
}

func (s *RestStore) GetAllJournals(principal string) ([]models.DailyJournal, error) {
	var entries []models.DailyJournal
	resp, err := s.client.R().
		SetResult(&entries).
		Get(fmt.Sprintf("/v1/principals/%s/journals", principal))
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("get journals: %s", resp.Status())
	}
	return entries, nil
}

func (s *RestStore) GetConfigPath() string {
	return s.baseURL
}

// SubscribeWorkLogs polls the remote collection and delivers full
// snapshots on the returned channel until ctx is cancelled. Poll
// failures are skipped silently; the previous snapshot stays current
// from the consumer's point of view.
func (s *RestStore) SubscribeWorkLogs(ctx context.Context, principal string) (<-chan []models.WorkLog, error) {
	// Fail fast if the collection is unreadable at subscribe time.
	initial, err := s.GetAllWorkLogs(principal)
	if err != nil {
		return nil, err
	}

	ch := make(chan []models.WorkLog, 1)
	ch <- initial

	go func() {
		defer close(ch)
		ticker := time.NewTicker(s.pollInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				logs, err := s.GetAllWorkLogs(principal)
				if err != nil {
					continue
				}
				select {
				case ch <- logs:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return ch, nil
}
