package storage

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"focusflow/internal/models"
)

// fakeDocStore is a minimal in-memory stand-in for the remote
// document service.
type fakeDocStore struct {
	mu       sync.Mutex
	settings map[string]models.UserSettings
	logs     map[string][]models.WorkLog
	journals map[string]map[string]models.DailyJournal
}

func newFakeDocStore() *fakeDocStore {
	return &fakeDocStore{
		settings: make(map[string]models.UserSettings),
		logs:     make(map[string][]models.WorkLog),
		journals: make(map[string]map[string]models.DailyJournal),
	}
}

func (f *fakeDocStore) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("/v1/principals/", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")

		parts := strings.Split(strings.TrimPrefix(r.URL.Path, "/v1/principals/"), "/")
		if len(parts) < 2 {
			http.NotFound(w, r)
			return
		}
		principal := parts[0]

		switch {
		case parts[1] == "settings":
			if r.Method == http.MethodPut {
				var s models.UserSettings
				json.NewDecoder(r.Body).Decode(&s)
				f.settings[principal] = s
				w.WriteHeader(http.StatusOK)
				return
			}
			s, ok := f.settings[principal]
			if !ok {
				http.NotFound(w, r)
				return
			}
			json.NewEncoder(w).Encode(s)

		case parts[1] == "worklogs" && len(parts) == 3 && r.Method == http.MethodPut:
			var l models.WorkLog
			json.NewDecoder(r.Body).Decode(&l)
			f.logs[principal] = append(f.logs[principal], l)
			w.WriteHeader(http.StatusOK)

		case parts[1] == "worklogs":
			json.NewEncoder(w).Encode(f.logs[principal])

		case parts[1] == "journals" && len(parts) == 3 && r.Method == http.MethodPut:
			var e models.DailyJournal
			json.NewDecoder(r.Body).Decode(&e)
			if f.journals[principal] == nil {
				f.journals[principal] = make(map[string]models.DailyJournal)
			}
			f.journals[principal][parts[2]] = e
			w.WriteHeader(http.StatusOK)

		case parts[1] == "journals":
			entries := make([]models.DailyJournal, 0, len(f.journals[principal]))
			for _, e := range f.journals[principal] {
				entries = append(entries, e)
			}
			json.NewEncoder(w).Encode(entries)

		default:
			http.NotFound(w, r)
		}
	})
	return mux
}

func newTestRestStore(t *testing.T) (*RestStore, *fakeDocStore) {
	t.Helper()
	fake := newFakeDocStore()
	srv := httptest.NewServer(fake.handler())
	t.Cleanup(srv.Close)

	store := NewRestStore(srv.URL, "test-token", 10*time.Millisecond)
	require.NoError(t, store.Init())
	return store, fake
}

func TestRestStoreSettings(t *testing.T) {
	store, _ := newTestRestStore(t)

	_, err := store.GetSettings("alice")
	require.ErrorIs(t, err, ErrNotFound)

	start := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	require.NoError(t, store.SaveSettings("alice", models.UserSettings{StartDate: start}))

	got, err := store.GetSettings("alice")
	require.NoError(t, err)
	require.True(t, got.StartDate.Equal(start))
}

func TestRestStoreWorkLogs(t *testing.T) {
	store, _ := newTestRestStore(t)

	require.NoError(t, store.AddWorkLog("alice", models.WorkLog{
		ID: "log-1", Timestamp: time.Now().UTC(), DurationSeconds: 1500,
	}))

	logs, err := store.GetAllWorkLogs("alice")
	require.NoError(t, err)
	require.Len(t, logs, 1)
	require.Equal(t, 1500, logs[0].DurationSeconds)

	other, err := store.GetAllWorkLogs("bob")
	require.NoError(t, err)
	require.Empty(t, other)
}

func TestRestStoreJournalUpsert(t *testing.T) {
	store, _ := newTestRestStore(t)

	require.NoError(t, store.UpsertJournal("alice", models.DailyJournal{
		Date: "2025-06-01", Highlight: "draft", Rating: 3,
	}))
	require.NoError(t, store.UpsertJournal("alice", models.DailyJournal{
		Date: "2025-06-01", Highlight: "final", Rating: 5,
	}))

	entries, err := store.GetAllJournals("alice")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, "final", entries[0].Highlight)
}

func TestRestStoreSubscribeDeliversSnapshots(t *testing.T) {
	store, _ := newTestRestStore(t)

	require.NoError(t, store.AddWorkLog("alice", models.WorkLog{
		ID: "log-1", Timestamp: time.Now().UTC(), DurationSeconds: 1500,
	}))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := store.SubscribeWorkLogs(ctx, "alice")
	require.NoError(t, err)

	// Initial snapshot arrives immediately.
	snapshot := <-ch
	require.Len(t, snapshot, 1)

	require.NoError(t, store.AddWorkLog("alice", models.WorkLog{
		ID: "log-2", Timestamp: time.Now().UTC(), DurationSeconds: 300,
	}))

	deadline := time.After(2 * time.Second)
	for len(snapshot) < 2 {
		select {
		case snapshot = <-ch:
		case <-deadline:
			t.Fatal("timed out waiting for updated snapshot")
		}
	}
	require.Len(t, snapshot, 2)
}

func TestRestStoreSubscribeClosesOnCancel(t *testing.T) {
	store, _ := newTestRestStore(t)

	ctx, cancel := context.WithCancel(context.Background())
	ch, err := store.SubscribeWorkLogs(ctx, "alice")
	require.NoError(t, err)

	<-ch // initial snapshot
	cancel()

	deadline := time.After(2 * time.Second)
	for {
		select {
		case _, ok := <-ch:
			if !ok {
				return // channel closed, no orphaned poller
			}
		case <-deadline:
			t.Fatal("channel not closed after cancellation")
		}
	}
}

func TestRestStoreInitFailsWhenUnreachable(t *testing.T) {
	store := NewRestStore("http://127.0.0.1:1", "", time.Second)
	require.Error(t, store.Init())
}
