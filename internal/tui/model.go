package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/rs/zerolog"

	"focusflow/internal/auth"
	"focusflow/internal/models"
	"focusflow/internal/notify"
	"focusflow/internal/storage"
	"focusflow/internal/tui/components/countdown"
	"focusflow/internal/tui/components/journalview"
	"focusflow/internal/tui/components/statsview"
)

type SessionState int

const (
	StateTimer SessionState = iota
	StateStats
	StateJournal
	StateManualLogForm
	StateJournalForm
)

// tabCount is how many states are reachable with tab; the form states
// are entered explicitly.
const tabCount = 3

type ManualLogFormModel struct {
	Minutes string
}

type JournalFormModel struct {
	Highlight string
	Rating    string
}

// workLogSnapshotMsg carries a full work-log collection pushed by a
// subscribing store. It replaces the in-memory collection wholesale.
type workLogSnapshotMsg []models.WorkLog

type Model struct {
	store     storage.Provider
	auth      auth.Provider
	principal models.Principal
	sink      notify.Sink
	log       zerolog.Logger

	state         SessionState
	previousState SessionState
	keys          KeyMap
	help          help.Model

	countdown   countdown.Model
	statsModel  statsview.Model
	journalView journalview.Model

	form        *huh.Form
	manualForm  *ManualLogFormModel
	journalForm *JournalFormModel

	logs     []models.WorkLog
	journals []models.DailyJournal
	settings models.UserSettings

	snapshots <-chan []models.WorkLog
	subCancel context.CancelFunc

	quitting bool
	width    int
	height   int
}

func NewModel(store storage.Provider, authProvider auth.Provider, principal models.Principal, sink notify.Sink, log zerolog.Logger) Model {
	logs, err := store.GetAllWorkLogs(principal.ID)
	if err != nil {
		log.Error().Err(err).Msg("failed to load work logs")
		logs = []models.WorkLog{}
	}
	journals, err := store.GetAllJournals(principal.ID)
	if err != nil {
		log.Error().Err(err).Msg("failed to load journals")
		journals = []models.DailyJournal{}
	}
	settings, err := store.GetSettings(principal.ID)
	if err != nil {
		log.Error().Err(err).Msg("failed to load settings")
	}

	m := Model{
		store:       store,
		auth:        authProvider,
		principal:   principal,
		sink:        sink,
		log:         log,
		state:       StateTimer,
		keys:        DefaultKeyMap(),
		help:        help.New(),
		countdown:   countdown.New(),
		statsModel:  statsview.New(logs, journals, settings),
		journalView: journalview.New(logs, journals, settings),
		logs:        logs,
		journals:    journals,
		settings:    settings,
	}

	// Push-based stores stream collection snapshots; consume them for
	// as long as the program runs.
	if sub, ok := store.(storage.Subscriber); ok {
		ctx, cancel := context.WithCancel(context.Background())
		ch, err := sub.SubscribeWorkLogs(ctx, principal.ID)
		if err != nil {
			log.Error().Err(err).Msg("work log subscription failed")
			cancel()
		} else {
			m.snapshots = ch
			m.subCancel = cancel
		}
	}

	return m
}

func (m Model) Init() tea.Cmd {
	if m.snapshots != nil {
		return listenForSnapshots(m.snapshots)
	}
	return nil
}

func listenForSnapshots(ch <-chan []models.WorkLog) tea.Cmd {
	return func() tea.Msg {
		logs, ok := <-ch
		if !ok {
			return nil
		}
		return workLogSnapshotMsg(logs)
	}
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	switch m.state {
	case StateTimer:
		keys = append(keys, m.keys.StartPause, m.keys.Reset, m.keys.ManualLog)
	case StateStats:
		keys = append(keys, m.keys.ManualLog)
	case StateJournal:
		keys = append(keys, m.keys.Journal)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	return m.keys.FullHelp()
}

// teardown stops everything that could outlive the program: the
// snapshot subscription and, by stopping the state machine, the tick
// chain.
func (m *Model) teardown() {
	if m.subCancel != nil {
		m.subCancel()
	}
}
