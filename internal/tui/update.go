package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/google/uuid"

	"focusflow/internal/journal"
	"focusflow/internal/models"
	"focusflow/internal/stats"
	"focusflow/internal/timer"
	"focusflow/internal/tui/components/countdown"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		contentHeight := msg.Height - 4 // tabs + help
		m.countdown.SetSize(msg.Width, contentHeight)
		m.statsModel.SetSize(msg.Width, contentHeight)
		m.journalView.SetSize(msg.Width, contentHeight)
		return m, nil

	case countdown.TickMsg:
		var cmd tea.Cmd
		m.countdown, cmd = m.countdown.Update(msg)
		return m, cmd

	case countdown.CompletedMsg:
		return m.recordCompletion(msg.Completion), nil

	case workLogSnapshotMsg:
		m.logs = []models.WorkLog(msg)
		m.statsModel.SetLogs(m.logs)
		m.journalView.SetLogs(m.logs)
		return m, listenForSnapshots(m.snapshots)

	case tea.KeyMsg:
		switch m.state {
		case StateManualLogForm, StateJournalForm:
			return m.updateForm(msg)
		default:
			return m.handleKey(msg)
		}
	}

	if m.state == StateManualLogForm || m.state == StateJournalForm {
		return m.updateForm(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.teardown()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Tab):
		m.state = (m.state + 1) % tabCount
		return m, nil

	case key.Matches(msg, m.keys.ShiftTab):
		m.state = (m.state - 1 + tabCount) % tabCount
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.ManualLog):
		return m.openManualLogForm()
	}

	if m.state == StateTimer {
		switch {
		case key.Matches(msg, m.keys.StartPause):
			var cmd tea.Cmd
			m.countdown, cmd = m.countdown.Toggle()
			return m, cmd
		case key.Matches(msg, m.keys.Reset):
			m.countdown = m.countdown.Reset()
			return m, nil
		case key.Matches(msg, m.keys.ModeFocus):
			m.countdown = m.countdown.SelectMode(timer.ModeFocus)
			return m, nil
		case key.Matches(msg, m.keys.ModeShort):
			m.countdown = m.countdown.SelectMode(timer.ModeShort)
			return m, nil
		case key.Matches(msg, m.keys.ModeLong):
			m.countdown = m.countdown.SelectMode(timer.ModeLong)
			return m, nil
		}
	}

	if m.state == StateJournal && key.Matches(msg, m.keys.Journal) {
		return m.openJournalForm()
	}

	return m, nil
}

// recordCompletion persists a completed-work event and refreshes the
// derived views. A failed write is logged and the in-memory state kept
// as the optimistic result; there is no rollback or retry.
func (m Model) recordCompletion(ev timer.Completion) Model {
	workLog := models.WorkLog{
		ID:              uuid.New().String(),
		Timestamp:       ev.Timestamp,
		DurationSeconds: ev.DurationSeconds,
	}

	if err := m.store.AddWorkLog(m.principal.ID, workLog); err != nil {
		m.log.Error().Err(err).
			Str("principal", m.principal.ID).
			Int("duration_seconds", workLog.DurationSeconds).
			Msg("failed to persist work log")
	}

	m.logs = append(m.logs, workLog)
	m.statsModel.SetLogs(m.logs)
	m.journalView.SetLogs(m.logs)

	m.sink.SessionComplete()
	return m
}

func (m Model) openManualLogForm() (tea.Model, tea.Cmd) {
	m.previousState = m.state
	m.state = StateManualLogForm
	m.manualForm = &ManualLogFormModel{}
	m.form = newManualLogForm(m.manualForm)
	return m, m.form.Init()
}

func (m Model) openJournalForm() (tea.Model, tea.Cmd) {
	if m.journalView.Locked() {
		// Today is already submitted; nothing to edit.
		return m, nil
	}

	now := time.Now()
	daysActive := stats.DaysActive(m.settings.StartDate, now)
	projected := journal.ProjectedRating(stats.TodayTotal(m.logs, now), daysActive)

	m.previousState = m.state
	m.state = StateJournalForm
	m.journalForm = &JournalFormModel{Rating: strconv.Itoa(projected)}
	m.form = newJournalForm(m.journalForm, projected)
	return m, m.form.Init()
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		state := m.state
		m.state = m.previousState
		if state == StateManualLogForm {
			return m.submitManualLog(), cmd
		}
		return m.submitJournal(), cmd

	case huh.StateAborted:
		m.state = m.previousState
		return m, cmd
	}

	return m, cmd
}

func (m Model) submitManualLog() Model {
	minutes, err := strconv.Atoi(strings.TrimSpace(m.manualForm.Minutes))
	if err != nil {
		// Form validation already rejected this; nothing to submit.
		return m
	}
	ev, ok := timer.ManualCompletion(minutes, time.Now())
	if !ok {
		return m
	}
	return m.recordCompletion(ev)
}

func (m Model) submitJournal() Model {
	rating, err := strconv.Atoi(strings.TrimSpace(m.journalForm.Rating))
	if err != nil {
		return m
	}
	entry, err := journal.NewEntry(m.journalForm.Highlight, rating, time.Now())
	if err != nil {
		return m
	}

	if err := m.store.UpsertJournal(m.principal.ID, entry); err != nil {
		m.log.Error().Err(err).
			Str("principal", m.principal.ID).
			Str("date", entry.Date).
			Msg("failed to persist journal entry")
	}

	// Optimistic in-memory upsert mirroring the store semantics.
	replaced := false
	for i := range m.journals {
		if m.journals[i].Date == entry.Date {
			m.journals[i] = entry
			replaced = true
			break
		}
	}
	if !replaced {
		m.journals = append(m.journals, entry)
	}
	m.statsModel.SetJournals(m.journals)
	m.journalView.SetJournals(m.journals)
	return m
}

func newManualLogForm(fm *ManualLogFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Minutes worked").
				Value(&fm.Minutes).
				Validate(func(s string) error {
					i, err := strconv.Atoi(strings.TrimSpace(s))
					if err != nil {
						return fmt.Errorf("enter a whole number of minutes")
					}
					if i <= 0 {
						return fmt.Errorf("minutes must be positive")
					}
					return nil
				}),
		),
	).WithTheme(huh.ThemeDracula())
}

func newJournalForm(fm *JournalFormModel, projected int) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Highlight").
				Description("Best thing about today").
				Value(&fm.Highlight).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("highlight cannot be empty")
					}
					return nil
				}),
			huh.NewInput().
				Title(fmt.Sprintf("Rating (0-5, projected %d)", projected)).
				Value(&fm.Rating).
				Validate(func(s string) error {
					i, err := strconv.Atoi(strings.TrimSpace(s))
					if err != nil {
						return err
					}
					if i < models.RatingMin || i > models.RatingMax {
						return fmt.Errorf("rating must be 0-5")
					}
					return nil
				}),
		),
	).WithTheme(huh.ThemeDracula())
}
