// Package statsview renders the progress totals tab.
package statsview

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"focusflow/internal/journal"
	"focusflow/internal/models"
	"focusflow/internal/stats"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			Padding(1, 2)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Width(14)

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Bold(true)
)

type Model struct {
	logs     []models.WorkLog
	journals []models.DailyJournal
	settings models.UserSettings
	width    int
	height   int
}

func New(logs []models.WorkLog, journals []models.DailyJournal, settings models.UserSettings) Model {
	return Model{logs: logs, journals: journals, settings: settings}
}

// SetLogs replaces the work log collection wholesale. Used both for
// local appends and for snapshots pushed by a subscribing store.
func (m *Model) SetLogs(logs []models.WorkLog) {
	m.logs = logs
}

func (m *Model) SetJournals(journals []models.DailyJournal) {
	m.journals = journals
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m Model) View() string {
	now := time.Now()
	daysActive := stats.DaysActive(m.settings.StartDate, now)
	todayTotal := stats.TodayTotal(m.logs, now)

	row := func(label, value string) string {
		return labelStyle.Render(label) + valueStyle.Render(value)
	}

	rows := []string{
		titleStyle.Render(fmt.Sprintf("Day #%d", daysActive)),
		row("Today", stats.FormatDuration(todayTotal)),
		row("This week", stats.FormatDuration(stats.WeekTotal(m.logs, now))),
		row("This month", stats.FormatDuration(stats.MonthTotal(m.logs, now))),
		row("Daily target", stats.FormatDuration(journal.TargetSeconds(daysActive))),
		row("Streak", fmt.Sprintf("%d", journal.Streak(m.journals))),
	}

	today := now.Format(models.DateFormat)
	if entry, ok := journal.EntryFor(m.journals, today); ok {
		rows = append(rows, row("Journal", fmt.Sprintf("submitted (%d/5)", entry.Rating)))
	} else {
		rows = append(rows, row("Projected",
			fmt.Sprintf("%d/5", journal.ProjectedRating(todayTotal, daysActive))))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, rows...)
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	return content
}
