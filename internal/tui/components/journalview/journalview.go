// Package journalview renders the journal tab: today's finalized
// entry when one exists, otherwise the live projection.
package journalview

import (
	"fmt"
	"strings"
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

	entryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Padding(1, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Width(48)

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Padding(1, 0)
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

// Locked reports whether today's entry has already been submitted.
func (m Model) Locked() bool {
	today := time.Now().Format(models.DateFormat)
	_, ok := journal.EntryFor(m.journals, today)
	return ok
}

func (m Model) View() string {
	now := time.Now()
	today := now.Format(models.DateFormat)
	streak := journal.Streak(m.journals)

	var content string
	if entry, ok := journal.EntryFor(m.journals, today); ok {
		stars := strings.Repeat("★", entry.Rating) + strings.Repeat("☆", models.RatingMax-entry.Rating)
		content = lipgloss.JoinVertical(lipgloss.Center,
			titleStyle.Render("Today's journal"),
			entryStyle.Render(entry.Highlight),
			mutedStyle.Render(stars),
			mutedStyle.Render(fmt.Sprintf("Streak: %d", streak)),
		)
	} else {
		daysActive := stats.DaysActive(m.settings.StartDate, now)
		projected := journal.ProjectedRating(stats.TodayTotal(m.logs, now), daysActive)
		content = lipgloss.JoinVertical(lipgloss.Center,
			titleStyle.Render("No entry yet"),
			mutedStyle.Render(fmt.Sprintf("Projected rating: %d/5", projected)),
			mutedStyle.Render(fmt.Sprintf("Streak: %d", streak)),
			mutedStyle.Render("Press enter to write today's journal"),
		)
	}

	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	return content
}
