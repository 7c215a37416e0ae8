package tui

import (
	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case StateTimer:
		content = m.countdown.View()
	case StateStats:
		content = m.statsModel.View()
	case StateJournal:
		content = m.journalView.View()
	case StateManualLogForm, StateJournalForm:
		content = docStyle.Render(m.form.View())
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		content,
		m.help.View(m),
	)
}

func (m Model) viewTabs() string {
	var tabs []string
	for i, title := range []string{"Timer", "Stats", "Journal"} {
		if m.state == SessionState(i) || (m.state >= tabCount && m.previousState == SessionState(i)) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	tabs = append(tabs, principalStyle.Render(m.principal.DisplayName))
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}
