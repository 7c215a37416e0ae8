// Package countdown renders the session timer tab and drives the
// underlying state machine with one message per wall-clock second.
package countdown

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"focusflow/internal/timer"
)

var (
	modeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			Padding(1, 2)

	clockStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Bold(true).
			Padding(1, 0).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Width(40).
			Align(lipgloss.Center)

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Padding(1, 0)

	finishedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true).
			Padding(1, 0)
)

// TickMsg advances the countdown by one second. Each message carries
// the id of the tick chain that produced it so a chain orphaned by
// pause, reset or mode switch dies instead of double-ticking.
type TickMsg struct {
	ChainID int
	Time    time.Time
}

// CompletedMsg is emitted once when a focus session reaches zero.
type CompletedMsg struct {
	Completion timer.Completion
}

type Model struct {
	timer    *timer.Timer
	progress progress.Model
	chainID  int
	width    int
	height   int
}

func New() Model {
	return Model{
		timer:    timer.New(),
		progress: progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage()),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) tick() tea.Cmd {
	id := m.chainID
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return TickMsg{ChainID: id, Time: t}
	})
}

// Toggle starts or pauses the countdown. Starting arms a fresh tick
// chain; pausing bumps the chain id so the in-flight tick is ignored.
func (m Model) Toggle() (Model, tea.Cmd) {
	wasRunning := m.timer.Running()
	m.timer.Toggle()
	m.chainID++
	if wasRunning {
		return m, nil
	}
	return m, m.tick()
}

func (m Model) SelectMode(mode timer.Mode) Model {
	m.timer.SelectMode(mode)
	m.chainID++
	return m
}

func (m Model) Reset() Model {
	m.timer.Reset()
	m.chainID++
	return m
}

func (m Model) Running() bool { return m.timer.Running() }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TickMsg:
		if msg.ChainID != m.chainID || !m.timer.Running() {
			// Stale chain; let it die.
			return m, nil
		}
		ev, completed := m.timer.Tick(time.Now())
		if completed {
			return m, func() tea.Msg { return CompletedMsg{Completion: ev} }
		}
		if m.timer.Running() {
			return m, m.tick()
		}
		return m, nil
	}
	return m, nil
}

func (m Model) View() string {
	remaining := m.timer.Remaining()
	clock := fmt.Sprintf("%02d:%02d", remaining/60, remaining%60)

	status := "paused"
	if m.timer.Running() {
		status = "running"
	}

	parts := []string{
		modeStyle.Render(m.timer.Mode().Label()),
		clockStyle.Render(clock),
		m.progress.ViewAs(m.timer.Progress()),
		hintStyle.Render(status + " · space start/pause · r reset · 1/2/3 mode"),
	}
	if m.timer.JustFinished() {
		parts = append(parts, finishedStyle.Render("Session complete!"))
	}

	content := lipgloss.JoinVertical(lipgloss.Center, parts...)
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	return content
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	if width > 44 {
		m.progress.Width = 40
	} else if width > 4 {
		m.progress.Width = width - 4
	}
}
