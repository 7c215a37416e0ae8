package tui

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	Tab        key.Binding
	ShiftTab   key.Binding
	Quit       key.Binding
	StartPause key.Binding
	Reset      key.Binding
	ModeFocus  key.Binding
	ModeShort  key.Binding
	ModeLong   key.Binding
	ManualLog  key.Binding
	Journal    key.Binding
	Help       key.Binding
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.Quit, k.Help}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tab, k.ShiftTab, k.Quit, k.Help},
		{k.StartPause, k.Reset, k.ModeFocus, k.ModeShort, k.ModeLong},
		{k.ManualLog, k.Journal},
	}
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next tab"),
		),
		ShiftTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev tab"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		StartPause: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "start/pause"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset"),
		),
		ModeFocus: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "focus"),
		),
		ModeShort: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "short break"),
		),
		ModeLong: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "long break"),
		),
		ManualLog: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "manual log"),
		),
		Journal: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "journal"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
	}
}
