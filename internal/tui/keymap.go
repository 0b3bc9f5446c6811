package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the dashboard keyboard shortcuts.
type KeyMap struct {
	Week  key.Binding
	Month key.Binding
	Year  key.Binding
	Help  key.Binding
	Quit  key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Week: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "week"),
		),
		Month: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "month"),
		),
		Year: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "year"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns the bindings shown in the mini help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Week, k.Month, k.Year, k.Quit}
}

// FullHelp returns all bindings grouped for the expanded help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Week, k.Month, k.Year},
		{k.Help, k.Quit},
	}
}
