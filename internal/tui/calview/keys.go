package calview

import (
	"github.com/charmbracelet/bubbles/key"
)

// keyMap holds the calendar key bindings. It implements help.KeyMap.
type keyMap struct {
	PrevDay   key.Binding
	NextDay   key.Binding
	PrevWeek  key.Binding
	NextWeek  key.Binding
	PrevMonth key.Binding
	NextMonth key.Binding
	Today     key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		PrevDay: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "prev day"),
		),
		NextDay: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next day"),
		),
		PrevWeek: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "prev week"),
		),
		NextWeek: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "next week"),
		),
		PrevMonth: key.NewBinding(
			key.WithKeys("[", "pgup"),
			key.WithHelp("[/pgup", "prev month"),
		),
		NextMonth: key.NewBinding(
			key.WithKeys("]", "pgdown"),
			key.WithHelp("]/pgdn", "next month"),
		),
		Today: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "today"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.PrevDay, k.NextDay, k.PrevMonth, k.NextMonth, k.Today, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.PrevDay, k.NextDay, k.PrevWeek, k.NextWeek},
		{k.PrevMonth, k.NextMonth, k.Today},
		{k.Help, k.Quit},
	}
}
