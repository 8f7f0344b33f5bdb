package types

import "github.com/charmbracelet/bubbles/key"

// KeyMap lists the normal-mode bindings; it doubles as the help.KeyMap for the footer
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Top      key.Binding
	Bottom   key.Binding
	Press    key.Binding
	Uncheck  key.Binding
	PressAll key.Binding
	Done     key.Binding
	Help     key.Binding
	Quit     key.Binding
}

// DefaultKeyMap returns the default bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Top:      key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "top")),
		Bottom:   key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "bottom")),
		Press:    key.NewBinding(key.WithKeys(" ", "space", "enter"), key.WithHelp("space", "toggle")),
		Uncheck:  key.NewBinding(key.WithKeys("x", "backspace"), key.WithHelp("x", "uncheck")),
		PressAll: key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "all pages")),
		Done:     key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "done")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Press, k.PressAll, k.Done, k.Help, k.Quit}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Top, k.Bottom},
		{k.Press, k.Uncheck, k.PressAll},
		{k.Done, k.Help, k.Quit},
	}
}
