// Package keymap defines keybindings for the TUI.
package keymap

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines all keybindings for the TUI.
type KeyMap struct {
	// Quit exits the application.
	Quit key.Binding

	// Help toggles the help view.
	Help key.Binding

	// Back returns to the previous view.
	Back key.Binding

	// Select confirms a selection.
	Select key.Binding

	// Up moves to the previous row.
	Up key.Binding

	// Down moves to the next row.
	Down key.Binding

	// Left moves to the previous column.
	Left key.Binding

	// Right moves to the next column.
	Right key.Binding

	// PageLeft scrolls one window of columns back.
	PageLeft key.Binding

	// PageRight scrolls one window of columns forward.
	PageRight key.Binding

	// Home jumps to the first column.
	Home key.Binding

	// End jumps to the last column.
	End key.Binding

	// Partner jumps to the base-pair partner of the cursor column.
	Partner key.Binding

	// GoTo opens the column prompt.
	GoTo key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "column left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "column right"),
		),
		PageLeft: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "page left"),
		),
		PageRight: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdn", "page right"),
		),
		Home: key.NewBinding(
			key.WithKeys("home"),
			key.WithHelp("home", "first column"),
		),
		End: key.NewBinding(
			key.WithKeys("end"),
			key.WithHelp("end", "last column"),
		),
		Partner: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pair partner"),
		),
		GoTo: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "go to column"),
		),
	}
}

// ShortHelp returns a short list of keybindings for the status bar.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Partner, k.Help, k.Quit}
}

// ListHelp returns keybindings for the family list.
func (k *KeyMap) ListHelp() []key.Binding {
	return []key.Binding{k.Up, k.Select, k.Quit}
}

// FullHelp returns the full list of keybindings for the help view.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down},
		{k.PageLeft, k.PageRight, k.Home, k.End},
		{k.Partner, k.GoTo, k.Back},
		{k.Help, k.Quit},
	}
}

// Matches checks if a key string matches a binding.
func Matches(keyStr string, binding key.Binding) bool {
	for _, k := range binding.Keys() {
		if k == keyStr {
			return true
		}
	}
	return false
}
