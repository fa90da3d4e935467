package main

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines heapviz's keyboard shortcuts, mirroring hiveexplorer's
// KeyMap/DefaultKeyMap/ShortHelp/FullHelp shape.
type KeyMap struct {
	Forward  key.Binding
	Backward key.Binding
	Help     key.Binding
	Yank     key.Binding
	Quit     key.Binding
}

// DefaultKeyMap returns heapviz's default keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Forward: key.NewBinding(
			key.WithKeys(" ", "right", "l"),
			key.WithHelp("space/→/l", "step forward"),
		),
		Backward: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "step backward"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Yank: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy metrics"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Quit}
}

// FullHelp returns all key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Forward, k.Backward},
		{k.Yank, k.Help, k.Quit},
	}
}
