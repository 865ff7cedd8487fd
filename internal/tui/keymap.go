package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Submit key.Binding
	Copy   key.Binding
	Quit   key.Binding
	Leave  key.Binding
}

var defaultKeyMap = keyMap{
	Submit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "shorten"),
	),
	Copy: key.NewBinding(
		key.WithKeys("c", "enter"),
		key.WithHelp("c/enter", "copy"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c", "esc"),
		key.WithHelp("esc", "quit"),
	),
	// Leave only applies on the result screen, where no text is typed
	Leave: key.NewBinding(
		key.WithKeys("q"),
		key.WithHelp("q", "quit"),
	),
}
