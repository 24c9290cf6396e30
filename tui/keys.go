package tui

import "github.com/charmbracelet/bubbles/key"

// swapPageKeys swaps the scroll direction of PageUp and PageDown,
// matching the layout this tool was built for. With it set, PageUp
// scrolls toward older entries.
const swapPageKeys = true

// keyMap holds the keybindings for the interactive loop. The history
// and copy actions use control chords so that every printable
// character, hex digits included, stays available for the input field.
type keyMap struct {
	Submit   key.Binding
	Older    key.Binding
	Newer    key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Copy     key.Binding
	Save     key.Binding
	Load     key.Binding
	Clear    key.Binding
	Quit     key.Binding
}

var keys = keyMap{
	Submit:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "convert")),
	Older:    key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "older")),
	Newer:    key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "newer")),
	PageUp:   key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "scroll")),
	PageDown: key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "scroll")),
	Copy:     key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "copy hex")),
	Save:     key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
	Load:     key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "load")),
	Clear:    key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "clear")),
	Quit:     key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "quit")),
}

// helpBindings are the bindings shown in the footer, in display order.
func helpBindings() []key.Binding {
	return []key.Binding{
		keys.Submit, keys.Older, keys.PageUp, keys.Copy,
		keys.Save, keys.Load, keys.Clear, keys.Quit,
	}
}
