package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all keybindings for the TUI.
type KeyMap struct {
	RevealRear  key.Binding
	RevealRight key.Binding
	Center      key.Binding
	DragLeft    key.Binding
	DragRight   key.Binding
	Release     key.Binding
	Cancel      key.Binding
	ScrollUp    key.Binding
	ScrollDown  key.Binding
	Quit        key.Binding
}

// DefaultKeyMap returns the default keybinding configuration.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		RevealRear: key.NewBinding(
			key.WithKeys("tab", "["),
			key.WithHelp("tab", "rear"),
		),
		RevealRight: key.NewBinding(
			key.WithKeys("shift+tab", "]"),
			key.WithHelp("S-tab", "right"),
		),
		Center: key.NewBinding(
			key.WithKeys("c", "home"),
			key.WithHelp("c", "center"),
		),
		DragLeft: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "drag"),
		),
		DragRight: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "drag"),
		),
		Release: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "release"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		ScrollUp: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "scroll"),
		),
		ScrollDown: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "scroll"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// FooterBindings returns the bindings shown in the footer. Release and
// cancel only apply while a drag is in flight.
func FooterBindings(km KeyMap, dragging bool) []key.Binding {
	if dragging {
		return []key.Binding{km.DragLeft, km.DragRight, km.Release, km.Cancel, km.Quit}
	}
	return []key.Binding{km.RevealRear, km.RevealRight, km.Center, km.DragLeft, km.DragRight, km.ScrollUp, km.Quit}
}
