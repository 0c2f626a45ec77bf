package common

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines shared key bindings across all views.
type KeyMap struct {
	Quit      key.Binding
	Refresh   key.Binding
	Up        key.Binding
	Down      key.Binding
	Enter     key.Binding // open selected post in the viewer
	Like      key.Binding
	Share     key.Binding
	Open      key.Binding // open external link in browser
	Search    key.Binding
	Tag       key.Binding // cycle tag filter
	LoadMore  key.Binding
	Guestbook key.Binding
	Chat      key.Binding
	Narrow    key.Binding // shrink the list pane
	Widen     key.Binding // grow the list pane
	Back      key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "view"),
		),
		Like: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "like"),
		),
		Share: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "share"),
		),
		Open: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "open link"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		Tag: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "tag filter"),
		),
		LoadMore: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "more"),
		),
		Guestbook: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "guestbook"),
		),
		Chat: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "chatroom"),
		),
		Narrow: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "narrow list"),
		),
		Widen: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "widen list"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
	}
}
