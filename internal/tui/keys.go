package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up            key.Binding
	down          key.Binding
	enter         key.Binding
	esc           key.Binding
	tab           key.Binding
	backtab       key.Binding
	quit          key.Binding
	quitShort     key.Binding
	refresh       key.Binding
	notifications key.Binding
	readAll       key.Binding
	copyToken     key.Binding
	logout        key.Binding
}

var keys = keyMap{
	up:            key.NewBinding(key.WithKeys("up", "k")),
	down:          key.NewBinding(key.WithKeys("down", "j")),
	enter:         key.NewBinding(key.WithKeys("enter")),
	esc:           key.NewBinding(key.WithKeys("esc")),
	tab:           key.NewBinding(key.WithKeys("tab")),
	backtab:       key.NewBinding(key.WithKeys("shift+tab")),
	quit:          key.NewBinding(key.WithKeys("ctrl+c")),
	quitShort:     key.NewBinding(key.WithKeys("q")),
	refresh:       key.NewBinding(key.WithKeys("r")),
	notifications: key.NewBinding(key.WithKeys("n")),
	readAll:       key.NewBinding(key.WithKeys("a")),
	copyToken:     key.NewBinding(key.WithKeys("c")),
	logout:        key.NewBinding(key.WithKeys("l")),
}
