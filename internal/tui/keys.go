package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up        key.Binding
	down      key.Binding
	enter     key.Binding
	esc       key.Binding
	tab       key.Binding
	backtab   key.Binding
	space     key.Binding
	quit      key.Binding
	forceQuit key.Binding
	clear     key.Binding
	copyUser  key.Binding
	yes       key.Binding
	no        key.Binding
}

var keys = keyMap{
	up:      key.NewBinding(key.WithKeys("up", "k")),
	down:    key.NewBinding(key.WithKeys("down", "j")),
	enter:   key.NewBinding(key.WithKeys("enter")),
	esc:     key.NewBinding(key.WithKeys("esc")),
	tab:     key.NewBinding(key.WithKeys("tab")),
	backtab: key.NewBinding(key.WithKeys("shift+tab")),
	space:   key.NewBinding(key.WithKeys(" ")),
	quit:    key.NewBinding(key.WithKeys("q", "ctrl+c")),
	// forceQuit is the only quit chord on screens with free-text inputs,
	// where "q" must stay typable.
	forceQuit: key.NewBinding(key.WithKeys("ctrl+c")),
	clear:     key.NewBinding(key.WithKeys("d")),
	copyUser:  key.NewBinding(key.WithKeys("u")),
	yes:       key.NewBinding(key.WithKeys("y")),
	no:        key.NewBinding(key.WithKeys("n")),
}
