package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up       key.Binding
	down     key.Binding
	left     key.Binding
	right    key.Binding
	enter    key.Binding
	esc      key.Binding
	tab      key.Binding
	backtab  key.Binding
	quit     key.Binding
	logout   key.Binding
	newItem  key.Binding
	edit     key.Binding
	delete   key.Binding
	copy     key.Binding
	search   key.Binding
	archived key.Binding
	refresh  key.Binding
	yes      key.Binding
	no       key.Binding

	goDashboard key.Binding
	goNotes     key.Binding
	goEvents    key.Binding
	goTags      key.Binding
}

var keys = keyMap{
	up:       key.NewBinding(key.WithKeys("up", "k")),
	down:     key.NewBinding(key.WithKeys("down", "j")),
	left:     key.NewBinding(key.WithKeys("left")),
	right:    key.NewBinding(key.WithKeys("right")),
	enter:    key.NewBinding(key.WithKeys("enter")),
	esc:      key.NewBinding(key.WithKeys("esc")),
	tab:      key.NewBinding(key.WithKeys("tab")),
	backtab:  key.NewBinding(key.WithKeys("shift+tab")),
	quit:     key.NewBinding(key.WithKeys("ctrl+c")),
	logout:   key.NewBinding(key.WithKeys("ctrl+l")),
	newItem:  key.NewBinding(key.WithKeys("n")),
	edit:     key.NewBinding(key.WithKeys("e")),
	delete:   key.NewBinding(key.WithKeys("d")),
	copy:     key.NewBinding(key.WithKeys("c")),
	search:   key.NewBinding(key.WithKeys("/")),
	archived: key.NewBinding(key.WithKeys("v")),
	refresh:  key.NewBinding(key.WithKeys("r")),
	yes:      key.NewBinding(key.WithKeys("y")),
	no:       key.NewBinding(key.WithKeys("n")),

	goDashboard: key.NewBinding(key.WithKeys("1")),
	goNotes:     key.NewBinding(key.WithKeys("2")),
	goEvents:    key.NewBinding(key.WithKeys("3")),
	goTags:      key.NewBinding(key.WithKeys("4")),
}
