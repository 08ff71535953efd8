package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up          key.Binding
	Down        key.Binding
	Expand      key.Binding
	Search      key.Binding
	Blur        key.Binding
	Sort        key.Binding
	QuickFilter key.Binding
	Rating      key.Binding
	Price       key.Binding
	Cuisine     key.Binding
	Clear       key.Binding
	Help        key.Binding
	Quit        key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:          key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:        key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Expand:      key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "details")),
		Search:      key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Blur:        key.NewBinding(key.WithKeys("esc", "enter"), key.WithHelp("esc", "done")),
		Sort:        key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sort")),
		QuickFilter: key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "quick filter")),
		Rating:      key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "rating")),
		Price:       key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "price")),
		Cuisine:     key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "cuisine")),
		Clear:       key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "clear all")),
		Help:        key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:        key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Expand, k.Search, k.Sort, k.QuickFilter, k.Clear, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Expand},
		{k.Search, k.Blur, k.Sort},
		{k.QuickFilter, k.Rating, k.Price, k.Cuisine},
		{k.Clear, k.Help, k.Quit},
	}
}
