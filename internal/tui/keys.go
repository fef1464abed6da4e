package tui

import "github.com/charmbracelet/bubbles/key"

// browseKeys holds key bindings for browse mode.
type browseKeys struct {
	Up     key.Binding
	Down   key.Binding
	Filter key.Binding
	Add    key.Binding
	Delete key.Binding
	Save   key.Binding
	Tab    key.Binding
	Help   key.Binding
	Quit   key.Binding
}

// ShortHelp returns the browse mode bindings for the help bar.
func (k browseKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Add, k.Delete, k.Save, k.Help, k.Quit}
}

// FullHelp returns the browse mode bindings grouped for expanded help.
func (k browseKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Filter},
		{k.Add, k.Delete, k.Save},
		{k.Tab, k.Help, k.Quit},
	}
}

// formKeys holds key bindings for the contact form.
type formKeys struct {
	Next   key.Binding
	Prev   key.Binding
	Submit key.Binding
	Cancel key.Binding
}

// ShortHelp returns the form bindings for the help bar.
func (k formKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Submit, k.Cancel}
}

// FullHelp returns the form bindings grouped for expanded help.
func (k formKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev},
		{k.Submit, k.Cancel},
	}
}

// confirmKeys holds key bindings for the confirmation screen.
type confirmKeys struct {
	Confirm key.Binding
	Cancel  key.Binding
}

// ShortHelp returns the confirmation bindings for the help bar.
func (k confirmKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Confirm, k.Cancel}
}

// FullHelp returns the confirmation bindings grouped for expanded help.
func (k confirmKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Confirm, k.Cancel}}
}

// BrowseKeyMap returns the key bindings for browse mode.
func BrowseKeyMap() browseKeys {
	return browseKeys{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Filter: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "filter"),
		),
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		Save: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "save"),
		),
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "switch pane"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// FormKeyMap returns the key bindings for the contact form.
func FormKeyMap() formKeys {
	return formKeys{
		Next: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab", "next field"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("shift+tab", "previous field"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "save contact"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
	}
}

// ConfirmKeyMap returns the key bindings for the confirmation screen.
func ConfirmKeyMap() confirmKeys {
	return confirmKeys{
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "confirm"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
	}
}
