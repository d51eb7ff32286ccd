package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds every binding of the main view. It implements help.KeyMap.
type keyMap struct {
	Up         key.Binding
	Down       key.Binding
	EditTotal  key.Binding
	Add        key.Binding
	Remove     key.Binding
	EditName   key.Binding
	EditAmount key.Binding
	Toggle     key.Binding
	NextTab    key.Binding
	PrevTab    key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// editKeys apply while a text field has focus.
type editKeys struct {
	Confirm key.Binding
	Next    key.Binding
	Cancel  key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Up:         key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/↑", "up")),
		Down:       key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/↓", "down")),
		EditTotal:  key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit paycheck")),
		Add:        key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add category")),
		Remove:     key.NewBinding(key.WithKeys("x", "delete"), key.WithHelp("x", "remove")),
		EditName:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "edit name")),
		EditAmount: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "edit amount")),
		Toggle:     key.NewBinding(key.WithKeys("%"), key.WithHelp("%", "toggle $/%")),
		NextTab:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→", "next tab")),
		PrevTab:    key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←", "prev tab")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func newEditKeys() editKeys {
	return editKeys{
		Confirm: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "done")),
		Next:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		Cancel:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "done")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.EditTotal, k.Add, k.Toggle, k.Remove, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextTab, k.PrevTab},
		{k.EditTotal, k.Add, k.Remove, k.Toggle},
		{k.EditName, k.EditAmount, k.Help, k.Quit},
	}
}

// ShortHelp implements help.KeyMap.
func (k editKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Confirm, k.Next, k.Cancel}
}

// FullHelp implements help.KeyMap.
func (k editKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
