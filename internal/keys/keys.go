// Package keys centralizes the wizard's keyboard bindings so help text and
// handlers stay in sync.
package keys

import "github.com/charmbracelet/bubbles/key"

// WizardKeyMap holds the bindings active while filling out the form.
type WizardKeyMap struct {
	NextField key.Binding
	PrevField key.Binding
	Continue  key.Binding
	Back      key.Binding
	Quit      key.Binding
}

// Wizard is the binding set for the form wizard.
var Wizard = WizardKeyMap{
	NextField: key.NewBinding(
		key.WithKeys("tab", "ctrl+n"),
		key.WithHelp("tab", "next field"),
	),
	PrevField: key.NewBinding(
		key.WithKeys("shift+tab", "ctrl+p"),
		key.WithHelp("shift+tab", "previous field"),
	),
	Continue: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "continue"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "back"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "quit"),
	),
}
