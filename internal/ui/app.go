// Package ui assembles the top-level Bubble Tea program for the permit
// wizard.
package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/quantumapps-dev/buildingpermitforpa/internal/log"
	uiwizard "github.com/quantumapps-dev/buildingpermitforpa/internal/ui/wizard"
	"github.com/quantumapps-dev/buildingpermitforpa/internal/wizard"
)

// App is the root model handed to the Bubble Tea runtime. It owns the wizard
// component and top-level concerns (logging of submissions, quitting).
type App struct {
	wizard uiwizard.Model
}

// NewApp builds the root model over a form controller.
func NewApp(c *wizard.Controller) App {
	return App{wizard: uiwizard.New(c)}
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return a.wizard.Init()
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if sub, ok := msg.(uiwizard.SubmittedMsg); ok {
		log.Info(log.CatUI, "submission acknowledged", "applicationId", sub.Submission.ApplicationID)
	}

	var cmd tea.Cmd
	a.wizard, cmd = a.wizard.Update(msg)
	return a, cmd
}

// View implements tea.Model.
func (a App) View() string {
	return a.wizard.View()
}
