// Package wizard renders the four-step permit application form as a Bubble
// Tea model. All form state lives in the controller; this package owns only
// presentation concerns (focus, cursors, the confirm dialog).
package wizard

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/quantumapps-dev/buildingpermitforpa/internal/keys"
	"github.com/quantumapps-dev/buildingpermitforpa/internal/permit"
	ctrl "github.com/quantumapps-dev/buildingpermitforpa/internal/wizard"
	"github.com/quantumapps-dev/buildingpermitforpa/internal/ui/shared/confirmmodal"
)

// fieldInput is the on-screen state for one field of the current step.
type fieldInput struct {
	field    permit.Field
	label    string
	isSelect bool            // project type picker instead of free text
	input    textinput.Model // text field state
	cursor   int             // picker cursor, select fields only
}

// fieldLabels maps fields to the labels shown next to their inputs.
var fieldLabels = map[permit.Field]string{
	permit.FieldApplicantName:      "Applicant Name",
	permit.FieldPropertyAddress:    "Property Address",
	permit.FieldProjectType:        "Project Type",
	permit.FieldProjectDescription: "Project Description",
	permit.FieldEstimatedCost:      "Estimated Cost ($)",
	permit.FieldContractorLicense:  "Contractor License (optional)",
}

// fieldPlaceholders maps fields to their input placeholders.
var fieldPlaceholders = map[permit.Field]string{
	permit.FieldApplicantName:      "Jane Doe",
	permit.FieldPropertyAddress:    "100 Main St, Philadelphia, PA 19101",
	permit.FieldProjectDescription: "Describe the planned work",
	permit.FieldEstimatedCost:      "8500",
	permit.FieldContractorLicense:  "PA045678",
}

// Model is the wizard UI state.
type Model struct {
	controller *ctrl.Controller

	fields  []fieldInput
	focused int

	banner    string // generic "fix errors" notice, cleared on any edit
	confirm   confirmmodal.Model
	submitted *permit.Submission

	width, height int
}

// New creates the wizard UI over the given controller. The controller is
// restored (draft recovery) from Init, not here, so construction stays
// side-effect free.
func New(c *ctrl.Controller) Model {
	return Model{
		controller: c,
		confirm: confirmmodal.New(confirmmodal.Config{
			Title:        "Submit Application?",
			Message:      "Your application will be finalized and assigned an ID.",
			ConfirmLabel: "Submit",
			CancelLabel:  "Keep Editing",
		}),
	}
}

// Init kicks off draft recovery. The view renders a loading line until the
// restore message arrives.
func (m Model) Init() tea.Cmd {
	c := m.controller
	return tea.Batch(
		func() tea.Msg {
			c.Restore()
			return restoredMsg{}
		},
		textinput.Blink,
	)
}

// Update handles messages for the wizard.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case restoredMsg:
		m = m.rebuildStep()
		return m, m.focusCmd()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.confirm.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	return m.forwardToInput(msg)
}

// handleKeyMsg processes keyboard input.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (Model, tea.Cmd) {
	if key.Matches(msg, keys.Wizard.Quit) {
		return m, tea.Quit
	}

	if !m.controller.Ready() {
		return m, nil
	}

	// Confirm dialog swallows input while open.
	if m.confirm.IsVisible() {
		var result confirmmodal.Result
		var cmd tea.Cmd
		m.confirm, cmd, result = m.confirm.Update(msg)
		if result == confirmmodal.ResultConfirm {
			return m.submit()
		}
		return m, cmd
	}

	// Success screen: enter starts a fresh application, q quits.
	if m.submitted != nil {
		switch msg.String() {
		case "enter":
			m.submitted = nil
			m = m.rebuildStep()
			return m, m.focusCmd()
		case "q", "esc":
			return m, tea.Quit
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.Wizard.Back):
		if m.controller.Step() == 1 {
			// Draft is already autosaved; leaving is always safe.
			return m, tea.Quit
		}
		m.controller.RetreatStep()
		m.banner = ""
		m = m.rebuildStep()
		return m, m.focusCmd()

	case key.Matches(msg, keys.Wizard.NextField):
		m = m.moveFocus(1)
		return m, m.focusCmd()

	case key.Matches(msg, keys.Wizard.PrevField):
		m = m.moveFocus(-1)
		return m, m.focusCmd()

	case key.Matches(msg, keys.Wizard.Continue):
		return m.handleContinue()
	}

	// Picker navigation for the project type field.
	if f := m.focusedField(); f != nil && f.isSelect {
		switch msg.String() {
		case "j", "down":
			if f.cursor < len(permit.ProjectTypes)-1 {
				f.cursor++
				m.setField(f.field, permit.ProjectTypes[f.cursor])
			}
			return m, nil
		case "k", "up":
			if f.cursor > 0 {
				f.cursor--
				m.setField(f.field, permit.ProjectTypes[f.cursor])
			}
			return m, nil
		}
		return m, nil
	}

	return m.forwardToInput(msg)
}

// handleContinue processes Enter: advance within the step, then the step
// itself, then the submit confirmation on the review step.
func (m Model) handleContinue() (Model, tea.Cmd) {
	if m.controller.Step() == permit.StepCount {
		m.confirm.SetSize(m.width, m.height)
		m.confirm.Show()
		return m, nil
	}

	if m.focused < len(m.fields)-1 {
		m = m.moveFocus(1)
		return m, m.focusCmd()
	}

	if err := m.controller.AdvanceStep(); err != nil {
		m.banner = "Please fix the errors below before continuing."
		return m, nil
	}
	m.banner = ""
	m = m.rebuildStep()
	return m, m.focusCmd()
}

// submit finalizes the application through the controller.
func (m Model) submit() (Model, tea.Cmd) {
	sub, err := m.controller.Submit()
	if err != nil {
		// Validation regressions send the user back to the form.
		m.banner = "Please fix the errors below before submitting."
		m = m.rebuildStep()
		return m, m.focusCmd()
	}
	m.submitted = &sub
	m.banner = ""
	return m, func() tea.Msg { return SubmittedMsg{Submission: sub} }
}

// forwardToInput routes a message to the focused text input and mirrors the
// edited value into the controller (which autosaves the draft).
func (m Model) forwardToInput(msg tea.Msg) (Model, tea.Cmd) {
	f := m.focusedField()
	if f == nil || f.isSelect {
		return m, nil
	}

	before := f.input.Value()
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	if after := f.input.Value(); after != before {
		m.setField(f.field, after)
	}
	return m, cmd
}

// setField pushes a value into the controller and clears the generic banner,
// since the user is actively correcting the form.
func (m *Model) setField(f permit.Field, value string) {
	m.controller.SetField(f, value)
	m.banner = ""
}

// focusedField returns the field under focus, or nil on the review step.
func (m *Model) focusedField() *fieldInput {
	if m.focused < 0 || m.focused >= len(m.fields) {
		return nil
	}
	return &m.fields[m.focused]
}

// moveFocus shifts focus by delta, wrapping within the current step.
func (m Model) moveFocus(delta int) Model {
	if len(m.fields) == 0 {
		return m
	}
	if f := m.focusedField(); f != nil && !f.isSelect {
		f.input.Blur()
	}
	m.focused = (m.focused + delta + len(m.fields)) % len(m.fields)
	if f := m.focusedField(); f != nil && !f.isSelect {
		f.input.Focus()
	}
	m.seedPicker()
	return m
}

// seedPicker stores the option under the picker cursor when focus lands on
// a select field that has no value yet. The highlighted option and the
// stored value must never disagree.
func (m *Model) seedPicker() {
	f := m.focusedField()
	if f == nil || !f.isSelect {
		return
	}
	if m.controller.Get(f.field) == "" {
		m.controller.SetField(f.field, permit.ProjectTypes[f.cursor])
	}
}

// focusCmd returns the blink command when a text input has focus.
func (m Model) focusCmd() tea.Cmd {
	if f := m.focusedField(); f != nil && !f.isSelect {
		return textinput.Blink
	}
	return nil
}

// rebuildStep rebuilds the on-screen inputs for the controller's current
// step, seeding them from the controller's values.
func (m Model) rebuildStep() Model {
	step := m.controller.Step()
	owned := permit.StepFields(step)

	m.fields = make([]fieldInput, 0, len(owned))
	for _, f := range owned {
		fi := fieldInput{field: f, label: fieldLabels[f]}
		if f == permit.FieldProjectType {
			fi.isSelect = true
			for i, label := range permit.ProjectTypes {
				if label == m.controller.Get(f) {
					fi.cursor = i
					break
				}
			}
		} else {
			ti := textinput.New()
			ti.Prompt = ""
			ti.Placeholder = fieldPlaceholders[f]
			ti.Width = 48
			ti.SetValue(m.controller.Get(f))
			fi.input = ti
		}
		m.fields = append(m.fields, fi)
	}

	m.focused = 0
	if f := m.focusedField(); f != nil && !f.isSelect {
		f.input.Focus()
	}
	m.seedPicker()
	return m
}

// Submitted returns the submission shown on the success screen, if any.
func (m Model) Submitted() *permit.Submission {
	return m.submitted
}
