// Package confirmmodal provides a reusable yes/no confirmation dialog with a
// Result enum that lets callers decide their own follow-up behavior.
package confirmmodal

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Result indicates the outcome of modal interaction.
type Result int

const (
	ResultNone    Result = iota // No action needed (modal still open or hidden)
	ResultConfirm               // User confirmed
	ResultCancel                // User cancelled/dismissed
)

// Config controls modal appearance.
type Config struct {
	Title        string // e.g., "Submit Application?"
	Message      string // e.g., "Your application will be finalized."
	ConfirmLabel string // defaults to "Confirm"
	CancelLabel  string // defaults to "Cancel"
}

// Model represents the confirmation modal state.
type Model struct {
	config  Config
	visible bool
	focused int // 0 = confirm, 1 = cancel
	width   int
	height  int
}

var (
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(1, 3)
	titleStyle = lipgloss.NewStyle().Bold(true)
	buttonStyle = lipgloss.NewStyle().
			Padding(0, 2)
	activeButtonStyle = buttonStyle.
				Reverse(true).
				Bold(true)
)

// New creates a confirmation modal with the given configuration. The modal
// starts hidden; call Show to display it.
func New(cfg Config) Model {
	if cfg.ConfirmLabel == "" {
		cfg.ConfirmLabel = "Confirm"
	}
	if cfg.CancelLabel == "" {
		cfg.CancelLabel = "Cancel"
	}
	return Model{config: cfg}
}

// Show makes the modal visible with focus on the confirm button.
func (m *Model) Show() {
	m.visible = true
	m.focused = 0
}

// Hide dismisses the modal.
func (m *Model) Hide() {
	m.visible = false
}

// IsVisible reports whether the modal is currently displayed.
func (m Model) IsVisible() bool {
	return m.visible
}

// SetSize updates viewport dimensions for centering.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Update processes messages while the modal is visible. Returns ResultNone
// for anything that does not resolve the dialog.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd, Result) {
	if !m.visible {
		return m, nil, ResultNone
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil, ResultNone
	}

	switch keyMsg.String() {
	case "esc":
		m.visible = false
		return m, nil, ResultCancel
	case "enter":
		m.visible = false
		if m.focused == 0 {
			return m, nil, ResultConfirm
		}
		return m, nil, ResultCancel
	case "left", "h", "shift+tab":
		m.focused = 0
	case "right", "l", "tab":
		m.focused = 1
	case "y":
		m.visible = false
		return m, nil, ResultConfirm
	case "n":
		m.visible = false
		return m, nil, ResultCancel
	}

	return m, nil, ResultNone
}

// View renders the modal centered in the viewport.
func (m Model) View() string {
	if !m.visible {
		return ""
	}

	confirm := buttonStyle.Render(m.config.ConfirmLabel)
	cancel := activeButtonStyle.Render(m.config.CancelLabel)
	if m.focused == 0 {
		confirm = activeButtonStyle.Render(m.config.ConfirmLabel)
		cancel = buttonStyle.Render(m.config.CancelLabel)
	}
	buttons := lipgloss.JoinHorizontal(lipgloss.Center, confirm, "  ", cancel)

	body := lipgloss.JoinVertical(lipgloss.Center,
		titleStyle.Render(m.config.Title),
		"",
		m.config.Message,
		"",
		buttons,
	)
	box := boxStyle.Render(body)

	if m.width == 0 || m.height == 0 {
		return box
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
