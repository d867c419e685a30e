package wizard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/quantumapps-dev/buildingpermitforpa/internal/permit"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12"))
	stepStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))
	labelStyle = lipgloss.NewStyle().
			Bold(true)
	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))
	bannerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9")).
			Bold(true)
	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))
	cursorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("12")).
			Bold(true)
	successStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("10")).
			Padding(1, 3)
	reviewKeyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8")).
			Width(22)
)

// View renders the wizard.
func (m Model) View() string {
	if !m.controller.Ready() {
		return "\n  Loading saved draft...\n"
	}

	if m.confirm.IsVisible() {
		return m.confirm.View()
	}

	if m.submitted != nil {
		return m.successView()
	}

	step := m.controller.Step()

	var b strings.Builder
	b.WriteString("\n  " + titleStyle.Render("Building Permit Application") + "\n")
	b.WriteString("  " + stepStyle.Render(fmt.Sprintf("Step %d of %d — %s", step, permit.StepCount, permit.StepTitle(step))) + "\n\n")

	if m.banner != "" {
		b.WriteString("  " + bannerStyle.Render(m.banner) + "\n\n")
	}

	if step == permit.StepCount {
		b.WriteString(m.reviewView())
	} else {
		for i := range m.fields {
			b.WriteString(m.fieldView(i))
		}
	}

	b.WriteString("\n  " + helpStyle.Render(m.helpLine()) + "\n")
	return b.String()
}

// fieldView renders one input with its label and any error line.
func (m Model) fieldView(i int) string {
	f := &m.fields[i]

	var b strings.Builder
	marker := "  "
	if i == m.focused {
		marker = cursorStyle.Render("> ")
	}
	b.WriteString("  " + marker + labelStyle.Render(f.label) + "\n")

	if f.isSelect {
		b.WriteString(m.pickerView(f))
	} else {
		b.WriteString("    " + f.input.View() + "\n")
	}

	if msg := m.controller.FieldError(f.field); msg != "" {
		b.WriteString("    " + errorStyle.Render("✗ "+msg) + "\n")
	}
	b.WriteString("\n")
	return b.String()
}

// pickerView renders the project type list with a window around the cursor,
// so all sixteen options never flood the screen at once.
func (m Model) pickerView(f *fieldInput) string {
	const window = 5

	start := f.cursor - window/2
	if start < 0 {
		start = 0
	}
	end := start + window
	if end > len(permit.ProjectTypes) {
		end = len(permit.ProjectTypes)
		if start = end - window; start < 0 {
			start = 0
		}
	}

	var b strings.Builder
	for i := start; i < end; i++ {
		line := "    " + permit.ProjectTypes[i]
		if i == f.cursor {
			line = "  " + cursorStyle.Render("▸ "+permit.ProjectTypes[i])
		}
		b.WriteString("  " + line + "\n")
	}
	return b.String()
}

// reviewView renders the read-only summary shown on the final step.
func (m Model) reviewView() string {
	d := m.controller.Draft()

	license := d.ContractorLicense
	if strings.TrimSpace(license) == "" {
		license = "(none)"
	}

	rows := []struct{ k, v string }{
		{"Applicant", d.ApplicantName},
		{"Property Address", d.PropertyAddress},
		{"Project Type", d.ProjectType},
		{"Description", d.ProjectDescription},
		{"Estimated Cost", "$" + d.EstimatedCost},
		{"Contractor License", license},
	}

	var b strings.Builder
	for _, row := range rows {
		b.WriteString("  " + reviewKeyStyle.Render(row.k) + row.v + "\n")
	}
	b.WriteString("\n  Press enter to submit this application.\n")
	return b.String()
}

// successView renders the post-submission confirmation.
func (m Model) successView() string {
	body := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Application Submitted"),
		"",
		"Application ID:  "+m.submitted.ApplicationID,
		"Status:          "+m.submitted.Status,
		"",
		helpStyle.Render("enter: new application • q: quit"),
	)
	box := successStyle.Render(body)
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
	}
	return box
}

// helpLine returns the context-sensitive key help.
func (m Model) helpLine() string {
	if m.controller.Step() == permit.StepCount {
		return "enter: submit • esc: back • ctrl+c: quit"
	}
	parts := []string{"enter: continue", "tab: next field"}
	if m.controller.Step() > 1 {
		parts = append(parts, "esc: back")
	} else {
		parts = append(parts, "esc: quit (draft saved)")
	}
	if f := m.focusedField(); f != nil && f.isSelect {
		parts = append([]string{"↑/↓: choose type"}, parts...)
	}
	parts = append(parts, "ctrl+c: quit")
	return strings.Join(parts, " • ")
}
