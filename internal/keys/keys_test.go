package keys

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	"github.com/stretchr/testify/require"
)

func TestWizard_KeyAssignments(t *testing.T) {
	require.Equal(t, []string{"tab", "ctrl+n"}, Wizard.NextField.Keys())
	require.Equal(t, []string{"shift+tab", "ctrl+p"}, Wizard.PrevField.Keys())
	require.Equal(t, []string{"enter"}, Wizard.Continue.Keys())
	require.Equal(t, []string{"esc"}, Wizard.Back.Keys())
	require.Equal(t, []string{"ctrl+c"}, Wizard.Quit.Keys())
}

func TestWizard_HelpText(t *testing.T) {
	bindings := []struct {
		name    string
		binding key.Binding
	}{
		{"NextField", Wizard.NextField},
		{"PrevField", Wizard.PrevField},
		{"Continue", Wizard.Continue},
		{"Back", Wizard.Back},
		{"Quit", Wizard.Quit},
	}
	for _, b := range bindings {
		help := b.binding.Help()
		require.NotEmpty(t, help.Key, "%s key help should not be empty", b.name)
		require.NotEmpty(t, help.Desc, "%s description should not be empty", b.name)
	}
}
