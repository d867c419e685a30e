package ui_test

import (
	"bytes"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/exp/teatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantumapps-dev/buildingpermitforpa/internal/store"
	"github.com/quantumapps-dev/buildingpermitforpa/internal/ui"
	"github.com/quantumapps-dev/buildingpermitforpa/internal/wizard"
)

// waitForOutput blocks until the program's cumulative output contains want.
func waitForOutput(t *testing.T, tm *teatest.TestModel, want string) {
	t.Helper()
	teatest.WaitFor(t, tm.Output(), func(bts []byte) bool {
		return bytes.Contains(bts, []byte(want))
	}, teatest.WithDuration(5*time.Second))
}

func typeText(tm *teatest.TestModel, s string) {
	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
}

func enter(tm *teatest.TestModel) {
	tm.Send(tea.KeyMsg{Type: tea.KeyEnter})
}

func TestApp_GoldenPathSubmission(t *testing.T) {
	kv := store.NewMemKV()
	drafts := store.NewDraftStore(kv)
	app := ui.NewApp(wizard.New(drafts))

	tm := teatest.NewTestModel(t, app, teatest.WithInitialTermSize(100, 40))

	// Step 1: applicant name.
	waitForOutput(t, tm, "Applicant Name")
	typeText(tm, "Jane Doe")
	enter(tm)

	// Step 2: address, project type, description.
	waitForOutput(t, tm, "Property Address")
	typeText(tm, "100 Main St, Philadelphia, PA 19101")
	enter(tm)
	for i := 0; i < 5; i++ {
		tm.Send(tea.KeyMsg{Type: tea.KeyDown})
	}
	enter(tm)
	typeText(tm, "Build a 12x16 wood deck attached to rear of house")
	enter(tm)

	// Step 3: cost, license left blank.
	waitForOutput(t, tm, "Estimated Cost")
	typeText(tm, "8500")
	enter(tm)
	enter(tm)

	// Review and confirm.
	waitForOutput(t, tm, "Review & Submit")
	enter(tm)
	waitForOutput(t, tm, "Submit Application?")
	enter(tm)

	waitForOutput(t, tm, "Application Submitted")

	// Quit from the success screen.
	typeText(tm, "q")
	tm.WaitFinished(t, teatest.WithFinalTimeout(5*time.Second))

	// The draft slot is gone; exactly one application record remains.
	_, ok := drafts.LoadDraft()
	assert.False(t, ok, "draft slot should be cleared after submission")
	require.Equal(t, 1, kv.Len(), "expected exactly one persisted submission record")
}

func TestApp_QuitPreservesDraft(t *testing.T) {
	drafts := store.NewDraftStore(store.NewMemKV())
	app := ui.NewApp(wizard.New(drafts))

	tm := teatest.NewTestModel(t, app, teatest.WithInitialTermSize(100, 40))

	waitForOutput(t, tm, "Applicant Name")
	typeText(tm, "Jane Doe")
	tm.Send(tea.KeyMsg{Type: tea.KeyCtrlC})
	tm.WaitFinished(t, teatest.WithFinalTimeout(5*time.Second))

	got, ok := drafts.LoadDraft()
	require.True(t, ok, "expected the in-progress draft to survive quitting")
	assert.Equal(t, "Jane Doe", got.ApplicantName)
}
