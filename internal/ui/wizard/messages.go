package wizard

import "github.com/quantumapps-dev/buildingpermitforpa/internal/permit"

// restoredMsg is sent once the controller has consulted the draft store.
// The form is not rendered until it arrives.
type restoredMsg struct{}

// SubmittedMsg is sent when an application has been submitted successfully.
type SubmittedMsg struct {
	Submission permit.Submission
}
