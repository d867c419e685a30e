package permit

import (
	"crypto/rand"
	"fmt"
	"time"
)

// StatusSubmitted is the initial (and, in this system, only) status a
// submitted application carries.
const StatusSubmitted = "Submitted"

// Submission is the immutable record produced by a successful submission.
// It is written to the store once and never mutated afterwards.
type Submission struct {
	ApplicationID      string    `json:"applicationId"`
	ApplicantName      string    `json:"applicantName"`
	PropertyAddress    string    `json:"propertyAddress"`
	ProjectType        string    `json:"projectType"`
	ProjectDescription string    `json:"projectDescription"`
	EstimatedCost      string    `json:"estimatedCost"`
	ContractorLicense  string    `json:"contractorLicense"`
	SubmittedAt        time.Time `json:"submittedAt"`
	Status             string    `json:"status"`
}

// NewSubmission freezes the draft into a submission record with a freshly
// generated application ID.
func NewSubmission(d Draft) Submission {
	return Submission{
		ApplicationID:      NewApplicationID(),
		ApplicantName:      d.ApplicantName,
		PropertyAddress:    d.PropertyAddress,
		ProjectType:        d.ProjectType,
		ProjectDescription: d.ProjectDescription,
		EstimatedCost:      d.EstimatedCost,
		ContractorLicense:  d.ContractorLicense,
		SubmittedAt:        time.Now().UTC(),
		Status:             StatusSubmitted,
	}
}

// idCharset is the alphabet for the random component of application IDs.
const idCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// idSuffixLen is the length of the random component.
const idSuffixLen = 9

// NewApplicationID generates an identifier of the form
// "PA-<unix-millis>-<9 random uppercase alphanumerics>". The wall-clock
// component plus 36^9 random suffixes makes collisions within a session
// vanishingly unlikely.
func NewApplicationID() string {
	buf := make([]byte, idSuffixLen)
	// rand.Read never fails on supported platforms as of Go 1.24.
	_, _ = rand.Read(buf)
	for i, b := range buf {
		buf[i] = idCharset[int(b)%len(idCharset)]
	}
	return fmt.Sprintf("PA-%d-%s", time.Now().UnixMilli(), buf)
}
