package permit

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var idFormat = regexp.MustCompile(`^PA-\d+-[A-Z0-9]{9}$`)

func TestNewApplicationID_Format(t *testing.T) {
	id := NewApplicationID()
	assert.Regexp(t, idFormat, id)
}

func TestNewApplicationID_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := NewApplicationID()
		require.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}

func TestNewSubmission_FreezesDraft(t *testing.T) {
	d := validDraft()
	sub := NewSubmission(d)

	assert.Regexp(t, idFormat, sub.ApplicationID)
	assert.Equal(t, StatusSubmitted, sub.Status)
	assert.False(t, sub.SubmittedAt.IsZero())
	assert.Equal(t, d.ApplicantName, sub.ApplicantName)
	assert.Equal(t, d.PropertyAddress, sub.PropertyAddress)
	assert.Equal(t, d.ProjectType, sub.ProjectType)
	assert.Equal(t, d.ProjectDescription, sub.ProjectDescription)
	assert.Equal(t, d.EstimatedCost, sub.EstimatedCost)
	assert.Equal(t, d.ContractorLicense, sub.ContractorLicense)
}
