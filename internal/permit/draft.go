// Package permit defines the building-permit application domain: the draft
// form data, its validation rules, the step layout of the wizard, and the
// immutable record produced by a submission.
package permit

// Field identifies one input of the application form. The values double as
// the keys used when a draft is serialized, so they must stay stable.
type Field string

const (
	FieldApplicantName      Field = "applicantName"
	FieldPropertyAddress    Field = "propertyAddress"
	FieldProjectType        Field = "projectType"
	FieldProjectDescription Field = "projectDescription"
	FieldEstimatedCost      Field = "estimatedCost"
	FieldContractorLicense  Field = "contractorLicense"
)

// AllFields lists every form field in presentation order.
var AllFields = []Field{
	FieldApplicantName,
	FieldPropertyAddress,
	FieldProjectType,
	FieldProjectDescription,
	FieldEstimatedCost,
	FieldContractorLicense,
}

// Draft holds the in-progress application form values. Every field is plain
// text so the draft always round-trips through a flat JSON record.
type Draft struct {
	ApplicantName      string `json:"applicantName"`
	PropertyAddress    string `json:"propertyAddress"`
	ProjectType        string `json:"projectType"`
	ProjectDescription string `json:"projectDescription"`
	EstimatedCost      string `json:"estimatedCost"`
	ContractorLicense  string `json:"contractorLicense"`
}

// DefaultDraft returns an empty application form.
func DefaultDraft() Draft {
	return Draft{}
}

// Get returns the current value of the named field.
func (d Draft) Get(f Field) string {
	switch f {
	case FieldApplicantName:
		return d.ApplicantName
	case FieldPropertyAddress:
		return d.PropertyAddress
	case FieldProjectType:
		return d.ProjectType
	case FieldProjectDescription:
		return d.ProjectDescription
	case FieldEstimatedCost:
		return d.EstimatedCost
	case FieldContractorLicense:
		return d.ContractorLicense
	}
	return ""
}

// Set writes the named field. Unknown fields are ignored.
func (d *Draft) Set(f Field, value string) {
	switch f {
	case FieldApplicantName:
		d.ApplicantName = value
	case FieldPropertyAddress:
		d.PropertyAddress = value
	case FieldProjectType:
		d.ProjectType = value
	case FieldProjectDescription:
		d.ProjectDescription = value
	case FieldEstimatedCost:
		d.EstimatedCost = value
	case FieldContractorLicense:
		d.ContractorLicense = value
	}
}

// ProjectTypes is the fixed set of permit project categories accepted by the
// form, in the order they are presented.
var ProjectTypes = []string{
	"New Residential Construction",
	"Residential Addition",
	"Kitchen Remodel",
	"Bathroom Remodel",
	"Basement Finishing",
	"Deck/Patio Construction",
	"Garage Construction",
	"Roofing Replacement",
	"Electrical Work",
	"Plumbing Work",
	"HVAC Installation",
	"Swimming Pool Installation",
	"Fence Installation",
	"Demolition",
	"Commercial Renovation",
	"Solar Panel Installation",
}

// IsProjectType reports whether label is one of the accepted categories.
func IsProjectType(label string) bool {
	for _, t := range ProjectTypes {
		if t == label {
			return true
		}
	}
	return false
}

// StepCount is the number of wizard steps. Steps 1-3 collect input; step 4
// is the review screen and owns no fields of its own.
const StepCount = 4

// StepFields returns the fields a step must validate before the wizard may
// advance past it. Out-of-range steps own nothing.
func StepFields(step int) []Field {
	switch step {
	case 1:
		return []Field{FieldApplicantName}
	case 2:
		return []Field{FieldPropertyAddress, FieldProjectType, FieldProjectDescription}
	case 3:
		return []Field{FieldEstimatedCost, FieldContractorLicense}
	default:
		return nil
	}
}

// StepTitle returns the heading shown for a wizard step.
func StepTitle(step int) string {
	switch step {
	case 1:
		return "Applicant Information"
	case 2:
		return "Property & Project"
	case 3:
		return "Cost & Contractor"
	case 4:
		return "Review & Submit"
	}
	return ""
}
