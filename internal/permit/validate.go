package permit

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

// FieldError is one validation violation, attached to the field that failed.
// Validation results are data, not errors: nothing in this package panics or
// returns a Go error for bad user input.
type FieldError struct {
	Field   Field
	Message string
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// licensePattern accepts contractor license numbers: letters and digits only,
// no separators. Example: "PA045678".
var licensePattern = regexp.MustCompile(`^[A-Za-z0-9]+$`)

// decimalPattern accepts plain decimal numbers, optionally signed and with
// an exponent. ParseFloat alone is too permissive here: it also reads
// "NaN", "Inf", and hex floats, none of which are acceptable as a cost.
var decimalPattern = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?$`)

// checkFunc inspects a draft and returns an error message, or "" when the
// field passes.
type checkFunc func(d Draft) string

// rules is the declarative validation table: one entry per field, evaluated
// independently. Order matches presentation order.
var rules = []struct {
	field Field
	check checkFunc
}{
	{FieldApplicantName, func(d Draft) string {
		if n := utf8.RuneCountInString(d.ApplicantName); n < 2 || n > 100 {
			return "name must be between 2 and 100 characters"
		}
		return ""
	}},
	{FieldPropertyAddress, func(d Draft) string {
		if n := utf8.RuneCountInString(d.PropertyAddress); n < 10 || n > 200 {
			return "address must be between 10 and 200 characters"
		}
		addr := strings.ToLower(d.PropertyAddress)
		if !strings.Contains(addr, "pa") && !strings.Contains(addr, "pennsylvania") {
			return "property must be located in Pennsylvania"
		}
		return ""
	}},
	{FieldProjectType, func(d Draft) string {
		if !IsProjectType(d.ProjectType) {
			return "select a project type"
		}
		return ""
	}},
	{FieldProjectDescription, func(d Draft) string {
		if n := utf8.RuneCountInString(d.ProjectDescription); n < 10 || n > 1000 {
			return "description must be between 10 and 1000 characters"
		}
		return ""
	}},
	{FieldEstimatedCost, func(d Draft) string {
		raw := strings.TrimSpace(d.EstimatedCost)
		if !decimalPattern.MatchString(raw) {
			return "estimated cost must be a positive number"
		}
		cost, err := strconv.ParseFloat(raw, 64)
		if err != nil || cost <= 0 {
			return "estimated cost must be a positive number"
		}
		return ""
	}},
	{FieldContractorLicense, func(d Draft) string {
		// Optional field: blank or whitespace-only means no contractor.
		lic := strings.TrimSpace(d.ContractorLicense)
		if lic == "" {
			return ""
		}
		if !licensePattern.MatchString(lic) {
			return "license number must contain only letters and numbers"
		}
		return ""
	}},
}

// Validate runs the rule table against d, restricted to the given fields.
// With no fields it checks the whole form. The result is nil when every
// checked field passes. Pure function: d is never modified.
func Validate(d Draft, fields ...Field) []FieldError {
	checked := func(f Field) bool {
		if len(fields) == 0 {
			return true
		}
		for _, want := range fields {
			if want == f {
				return true
			}
		}
		return false
	}

	var errs []FieldError
	for _, r := range rules {
		if !checked(r.field) {
			continue
		}
		if msg := r.check(d); msg != "" {
			errs = append(errs, FieldError{Field: r.field, Message: msg})
		}
	}
	return errs
}
