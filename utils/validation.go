package utils

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// DateLayout is the wire and input format of a date of birth.
const DateLayout = "2006-01-02"

// MaxNameLength bounds every text column of the schema.
const MaxNameLength = 100

var (
	textRules = []validation.Rule{validation.Length(1, MaxNameLength)}
	dateRules = []validation.Rule{validation.Date(DateLayout).Error("must be a date in YYYY-MM-DD format")}
)

// ValidateDoctorInput validates the fields of a new doctor.
func ValidateDoctorInput(name, specialty string) error {
	return validation.Errors{
		"name":      validation.Validate(name, append([]validation.Rule{validation.Required}, textRules...)...),
		"specialty": validation.Validate(specialty, append([]validation.Rule{validation.Required}, textRules...)...),
	}.Filter()
}

// ValidateDoctorUpdate validates only the supplied fields of a doctor update.
func ValidateDoctorUpdate(name, specialty *string) error {
	return validation.Errors{
		"name":      validateOptional(name, textRules...),
		"specialty": validateOptional(specialty, textRules...),
	}.Filter()
}

// ValidatePatientInput validates the fields of a new patient.
func ValidatePatientInput(name, dateOfBirth string, doctorID uint) error {
	return validation.Errors{
		"name":          validation.Validate(name, append([]validation.Rule{validation.Required}, textRules...)...),
		"date_of_birth": validation.Validate(dateOfBirth, append([]validation.Rule{validation.Required}, dateRules...)...),
		"doctor_id":     validation.Validate(doctorID, validation.Required),
	}.Filter()
}

// ValidatePatientUpdate validates only the supplied fields of a patient update.
func ValidatePatientUpdate(name, dateOfBirth *string) error {
	return validation.Errors{
		"name":          validateOptional(name, textRules...),
		"date_of_birth": validateOptional(dateOfBirth, dateRules...),
	}.Filter()
}

// Supplied reports whether an optional text field carries a value. Empty
// strings count as omitted.
func Supplied(s *string) bool {
	return s != nil && *s != ""
}

// SuppliedID reports whether an optional id carries a value. Zero counts as
// omitted.
func SuppliedID(id *uint) bool {
	return id != nil && *id != 0
}

// ParseDate parses a YYYY-MM-DD date in UTC.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// FormatDate renders a stored date as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

func validateOptional(s *string, rules ...validation.Rule) error {
	if !Supplied(s) {
		return nil
	}
	return validation.Validate(*s, rules...)
}
