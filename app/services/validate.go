package services

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/karavella/fabric-catalog/app/helpers"
)

// ValidationProfile selects which fields of a FabricSubmission are
// mandatory. The constraint rules themselves live on the one canonical
// submission type; a profile only adds required-ness on top.
type ValidationProfile int

const (
	// ProfileFull is the creation profile: every core field and the
	// variant list must be present.
	ProfileFull ValidationProfile = iota
	// ProfileCore is the relaxed profile for partial updates: nothing is
	// mandatory, submitted fields are still constraint-checked.
	ProfileCore
)

var mandatoryFields = map[ValidationProfile][]string{
	ProfileFull: {"externalId", "name", "baseImage", "composition", "widthCm", "weightGsm", "variants"},
	ProfileCore: {},
}

// NewValidator builds the validator used for submissions. Field names in
// error messages come from the form tag so they match what clients sent.
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("form"), ",", 2)[0]
		if name == "" || name == "-" {
			return field.Name
		}
		return name
	})
	return v
}

func (s *FabricSubmission) fieldPresent(field string) bool {
	switch field {
	case "externalId":
		return s.ExternalID != nil
	case "name":
		return s.Name != nil
	case "baseImage":
		return s.BaseImage != nil
	case "composition":
		return s.Composition != nil
	case "widthCm":
		return s.WidthCM != nil
	case "weightGsm":
		return s.WeightGSM != nil
	case "variants":
		return s.Variants != nil
	}
	return true
}

// ValidateSubmission checks sub against the given profile and returns a
// field-keyed error map; an empty map means the submission is valid. It
// never touches the database.
func ValidateSubmission(v *validator.Validate, sub *FabricSubmission, profile ValidationProfile) map[string]string {
	errs := make(map[string]string)

	for _, field := range mandatoryFields[profile] {
		if !sub.fieldPresent(field) {
			errs[field] = fmt.Sprintf("%s is required.", field)
		}
	}

	if err := v.Struct(sub); err != nil {
		validationErrors, ok := err.(validator.ValidationErrors)
		if !ok {
			errs["submission"] = "Submission could not be validated."
			return errs
		}
		for field, message := range helpers.FormatValidationErrors(validationErrors) {
			if _, exists := errs[field]; !exists {
				errs[field] = message
			}
		}
	}

	return errs
}
