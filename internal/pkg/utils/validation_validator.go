package utils

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

// Principal references look like FHIR resource references: a resource
// type, a slash, and an opaque id.
var principalRefPattern = regexp.MustCompile(`^[A-Za-z]+/[A-Za-z0-9\-\.]{1,64}$`)

func init() {
	validate = validator.New()
	validate.RegisterValidation("principal_ref", validatePrincipalRef)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validatePrincipalRef(fl validator.FieldLevel) bool {
	return principalRefPattern.MatchString(fl.Field().String())
}
