package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":      "is required",
	"min":           "must be at least %s characters long",
	"max":           "maximum at %s characters long",
	"numeric":       "must be a number",
	"oneof":         "must be one of [%s]",
	"gt":            "must be greater than %s",
	"gte":           "must be greater than or equal to %s",
	"principal_ref": "must be a principal reference like Patient/123 or Practitioner/abc",
}
