package exceptions

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/thiagothgb/gostack-mobile-2020/internal/pkg/constvars"
)

// ValidationErrors maps a field name (its json tag) to the first
// failing rule's message, for inline rendering next to the field.
type ValidationErrors map[string]string

// BuildValidationErrors collects every failing field. Validation is
// exhaustive across fields; validator only short-circuits within one.
func BuildValidationErrors(err error) ValidationErrors {
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return nil
	}

	fields := make(ValidationErrors, len(validationErrors))
	for _, fieldErr := range validationErrors {
		fieldName := fieldErr.Field()
		if _, exists := fields[fieldName]; exists {
			continue
		}
		tag := fieldErr.Tag()
		message, known := constvars.CustomValidationErrorMessages[tag]
		if !known {
			message = "is invalid"
		}
		if constvars.TagsWithParams[tag] {
			// Params are reported as json field names (or plain numbers),
			// never struct field names, so they read like the field keys.
			message = strings.Replace(message, "%s", fieldErr.Param(), 1)
		}
		fields[fieldName] = message
	}
	return fields
}
