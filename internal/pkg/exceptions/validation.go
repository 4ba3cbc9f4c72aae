package exceptions

import (
	"anubha-web/internal/pkg/constvars"
	"errors"
	"regexp"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

// oneof values may be single-quoted when they contain spaces.
var reOneOfParam = regexp.MustCompile(`'[^']*'|\S+`)

func formatValidationMessage(fieldErr validator.FieldError) string {
	tag := fieldErr.Tag()
	customMessage, ok := constvars.CustomValidationErrorMessages[tag]
	if !ok {
		customMessage = "is invalid"
	}
	if constvars.TagsWithParams[tag] {
		if tag == "oneof" {
			values := reOneOfParam.FindAllString(fieldErr.Param(), -1)
			for i := range values {
				values[i] = strings.Trim(values[i], "'")
			}
			customMessage = strings.Replace(customMessage, "%s", strings.Join(values, ", "), 1)
		} else {
			customMessage = strings.Replace(customMessage, "%s", fieldErr.Param(), 1)
		}
	}
	return fieldErr.Field() + " " + customMessage
}

func FormatFirstValidationError(err error) string {
	if err == nil {
		return constvars.ErrClientCannotProcessRequest
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
		return formatValidationMessage(validationErrors[0])
	}
	return constvars.ErrDevInvalidInput
}

// FormatFieldValidationErrors keys every failing field by its JSON name.
func FormatFieldValidationErrors(err error) map[string]string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil
	}

	fields := make(map[string]string, len(validationErrors))
	for _, fieldErr := range validationErrors {
		if _, exists := fields[fieldErr.Field()]; exists {
			continue
		}
		fields[fieldErr.Field()] = formatValidationMessage(fieldErr)
	}
	return fields
}

func firstFieldMessage(fields map[string]string) string {
	if len(fields) == 0 {
		return constvars.ErrClientCannotProcessRequest
	}
	keys := make([]string, 0, len(fields))
	for key := range fields {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return fields[keys[0]]
}
