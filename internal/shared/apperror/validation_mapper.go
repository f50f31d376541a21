package apperror

import (
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

func humanizeField(s string) string {
	return titleCaser.String(strings.ReplaceAll(s, "_", " "))
}

// MapValidationError turns a binding error into a VALIDATION_ERROR AppError
// with one detail entry per failed field.
func MapValidationError(err error) error {
	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		return New(CodeValidation, "Validation failed", http.StatusBadRequest)
	}

	fields := make([]FieldError, 0, len(errs))
	for _, e := range errs {
		fields = append(fields, FieldError{
			Field:   e.Field(),
			Message: fieldMessage(e),
		})
	}

	return New(CodeValidation, "Validation failed", http.StatusBadRequest).WithFields(fields)
}

func fieldMessage(e validator.FieldError) string {
	name := humanizeField(e.Field())
	switch e.Tag() {
	case "required":
		return name + " is required"
	case "email":
		return "Please provide a valid email"
	case "min":
		return name + " must be at least " + e.Param() + " characters"
	case "gte":
		return name + " must be at least " + e.Param()
	case "lte":
		return name + " must be at most " + e.Param()
	case "oneof":
		return "Invalid " + strings.ToLower(name)
	case "uuid":
		return "Invalid " + strings.ToLower(name) + " format"
	default:
		return name + " is invalid"
	}
}
