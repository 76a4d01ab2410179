package apperror

import (
	"net/http"

	"github.com/go-playground/validator/v10"
)

// MapValidationError turns a gin binding failure into the single-field
// AppError the UI expects: only the first offending field is surfaced,
// matching the one-alert-per-attempt behavior.
func MapValidationError(err error) error {
	if errs, ok := err.(validator.ValidationErrors); ok {
		e := errs[0]
		fieldName := e.Field()

		switch e.Tag() {
		case "required":
			return RequiredField(fieldName)
		default:
			return InvalidField(fieldName)
		}
	}

	return New(
		CodeInvalidInput,
		"Invalid input",
		http.StatusBadRequest,
	)
}
