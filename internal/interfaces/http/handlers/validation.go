package handlers

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	domainerrors "leadflow.backend/internal/domain/errors"
)

// validationError converts a gin binding failure into a 400 AppError
// listing every failing field. Type-coercion failures (say, a
// non-numeric page) arrive as plain errors without field details and
// map to a single-message 400.
func validationError(err error) *domainerrors.AppError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return domainerrors.BadRequest(err.Error())
	}

	fields := make([]domainerrors.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, domainerrors.FieldError{
			Field:   fieldName(fe.Field()),
			Message: fieldMessage(fe),
		})
	}
	return domainerrors.Validation(fields)
}

// fieldName maps a struct field name to its wire name (lowerCamel)
func fieldName(name string) string {
	if name == "" {
		return name
	}
	return strings.ToLower(name[:1]) + name[1:]
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "oneof":
		return "invalid enum value"
	case "min":
		if fe.Kind() == reflect.String {
			return "must be at least " + fe.Param() + " characters"
		}
		return "must be at least " + fe.Param()
	case "max":
		if fe.Kind() == reflect.String {
			return "must be at most " + fe.Param() + " characters"
		}
		return "must be at most " + fe.Param()
	default:
		return "is invalid"
	}
}
