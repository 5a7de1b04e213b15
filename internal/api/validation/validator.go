package validation

import (
	"errors"

	"github.com/blaisecz/sleep-calculator/internal/sleepcycle"
	"github.com/blaisecz/sleep-calculator/pkg/problem"
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	// HH:MM time of day, 00:00 through 23:59
	validate.RegisterValidation("clock", func(fl validator.FieldLevel) bool {
		_, err := sleepcycle.ParseClock(fl.Field().String())
		return err == nil
	})
}

// Validate validates a struct and returns field errors
func Validate(s interface{}) []problem.FieldError {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return []problem.FieldError{{Field: "body", Message: "is invalid"}}
	}

	var fieldErrors []problem.FieldError
	for _, err := range validationErrors {
		fieldErrors = append(fieldErrors, problem.FieldError{
			Field:   toSnakeCase(err.Field()),
			Message: getValidationMessage(err),
		})
	}
	return fieldErrors
}

// FieldErrorFor maps a calculator error onto the request field it concerns.
// It returns false for errors that are not caused by client input.
func FieldErrorFor(err error) (problem.FieldError, bool) {
	var inputErr *sleepcycle.InputError
	if !errors.As(err, &inputErr) {
		return problem.FieldError{}, false
	}

	fieldErr := problem.FieldError{Field: inputErr.Field, Message: "is invalid"}
	switch {
	case errors.Is(err, sleepcycle.ErrInvalidTimeFormat):
		fieldErr.Message = "must be a valid HH:MM time"
	case errors.Is(err, sleepcycle.ErrInvalidLatency):
		fieldErr.Message = "must be between 0 and 120"
	case errors.Is(err, sleepcycle.ErrUnknownPolicy):
		fieldErr.Message = "must be one of: quality proximity"
	case errors.Is(err, sleepcycle.ErrUnknownFormat):
		fieldErr.Message = "must be one of: 12h 24h"
	}
	return fieldErr, true
}

func getValidationMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "is required"
	case "min":
		return "must be at least " + err.Param()
	case "max":
		return "must be at most " + err.Param()
	case "oneof":
		return "must be one of: " + err.Param()
	case "clock":
		return "must be a valid HH:MM time"
	default:
		return "is invalid"
	}
}

func toSnakeCase(s string) string {
	var result []byte
	for i, c := range s {
		if c >= 'A' && c <= 'Z' {
			if i > 0 {
				result = append(result, '_')
			}
			result = append(result, byte(c+'a'-'A'))
		} else {
			result = append(result, byte(c))
		}
	}
	return string(result)
}
