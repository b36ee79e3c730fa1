package validation

import (
	"reflect"
	"strings"

	"github.com/blaisecz/dailyform-tracker/internal/domain"
	"github.com/blaisecz/dailyform-tracker/pkg/problem"
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	// Report fields by their JSON names
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// dailyscore=<field> accepts anything domain.NormalizeScore accepts
	_ = validate.RegisterValidation("dailyscore", func(fl validator.FieldLevel) bool {
		_, err := domain.NormalizeScore(fl.Field().Interface(), fl.Param())
		return err == nil
	})
}

// Validate validates a struct and returns field errors
func Validate(s interface{}) []problem.FieldError {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return []problem.FieldError{{Field: "body", Message: "is invalid"}}
	}

	var fieldErrors []problem.FieldError
	for _, err := range validationErrors {
		fieldErrors = append(fieldErrors, problem.FieldError{
			Field:   fieldPath(err),
			Message: getValidationMessage(err),
		})
	}
	return fieldErrors
}

// fieldPath drops the root struct name: "AnalyzeRequest.data.sleep[2]" -> "data.sleep[2]".
func fieldPath(err validator.FieldError) string {
	ns := err.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return err.Field()
}

func getValidationMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "is required"
	case "min":
		return "must be at least " + err.Param()
	case "max":
		if err.Kind() == reflect.String {
			return "must be at most " + err.Param() + " characters"
		}
		return "must be at most " + err.Param()
	case "len":
		return "must contain exactly " + err.Param() + " values"
	case "dailyscore":
		return "must be one of: 1, 2, 3, bad, neutral, top"
	default:
		return "is invalid"
	}
}

// FromDomain converts a service-level validation error into field errors.
func FromDomain(err *domain.ValidationError) []problem.FieldError {
	return []problem.FieldError{{Field: err.Field, Message: err.Message}}
}
