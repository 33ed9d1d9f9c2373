package utils

import (
	"errors"
	"reflect"
	"strings"

	"github.com/badoux/checkmail"
	"github.com/go-playground/validator/v10"
	"github.com/localnerve/octofit-tracker/internal/types"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// report wire names rather than Go field names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	// mailformat applies the same syntax check the mail tooling uses
	_ = v.RegisterValidation("mailformat", func(fl validator.FieldLevel) bool {
		return checkmail.ValidateFormat(fl.Field().String()) == nil
	})
	// notblank rejects whitespace-only strings that required lets through
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	return v
}

// ValidateStruct checks struct tags and returns a ValidationError listing every failed field
func ValidateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return types.Validation("%v", err)
	}

	var messages []string
	for _, fe := range fieldErrors {
		field := strings.ToLower(fe.Field())
		param := fe.Param()

		switch fe.Tag() {
		case "required", "notblank":
			messages = append(messages, field+" is required")
		case "email", "mailformat":
			messages = append(messages, field+" must be a valid email")
		case "gte":
			messages = append(messages, field+" must be at least "+param)
		case "max":
			messages = append(messages, field+" must be at most "+param+" characters")
		case "datetime":
			messages = append(messages, field+" must be a date formatted as YYYY-MM-DD")
		default:
			messages = append(messages, field+" is invalid")
		}
	}

	return types.Validation("%s", strings.Join(messages, ", "))
}
