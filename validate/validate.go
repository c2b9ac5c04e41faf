package validate

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// -----------------------------------------------------------------------------
// Struct validation
// -----------------------------------------------------------------------------

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func instance() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "" || name == "-" {
				return strings.ToLower(fld.Name)
			}
			return name
		})
	})
	return validate
}

// RegisterRule registers a custom validation rule under the given tag.
func RegisterRule(tag string, fn validator.Func) error {
	return instance().RegisterValidation(tag, fn)
}

// Struct evaluates the validator tags declared on subject and returns the
// resulting collection, keyed by field name (json tag when present). A nil
// or rule-free subject yields an empty collection.
func Struct(subject any) *Errors {
	errs := NewErrors()
	if subject == nil {
		return errs
	}
	err := instance().Struct(subject)
	if err == nil {
		return errs
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		// Non-struct subjects and other misuse surface as a base message
		// instead of a panic; the caller treats it as a failed check.
		errs.AddBase(err.Error())
		return errs
	}
	for _, fe := range verrs {
		errs.Add(fe.Field(), messageFor(fe))
	}
	return errs
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "can't be blank"
	case "email":
		return "is not a valid email address"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("is too short (minimum is %s characters)", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("is too long (maximum is %s characters)", fe.Param())
		}
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())
	case "lt":
		return fmt.Sprintf("must be less than %s", fe.Param())
	case "lte":
		return fmt.Sprintf("must be less than or equal to %s", fe.Param())
	case "uuid":
		return "is not a valid UUID"
	case "url":
		return "is not a valid URL"
	default:
		return fmt.Sprintf("failed the %s check", fe.Tag())
	}
}
