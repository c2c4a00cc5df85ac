package util

import (
	"errors"
	"fmt"
	"html"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once

	strictPolicy = bluemonday.StrictPolicy()
)

// Validator returns the shared validator. Field errors are named after the
// form tag so they match what the client submitted.
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("form"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				return strings.ToLower(f.Name)
			}
			return name
		})
	})
	return validate
}

// ValidateForm runs the struct tags of form and returns a FormError holding
// one message per failing field, or nil.
func ValidateForm(form any) *FormError {
	err := Validator().Struct(form)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return NewFormError("Validation failed", map[string]string{"form": err.Error()})
	}

	fields := make(map[string]string, len(validationErrors))
	for _, fe := range validationErrors {
		if _, seen := fields[fe.Field()]; seen {
			continue
		}
		fields[fe.Field()] = fieldMessage(fe)
	}
	return NewFormError("Validation failed", fields)
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must not exceed %s characters", fe.Param())
		}
		return fmt.Sprintf("must not exceed %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "email":
		return "must be a valid email address"
	case "datetime":
		return "must be a date in YYYY-MM-DD format"
	case "number", "numeric":
		return "must be a number"
	default:
		if fe.Param() != "" {
			return fmt.Sprintf("%s: %s", fe.Tag(), fe.Param())
		}
		return fe.Tag()
	}
}

// Sanitize strips markup from user supplied text, decodes entities and trims
// it. Decoding can surface new tags (&lt;b&gt;), so it repeats until the
// text settles.
func Sanitize(s string) string {
	for i := 0; i < 4; i++ {
		next := html.UnescapeString(strictPolicy.Sanitize(s))
		if next == s {
			break
		}
		s = next
	}
	return strings.TrimSpace(s)
}
