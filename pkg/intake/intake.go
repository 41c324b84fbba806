// Package intake validates triage requests before they reach the engine.
package intake

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	"github.com/zen-systems/medtriage/pkg/schema"
)

// MinTrimmedSymptoms is the minimum symptom length once surrounding space is removed.
const MinTrimmedSymptoms = 5

// ErrSymptomsTooShort is reported when the trimmed symptom text is too short.
var ErrSymptomsTooShort = errors.New("symptoms too short")

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	return v
}

// Error describes the first invalid field of a case.
type Error struct {
	Field  string
	Reason string
	Err    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Validate checks c and returns a copy with trimmed symptoms.
func Validate(c schema.Case) (schema.Case, error) {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return c, &Error{Field: fe.Field(), Reason: reason(fe), Err: err}
		}
		return c, err
	}

	trimmed := strings.TrimSpace(c.Symptoms)
	if utf8.RuneCountInString(trimmed) < MinTrimmedSymptoms {
		return c, &Error{Field: "symptoms", Reason: ErrSymptomsTooShort.Error(), Err: ErrSymptomsTooShort}
	}
	c.Symptoms = trimmed
	return c, nil
}

func reason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	case "oneof":
		return "must be one of " + fe.Param()
	default:
		return "failed " + fe.Tag()
	}
}
