// Package validation turns struct-tag constraints into typed domain errors.
//
// Go Learning Note — "github.com/go-playground/validator/v10":
// This is the same validator Gin uses behind its `binding:"..."` tags. Using
// it directly in the domain layer lets constructors declare their invariants
// as tags (`validate:"gte=0,lte=100"`) instead of hand-written if-chains, and
// the HTTP layer and the domain layer then agree on the rule vocabulary.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationError reports the first constraint a value failed at construction
// time. No object is built when it is returned.
type ValidationError struct {
	Field string
	Rule  string
	Param string
	Value any
}

func (e *ValidationError) Error() string {
	if e.Param != "" {
		return fmt.Sprintf("invalid %s %v: must satisfy %s=%s", e.Field, e.Value, e.Rule, e.Param)
	}
	return fmt.Sprintf("invalid %s %v: must satisfy %s", e.Field, e.Value, e.Rule)
}

// New builds a ValidationError for checks that are not expressed as tags.
func New(field, rule string, value any) *ValidationError {
	return &ValidationError{Field: field, Rule: rule, Value: value}
}

// validate is safe for concurrent use and caches struct metadata, so a single
// package-level instance is shared by every caller.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Report fields by their json name ("marks") rather than the Go field
	// name ("Marks"), so error messages match what API clients send.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return strings.ToLower(fld.Name)
		}
		return name
	})
	return v
}

// Struct validates s against its `validate` tags and returns a
// *ValidationError describing the first failure.
func Struct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return &ValidationError{
			Field: fe.Field(),
			Rule:  fe.Tag(),
			Param: fe.Param(),
			Value: fe.Value(),
		}
	}
	return err
}
