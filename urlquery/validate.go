package urlquery

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report wire field names, not Go struct names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
		return fld.Name
	})
	return v
}

// checkParams validates a wire struct and converts failures into a
// *ValidationError whose messages list the legal values.
func checkParams(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	failures := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		failures = append(failures, describeFailure(fe))
	}
	return &ValidationError{Failures: failures}
}

func describeFailure(fe validator.FieldError) string {
	switch fe.Tag() {
	case "oneof":
		allowed := strings.Join(strings.Fields(fe.Param()), ", ")
		return fmt.Sprintf("%s can only be in %s", fe.Field(), allowed)
	case "lte":
		return fmt.Sprintf("%s can only be <= %s", fe.Field(), fe.Param())
	case "gte":
		return fmt.Sprintf("%s can only be >= %s", fe.Field(), fe.Param())
	case "min":
		return fmt.Sprintf("%s must have at least %s entries", fe.Field(), fe.Param())
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	default:
		return fmt.Sprintf("%s failed %s validation", fe.Field(), fe.Tag())
	}
}

// invalid merges struct validation results with free-form failures (such as
// timestamp parse errors) into a single *ValidationError, or passes through a
// non-validation error unchanged.
func invalid(structErr error, failures []string) error {
	all := failures
	if structErr != nil {
		var ve *ValidationError
		if !errors.As(structErr, &ve) {
			return structErr
		}
		all = append(ve.Failures, failures...)
	}
	if len(all) == 0 {
		return nil
	}
	return &ValidationError{Failures: all}
}
