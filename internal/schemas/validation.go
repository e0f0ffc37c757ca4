package schemas

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	// ErrUnprocessable marks malformed or out-of-range input.
	ErrUnprocessable = errors.New("unprocessable input")
	// ErrBadRequest marks well-formed input whose fields contradict each other.
	ErrBadRequest = errors.New("bad request")
)

// Tags reported by struct-level rules. Failures on these are bad requests
// rather than unprocessable input.
const (
	tagDateRange = "date_range"
	tagSelector  = "selector"
)

// ValidationError carries per-field failures. It unwraps to ErrUnprocessable
// or ErrBadRequest.
type ValidationError struct {
	Message string
	Fields  map[string]string
	kind    error
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return e.Message
	}
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return fmt.Sprintf("%s (%s)", e.Message, strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return e.kind
}

// Unprocessable builds a ValidationError for a single malformed field.
func Unprocessable(field, reason string) *ValidationError {
	return &ValidationError{
		Message: "Validation failed",
		Fields:  map[string]string{field: reason},
		kind:    ErrUnprocessable,
	}
}

// BadRequest builds a ValidationError for a cross-field rule.
func BadRequest(message string) *ValidationError {
	return &ValidationError{Message: message, kind: ErrBadRequest}
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(fieldName)
	v.RegisterStructValidation(mealFilterRules, MealFilter{})
	v.RegisterStructValidation(userFilterRules, UserFilter{})
	return v
}

// fieldName reports fields by their wire name so messages match the request.
func fieldName(f reflect.StructField) string {
	for _, tag := range []string{"json", "query"} {
		name := strings.SplitN(f.Tag.Get(tag), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return f.Name
}

// Validate checks s against its validate tags and registered struct rules.
func Validate(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("failed to validate %T: %w", s, err)
	}

	for _, fe := range fieldErrs {
		switch fe.Tag() {
		case tagDateRange:
			return BadRequest("date_gt must be earlier than date_lt")
		case tagSelector:
			return BadRequest("id or telegram_id must be provided")
		}
	}

	out := &ValidationError{
		Message: "Validation failed",
		Fields:  make(map[string]string, len(fieldErrs)),
		kind:    ErrUnprocessable,
	}
	for _, fe := range fieldErrs {
		out.Fields[fe.Field()] = describe(fe)
	}
	return out
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field is required"
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())
	case "lte":
		return fmt.Sprintf("must be less than or equal to %s", fe.Param())
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	}
	return fmt.Sprintf("failed on the '%s' tag", fe.Tag())
}
