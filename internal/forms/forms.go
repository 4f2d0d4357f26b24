// Package forms declares the application's HTML forms as typed configurations:
// each form is an explicit list of fields paired with validator functions.
// Validation produces a structured list of field-error pairs; it never writes
// anywhere and never panics on bad input.
package forms

import (
	"fmt"
	"strconv"
	"time"
)

// FieldError is a single validation failure attached to a named form field.
type FieldError struct {
	Field   string
	Message string
}

// Errors is the result of validating a form. Empty means the form passed.
type Errors []FieldError

// ByField returns the first error message per field, for template rendering.
func (e Errors) ByField() map[string]string {
	out := make(map[string]string, len(e))
	for _, fe := range e {
		if _, ok := out[fe.Field]; !ok {
			out[fe.Field] = fe.Message
		}
	}
	return out
}

// Validator checks a single field value and returns an error message, or ""
// when the value is acceptable.
type Validator func(value string) string

// CrossCheck validates a relationship between fields (e.g. password
// confirmation). get returns the submitted value for a field name.
type CrossCheck func(get func(string) string) *FieldError

// Field pairs a form field name with its validators.
type Field struct {
	Name     string
	Validate []Validator
}

// Form is the typed configuration for one HTML form.
type Form struct {
	Fields []Field
	Checks []CrossCheck
}

// Validate runs every field validator and cross-check against the submitted
// values. get returns the raw value for a field name (e.g. r.FormValue).
func (f Form) Validate(get func(string) string) Errors {
	var errs Errors
	for _, field := range f.Fields {
		value := get(field.Name)
		for _, validate := range field.Validate {
			if msg := validate(value); msg != "" {
				errs = append(errs, FieldError{Field: field.Name, Message: msg})
				break // first failure per field is enough
			}
		}
	}
	for _, check := range f.Checks {
		if fe := check(get); fe != nil {
			errs = append(errs, *fe)
		}
	}
	return errs
}

// Required rejects empty values.
func Required() Validator {
	return func(value string) string {
		if value == "" {
			return "This field is required."
		}
		return ""
	}
}

// Length requires the value to be between min and max characters long.
func Length(min, max int) Validator {
	return func(value string) string {
		if len(value) < min || len(value) > max {
			return fmt.Sprintf("Field must be between %d and %d characters long.", min, max)
		}
		return ""
	}
}

// Integer requires a parseable integer no smaller than min.
func Integer(min int) Validator {
	return func(value string) string {
		n, err := strconv.Atoi(value)
		if err != nil {
			return "Not a valid integer value."
		}
		if n < min {
			return fmt.Sprintf("Number must be at least %d.", min)
		}
		return ""
	}
}

// Decimal requires a parseable non-negative decimal number.
func Decimal() Validator {
	return func(value string) string {
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return "Not a valid decimal value."
		}
		if f < 0 {
			return "Number must not be negative."
		}
		return ""
	}
}

// ClockTime requires a wall-clock time in HH:MM form.
func ClockTime() Validator {
	return func(value string) string {
		if _, err := time.Parse("15:04", value); err != nil {
			return "Not a valid time value (expected HH:MM)."
		}
		return ""
	}
}

// Date requires a calendar date in YYYY-MM-DD form.
func Date() Validator {
	return func(value string) string {
		if _, err := time.Parse("2006-01-02", value); err != nil {
			return "Not a valid date value (expected YYYY-MM-DD)."
		}
		return ""
	}
}

// Optional wraps a validator so that empty values pass untouched.
func Optional(v Validator) Validator {
	return func(value string) string {
		if value == "" {
			return ""
		}
		return v(value)
	}
}

// EqualTo checks that two fields hold the same value, attaching the message
// to field.
func EqualTo(field, other, message string) CrossCheck {
	return func(get func(string) string) *FieldError {
		if get(field) != get(other) {
			return &FieldError{Field: field, Message: message}
		}
		return nil
	}
}
