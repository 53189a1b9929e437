// internal/pkg/forms/form.go
package forms

import (
	"regexp"
	"strings"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Form tracks values and error state for a set of named fields. All
// validation is local and synchronous; checks that need other state
// (like "is this email taken") belong to the stores, not here.
type Form struct {
	initial map[string]string
	values  map[string]string
	errors  map[string]string
}

// New creates a form seeded with initial values. Reset restores them.
func New(initial map[string]string) *Form {
	f := &Form{
		initial: make(map[string]string, len(initial)),
		values:  make(map[string]string, len(initial)),
		errors:  make(map[string]string),
	}
	for name, value := range initial {
		f.initial[name] = value
		f.values[name] = value
	}
	return f
}

// SetValue updates a field and clears its prior error, mirroring a user
// retyping into an input.
func (f *Form) SetValue(name, value string) {
	f.values[name] = value
	delete(f.errors, name)
}

// Value returns the current value for a field.
func (f *Form) Value(name string) string {
	return f.values[name]
}

// Values returns the current field map.
func (f *Form) Values() map[string]string {
	out := make(map[string]string, len(f.values))
	for name, value := range f.values {
		out[name] = value
	}
	return out
}

// Error returns the error message for a field, empty when valid.
func (f *Form) Error(name string) string {
	return f.errors[name]
}

// Errors returns the current error map.
func (f *Form) Errors() map[string]string {
	out := make(map[string]string, len(f.errors))
	for name, message := range f.errors {
		out[name] = message
	}
	return out
}

// SetError records an externally detected error for a field (e.g. the
// auth store rejecting a duplicate email).
func (f *Form) SetError(name, message string) {
	f.errors[name] = message
}

// Validate re-checks every field, repopulates the error map and reports
// whether the form is valid.
func (f *Form) Validate() bool {
	f.errors = make(map[string]string)
	for name, value := range f.values {
		if message := validateField(name, value); message != "" {
			f.errors[name] = message
		}
	}
	return len(f.errors) == 0
}

// Reset restores initial values and clears all errors.
func (f *Form) Reset() {
	f.values = make(map[string]string, len(f.initial))
	for name, value := range f.initial {
		f.values[name] = value
	}
	f.errors = make(map[string]string)
}

func validateField(name, value string) string {
	if strings.TrimSpace(value) == "" {
		return "this field is required"
	}

	switch name {
	case "email":
		if !emailPattern.MatchString(value) {
			return "invalid email address"
		}
	case "password":
		if len(value) < 6 {
			return "password must be at least 6 characters"
		}
	case "name":
		if len(value) < 2 {
			return "name must be at least 2 characters"
		}
	}

	return ""
}
