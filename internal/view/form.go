package view

import "strconv"

// FormState is the request-scoped input of a form render: either stored values
// (edit) or the rejected submission together with its field errors.
// It lives for exactly one render and is never stored.
type FormState struct {
	Values map[string]string
	Errors map[string]string
}

// NewForm returns a FormState for values and errors; either may be nil.
func NewForm(values, errors map[string]string) *FormState {
	if values == nil {
		values = map[string]string{}
	}
	if errors == nil {
		errors = map[string]string{}
	}
	return &FormState{Values: values, Errors: errors}
}

// Value returns the value to pre-fill field with.
func (f *FormState) Value(field string) string {
	if f == nil {
		return ""
	}
	return f.Values[field]
}

// Selected reports whether field currently holds id.
func (f *FormState) Selected(field string, id int) bool {
	return f.Value(field) == strconv.Itoa(id)
}

// Has reports whether field failed validation.
func (f *FormState) Has(field string) bool {
	if f == nil {
		return false
	}
	_, ok := f.Errors[field]
	return ok
}

// Error returns the validation message for field.
func (f *FormState) Error(field string) string {
	if f == nil {
		return ""
	}
	return f.Errors[field]
}

// InvalidClass returns the CSS modifier marking a failed field.
func (f *FormState) InvalidClass(field string) string {
	if f.Has(field) {
		return " is-invalid"
	}
	return ""
}
