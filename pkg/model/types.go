package model

import (
	"strings"

	"github.com/goliatone/go-marker/pkg/form"
)

// Form is a complete form description.
type Form struct {
	ID          string              `json:"id,omitempty" yaml:"id,omitempty"`
	Action      string              `json:"action,omitempty" yaml:"action,omitempty"`
	Method      string              `json:"method,omitempty" yaml:"method,omitempty"`
	Legend      string              `json:"legend,omitempty" yaml:"legend,omitempty"`
	Description string              `json:"description,omitempty" yaml:"description,omitempty"`
	Attributes  Attributes          `json:"attributes,omitempty" yaml:"attributes,omitempty"`
	Fields      []Field             `json:"fields,omitempty" yaml:"fields,omitempty"`
	Submit      *Submit             `json:"submit,omitempty" yaml:"submit,omitempty"`
	Errors      map[string][]string `json:"errors,omitempty" yaml:"errors,omitempty"`
	FormErrors  []string            `json:"formErrors,omitempty" yaml:"formErrors,omitempty"`
}

// Field describes one form control.
type Field struct {
	Name       string     `json:"name" yaml:"name"`
	Widget     string     `json:"widget,omitempty" yaml:"widget,omitempty"`
	Label      string     `json:"label,omitempty" yaml:"label,omitempty"`
	Help       string     `json:"help,omitempty" yaml:"help,omitempty"`
	Value      any        `json:"value,omitempty" yaml:"value,omitempty"`
	Choices    Choices    `json:"choices,omitempty" yaml:"choices,omitempty"`
	Attributes Attributes `json:"attributes,omitempty" yaml:"attributes,omitempty"`
}

// Submit describes the submit control.
type Submit struct {
	ID         string     `json:"id,omitempty" yaml:"id,omitempty"`
	Label      string     `json:"label,omitempty" yaml:"label,omitempty"`
	Attributes Attributes `json:"attributes,omitempty" yaml:"attributes,omitempty"`
}

// FieldErrors returns the field error bag in the shape the builders expect,
// folding keys that name no field into the form-level messages.
func (f *Form) FieldErrors() (form.Errors, []string) {
	if f == nil {
		return nil, nil
	}
	mapped, formLevel := form.MapErrors(f.FieldNames(), f.Errors)
	return mapped, form.MergeFormErrors(f.FormErrors, formLevel...)
}

// ClearFieldErrors removes every error key that folds onto the field called
// name, including payload paths such as "/body/email".
func (f *Form) ClearFieldErrors(name string) {
	if f == nil || len(f.Errors) == 0 {
		return
	}
	fields := f.FieldNames()
	for key := range f.Errors {
		if field, ok := form.FieldForKey(fields, key); ok && field == name {
			delete(f.Errors, key)
		}
	}
}

// FieldNames lists the trimmed field names in order, skipping blanks.
func (f *Form) FieldNames() []string {
	if f == nil {
		return nil
	}
	names := make([]string, 0, len(f.Fields))
	for _, field := range f.Fields {
		if name := strings.TrimSpace(field.Name); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// Field returns the field called name.
func (f *Form) Field(name string) (Field, bool) {
	if f == nil {
		return Field{}, false
	}
	for _, field := range f.Fields {
		if field.Name == name {
			return field, true
		}
	}
	return Field{}, false
}

// SetValue assigns the value of the field called name and reports whether
// the field exists.
func (f *Form) SetValue(name string, value any) bool {
	if f == nil {
		return false
	}
	for idx := range f.Fields {
		if f.Fields[idx].Name == name {
			f.Fields[idx].Value = value
			return true
		}
	}
	return false
}
