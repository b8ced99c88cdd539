package form

import (
	"strings"

	"github.com/goliatone/go-marker/pkg/element"
)

// Input kinds with a dedicated shortcut.
const (
	KindText     = "text"
	KindHidden   = "hidden"
	KindPassword = "password"
	KindEmail    = "email"
	KindNumber   = "number"
	KindDate     = "date"
	KindTime     = "time"
	KindDateTime = "datetime"
	KindCheckbox = "checkbox"
	KindRadio    = "radio"
	KindFile     = "file"
)

// Input renders an <input>. name and value are used unless attrs already
// carries them; a missing type defaults to "text" and id defaults to the name.
// A disabled input keeps the type it was given.
func Input(name string, value any, attrs *element.Attributes, errs Errors) string {
	attrs = attrs.Clone()
	attrs.SetDefault("name", name)
	attrs.SetDefault("value", value)
	attrs.SetDefault("type", KindText)
	return control("input", nil, attrs, errs.Has(name))
}

// Typed renders an <input> of the given kind, overriding any type in attrs.
// "datetime" maps to "datetime-local" and password values are never echoed.
func Typed(kind, name string, value any, attrs *element.Attributes, errs Errors) string {
	attrs = attrs.Clone()
	kind = strings.ToLower(strings.TrimSpace(kind))
	if kind == "" {
		kind = KindText
	}
	attrs.Set("type", kind)
	attrs.SetDefault("name", name)
	attrs.SetDefault("value", value)

	switch kind {
	case KindDateTime:
		attrs.Set("type", "datetime-local")
	case KindPassword:
		attrs.Remove("value")
	}
	return Input(name, nil, attrs, errs)
}

// Text renders <input type="text">.
func Text(name string, value any, attrs *element.Attributes, errs Errors) string {
	return Typed(KindText, name, value, attrs, errs)
}

// Hidden renders <input type="hidden">.
func Hidden(name string, value any, attrs *element.Attributes) string {
	return Typed(KindHidden, name, value, attrs, nil)
}

// Password renders <input type="password"> without a value.
func Password(name string, attrs *element.Attributes, errs Errors) string {
	return Typed(KindPassword, name, nil, attrs, errs)
}

// Email renders <input type="email">.
func Email(name string, value any, attrs *element.Attributes, errs Errors) string {
	return Typed(KindEmail, name, value, attrs, errs)
}

// Number renders <input type="number">.
func Number(name string, value any, attrs *element.Attributes, errs Errors) string {
	return Typed(KindNumber, name, value, attrs, errs)
}

// Date renders <input type="date">.
func Date(name string, value any, attrs *element.Attributes, errs Errors) string {
	return Typed(KindDate, name, value, attrs, errs)
}

// Time renders <input type="time">.
func Time(name string, value any, attrs *element.Attributes, errs Errors) string {
	return Typed(KindTime, name, value, attrs, errs)
}

// DateTime renders <input type="datetime-local">.
func DateTime(name string, value any, attrs *element.Attributes, errs Errors) string {
	return Typed(KindDateTime, name, value, attrs, errs)
}

// Checkbox renders <input type="checkbox">.
func Checkbox(name string, value any, attrs *element.Attributes, errs Errors) string {
	return Typed(KindCheckbox, name, value, attrs, errs)
}

// Radio renders <input type="radio">.
func Radio(name string, value any, attrs *element.Attributes, errs Errors) string {
	return Typed(KindRadio, name, value, attrs, errs)
}

// File renders <input type="file">.
func File(name string, attrs *element.Attributes, errs Errors) string {
	return Typed(KindFile, name, nil, attrs, errs)
}

// Textarea renders a <textarea> holding value as escaped text.
func Textarea(name string, value any, attrs *element.Attributes, errs Errors) string {
	attrs = attrs.Clone()
	attrs.SetDefault("name", name)
	return control("textarea", element.WithContent(element.Text(value)), attrs, errs.Has(name))
}

// Label renders <label for="forID">. A "label" entry in attrs is discarded.
func Label(forID, text string, attrs *element.Attributes, errs Errors) string {
	attrs = attrs.Clone()
	attrs.Remove("label")
	attrs.Set("for", forID)
	if errs.Has(forID) {
		attrs.AppendTokens("class", ErrorClass)
	}
	return element.MustNew("label", element.WithContent(text), element.WithAttributes(attrs)).Render()
}

// Legend renders a <legend>.
func Legend(text string, attrs *element.Attributes) string {
	return element.MustNew("legend", element.WithContent(text), element.WithAttributes(attrs)).Render()
}

// control renders tag with the shared field conventions: id defaults to the
// name, invalid controls get ErrorClass and a "label" entry turns into a
// preceding <label>.
func control(tag string, content element.Option, attrs *element.Attributes, invalid bool) string {
	attrs.SetDefault("id", attrs.Get("name"))
	if invalid {
		attrs.AppendTokens("class", ErrorClass)
	}

	var label string
	if text, ok := attrs.Take("label"); ok {
		var errs Errors
		if invalid {
			errs = Errors{attrs.Get("id"): nil}
		}
		label = Label(attrs.Get("id"), text, nil, errs)
	}

	return label + element.MustNew(tag, content, element.WithAttributes(attrs)).Render()
}
