package element

import "html"

// Formatter turns a raw attribute value or text content into the form that is
// embedded in markup. It is never applied to tag or attribute names.
type Formatter func(string) string

// EscapeHTML is the default formatter. It escapes &, <, >, " and '.
func EscapeHTML(value string) string {
	return html.EscapeString(value)
}

// Raw passes values through untouched, for callers that pre-escape or
// deliberately embed markup.
func Raw(value string) string {
	return value
}

func resolveFormatter(format Formatter) Formatter {
	if format == nil {
		return EscapeHTML
	}
	return format
}

// Text converts a scalar value (string, number, fmt.Stringer) to its textual
// form. Values without one, including nil and booleans, yield "".
func Text(value any) string {
	text, _ := scalarString(value)
	return text
}
