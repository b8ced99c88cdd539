package form

import (
	"strconv"
	"strings"

	"github.com/goliatone/go-marker/pkg/element"
)

// Choice is one entry of a select list.
type Choice struct {
	Value string `json:"value" yaml:"value"`
	Label string `json:"label" yaml:"label"`
}

// Choices builds a list from value/label pairs. A trailing value without a
// label uses the value as its label.
func Choices(pairs ...string) []Choice {
	out := make([]Choice, 0, (len(pairs)+1)/2)
	for idx := 0; idx < len(pairs); idx += 2 {
		choice := Choice{Value: pairs[idx], Label: pairs[idx]}
		if idx+1 < len(pairs) {
			choice.Label = pairs[idx+1]
		}
		out = append(out, choice)
	}
	return out
}

// Select renders a <select> with one <option> per choice.
func Select(name string, choices []Choice, selected any, attrs *element.Attributes, errs Errors) string {
	attrs = attrs.Clone()
	attrs.SetDefault("name", name)
	return control("select", element.WithMarkup(Options(choices, selected)), attrs, errs.Has(name))
}

// Options renders <option> elements in order. Options loosely equal to
// selected carry a bare selected attribute; see Selected.
func Options(choices []Choice, selected any) string {
	var builder strings.Builder
	for _, choice := range choices {
		option := element.MustNew("option",
			element.WithContent(choice.Label),
			element.WithAttrs(element.A("value", choice.Value)),
		)
		if Selected(selected, choice.Value) {
			option.SetBool("selected")
		}
		builder.WriteString(option.Render())
	}
	return builder.String()
}

// Selected reports whether value matches selected using loose equality: the
// textual forms are equal, or both parse as the same number ("1" matches 1
// and "1.0"). A []string or []any selected matches any of its entries. Nil
// and booleans match nothing.
func Selected(selected any, value string) bool {
	switch v := selected.(type) {
	case nil, bool:
		return false
	case []string:
		for _, candidate := range v {
			if looseEqual(candidate, value) {
				return true
			}
		}
		return false
	case []any:
		for _, candidate := range v {
			if Selected(candidate, value) {
				return true
			}
		}
		return false
	}

	text := element.Text(selected)
	if text == "" && value != "" {
		return false
	}
	return looseEqual(text, value)
}

func looseEqual(a, b string) bool {
	if a == b {
		return true
	}
	left, errLeft := strconv.ParseFloat(strings.TrimSpace(a), 64)
	right, errRight := strconv.ParseFloat(strings.TrimSpace(b), 64)
	return errLeft == nil && errRight == nil && left == right
}
