package a11y

import (
	"strings"

	"github.com/goliatone/go-marker/pkg/element"
)

// ContentRequirement stands for the element body in rule lists and
// ValidationError.Attribute.
const ContentRequirement = "content"

// rules lists the attributes each element needs to be perceivable and
// operable.
var rules = map[string][]string{
	"a":          {"href"},
	"area":       {"alt"},
	"button":     {ContentRequirement},
	"figcaption": {ContentRequirement},
	"html":       {ContentRequirement, "lang"},
	"iframe":     {"title"},
	"img":        {"alt"},
	"input":      {"type", "name"},
	"label":      {"for"},
	"select":     {"name"},
	"textarea":   {"name"},
	"th":         {"scope"},
}

// Requirements returns the attributes Validate checks for tag.
func Requirements(tag string) []string {
	return append([]string(nil), rules[strings.ToLower(strings.TrimSpace(tag))]...)
}

// Validate checks an element built elsewhere against the same rules the
// wrappers enforce. Tags without rules always pass.
func Validate(el *element.Element) error {
	if el == nil {
		return nil
	}
	tag := strings.ToLower(el.Tag())
	for _, requirement := range rules[tag] {
		value := el.GetAttribute(requirement)
		if requirement == ContentRequirement {
			value = el.Content()
		}
		if err := require(tag, requirement, value); err != nil {
			return err
		}
	}
	return nil
}

func require(tag, attribute, value string) error {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{Element: tag, Attribute: attribute}
	}
	return nil
}
