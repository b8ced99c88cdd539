package form

import (
	"strings"

	"github.com/goliatone/go-marker/pkg/element"
)

// Submit renders a submit control. The default shape is
// <button type="submit" id>label</button>; a "tag" entry of "input" in attrs
// switches to <input type="submit" id value/>. name and tag never reach the
// markup, and value is dropped for the button shape.
func Submit(id, label string, attrs *element.Attributes) string {
	attrs = attrs.Clone()
	attrs.Set("type", "submit")
	attrs.Remove("name")
	attrs.SetDefault("id", id)
	attrs.SetDefault("value", label)

	tag, _ := attrs.Take("tag")
	if strings.EqualFold(strings.TrimSpace(tag), "input") {
		return element.MustNew("input", element.WithAttributes(attrs)).Render()
	}

	attrs.Remove("value")
	return element.MustNew("button", element.WithContent(label), element.WithAttributes(attrs)).Render()
}
