// Package markup assembles small composite widgets (images, links, icons and
// check buttons) from package element and package form. Arguments fill in
// attributes only when the caller's collection does not already set them.
package markup

import (
	"strings"

	"github.com/goliatone/go-marker/pkg/element"
	"github.com/goliatone/go-marker/pkg/form"
)

// CheckButtonClass is the class of the wrapper rendered by CheckButton.
const CheckButtonClass = "checkbutton"

// Image renders <img src title/>.
func Image(src, title string, attrs *element.Attributes) string {
	attrs = attrs.Clone()
	attrs.SetDefault("src", src)
	attrs.SetDefault("title", title)
	return element.MustNew("img", element.WithAttributes(attrs)).Render()
}

// Link renders <a href>label</a>.
func Link(href, label string, attrs *element.Attributes) string {
	attrs = attrs.Clone()
	attrs.SetDefault("href", href)
	return element.MustNew("a", element.WithContent(label), element.WithAttributes(attrs)).Render()
}

// Icon renders a Font Awesome solid icon, <i class="fas fa-name"></i>. An
// explicit title in attrs wins over the argument, and classes from attrs
// follow the icon classes.
func Icon(name, title string, attrs *element.Attributes) string {
	attrs = attrs.Clone()
	attrs.SetDefault("title", title)

	extra := attrs.Get("class")
	attrs.Set("class", []string{"fas", "fa-" + strings.TrimSpace(name), extra})
	return element.MustNew("i", element.WithAttributes(attrs)).Render()
}

// CheckButton renders a checkbox wrapped in its label:
//
//	<div class="checkbutton"><label for="id"><input .../><span>label</span></label></div>
//
// id defaults to name and type to "checkbox". An "is_checked" entry equal to
// "true" becomes the bare checked attribute.
func CheckButton(name string, value any, label string, attrs *element.Attributes) string {
	attrs = attrs.Clone()
	attrs.SetDefault("id", name)
	attrs.SetDefault("type", form.KindCheckbox)
	if flag, ok := attrs.Take("is_checked"); ok && isTrue(flag) {
		attrs.SetBool("checked")
	}

	control := form.Input(name, value, attrs, nil)
	caption := element.Span(label).Render()

	wrapper := element.MustNew("label",
		element.WithMarkup(control+caption),
		element.WithAttrs(element.A("for", attrs.Get("id"))),
	)
	return element.MustNew("div",
		element.WithChildren(wrapper),
		element.WithAttrs(element.Class(CheckButtonClass)),
	).Render()
}

func isTrue(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "true", "is_checked", "1", "yes", "on":
		return true
	default:
		return false
	}
}
