package a11y

import (
	"github.com/goliatone/go-marker/pkg/element"
	"github.com/goliatone/go-marker/pkg/form"
	"github.com/goliatone/go-marker/pkg/markup"
)

// Image renders <img src alt/>. alt is required (WCAG 1.1.1).
func Image(src, alt string, attrs *element.Attributes) (string, error) {
	if err := require("img", "alt", alt); err != nil {
		return "", err
	}
	attrs = attrs.Clone()
	attrs.Set("src", src)
	attrs.Set("alt", alt)
	return markup.Image(src, "", attrs), nil
}

// Figure renders content (trusted markup) followed by a <figcaption>. The
// caption is required.
func Figure(content, caption string, attrs *element.Attributes) (string, error) {
	if err := require("figcaption", ContentRequirement, caption); err != nil {
		return "", err
	}
	attrs = attrs.Clone()
	attrs.Set("role", "figure")
	figcaption := element.Figcaption(caption).Render()
	return element.MustNew("figure",
		element.WithMarkup(content+figcaption),
		element.WithAttributes(attrs),
	).Render(), nil
}

// Button renders a <button> with required text content. role defaults to
// "button".
func Button(content string, attrs *element.Attributes) (string, error) {
	if err := require("button", ContentRequirement, content); err != nil {
		return "", err
	}
	attrs = attrs.Clone()
	attrs.SetDefault("role", "button")
	return element.MustNew("button", element.WithContent(content), element.WithAttributes(attrs)).Render(), nil
}

// Audio renders <audio src controls>. src is required and controls is added
// unless attrs sets it (WCAG 1.2.1).
func Audio(src string, attrs *element.Attributes) (string, error) {
	return media("audio", src, attrs)
}

// Video renders <video src controls>, see Audio.
func Video(src string, attrs *element.Attributes) (string, error) {
	return media("video", src, attrs)
}

func media(tag, src string, attrs *element.Attributes) (string, error) {
	if err := require(tag, "src", src); err != nil {
		return "", err
	}
	attrs = attrs.Clone()
	attrs.Set("src", src)
	attrs.SetDefault("controls", true)
	return element.MustNew(tag, element.WithAttributes(attrs)).Render(), nil
}

// Iframe renders an <iframe> with a required title (WCAG 2.4.1).
func Iframe(src, title string, attrs *element.Attributes) (string, error) {
	if err := require("iframe", "title", title); err != nil {
		return "", err
	}
	attrs = attrs.Clone()
	attrs.Set("src", src)
	attrs.Set("title", title)
	return element.MustNew("iframe", element.WithAttributes(attrs)).Render(), nil
}

// Link renders <a href>content</a> with a required href (WCAG 2.4.4).
func Link(href, content string, attrs *element.Attributes) (string, error) {
	if err := require("a", "href", href); err != nil {
		return "", err
	}
	attrs = attrs.Clone()
	attrs.Set("href", href)
	return markup.Link(href, content, attrs), nil
}

// Area renders an image map <area> with a required alt.
func Area(alt string, attrs *element.Attributes) (string, error) {
	if err := require("area", "alt", alt); err != nil {
		return "", err
	}
	attrs = attrs.Clone()
	attrs.Set("alt", alt)
	return element.MustNew("area", element.WithAttributes(attrs)).Render(), nil
}

// Input renders an <input> with required type and name (WCAG 4.1.2). A
// required flag adds aria-required="true".
func Input(kind, name string, attrs *element.Attributes) (string, error) {
	if err := require("input", "type", kind); err != nil {
		return "", err
	}
	if err := require("input", "name", name); err != nil {
		return "", err
	}
	attrs = attrs.Clone()
	attrs.Set("name", name)
	attrs.Set("type", kind)
	if attrs.Has("required") {
		attrs.Set("aria-required", "true")
	}
	return form.Input(name, nil, attrs, nil), nil
}

// Select renders a <select> with a required name.
func Select(name string, choices []form.Choice, selected any, attrs *element.Attributes) (string, error) {
	if err := require("select", "name", name); err != nil {
		return "", err
	}
	attrs = attrs.Clone()
	attrs.Set("name", name)
	return form.Select(name, choices, selected, attrs, nil), nil
}

// Textarea renders a <textarea> with a required name.
func Textarea(name string, value any, attrs *element.Attributes) (string, error) {
	if err := require("textarea", "name", name); err != nil {
		return "", err
	}
	attrs = attrs.Clone()
	attrs.Set("name", name)
	return form.Textarea(name, value, attrs, nil), nil
}

// Label renders a <label> with a required for attribute.
func Label(forID, content string, attrs *element.Attributes) (string, error) {
	if err := require("label", "for", forID); err != nil {
		return "", err
	}
	return form.Label(forID, content, attrs, nil), nil
}

// HTML renders the document root. Content (trusted markup) and lang are
// required (WCAG 3.1.1).
func HTML(content string, attrs *element.Attributes) (string, error) {
	if err := require("html", ContentRequirement, content); err != nil {
		return "", err
	}
	if err := require("html", "lang", attrs.Get("lang")); err != nil {
		return "", err
	}
	return element.MustNew("html", element.WithMarkup(content), element.WithAttributes(attrs)).Render(), nil
}

// TH renders a table header cell with a required scope (WCAG 1.3.1).
func TH(scope, content string, attrs *element.Attributes) (string, error) {
	if err := require("th", "scope", scope); err != nil {
		return "", err
	}
	attrs = attrs.Clone()
	attrs.Set("scope", scope)
	return element.MustNew("th", element.WithContent(content), element.WithAttributes(attrs)).Render(), nil
}

// Submit renders the form submit control with a required caption.
func Submit(id, label string, attrs *element.Attributes) (string, error) {
	if err := require("button", ContentRequirement, label); err != nil {
		return "", err
	}
	return form.Submit(id, label, attrs), nil
}
