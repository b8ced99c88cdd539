package document

import (
	"fmt"
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-marker/pkg/a11y"
	"github.com/goliatone/go-marker/pkg/element"
	"github.com/goliatone/go-marker/pkg/form"
	"github.com/goliatone/go-marker/pkg/model"
	"github.com/goliatone/go-marker/pkg/widgets"
)

// Class names of the wrappers emitted around fields and messages.
const (
	FieldClass       = "field"
	ErrorsClass      = "errors"
	HelpClass        = "help"
	DescriptionClass = "description"
)

// Option configures Render.
type Option func(*config)

type config struct {
	registry   *widgets.Registry
	strict     bool
	format     element.Formatter
	theme      *theme.RendererConfig
	decorators []model.Decorator
}

// WithRegistry renders fields through reg instead of widgets.NewRegistry().
func WithRegistry(reg *widgets.Registry) Option {
	return func(cfg *config) {
		cfg.registry = reg
	}
}

// WithStrict renders fields with widgets.NewStrictRegistry() (unless
// WithRegistry supplies one) and checks the submit caption, failing with an
// *a11y.ValidationError on the first violation.
func WithStrict() Option {
	return func(cfg *config) {
		cfg.strict = true
	}
}

// WithFormatter sets the formatter for the free text blocks of a document,
// the form description and field help. Pass a sanitize formatter to allow
// vetted markup there. Nil restores HTML escaping.
func WithFormatter(format element.Formatter) Option {
	return func(cfg *config) {
		cfg.format = format
	}
}

// WithTheme applies a go-theme renderer configuration; see themeClasses.
func WithTheme(cfg *theme.RendererConfig) Option {
	return func(c *config) {
		c.theme = cfg
	}
}

// WithDecorators runs decorators on a copy of the form before rendering.
func WithDecorators(decorators ...model.Decorator) Option {
	return func(cfg *config) {
		cfg.decorators = append(cfg.decorators, decorators...)
	}
}

// Render produces the markup for f:
//
//	<form ...><ul class="errors">...</ul><fieldset><legend/>fields</fieldset>submit</form>
//
// Each field is wrapped in <div class="field"> followed by its help text and
// error messages. The fieldset is emitted only when the form has a legend.
// The caller's form is never modified.
func Render(f *model.Form, options ...Option) (string, error) {
	if f == nil {
		return "", fmt.Errorf("document: form is required")
	}
	cfg := config{}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.registry == nil {
		if cfg.strict {
			cfg.registry = widgets.NewStrictRegistry()
		} else {
			cfg.registry = widgets.NewRegistry()
		}
	}

	working := cloneForm(f)
	for _, decorator := range append([]model.Decorator{cfg.registry}, cfg.decorators...) {
		if decorator == nil {
			continue
		}
		if err := decorator.Decorate(working); err != nil {
			return "", fmt.Errorf("document: decorate %q: %w", working.ID, err)
		}
	}

	classes := themeClasses(cfg.theme)
	fieldErrs, formErrs := working.FieldErrors()

	var body strings.Builder
	body.WriteString(messageList(formErrs))

	var fields strings.Builder
	if working.Legend != "" {
		fields.WriteString(form.Legend(working.Legend, nil))
	}
	if working.Description != "" {
		fields.WriteString(textBlock(working.Description, DescriptionClass, cfg.format))
	}
	for _, field := range working.Fields {
		markup, err := renderField(cfg, classes, field, fieldErrs)
		if err != nil {
			return "", fmt.Errorf("document: render %q: %w", working.ID, err)
		}
		fields.WriteString(markup)
	}
	if working.Legend != "" {
		body.WriteString(element.MustNew("fieldset", element.WithMarkup(fields.String())).Render())
	} else {
		body.WriteString(fields.String())
	}

	if working.Submit != nil {
		submit, err := renderSubmit(cfg, classes, working.Submit)
		if err != nil {
			return "", fmt.Errorf("document: render %q: %w", working.ID, err)
		}
		body.WriteString(submit)
	}

	attrs := working.Attributes.Element()
	attrs.SetDefault("id", working.ID)
	attrs.SetDefault("action", working.Action)
	attrs.SetDefault("method", working.Method)
	attrs.AppendTokens("class", classes.form...)
	applyThemeAttributes(attrs, cfg.theme)

	return element.MustNew("form",
		element.WithMarkup(body.String()),
		element.WithAttributes(attrs),
	).Render(), nil
}

func renderField(cfg config, classes classSet, field model.Field, errs form.Errors) (string, error) {
	widget := field.Widget
	if widget == "" {
		widget = widgets.DefaultWidget
	}
	if tokens := classes.widget(widget); len(tokens) > 0 {
		field.Attributes = withClasses(field.Attributes, tokens)
	}

	control, err := cfg.registry.Render(field, errs)
	if err != nil {
		return "", err
	}
	if widget == widgets.WidgetHidden {
		return control, nil
	}

	var inner strings.Builder
	inner.WriteString(control)
	if field.Help != "" {
		inner.WriteString(textBlock(field.Help, HelpClass, cfg.format))
	}
	inner.WriteString(messageList(errs.Messages(field.Name)))

	wrapper := element.NewAttributes(element.Class(append([]string{FieldClass}, classes.field...)...))
	if errs.Has(field.Name) {
		wrapper.AppendTokens("class", form.ErrorClass)
	}
	return element.MustNew("div", element.WithMarkup(inner.String()), element.WithAttributes(wrapper)).Render(), nil
}

func renderSubmit(cfg config, classes classSet, submit *model.Submit) (string, error) {
	attrs := submit.Attributes.Element()
	attrs.AppendTokens("class", classes.submit...)
	if cfg.strict {
		return a11y.Submit(submit.ID, submit.Label, attrs)
	}
	return form.Submit(submit.ID, submit.Label, attrs), nil
}

// messageList renders messages as <ul class="errors">, or nothing.
func messageList(messages []string) string {
	if len(messages) == 0 {
		return ""
	}
	items := make([]*element.Element, 0, len(messages))
	for _, message := range messages {
		items = append(items, element.Li(message))
	}
	return element.MustNew("ul",
		element.WithChildren(items...),
		element.WithAttrs(element.Class(ErrorsClass)),
	).Render()
}

func textBlock(text, class string, format element.Formatter) string {
	return element.MustNew("p",
		element.WithContent(text),
		element.WithAttrs(element.Class(class)),
		element.WithFormatter(format),
	).Render()
}

// withClasses returns a copy of attrs whose class list ends with tokens.
func withClasses(attrs model.Attributes, tokens []string) model.Attributes {
	out := append(model.Attributes(nil), attrs...)
	existing := out.Element().Get("class")
	return out.Set("class", append([]string{existing}, tokens...))
}

func cloneForm(f *model.Form) *model.Form {
	out := *f
	out.Fields = append([]model.Field(nil), f.Fields...)
	for idx := range out.Fields {
		out.Fields[idx].Attributes = append(model.Attributes(nil), out.Fields[idx].Attributes...)
	}
	out.Attributes = append(model.Attributes(nil), f.Attributes...)
	if f.Submit != nil {
		submit := *f.Submit
		submit.Attributes = append(model.Attributes(nil), f.Submit.Attributes...)
		out.Submit = &submit
	}
	return &out
}
