package widgets

import (
	"strings"

	"github.com/goliatone/go-marker/pkg/a11y"
	"github.com/goliatone/go-marker/pkg/element"
	"github.com/goliatone/go-marker/pkg/form"
	"github.com/goliatone/go-marker/pkg/model"
)

func strictBuilders() map[string]Builder {
	builders := map[string]Builder{
		WidgetTextarea:    strictTextarea,
		WidgetSelect:      strictSelect,
		WidgetCheckButton: strictInput(form.KindCheckbox),
		WidgetDateTime:    strictInput("datetime-local"),
	}
	for _, kind := range []string{
		WidgetText, WidgetHidden, WidgetPassword, WidgetEmail, WidgetNumber, WidgetDate,
		WidgetTime, WidgetCheckbox, WidgetRadio, WidgetFile,
	} {
		builders[kind] = strictInput(kind)
	}
	return builders
}

// strictAttributes prepares the control attributes: the caption is taken out
// of the collection and the error class added for invalid fields.
func strictAttributes(field model.Field, errs form.Errors) (*element.Attributes, string) {
	attrs := field.Attributes.Element()
	caption, _ := attrs.Take("label")
	if strings.TrimSpace(field.Label) != "" {
		caption = field.Label
	}
	if errs.Has(field.Name) {
		attrs.AppendTokens("class", form.ErrorClass)
	}
	return attrs, caption
}

// labelled renders the <label> preceding control. Controls named through
// aria-label or aria-labelledby may go without one; any other visible control
// needs a caption.
func labelled(tag string, field model.Field, attrs *element.Attributes, caption string, errs form.Errors, control string) (string, error) {
	if strings.TrimSpace(caption) == "" {
		if attrs.Has("aria-label") || attrs.Has("aria-labelledby") {
			return control, nil
		}
		return "", &a11y.ValidationError{Element: tag, Attribute: "label"}
	}
	id := attrs.Get("id")
	if id == "" {
		id = field.Name
	}
	var labelAttrs *element.Attributes
	if errs.Has(field.Name) {
		labelAttrs = element.NewAttributes(element.Class(form.ErrorClass))
	}
	label, err := a11y.Label(id, caption, labelAttrs)
	if err != nil {
		return "", err
	}
	return label + control, nil
}

func strictInput(kind string) Builder {
	return func(field model.Field, errs form.Errors) (string, error) {
		attrs, caption := strictAttributes(field, errs)
		switch kind {
		case form.KindPassword:
			attrs.Remove("value")
		case form.KindFile:
		case form.KindCheckbox:
			value, checked := checkState(field)
			if checked {
				attrs.SetBool("checked")
			}
			attrs.SetDefault("value", value)
		default:
			attrs.SetDefault("value", field.Value)
		}

		control, err := a11y.Input(kind, field.Name, attrs)
		if err != nil {
			return "", err
		}
		if kind == form.KindHidden {
			return control, nil
		}
		return labelled("input", field, attrs, caption, errs, control)
	}
}

func strictTextarea(field model.Field, errs form.Errors) (string, error) {
	attrs, caption := strictAttributes(field, errs)
	control, err := a11y.Textarea(field.Name, field.Value, attrs)
	if err != nil {
		return "", err
	}
	return labelled("textarea", field, attrs, caption, errs, control)
}

func strictSelect(field model.Field, errs form.Errors) (string, error) {
	attrs, caption := strictAttributes(field, errs)
	control, err := a11y.Select(field.Name, []form.Choice(field.Choices), field.Value, attrs)
	if err != nil {
		return "", err
	}
	return labelled("select", field, attrs, caption, errs, control)
}
