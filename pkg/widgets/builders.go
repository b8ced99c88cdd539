package widgets

import (
	"github.com/goliatone/go-marker/pkg/element"
	"github.com/goliatone/go-marker/pkg/form"
	"github.com/goliatone/go-marker/pkg/markup"
	"github.com/goliatone/go-marker/pkg/model"
)

func permissiveBuilders() map[string]Builder {
	builders := map[string]Builder{
		WidgetHidden:      hiddenBuilder,
		WidgetPassword:    passwordBuilder,
		WidgetFile:        fileBuilder,
		WidgetCheckbox:    checkboxBuilder,
		WidgetTextarea:    textareaBuilder,
		WidgetSelect:      selectBuilder,
		WidgetCheckButton: checkButtonBuilder,
	}
	for _, kind := range []string{
		WidgetText, WidgetEmail, WidgetNumber, WidgetDate, WidgetTime, WidgetDateTime, WidgetRadio,
	} {
		builders[kind] = typedBuilder(kind)
	}
	return builders
}

// fieldAttributes returns the field attributes with the field label stored
// under "label", where the builders in package form pick it up.
func fieldAttributes(field model.Field) *element.Attributes {
	attrs := field.Attributes.Element()
	attrs.SetDefault("label", field.Label)
	return attrs
}

func typedBuilder(kind string) Builder {
	return func(field model.Field, errs form.Errors) (string, error) {
		return form.Typed(kind, field.Name, field.Value, fieldAttributes(field), errs), nil
	}
}

func hiddenBuilder(field model.Field, _ form.Errors) (string, error) {
	attrs := field.Attributes.Element()
	attrs.Remove("label")
	return form.Hidden(field.Name, field.Value, attrs), nil
}

func passwordBuilder(field model.Field, errs form.Errors) (string, error) {
	return form.Password(field.Name, fieldAttributes(field), errs), nil
}

func fileBuilder(field model.Field, errs form.Errors) (string, error) {
	return form.File(field.Name, fieldAttributes(field), errs), nil
}

func checkboxBuilder(field model.Field, errs form.Errors) (string, error) {
	attrs := fieldAttributes(field)
	value, checked := checkState(field)
	if checked {
		attrs.SetBool("checked")
	}
	return form.Checkbox(field.Name, value, attrs, errs), nil
}

func textareaBuilder(field model.Field, errs form.Errors) (string, error) {
	return form.Textarea(field.Name, field.Value, fieldAttributes(field), errs), nil
}

func selectBuilder(field model.Field, errs form.Errors) (string, error) {
	return form.Select(field.Name, []form.Choice(field.Choices), field.Value, fieldAttributes(field), errs), nil
}

func checkButtonBuilder(field model.Field, _ form.Errors) (string, error) {
	attrs := field.Attributes.Element()
	attrs.Remove("label")
	value, checked := checkState(field)
	if checked {
		attrs.Set("is_checked", "true")
	}
	return markup.CheckButton(field.Name, value, field.Label, attrs), nil
}

// checkState splits a boolean field value into the submitted value and the
// checked flag. Other values are submitted as is and leave the flag alone.
func checkState(field model.Field) (any, bool) {
	flag, ok := field.Value.(bool)
	if !ok {
		return field.Value, false
	}
	return "true", flag
}
