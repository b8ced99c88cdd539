package prompt

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/goliatone/go-marker/pkg/element"
	"github.com/goliatone/go-marker/pkg/form"
	"github.com/goliatone/go-marker/pkg/model"
	"github.com/goliatone/go-marker/pkg/widgets"
)

var errRequired = errors.New("a value is required")

// Fill asks for a value for every visible field of f and stores the answers
// in place, clearing the errors of the fields it touched. Widgets are
// resolved through reg (widgets.NewRegistry() when nil).
func Fill(ctx context.Context, driver Driver, f *model.Form, reg *widgets.Registry) error {
	if driver == nil {
		return fmt.Errorf("prompt: driver is required")
	}
	if f == nil {
		return fmt.Errorf("prompt: form is required")
	}
	if reg == nil {
		reg = widgets.NewRegistry()
	}

	if f.Legend != "" {
		if err := driver.Info(ctx, f.Legend); err != nil {
			return err
		}
	}

	for idx := range f.Fields {
		field := f.Fields[idx]
		widget, ok := reg.Resolve(field)
		if !ok {
			widget = widgets.DefaultWidget
		}
		if widget == widgets.WidgetHidden || widget == widgets.WidgetFile {
			continue
		}

		value, err := ask(ctx, driver, widget, field)
		if err != nil {
			return fmt.Errorf("prompt: field %q: %w", field.Name, err)
		}
		f.Fields[idx].Value = value
		f.ClearFieldErrors(field.Name)
	}
	return nil
}

func ask(ctx context.Context, driver Driver, widget string, field model.Field) (any, error) {
	message := displayLabel(field)
	required := hasFlag(field, "required")

	switch widget {
	case widgets.WidgetSelect, widgets.WidgetRadio:
		if len(field.Choices) == 0 {
			break
		}
		options := make([]string, len(field.Choices))
		defaultIndex := -1
		for idx, choice := range field.Choices {
			options[idx] = choice.Label
			if defaultIndex < 0 && form.Selected(field.Value, choice.Value) {
				defaultIndex = idx
			}
		}
		index, err := driver.Select(ctx, SelectConfig{
			Message:      message,
			Options:      options,
			DefaultIndex: defaultIndex,
			Help:         field.Help,
		})
		if err != nil {
			return nil, err
		}
		if index < 0 || index >= len(field.Choices) {
			return nil, fmt.Errorf("selection %d out of range", index)
		}
		return field.Choices[index].Value, nil

	case widgets.WidgetCheckButton, widgets.WidgetCheckbox:
		current, _ := field.Value.(bool)
		return driver.Confirm(ctx, ConfirmConfig{Message: message, Default: current, Help: field.Help})

	case widgets.WidgetPassword:
		return driver.Password(ctx, InputConfig{Message: message, Help: field.Help, Validator: requiredValidator(required)})

	case widgets.WidgetTextarea:
		return driver.TextArea(ctx, TextAreaConfig{Message: message, Default: element.Text(field.Value), Help: field.Help})

	case widgets.WidgetNumber:
		answer, err := driver.Input(ctx, InputConfig{
			Message:   message,
			Default:   element.Text(field.Value),
			Help:      field.Help,
			Validator: numberValidator(required),
		})
		if err != nil {
			return nil, err
		}
		return parseNumber(answer), nil
	}

	return driver.Input(ctx, InputConfig{
		Message:   message,
		Default:   element.Text(field.Value),
		Help:      field.Help,
		Validator: requiredValidator(required),
	})
}

func displayLabel(field model.Field) string {
	if label := strings.TrimSpace(field.Label); label != "" {
		return label
	}
	return field.Name
}

func hasFlag(field model.Field, name string) bool {
	return field.Attributes.Element().Has(name)
}

func requiredValidator(required bool) func(string) error {
	if !required {
		return nil
	}
	return func(answer string) error {
		if strings.TrimSpace(answer) == "" {
			return errRequired
		}
		return nil
	}
}

func numberValidator(required bool) func(string) error {
	return func(answer string) error {
		trimmed := strings.TrimSpace(answer)
		if trimmed == "" {
			if required {
				return errRequired
			}
			return nil
		}
		if _, err := strconv.ParseFloat(trimmed, 64); err != nil {
			return fmt.Errorf("%q is not a number", trimmed)
		}
		return nil
	}
}

// parseNumber keeps integers integral; blank answers clear the value.
func parseNumber(answer string) any {
	trimmed := strings.TrimSpace(answer)
	if trimmed == "" {
		return nil
	}
	if n, err := strconv.ParseInt(trimmed, 10, 64); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return f
	}
	return trimmed
}
