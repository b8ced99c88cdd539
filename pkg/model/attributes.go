package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-marker/pkg/element"
	"github.com/goliatone/go-marker/pkg/form"
)

// Attributes is an ordered list of attribute assignments. Decoding a YAML or
// JSON mapping keeps the document order. Values are scalars, booleans or
// lists of scalars; nested mappings are rejected.
type Attributes []element.Attr

// Element converts the list into an element attribute collection.
func (a Attributes) Element() *element.Attributes {
	return element.NewAttributes(a...)
}

// Get returns the raw value assigned to name.
func (a Attributes) Get(name string) (any, bool) {
	for _, attr := range a {
		if attr.Name == name {
			return attr.Value, true
		}
	}
	return nil, false
}

// Set replaces the value of name in place or appends a new assignment.
func (a Attributes) Set(name string, value any) Attributes {
	for idx := range a {
		if a[idx].Name == name {
			a[idx].Value = value
			return a
		}
	}
	return append(a, element.A(name, value))
}

// UnmarshalYAML decodes a mapping node, keeping key order.
func (a *Attributes) UnmarshalYAML(node *yaml.Node) error {
	node = resolveAlias(node)
	if isNull(node) {
		*a = nil
		return nil
	}
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("model: attributes (line %d): expected a mapping", node.Line)
	}

	out := make(Attributes, 0, len(node.Content)/2)
	for idx := 0; idx+1 < len(node.Content); idx += 2 {
		key := node.Content[idx]
		name := strings.TrimSpace(key.Value)
		if name == "" {
			return fmt.Errorf("model: attributes (line %d): empty attribute name", key.Line)
		}
		if !element.ValidAttributeName(name) {
			return fmt.Errorf("model: attributes (line %d): invalid attribute name %q", key.Line, name)
		}
		value, err := attributeValue(name, node.Content[idx+1])
		if err != nil {
			return err
		}
		out = out.Set(name, value)
	}
	*a = out
	return nil
}

// MarshalYAML encodes the list as a mapping in order.
func (a Attributes) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, attr := range a {
		var value yaml.Node
		if err := value.Encode(attr.Value); err != nil {
			return nil, fmt.Errorf("model: encode attribute %q: %w", attr.Name, err)
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: attr.Name},
			&value,
		)
	}
	return node, nil
}

// UnmarshalJSON decodes a JSON object, keeping key order.
func (a *Attributes) UnmarshalJSON(data []byte) error {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return fmt.Errorf("model: decode attributes: %w", err)
	}
	if len(node.Content) == 0 {
		*a = nil
		return nil
	}
	return a.UnmarshalYAML(node.Content[0])
}

// MarshalJSON encodes the list as a JSON object in order.
func (a Attributes) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for idx, attr := range a {
		if idx > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(attr.Name)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(attr.Value)
		if err != nil {
			return nil, fmt.Errorf("model: encode attribute %q: %w", attr.Name, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func attributeValue(name string, node *yaml.Node) (any, error) {
	node = resolveAlias(node)
	switch node.Kind {
	case yaml.ScalarNode:
		if isNull(node) {
			return nil, nil
		}
		var value any
		if err := node.Decode(&value); err != nil {
			return nil, fmt.Errorf("model: attribute %q (line %d): %w", name, node.Line, err)
		}
		return value, nil
	case yaml.SequenceNode:
		values := make([]any, 0, len(node.Content))
		for _, item := range node.Content {
			item = resolveAlias(item)
			if item.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("model: attribute %q (line %d): list items must be scalars", name, item.Line)
			}
			var value any
			if err := item.Decode(&value); err != nil {
				return nil, fmt.Errorf("model: attribute %q (line %d): %w", name, item.Line, err)
			}
			values = append(values, value)
		}
		return values, nil
	default:
		return nil, fmt.Errorf("model: attribute %q (line %d): unsupported value", name, node.Line)
	}
}

// Choices is the option list of a select field. Besides a list of
// {value, label} mappings it decodes a list of scalars (value doubles as the
// label) and a value-to-label mapping, in document order.
type Choices []form.Choice

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *Choices) UnmarshalYAML(node *yaml.Node) error {
	node = resolveAlias(node)
	if isNull(node) {
		*c = nil
		return nil
	}

	var out Choices
	switch node.Kind {
	case yaml.MappingNode:
		for idx := 0; idx+1 < len(node.Content); idx += 2 {
			out = append(out, newChoice(node.Content[idx].Value, node.Content[idx+1].Value))
		}
	case yaml.SequenceNode:
		for _, item := range node.Content {
			item = resolveAlias(item)
			switch item.Kind {
			case yaml.ScalarNode:
				out = append(out, newChoice(item.Value, ""))
			case yaml.MappingNode:
				var choice form.Choice
				if err := item.Decode(&choice); err != nil {
					return fmt.Errorf("model: choice (line %d): %w", item.Line, err)
				}
				out = append(out, newChoice(choice.Value, choice.Label))
			default:
				return fmt.Errorf("model: choice (line %d): unsupported value", item.Line)
			}
		}
	default:
		return fmt.Errorf("model: choices (line %d): expected a list or a mapping", node.Line)
	}
	*c = out
	return nil
}

// UnmarshalJSON accepts the same shapes as UnmarshalYAML.
func (c *Choices) UnmarshalJSON(data []byte) error {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return fmt.Errorf("model: decode choices: %w", err)
	}
	if len(node.Content) == 0 {
		*c = nil
		return nil
	}
	return c.UnmarshalYAML(node.Content[0])
}

func newChoice(value, label string) form.Choice {
	if strings.TrimSpace(label) == "" {
		label = value
	}
	return form.Choice{Value: value, Label: label}
}

func resolveAlias(node *yaml.Node) *yaml.Node {
	for node != nil && node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	return node
}

func isNull(node *yaml.Node) bool {
	return node == nil || (node.Kind == yaml.ScalarNode && node.ShortTag() == "!!null")
}
