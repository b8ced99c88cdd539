// Package model defines the declarative form description rendered by package
// document: a form header, its ordered fields, an optional submit button and
// the validation errors to display. Attribute mappings decoded from YAML or
// JSON keep their document order so the rendered markup is deterministic.
// Field.Widget names the builder to use; when it is empty a widgets.Registry
// resolves one from the field shape.
package model
