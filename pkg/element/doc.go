// Package element renders single HTML elements from a tag name, optional
// content and an ordered attribute collection. Attribute values are
// normalised on assignment: lists collapse into space separated strings,
// `true` becomes a bare boolean attribute, as does checked="checked" style
// assignment on HTML boolean attributes, and empty values are dropped instead
// of rendering `name=""`.
//
// Void tags (img, input, br, ...) always render self-closed and ignore
// content. Every other tag renders an open/close pair, with an empty body when
// no content was supplied. Attribute values and text content pass through a
// Formatter, HTML escaping by default.
//
// Elements do not form a tree. Composite markup is built by rendering children
// first and embedding the result with WithChildren or WithMarkup.
package element
