// Package form builds form controls on top of package element. Builders are
// pure functions: they copy the supplied attribute collection, fill in
// defaults (name, value, id, type) and return rendered markup.
//
// Two keys in an attribute collection are treated as instructions rather than
// attributes. "label" is consumed and rendered as a preceding <label for="id">
// element, and Submit reads "tag" to choose between a <button> and an
// <input type="submit">. Neither ever reaches the rendered control.
//
// Controls whose field name is present in the Errors map receive the
// ErrorClass class, as does their label.
package form
