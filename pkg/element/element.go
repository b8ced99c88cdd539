package element

import "strings"

// Option configures an Element during construction.
type Option func(*Element)

// WithContent sets the text content. It is formatted (escaped by default) at
// render time and replaces any earlier content option.
func WithContent(text string) Option {
	return func(e *Element) {
		e.content = text
		e.trusted = false
	}
}

// WithMarkup sets content that is embedded verbatim, bypassing the formatter.
// Use it for already rendered or otherwise trusted markup.
func WithMarkup(markup string) Option {
	return func(e *Element) {
		e.content = markup
		e.trusted = true
	}
}

// WithChildren renders children in order and embeds the result as trusted
// markup. Nil children are skipped.
func WithChildren(children ...*Element) Option {
	return func(e *Element) {
		var builder strings.Builder
		for _, child := range children {
			if child == nil {
				continue
			}
			builder.WriteString(child.Render())
		}
		e.content = builder.String()
		e.trusted = true
	}
}

// WithAttrs applies attribute assignments in order.
func WithAttrs(attrs ...Attr) Option {
	return func(e *Element) {
		for _, attr := range attrs {
			e.attrs.Set(attr.Name, attr.Value)
		}
	}
}

// WithAttributes merges a copy of attrs, keeping its order. The caller's
// collection is never modified by the element.
func WithAttributes(attrs *Attributes) Option {
	return func(e *Element) {
		if attrs.Len() == 0 {
			return
		}
		for _, name := range attrs.names {
			entry := attrs.entries[name]
			if entry.boolean {
				e.attrs.SetBool(name)
				continue
			}
			e.attrs.Set(name, entry.value)
		}
	}
}

// WithFormatter overrides the value formatter. Nil restores the default HTML
// escaping.
func WithFormatter(format Formatter) Option {
	return func(e *Element) {
		e.format = resolveFormatter(format)
	}
}

// WithoutEscaping disables formatting of attribute values and text content.
func WithoutEscaping() Option {
	return WithFormatter(Raw)
}

// Element is a flat description of one HTML tag. Apart from the attribute
// mutators it is immutable once constructed.
type Element struct {
	tag     string
	content string
	trusted bool
	attrs   *Attributes
	format  Formatter
}

// New constructs an element. The tag is used verbatim; an empty or blank tag
// yields an *ArgumentError.
func New(tag string, options ...Option) (*Element, error) {
	if strings.TrimSpace(tag) == "" {
		return nil, &ArgumentError{Argument: "tag"}
	}
	el := &Element{
		tag:    tag,
		attrs:  &Attributes{},
		format: EscapeHTML,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(el)
	}
	return el, nil
}

// MustNew mirrors New but panics on error.
func MustNew(tag string, options ...Option) *Element {
	el, err := New(tag, options...)
	if err != nil {
		panic(err)
	}
	return el
}

// Tag returns the tag name.
func (e *Element) Tag() string {
	return e.tag
}

// Content returns the raw content as supplied, before formatting.
func (e *Element) Content() string {
	return e.content
}

// IsVoid reports whether the element renders self-closed.
func (e *Element) IsVoid() bool {
	return IsVoid(e.tag)
}

// Attributes returns a copy of the attribute collection.
func (e *Element) Attributes() *Attributes {
	return e.attrs.Clone()
}

// SetAttribute upserts an attribute following the Attributes.Set rules. An
// empty value removes the attribute.
func (e *Element) SetAttribute(name string, value any) {
	e.attrs.Set(name, value)
}

// SetBool sets a boolean attribute.
func (e *Element) SetBool(name string) {
	e.attrs.SetBool(name)
}

// GetAttribute returns the attribute value or "" when it is absent.
func (e *Element) GetAttribute(name string) string {
	return e.attrs.Get(name)
}

// HasAttribute reports whether the attribute is present.
func (e *Element) HasAttribute(name string) bool {
	return e.attrs.Has(name)
}

// RemoveAttribute deletes the attribute.
func (e *Element) RemoveAttribute(name string) {
	e.attrs.Remove(name)
}

// AddClass appends class tokens that are not present yet.
func (e *Element) AddClass(classes ...string) {
	e.attrs.AppendTokens("class", classes...)
}

// Render produces the markup. Void tags render `<tag attrs/>` and drop
// content; all other tags render `<tag attrs>content</tag>`.
func (e *Element) Render() string {
	attrs := e.attrs.Render(e.format)

	var builder strings.Builder
	builder.Grow(len(e.tag)*2 + len(attrs) + len(e.content) + 6)
	builder.WriteByte('<')
	builder.WriteString(e.tag)
	if attrs != "" {
		builder.WriteByte(' ')
		builder.WriteString(attrs)
	}

	if e.IsVoid() {
		builder.WriteString("/>")
		return builder.String()
	}

	builder.WriteByte('>')
	if e.content != "" {
		if e.trusted {
			builder.WriteString(e.content)
		} else {
			builder.WriteString(e.format(e.content))
		}
	}
	builder.WriteString("</")
	builder.WriteString(e.tag)
	builder.WriteByte('>')
	return builder.String()
}

// String implements fmt.Stringer.
func (e *Element) String() string {
	return e.Render()
}
