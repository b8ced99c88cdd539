package element

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// Attr is a single attribute assignment. Value accepts strings, numbers,
// booleans, fmt.Stringer implementations and string lists; see SetAttribute
// for the normalisation rules.
type Attr struct {
	Name  string
	Value any
}

// A builds a named attribute.
func A(name string, value any) Attr {
	return Attr{Name: name, Value: value}
}

// Bool builds a boolean attribute rendered as its bare name (checked,
// disabled, required).
func Bool(name string) Attr {
	return Attr{Name: name, Value: true}
}

// Class builds a class attribute from a token list.
func Class(classes ...string) Attr {
	return Attr{Name: "class", Value: classes}
}

type attribute struct {
	value   string
	boolean bool
}

// Attributes is an insertion-ordered attribute collection. Assigning an
// existing name replaces its value in place; removing a name and setting it
// again appends it at the end. The zero value is ready to use.
type Attributes struct {
	names   []string
	entries map[string]attribute
}

// NewAttributes builds a collection from the supplied assignments, in order.
func NewAttributes(attrs ...Attr) *Attributes {
	out := &Attributes{}
	for _, attr := range attrs {
		out.Set(attr.Name, attr.Value)
	}
	return out
}

// Set upserts name. Lists are joined with single spaces. `true` yields a
// boolean attribute, as does a value equal to the name when name is an HTML
// boolean attribute (checked="checked"). nil, "", false or an empty list
// removes the attribute. "0" is a value and is kept.
func (a *Attributes) Set(name string, value any) {
	if a == nil || name == "" {
		return
	}
	entry, ok := normalize(name, value)
	if !ok {
		a.Remove(name)
		return
	}
	if a.entries == nil {
		a.entries = make(map[string]attribute)
	}
	if _, exists := a.entries[name]; !exists {
		a.names = append(a.names, name)
	}
	a.entries[name] = entry
}

// SetBool sets name as a boolean attribute.
func (a *Attributes) SetBool(name string) {
	a.Set(name, true)
}

// SetDefault assigns value only when name is not already present.
func (a *Attributes) SetDefault(name string, value any) {
	if a.Has(name) {
		return
	}
	a.Set(name, value)
}

// Get returns the stored value, or "" when name is absent. Boolean attributes
// report their own name.
func (a *Attributes) Get(name string) string {
	if a == nil {
		return ""
	}
	return a.entries[name].value
}

// Has reports whether name is present.
func (a *Attributes) Has(name string) bool {
	if a == nil {
		return false
	}
	_, ok := a.entries[name]
	return ok
}

// IsBool reports whether name is present as a boolean attribute.
func (a *Attributes) IsBool(name string) bool {
	if a == nil {
		return false
	}
	return a.entries[name].boolean
}

// Remove deletes name. Missing names are ignored.
func (a *Attributes) Remove(name string) {
	if a == nil {
		return
	}
	if _, ok := a.entries[name]; !ok {
		return
	}
	delete(a.entries, name)
	for idx, existing := range a.names {
		if existing == name {
			a.names = append(a.names[:idx], a.names[idx+1:]...)
			break
		}
	}
}

// Take returns the value stored under name and removes it, reporting whether
// it was present. Builders use it to consume control keys such as "label".
func (a *Attributes) Take(name string) (string, bool) {
	if !a.Has(name) {
		return "", false
	}
	value := a.Get(name)
	a.Remove(name)
	return value, true
}

// AppendTokens adds whitespace separated tokens to name, skipping tokens that
// are already present.
func (a *Attributes) AppendTokens(name string, tokens ...string) {
	if a == nil {
		return
	}
	current := strings.Fields(a.Get(name))
	if a.IsBool(name) {
		current = nil
	}
	seen := make(map[string]struct{}, len(current)+len(tokens))
	for _, token := range current {
		seen[token] = struct{}{}
	}
	for _, raw := range tokens {
		for _, token := range strings.Fields(raw) {
			if _, exists := seen[token]; exists {
				continue
			}
			seen[token] = struct{}{}
			current = append(current, token)
		}
	}
	a.Set(name, current)
}

// Len returns the number of attributes.
func (a *Attributes) Len() int {
	if a == nil {
		return 0
	}
	return len(a.names)
}

// Names returns the attribute names in rendering order.
func (a *Attributes) Names() []string {
	if a == nil || len(a.names) == 0 {
		return nil
	}
	return append([]string(nil), a.names...)
}

// Clone returns an independent copy.
func (a *Attributes) Clone() *Attributes {
	out := &Attributes{}
	if a == nil || len(a.names) == 0 {
		return out
	}
	out.names = append([]string(nil), a.names...)
	out.entries = make(map[string]attribute, len(a.entries))
	for name, entry := range a.entries {
		out.entries[name] = entry
	}
	return out
}

// Render formats the collection as it appears inside a start tag, without a
// leading space.
func (a *Attributes) Render(format Formatter) string {
	if a.Len() == 0 {
		return ""
	}
	format = resolveFormatter(format)

	var builder strings.Builder
	for _, name := range a.names {
		entry := a.entries[name]
		if !entry.boolean && entry.value == "" {
			continue
		}
		if builder.Len() > 0 {
			builder.WriteByte(' ')
		}
		builder.WriteString(name)
		if entry.boolean {
			continue
		}
		builder.WriteString(`="`)
		builder.WriteString(format(entry.value))
		builder.WriteByte('"')
	}
	return builder.String()
}

func normalize(name string, value any) (attribute, bool) {
	switch v := value.(type) {
	case nil:
		return attribute{}, false
	case bool:
		if !v {
			return attribute{}, false
		}
		return attribute{value: name, boolean: true}, true
	case string:
		return fromString(name, v)
	case []string:
		return fromString(name, joinTokens(v))
	case []any:
		parts := make([]string, 0, len(v))
		for _, item := range v {
			if text, ok := scalarString(item); ok {
				parts = append(parts, text)
			}
		}
		return fromString(name, joinTokens(parts))
	}

	rv := reflect.ValueOf(value)
	if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
		parts := make([]string, 0, rv.Len())
		for idx := 0; idx < rv.Len(); idx++ {
			if text, ok := scalarString(rv.Index(idx).Interface()); ok {
				parts = append(parts, text)
			}
		}
		return fromString(name, joinTokens(parts))
	}

	text, ok := scalarString(value)
	if !ok {
		return attribute{}, false
	}
	return fromString(name, text)
}

func fromString(name, value string) (attribute, bool) {
	if value == "" {
		return attribute{}, false
	}
	if value == name && IsBooleanAttribute(name) {
		return attribute{value: name, boolean: true}, true
	}
	return attribute{value: value}, true
}

func joinTokens(tokens []string) string {
	keep := make([]string, 0, len(tokens))
	for _, token := range tokens {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		keep = append(keep, token)
	}
	return strings.Join(keep, " ")
}

// scalarString converts a single value to text. Values without a sensible
// textual form (maps, structs, funcs, nil pointers, booleans) are rejected.
func scalarString(value any) (string, bool) {
	if rv := reflect.ValueOf(value); rv.Kind() == reflect.Pointer && rv.IsNil() {
		return "", false
	}
	switch v := value.(type) {
	case nil:
		return "", false
	case string:
		return v, true
	case fmt.Stringer:
		return v.String(), true
	case int:
		return strconv.Itoa(v), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32), true
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.String:
		return rv.String(), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(rv.Uint(), 10), true
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 64), true
	case reflect.Pointer:
		return scalarString(rv.Elem().Interface())
	default:
		return "", false
	}
}
