package element

import "strings"

// voidElements cannot hold content and never get a closing tag.
var voidElements = map[string]struct{}{
	"area":   {},
	"base":   {},
	"br":     {},
	"col":    {},
	"embed":  {},
	"hr":     {},
	"img":    {},
	"input":  {},
	"link":   {},
	"meta":   {},
	"param":  {},
	"source": {},
	"track":  {},
	"wbr":    {},
}

// IsVoid reports whether tag belongs to the HTML void element set. The check
// is case-insensitive.
func IsVoid(tag string) bool {
	_, ok := voidElements[strings.ToLower(strings.TrimSpace(tag))]
	return ok
}

// booleanAttributes are the HTML attributes whose presence alone carries the
// meaning. Only these collapse to a bare name when assigned their own name
// as value; name="name" or id="id" keep the value.
var booleanAttributes = map[string]struct{}{
	"allowfullscreen": {},
	"async":           {},
	"autofocus":       {},
	"autoplay":        {},
	"checked":         {},
	"controls":        {},
	"default":         {},
	"defer":           {},
	"disabled":        {},
	"formnovalidate":  {},
	"hidden":          {},
	"inert":           {},
	"ismap":           {},
	"itemscope":       {},
	"loop":            {},
	"multiple":        {},
	"muted":           {},
	"nomodule":        {},
	"novalidate":      {},
	"open":            {},
	"playsinline":     {},
	"readonly":        {},
	"required":        {},
	"reversed":        {},
	"selected":        {},
}

// IsBooleanAttribute reports whether name is an HTML boolean attribute. The
// check is case-insensitive.
func IsBooleanAttribute(name string) bool {
	_, ok := booleanAttributes[strings.ToLower(strings.TrimSpace(name))]
	return ok
}

// ValidAttributeName reports whether name can appear in a start tag: it must
// be non-empty and hold no whitespace, control characters, quotes, '>', '/'
// or '='.
func ValidAttributeName(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		switch {
		case r <= 0x20, r >= 0x7f && r <= 0x9f:
			return false
		case r == '"', r == '\'', r == '>', r == '/', r == '=', r == '<':
			return false
		}
	}
	return true
}
