package form

import (
	"sort"
	"strconv"
	"strings"
)

// ErrorClass is appended to the class list of controls whose field has
// errors, and to their labels.
const ErrorClass = "error"

// Errors maps field names to validation messages. A field counts as invalid
// as soon as its name is present, even with no messages.
type Errors map[string][]string

// Has reports whether field is present in the map.
func (e Errors) Has(field string) bool {
	if e == nil {
		return false
	}
	_, ok := e[field]
	return ok
}

// Messages returns the normalised messages recorded for field.
func (e Errors) Messages(field string) []string {
	if e == nil {
		return nil
	}
	return normalizeMessages(e[field])
}

// Fields returns the sorted names of the invalid fields.
func (e Errors) Fields() []string {
	if len(e) == 0 {
		return nil
	}
	names := make([]string, 0, len(e))
	for name := range e {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Merge returns a new map holding the messages of e and other, trimmed and
// de-duplicated per field while preserving order.
func (e Errors) Merge(other Errors) Errors {
	if len(e) == 0 && len(other) == 0 {
		return nil
	}
	out := make(Errors, len(e)+len(other))
	for _, source := range []Errors{e, other} {
		for field, messages := range source {
			existing, seen := out[field]
			combined := normalizeMessages(append(append([]string(nil), existing...), messages...))
			if combined == nil && !seen {
				combined = []string{}
			}
			out[field] = combined
		}
	}
	return out
}

// MergeFormErrors concatenates form-level messages, trimming whitespace and
// dropping duplicates while preserving order.
func MergeFormErrors(existing []string, extras ...string) []string {
	combined := make([]string, 0, len(existing)+len(extras))
	combined = append(combined, existing...)
	combined = append(combined, extras...)
	return normalizeMessages(combined)
}

// MapErrors folds a server error payload onto the known field names. Keys may
// be dotted paths, JSON pointers or bracketed indexes ("/body/email",
// "$.data.tags[0]", "owner.email"); leading request wrappers and numeric
// segments are ignored. Keys that match no field, and form-level keys such as
// "non_field_errors", end up in the returned form-level slice. A key equal to
// a field name always maps to that field.
func MapErrors(fields []string, payload map[string][]string) (Errors, []string) {
	if len(payload) == 0 {
		return nil, nil
	}

	known := knownFields(fields)

	keys := make([]string, 0, len(payload))
	for key := range payload {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	mapped := make(Errors)
	var formLevel []string
	for _, key := range keys {
		messages := normalizeMessages(payload[key])
		if len(messages) == 0 {
			continue
		}
		field, ok := directField(key, known)
		if !ok {
			field, ok = matchField(key, known)
		}
		if !ok {
			formLevel = append(formLevel, messages...)
			continue
		}
		mapped[field] = append(mapped[field], messages...)
	}

	if len(mapped) == 0 {
		mapped = nil
	}
	return mapped, normalizeMessages(formLevel)
}

// FieldForKey reports the field an error payload key folds onto, following
// the MapErrors rules.
func FieldForKey(fields []string, key string) (string, bool) {
	known := knownFields(fields)
	if field, ok := directField(key, known); ok {
		return field, true
	}
	return matchField(key, known)
}

func knownFields(fields []string) map[string]struct{} {
	known := make(map[string]struct{}, len(fields))
	for _, field := range fields {
		if name := strings.TrimSpace(field); name != "" {
			known[name] = struct{}{}
		}
	}
	return known
}

// directField matches keys naming a field verbatim, including names with
// brackets such as "tags[]" that path parsing would split.
func directField(raw string, known map[string]struct{}) (string, bool) {
	name := strings.TrimSpace(raw)
	_, ok := known[name]
	return name, ok
}

func matchField(raw string, known map[string]struct{}) (string, bool) {
	trimmed := strings.TrimSpace(raw)
	if isFormLevelKey(trimmed) {
		return "", false
	}
	segments := parsePathSegments(trimmed)
	if len(segments) == 0 {
		return "", false
	}

	best := ""
	for _, variant := range [][]string{
		segments,
		dropWrapperSegments(segments),
		stripNumericSegments(segments),
		stripNumericSegments(dropWrapperSegments(segments)),
	} {
		if path := longestMatchingPath(variant, known); len(path) > len(best) {
			best = path
		}
	}
	return best, best != ""
}

func normalizeMessages(messages []string) []string {
	if len(messages) == 0 {
		return nil
	}

	out := make([]string, 0, len(messages))
	seen := make(map[string]struct{}, len(messages))
	for _, message := range messages {
		trimmed := strings.TrimSpace(message)
		if trimmed == "" {
			continue
		}
		if _, exists := seen[trimmed]; exists {
			continue
		}
		seen[trimmed] = struct{}{}
		out = append(out, trimmed)
	}

	if len(out) == 0 {
		return nil
	}
	return out
}

func parsePathSegments(path string) []string {
	clean := strings.TrimLeft(strings.TrimSpace(path), "#/.$")
	clean = strings.NewReplacer("[", ".", "]", "", "//", "/").Replace(clean)
	clean = strings.Trim(clean, "./")
	if clean == "" {
		return nil
	}

	parts := strings.FieldsFunc(clean, func(r rune) bool {
		return r == '.' || r == '/'
	})
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		segment := strings.TrimSpace(part)
		if segment == "" {
			continue
		}
		segment = strings.ReplaceAll(segment, "~1", "/")
		segment = strings.ReplaceAll(segment, "~0", "~")
		out = append(out, segment)
	}
	return out
}

var wrapperSegments = map[string]struct{}{
	"body":       {},
	"request":    {},
	"payload":    {},
	"data":       {},
	"attributes": {},
}

func dropWrapperSegments(segments []string) []string {
	out := segments
	for len(out) > 0 {
		if _, ok := wrapperSegments[strings.ToLower(out[0])]; !ok {
			break
		}
		out = out[1:]
	}
	return out
}

func stripNumericSegments(segments []string) []string {
	out := make([]string, 0, len(segments))
	for _, segment := range segments {
		if _, err := strconv.Atoi(segment); err == nil {
			continue
		}
		out = append(out, segment)
	}
	return out
}

func longestMatchingPath(segments []string, known map[string]struct{}) string {
	for end := len(segments); end > 0; end-- {
		candidate := strings.Join(segments[:end], ".")
		if _, ok := known[candidate]; ok {
			return candidate
		}
	}
	return ""
}

func isFormLevelKey(key string) bool {
	switch strings.ToLower(strings.TrimSpace(key)) {
	case "", ".", "/", "#", "$", "form", "base", "__all__", "non_field_errors", "non-field-errors":
		return true
	default:
		return false
	}
}
