package widgets

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/goliatone/go-marker/pkg/form"
	"github.com/goliatone/go-marker/pkg/model"
)

// Built-in widget identifiers.
const (
	WidgetText        = "text"
	WidgetHidden      = "hidden"
	WidgetPassword    = "password"
	WidgetEmail       = "email"
	WidgetNumber      = "number"
	WidgetDate        = "date"
	WidgetTime        = "time"
	WidgetDateTime    = "datetime"
	WidgetCheckbox    = "checkbox"
	WidgetRadio       = "radio"
	WidgetFile        = "file"
	WidgetTextarea    = "textarea"
	WidgetSelect      = "select"
	WidgetCheckButton = "checkbutton"
)

// DefaultWidget is used when neither the field nor any matcher names one.
const DefaultWidget = WidgetText

// Matcher decides whether a widget should handle the supplied field.
type Matcher func(field model.Field) bool

// Builder renders a field. errs holds the errors of the whole form.
type Builder func(field model.Field, errs form.Errors) (string, error)

type rule struct {
	name     string
	priority int
	match    Matcher
	order    int
}

// Registry selects a widget for each field, from the explicit Field.Widget or
// from registered matchers, and renders it with the builder registered under
// that name. Higher matcher priority wins; ties fall back to registration
// order.
type Registry struct {
	mu       sync.RWMutex
	rules    []rule
	builders map[string]Builder
}

// NewRegistry returns a registry with the built-in matchers and the
// permissive builders from packages form and markup.
func NewRegistry() *Registry {
	reg := newRegistry()
	reg.registerBuilders(permissiveBuilders())
	return reg
}

// NewStrictRegistry returns a registry with the built-in matchers and
// builders backed by package a11y. Rendering a field that fails an
// accessibility rule returns the *a11y.ValidationError.
func NewStrictRegistry() *Registry {
	reg := newRegistry()
	reg.registerBuilders(strictBuilders())
	return reg
}

func newRegistry() *Registry {
	reg := &Registry{builders: make(map[string]Builder)}
	reg.registerBuiltins()
	return reg
}

func (r *Registry) registerBuilders(builders map[string]Builder) {
	for name, builder := range builders {
		r.MustRegisterBuilder(name, builder)
	}
}

// Register adds a widget matcher with the provided name and priority. Higher
// priority values take precedence.
func (r *Registry) Register(name string, priority int, matcher Matcher) {
	if r == nil || matcher == nil {
		return
	}
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	r.rules = append(r.rules, rule{
		name:     trimmed,
		priority: priority,
		match:    matcher,
		order:    len(r.rules),
	})
}

// RegisterBuilder adds a builder for name. Duplicate names return an error.
func (r *Registry) RegisterBuilder(name string, builder Builder) error {
	if builder == nil {
		return fmt.Errorf("widgets: builder is required")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("widgets: builder name is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.builders == nil {
		r.builders = make(map[string]Builder)
	}
	if _, exists := r.builders[name]; exists {
		return fmt.Errorf("widgets: builder %q already registered", name)
	}
	r.builders[name] = builder
	return nil
}

// MustRegisterBuilder panics on registration failure. Useful for init-time
// wiring.
func (r *Registry) MustRegisterBuilder(name string, builder Builder) {
	if err := r.RegisterBuilder(name, builder); err != nil {
		panic(err)
	}
}

// ReplaceBuilder registers builder under name, overwriting any existing one.
func (r *Registry) ReplaceBuilder(name string, builder Builder) {
	name = strings.TrimSpace(name)
	if builder == nil || name == "" {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.builders == nil {
		r.builders = make(map[string]Builder)
	}
	r.builders[name] = builder
}

// Builder retrieves the builder registered under name.
func (r *Registry) Builder(name string) (Builder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	builder, ok := r.builders[name]
	if !ok {
		return nil, fmt.Errorf("widgets: builder %q not found", name)
	}
	return builder, nil
}

// Widgets returns the sorted builder names.
func (r *Registry) Widgets() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.builders))
	for name := range r.builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Resolve returns the widget name for a field. An explicit Field.Widget is
// honoured before matcher evaluation.
func (r *Registry) Resolve(field model.Field) (string, bool) {
	if explicit := explicitWidget(field); explicit != "" {
		return explicit, true
	}
	if r == nil {
		return "", false
	}
	r.mu.RLock()
	if len(r.rules) == 0 {
		r.mu.RUnlock()
		return "", false
	}
	rules := append([]rule(nil), r.rules...)
	r.mu.RUnlock()
	sort.SliceStable(rules, func(i, j int) bool {
		if rules[i].priority == rules[j].priority {
			return rules[i].order < rules[j].order
		}
		return rules[i].priority > rules[j].priority
	})
	for _, entry := range rules {
		if entry.match(field) {
			return entry.name, true
		}
	}
	return "", false
}

// Decorate implements model.Decorator, storing the resolved widget on every
// field that does not name one.
func (r *Registry) Decorate(f *model.Form) error {
	if r == nil || f == nil {
		return nil
	}
	for idx := range f.Fields {
		if f.Fields[idx].Widget != "" {
			continue
		}
		if widget, ok := r.Resolve(f.Fields[idx]); ok {
			f.Fields[idx].Widget = widget
		}
	}
	return nil
}

// Render resolves the widget of field and runs its builder. Failures are
// wrapped with the field name.
func (r *Registry) Render(field model.Field, errs form.Errors) (string, error) {
	if r == nil {
		return "", fmt.Errorf("widgets: registry is required")
	}
	if strings.TrimSpace(field.Name) == "" {
		return "", fmt.Errorf("widgets: field name is required")
	}
	widget, ok := r.Resolve(field)
	if !ok {
		widget = DefaultWidget
	}
	builder, err := r.Builder(widget)
	if err != nil {
		return "", fmt.Errorf("widgets: field %q: %w", field.Name, err)
	}
	out, err := builder(field, errs)
	if err != nil {
		return "", fmt.Errorf("widgets: field %q: %w", field.Name, err)
	}
	return out, nil
}

func explicitWidget(field model.Field) string {
	return strings.ToLower(strings.TrimSpace(field.Widget))
}

// inputKinds maps an attribute type onto the widget rendering it.
var inputKinds = map[string]string{
	"text":           WidgetText,
	"hidden":         WidgetHidden,
	"password":       WidgetPassword,
	"email":          WidgetEmail,
	"number":         WidgetNumber,
	"date":           WidgetDate,
	"time":           WidgetTime,
	"datetime":       WidgetDateTime,
	"datetime-local": WidgetDateTime,
	"checkbox":       WidgetCheckbox,
	"radio":          WidgetRadio,
	"file":           WidgetFile,
}

func (r *Registry) registerBuiltins() {
	for _, kind := range []string{
		WidgetText, WidgetHidden, WidgetPassword, WidgetEmail, WidgetNumber, WidgetDate,
		WidgetTime, WidgetDateTime, WidgetCheckbox, WidgetRadio, WidgetFile,
	} {
		r.Register(kind, 100, func(field model.Field) bool {
			return inputKinds[attributeType(field)] == kind
		})
	}

	r.Register(WidgetSelect, 90, func(field model.Field) bool {
		return len(field.Choices) > 0
	})

	r.Register(WidgetCheckButton, 80, func(field model.Field) bool {
		_, ok := field.Value.(bool)
		return ok
	})

	r.Register(WidgetPassword, 70, func(field model.Field) bool {
		return nameContains(field, "password")
	})

	r.Register(WidgetEmail, 60, func(field model.Field) bool {
		return nameContains(field, "email")
	})

	r.Register(WidgetTextarea, 50, func(field model.Field) bool {
		_, rows := field.Attributes.Get("rows")
		_, cols := field.Attributes.Get("cols")
		return rows || cols
	})

	r.Register(WidgetNumber, 40, func(field model.Field) bool {
		switch field.Value.(type) {
		case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
			return true
		default:
			return false
		}
	})
}

func attributeType(field model.Field) string {
	value, ok := field.Attributes.Get("type")
	if !ok {
		return ""
	}
	text, _ := value.(string)
	return strings.ToLower(strings.TrimSpace(text))
}

func nameContains(field model.Field, token string) bool {
	return strings.Contains(strings.ToLower(field.Name), token)
}
