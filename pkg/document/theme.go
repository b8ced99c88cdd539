package document

import (
	"sort"
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-marker/pkg/element"
)

// ClassTokenPrefix marks the theme tokens that carry CSS classes. The rest of
// the key names the target: "form", "field", "submit" or a widget name such
// as "email" or "select"; "input" applies to every widget.
const ClassTokenPrefix = "class."

type classSet struct {
	form    []string
	field   []string
	submit  []string
	input   []string
	widgets map[string][]string
}

func (c classSet) widget(name string) []string {
	out := append([]string(nil), c.input...)
	return append(out, c.widgets[name]...)
}

// themeClasses reads the class tokens of cfg. Token values are
// space-separated class lists.
func themeClasses(cfg *theme.RendererConfig) classSet {
	set := classSet{widgets: make(map[string][]string)}
	if cfg == nil {
		return set
	}
	for key, value := range cfg.Tokens {
		if !strings.HasPrefix(key, ClassTokenPrefix) {
			continue
		}
		target := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(key, ClassTokenPrefix)))
		tokens := strings.Fields(value)
		if target == "" || len(tokens) == 0 {
			continue
		}
		switch target {
		case "form":
			set.form = tokens
		case "field":
			set.field = tokens
		case "submit":
			set.submit = tokens
		case "input":
			set.input = tokens
		default:
			set.widgets[target] = tokens
		}
	}
	return set
}

// applyThemeAttributes exposes the theme name and variant as data attributes
// and the CSS variables as an inline style, sorted by name. Attributes already
// present win.
func applyThemeAttributes(attrs *element.Attributes, cfg *theme.RendererConfig) {
	if cfg == nil {
		return
	}
	attrs.SetDefault("data-theme", cfg.Theme)
	attrs.SetDefault("data-theme-variant", cfg.Variant)
	if style := cssVarsStyle(cfg.CSSVars); style != "" {
		existing := strings.TrimSpace(attrs.Get("style"))
		if existing != "" && !strings.HasSuffix(existing, ";") {
			existing += ";"
		}
		attrs.Set("style", strings.TrimSpace(existing+" "+style))
	}
}

func cssVarsStyle(vars map[string]string) string {
	if len(vars) == 0 {
		return ""
	}
	keys := make([]string, 0, len(vars))
	for key := range vars {
		if strings.TrimSpace(key) == "" || strings.TrimSpace(vars[key]) == "" {
			continue
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		parts = append(parts, strings.TrimSpace(key)+": "+strings.TrimSpace(vars[key])+";")
	}
	return strings.Join(parts, " ")
}
