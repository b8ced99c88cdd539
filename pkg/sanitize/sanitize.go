package sanitize

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-marker/pkg/element"
)

// lazyPolicy builds its bluemonday policy on first use; policies are safe
// for concurrent use once built.
type lazyPolicy struct {
	once   sync.Once
	build  func() *bluemonday.Policy
	policy *bluemonday.Policy
}

func (l *lazyPolicy) get() *bluemonday.Policy {
	l.once.Do(func() {
		l.policy = l.build()
	})
	return l.policy
}

var (
	strictPolicy = &lazyPolicy{build: bluemonday.StrictPolicy}
	ugcPolicy    = &lazyPolicy{build: bluemonday.UGCPolicy}
	iconPolicy   = &lazyPolicy{build: buildIconPolicy}
)

// Formatter adapts a bluemonday policy to element.Formatter. A nil policy
// falls back to the strict policy.
func Formatter(policy *bluemonday.Policy) element.Formatter {
	if policy == nil {
		policy = strictSanitizer()
	}
	return func(value string) string {
		return policy.Sanitize(value)
	}
}

// Strict strips every tag and escapes what is left.
func Strict() element.Formatter {
	return Formatter(strictSanitizer())
}

// UGC keeps the formatting markup bluemonday allows for user generated
// content (links, emphasis, lists, tables) and removes the rest.
func UGC() element.Formatter {
	return Formatter(ugcSanitizer())
}

// Icon keeps inline SVG icon markup and drops anything scriptable.
func Icon() element.Formatter {
	return func(value string) string {
		return SanitizeIcon(value)
	}
}

// ByName resolves the formatter names accepted by documents and the CLI:
// "", "none" or "escape" (default escaping), "raw", "strict", "ugc" and
// "icon". Unknown names report false.
func ByName(name string) (element.Formatter, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "none", "escape":
		return element.EscapeHTML, true
	case "raw":
		return element.Raw, true
	case "strict":
		return Strict(), true
	case "ugc":
		return UGC(), true
	case "icon":
		return Icon(), true
	default:
		return nil, false
	}
}

// SanitizeIcon trims raw and filters it through the icon policy.
func SanitizeIcon(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	return strings.TrimSpace(iconSanitizer().Sanitize(trimmed))
}

func strictSanitizer() *bluemonday.Policy { return strictPolicy.get() }

func ugcSanitizer() *bluemonday.Policy { return ugcPolicy.get() }

func iconSanitizer() *bluemonday.Policy { return iconPolicy.get() }

var shapeAttrs = []string{
	"d", "cx", "cy", "r", "x", "y", "x1", "y1", "x2", "y2", "points", "rx", "ry",
	"fill", "stroke", "stroke-width", "stroke-linecap", "stroke-linejoin", "class",
}

// iconAttrs lists the attributes kept per SVG element. Elements missing
// from the map (title, desc) keep their text only.
var iconAttrs = map[string][]string{
	"svg": {
		"xmlns", "viewBox", "width", "height", "fill", "stroke", "stroke-width",
		"stroke-linecap", "stroke-linejoin", "aria-hidden", "role", "focusable", "class",
	},
	"use":      {"href", "xlink:href", "clip-path"},
	"clipPath": {"id", "clipPathUnits"},
	"defs":     {"id"},
	"g":        {"id"},
	"path":     shapeAttrs,
	"circle":   shapeAttrs,
	"rect":     shapeAttrs,
	"line":     shapeAttrs,
	"polyline": shapeAttrs,
	"polygon":  shapeAttrs,
	"ellipse":  shapeAttrs,
}

func buildIconPolicy() *bluemonday.Policy {
	policy := bluemonday.StrictPolicy()
	policy.AllowElements("title", "desc")
	for el, attrs := range iconAttrs {
		policy.AllowElements(el)
		policy.AllowAttrs(attrs...).OnElements(el)
	}
	return policy
}
