package document

import (
	"bytes"
	"fmt"

	theme "github.com/goliatone/go-theme"
	"gopkg.in/yaml.v3"
)

type themeFile struct {
	Theme   string            `yaml:"theme"`
	Variant string            `yaml:"variant"`
	Tokens  map[string]string `yaml:"tokens"`
	CSSVars map[string]string `yaml:"cssVars"`
}

// ParseTheme decodes a renderer configuration from YAML or JSON:
//
//	theme: acme
//	variant: dark
//	tokens: {class.form: card, class.input: control}
//	cssVars: {--brand: "#123456"}
func ParseTheme(data []byte, source string) (*theme.RendererConfig, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("document: theme %s: %w", source, ErrEmptyDocument)
	}
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	var raw themeFile
	if err := decoder.Decode(&raw); err != nil {
		return nil, fmt.Errorf("document: parse theme %s: %w", source, err)
	}
	return &theme.RendererConfig{
		Theme:   raw.Theme,
		Variant: raw.Variant,
		Tokens:  raw.Tokens,
		CSSVars: raw.CSSVars,
	}, nil
}
