// Package marker renders HTML forms and markup from declarative documents.
// The element, form, markup and a11y packages under pkg/ can also be used on
// their own; this package wires the document loader to the renderer.
package marker

import (
	"context"
	"fmt"
	"io/fs"
	"os"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-marker/internal/prompt"
	"github.com/goliatone/go-marker/pkg/document"
	"github.com/goliatone/go-marker/pkg/element"
	"github.com/goliatone/go-marker/pkg/model"
	"github.com/goliatone/go-marker/pkg/widgets"
)

// Option aliases document.Option so callers only import the root package.
type Option = document.Option

// Form aliases model.Form.
type Form = model.Form

// Render produces the markup for an already loaded form.
func Render(f *Form, options ...Option) (string, error) {
	return document.Render(f, options...)
}

// RenderFile loads the YAML or JSON document at path and renders it.
func RenderFile(path string, options ...Option) (string, error) {
	f, err := document.LoadFile(path)
	if err != nil {
		return "", err
	}
	return document.Render(f, options...)
}

// RenderFS loads path from fsys and renders it.
func RenderFS(fsys fs.FS, path string, options ...Option) (string, error) {
	f, err := document.Load(fsys, path)
	if err != nil {
		return "", err
	}
	return document.Render(f, options...)
}

// RenderBytes parses data as a document and renders it. source names the
// document in error messages.
func RenderBytes(data []byte, source string, options ...Option) (string, error) {
	f, err := document.Parse(data, source)
	if err != nil {
		return "", err
	}
	return document.Render(f, options...)
}

// FillAndRender asks for every visible field value on the terminal, storing
// the answers in f, then renders it.
func FillAndRender(ctx context.Context, f *Form, options ...Option) (string, error) {
	return fillAndRender(ctx, prompt.NewSurveyDriver(os.Stderr), f, options...)
}

func fillAndRender(ctx context.Context, driver prompt.Driver, f *Form, options ...Option) (string, error) {
	if err := prompt.Fill(ctx, driver, f, nil); err != nil {
		return "", err
	}
	return document.Render(f, options...)
}

// LoadThemeFile reads a renderer configuration from a YAML or JSON file.
func LoadThemeFile(path string) (*theme.RendererConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("marker: read theme %s: %w", path, err)
	}
	return document.ParseTheme(data, path)
}

// WithStrict enables accessibility checks; see document.WithStrict.
func WithStrict() Option {
	return document.WithStrict()
}

// WithTheme applies a go-theme renderer configuration.
func WithTheme(cfg *theme.RendererConfig) Option {
	return document.WithTheme(cfg)
}

// WithFormatter sets the formatter used for descriptions and help text.
func WithFormatter(format element.Formatter) Option {
	return document.WithFormatter(format)
}

// WithRegistry renders fields through a custom widget registry.
func WithRegistry(reg *widgets.Registry) Option {
	return document.WithRegistry(reg)
}

// WithDecorators runs decorators on a copy of the form before rendering.
func WithDecorators(decorators ...model.Decorator) Option {
	return document.WithDecorators(decorators...)
}
