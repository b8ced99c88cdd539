package document

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-marker/pkg/model"
)

// ParseTOML decodes a TOML document with the same layout as Parse:
//
//	[form]
//	id = "signup"
//
//	[[fields]]
//	name = "email"
//	attributes = { required = true }
//
// TOML tables carry no key order, so attribute mappings are rendered in key
// order.
func ParseTOML(data []byte, source string) (*model.Form, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("document: %s: %w", source, ErrEmptyDocument)
	}
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("document: parse %s: %w", source, err)
	}
	converted, err := yaml.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("document: convert %s: %w", source, err)
	}
	return Parse(converted, source)
}

// parseFile picks the decoder from the file extension.
func parseFile(data []byte, path string) (*model.Form, error) {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return ParseTOML(data, path)
	}
	return Parse(data, path)
}
