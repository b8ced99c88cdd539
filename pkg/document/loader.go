package document

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-marker/pkg/model"
)

// ErrEmptyDocument is returned when a document holds no content.
var ErrEmptyDocument = errors.New("document: empty document")

type documentFile struct {
	Form       formFile            `json:"form" yaml:"form"`
	Fields     []model.Field       `json:"fields" yaml:"fields"`
	Submit     *model.Submit       `json:"submit" yaml:"submit"`
	Errors     map[string][]string `json:"errors" yaml:"errors"`
	FormErrors []string            `json:"formErrors" yaml:"formErrors"`
}

type formFile struct {
	ID          string           `json:"id" yaml:"id"`
	Action      string           `json:"action" yaml:"action"`
	Method      string           `json:"method" yaml:"method"`
	Legend      string           `json:"legend" yaml:"legend"`
	Description string           `json:"description" yaml:"description"`
	Attributes  model.Attributes `json:"attributes" yaml:"attributes"`
}

// Parse decodes a YAML or JSON document. source names the document in error
// messages. Unknown keys are rejected.
func Parse(data []byte, source string) (*model.Form, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("document: %s: %w", source, ErrEmptyDocument)
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	var doc documentFile
	if err := decoder.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("document: %s: %w", source, ErrEmptyDocument)
		}
		return nil, fmt.Errorf("document: parse %s: %w", source, err)
	}
	return normaliseDocument(doc, source)
}

// Load reads and parses path from fsys. Files ending in .toml go through
// ParseTOML.
func Load(fsys fs.FS, path string) (*model.Form, error) {
	if fsys == nil {
		return nil, fmt.Errorf("document: filesystem is required")
	}
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("document: read %s: %w", path, err)
	}
	return parseFile(data, path)
}

// LoadFile reads and parses a document from the local filesystem.
func LoadFile(path string) (*model.Form, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("document: path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("document: read %s: %w", path, err)
	}
	return parseFile(data, path)
}

// Store indexes the documents found in a filesystem by form id.
type Store struct {
	forms   map[string]*model.Form
	sources map[string]string
}

// LoadFS walks fsys and parses every .yaml, .yml, .json and .toml file. Each
// document needs a form id, unique across the filesystem. A nil fsys yields
// an empty store.
func LoadFS(fsys fs.FS) (*Store, error) {
	store := &Store{
		forms:   make(map[string]*model.Form),
		sources: make(map[string]string),
	}
	if fsys == nil {
		return store, nil
	}

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isDocumentFile(path) {
			return nil
		}

		f, err := Load(fsys, path)
		if err != nil {
			return err
		}
		id := strings.TrimSpace(f.ID)
		if id == "" {
			return fmt.Errorf("document: file %s defines no form id", path)
		}
		if previous, exists := store.sources[id]; exists {
			return fmt.Errorf("document: duplicate form %q (files %s and %s)", id, previous, path)
		}
		store.forms[id] = f
		store.sources[id] = path
		return nil
	})
	if err != nil {
		return nil, err
	}
	return store, nil
}

// Form returns the form registered under id.
func (s *Store) Form(id string) (*model.Form, bool) {
	if s == nil {
		return nil, false
	}
	f, ok := s.forms[id]
	return f, ok
}

// Source returns the file the form id was loaded from.
func (s *Store) Source(id string) string {
	if s == nil {
		return ""
	}
	return s.sources[id]
}

// IDs returns the sorted form ids.
func (s *Store) IDs() []string {
	if s == nil || len(s.forms) == 0 {
		return nil
	}
	ids := make([]string, 0, len(s.forms))
	for id := range s.forms {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Empty reports whether the store holds any forms.
func (s *Store) Empty() bool {
	return s == nil || len(s.forms) == 0
}

func normaliseDocument(doc documentFile, source string) (*model.Form, error) {
	method := strings.ToLower(strings.TrimSpace(doc.Form.Method))
	switch method {
	case "", "get", "post", "dialog":
	default:
		return nil, fmt.Errorf("document: %s: unsupported form method %q", source, doc.Form.Method)
	}

	out := &model.Form{
		ID:          strings.TrimSpace(doc.Form.ID),
		Action:      strings.TrimSpace(doc.Form.Action),
		Method:      method,
		Legend:      doc.Form.Legend,
		Description: doc.Form.Description,
		Attributes:  doc.Form.Attributes,
		Fields:      make([]model.Field, 0, len(doc.Fields)),
		Submit:      doc.Submit,
		Errors:      doc.Errors,
		FormErrors:  doc.FormErrors,
	}

	seen := make(map[string]struct{}, len(doc.Fields))
	for idx, field := range doc.Fields {
		field.Name = strings.TrimSpace(field.Name)
		if field.Name == "" {
			return nil, fmt.Errorf("document: %s: field at index %d has no name", source, idx)
		}
		if _, exists := seen[field.Name]; exists {
			return nil, fmt.Errorf("document: %s: duplicate field %q", source, field.Name)
		}
		seen[field.Name] = struct{}{}
		field.Widget = strings.ToLower(strings.TrimSpace(field.Widget))
		out.Fields = append(out.Fields, field)
	}
	return out, nil
}

func isDocumentFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml", ".toml":
		return true
	default:
		return false
	}
}
