package testsupport

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-marker/pkg/document"
	"github.com/goliatone/go-marker/pkg/model"
)

// LoadForm reads a form document fixture. Testing helpers fail the test on
// error to keep contract tests concise.
func LoadForm(t *testing.T, path string) *model.Form {
	t.Helper()

	f, err := LoadFormFromPath(path)
	if err != nil {
		t.Fatalf("load form: %v", err)
	}
	return f
}

// LoadFormFromPath returns a form without requiring testing.T, allowing
// callers to wire fixtures in setup functions.
func LoadFormFromPath(path string) (*model.Form, error) {
	if path == "" {
		return nil, errors.New("testsupport: form path is required")
	}
	f, err := document.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("testsupport: load form: %w", err)
	}
	return f, nil
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// MustReadGoldenString reads a golden file and returns its content without
// the trailing newline editors add.
func MustReadGoldenString(t *testing.T, path string) string {
	t.Helper()
	return strings.TrimRight(string(MustReadGolden(t, path)), "\r\n")
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, append(bytes.TrimRight(data, "\r\n"), '\n'), 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}

// CaptureOutput runs a function that writes to an io.Writer and returns what
// it wrote.
func CaptureOutput(t *testing.T, write func(io.Writer) error) string {
	t.Helper()

	var buf bytes.Buffer
	if err := write(&buf); err != nil {
		t.Fatalf("write output: %v", err)
	}
	return buf.String()
}
