package testsupport_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/goliatone/go-marker/pkg/testsupport"
)

func TestLoadFormFromPath(t *testing.T) {
	if _, err := testsupport.LoadFormFromPath(""); err == nil {
		t.Fatalf("expected empty path to fail")
	}

	path := filepath.Join(t.TempDir(), "form.yaml")
	if err := os.WriteFile(path, []byte("form: {id: probe}\nfields: [{name: q}]\n"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	f, err := testsupport.LoadFormFromPath(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if f.ID != "probe" || len(f.Fields) != 1 {
		t.Fatalf("unexpected form %+v", f)
	}
}

func TestGoldenHelpers(t *testing.T) {
	t.Setenv("UPDATE_GOLDENS", "1")
	path := filepath.Join(t.TempDir(), "nested", "out.golden.html")

	if !testsupport.WriteMaybeGolden(t, path, []byte("<p></p>\n\n")) {
		t.Fatalf("expected golden to be written")
	}
	if got := string(testsupport.MustReadGolden(t, path)); got != "<p></p>\n" {
		t.Fatalf("expected single trailing newline, got %q", got)
	}
	if got := testsupport.MustReadGoldenString(t, path); got != "<p></p>" {
		t.Fatalf("expected trimmed golden, got %q", got)
	}
	if diff := testsupport.CompareGolden("<p></p>", "<p></p>"); diff != "" {
		t.Fatalf("unexpected diff: %s", diff)
	}
}
