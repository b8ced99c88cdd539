package document_test

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"
	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-marker/pkg/a11y"
	"github.com/goliatone/go-marker/pkg/document"
	"github.com/goliatone/go-marker/pkg/form"
	"github.com/goliatone/go-marker/pkg/model"
	"github.com/goliatone/go-marker/pkg/sanitize"
	"github.com/goliatone/go-marker/pkg/testsupport"
)

func TestRender_SignupGolden(t *testing.T) {
	f := testsupport.LoadForm(t, filepath.Join("testdata", "signup.yaml"))

	output, err := document.Render(f)
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	goldenPath := filepath.Join("testdata", "signup.golden.html")
	if testsupport.WriteMaybeGolden(t, goldenPath, []byte(output)) {
		return
	}

	want := testsupport.MustReadGoldenString(t, goldenPath)
	if diff := testsupport.CompareGolden(want, output); diff != "" {
		t.Fatalf("signup output mismatch (-want +got):\n%s", diff)
	}
}

func TestRender_DoesNotMutateForm(t *testing.T) {
	f := testsupport.LoadForm(t, filepath.Join("testdata", "signup.yaml"))
	before := f.Fields[1]

	if _, err := document.Render(f, document.WithTheme(&theme.RendererConfig{
		Tokens: map[string]string{"class.input": "control"},
	})); err != nil {
		t.Fatalf("render: %v", err)
	}
	if diff := cmp.Diff(before, f.Fields[1]); diff != "" {
		t.Fatalf("field changed (-want +got):\n%s", diff)
	}
	if f.Fields[1].Widget != "" {
		t.Fatalf("expected caller form to keep an empty widget, got %q", f.Fields[1].Widget)
	}
}

func TestRender_Theme(t *testing.T) {
	f := &model.Form{
		ID:     "t",
		Fields: []model.Field{{Name: "q", Label: "Q"}},
		Submit: &model.Submit{ID: "go", Label: "Go"},
	}
	cfg := &theme.RendererConfig{
		Theme:   "acme",
		Variant: "dark",
		Tokens: map[string]string{
			"brand":        "#123456",
			"class.form":   "card",
			"class.field":  "row",
			"class.input":  "input",
			"class.text":   "input-text",
			"class.submit": "btn btn-primary",
		},
		CSSVars: map[string]string{
			"--gap":   "4px",
			"--brand": "#123456",
		},
	}

	got, err := document.Render(f, document.WithTheme(cfg))
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	want := `<form id="t" class="card" data-theme="acme" data-theme-variant="dark" style="--brand: #123456; --gap: 4px;">` +
		`<div class="field row"><label for="q">Q</label><input class="input input-text" type="text" name="q" id="q"/></div>` +
		`<button class="btn btn-primary" type="submit" id="go">Go</button></form>`
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("themed output mismatch (-want +got):\n%s", diff)
	}
}

func TestRender_FormatterAppliesToFreeText(t *testing.T) {
	f := &model.Form{
		ID:          "f",
		Description: `Read <a href="/terms" onclick="x()">the terms</a>`,
		Fields:      []model.Field{{Name: "bio", Widget: "textarea", Help: "Use <b>bold</b><script>x()</script>"}},
	}

	got, err := document.Render(f, document.WithFormatter(sanitize.UGC()))
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(got, `<p class="help">Use <b>bold</b></p>`) {
		t.Fatalf("expected sanitised help markup, got %q", got)
	}
	if strings.Contains(got, "onclick") || strings.Contains(got, "<script>") {
		t.Fatalf("expected unsafe markup to be stripped, got %q", got)
	}

	escaped, err := document.Render(f)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(escaped, `Use &lt;b&gt;bold&lt;/b&gt;`) {
		t.Fatalf("expected escaped help by default, got %q", escaped)
	}
}

func TestRender_Strict(t *testing.T) {
	f := &model.Form{
		ID:     "s",
		Fields: []model.Field{{Name: "email", Label: "Email"}},
		Submit: &model.Submit{ID: "go", Label: "Send"},
	}

	got, err := document.Render(f, document.WithStrict())
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	want := `<form id="s"><div class="field"><label for="email">Email</label><input name="email" type="email" id="email"/></div>` +
		`<button type="submit" id="go">Send</button></form>`
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("strict output mismatch (-want +got):\n%s", diff)
	}
}

func TestRender_StrictFailures(t *testing.T) {
	cases := []struct {
		name      string
		form      *model.Form
		element   string
		attribute string
	}{
		{
			name:      "unlabelled field",
			form:      &model.Form{ID: "s", Fields: []model.Field{{Name: "q"}}},
			element:   "input",
			attribute: "label",
		},
		{
			name:      "blank submit caption",
			form:      &model.Form{ID: "s", Submit: &model.Submit{ID: "go"}},
			element:   "button",
			attribute: a11y.ContentRequirement,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := document.Render(tc.form, document.WithStrict())
			var validation *a11y.ValidationError
			if !errors.As(err, &validation) {
				t.Fatalf("expected validation error, got %v", err)
			}
			if validation.Element != tc.element || validation.Attribute != tc.attribute {
				t.Fatalf("expected %s/%s, got %s/%s", tc.element, tc.attribute, validation.Element, validation.Attribute)
			}
			if !strings.HasPrefix(err.Error(), `document: render "s": `) {
				t.Fatalf("expected document prefix, got %q", err.Error())
			}
		})
	}
}

func TestRender_Decorators(t *testing.T) {
	f := &model.Form{ID: "d", Fields: []model.Field{{Name: "q"}}}
	upper := model.DecoratorFunc(func(f *model.Form) error {
		for idx := range f.Fields {
			f.Fields[idx].Label = strings.ToUpper(f.Fields[idx].Name)
		}
		return nil
	})

	got, err := document.Render(f, document.WithDecorators(upper))
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(got, `<label for="q">Q</label>`) {
		t.Fatalf("expected decorated label, got %q", got)
	}

	failing := model.DecoratorFunc(func(*model.Form) error { return errors.New("boom") })
	if _, err := document.Render(f, document.WithDecorators(failing)); err == nil || !strings.Contains(err.Error(), "boom") {
		t.Fatalf("expected decorator error, got %v", err)
	}
	if _, err := document.Render(nil); err == nil {
		t.Fatalf("expected nil form to fail")
	}
}

func TestParse_JSON(t *testing.T) {
	f := testsupport.LoadForm(t, filepath.Join("testdata", "contact.json"))

	if f.Method != "get" || f.Action != "/contact" {
		t.Fatalf("unexpected header %+v", f)
	}
	want := model.Choices{{Value: "sales", Label: "Sales"}, {Value: "support", Label: "Support"}}
	if diff := cmp.Diff(want, f.Fields[0].Choices); diff != "" {
		t.Fatalf("choices mismatch (-want +got):\n%s", diff)
	}

	got, err := document.Render(f)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(got, `<option value="support" selected>Support</option>`) {
		t.Fatalf("expected selected option, got %q", got)
	}
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name   string
		source string
		want   string
	}{
		{name: "empty", source: "  \n", want: "empty document"},
		{name: "unknown key", source: "form: {id: x}\nfieldz: []", want: "field fieldz not found"},
		{name: "nameless field", source: "fields: [{label: A}]", want: "field at index 0 has no name"},
		{name: "duplicate field", source: "fields: [{name: a}, {name: a}]", want: `duplicate field "a"`},
		{name: "bad method", source: "form: {method: put}", want: `unsupported form method "put"`},
		{name: "nested attribute", source: "fields: [{name: a, attributes: {data: {x: 1}}}]", want: `attribute "data"`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := document.Parse([]byte(tc.source), "inline")
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("expected error containing %q, got %v", tc.want, err)
			}
		})
	}

	_, err := document.Parse(nil, "inline")
	if !errors.Is(err, document.ErrEmptyDocument) {
		t.Fatalf("expected ErrEmptyDocument, got %v", err)
	}
}

func TestLoadFS(t *testing.T) {
	fsys := fstest.MapFS{
		"forms/a.yaml":   {Data: []byte("form: {id: alpha}")},
		"forms/b.json":   {Data: []byte(`{"form": {"id": "beta"}}`)},
		"forms/notes.md": {Data: []byte("ignored")},
	}

	store, err := document.LoadFS(fsys)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if diff := cmp.Diff([]string{"alpha", "beta"}, store.IDs()); diff != "" {
		t.Fatalf("ids mismatch (-want +got):\n%s", diff)
	}
	if _, ok := store.Form("beta"); !ok || store.Source("beta") != "forms/b.json" {
		t.Fatalf("expected beta from forms/b.json, got %q", store.Source("beta"))
	}

	fsys["forms/c.yml"] = &fstest.MapFile{Data: []byte("form: {id: alpha}")}
	if _, err := document.LoadFS(fsys); err == nil || !strings.Contains(err.Error(), `duplicate form "alpha"`) {
		t.Fatalf("expected duplicate error, got %v", err)
	}

	fsys["forms/c.yml"] = &fstest.MapFile{Data: []byte("fields: []")}
	if _, err := document.LoadFS(fsys); err == nil || !strings.Contains(err.Error(), "defines no form id") {
		t.Fatalf("expected missing id error, got %v", err)
	}

	empty, err := document.LoadFS(nil)
	if err != nil || !empty.Empty() {
		t.Fatalf("expected empty store, got %v %v", empty, err)
	}
}

func TestLoad(t *testing.T) {
	fsys := fstest.MapFS{"f.yaml": {Data: []byte("form: {id: x}\nerrors: {q: [bad]}\nfields: [{name: q}]")}}
	f, err := document.Load(fsys, "f.yaml")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	errs, _ := f.FieldErrors()
	if diff := cmp.Diff(form.Errors{"q": {"bad"}}, errs); diff != "" {
		t.Fatalf("errors mismatch (-want +got):\n%s", diff)
	}
	if _, err := document.Load(fsys, "missing.yaml"); err == nil {
		t.Fatalf("expected missing file to fail")
	}
}

func TestParseTheme(t *testing.T) {
	cfg, err := document.ParseTheme([]byte("theme: acme\nvariant: dark\ntokens: {class.form: card}\ncssVars: {--brand: \"#123456\"}"), "inline")
	if err != nil {
		t.Fatalf("parse theme: %v", err)
	}
	if cfg.Theme != "acme" || cfg.Variant != "dark" {
		t.Fatalf("unexpected theme %q/%q", cfg.Theme, cfg.Variant)
	}

	got, err := document.Render(&model.Form{ID: "x"}, document.WithTheme(cfg))
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	want := `<form id="x" class="card" data-theme="acme" data-theme-variant="dark" style="--brand: #123456;"></form>`
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("themed form mismatch (-want +got):\n%s", diff)
	}

	if _, err := document.ParseTheme([]byte("colours: {}"), "inline"); err == nil {
		t.Fatalf("expected unknown key to fail")
	}
	if _, err := document.ParseTheme(nil, "inline"); !errors.Is(err, document.ErrEmptyDocument) {
		t.Fatalf("expected ErrEmptyDocument, got %v", err)
	}
}

const planTOML = `
[form]
id = "plan"
method = "POST"

[form.attributes]
novalidate = true
class = ["wide", "stacked"]

[[fields]]
name = "seats"
value = 3

[[fields]]
name = "tier"
value = "b"
choices = [{ value = "a", label = "Basic" }, { value = "b", label = "Business" }]
`

func TestParseTOML(t *testing.T) {
	f, err := document.ParseTOML([]byte(planTOML), "plan.toml")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if f.ID != "plan" || f.Method != "post" {
		t.Fatalf("unexpected header %+v", f)
	}

	got, err := document.Render(f)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	for _, fragment := range []string{
		`<form class="wide stacked" novalidate id="plan" method="post">`,
		`<input type="number" name="seats" value="3" id="seats"/>`,
		`<option value="b" selected>Business</option>`,
	} {
		if !strings.Contains(got, fragment) {
			t.Fatalf("expected %q in %q", fragment, got)
		}
	}

	if _, err := document.ParseTOML([]byte("[form\nid ="), "bad.toml"); err == nil || !strings.Contains(err.Error(), "document: parse bad.toml") {
		t.Fatalf("expected parse error, got %v", err)
	}
	if _, err := document.ParseTOML([]byte("[form]\nid = \"x\"\n[extra]\n"), "extra.toml"); err == nil {
		t.Fatalf("expected unknown table to fail")
	}
}

func TestLoadFS_TOML(t *testing.T) {
	store, err := document.LoadFS(fstest.MapFS{"plan.toml": {Data: []byte(planTOML)}})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if diff := cmp.Diff([]string{"plan"}, store.IDs()); diff != "" {
		t.Fatalf("ids mismatch (-want +got):\n%s", diff)
	}
}

func TestRender_BracketedFieldErrors(t *testing.T) {
	f := &model.Form{
		ID:     "b",
		Fields: []model.Field{{Name: "tags[]"}, {Name: "user[email]"}},
		Errors: map[string][]string{"tags[]": {"bad"}, "user[email]": {"taken"}},
	}

	got, err := document.Render(f)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	want := `<form id="b">` +
		`<div class="field error"><input type="text" name="tags[]" id="tags[]" class="error"/><ul class="errors"><li>bad</li></ul></div>` +
		`<div class="field error"><input type="email" name="user[email]" id="user[email]" class="error"/><ul class="errors"><li>taken</li></ul></div>` +
		`</form>`
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("bracketed errors mismatch (-want +got):
%s", diff)
	}
}
