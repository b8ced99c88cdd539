package widgets

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-marker/pkg/a11y"
	"github.com/goliatone/go-marker/pkg/element"
	"github.com/goliatone/go-marker/pkg/form"
	"github.com/goliatone/go-marker/pkg/model"
)

func TestResolve_ExplicitWidgetWins(t *testing.T) {
	reg := NewRegistry()
	field := model.Field{
		Name:    "email",
		Widget:  " Custom-Email ",
		Choices: model.Choices{{Value: "a", Label: "A"}},
	}

	if got, ok := reg.Resolve(field); !ok || got != "custom-email" {
		t.Fatalf("expected explicit widget to win, got %q (ok=%v)", got, ok)
	}
}

func TestResolve_Builtins(t *testing.T) {
	reg := NewRegistry()

	cases := []struct {
		name   string
		field  model.Field
		expect string
	}{
		{
			name:   "attribute type",
			field:  model.Field{Name: "when", Attributes: model.Attributes{element.A("type", "Date")}},
			expect: WidgetDate,
		},
		{
			name:   "datetime-local attribute type",
			field:  model.Field{Name: "at", Attributes: model.Attributes{element.A("type", "datetime-local")}},
			expect: WidgetDateTime,
		},
		{
			name:   "choices",
			field:  model.Field{Name: "plan", Choices: model.Choices{{Value: "1", Label: "One"}}},
			expect: WidgetSelect,
		},
		{
			name:   "boolean value",
			field:  model.Field{Name: "news", Value: false},
			expect: WidgetCheckButton,
		},
		{
			name:   "password name",
			field:  model.Field{Name: "new_password"},
			expect: WidgetPassword,
		},
		{
			name:   "email name",
			field:  model.Field{Name: "owner.email"},
			expect: WidgetEmail,
		},
		{
			name:   "rows attribute",
			field:  model.Field{Name: "bio", Attributes: model.Attributes{element.A("rows", 4)}},
			expect: WidgetTextarea,
		},
		{
			name:   "numeric value",
			field:  model.Field{Name: "age", Value: 3},
			expect: WidgetNumber,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := reg.Resolve(tc.field)
			if !ok {
				t.Fatalf("expected widget %q, got none", tc.expect)
			}
			if got != tc.expect {
				t.Fatalf("expected %q, got %q", tc.expect, got)
			}
		})
	}

	if got, ok := reg.Resolve(model.Field{Name: "q"}); ok {
		t.Fatalf("expected no match for plain field, got %q", got)
	}
}

func TestResolve_CustomMatcherPriority(t *testing.T) {
	reg := NewRegistry()
	reg.Register("rich", 95, func(field model.Field) bool {
		return strings.HasSuffix(field.Name, "_html")
	})
	reg.Register("ignored", 95, func(model.Field) bool { return true })

	if got, _ := reg.Resolve(model.Field{Name: "body_html", Choices: model.Choices{{Value: "x"}}}); got != "rich" {
		t.Fatalf("expected higher priority matcher to win, got %q", got)
	}
	if got, _ := reg.Resolve(model.Field{Name: "plain", Attributes: model.Attributes{element.A("type", "file")}}); got != WidgetFile {
		t.Fatalf("expected attribute type to outrank custom matchers, got %q", got)
	}
}

func TestRegisterBuilder(t *testing.T) {
	reg := NewRegistry()
	if err := reg.RegisterBuilder(WidgetText, typedBuilder(WidgetText)); err == nil {
		t.Fatalf("expected duplicate registration to fail")
	}
	if err := reg.RegisterBuilder(" ", typedBuilder(WidgetText)); err == nil {
		t.Fatalf("expected blank name to fail")
	}
	if err := reg.RegisterBuilder("x", nil); err == nil {
		t.Fatalf("expected nil builder to fail")
	}

	reg.ReplaceBuilder(WidgetText, func(field model.Field, _ form.Errors) (string, error) {
		return "<custom " + field.Name + ">", nil
	})
	got, err := reg.Render(model.Field{Name: "q"}, nil)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "<custom q>" {
		t.Fatalf("expected replaced builder output, got %q", got)
	}

	want := []string{
		WidgetCheckbox, WidgetCheckButton, WidgetDate, WidgetDateTime, WidgetEmail, WidgetFile, WidgetHidden,
		WidgetNumber, WidgetPassword, WidgetRadio, WidgetSelect, WidgetText, WidgetTextarea, WidgetTime,
	}
	if diff := cmp.Diff(want, reg.Widgets()); diff != "" {
		t.Fatalf("widgets mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(want, NewStrictRegistry().Widgets()); diff != "" {
		t.Fatalf("strict widgets mismatch (-want +got):\n%s", diff)
	}
}

func TestDecorate(t *testing.T) {
	reg := NewRegistry()
	f := &model.Form{Fields: []model.Field{
		{Name: "email"},
		{Name: "q"},
		{Name: "plan", Widget: "radio", Choices: model.Choices{{Value: "1"}}},
	}}
	if err := reg.Decorate(f); err != nil {
		t.Fatalf("decorate: %v", err)
	}

	got := []string{f.Fields[0].Widget, f.Fields[1].Widget, f.Fields[2].Widget}
	if diff := cmp.Diff([]string{WidgetEmail, "", WidgetRadio}, got); diff != "" {
		t.Fatalf("widgets mismatch (-want +got):\n%s", diff)
	}
}

func TestRender_Permissive(t *testing.T) {
	reg := NewRegistry()

	cases := []struct {
		name  string
		field model.Field
		errs  form.Errors
		want  string
	}{
		{
			name:  "email with label",
			field: model.Field{Name: "email", Label: "Email", Value: "a@b.c"},
			want:  `<label for="email">Email</label><input type="email" name="email" value="a@b.c" id="email"/>`,
		},
		{
			name:  "email with errors",
			field: model.Field{Name: "email", Label: "Email", Value: "x"},
			errs:  form.Errors{"email": {"taken"}},
			want:  `<label for="email" class="error">Email</label><input type="email" name="email" value="x" id="email" class="error"/>`,
		},
		{
			name: "select",
			field: model.Field{
				Name:    "plan",
				Value:   2,
				Choices: model.Choices{{Value: "1", Label: "Free"}, {Value: "2", Label: "Pro"}},
			},
			want: `<select name="plan" id="plan"><option value="1">Free</option><option value="2" selected>Pro</option></select>`,
		},
		{
			name:  "checkbutton",
			field: model.Field{Name: "news", Label: "News", Value: true},
			want:  `<div class="checkbutton"><label for="news"><input id="news" type="checkbox" checked name="news" value="true"/><span>News</span></label></div>`,
		},
		{
			name:  "textarea",
			field: model.Field{Name: "bio", Attributes: model.Attributes{element.A("rows", 3)}},
			want:  `<textarea rows="3" name="bio" id="bio"></textarea>`,
		},
		{
			name:  "attribute type",
			field: model.Field{Name: "when", Attributes: model.Attributes{element.A("type", "date")}},
			want:  `<input type="date" name="when" id="when"/>`,
		},
		{
			name:  "default widget",
			field: model.Field{Name: "q"},
			want:  `<input type="text" name="q" id="q"/>`,
		},
		{
			name:  "hidden drops label",
			field: model.Field{Name: "token", Widget: "hidden", Label: "Token", Value: "abc"},
			want:  `<input type="hidden" name="token" value="abc" id="token"/>`,
		},
		{
			name:  "password never echoes",
			field: model.Field{Name: "password", Value: "secret"},
			want:  `<input type="password" name="password" id="password"/>`,
		},
		{
			name:  "number",
			field: model.Field{Name: "age", Value: 3},
			want:  `<input type="number" name="age" value="3" id="age"/>`,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := reg.Render(tc.field, tc.errs)
			if err != nil {
				t.Fatalf("render: %v", err)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("markup mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRender_UnknownWidget(t *testing.T) {
	_, err := NewRegistry().Render(model.Field{Name: "x", Widget: "fancy"}, nil)
	if err == nil || !strings.Contains(err.Error(), `widgets: field "x": widgets: builder "fancy" not found`) {
		t.Fatalf("expected missing builder error, got %v", err)
	}
	if _, err := NewRegistry().Render(model.Field{}, nil); err == nil {
		t.Fatalf("expected nameless field to fail")
	}
	var reg *Registry
	if _, err := reg.Render(model.Field{Name: "x"}, nil); err == nil {
		t.Fatalf("expected nil registry to fail")
	}
}

func TestRender_Strict(t *testing.T) {
	reg := NewStrictRegistry()

	cases := []struct {
		name  string
		field model.Field
		errs  form.Errors
		want  string
	}{
		{
			name:  "labelled email",
			field: model.Field{Name: "email", Label: "Email", Value: "a@b.c"},
			want:  `<label for="email">Email</label><input value="a@b.c" name="email" type="email" id="email"/>`,
		},
		{
			name:  "aria label instead of caption",
			field: model.Field{Name: "q", Attributes: model.Attributes{element.A("aria-label", "Search")}},
			want:  `<input aria-label="Search" name="q" type="text" id="q"/>`,
		},
		{
			name: "invalid select",
			field: model.Field{
				Name:    "plan",
				Label:   "Plan",
				Choices: model.Choices{{Value: "1", Label: "Free"}},
			},
			errs: form.Errors{"plan": {"pick one"}},
			want: `<label class="error" for="plan">Plan</label><select class="error" name="plan" id="plan"><option value="1">Free</option></select>`,
		},
		{
			name:  "hidden needs no label",
			field: model.Field{Name: "t", Widget: "hidden", Value: "v"},
			want:  `<input value="v" name="t" type="hidden" id="t"/>`,
		},
		{
			name:  "textarea keeps flags",
			field: model.Field{Name: "bio", Widget: "textarea", Label: "Bio", Attributes: model.Attributes{element.A("required", true)}},
			want:  `<label for="bio">Bio</label><textarea required name="bio" id="bio"></textarea>`,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := reg.Render(tc.field, tc.errs)
			if err != nil {
				t.Fatalf("render: %v", err)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("markup mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRender_StrictRejectsUnlabelledControls(t *testing.T) {
	_, err := NewStrictRegistry().Render(model.Field{Name: "q"}, nil)
	if !errors.Is(err, a11y.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	var validation *a11y.ValidationError
	if !errors.As(err, &validation) || validation.Element != "input" || validation.Attribute != "label" {
		t.Fatalf("expected input/label validation error, got %v", err)
	}
	if !strings.HasPrefix(err.Error(), `widgets: field "q": `) {
		t.Fatalf("expected field name in error, got %q", err.Error())
	}
}
