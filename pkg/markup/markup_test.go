package markup_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-marker/pkg/element"
	"github.com/goliatone/go-marker/pkg/markup"
)

func TestImage(t *testing.T) {
	if got := markup.Image("cat.jpg", "A cat", nil); got != `<img src="cat.jpg" title="A cat"/>` {
		t.Fatalf("unexpected image %q", got)
	}
	attrs := element.NewAttributes(element.A("title", "Explicit"), element.A("width", 100))
	if got := markup.Image("cat.jpg", "ignored", attrs); got != `<img title="Explicit" width="100" src="cat.jpg"/>` {
		t.Fatalf("expected attributes to win over arguments, got %q", got)
	}
}

func TestLink(t *testing.T) {
	got := markup.Link("/docs?a=1&b=2", "Docs & more", element.NewAttributes(element.A("class", "nav-link")))
	want := `<a class="nav-link" href="/docs?a=1&amp;b=2">Docs &amp; more</a>`
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("link mismatch (-want +got):\n%s", diff)
	}
}

func TestIcon(t *testing.T) {
	if got := markup.Icon("user", "Profile", nil); got != `<i title="Profile" class="fas fa-user"></i>` {
		t.Fatalf("unexpected icon %q", got)
	}
	attrs := element.NewAttributes(element.A("class", "fa-lg text-red"), element.A("title", "Mine"))
	if got := markup.Icon("trash", "Delete", attrs); got != `<i class="fas fa-trash fa-lg text-red" title="Mine"></i>` {
		t.Fatalf("unexpected icon with attributes %q", got)
	}
	if got := markup.Icon("cog", "", nil); got != `<i class="fas fa-cog"></i>` {
		t.Fatalf("expected empty title to be omitted, got %q", got)
	}
}

func TestCheckButton(t *testing.T) {
	got := markup.CheckButton("remember", "1", "Remember me", element.NewAttributes(element.A("is_checked", true)))
	want := `<div class="checkbutton"><label for="remember"><input id="remember" type="checkbox" checked name="remember" value="1"/><span>Remember me</span></label></div>`
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("checkbutton mismatch (-want +got):\n%s", diff)
	}

	radio := markup.CheckButton("plan", "pro", "Pro", element.NewAttributes(
		element.A("id", "plan-pro"),
		element.A("type", "radio"),
		element.A("is_checked", "no"),
	))
	wantRadio := `<div class="checkbutton"><label for="plan-pro"><input id="plan-pro" type="radio" name="plan" value="pro"/><span>Pro</span></label></div>`
	if diff := cmp.Diff(wantRadio, radio); diff != "" {
		t.Fatalf("radio mismatch (-want +got):\n%s", diff)
	}
}
