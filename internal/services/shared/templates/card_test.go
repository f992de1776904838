package templates

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/a-h/templ"
)

func render(t *testing.T, component templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	if err := component.Render(context.Background(), &buf); err != nil {
		t.Fatalf("render: %v", err)
	}
	return buf.String()
}

func withChildren(parent templ.Component, content templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return parent.Render(templ.WithChildren(ctx, content), w)
	})
}

func TestCardWrapsContentWithBaseClass(t *testing.T) {
	t.Parallel()

	got := render(t, withChildren(Card(""), templ.Raw("Hello")))
	want := `<div class="card bg-base-100 border border-base-300 shadow-sm">Hello</div>`
	if got != want {
		t.Fatalf("Card() = %q, want %q", got, want)
	}
}

func TestCardAppendsClassOverride(t *testing.T) {
	t.Parallel()

	got := render(t, withChildren(Card("mt-4"), templ.Raw("Hello")))
	want := `<div class="card bg-base-100 border border-base-300 shadow-sm mt-4">Hello</div>`
	if got != want {
		t.Fatalf("Card(mt-4) = %q, want %q", got, want)
	}
}

func TestCardClassContainsBaseAndOverride(t *testing.T) {
	t.Parallel()

	for _, override := range []string{"mt-4", "w-full lg:w-1/2", "hidden", "bg-primary text-primary-content"} {
		got := render(t, withChildren(Card(override), templ.Raw("x")))
		if !strings.Contains(got, `class="`+CardClass+" "+override+`"`) {
			t.Fatalf("Card(%q) = %q, want base class followed by override", override, got)
		}
	}
}

func TestCardNormalizesOverrideWhitespace(t *testing.T) {
	t.Parallel()

	got := render(t, withChildren(Card("  mt-4 \n  px-2 "), templ.Raw("x")))
	if !strings.Contains(got, `class="`+CardClass+` mt-4 px-2"`) {
		t.Fatalf("Card() = %q, want normalized override", got)
	}
	blank := render(t, withChildren(Card("   "), templ.Raw("x")))
	if !strings.Contains(blank, `class="`+CardClass+`"`) {
		t.Fatalf("Card(blank) = %q, want base class only", blank)
	}
}

func TestCardEscapesOverride(t *testing.T) {
	t.Parallel()

	got := render(t, withChildren(Card(`"><script>`), templ.Raw("x")))
	if strings.Contains(got, "<script>") {
		t.Fatalf("Card() = %q, expected override to be escaped", got)
	}
}

func TestCardPassesContentThroughUnmodified(t *testing.T) {
	t.Parallel()

	contents := []string{
		"",
		"Hello",
		`<span class="badge">5 km</span>`,
		"<ul><li>one</li><li>two</li></ul>",
	}
	for _, content := range contents {
		got := render(t, withChildren(Card(""), templ.Raw(content)))
		want := `<div class="` + CardClass + `">` + content + `</div>`
		if got != want {
			t.Fatalf("Card(%q) = %q, want %q", content, got, want)
		}
	}
}

func TestCardWithoutChildrenRendersEmptyContainer(t *testing.T) {
	t.Parallel()

	got := render(t, Card(""))
	want := `<div class="` + CardClass + `"></div>`
	if got != want {
		t.Fatalf("Card() = %q, want %q", got, want)
	}
}

func TestCardContentWrapsContentWithPadding(t *testing.T) {
	t.Parallel()

	got := render(t, withChildren(CardContent(), templ.Raw("<p>Hello</p>")))
	want := `<div class="card-body p-4"><p>Hello</p></div>`
	if got != want {
		t.Fatalf("CardContent() = %q, want %q", got, want)
	}
}

func TestCardNestsCardContent(t *testing.T) {
	t.Parallel()

	got := render(t, withChildren(Card("mt-4"), withChildren(CardContent(), templ.Raw("Hello"))))
	want := `<div class="` + CardClass + ` mt-4"><div class="` + CardContentClass + `">Hello</div></div>`
	if got != want {
		t.Fatalf("nested card = %q, want %q", got, want)
	}
}

func TestCardRenderingIsIdempotent(t *testing.T) {
	t.Parallel()

	component := withChildren(Card("mt-4"), withChildren(CardContent(), templ.Raw("Hello")))
	first := render(t, component)
	second := render(t, component)
	if first != second {
		t.Fatalf("renders differ: %q vs %q", first, second)
	}
}

func TestCardChildrenDoNotLeakIntoContent(t *testing.T) {
	t.Parallel()

	// Children of the outer card must not be re-rendered by a nested card.
	inner := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return Card("").Render(ctx, w)
	})
	got := render(t, withChildren(Card("outer"), inner))
	want := `<div class="` + CardClass + ` outer"><div class="` + CardClass + `"></div></div>`
	if got != want {
		t.Fatalf("nested card = %q, want %q", got, want)
	}
}

func TestCardPropagatesContentError(t *testing.T) {
	t.Parallel()

	want := errors.New("render failed")
	failing := templ.ComponentFunc(func(context.Context, io.Writer) error { return want })
	err := withChildren(Card(""), failing).Render(context.Background(), io.Discard)
	if !errors.Is(err, want) {
		t.Fatalf("Render() error = %v, want %v", err, want)
	}
}

func TestCardStopsOnCanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var buf bytes.Buffer
	if err := Card("").Render(ctx, &buf); !errors.Is(err, context.Canceled) {
		t.Fatalf("Render() error = %v, want context.Canceled", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("Render() wrote %q on canceled context", buf.String())
	}
}
