package views

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/a-h/templ"

	"github.com/eringen/folio"
	"github.com/eringen/folio/content"
	"github.com/eringen/folio/listing"
)

func render(t *testing.T, c templ.Component) string {
	t.Helper()
	var b strings.Builder
	if err := c.Render(context.Background(), &b); err != nil {
		t.Fatalf("render: %v", err)
	}
	return b.String()
}

func TestChipClass(t *testing.T) {
	if got := ChipClass(false); got != "chip" {
		t.Errorf("ChipClass(false) = %q", got)
	}
	if got := ChipClass(true); got != "chip selected" {
		t.Errorf("ChipClass(true) = %q", got)
	}
}

func TestPartialHref(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"/blog/", "/blog/?partial=list"},
		{"/blog/?tag=go", "/blog/?tag=go&partial=list"},
	}
	for _, tt := range tests {
		if got := partialHref(tt.in); got != tt.want {
			t.Errorf("partialHref(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestListingSection(t *testing.T) {
	page := folio.ListingPage{
		Path: "/blog/",
		Cards: []folio.Card{{
			Entry: content.Entry{
				Item: listing.Item{Title: "Hello <World>", Date: "2024-01-01", Tags: []string{"go"}},
				Kind: content.KindBlog,
				Slug: "hello",
				Link: "/blog/hello/",
			},
			Chips: []listing.Chip{{Tag: "go", Selected: true, Href: "/blog/"}},
		}},
		Total:    2,
		Chips:    []listing.Chip{{Tag: "go", Selected: true, Href: "/blog/"}, {Tag: "rust", Href: "/blog/?tag=go&tag=rust"}},
		Selected: []string{"go"},
		SortHref: "/blog/?order=asc&tag=go",
	}
	out := render(t, ListingSection(page))

	for _, want := range []string{
		`<section id="listing">`,
		`class="chip selected" href="/blog/"`,
		`hx-get="/blog/?tag=go&amp;tag=rust&amp;partial=list"`,
		`Hello &lt;World&gt;`,
		`Showing 1 of 2.`,
		`href="/blog/?order=asc&amp;tag=go"`,
		`aria-label="Sorted newest first"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q\n%s", want, out)
		}
	}
	if strings.Contains(out, "<html") {
		t.Error("partial should not include the layout")
	}
}

func TestListingSectionEmpty(t *testing.T) {
	out := render(t, ListingSection(folio.ListingPage{Path: "/blog/", SortHref: "/blog/?order=asc", Ascending: true}))
	if !strings.Contains(out, "Nothing here yet.") {
		t.Errorf("expected empty notice, got %s", out)
	}
	if !strings.Contains(out, "Sorted oldest first") {
		t.Errorf("expected ascending label, got %s", out)
	}
	if strings.Contains(out, "Clear filter") {
		t.Error("no filter summary without a selection")
	}
}

func TestProjectCardStaticChips(t *testing.T) {
	page := folio.ListingPage{
		Path: "/projects/",
		Cards: []folio.Card{{
			Entry: content.Entry{
				Item:   listing.Item{Title: "Folio", Tags: []string{"go"}},
				Kind:   content.KindProject,
				Slug:   "folio",
				HTML:   "<p>Static site engine.</p>",
				GitHub: "https://github.com/eringen/folio",
			},
			Chips: []listing.Chip{{Tag: "go"}},
		}},
	}
	out := render(t, ListingSection(page))
	for _, want := range []string{
		`<div class="card" id="folio">`,
		`<span class="chip">go</span>`,
		`<p>Static site engine.</p>`,
		`href="https://github.com/eringen/folio"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q\n%s", want, out)
		}
	}
}

func TestEntryChipsDoNotSwap(t *testing.T) {
	cfg := folio.SiteConfig{Name: "Folio"}
	page := folio.EntryPage{
		Meta:  folio.PageMeta{Title: "Hello", OGType: "article"},
		Entry: content.Entry{Item: listing.Item{Title: "Hello"}, HTML: "<p>body</p>"},
		Chips: []listing.Chip{{Tag: "go", Href: "/blog/?tag=go"}},
		Related: []content.Entry{
			{Item: listing.Item{Title: "Other"}, Link: "/blog/other/"},
		},
		JSONLD: `{"@type":"BlogPosting"}`,
	}
	out := render(t, Entry(cfg, page))
	if strings.Contains(out, "hx-get") {
		t.Error("entry page chips should be plain links")
	}
	for _, want := range []string{
		`<title>Hello | Folio</title>`,
		`<meta property="og:type" content="article">`,
		`<script type="application/ld+json">{"@type":"BlogPosting"}</script>`,
		`href="/blog/?tag=go"`,
		`<a href="/blog/other/">Other</a>`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestAdminDashboard(t *testing.T) {
	entries := []content.Entry{
		{Item: listing.Item{Title: "Live"}, Kind: content.KindBlog, Link: "/blog/live/", Published: true},
		{Item: listing.Item{Title: "Draft"}, Kind: content.KindBlog, Published: false},
	}
	out := render(t, AdminDashboard(folio.SiteConfig{Name: "Folio"}, entries, "Indexed 2 entries.", "tok"))
	for _, want := range []string{
		`name="_csrf" value="tok"`,
		`Indexed 2 entries.`,
		`<a href="/blog/live/">Live</a>`,
		`<td>draft</td>`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestLayout(t *testing.T) {
	cfg := folio.SiteConfig{Name: "Folio", Author: "Ada"}
	meta := folio.PageMeta{Title: "Blog", Description: "Notes & code", URL: "https://example.com/blog/", OGType: "website"}
	page := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return Layout(cfg, meta, "").Render(templ.WithChildren(ctx, templ.Raw("<p>body</p>")), w)
	})
	out := render(t, page)
	for _, want := range []string{
		`<!doctype html>`,
		`<title>Blog | Folio</title>`,
		`<meta name="description" content="Notes &amp; code">`,
		`<link rel="canonical" href="https://example.com/blog/">`,
		`<script src="/public/folio.js" defer></script>`,
		`<main><p>body</p></main>`,
		`<small>Ada · <a href="/feed.xml">RSS</a></small>`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q\n%s", want, out)
		}
	}
	if strings.Contains(out, "application/ld+json") {
		t.Error("no JSON-LD script without a payload")
	}
}

func TestDefaultCoversEveryView(t *testing.T) {
	v := Default(folio.SiteConfig{Name: "Folio"})
	if v.Home == nil || v.Listing == nil || v.ListingPartial == nil || v.Entry == nil ||
		v.AdminLogin == nil || v.AdminDashboard == nil || v.NotFound == nil || v.ServerError == nil {
		t.Fatal("Default left a view unset")
	}
	out := render(t, v.NotFound())
	if !strings.Contains(out, "<title>Not found | Folio</title>") {
		t.Errorf("unexpected 404 page: %s", out)
	}
}
