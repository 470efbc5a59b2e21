package folio

import (
	"database/sql"
	"errors"
	"path/filepath"
	"slices"
	"testing"

	"github.com/eringen/folio/content"
	"github.com/eringen/folio/listing"
	"github.com/eringen/folio/logging"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(filepath.Join(t.TempDir(), "data", "test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testEntry(kind content.Kind, slug, date string, published bool, tags ...string) content.Entry {
	return content.Entry{
		Item:      listing.Item{ID: string(kind) + "/" + slug, Title: "Title " + slug, Date: date, Tags: tags},
		Kind:      kind,
		Slug:      slug,
		Summary:   "summary " + slug,
		Body:      "body",
		HTML:      "<p>body</p>",
		Path:      string(kind) + "/" + slug + ".md",
		Published: published,
	}
}

func TestNewStore(t *testing.T) {
	s := setupTestStore(t)
	if s.db == nil {
		t.Fatal("db should not be nil")
	}
}

func TestReplaceAllAndGetEntry(t *testing.T) {
	s := setupTestStore(t)

	post := testEntry(content.KindBlog, "test-post", "2024-01-15", true, "go", "testing")
	post.GitHub = "https://github.com/x/y"
	if err := s.ReplaceAll([]content.Entry{post}); err != nil {
		t.Fatalf("ReplaceAll failed: %v", err)
	}

	got, err := s.GetEntry(content.KindBlog, "test-post")
	if err != nil {
		t.Fatalf("GetEntry failed: %v", err)
	}
	if got.ID != post.ID {
		t.Errorf("ID = %q, want %q", got.ID, post.ID)
	}
	if got.Title != post.Title || got.Date != post.Date || got.Summary != post.Summary {
		t.Errorf("got %+v, want %+v", got.Item, post.Item)
	}
	if got.HTML != post.HTML || got.GitHub != post.GitHub || got.Path != post.Path {
		t.Errorf("fields not round-tripped: %+v", got)
	}
	if got.Link != "/blog/test-post/" {
		t.Errorf("Link = %q, want %q", got.Link, "/blog/test-post/")
	}
	if !slices.Equal(got.Tags, []string{"go", "testing"}) {
		t.Errorf("Tags = %v, want [go testing]", got.Tags)
	}
}

func TestReplaceAllReplaces(t *testing.T) {
	s := setupTestStore(t)

	if err := s.ReplaceAll([]content.Entry{testEntry(content.KindBlog, "old", "", true)}); err != nil {
		t.Fatal(err)
	}
	if err := s.ReplaceAll([]content.Entry{testEntry(content.KindBlog, "new", "", true)}); err != nil {
		t.Fatal(err)
	}
	if _, err := s.GetEntry(content.KindBlog, "old"); !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("old entry should be gone, got %v", err)
	}
	if _, err := s.GetEntry(content.KindBlog, "new"); err != nil {
		t.Errorf("new entry missing: %v", err)
	}
}

func TestReplaceAllDuplicateRollsBack(t *testing.T) {
	s := setupTestStore(t)

	if err := s.ReplaceAll([]content.Entry{testEntry(content.KindBlog, "keep", "", true)}); err != nil {
		t.Fatal(err)
	}
	a := testEntry(content.KindBlog, "dup", "", true)
	b := testEntry(content.KindBlog, "dup", "", true)
	b.ID = "other"
	if err := s.ReplaceAll([]content.Entry{a, b}); err == nil {
		t.Fatal("expected a unique constraint error")
	}
	if _, err := s.GetEntry(content.KindBlog, "keep"); err != nil {
		t.Errorf("failed replace should leave the old index, got %v", err)
	}
}

func TestGetEntryNotFound(t *testing.T) {
	s := setupTestStore(t)

	_, err := s.GetEntry(content.KindBlog, "nonexistent")
	if err != sql.ErrNoRows {
		t.Errorf("expected sql.ErrNoRows, got %v", err)
	}
}

func TestGetEntryUnpublished(t *testing.T) {
	s := setupTestStore(t)

	if err := s.ReplaceAll([]content.Entry{testEntry(content.KindBlog, "draft", "2024-01-01", false, "draft")}); err != nil {
		t.Fatal(err)
	}
	if _, err := s.GetEntry(content.KindBlog, "draft"); err != sql.ErrNoRows {
		t.Errorf("GetEntry should return ErrNoRows for drafts, got %v", err)
	}

	all, err := s.ListAllEntries()
	if err != nil {
		t.Fatalf("ListAllEntries failed: %v", err)
	}
	if len(all) != 1 || all[0].Published {
		t.Errorf("ListAllEntries = %+v, want the one draft", all)
	}
}

func TestListEntriesKeepsIngestionOrder(t *testing.T) {
	s := setupTestStore(t)

	entries := []content.Entry{
		testEntry(content.KindBlog, "post-3", "2024-01-03", true, "rust"),
		testEntry(content.KindProject, "proj", "", true, "go"),
		testEntry(content.KindBlog, "post-1", "2024-01-01", true, "go"),
		testEntry(content.KindBlog, "post-4", "2024-01-04", false, "go"),
		testEntry(content.KindBlog, "post-2", "2024-01-02", true, "go", "web"),
	}
	if err := s.ReplaceAll(entries); err != nil {
		t.Fatal(err)
	}

	got, err := s.ListEntries(content.KindBlog)
	if err != nil {
		t.Fatalf("ListEntries failed: %v", err)
	}
	var slugs []string
	for _, e := range got {
		slugs = append(slugs, e.Slug)
	}
	if want := []string{"post-3", "post-1", "post-2"}; !slices.Equal(slugs, want) {
		t.Errorf("slugs = %v, want %v", slugs, want)
	}

	projects, err := s.ListEntries(content.KindProject)
	if err != nil {
		t.Fatal(err)
	}
	if len(projects) != 1 || projects[0].Link != "/projects/#proj" {
		t.Errorf("projects = %+v", projects)
	}
}

func TestListTags(t *testing.T) {
	s := setupTestStore(t)

	entries := []content.Entry{
		testEntry(content.KindBlog, "a", "", true, "rust"),
		testEntry(content.KindBlog, "b", "", true, "go", "rust"),
		testEntry(content.KindBlog, "c", "", false, "hidden"),
		testEntry(content.KindBlog, "d", "", true, "web"),
	}
	if err := s.ReplaceAll(entries); err != nil {
		t.Fatal(err)
	}

	tags, err := s.ListTags(content.KindBlog)
	if err != nil {
		t.Fatalf("ListTags failed: %v", err)
	}
	if want := []string{"rust", "go", "web"}; !slices.Equal(tags, want) {
		t.Errorf("ListTags = %v, want %v", tags, want)
	}

	empty, err := s.ListTags(content.KindPage)
	if err != nil {
		t.Fatal(err)
	}
	if len(empty) != 0 {
		t.Errorf("ListTags(page) = %v, want empty", empty)
	}
}

func TestFormatAndParseTags(t *testing.T) {
	tests := []struct {
		name   string
		tags   []string
		stored string
	}{
		{"empty", nil, ""},
		{"single", []string{"go"}, ",go,"},
		{"multiple", []string{"go", "web"}, ",go,web,"},
		{"null entry kept", []string{"go", "", "web"}, ",go,,web,"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatTags(tt.tags); got != tt.stored {
				t.Errorf("FormatTags = %q, want %q", got, tt.stored)
			}
			if got := ParseTags(tt.stored); !slices.Equal(got, tt.tags) {
				t.Errorf("ParseTags = %q, want %q", got, tt.tags)
			}
		})
	}
}

func TestFormatTagsStripsDelimiter(t *testing.T) {
	stored := FormatTags([]string{"Node, Express", "go"})
	if stored != ",node express,go," {
		t.Fatalf("FormatTags = %q", stored)
	}
	if got := ParseTags(stored); !slices.Equal(got, []string{"node express", "go"}) {
		t.Errorf("ParseTags = %q", got)
	}
}

func TestCommaTagRoundTrip(t *testing.T) {
	s := setupTestStore(t)
	l := content.NewLoader(logging.Discard())
	e, err := l.Parse("blog/node.md", []byte("---\ntitle: Node\ndate: 2024-02-01\ntags: [\"node, express\", web]\n---\nbody\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if err := s.ReplaceAll([]content.Entry{e}); err != nil {
		t.Fatalf("ReplaceAll: %v", err)
	}
	got, err := s.GetEntry(content.KindBlog, "node")
	if err != nil {
		t.Fatalf("GetEntry: %v", err)
	}
	if !slices.Equal(got.Tags, e.Tags) || !slices.Equal(got.Tags, []string{"node express", "web"}) {
		t.Errorf("Tags = %q, loaded %q", got.Tags, e.Tags)
	}
	tags, err := s.ListTags(content.KindBlog)
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(tags, []string{"node express", "web"}) {
		t.Errorf("ListTags = %q", tags)
	}
}

func TestParseTagsTrimsSpace(t *testing.T) {
	if got := ParseTags(", go , web ,"); !slices.Equal(got, []string{"go", "web"}) {
		t.Errorf("ParseTags = %q", got)
	}
}
