package folio

import (
	"errors"
	"testing"
	"time"

	"github.com/eringen/folio/content"
)

func TestEntryCache(t *testing.T) {
	s := setupTestStore(t)
	if err := s.ReplaceAll([]content.Entry{
		testEntry(content.KindBlog, "a", "2024-01-01", true, "go"),
		testEntry(content.KindBlog, "b", "2024-02-01", true, "rust", "go"),
	}); err != nil {
		t.Fatal(err)
	}

	c := NewEntryCache(s, time.Hour)

	entries, err := c.ListEntries(content.KindBlog)
	if err != nil {
		t.Fatalf("ListEntries failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("len = %d, want 2", len(entries))
	}
	tags, err := c.ListTags(content.KindBlog)
	if err != nil {
		t.Fatal(err)
	}
	if len(tags) != 2 || tags[0] != "go" || tags[1] != "rust" {
		t.Errorf("tags = %v, want [go rust]", tags)
	}

	// The store changes underneath; the cache keeps serving until invalidated.
	if err := s.ReplaceAll([]content.Entry{testEntry(content.KindBlog, "c", "", true)}); err != nil {
		t.Fatal(err)
	}
	if _, err := c.GetEntry(content.KindBlog, "a"); err != nil {
		t.Errorf("cached entry should still be served: %v", err)
	}

	c.Invalidate()
	if _, err := c.GetEntry(content.KindBlog, "a"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after invalidate, got %v", err)
	}
	if e, err := c.GetEntry(content.KindBlog, "c"); err != nil || e.Slug != "c" {
		t.Errorf("GetEntry(c) = %+v, %v", e, err)
	}
}

func TestEntryCacheExpires(t *testing.T) {
	s := setupTestStore(t)
	c := NewEntryCache(s, time.Nanosecond)

	if entries, err := c.ListEntries(content.KindBlog); err != nil || len(entries) != 0 {
		t.Fatalf("ListEntries = %v, %v", entries, err)
	}
	if err := s.ReplaceAll([]content.Entry{testEntry(content.KindBlog, "fresh", "", true)}); err != nil {
		t.Fatal(err)
	}
	time.Sleep(time.Millisecond)
	if _, err := c.GetEntry(content.KindBlog, "fresh"); err != nil {
		t.Errorf("expired cache should reload: %v", err)
	}
}
