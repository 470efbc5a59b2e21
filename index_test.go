package folio

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/eringen/folio/content"
	"github.com/eringen/folio/logging"
)

func writeContent(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for name, body := range files {
		p := filepath.Join(root, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
	}
}

func TestIndexSkipsBadFiles(t *testing.T) {
	root := t.TempDir()
	writeContent(t, root, map[string]string{
		"blog/good.md":   "---\ntitle: Good\ntags: [go]\n---\nok\n",
		"blog/broken.md": "---\ntitle: [unclosed\n---\n",
	})
	s := setupTestStore(t)

	n, err := Index(context.Background(), logging.Discard(), content.NewLoader(logging.Discard()), s, root)
	if err != nil {
		t.Fatalf("Index: %v", err)
	}
	if n != 1 {
		t.Errorf("indexed %d, want 1", n)
	}
	if _, err := s.GetEntry(content.KindBlog, "good"); err != nil {
		t.Errorf("good entry missing: %v", err)
	}
}

func TestIndexMissingRootKeepsStore(t *testing.T) {
	s := setupTestStore(t)
	if err := s.ReplaceAll([]content.Entry{testEntry(content.KindBlog, "kept", "", true)}); err != nil {
		t.Fatal(err)
	}

	_, err := Index(context.Background(), logging.Discard(), content.NewLoader(logging.Discard()), s, filepath.Join(t.TempDir(), "nope"))
	if err == nil {
		t.Fatal("expected an error for a missing content root")
	}
	if _, err := s.GetEntry(content.KindBlog, "kept"); err != nil {
		t.Errorf("store should be untouched: %v", err)
	}
}
