package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/eringen/folio/content"
	"github.com/eringen/folio/logging"
)

func TestToTitle(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"my-site", "My Site"},
		{"mysite", "Mysite"},
		{"a--b", "A  B"},
	}
	for _, tt := range tests {
		if got := toTitle(tt.in); got != tt.want {
			t.Errorf("toTitle(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestJoinTags(t *testing.T) {
	tests := []struct {
		in   []string
		want string
	}{
		{nil, ""},
		{[]string{"go"}, "go"},
		{[]string{"go", "", "web"}, "go, web"},
		{[]string{"", " "}, ""},
	}
	for _, tt := range tests {
		if got := joinTags(tt.in); got != tt.want {
			t.Errorf("joinTags(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRunNew(t *testing.T) {
	parent := t.TempDir()
	dir, err := runNew(io.Discard, "github.com/user/my-site", parent)
	if err != nil {
		t.Fatalf("runNew: %v", err)
	}
	if filepath.Base(dir) != "my-site" {
		t.Fatalf("dir = %q", dir)
	}

	for _, f := range []string{"go.mod", "main.go", ".env.example", ".gitignore", "content/blog/hello-world.md"} {
		if _, err := os.Stat(filepath.Join(dir, f)); err != nil {
			t.Errorf("missing %s: %v", f, err)
		}
	}

	mod, err := os.ReadFile(filepath.Join(dir, "go.mod"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(mod), "module github.com/user/my-site\n") {
		t.Errorf("go.mod = %q", mod)
	}

	// The starter content must load cleanly.
	entries, err := content.NewLoader(logging.Discard()).Load(context.Background(), filepath.Join(dir, "content"))
	if err != nil {
		t.Fatalf("load scaffolded content: %v", err)
	}
	var project *content.Entry
	for i := range entries {
		if entries[i].Kind == content.KindProject {
			project = &entries[i]
		}
	}
	if project == nil || project.Title != "My Site" {
		t.Errorf("project entry = %+v", project)
	}

	if _, err := runNew(io.Discard, "my-site", parent); err == nil {
		t.Error("expected an error when the directory exists")
	}
}

func TestIndexAndList(t *testing.T) {
	root := t.TempDir()
	contentDir := filepath.Join(root, "content", "blog")
	if err := os.MkdirAll(contentDir, 0o755); err != nil {
		t.Fatal(err)
	}
	posts := map[string]string{
		"one.md":   "---\ntitle: One\ndate: 2024-01-01\ntags: [go]\n---\nbody\n",
		"two.md":   "---\ntitle: Two\ndate: 2024-06-01\ntags: [rust]\n---\nbody\n",
		"three.md": "---\ntitle: Three\ntags: [go, rust]\n---\nbody\n",
	}
	for name, body := range posts {
		if err := os.WriteFile(filepath.Join(contentDir, name), []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	t.Setenv("CONTENT_DIR", filepath.Join(root, "content"))
	t.Setenv("DATABASE_PATH", filepath.Join(root, "folio.db"))
	t.Setenv("LOG_LEVEL", "error")

	run := func(args ...string) string {
		t.Helper()
		var out bytes.Buffer
		cmd := newRootCommand(logging.Discard())
		cmd.SetOut(&out)
		cmd.SetErr(io.Discard)
		cmd.SetArgs(append([]string{"--env-file", filepath.Join(root, "missing.env")}, args...))
		if err := cmd.Execute(); err != nil {
			t.Fatalf("folio %v: %v", args, err)
		}
		return out.String()
	}

	if out := run("index"); !strings.Contains(out, "indexed 3 entries") {
		t.Fatalf("index output = %q", out)
	}

	out := run("list", "--tag", "go")
	iOne, iThree := strings.Index(out, "one"), strings.Index(out, "three")
	if iOne < 0 || iThree < 0 || iOne > iThree || strings.Contains(out, "two") {
		t.Errorf("list --tag go = %q", out)
	}
	if !strings.Contains(out, "2 of 3") {
		t.Errorf("list --tag go summary missing: %q", out)
	}

	out = run("list", "--asc")
	if !(strings.Index(out, "one") < strings.Index(out, "two") && strings.Index(out, "two") < strings.Index(out, "three")) {
		t.Errorf("list --asc = %q", out)
	}

	out = run("tags")
	if got := strings.Fields(out); len(got) != 2 || got[0] != "go" || got[1] != "rust" {
		t.Errorf("tags = %q", out)
	}
}

func TestListRejectsUnknownKind(t *testing.T) {
	cmd := newRootCommand(logging.Discard())
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"list", "--kind", "nope"})
	if err := cmd.Execute(); err == nil {
		t.Error("expected an error for an unknown kind")
	}
}
