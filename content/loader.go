package content

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"gopkg.in/yaml.v3"

	"github.com/eringen/folio/listing"
)

var fence = []byte("---")

// frontmatter mirrors the YAML header of a content file. Projects use name
// and stack, posts use title and either stack or tags.
type frontmatter struct {
	Key         string   `yaml:"key"`
	Title       string   `yaml:"title"`
	Name        string   `yaml:"name"`
	Date        string   `yaml:"date"`
	Slug        string   `yaml:"slug"`
	Stack       []string `yaml:"stack"`
	Tags        []string `yaml:"tags"`
	Summary     string   `yaml:"summary"`
	Description string   `yaml:"description"`
	GitHub      string   `yaml:"github"`
	Website     string   `yaml:"website"`
	Draft       bool     `yaml:"draft"`
}

// Loader reads content files and renders their markdown bodies.
type Loader struct {
	md     goldmark.Markdown
	logger *slog.Logger
}

// NewLoader returns a Loader rendering GitHub-flavoured markdown.
func NewLoader(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		),
		logger: logger,
	}
}

// LoadError reports the files Load skipped.
type LoadError struct {
	Files []error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("%d content file(s) skipped: %v", len(e.Files), errors.Join(e.Files...))
}

func (e *LoadError) Unwrap() []error {
	return e.Files
}

// Load walks root for *.md files and parses each into an Entry, in lexical
// path order. Files that fail to parse are skipped and reported in a
// *LoadError alongside the entries that did parse. Any other error means
// nothing was loaded.
func (l *Loader) Load(ctx context.Context, root string) ([]Entry, error) {
	var (
		entries []Entry
		errs    []error
		seen    = make(map[string]string)
	)
	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(p), ".md") {
			return nil
		}
		rel, err := filepath.Rel(root, p)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		data, err := os.ReadFile(p)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", rel, err))
			return nil
		}
		e, err := l.Parse(rel, data)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", rel, err))
			return nil
		}
		key := string(e.Kind) + "/" + e.Slug
		if prev, ok := seen[key]; ok {
			errs = append(errs, fmt.Errorf("%s: duplicate %s slug %q (first defined in %s)", rel, e.Kind, e.Slug, prev))
			return nil
		}
		seen[key] = rel
		entries = append(entries, e)
		l.logger.Debug("loaded content", "path", rel, "kind", e.Kind, "slug", e.Slug)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", root, err)
	}
	if len(errs) > 0 {
		return entries, &LoadError{Files: errs}
	}
	return entries, nil
}

// Parse builds an Entry from one file. rel is the slash-separated path of the
// file relative to the content root; it supplies the kind and slug when the
// frontmatter does not.
func (l *Loader) Parse(rel string, data []byte) (Entry, error) {
	head, body, err := splitFrontmatter(data)
	if err != nil {
		return Entry{}, err
	}
	var fm frontmatter
	if len(head) > 0 {
		if err := yaml.Unmarshal(head, &fm); err != nil {
			return Entry{}, fmt.Errorf("decode frontmatter: %w", err)
		}
	}

	kind, err := resolveKind(fm.Key, rel)
	if err != nil {
		return Entry{}, err
	}
	title := strings.TrimSpace(fm.Title)
	if title == "" {
		title = strings.TrimSpace(fm.Name)
	}
	slug := resolveSlug(fm.Slug, rel, title)
	if slug == "" {
		return Entry{}, errors.New("cannot derive a slug: set slug or title")
	}

	var html bytes.Buffer
	if err := l.md.Convert(body, &html); err != nil {
		return Entry{}, fmt.Errorf("render markdown: %w", err)
	}

	summary := strings.TrimSpace(fm.Summary)
	if summary == "" {
		summary = strings.TrimSpace(fm.Description)
	}

	return Entry{
		Item: listing.Item{
			ID:    entryID(kind, slug),
			Title: title,
			Date:  strings.TrimSpace(fm.Date),
			Tags:  collectTags(fm.Stack, fm.Tags),
		},
		Kind:      kind,
		Slug:      slug,
		Summary:   summary,
		Body:      string(body),
		HTML:      html.String(),
		GitHub:    strings.TrimSpace(fm.GitHub),
		Website:   strings.TrimSpace(fm.Website),
		Link:      LinkFor(kind, slug),
		Path:      rel,
		Published: !fm.Draft,
	}, nil
}

// splitFrontmatter separates a leading "---" fenced YAML block from the body.
// Files without a fence have no frontmatter.
func splitFrontmatter(data []byte) (head, body []byte, err error) {
	data = bytes.TrimPrefix(data, []byte("\uFEFF"))
	first, rest, ok := bytes.Cut(data, []byte("\n"))
	if !ok || !bytes.Equal(bytes.TrimSpace(first), fence) {
		return nil, data, nil
	}
	for off := 0; off <= len(rest); {
		line, next, found := bytes.Cut(rest[off:], []byte("\n"))
		if bytes.Equal(bytes.TrimSpace(line), fence) {
			return rest[:off], next, nil
		}
		if !found {
			break
		}
		off += len(line) + 1
	}
	return nil, nil, errors.New("unterminated frontmatter")
}

func resolveKind(key, rel string) (Kind, error) {
	if key != "" {
		k, ok := ParseKind(key)
		if !ok {
			return "", fmt.Errorf("unknown content key %q", key)
		}
		return k, nil
	}
	if dir, _, ok := strings.Cut(rel, "/"); ok {
		if k, ok := ParseKind(dir); ok {
			return k, nil
		}
	}
	return KindPage, nil
}

func resolveSlug(explicit, rel, title string) string {
	if s := strings.Trim(strings.TrimSpace(explicit), "/"); s != "" {
		return Slugify(path.Base(s))
	}
	base := strings.TrimSuffix(path.Base(rel), path.Ext(rel))
	if base != "" && !strings.EqualFold(base, "index") {
		return Slugify(base)
	}
	return Slugify(title)
}

// collectTags merges stack and tags, normalizing each entry. Null or blank
// entries survive as "" so the listing engine can skip them.
func collectTags(lists ...[]string) []string {
	var out []string
	for _, l := range lists {
		for _, t := range l {
			out = append(out, NormalizeTag(t))
		}
	}
	return out
}
