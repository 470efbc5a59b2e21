// Package content turns a tree of markdown files with YAML frontmatter into
// listing-ready entries.
package content

import (
	"strings"

	"github.com/google/uuid"

	"github.com/eringen/folio/listing"
)

// Kind groups entries into the site's sections.
type Kind string

const (
	KindBlog    Kind = "blog"
	KindProject Kind = "project"
	KindPage    Kind = "page"
)

// Kinds lists every kind in display order.
var Kinds = []Kind{KindBlog, KindProject, KindPage}

// ParseKind maps a frontmatter key or section name onto a Kind.
func ParseKind(s string) (Kind, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "blog", "blog-post", "post", "posts":
		return KindBlog, true
	case "project", "projects":
		return KindProject, true
	case "page", "pages":
		return KindPage, true
	}
	return "", false
}

// Entry is one blog post, project or standalone page.
type Entry struct {
	listing.Item

	Kind      Kind
	Slug      string
	Summary   string
	Body      string // markdown source without frontmatter
	HTML      string // rendered body
	GitHub    string
	Website   string
	Link      string
	Path      string // source path relative to the content root
	Published bool
}

// entryID derives a stable opaque ID from kind and slug.
func entryID(kind Kind, slug string) string {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte("folio:"+string(kind)+"/"+slug)).String()
}

// LinkFor returns the site path an entry is served under.
func LinkFor(kind Kind, slug string) string {
	switch kind {
	case KindBlog:
		return "/blog/" + slug + "/"
	case KindProject:
		return "/projects/#" + slug
	default:
		return "/" + slug + "/"
	}
}

// NormalizeTag lowercases a tag and collapses commas and runs of whitespace
// to single spaces, so "Node, Express" becomes "node express". Commas delimit
// tags in storage and must not survive. Blank tags become "", which the
// listing engine treats as "no tag".
func NormalizeTag(t string) string {
	return strings.Join(strings.Fields(strings.ReplaceAll(strings.ToLower(t), ",", " ")), " ")
}

// Slugify converts a title to a URL-safe slug.
func Slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	prev := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			prev = false
		default:
			if !prev && b.Len() > 0 {
				b.WriteByte('-')
				prev = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}
