package folio

import (
	"github.com/eringen/folio/content"
	"github.com/eringen/folio/listing"
)

// PageMeta carries per-page OpenGraph and SEO metadata into the <head> template.
type PageMeta struct {
	Title       string
	Description string
	URL         string // canonical + og:url
	OGType      string // "website" or "article"
}

// Card is one entry as rendered in a list, with its own tag chips.
type Card struct {
	Entry content.Entry
	Chips []listing.Chip
}

// ListingPage is everything a template needs to render a filterable listing.
type ListingPage struct {
	Meta      PageMeta
	Kind      content.Kind
	Path      string // listing path the chips and sort link point at
	Cards     []Card
	Total     int // size of the unfiltered collection
	Chips     []listing.Chip
	Selected  []string
	Ascending bool
	SortHref  string
}

// HomePage is the landing page: optional intro copy and the newest posts.
type HomePage struct {
	Meta   PageMeta
	Intro  *content.Entry
	Latest []Card
	JSONLD string
}

// EntryPage renders a single post or standalone page.
type EntryPage struct {
	Meta    PageMeta
	Entry   content.Entry
	Chips   []listing.Chip
	Related []content.Entry
	JSONLD  string
}
