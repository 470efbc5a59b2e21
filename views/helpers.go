package views

import (
	"fmt"
	"strings"

	"github.com/eringen/folio"
)

// ChipClass returns CSS classes for a tag chip, with the selected variant.
func ChipClass(selected bool) string {
	if selected {
		return "chip selected"
	}
	return "chip"
}

// partialHref asks the listing handler for just the list fragment.
func partialHref(href string) string {
	if strings.Contains(href, "?") {
		return href + "&partial=list"
	}
	return href + "?partial=list"
}

// SortLabel returns the arrow for the current direction: down when the
// oldest items come first, up when the newest do.
func SortLabel(ascending bool) string {
	if ascending {
		return "↓"
	}
	return "↑"
}

func sortAria(ascending bool) string {
	if ascending {
		return "Sorted oldest first"
	}
	return "Sorted newest first"
}

func showing(page folio.ListingPage) string {
	return fmt.Sprintf("Showing %d of %d.", len(page.Cards), page.Total)
}

func pageTitle(cfg folio.SiteConfig, meta folio.PageMeta) string {
	if meta.Title != "" && meta.Title != cfg.Name {
		return meta.Title + " | " + cfg.Name
	}
	return cfg.Name
}

func footerName(cfg folio.SiteConfig) string {
	if cfg.Author != "" {
		return cfg.Author
	}
	return cfg.Name
}

// jsonLDScript wraps a payload from json.Marshal, which escapes <, > and &,
// so it cannot close the tag.
func jsonLDScript(payload string) string {
	return `<script type="application/ld+json">` + payload + `</script>`
}
