package folio

import (
	"encoding/json"
	"net/url"
	"path"
	"strings"

	"github.com/eringen/folio/content"
)

// BuildURL joins a base URL with path segments, ensuring a trailing slash.
func BuildURL(base string, pathSegments ...string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	u.Path = path.Join(u.Path, path.Join(pathSegments...))
	if len(pathSegments) > 0 && !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return u.String()
}

// AbsURL resolves a site-relative link (which may carry a fragment or query)
// against base.
func AbsURL(base, link string) string {
	b, err := url.Parse(base)
	if err != nil {
		return link
	}
	ref, err := url.Parse(link)
	if err != nil {
		return link
	}
	return b.ResolveReference(ref).String()
}

// FilterEmpty removes empty/whitespace-only strings from a slice.
func FilterEmpty(vals []string) []string {
	out := []string{}
	for _, v := range vals {
		if s := strings.TrimSpace(v); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// FilterRelated returns the entries that share at least one tag with current,
// excluding current itself, in input order.
func FilterRelated(current content.Entry, entries []content.Entry) []content.Entry {
	tagSet := make(map[string]struct{})
	for _, t := range current.Tags {
		if t != "" {
			tagSet[t] = struct{}{}
		}
	}
	var related []content.Entry
	for _, e := range entries {
		if e.ID == current.ID {
			continue
		}
		for _, t := range e.Tags {
			if _, ok := tagSet[t]; ok {
				related = append(related, e)
				break
			}
		}
	}
	return related
}

// WebsiteJsonLD returns a JSON-LD string for a WebSite schema using SiteConfig.
func WebsiteJsonLD(cfg SiteConfig) string {
	data := map[string]any{
		"@context": "https://schema.org",
		"@type":    "WebSite",
		"name":     cfg.Name,
		"url":      BuildURL(cfg.URL),
	}
	if cfg.Description != "" {
		data["description"] = cfg.Description
	}
	if cfg.Author != "" {
		data["author"] = map[string]string{
			"@type": "Person",
			"name":  cfg.Author,
		}
	}
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}

// BlogPostingJsonLD returns a JSON-LD string for a BlogPosting schema.
func BlogPostingJsonLD(post content.Entry, cfg SiteConfig) string {
	postURL := AbsURL(cfg.URL, post.Link)
	data := map[string]any{
		"@context":    "https://schema.org",
		"@type":       "BlogPosting",
		"headline":    post.Title,
		"description": post.Summary,
		"url":         postURL,
		"mainEntityOfPage": map[string]string{
			"@type": "WebPage",
			"@id":   postURL,
		},
	}
	if post.Date != "" {
		data["datePublished"] = post.Date
	}
	if cfg.Author != "" {
		data["author"] = map[string]string{
			"@type": "Person",
			"name":  cfg.Author,
		}
	}
	if tags := FilterEmpty(post.Tags); len(tags) > 0 {
		data["keywords"] = strings.Join(tags, ", ")
	}
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}
