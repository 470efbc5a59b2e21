package folio

import (
	"encoding/xml"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/eringen/folio/content"
	"github.com/eringen/folio/listing"
)

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

// renderSitemap lists the section roots plus every post and page. Projects
// live as anchors on /projects/ and are covered by that URL.
func (a *App) renderSitemap(c echo.Context, entries []content.Entry) error {
	base := a.Config.URL
	urls := []sitemapURL{
		{Loc: BuildURL(base)},
		{Loc: BuildURL(base, "blog")},
		{Loc: BuildURL(base, "projects")},
	}
	for _, e := range entries {
		if e.Kind == content.KindProject || (e.Kind == content.KindPage && e.Slug == "home") {
			continue
		}
		u := sitemapURL{Loc: AbsURL(base, e.Link)}
		if t, ok := listing.ParseDate(e.Date); ok {
			u.LastMod = t.Format("2006-01-02")
		}
		urls = append(urls, u)
	}
	sitemap := sitemapURLSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  urls,
	}
	c.Response().Header().Set(echo.HeaderContentType, "application/xml; charset=utf-8")
	c.Response().WriteHeader(http.StatusOK)
	c.Response().Write([]byte(xml.Header))
	return xml.NewEncoder(c.Response()).Encode(sitemap)
}
