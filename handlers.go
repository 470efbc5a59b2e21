package folio

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"

	"github.com/eringen/folio/content"
	"github.com/eringen/folio/listing"
)

const (
	latestOnHome = 3
	maxRelated   = 3
)

// listingEngine builds the engine for kind from the cached entries and tag
// universe, with the filter state taken from q.
func (a *App) listingEngine(kind content.Kind, q url.Values) (*listing.Engine[content.Entry], error) {
	entries, err := a.Cache.ListEntries(kind)
	if err != nil {
		return nil, err
	}
	universe, err := a.Cache.ListTags(kind)
	if err != nil {
		return nil, err
	}
	return listing.New(entries, listing.ParseQuery(normalizeQuery(q)), listing.WithUniverse(universe)), nil
}

// normalizeQuery folds tag parameters the way the loader folds tags, so
// ?tag=Go selects "go".
func normalizeQuery(q url.Values) url.Values {
	tags := q[listing.ParamTag]
	if len(tags) == 0 {
		return q
	}
	out := make(url.Values, len(q))
	for k, v := range q {
		out[k] = v
	}
	norm := make([]string, len(tags))
	for i, t := range tags {
		norm[i] = content.NormalizeTag(t)
	}
	out[listing.ParamTag] = norm
	return out
}

// listingPage builds the listing for kind from the query-encoded filter state.
// The state only lives for this request; every chip and the sort link carry
// the toggled state forward in their hrefs.
func (a *App) listingPage(kind content.Kind, path, title string, q url.Values) (ListingPage, error) {
	eng, err := a.listingEngine(kind, q)
	if err != nil {
		return ListingPage{}, err
	}
	// Project cards show their stack for information only; post cards link
	// each tag to the filtered listing.
	cardMode := listing.ModeToggleable
	if kind == content.KindProject {
		cardMode = listing.ModeStatic
	}
	view := eng.View()
	cards := make([]Card, len(view))
	for i, e := range view {
		cards[i] = Card{Entry: e, Chips: eng.TagChips(e.Tags, cardMode, path)}
	}
	return ListingPage{
		Meta: PageMeta{
			Title:       title,
			Description: a.Config.Description,
			URL:         BuildURL(a.Config.URL, path),
			OGType:      "website",
		},
		Kind:      kind,
		Path:      path,
		Cards:     cards,
		Total:     eng.Len(),
		Chips:     eng.Chips(listing.ModeToggleable, path),
		Selected:  eng.Selected(),
		Ascending: eng.Ascending(),
		SortHref:  eng.SortHref(path),
	}, nil
}

func (a *App) handleHome(c echo.Context) error {
	eng, err := a.listingEngine(content.KindBlog, nil)
	if err != nil {
		return err
	}
	view := eng.View()
	if len(view) > latestOnHome {
		view = view[:latestOnHome]
	}
	latest := make([]Card, len(view))
	for i, p := range view {
		latest[i] = Card{Entry: p, Chips: eng.TagChips(p.Tags, listing.ModeToggleable, "/blog/")}
	}

	page := HomePage{
		Meta: PageMeta{
			Title:       a.Config.Name,
			Description: a.Config.Description,
			URL:         BuildURL(a.Config.URL),
			OGType:      "website",
		},
		Latest: latest,
		JSONLD: WebsiteJsonLD(a.Config),
	}
	intro, err := a.Cache.GetEntry(content.KindPage, "home")
	switch {
	case err == nil:
		page.Intro = &intro
	case !errors.Is(err, ErrNotFound):
		return err
	}
	return Render(c, a.Views.Home(page))
}

func (a *App) handleBlog(c echo.Context) error {
	page, err := a.listingPage(content.KindBlog, "/blog/", "Blog", c.QueryParams())
	if err != nil {
		return err
	}
	return a.renderListing(c, page)
}

func (a *App) handleProjects(c echo.Context) error {
	page, err := a.listingPage(content.KindProject, "/projects/", "Projects", c.QueryParams())
	if err != nil {
		return err
	}
	return a.renderListing(c, page)
}

func (a *App) handlePost(c echo.Context) error {
	post, err := a.Cache.GetEntry(content.KindBlog, c.Param("slug"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return RenderStatus(c, http.StatusNotFound, a.Views.NotFound())
		}
		return err
	}
	posts, err := a.Cache.ListEntries(content.KindBlog)
	if err != nil {
		return err
	}
	related := listing.Sort(FilterRelated(post, posts), false)
	if len(related) > maxRelated {
		related = related[:maxRelated]
	}
	return Render(c, a.Views.Entry(a.entryPage(post, related)))
}

func (a *App) handlePage(c echo.Context) error {
	pg, err := a.Cache.GetEntry(content.KindPage, c.Param("slug"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return RenderStatus(c, http.StatusNotFound, a.Views.NotFound())
		}
		return err
	}
	return Render(c, a.Views.Entry(a.entryPage(pg, nil)))
}

func (a *App) entryPage(e content.Entry, related []content.Entry) EntryPage {
	page := EntryPage{
		Meta: PageMeta{
			Title:       e.Title,
			Description: e.Summary,
			URL:         AbsURL(a.Config.URL, e.Link),
			OGType:      "website",
		},
		Entry:   e,
		Related: related,
	}
	if e.Kind == content.KindBlog {
		page.Meta.OGType = "article"
		page.JSONLD = BlogPostingJsonLD(e, a.Config)
		page.Chips = listing.TagChips(nil, e.Tags, listing.ModeToggleable, "/blog/")
	}
	return page
}

// listingJSON is the JSON projection of a listing.
type listingJSON struct {
	Kind      content.Kind `json:"kind"`
	Universe  []string     `json:"universe"`
	Selected  []string     `json:"selected"`
	Ascending bool         `json:"ascending"`
	Total     int          `json:"total"`
	Items     []entryJSON  `json:"items"`
}

type entryJSON struct {
	ID      string   `json:"id"`
	Title   string   `json:"title"`
	Date    string   `json:"date,omitempty"`
	Tags    []string `json:"tags"`
	Slug    string   `json:"slug"`
	Link    string   `json:"link"`
	Summary string   `json:"summary,omitempty"`
}

func (a *App) handleListingAPI(kind content.Kind, path string) echo.HandlerFunc {
	return func(c echo.Context) error {
		eng, err := a.listingEngine(kind, c.QueryParams())
		if err != nil {
			return err
		}
		view := eng.View()
		out := listingJSON{
			Kind:      kind,
			Universe:  eng.Universe(),
			Selected:  eng.Selected(),
			Ascending: eng.Ascending(),
			Total:     eng.Len(),
			Items:     make([]entryJSON, len(view)),
		}
		if out.Universe == nil {
			out.Universe = []string{}
		}
		if out.Selected == nil {
			out.Selected = []string{}
		}
		for i, e := range view {
			out.Items[i] = entryJSON{
				ID:      e.ID,
				Title:   e.Title,
				Date:    e.Date,
				Tags:    FilterEmpty(e.Tags),
				Slug:    e.Slug,
				Link:    AbsURL(a.Config.URL, e.Link),
				Summary: e.Summary,
			}
		}
		c.Response().Header().Set("Link", fmt.Sprintf("<%s>; rel=\"alternate\"; type=\"text/html\"", BuildURL(a.Config.URL, path)))
		return c.JSON(http.StatusOK, out)
	}
}

func (a *App) handleSitemap(c echo.Context) error {
	var entries []content.Entry
	for _, k := range content.Kinds {
		es, err := a.Cache.ListEntries(k)
		if err != nil {
			return err
		}
		entries = append(entries, es...)
	}
	return a.renderSitemap(c, entries)
}

func (a *App) handleFeed(c echo.Context) error {
	posts, err := a.Cache.ListEntries(content.KindBlog)
	if err != nil {
		return err
	}
	return a.renderRSS(c, listing.Sort(posts, false))
}

func (a *App) handleFavicon(c echo.Context) error {
	return c.File(a.staticDir + "/favicon.svg")
}

// handleRobots generates robots.txt from the configured site URL.
func (a *App) handleRobots(c echo.Context) error {
	body := fmt.Sprintf("User-agent: *\nAllow: /\nDisallow: /admin/\n\nSitemap: %s/sitemap.xml\n", a.Config.URL)
	return c.String(http.StatusOK, body)
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	var he *echo.HTTPError
	ok := errors.As(err, &he)
	if ok && he.Code == http.StatusNotFound {
		_ = RenderStatus(c, http.StatusNotFound, a.Views.NotFound())
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		a.Logger.Error("server error", "method", c.Request().Method, "uri", c.Request().RequestURI, "error", err)
		_ = RenderStatus(c, code, a.Views.ServerError())
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}
