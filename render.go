package folio

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
)

// Render writes a templ component as an HTTP 200 HTML response.
func Render(c echo.Context, cmp templ.Component) error {
	return RenderStatus(c, http.StatusOK, cmp)
}

// RenderStatus writes a templ component with a specific HTTP status code.
func RenderStatus(c echo.Context, code int, cmp templ.Component) error {
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(code)
	return cmp.Render(c.Request().Context(), c.Response().Writer)
}

// isPartial reports whether an HTMX request asked for the named fragment.
func isPartial(c echo.Context, name string) bool {
	return c.Request().Header.Get("HX-Request") == "true" && c.QueryParam("partial") == name
}

// renderListing renders just the list fragment for HTMX swaps and the full
// page otherwise. Vary keeps shared caches from mixing the two.
func (a *App) renderListing(c echo.Context, page ListingPage) error {
	c.Response().Header().Add("Vary", "HX-Request")
	if isPartial(c, "list") && a.Views.ListingPartial != nil {
		return Render(c, a.Views.ListingPartial(page))
	}
	return Render(c, a.Views.Listing(page))
}
