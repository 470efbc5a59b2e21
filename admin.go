package folio

import (
	"crypto/subtle"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
)

func (a *App) handleAdmin(c echo.Context) error {
	if !IsAdmin(c) {
		return Render(c, a.Views.AdminLogin(false, CsrfToken(c)))
	}
	return a.renderAdminDashboard(c, c.QueryParam("msg"))
}

func (a *App) handleAdminLogin(c echo.Context) error {
	ip := c.RealIP()
	if !a.loginLimiter.Check(ip) {
		a.Logger.Warn("admin login rate limited", "ip", ip)
		return c.String(http.StatusTooManyRequests, "Too many login attempts. Try again later.")
	}
	pass := c.FormValue("password")
	if subtle.ConstantTimeCompare([]byte(pass), []byte(a.Config.AdminPassword)) == 1 {
		if err := setAdminSession(c); err != nil {
			return err
		}
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	a.loginLimiter.Record(ip)
	return Render(c, a.Views.AdminLogin(true, CsrfToken(c)))
}

func handleAdminLogout(c echo.Context) error {
	if err := clearAdminSession(c); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/admin/")
}

// handleAdminReindex rebuilds the content index from disk without a restart.
func (a *App) handleAdminReindex(c echo.Context) error {
	if !IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	n, err := a.Reindex(c.Request().Context())
	if err != nil {
		a.Logger.Error("reindex failed", "error", err)
		return a.renderAdminDashboard(c, "Reindex failed: "+err.Error())
	}
	return a.renderAdminDashboard(c, fmt.Sprintf("Indexed %d entries.", n))
}

func (a *App) renderAdminDashboard(c echo.Context, msg string) error {
	entries, err := a.Store.ListAllEntries()
	if err != nil {
		return err
	}
	return Render(c, a.Views.AdminDashboard(entries, msg, CsrfToken(c)))
}
