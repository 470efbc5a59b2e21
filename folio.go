// Package folio is a portfolio and blog engine built with Go, Echo, and templ.
// Markdown content is indexed into SQLite and served as a home page, a
// filterable blog listing, post pages, a projects page, and standalone pages,
// plus RSS, a sitemap, and a small admin for rebuilding the index.
//
// Users provide their own templ templates via the ViewFuncs struct,
// and folio handles the handler logic, middleware, and storage.
package folio

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"time"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"

	"github.com/eringen/folio/content"
)

// ViewFuncs holds user-provided templ components that the framework calls
// when rendering pages. This is the inversion-of-control mechanism that
// lets users own and customize all templates.
type ViewFuncs struct {
	Home           func(page HomePage) templ.Component
	Listing        func(page ListingPage) templ.Component
	ListingPartial func(page ListingPage) templ.Component
	Entry          func(page EntryPage) templ.Component
	AdminLogin     func(showError bool, csrfToken string) templ.Component
	AdminDashboard func(entries []content.Entry, message string, csrfToken string) templ.Component
	NotFound       func() templ.Component
	ServerError    func() templ.Component
}

// App is the central folio application. It wires together the store,
// cache, loader, handlers, middleware, and user-provided templates.
type App struct {
	Config SiteConfig
	Echo   *echo.Echo
	Store  *Store
	Cache  *EntryCache
	Views  ViewFuncs
	Logger *slog.Logger

	loader       *content.Loader
	loginLimiter *LoginLimiter
	customRoutes []func(*App)
	staticDir    string
}

// New creates a new folio App with the given configuration and view functions.
func New(cfg SiteConfig, views ViewFuncs, opts ...Option) *App {
	cfg.setDefaults()

	a := &App{
		Config:    cfg,
		Echo:      echo.New(),
		Views:     views,
		Logger:    slog.Default(),
		staticDir: "public",
	}
	a.Echo.HideBanner = true

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Setup opens the store, builds the cache, and registers middleware and
// routes. Start calls it; tests call it directly.
func (a *App) Setup() error {
	if a.Config.AdminPassword == "" {
		return fmt.Errorf("folio: AdminPassword is required")
	}
	if a.Config.SessionSecret == "" {
		return fmt.Errorf("folio: SessionSecret is required")
	}

	store, err := NewStore(a.Config.DatabasePath)
	if err != nil {
		return fmt.Errorf("folio: init store: %w", err)
	}
	a.Store = store
	a.Cache = NewEntryCache(a.Store, a.Config.CacheTTL)
	a.loader = content.NewLoader(a.Logger)
	a.loginLimiter = NewLoginLimiter(5, time.Minute)

	a.setupMiddleware()
	a.setupRoutes()
	for _, fn := range a.customRoutes {
		fn(a)
	}
	return nil
}

// Start sets the app up, indexes the content directory, and serves until
// the server is shut down.
func (a *App) Start(ctx context.Context) error {
	if err := a.Setup(); err != nil {
		return err
	}
	if _, err := a.Reindex(ctx); err != nil {
		return err
	}
	a.Logger.Info("listening", "addr", a.Config.Addr, "url", a.Config.URL)
	if err := a.Echo.Start(a.Config.Addr); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server.
func (a *App) Shutdown(ctx context.Context) error {
	return a.Echo.Shutdown(ctx)
}

func (a *App) setupRoutes() {
	e := a.Echo

	// Embedded default assets, then the user's static assets.
	embeddedFS, _ := fs.Sub(EmbeddedAssets, "embedded")
	embeddedHandler := http.FileServer(http.FS(embeddedFS))
	e.GET("/public/folio.css", echo.WrapHandler(http.StripPrefix("/public/", embeddedHandler)))
	e.GET("/public/folio.js", echo.WrapHandler(http.StripPrefix("/public/", embeddedHandler)))
	e.Static("/public", a.staticDir)
	e.GET("/favicon.svg", a.handleFavicon)
	e.GET("/robots.txt", a.handleRobots)

	// Public routes
	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/feed.xml", a.handleFeed)
	e.GET("/", a.handleHome)
	e.GET("/blog/", a.handleBlog)
	e.GET("/blog/:slug/", a.handlePost)
	e.GET("/projects/", a.handleProjects)
	e.GET("/:slug/", a.handlePage)

	// JSON projections of the listings
	e.GET("/api/blog", a.handleListingAPI(content.KindBlog, "/blog/"))
	e.GET("/api/projects", a.handleListingAPI(content.KindProject, "/projects/"))

	// Admin routes
	e.GET("/admin/", a.handleAdmin)
	e.POST("/admin/login/", a.handleAdminLogin)
	e.POST("/admin/logout/", handleAdminLogout)
	e.POST("/admin/reindex/", a.handleAdminReindex)
}

// Close cleans up resources. Call this when the app is shutting down.
func (a *App) Close() error {
	if a.loginLimiter != nil {
		a.loginLimiter.Stop()
	}
	if a.Store != nil {
		return a.Store.Close()
	}
	return nil
}
