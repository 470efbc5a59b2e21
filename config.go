package folio

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// SiteConfig holds all configuration for a folio site.
type SiteConfig struct {
	Name        string `env:"SITE_NAME" envDefault:"Folio"`
	URL         string `env:"SITE_URL" envDefault:"http://localhost:3000"`
	Description string `env:"SITE_DESCRIPTION"`
	Author      string `env:"SITE_AUTHOR"`

	Addr         string `env:"ADDR" envDefault:":3000"`
	DatabasePath string `env:"DATABASE_PATH" envDefault:"data/folio.db"`
	ContentDir   string `env:"CONTENT_DIR" envDefault:"content"`

	AdminPassword string `env:"ADMIN_PASSWORD"`       // required by Start
	SessionSecret string `env:"ADMIN_SESSION_SECRET"` // required by Start
	CookieSecure  bool   `env:"COOKIE_SECURE"`

	CacheTTL time.Duration `env:"CACHE_TTL" envDefault:"5m"`
	LogLevel string        `env:"LOG_LEVEL" envDefault:"info"`
}

// LoadConfig reads the given .env files (missing ones are skipped, existing
// environment variables win) and parses SiteConfig from the environment.
func LoadConfig(envFiles ...string) (SiteConfig, error) {
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return SiteConfig{}, fmt.Errorf("folio: load %s: %w", f, err)
		}
	}
	var cfg SiteConfig
	if err := env.Parse(&cfg); err != nil {
		return SiteConfig{}, fmt.Errorf("folio: parse env: %w", err)
	}
	cfg.setDefaults()
	return cfg, nil
}

func (c *SiteConfig) setDefaults() {
	if c.Name == "" {
		c.Name = "Folio"
	}
	if c.URL == "" {
		c.URL = "http://localhost:3000"
	}
	c.URL = strings.TrimSuffix(c.URL, "/")
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.DatabasePath == "" {
		c.DatabasePath = "data/folio.db"
	}
	if c.ContentDir == "" {
		c.ContentDir = "content"
	}
	if c.CacheTTL == 0 {
		c.CacheTTL = 5 * time.Minute
	}
}

// Option configures additional App behavior.
type Option func(*App)

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback receives the App after the built-in routes are registered.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}

// WithStaticDir sets the directory for user-owned static assets (default "public").
func WithStaticDir(dir string) Option {
	return func(a *App) {
		a.staticDir = dir
	}
}

// WithLogger replaces the default logger.
func WithLogger(l *slog.Logger) Option {
	return func(a *App) {
		a.Logger = l
	}
}
