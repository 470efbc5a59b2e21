package folio

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Name != "Folio" || cfg.Addr != ":3000" || cfg.ContentDir != "content" {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if cfg.CacheTTL != 5*time.Minute {
		t.Errorf("CacheTTL = %v", cfg.CacheTTL)
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("SITE_NAME", "My Site")
	t.Setenv("SITE_URL", "https://example.com/")
	t.Setenv("CACHE_TTL", "30s")
	t.Setenv("COOKIE_SECURE", "true")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Name != "My Site" {
		t.Errorf("Name = %q", cfg.Name)
	}
	if cfg.URL != "https://example.com" {
		t.Errorf("URL = %q, want trailing slash trimmed", cfg.URL)
	}
	if cfg.CacheTTL != 30*time.Second || !cfg.CookieSecure {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestLoadConfigDotenv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("CONTENT_DIR=posts\nLOG_LEVEL=debug\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	// godotenv sets process env; register the keys so they are restored.
	t.Setenv("CONTENT_DIR", "")
	t.Setenv("LOG_LEVEL", "")
	os.Unsetenv("CONTENT_DIR")
	os.Unsetenv("LOG_LEVEL")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.ContentDir != "posts" || cfg.LogLevel != "debug" {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestLoadConfigBadValue(t *testing.T) {
	t.Setenv("CACHE_TTL", "soon")
	if _, err := LoadConfig(); err == nil {
		t.Error("expected a parse error")
	}
}
