package folio

import (
	"database/sql"
	"sync"
	"time"

	"github.com/eringen/folio/content"
	"github.com/eringen/folio/listing"
)

// ErrNotFound is returned when a requested entry does not exist.
var ErrNotFound = sql.ErrNoRows

// EntryCache is an in-memory cache of published entries and their tag
// universes, per kind, with a TTL.
type EntryCache struct {
	mu      sync.RWMutex
	entries map[content.Kind][]content.Entry
	tags    map[content.Kind][]string
	fetched time.Time
	ttl     time.Duration
	store   *Store
}

// NewEntryCache creates an EntryCache backed by the given Store.
func NewEntryCache(s *Store, ttl time.Duration) *EntryCache {
	return &EntryCache{store: s, ttl: ttl}
}

func (c *EntryCache) valid() bool {
	return c.entries != nil && time.Since(c.fetched) < c.ttl
}

// Invalidate clears the cache so the next read triggers a fresh load.
func (c *EntryCache) Invalidate() {
	c.mu.Lock()
	c.entries = nil
	c.tags = nil
	c.mu.Unlock()
}

// load re-reads every kind and derives each tag universe once per load.
func (c *EntryCache) load() error {
	if c.valid() {
		return nil
	}
	entries := make(map[content.Kind][]content.Entry, len(content.Kinds))
	tags := make(map[content.Kind][]string, len(content.Kinds))
	for _, k := range content.Kinds {
		es, err := c.store.ListEntries(k)
		if err != nil {
			return err
		}
		entries[k] = es
		tags[k] = listing.TagUniverse(es)
	}
	c.entries = entries
	c.tags = tags
	c.fetched = time.Now()
	return nil
}

// ensureLoaded returns cached entries and tags after ensuring the cache is fresh.
// It tries a read lock first; only takes a write lock if a reload is needed.
func (c *EntryCache) ensureLoaded() (map[content.Kind][]content.Entry, map[content.Kind][]string, error) {
	c.mu.RLock()
	if c.valid() {
		entries, tags := c.entries, c.tags
		c.mu.RUnlock()
		return entries, tags, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.load(); err != nil {
		return nil, nil, err
	}
	return c.entries, c.tags, nil
}

// ListEntries returns the published entries of kind in ingestion order.
// Callers must not modify the returned slice.
func (c *EntryCache) ListEntries(kind content.Kind) ([]content.Entry, error) {
	entries, _, err := c.ensureLoaded()
	if err != nil {
		return nil, err
	}
	return entries[kind], nil
}

// ListTags returns the tag universe of kind.
func (c *EntryCache) ListTags(kind content.Kind) ([]string, error) {
	_, tags, err := c.ensureLoaded()
	if err != nil {
		return nil, err
	}
	return tags[kind], nil
}

// GetEntry returns a single published entry from the cache.
func (c *EntryCache) GetEntry(kind content.Kind, slug string) (content.Entry, error) {
	entries, _, err := c.ensureLoaded()
	if err != nil {
		return content.Entry{}, err
	}
	for _, e := range entries[kind] {
		if e.Slug == slug {
			return e, nil
		}
	}
	return content.Entry{}, ErrNotFound
}
