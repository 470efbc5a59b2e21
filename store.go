package folio

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/eringen/folio/content"
	"github.com/eringen/folio/listing"
)

// Store wraps a SQLite database holding the content index built from markdown.
type Store struct {
	db *sql.DB
}

// NewStore opens (or creates) the SQLite database at path, ensures the data
// directory exists, and runs schema migrations.
func NewStore(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// WAL lets the server read while `folio index` rewrites the index.
	// busy_timeout makes writers wait instead of failing with SQLITE_BUSY.
	if _, err := db.Exec(`
		PRAGMA journal_mode=WAL;
		PRAGMA busy_timeout=5000;
		PRAGMA synchronous=NORMAL;
		PRAGMA cache_size=-8000;
	`); err != nil {
		db.Close()
		return nil, err
	}
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(4)
	s := &Store{db: db}
	if err := s.ensureSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) ensureSchema() error {
	_, err := s.db.Exec(`
CREATE TABLE IF NOT EXISTS entries (
    id TEXT PRIMARY KEY,
    position INTEGER NOT NULL,
    kind TEXT NOT NULL,
    slug TEXT NOT NULL,
    title TEXT NOT NULL,
    date TEXT NOT NULL,
    tags TEXT NOT NULL,
    summary TEXT NOT NULL,
    body TEXT NOT NULL,
    html TEXT NOT NULL,
    github TEXT NOT NULL,
    website TEXT NOT NULL,
    path TEXT NOT NULL,
    published INTEGER NOT NULL DEFAULT 1,
    UNIQUE (kind, slug)
);
CREATE INDEX IF NOT EXISTS entries_kind_position ON entries (kind, position);
`)
	return err
}

const entryColumns = `id, kind, slug, title, date, tags, summary, body, html, github, website, path, published`

// ReplaceAll swaps the whole index for entries in one transaction.
// The slice order is kept as the ingestion order.
func (s *Store) ReplaceAll(entries []content.Entry) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM entries`); err != nil {
		return err
	}
	stmt, err := tx.Prepare(`INSERT INTO entries (position, ` + entryColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, e := range entries {
		published := 0
		if e.Published {
			published = 1
		}
		if _, err := stmt.Exec(i, e.ID, string(e.Kind), e.Slug, e.Title, e.Date, FormatTags(e.Tags),
			e.Summary, e.Body, e.HTML, e.GitHub, e.Website, e.Path, published); err != nil {
			return fmt.Errorf("insert %s/%s: %w", e.Kind, e.Slug, err)
		}
	}
	return tx.Commit()
}

// ListEntries returns published entries of kind in ingestion order.
func (s *Store) ListEntries(kind content.Kind) ([]content.Entry, error) {
	return s.query(`SELECT `+entryColumns+` FROM entries WHERE kind = ? AND published = 1 ORDER BY position`, string(kind))
}

// ListAllEntries returns every entry (published and drafts) grouped by kind.
func (s *Store) ListAllEntries() ([]content.Entry, error) {
	return s.query(`SELECT ` + entryColumns + ` FROM entries ORDER BY kind, position`)
}

// ListTags returns the tag universe of the published entries of kind.
func (s *Store) ListTags(kind content.Kind) ([]string, error) {
	entries, err := s.ListEntries(kind)
	if err != nil {
		return nil, err
	}
	return listing.TagUniverse(entries), nil
}

// GetEntry returns a single published entry. It returns sql.ErrNoRows when
// no such entry exists.
func (s *Store) GetEntry(kind content.Kind, slug string) (content.Entry, error) {
	row := s.db.QueryRow(`SELECT `+entryColumns+` FROM entries WHERE kind = ? AND slug = ? AND published = 1`, string(kind), slug)
	return scanEntry(row)
}

func (s *Store) query(q string, args ...any) ([]content.Entry, error) {
	rows, err := s.db.Query(q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []content.Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(sc scanner) (content.Entry, error) {
	var (
		e         content.Entry
		kind      string
		tags      string
		published int
	)
	if err := sc.Scan(&e.ID, &kind, &e.Slug, &e.Title, &e.Date, &tags, &e.Summary,
		&e.Body, &e.HTML, &e.GitHub, &e.Website, &e.Path, &published); err != nil {
		return content.Entry{}, err
	}
	e.Kind = content.Kind(kind)
	e.Tags = ParseTags(tags)
	e.Link = content.LinkFor(e.Kind, e.Slug)
	e.Published = published == 1
	return e, nil
}

// FormatTags encodes tags as a comma-delimited string with leading and
// trailing commas (e.g. ",go,web,"). Each tag is normalized first so no
// comma can leak into a value.
func FormatTags(tags []string) string {
	if len(tags) == 0 {
		return ""
	}
	norm := make([]string, len(tags))
	for i, t := range tags {
		norm[i] = content.NormalizeTag(t)
	}
	return "," + strings.Join(norm, ",") + ","
}

// ParseTags splits a string produced by FormatTags back into a slice.
func ParseTags(tagString string) []string {
	tagString = strings.TrimSuffix(strings.TrimPrefix(tagString, ","), ",")
	if tagString == "" {
		return nil
	}
	parts := strings.Split(tagString, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
