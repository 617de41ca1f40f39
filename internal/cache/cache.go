// Package cache records the digest of every generated theme file so that
// unchanged outputs can be skipped on the next build.
package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/zeebo/xxh3"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

const schema = `
	CREATE TABLE IF NOT EXISTS outputs (
		path TEXT PRIMARY KEY,
		digest TEXT NOT NULL,
		size INTEGER NOT NULL,
		built_at TEXT NOT NULL
	);
`

// Entry is the recorded state of one output file.
type Entry struct {
	Path    string
	Digest  string
	Size    int64
	BuiltAt time.Time
}

// Cache is a SQLite-backed table of output digests.
type Cache struct {
	db  *sql.DB
	now func() time.Time
}

// Digest returns the content digest stored for a file body.
func Digest(data []byte) string {
	return fmt.Sprintf("%016x", xxh3.Hash(data))
}

// Open opens or creates the cache database at path.
func Open(ctx context.Context, path string) (*Cache, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return nil, cacheError("open", errors.New("empty cache path"))
	}
	//nolint:gosec // G301: cache lives next to project config
	if err := os.MkdirAll(filepath.Dir(trimmed), 0755); err != nil {
		return nil, cacheError("create cache directory", err)
	}

	db, err := sql.Open("sqlite", buildDSN(trimmed))
	if err != nil {
		return nil, cacheError("open sqlite db", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, cacheError("ping sqlite db", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, cacheError("create schema", err)
	}
	return &Cache{db: db, now: time.Now}, nil
}

// buildDSN creates a read-write WAL DSN for the given path.
func buildDSN(dbPath string) string {
	u := url.URL{
		Scheme: "file",
		Path:   filepath.ToSlash(dbPath),
	}
	q := url.Values{}
	q.Set("mode", "rwc")
	q.Add("_pragma", "journal_mode(WAL)")
	q.Add("_pragma", "busy_timeout(3000)")
	u.RawQuery = q.Encode()
	return u.String()
}

// Lookup returns the recorded entry for path.
func (c *Cache) Lookup(ctx context.Context, path string) (Entry, bool, error) {
	row := c.db.QueryRowContext(ctx,
		`SELECT path, digest, size, built_at FROM outputs WHERE path = ?`, path)

	var (
		e       Entry
		builtAt string
	)
	if err := row.Scan(&e.Path, &e.Digest, &e.Size, &builtAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Entry{}, false, nil
		}
		return Entry{}, false, cacheError("lookup "+path, err)
	}
	t, err := time.Parse(time.RFC3339Nano, builtAt)
	if err != nil {
		return Entry{}, false, cacheError("parse built_at for "+path, err)
	}
	e.BuiltAt = t
	return e, true, nil
}

// Record stores the digest and size of a freshly written file.
func (c *Cache) Record(ctx context.Context, path string, data []byte) (Entry, error) {
	e := Entry{
		Path:    path,
		Digest:  Digest(data),
		Size:    int64(len(data)),
		BuiltAt: c.now().UTC(),
	}
	_, err := c.db.ExecContext(ctx, `
		INSERT INTO outputs (path, digest, size, built_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(path) DO UPDATE SET
			digest = excluded.digest,
			size = excluded.size,
			built_at = excluded.built_at
	`, e.Path, e.Digest, e.Size, e.BuiltAt.Format(time.RFC3339Nano))
	if err != nil {
		return Entry{}, cacheError("record "+path, err)
	}
	return e, nil
}

// Fresh reports whether path is recorded with the digest of data and the
// file still exists on disk.
func (c *Cache) Fresh(ctx context.Context, path string, data []byte) (bool, error) {
	e, ok, err := c.Lookup(ctx, path)
	if err != nil || !ok {
		return false, err
	}
	if e.Digest != Digest(data) {
		return false, nil
	}
	if _, err := os.Stat(path); err != nil {
		return false, nil
	}
	return true, nil
}

// Entries lists every recorded output ordered by path.
func (c *Cache) Entries(ctx context.Context) ([]Entry, error) {
	rows, err := c.db.QueryContext(ctx,
		`SELECT path, digest, size, built_at FROM outputs ORDER BY path`)
	if err != nil {
		return nil, cacheError("list outputs", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var entries []Entry
	for rows.Next() {
		var (
			e       Entry
			builtAt string
		)
		if err := rows.Scan(&e.Path, &e.Digest, &e.Size, &builtAt); err != nil {
			return nil, cacheError("scan output", err)
		}
		e.BuiltAt, _ = time.Parse(time.RFC3339Nano, builtAt)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, cacheError("list outputs", err)
	}
	return entries, nil
}

// Forget drops the record for path.
func (c *Cache) Forget(ctx context.Context, path string) error {
	if _, err := c.db.ExecContext(ctx, `DELETE FROM outputs WHERE path = ?`, path); err != nil {
		return cacheError("forget "+path, err)
	}
	return nil
}

// Close closes the database.
func (c *Cache) Close() error {
	if c == nil || c.db == nil {
		return nil
	}
	return c.db.Close()
}
