// Package cache memoizes checked-cycle results keyed by a digest of the
// source text, so that repeated runs over an unchanged file skip
// re-scanning, re-parsing, and re-inferring it. Backed by SQLite
// (modernc.org/sqlite, a pure-Go driver, so the CLI stays a single
// static binary).
package cache

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// Cache wraps a SQLite-backed key/value store of source digest to
// rendered inference result.
type Cache struct {
	db *sql.DB
}

// Open creates (if necessary) and opens the cache database at path.
func Open(path string) (*Cache, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("cache: open %s: %w", path, err)
	}
	const schema = `
CREATE TABLE IF NOT EXISTS inference_cache (
	digest     TEXT PRIMARY KEY,
	result     TEXT NOT NULL,
	cached_at  TEXT NOT NULL
);`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("cache: migrate: %w", err)
	}
	return &Cache{db: db}, nil
}

// Close releases the underlying database handle.
func (c *Cache) Close() error {
	return c.db.Close()
}

// Digest returns the cache key for a piece of source text.
func Digest(source string) string {
	sum := sha256.Sum256([]byte(source))
	return hex.EncodeToString(sum[:])
}

// Lookup returns the cached rendered result for a digest, if present.
func (c *Cache) Lookup(digest string) (string, bool, error) {
	var result string
	err := c.db.QueryRow(`SELECT result FROM inference_cache WHERE digest = ?`, digest).Scan(&result)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("cache: lookup %s: %w", digest, err)
	}
	return result, true, nil
}

// Store records a rendered result under digest, overwriting any prior
// entry for the same source.
func (c *Cache) Store(digest, result string) error {
	_, err := c.db.Exec(
		`INSERT INTO inference_cache (digest, result, cached_at) VALUES (?, ?, ?)
		 ON CONFLICT(digest) DO UPDATE SET result = excluded.result, cached_at = excluded.cached_at`,
		digest, result, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("cache: store %s: %w", digest, err)
	}
	return nil
}
