// Package state caches per-document content hashes between generation runs
// so unchanged documents can skip their write.
package state

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// Cache is a SQLite-backed record of what the last run produced.
type Cache struct {
	db *sql.DB
	mu sync.RWMutex
}

// Open creates or opens the state database.
// Use ":memory:" for an in-memory database, or a file path for persistent storage.
func Open(dbPath string) (*Cache, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	cache := &Cache{db: db}
	if err := cache.initialize(); err != nil {
		_ = db.Close() // Best effort cleanup on initialization error
		return nil, fmt.Errorf("initialize schema: %w", err)
	}

	return cache, nil
}

func (c *Cache) initialize() error {
	schema := `
	CREATE TABLE IF NOT EXISTS pages (
		slug TEXT PRIMARY KEY,
		kind TEXT NOT NULL,
		content_hash TEXT NOT NULL,
		run_id TEXT NOT NULL,
		generated_at INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_pages_kind ON pages(kind);
	CREATE INDEX IF NOT EXISTS idx_pages_run_id ON pages(run_id);
	`
	_, err := c.db.Exec(schema)
	return err
}

// Hash computes the content hash stored and compared by the cache.
func Hash(content string) string {
	sum := sha256.Sum256([]byte(content))
	return hex.EncodeToString(sum[:])
}

// Unchanged reports whether the slug was last generated from the same hash.
func (c *Cache) Unchanged(ctx context.Context, slug, contentHash string) (bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var stored string
	err := c.db.QueryRowContext(ctx,
		"SELECT content_hash FROM pages WHERE slug = ?", slug,
	).Scan(&stored)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("query page state: %w", err)
	}

	return stored == contentHash, nil
}

// Record stores the hash a slug was generated from.
func (c *Cache) Record(ctx context.Context, slug, kind, contentHash, runID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	_, err := c.db.ExecContext(ctx,
		`INSERT INTO pages (slug, kind, content_hash, run_id, generated_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(slug) DO UPDATE SET
		 	kind = excluded.kind,
		 	content_hash = excluded.content_hash,
		 	run_id = excluded.run_id,
		 	generated_at = excluded.generated_at`,
		slug, kind, contentHash, runID, time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("record page state: %w", err)
	}

	return nil
}

// CountByKind returns how many pages of one kind the cache knows about.
func (c *Cache) CountByKind(ctx context.Context, kind string) (int, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var n int
	err := c.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM pages WHERE kind = ?", kind,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count pages: %w", err)
	}
	return n, nil
}

// Close closes the database connection.
func (c *Cache) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.db.Close()
}
