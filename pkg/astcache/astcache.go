// Package astcache stores serialized ASTs in a SQLite database, keyed by a
// content hash of the source text, so an embedder can skip reparsing
// unchanged scripts.
package astcache

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"sync"

	_ "modernc.org/sqlite"

	"github.com/perchjs/perch/pkg/ast"
)

// ErrNotFound indicates the source has no cached tree.
var ErrNotFound = errors.New("astcache: not found")

// Cache is a SQLite-backed AST store. Safe for concurrent use by a single
// process.
type Cache struct {
	db     *sql.DB
	dbPath string
	mu     sync.Mutex
}

// Open opens or creates the cache database at dbPath.
func Open(dbPath string) (*Cache, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// Set busy timeout for concurrent access
	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting busy timeout: %w", err)
	}

	// Create table if needed
	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS asts (
		hash TEXT PRIMARY KEY,
		src_len INTEGER NOT NULL,
		tree BLOB NOT NULL
	)`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("creating table: %w", err)
	}

	return &Cache{db: db, dbPath: dbPath}, nil
}

// Close closes the database connection.
func (c *Cache) Close() error {
	if c.db != nil {
		return c.db.Close()
	}
	return nil
}

// Key returns the cache key of a source text.
func Key(source string) string {
	sum := sha256.Sum256([]byte(source))
	return hex.EncodeToString(sum[:])
}

// Put stores the serialized tree for source, replacing any earlier entry.
func (c *Cache) Put(source string, a *ast.AST) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	_, err := c.db.Exec(
		"INSERT OR REPLACE INTO asts (hash, src_len, tree) VALUES (?, ?, ?)",
		Key(source), len(source), a.Bytes(),
	)
	if err != nil {
		return fmt.Errorf("saving tree: %w", err)
	}
	return nil
}

// Get loads the cached tree for source. Returns ErrNotFound when the source
// has never been cached.
func (c *Cache) Get(source string) (*ast.AST, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var tree []byte
	err := c.db.QueryRow(
		"SELECT tree FROM asts WHERE hash = ?", Key(source),
	).Scan(&tree)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("loading tree: %w", err)
	}
	return ast.FromBytes(tree), nil
}

// Delete removes the cached tree for source, if any.
func (c *Cache) Delete(source string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, err := c.db.Exec("DELETE FROM asts WHERE hash = ?", Key(source)); err != nil {
		return fmt.Errorf("deleting tree: %w", err)
	}
	return nil
}

// Len returns the number of cached trees.
func (c *Cache) Len() (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var n int
	if err := c.db.QueryRow("SELECT COUNT(*) FROM asts").Scan(&n); err != nil {
		return 0, fmt.Errorf("counting trees: %w", err)
	}
	return n, nil
}
