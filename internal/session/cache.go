// Package session memoizes parsed uploads for the lifetime of a view
// session, keyed on file content identity.
package session

import (
	"crypto/sha256"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/spendview-dev/spendview/internal/importer"
)

const (
	defaultExpiration = 30 * time.Minute
	cleanupInterval   = 10 * time.Minute
)

// Cache wraps a loader registry with content-addressed memoization: the
// same upload reparsed across re-renders hits the cache, and any change
// to the underlying bytes changes the key.
type Cache struct {
	reg   *importer.Registry
	store *gocache.Cache
}

// New creates a Cache over the given registry.
func New(reg *importer.Registry) *Cache {
	return &Cache{
		reg:   reg,
		store: gocache.New(defaultExpiration, cleanupInterval),
	}
}

// contentKey derives the cache key from the file bytes plus the
// extension, since the extension selects the parser.
func contentKey(name string, data []byte) string {
	return fmt.Sprintf("%s:%x", strings.ToLower(filepath.Ext(name)), sha256.Sum256(data))
}

// Rows returns the parsed raw rows for a file's content, parsing at most
// once per distinct content.
func (c *Cache) Rows(name string, data []byte) ([][]string, error) {
	key := contentKey(name, data)
	if v, ok := c.store.Get(key); ok {
		return v.([][]string), nil
	}

	rows, err := c.reg.ReadRowsBytes(name, data)
	if err != nil {
		return nil, err
	}
	c.store.Set(key, rows, gocache.DefaultExpiration)
	return rows, nil
}
