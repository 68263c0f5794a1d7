// Package cache provides TTL-based file caching for fetched pages so
// repeated verify runs do not hammer the published catalog site.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Entry is a cached HTTP response.
type Entry struct {
	Body       []byte    `json:"body"`
	ETag       string    `json:"etag,omitempty"`
	LastMod    string    `json:"last_modified,omitempty"`
	StatusCode int       `json:"status_code"`
	CachedAt   time.Time `json:"cached_at"`
}

// FileCache stores one JSON file per URL under a directory.
type FileCache struct {
	dir string
	ttl time.Duration
}

// New creates the cache directory if needed.
func New(dir string, ttl time.Duration) (*FileCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating cache dir: %w", err)
	}
	return &FileCache{dir: dir, ttl: ttl}, nil
}

// Get returns the entry for key and whether it is still fresh. An expired
// entry is returned with fresh=false so callers can revalidate with
// ETag/If-Modified-Since instead of refetching the full body.
func (c *FileCache) Get(key string) (*Entry, bool) {
	data, err := os.ReadFile(c.path(key))
	if err != nil {
		return nil, false
	}

	var entry Entry
	if err := json.Unmarshal(data, &entry); err != nil {
		os.Remove(c.path(key))
		return nil, false
	}

	return &entry, time.Since(entry.CachedAt) <= c.ttl
}

// Set stores an entry, stamping CachedAt.
func (c *FileCache) Set(key string, entry *Entry) error {
	entry.CachedAt = time.Now()
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("marshaling cache entry: %w", err)
	}
	return os.WriteFile(c.path(key), data, 0o644)
}

func (c *FileCache) path(key string) string {
	h := sha256.Sum256([]byte(key))
	return filepath.Join(c.dir, hex.EncodeToString(h[:]))
}
