package driver

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"yapl/internal/project"
	"yapl/internal/source"
)

// Current schema version - increment when the FileSummary layout changes.
const diskCacheSchemaVersion uint16 = 1

// DiskCache stores file summaries on disk keyed by content hash, with an
// in-memory layer in front. Thread-safe for concurrent access.
type DiskCache struct {
	mu   sync.RWMutex
	dir  string
	salt project.Digest
	mem  *memoryCache
}

// OpenDiskCache opens the cache in dir, creating it if needed. An empty dir
// selects $XDG_CACHE_HOME/yapl (or ~/.cache/yapl). salt is mixed into every
// key, so summaries written by another tool version never match.
func OpenDiskCache(dir, salt string) (*DiskCache, error) {
	if dir == "" {
		base := os.Getenv("XDG_CACHE_HOME")
		if base == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return nil, err
			}
			base = filepath.Join(home, ".cache")
		}
		dir = filepath.Join(base, "yapl")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("cache: %w", err)
	}
	return &DiskCache{
		dir:  dir,
		salt: project.StringDigest(fmt.Sprintf("%s/schema-%d", salt, diskCacheSchemaVersion)),
		mem:  newMemoryCache(64),
	}, nil
}

// Dir returns the cache directory.
func (c *DiskCache) Dir() string {
	return c.dir
}

// Key derives the cache key of file from its content hash.
func (c *DiskCache) Key(file *source.File) project.Digest {
	return project.Combine(project.Digest(file.Hash), c.salt)
}

func (c *DiskCache) pathFor(key project.Digest) string {
	hexKey := hex.EncodeToString(key[:])
	return filepath.Join(c.dir, "files", hexKey[:2], hexKey+".mp")
}

// Put serializes and writes a summary to the disk cache.
func (c *DiskCache) Put(key project.Digest, sum *FileSummary) error {
	if c == nil || sum == nil {
		return nil
	}
	c.mem.Put(key, sum)

	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	if err := msgpack.NewEncoder(f).Encode(sum); err != nil {
		_ = f.Close()
		_ = os.Remove(f.Name())
		return err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(f.Name())
		return err
	}
	// atomic replace
	return os.Rename(f.Name(), p)
}

// Get reads and deserializes a summary. A summary of another schema is a miss.
func (c *DiskCache) Get(key project.Digest) (*FileSummary, bool, error) {
	if c == nil {
		return nil, false, nil
	}
	if sum, ok := c.mem.Get(key); ok {
		return sum, true, nil
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	data, err := os.ReadFile(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, err
	}
	var sum FileSummary
	if err := msgpack.Unmarshal(data, &sum); err != nil {
		return nil, false, fmt.Errorf("cache entry %x: %w", key[:4], err)
	}
	if sum.Schema != diskCacheSchemaVersion {
		return nil, false, nil
	}
	c.mem.Put(key, &sum)
	return &sum, true, nil
}

// DropAll invalidates the cache, useful after format changes.
func (c *DiskCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	c.mem.Clear()
	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		return err
	}
	return os.RemoveAll(old)
}
