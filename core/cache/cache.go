// Package cache memoizes a parse result by the content hash of its source
// bytes. This is pure memoization, not incremental re-parsing: a cache hit
// returns the exact same FileScope and diagnostics a fresh parse would have
// produced, and any byte change anywhere in the source invalidates the
// whole entry rather than triggering a partial re-parse.
package cache

import (
	"encoding/hex"
	"sync"

	"github.com/avian-lovelace/compiler/core/ast"
	"github.com/avian-lovelace/compiler/core/diag"
	"golang.org/x/crypto/sha3"
)

// Key is the content-addressed identity of a source file: the hex-encoded
// SHA3-256 digest of its bytes plus file name (so two files with identical
// contents but different names that matter for diagnostic ranges don't
// collide).
type Key string

// Digest computes the Key for a given file name and source bytes.
func Digest(file string, src []byte) Key {
	h := sha3.New256()
	h.Write([]byte(file))
	h.Write([]byte{0})
	h.Write(src)
	return Key(hex.EncodeToString(h.Sum(nil)))
}

type entry struct {
	scope *ast.FileScope
	diags []diag.Diagnostic
}

// Cache is a concurrency-safe, in-memory store of parse results keyed by
// Digest. It never evicts on its own; callers bound its size by bounding
// the number of distinct Keys they ever compute.
type Cache struct {
	mu      sync.RWMutex
	entries map[Key]entry
}

// New returns an empty Cache.
func New() *Cache {
	return &Cache{entries: make(map[Key]entry)}
}

// Get returns a previously stored parse result for key, if any.
func (c *Cache) Get(key Key) (*ast.FileScope, []diag.Diagnostic, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.entries[key]
	if !ok {
		return nil, nil, false
	}
	return e.scope, e.diags, true
}

// Put stores a parse result under key, overwriting any prior entry.
func (c *Cache) Put(key Key, scope *ast.FileScope, diags []diag.Diagnostic) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = entry{scope: scope, diags: diags}
}

// Len reports the number of distinct entries currently stored.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
