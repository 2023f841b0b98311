// Package cache stores rendered artifacts between runs.
//
// The CLI renders recursion trees through Graphviz, which takes noticeably
// longer than computing the tree. Rendered SVGs are kept in a [FileCache]
// under the user cache directory and looked up by a key derived from the
// render inputs ([Keyer]). [NullCache] disables caching.
//
// Wrap a cache with [Instrument] to report hits, misses and writes to the
// hooks registered in the observability package.
package cache

import (
	"context"
	"time"

	"github.com/matzehuels/hanoi/pkg/observability"
)

// Cache is a byte store with per-entry expiry.
type Cache interface {
	// Get returns the stored value and whether it was found. Expired or
	// unreadable entries count as misses.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores data under key. A ttl <= 0 never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	// Delete removes key; deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// Close releases resources held by the cache.
	Close() error
}

// DefaultTTL keeps rendered trees for a week.
const DefaultTTL = 7 * 24 * time.Hour

// TreeKeyOpts are the inputs that change a rendered recursion tree.
type TreeKeyOpts struct {
	Format  string `json:"format"`
	Colored bool   `json:"colored"`
}

// Keyer derives cache keys.
type Keyer interface {
	// TreeKey identifies the rendered recursion tree of an n-disk tower.
	TreeKey(n int, opts TreeKeyOpts) string
}

// DefaultKeyer versions keys so a change in tree layout can invalidate old
// entries by bumping the version.
type DefaultKeyer struct {
	Version int
}

// NewDefaultKeyer returns the keyer used by the CLI.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{Version: 1}
}

// TreeKey implements [Keyer].
func (k DefaultKeyer) TreeKey(n int, opts TreeKeyOpts) string {
	return hashKey("tree", k.Version, n, opts)
}

type instrumented struct {
	Cache
}

// Instrument reports cache traffic through [observability.Cache].
func Instrument(c Cache) Cache {
	return instrumented{Cache: c}
}

func (c instrumented) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, ok, err := c.Cache.Get(ctx, key)
	if err == nil {
		if ok {
			observability.Cache().OnCacheHit(ctx, key)
		} else {
			observability.Cache().OnCacheMiss(ctx, key)
		}
	}
	return data, ok, err
}

func (c instrumented) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	if err := c.Cache.Set(ctx, key, data, ttl); err != nil {
		return err
	}
	observability.Cache().OnCacheSet(ctx, key, len(data))
	return nil
}
