package data

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"sync"
	"time"
)

type cacheEntry[V any] struct {
	value     V
	expiresAt time.Time
}

// TTLCache is an in-memory cache whose entries expire after a fixed TTL.
// A background goroutine sweeps expired entries until Close is called.
//
// A nil *TTLCache is valid and caches nothing.
type TTLCache[V any] struct {
	mu    sync.RWMutex
	store map[string]*cacheEntry[V]
	ttl   time.Duration
	now   func() time.Time

	stop      chan struct{}
	closeOnce sync.Once
}

type CacheOption func(*cacheOptions)

type cacheOptions struct {
	now           func() time.Time
	sweepInterval time.Duration
}

// WithNow replaces the time source used for expiry.
func WithNow(now func() time.Time) CacheOption {
	return func(o *cacheOptions) { o.now = now }
}

// WithSweepInterval sets how often expired entries are removed. Zero
// disables the sweeper; expired entries are still never returned.
func WithSweepInterval(d time.Duration) CacheOption {
	return func(o *cacheOptions) { o.sweepInterval = d }
}

func NewTTLCache[V any](ttl time.Duration, opts ...CacheOption) *TTLCache[V] {
	o := cacheOptions{now: time.Now, sweepInterval: 5 * time.Minute}
	for _, opt := range opts {
		opt(&o)
	}
	c := &TTLCache[V]{
		store: make(map[string]*cacheEntry[V]),
		ttl:   ttl,
		now:   o.now,
		stop:  make(chan struct{}),
	}
	if o.sweepInterval > 0 {
		go c.cleanup(o.sweepInterval)
	}
	return c
}

// Get retrieves a cached value if present and not expired
func (c *TTLCache[V]) Get(key string) (V, bool) {
	var zero V
	if c == nil {
		return zero, false
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, exists := c.store[key]
	if !exists {
		return zero, false
	}
	if c.now().After(entry.expiresAt) {
		return zero, false
	}
	return entry.value, true
}

// Set stores a value in the cache
func (c *TTLCache[V]) Set(key string, value V) {
	if c == nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.store[key] = &cacheEntry[V]{
		value:     value,
		expiresAt: c.now().Add(c.ttl),
	}
}

// Clear removes all entries from the cache
func (c *TTLCache[V]) Clear() {
	if c == nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.store = make(map[string]*cacheEntry[V])
}

// Len counts stored entries, expired ones included until the next sweep.
func (c *TTLCache[V]) Len() int {
	if c == nil {
		return 0
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.store)
}

// Close stops the sweeper. The cache stays usable.
func (c *TTLCache[V]) Close() {
	if c == nil {
		return
	}
	c.closeOnce.Do(func() { close(c.stop) })
}

// Sweep removes expired entries now.
func (c *TTLCache[V]) Sweep() {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.now()
	for key, entry := range c.store {
		if now.After(entry.expiresAt) {
			delete(c.store, key)
		}
	}
}

// cleanup periodically removes expired entries
func (c *TTLCache[V]) cleanup(every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-c.stop:
			return
		case <-ticker.C:
			c.Sweep()
		}
	}
}

// GenerateCacheKey creates a cache key from its parts
func GenerateCacheKey(parts ...string) string {
	// Hash the key to keep it reasonably sized
	hash := sha256.Sum256([]byte(strings.Join(parts, "\x00")))
	return hex.EncodeToString(hash[:])
}
