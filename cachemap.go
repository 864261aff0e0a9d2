package circumflex

import (
	"context"
	"sync"

	"github.com/bool64/ctxd"
	"github.com/bool64/stats"
	"github.com/puzpuzpuz/xsync"
)

// ComputeFunc produces the value for a missing key.
//
// It may consult external capabilities (a Config, a Registry) and may fail,
// in which case nothing is stored and the error is returned to the caller.
type ComputeFunc[V any] func(ctx context.Context, key string) (V, error)

// CacheMapConfig is optional configuration for NewCacheMap.
type CacheMapConfig struct {
	// Name is added to logs and stats.
	Name string

	// Logger collects messages with context.
	Logger ctxd.Logger

	// Stats tracks stats.
	Stats stats.Tracker
}

// CacheMap is a lazily-populated map with at-most-one computation per missing key.
//
// Reads of present keys are lock-free. A missing key is computed in a critical
// section with a re-check, so concurrent readers of the same missing key share
// one computation. Once a key has been read its value is memoized permanently,
// only Put and Delete change it.
//
// Calling Get for another missing key from within the compute function
// deadlocks, computations are serialized by a single lock.
type CacheMap[V any] struct {
	data *xsync.Map
	mu   sync.Mutex // Guards the compute-and-store slow path.

	compute ComputeFunc[V]
	config  CacheMapConfig
	log     ctxd.Logger
	stat    stats.Tracker
}

// NewCacheMap creates a CacheMap instance with optional configuration.
//
// A nil compute function turns the map into a plain concurrent store where
// Get of a missing key fails with ErrKeyNotFound.
func NewCacheMap[V any](compute ComputeFunc[V], cfg ...CacheMapConfig) *CacheMap[V] {
	config := CacheMapConfig{}

	if len(cfg) >= 1 {
		config = cfg[0]
	}

	return &CacheMap[V]{
		data:    xsync.NewMap(),
		compute: compute,
		config:  config,
		log:     config.Logger,
		stat:    config.Stats,
	}
}

// Get returns the value for key, computing and storing it on first access.
//
// Concurrent calls for the same missing key invoke the compute function once,
// every caller receives the same stored value. A failed computation leaves the
// key absent and a later Get retries it.
func (c *CacheMap[V]) Get(ctx context.Context, key string) (V, error) {
	// Fast path, no lock.
	if v, ok := c.data.Load(key); ok {
		if c.stat != nil {
			c.stat.Add(ctx, MetricHit, 1, "name", c.config.Name)
		}

		return v.(V), nil
	}

	if c.stat != nil {
		c.stat.Add(ctx, MetricMiss, 1, "name", c.config.Name)
	}

	var zero V

	if c.compute == nil || SkipCompute(ctx) {
		return zero, ErrKeyNotFound
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	// Another caller may have filled the key while this one waited for the lock.
	if v, ok := c.data.Load(key); ok {
		return v.(V), nil
	}

	if c.log != nil {
		c.log.Debug(ctx, "computing cache value", "name", c.config.Name, "key", key)
	}

	v, err := c.compute(ctx, key)
	if err != nil {
		if c.stat != nil {
			c.stat.Add(ctx, MetricFailed, 1, "name", c.config.Name)
		}

		if c.log != nil {
			c.log.Warn(ctx, "failed to compute cache value",
				"error", err,
				"name", c.config.Name,
				"key", key)
		}

		return zero, err
	}

	c.data.Store(key, v)

	if c.stat != nil {
		c.stat.Add(ctx, MetricBuild, 1, "name", c.config.Name)
	}

	return v, nil
}

// Put sets value, subsequent Gets of key return it without computation.
func (c *CacheMap[V]) Put(ctx context.Context, key string, value V) {
	c.data.Store(key, value)

	if c.log != nil {
		c.log.Debug(ctx, "wrote to cache", "name", c.config.Name, "key", key, "value", value)
	}

	if c.stat != nil {
		c.stat.Add(ctx, MetricWrite, 1, "name", c.config.Name)
	}
}

// Peek returns the value for key without triggering computation.
func (c *CacheMap[V]) Peek(key string) (V, bool) {
	v, ok := c.data.Load(key)
	if !ok {
		var zero V

		return zero, false
	}

	return v.(V), true
}

// Delete removes key, the next Get computes it anew.
func (c *CacheMap[V]) Delete(key string) {
	c.data.Delete(key)
}

// RemoveAll deletes all entries.
func (c *CacheMap[V]) RemoveAll() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.data.Range(func(key string, _ interface{}) bool {
		c.data.Delete(key)

		return true
	})
}

// Len returns number of cached entries.
func (c *CacheMap[V]) Len() int {
	cnt := 0

	c.data.Range(func(_ string, _ interface{}) bool {
		cnt++

		return true
	})

	return cnt
}

// Walk calls walkFn for every entry and fails on first error returned.
//
// Count of processed entries is returned.
func (c *CacheMap[V]) Walk(walkFn func(key string, value V) error) (int, error) {
	n := 0

	var err error

	c.data.Range(func(key string, value interface{}) bool {
		err = walkFn(key, value.(V))
		if err != nil {
			return false
		}

		n++

		return true
	})

	return n, err
}

// Load implements Store over already-computed entries, it never computes.
func (c *CacheMap[V]) Load(key string) (interface{}, bool) {
	return c.data.Load(key)
}

// Store implements Store, value must be assignable to V.
func (c *CacheMap[V]) Store(key string, value interface{}) {
	c.data.Store(key, value.(V))
}

// Range implements Store.
func (c *CacheMap[V]) Range(f func(key string, value interface{}) bool) {
	c.data.Range(f)
}
