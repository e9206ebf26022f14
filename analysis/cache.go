// SPDX-License-Identifier: MIT

package analysis

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"strings"
	"sync"

	"github.com/katalvlaran/crntk/ddm"
	"github.com/katalvlaran/crntk/queue"
	"github.com/katalvlaran/crntk/sparse"
)

// Cache memoises conservation-law enumerations by stoichiometry key.
// A miss is (nil, false, nil); errors are reported but callers treat them as
// misses.
type Cache interface {
	Get(ctx context.Context, key string) (*ddm.Result, bool, error)
	Set(ctx context.Context, key string, res *ddm.Result) error
}

// Key returns the cache key of a stoichiometry: the hex SHA-256 of the
// species order followed by the rows.
func Key(rows []sparse.Vector, species []string) string {
	h := sha256.New()
	h.Write([]byte(strings.Join(species, "\x00")))
	h.Write([]byte{'\n'})
	var buf []byte
	for _, r := range rows {
		buf = buf[:0]
		for _, e := range r {
			buf = strconv.AppendInt(buf, int64(e.Index), 10)
			buf = append(buf, ':')
			buf = strconv.AppendInt(buf, e.Value, 10)
			buf = append(buf, ' ')
		}
		buf = append(buf, '\n')
		h.Write(buf)
	}

	return hex.EncodeToString(h.Sum(nil))
}

// MemoryCache is a bounded in-process Cache. When full, the oldest entry is
// evicted. Results are copied in and out.
type MemoryCache struct {
	mu      sync.Mutex
	max     int
	entries map[string]*ddm.Result
	order   *queue.Queue[string]
}

// NewMemoryCache returns a cache holding at most size results; size <= 0
// means 1024.
func NewMemoryCache(size int) *MemoryCache {
	if size <= 0 {
		size = 1024
	}

	return &MemoryCache{
		max:     size,
		entries: make(map[string]*ddm.Result),
		order:   queue.New[string](),
	}
}

// Get implements Cache.
func (c *MemoryCache) Get(_ context.Context, key string) (*ddm.Result, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	res, ok := c.entries[key]
	if !ok {
		return nil, false, nil
	}

	return cloneResult(res), true, nil
}

// Set implements Cache.
func (c *MemoryCache) Set(_ context.Context, key string, res *ddm.Result) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.entries[key]; !ok {
		for c.order.Len() >= c.max {
			old, _ := c.order.Dequeue()
			delete(c.entries, old)
		}
		c.order.Enqueue(key)
	}
	c.entries[key] = cloneResult(res)

	return nil
}

// Len returns the number of cached results.
func (c *MemoryCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.entries)
}

func cloneResult(res *ddm.Result) *ddm.Result {
	out := &ddm.Result{Stats: res.Stats, Rays: make([]sparse.Vector, len(res.Rays))}
	for i, r := range res.Rays {
		out.Rays[i] = r.Clone()
	}

	return out
}
