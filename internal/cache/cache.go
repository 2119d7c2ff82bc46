// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cache implements a bounded memo for compiled format layouts.
package cache

import (
	"sync"
)

// DefaultSize is the number of entries kept by a cache created with a
// non-positive size.
const DefaultSize = 1 << 10

// Cache memoizes the results of a function. When it is full, an arbitrary
// entry is dropped to make room for a new one.
//
// It is safe for concurrent use.
type Cache[K comparable, V any] struct {
	size int

	mu sync.RWMutex
	m  map[K]V
}

// New returns a cache holding at most size entries.
func New[K comparable, V any](size int) *Cache[K, V] {
	if size <= 0 {
		size = DefaultSize
	}
	return &Cache[K, V]{size: size, m: make(map[K]V)}
}

// Get returns the value for k, calling fill to compute it if it is not
// cached. fill is called without holding a lock, so concurrent callers may
// compute the same value; the first stored value wins.
func (c *Cache[K, V]) Get(k K, fill func(K) V) V {
	c.mu.RLock()
	v, ok := c.m[k]
	c.mu.RUnlock()
	if ok {
		return v
	}

	nv := fill(k)

	c.mu.Lock()
	defer c.mu.Unlock()
	if v, ok := c.m[k]; ok {
		return v
	}
	// Map iteration order is unspecified, which makes this a random
	// replacement.
	for old := range c.m {
		if len(c.m) < c.size {
			break
		}
		delete(c.m, old)
	}
	c.m[k] = nv
	return nv
}

// Len returns the number of cached entries.
func (c *Cache[K, V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.m)
}
