// Copyright 2025, the scholarpage contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package pagecache keeps recently rendered pages in memory.

It is a fixed-capacity least-recently-used cache of response bodies keyed by
string. Bodies can be stored zstd-compressed; compression is kept only when it
saves space, and Get always returns the original bytes.
*/
package pagecache

import (
	"container/list"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/klauspost/compress/zstd"
)

var ErrInvalidSize = errors.New("page cache size must be positive")

// Cache is safe for concurrent use. Construct it with [New].
type Cache struct {
	size  int
	order *list.List // front is most recently used
	items map[string]*list.Element
	mu    sync.Mutex

	enc *zstd.Encoder
	dec *zstd.Decoder

	hits   atomic.Uint64
	misses atomic.Uint64
}

type entry struct {
	key        string
	body       []byte
	compressed bool
}

// Stats is a snapshot of cache activity.
type Stats struct {
	Entries int
	Hits    uint64
	Misses  uint64
}

// New returns a cache holding at most size pages.
func New(size int, compress bool) (*Cache, error) {
	if size <= 0 {
		return nil, ErrInvalidSize
	}

	c := &Cache{
		size:  size,
		order: list.New(),
		items: make(map[string]*list.Element, size),
	}

	if compress {
		enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
		if err != nil {
			return nil, fmt.Errorf("failed to create zstd encoder: %w", err)
		}

		dec, err := zstd.NewReader(nil, zstd.WithDecoderConcurrency(0))
		if err != nil {
			return nil, fmt.Errorf("failed to create zstd decoder: %w", err)
		}

		c.enc, c.dec = enc, dec
	}

	return c, nil
}

// Add stores body under key, replacing any previous page, and reports whether
// the least recently used page was evicted to make room.
//
// The cache keeps its own copy; callers may reuse body afterwards.
func (c *Cache) Add(key string, body []byte) bool {
	stored, compressed := c.encode(body)

	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.items[key]; ok {
		c.order.MoveToFront(el)

		e := el.Value.(*entry)
		e.body, e.compressed = stored, compressed

		return false
	}

	c.items[key] = c.order.PushFront(&entry{key: key, body: stored, compressed: compressed})

	if c.order.Len() <= c.size {
		return false
	}

	oldest := c.order.Back()
	c.order.Remove(oldest)
	delete(c.items, oldest.Value.(*entry).key)

	return true
}

// Get returns a copy of the page stored under key and marks it most recently used.
func (c *Cache) Get(key string) ([]byte, bool) {
	c.mu.Lock()

	el, ok := c.items[key]
	if !ok {
		c.mu.Unlock()
		c.misses.Add(1)

		return nil, false
	}

	c.order.MoveToFront(el)
	e := *el.Value.(*entry)

	c.mu.Unlock()

	body, err := c.decode(e)
	if err != nil {
		c.Remove(key)
		c.misses.Add(1)

		return nil, false
	}

	c.hits.Add(1)

	return body, true
}

// Remove drops key and reports whether it was present.
func (c *Cache) Remove(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.items[key]
	if !ok {
		return false
	}

	c.order.Remove(el)
	delete(c.items, key)

	return true
}

// Purge drops every page.
func (c *Cache) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.order.Init()
	clear(c.items)
}

// Keys returns the cached keys from least to most recently used.
func (c *Cache) Keys() []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	keys := make([]string, 0, len(c.items))
	for el := c.order.Back(); el != nil; el = el.Prev() {
		keys = append(keys, el.Value.(*entry).key)
	}

	return keys
}

// Stats reports the current size and the hit and miss counts so far.
func (c *Cache) Stats() Stats {
	c.mu.Lock()
	n := c.order.Len()
	c.mu.Unlock()

	return Stats{Entries: n, Hits: c.hits.Load(), Misses: c.misses.Load()}
}

// encode runs without the lock; zstd EncodeAll is safe for concurrent use.
func (c *Cache) encode(body []byte) ([]byte, bool) {
	if c.enc != nil && len(body) > 0 {
		if packed := c.enc.EncodeAll(body, nil); len(packed) < len(body) {
			return packed, true
		}
	}

	return append([]byte(nil), body...), false
}

func (c *Cache) decode(e entry) ([]byte, error) {
	if !e.compressed {
		return append([]byte(nil), e.body...), nil
	}

	body, err := c.dec.DecodeAll(e.body, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to decompress cached page %q: %w", e.key, err)
	}

	return body, nil
}
