// Copyright 2025, the scholarpage contributors
// SPDX-License-Identifier: AGPL-3.0-only

package pagecache

import (
	"bytes"
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRejectsInvalidSize(t *testing.T) {
	t.Parallel()

	_, err := New(0, false)
	require.ErrorIs(t, err, ErrInvalidSize)
}

func TestAddGet(t *testing.T) {
	t.Parallel()

	for _, compress := range []bool{false, true} {
		t.Run("compress="+strconv.FormatBool(compress), func(t *testing.T) {
			t.Parallel()

			c, err := New(2, compress)
			require.NoError(t, err)

			page := bytes.Repeat([]byte("<li>research</li>"), 200)

			assert.False(t, c.Add("en|", page))

			got, ok := c.Get("en|")
			require.True(t, ok)
			assert.Equal(t, page, got)

			got[0] = 'X'
			again, _ := c.Get("en|")
			assert.Equal(t, byte('<'), again[0], "returned bytes are a copy")

			page[1] = 'X'
			again, _ = c.Get("en|")
			assert.Equal(t, byte('l'), again[1], "stored bytes are a copy")

			_, ok = c.Get("zh|")
			assert.False(t, ok)

			stats := c.Stats()
			assert.Equal(t, 1, stats.Entries)
			assert.Equal(t, uint64(3), stats.Hits)
			assert.Equal(t, uint64(1), stats.Misses)
		})
	}
}

func TestEviction(t *testing.T) {
	t.Parallel()

	c, err := New(2, false)
	require.NoError(t, err)

	c.Add("a", []byte("1"))
	c.Add("b", []byte("2"))
	_, _ = c.Get("a")

	assert.True(t, c.Add("c", []byte("3")), "least recently used page is evicted")
	assert.Equal(t, []string{"a", "c"}, c.Keys())

	assert.False(t, c.Add("a", []byte("updated")), "replacing does not evict")

	got, ok := c.Get("a")
	require.True(t, ok)
	assert.Equal(t, []byte("updated"), got)
}

func TestRemoveAndPurge(t *testing.T) {
	t.Parallel()

	c, err := New(4, true)
	require.NoError(t, err)

	c.Add("a", []byte("1"))
	c.Add("b", nil)

	assert.True(t, c.Remove("a"))
	assert.False(t, c.Remove("a"))

	got, ok := c.Get("b")
	assert.True(t, ok)
	assert.Empty(t, got)

	c.Purge()
	assert.Empty(t, c.Keys())
}

func TestConcurrentAccess(t *testing.T) {
	t.Parallel()

	c, err := New(8, true)
	require.NoError(t, err)

	var wg sync.WaitGroup

	for i := range 16 {
		wg.Add(1)

		go func() {
			defer wg.Done()

			key := strconv.Itoa(i % 10)
			body := bytes.Repeat([]byte(key), 512)

			for range 50 {
				c.Add(key, body)

				if got, ok := c.Get(key); ok {
					assert.Equal(t, body, got)
				}
			}
		}()
	}

	wg.Wait()
	assert.LessOrEqual(t, c.Stats().Entries, 8)
}
