// Copyright 2025, the scholarpage contributors
// SPDX-License-Identifier: AGPL-3.0-only

package routes

import (
	"fmt"
	"strconv"

	"github.com/rs/zerolog/log"

	"codeberg.org/scholarpage/scholarpage/core/listing"
	"codeberg.org/scholarpage/scholarpage/core/pagecache"
	"codeberg.org/scholarpage/scholarpage/i18n"
)

// pages holds rendered homepages. Nil when caching is disabled.
var pages *pagecache.Cache

// SetupPageCache configures the rendered page cache. It must be called before
// the server starts handling requests.
func SetupPageCache(enabled bool, size int, compress bool) error {
	if !enabled {
		pages = nil

		log.Info().Msg("Page cache disabled")

		return nil
	}

	c, err := pagecache.New(size, compress)
	if err != nil {
		return fmt.Errorf("failed to create page cache: %w", err)
	}

	pages = c

	log.Info().
		Int("size", size).
		Bool("compress", compress).
		Msg("Page cache enabled")

	return nil
}

// PageCacheStats reports cache activity; ok is false when caching is disabled.
func PageCacheStats() (stats pagecache.Stats, ok bool) {
	if pages == nil {
		return pagecache.Stats{}, false
	}

	return pages.Stats(), true
}

func homeCacheKey(locale i18n.Locale, sel listing.Selection, year int) string {
	return locale.String() + "|" + strconv.Itoa(year) + "|" + sel.CacheKey()
}

func cachedPage(key string) ([]byte, bool) {
	if pages == nil {
		return nil, false
	}

	return pages.Get(key)
}

func storePage(key string, body []byte) {
	if pages == nil {
		return
	}

	if evicted := pages.Add(key, body); evicted {
		log.Debug().Str("sys", "pagecache").Str("key", key).Msg("Evicted least recently used page")
	}
}
