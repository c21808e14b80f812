// Copyright 2025, the scholarpage contributors
// SPDX-License-Identifier: AGPL-3.0-only

package routes

import (
	"fmt"
	"net/http"
	"strings"

	"codeberg.org/scholarpage/scholarpage/assets/views"
	"codeberg.org/scholarpage/scholarpage/config"
)

const stylesheetPath = "/css/site.css"

// PreloadImage adds a Link header asking the browser to fetch url early.
func PreloadImage(w http.ResponseWriter, url string) {
	if url == "" {
		return
	}

	w.Header().Add("Link", fmt.Sprintf("<%s>; rel=\"preload\"; as=\"image\"; fetchpriority=\"high\"", url))
}

// setPublicCache marks the response as cacheable by shared caches for the
// configured duration.
func setPublicCache(w http.ResponseWriter) {
	w.Header().Set("Cache-Control", fmt.Sprintf("public, max-age=%d, stale-while-revalidate=%d",
		int(config.Global.HTTPCache.MaxAge.Seconds()),
		int(config.Global.HTTPCache.StaleWhileRevalidate.Seconds())))
}

// pageMeta fills in the document metadata shared by every page. path is the
// canonical path of the page; empty omits the canonical link.
func pageMeta(title, description, path string) views.PageMeta {
	meta := views.PageMeta{
		Title:       title,
		Description: description,
		Stylesheet:  stylesheetPath,
	}

	if id := config.Global.Instance.FileServerCacheID; id != "" {
		meta.Stylesheet += "?v=" + id
	}

	if base := strings.TrimSuffix(config.Global.Site.BaseURL, "/"); base != "" && path != "" {
		meta.Canonical = base + path
	}

	return meta
}
