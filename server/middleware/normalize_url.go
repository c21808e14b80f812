// Copyright 2025, the scholarpage contributors
// SPDX-License-Identifier: AGPL-3.0-only

package middleware

import (
	"net/http"
	"strings"

	"codeberg.org/scholarpage/scholarpage/i18n"
)

// NormalizeURL redirects non-canonical URLs:
//  1. "/en" and "/zh" (with or without a trailing slash) go to the home page
//     with the matching ?lang= query, so localized links can be shared.
//  2. Trailing slashes are removed from every other path except the root.
func NormalizeURL(w http.ResponseWriter, r *http.Request, next http.Handler) {
	if locale, ok := localePrefix(r); ok {
		redirectToLocale(w, r, locale)

		return
	}

	if hasTrailingSlash(r) {
		removeTrailingSlash(w, r)

		return
	}

	next.ServeHTTP(w, r)
}

func hasTrailingSlash(r *http.Request) bool {
	return r.URL.Path != "/" && strings.HasSuffix(r.URL.Path, "/")
}

func removeTrailingSlash(w http.ResponseWriter, r *http.Request) {
	target := *r.URL
	target.Path = strings.TrimRight(target.Path, "/")

	if target.Path == "" {
		target.Path = "/"
	}

	target.RawPath = ""

	http.Redirect(w, r, target.RequestURI(), http.StatusPermanentRedirect)
}

// localePrefix reports whether the path is exactly a locale segment.
func localePrefix(r *http.Request) (i18n.Locale, bool) {
	segment := strings.Trim(r.URL.Path, "/")
	if segment == "" || strings.Contains(segment, "/") {
		return "", false
	}

	for _, locale := range i18n.Locales() {
		if segment == string(locale) {
			return locale, true
		}
	}

	return "", false
}

func redirectToLocale(w http.ResponseWriter, r *http.Request, locale i18n.Locale) {
	query := r.URL.Query()
	query.Set("lang", string(locale))

	http.Redirect(w, r, "/?"+query.Encode(), http.StatusMovedPermanently)
}
