// Copyright 2025, the scholarpage contributors
// SPDX-License-Identifier: AGPL-3.0-only

package middleware

import (
	"maps"
	"net/http"
	"strings"
	"sync/atomic"

	"codeberg.org/scholarpage/scholarpage/config"
)

var (
	// baseHeaders are set on every response.
	//
	// NOTE: we intentionally don't set CORP or HSTS headers.
	baseHeaders = http.Header{
		"Referrer-Policy":         {"no-referrer"},
		"X-Frame-Options":         {"DENY"},
		"X-Content-Type-Options":  {"nosniff"},
		"Permissions-Policy":      {strings.Join(defaultPermissionsPolicy, ", ")},
		"Content-Security-Policy": {strings.Join(contentSecurityPolicy, "; ") + ";"},
	}

	// The page ships no scripts. Images may come from anywhere since
	// catalog entries can point at external hosts.
	contentSecurityPolicy = []string{
		"base-uri 'self'",
		"default-src 'self'",
		"script-src 'none'",
		"style-src 'self'",
		"font-src 'self'",
		"img-src 'self' https: data:",
		"connect-src 'self'",
		"form-action 'self'",
		"frame-ancestors 'none'",
	}

	defaultPermissionsPolicy = []string{
		"accelerometer=()",
		"ambient-light-sensor=()",
		"battery=()",
		"camera=()",
		"display-capture=()",
		"geolocation=()",
		"gyroscope=()",
		"magnetometer=()",
		"microphone=()",
		"midi=()",
		"payment=()",
		"usb=()",
		"xr-spatial-tracking=()",
	}
)

// staticCacheRules maps path prefixes to their Cache-Control value. Page
// handlers override the default themselves.
var staticCacheRules = []struct {
	prefix string
	value  string
}{
	{"/css/", "public, max-age=604800"},
	{"/images/", "public, max-age=1209600"},
	{"/robots.txt", "public, max-age=86400"},
}

// SetResponseHeaders adds the security, version and cache headers.
func SetResponseHeaders(w http.ResponseWriter, r *http.Request, next http.Handler) {
	headers := w.Header()

	maps.Insert(headers, maps.All(baseHeaders))

	if config.Global.Development.InDevelopment {
		invalidateCacheInDevelopment(headers)
	}

	headers.Set("Cache-Control", cacheControlFor(r.URL.Path))
	headers.Set("Scholarpage-Version", config.BuildVersion)
	headers.Set("Scholarpage-Revision", config.Global.Build.Revision())

	next.ServeHTTP(w, r)
}

var devCacheCleared atomic.Bool

// invalidateCacheInDevelopment asks the browser to drop its cache once per process.
func invalidateCacheInDevelopment(headers http.Header) {
	if devCacheCleared.CompareAndSwap(false, true) {
		headers.Set("Clear-Site-Data", `"cache"`)
	}
}

func cacheControlFor(path string) string {
	for _, rule := range staticCacheRules {
		if strings.HasPrefix(path, rule.prefix) {
			return rule.value
		}
	}

	return "private, no-cache"
}
