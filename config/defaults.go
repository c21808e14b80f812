// Copyright 2025, the scholarpage contributors
// SPDX-License-Identifier: AGPL-3.0-only

package config

import "time"

const (
	defaultPort = "8080"

	// Default HTTP cache max age in seconds.
	defaultHTTPCacheMaxAgeSeconds = 300
	// Default HTTP cache stale while revalidate in seconds.
	defaultHTTPCacheStaleWhileRevalidateSeconds = 3600

	defaultLimiterIdleMinutes = 10
)

// SetDefaults populates the configuration with default values.
func (cfg *ServerConfig) SetDefaults() {
	cfg.Basic.Host = "localhost"
	cfg.Basic.Port = defaultPort

	cfg.Site.PublicDir = "./public"

	cfg.Cache.Enabled = true
	cfg.Cache.Size = 64
	cfg.Cache.Compress = true

	cfg.HTTPCache.MaxAge = defaultHTTPCacheMaxAgeSeconds * time.Second
	cfg.HTTPCache.StaleWhileRevalidate = defaultHTTPCacheStaleWhileRevalidateSeconds * time.Second

	cfg.Response.Compression = true

	cfg.Instance.RepoURL = "https://codeberg.org/scholarpage/scholarpage"

	cfg.Log.Level = "info"
	cfg.Log.Outputs = []string{"/dev/stderr"}
	cfg.Log.Format = "console"

	cfg.Limiter.Enabled = false
	cfg.Limiter.Rate = 5
	cfg.Limiter.Burst = 20
	cfg.Limiter.FilterLocal = false
	cfg.Limiter.IPv4Prefix = 24
	cfg.Limiter.IPv6Prefix = 48
	cfg.Limiter.IdleTimeout = defaultLimiterIdleMinutes * time.Minute

	cfg.Internationalization.StrictMissingKeys = false
}
