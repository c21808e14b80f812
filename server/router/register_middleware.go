// Copyright 2025, the scholarpage contributors
// SPDX-License-Identifier: AGPL-3.0-only

package router

import (
	"codeberg.org/scholarpage/scholarpage/config"
	"codeberg.org/scholarpage/scholarpage/server/middleware"
	"codeberg.org/scholarpage/scholarpage/server/middleware/limiter"
	"codeberg.org/scholarpage/scholarpage/server/middleware/set_request_context"
)

// RegisterMiddleware installs the middleware chain. The first middleware is
// the outermost one.
func (router *Router) RegisterMiddleware() error {
	if config.Global.Response.Compression {
		compress, err := middleware.Compression()
		if err != nil {
			return err
		}

		router.Use(compress)
	}

	router.Use(middleware.WithServerTiming)
	router.Use(middleware.NormalizeURL)                // trailing slashes and /en, /zh entry points
	router.Use(set_request_context.WithRequestContext) // locale and request ID, needed for everything else
	router.Use(middleware.SetResponseHeaders)

	if config.Global.Limiter.Enabled {
		limiter.Init()

		router.Use(limiter.Evaluate)
	}

	return nil
}
