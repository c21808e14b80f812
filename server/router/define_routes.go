// Copyright 2025, the scholarpage contributors
// SPDX-License-Identifier: AGPL-3.0-only

package router

import (
	"fmt"
	"io/fs"
	"net/http"
	"net/http/pprof"
	"runtime/trace"
	"time"

	"github.com/rs/zerolog/log"

	"codeberg.org/scholarpage/scholarpage/config"
	"codeberg.org/scholarpage/scholarpage/server/assets"
	"codeberg.org/scholarpage/scholarpage/server/middleware"
	"codeberg.org/scholarpage/scholarpage/server/routes"
)

// DefineRoutes registers every route on the router. Middleware is added
// separately by RegisterMiddleware.
func (router *Router) DefineRoutes() error {
	static, err := embeddedFileServer()
	if err != nil {
		return err
	}

	router.Handle("GET /robots.txt", static)
	router.Handle("GET /css/", static)

	if dir := config.Global.Site.PublicDir; dir != "" {
		images := http.FileServer(filesOnly{http.Dir(dir)})
		router.Handle("GET /images/", http.StripPrefix("/images", images))
	} else {
		log.Debug().Msg("No public directory configured, /images/ is not served")
	}

	router.HandleFunc("GET /healthz", middleware.CatchError(routes.Healthz))

	router.HandleFunc("GET /lang/{locale}", middleware.CatchError(routes.LanguagePage))
	router.HandleFunc("POST /settings/{action}", middleware.CatchError(routes.SettingsPOST))
	router.HandleFunc("GET /research/{id}/bibtex", middleware.CatchError(routes.BibtexExport))

	// /{$} matches only the root path; everything else unmatched gets the themed 404.
	router.HandleFunc("GET /{$}", middleware.CatchError(routes.HomePage))
	router.HandleFunc("GET /", middleware.CatchError(routes.NotFoundPage))

	if config.Global.Development.InDevelopment {
		registerDebugRoutes(router)
	}

	return nil
}

// embeddedFileServer serves the embedded assets directory.
func embeddedFileServer() (http.Handler, error) {
	if assets.FS == nil {
		return nil, errNoAssets
	}

	staticContentFS, err := fs.Sub(assets.FS, "assets")
	if err != nil {
		return nil, fmt.Errorf("failed to create sub-filesystem for embedded 'assets' directory: %w", err)
	}

	fileServer := http.FileServer(filesOnly{http.FS(staticContentFS)})

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Embedded files only change with a new build, and every start gets a
		// fresh cache ID.
		w.Header().Set("ETag", `"`+config.Global.Instance.FileServerCacheID+`"`)
		fileServer.ServeHTTP(w, r)
	}), nil
}

var flightRecorder = trace.NewFlightRecorder(trace.FlightRecorderConfig{MinAge: time.Minute})

func registerDebugRoutes(router *Router) {
	if err := flightRecorder.Start(); err != nil {
		log.Warn().Err(err).Msg("Flight recorder unavailable")
	}

	router.HandleFunc("GET /debug/pprof/", pprof.Index)
	router.HandleFunc("GET /debug/pprof/cmdline", pprof.Cmdline)
	router.HandleFunc("GET /debug/pprof/profile", pprof.Profile)
	router.HandleFunc("GET /debug/pprof/symbol", pprof.Symbol)
	router.HandleFunc("GET /debug/pprof/trace", pprof.Trace)
	router.HandleFunc("GET /debug/flight", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = flightRecorder.WriteTo(w)
	})
}
