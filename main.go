// Copyright 2025, the scholarpage contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Scholarpage serves a bilingual academic homepage.
*/
package main

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"codeberg.org/scholarpage/scholarpage/config"
	"codeberg.org/scholarpage/scholarpage/content"
	"codeberg.org/scholarpage/scholarpage/core/audit"
	"codeberg.org/scholarpage/scholarpage/i18n"
	"codeberg.org/scholarpage/scholarpage/server/assets"
	"codeberg.org/scholarpage/scholarpage/server/middleware/limiter"
	"codeberg.org/scholarpage/scholarpage/server/router"
	"codeberg.org/scholarpage/scholarpage/server/routes"
)

const (
	// Values for http.Server timeouts.
	// ref: gosec: G112
	readHeaderTimeout time.Duration = 15 * time.Second
	readTimeout       time.Duration = 15 * time.Second
	writeTimeout      time.Duration = 10 * time.Second
	idleTimeout       time.Duration = 30 * time.Second

	serverShutdownDeadline time.Duration = 5 * time.Second
)

var errChmodSocket = errors.New("failed to change unix socket permissions")

//go:embed assets/css assets/robots.txt
var embeddedContent embed.FS

//nolint:gochecknoinits
func init() {
	assets.FS = embeddedContent
}

func main() {
	if err := run(); err != nil {
		log.Fatal().Err(err).Msg("Application failed")
	}
}

// run starts the server and blocks until it stops.
//
//nolint:funlen
func run() error {
	audit.SetDefaultLogger()

	if err := config.Global.LoadConfig(); err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	var setup errgroup.Group

	setup.Go(func() error {
		if err := i18n.Setup(); err != nil {
			return fmt.Errorf("failed to initialize i18n engine: %w", err)
		}

		return nil
	})

	setup.Go(func() error {
		if err := content.Setup(config.Global.Site.CatalogFile); err != nil {
			return fmt.Errorf("failed to load catalog: %w", err)
		}

		return nil
	})

	if err := setup.Wait(); err != nil {
		return err
	}

	log.Info().
		Int("works", len(content.Current().Works)).
		Msg("Initialized i18n engine and catalog")

	cache := config.Global.Cache
	if err := routes.SetupPageCache(cache.Enabled, cache.Size, cache.Compress); err != nil {
		return fmt.Errorf("failed to set up page cache: %w", err)
	}

	router := router.NewRouter()

	if err := router.DefineRoutes(); err != nil {
		return fmt.Errorf("failed to define routes: %w", err)
	}

	if err := router.RegisterMiddleware(); err != nil {
		return fmt.Errorf("failed to register middleware: %w", err)
	}

	server := &http.Server{
		Handler:           router,
		ReadHeaderTimeout: readHeaderTimeout,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
	}

	serverErrors := make(chan error, 1)

	go func() {
		listener, err := chooseListener()
		if err != nil {
			serverErrors <- fmt.Errorf("failed to create listener: %w", err)

			return
		}

		serverErrors <- server.Serve(listener)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
	case s := <-quit:
		log.Info().Str("signal", s.String()).Msg("Shutdown signal received")
		log.Info().Msg("Shutting down server...")

		ctx, cancel := context.WithTimeout(context.Background(), serverShutdownDeadline)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			return fmt.Errorf("server forced to shutdown: %w", err)
		}
	}

	limiter.Fini()

	log.Info().Msg("Server exited gracefully")

	return nil
}

func chooseListener() (net.Listener, error) {
	if unixAddr := config.Global.Basic.UnixSocket; unixAddr != "" {
		unixListener, err := (&net.ListenConfig{}).Listen(context.Background(), "unix", unixAddr)
		if err != nil {
			return nil, fmt.Errorf("failed to start Unix socket listener on %v: %w", unixAddr, err)
		}

		if err := os.Chmod(unixAddr, config.Global.Basic.UnixSocketPermissions); err != nil {
			_ = unixListener.Close()

			return nil, fmt.Errorf("%w: %w", errChmodSocket, err)
		}

		log.Info().
			Str("address", unixAddr).
			Msg("Listening on Unix domain socket")

		return unixListener, nil
	}

	addr := net.JoinHostPort(config.Global.Basic.Host, config.Global.Basic.Port)

	tcpListener, err := (&net.ListenConfig{}).Listen(context.Background(), "tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("failed to start TCP listener on %v: %w", addr, err)
	}

	addr = tcpListener.Addr().String()

	_, port, err := net.SplitHostPort(addr)
	if err != nil {
		_ = tcpListener.Close()

		return nil, fmt.Errorf("failed to parse listener address %q: %w", addr, err)
	}

	log.Info().
		Str("address", addr).
		Str("url", fmt.Sprintf("http://localhost:%v/", port)).
		Msg("Listening on address")

	return tcpListener, nil
}
