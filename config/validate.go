// Copyright 2025, the scholarpage contributors
// SPDX-License-Identifier: AGPL-3.0-only

package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strconv"

	"github.com/rs/zerolog/log"

	"codeberg.org/scholarpage/scholarpage/server/utils"
)

// validation errors.
var (
	errUnixSocketWithHostPort       = errors.New("unix socket configured - cannot specify Host and Port simultaneously")
	errUnixSocketInvalidPermissions = errors.New("invalid Basic.UnixSocketPermissions value")
	errInvalidCacheSize             = errors.New("Cache.Size must be positive when the cache is enabled")
	errInvalidLimiterRate           = errors.New("Limiter.Rate must be positive")
	errInvalidLimiterBurst          = errors.New("Limiter.Burst must be at least 1")
	errInvalidIPv4Prefix            = errors.New("IPv4 prefix must be between 0 and 32")
	errInvalidIPv6Prefix            = errors.New("IPv6 prefix must be between 0 and 128")
	errInvalidLogLevel              = errors.New("Log.Level must be one of debug, info, warn, error")
	errInvalidLogFormat             = errors.New("Log.Format must be console or json")
)

var (
	fileModeOctalRegexp  = regexp.MustCompile(`^0?[0-7]{3}$`)
	fileModeStringRegexp = regexp.MustCompile(`^(?:[r-][w-][x-]){3}$`)
)

// validateAndSet validates the server configuration and populates derived fields.
func (cfg *ServerConfig) validateAndSet() error {
	if err := cfg.validateListener(); err != nil {
		return err
	}

	if cfg.Site.BaseURL != "" {
		baseURL, err := utils.ParseURL(cfg.Site.BaseURL, "Base")
		if err != nil {
			return fmt.Errorf("invalid base URL: %w", err)
		}

		cfg.Site.BaseURL = baseURL.String()
	}

	repoURL, err := utils.ParseURL(cfg.Instance.RepoURL, "Repo")
	if err != nil {
		return fmt.Errorf("invalid repo URL: %w", err)
	}

	cfg.Instance.RepoURL = repoURL.String()

	if cfg.Cache.Enabled && cfg.Cache.Size <= 0 {
		return errInvalidCacheSize
	}

	switch cfg.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return errInvalidLogLevel
	}

	switch cfg.Log.Format {
	case "console", "json":
	default:
		return errInvalidLogFormat
	}

	// Skip validating Limiter configuration if it's not enabled
	if !cfg.Limiter.Enabled {
		return nil
	}

	if cfg.Limiter.Rate <= 0 {
		return errInvalidLimiterRate
	}

	if cfg.Limiter.Burst < 1 {
		return errInvalidLimiterBurst
	}

	if cfg.Limiter.IPv4Prefix < 0 || cfg.Limiter.IPv4Prefix > 32 {
		return errInvalidIPv4Prefix
	}

	if cfg.Limiter.IPv6Prefix < 0 || cfg.Limiter.IPv6Prefix > 128 {
		return errInvalidIPv6Prefix
	}

	return nil
}

func (cfg *ServerConfig) validateListener() error {
	if cfg.Basic.UnixSocket == "" {
		if cfg.Basic.Host == "" {
			cfg.Basic.Host = "localhost"
			log.Info().
				Str("host", cfg.Basic.Host).
				Msg("Binding to default host")
		}

		if cfg.Basic.Port == "" {
			cfg.Basic.Port = defaultPort
			log.Info().
				Str("port", cfg.Basic.Port).
				Msg("Using default port")
		}

		return nil
	}

	if cfg.Basic.Host != "" || cfg.Basic.Port != "" {
		return errUnixSocketWithHostPort
	}

	mode, err := parseFileMode(cfg.Basic.RawUnixSocketPermissions)
	if err != nil {
		return err
	}

	cfg.Basic.UnixSocketPermissions = mode

	return nil
}

// parseFileMode accepts "" (0666), an octal mode such as "0660", or a
// symbolic mode such as "rw-rw----".
func parseFileMode(raw string) (os.FileMode, error) {
	switch {
	case raw == "":
		return 0o666, nil
	case fileModeOctalRegexp.MatchString(raw):
		mode, _ := strconv.ParseUint(raw, 8, 32)

		return os.FileMode(mode), nil
	case fileModeStringRegexp.MatchString(raw):
		mode := os.FileMode(0)

		for i, c := range raw {
			if c != '-' {
				const highestBit = 8

				mode |= 1 << (highestBit - i)
			}
		}

		return mode, nil
	default:
		return 0, errUnixSocketInvalidPermissions
	}
}
