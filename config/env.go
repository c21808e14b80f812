// Copyright 2025, the scholarpage contributors
// SPDX-License-Identifier: AGPL-3.0-only

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// readEnv overlays SCHOLARPAGE_* environment variables onto cfg.
//
// Variables that are not set leave the current value in place, so values
// from defaults and the YAML file survive.
func readEnv(cfg *ServerConfig) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("failed to parse environment: %w", err)
	}

	return nil
}

// useDotEnv loads a .env file from the working directory, falling back to the
// directory of the running binary.
//
// Variables already present in the environment are not overridden.
// A missing file is not an error.
func useDotEnv() error {
	var candidates []string

	if cwd, err := os.Getwd(); err != nil {
		log.Warn().
			Err(err).
			Msg("Could not get current working directory")
	} else {
		candidates = append(candidates, filepath.Join(cwd, ".env"))
	}

	if exe, err := os.Executable(); err == nil {
		candidates = append(candidates, filepath.Join(filepath.Dir(exe), ".env"))
	}

	for _, envPath := range candidates {
		err := godotenv.Load(envPath)
		if err == nil {
			log.Info().
				Str("path", envPath).
				Msg("Loaded .env file")

			return nil
		}

		if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to load %s: %w", envPath, err)
		}
	}

	log.Debug().Msg("No .env file found, skipping")

	return nil
}
