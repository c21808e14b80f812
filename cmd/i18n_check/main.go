// Copyright 2025, the scholarpage contributors
// SPDX-License-Identifier: AGPL-3.0-only

// Command i18n_check verifies that every translation key used in the code
// resolves in every locale dictionary.
//
// It loads the module with go/packages, collects every constant of type
// i18n.Key and looks each one up in the embedded dictionaries. Missing keys
// make the command exit with status 1. Dictionary entries no code refers to
// are reported as warnings, or as errors with -strict.
package main

import (
	"flag"
	"os"

	"github.com/rs/zerolog/log"
	"golang.org/x/tools/go/packages"

	"codeberg.org/scholarpage/scholarpage/core/audit"
	"codeberg.org/scholarpage/scholarpage/i18n"
)

func main() {
	strict := flag.Bool("strict", false, "treat unused dictionary entries as errors")
	flag.Parse()

	audit.SetDefaultLogger()

	pkgs, err := packages.Load(&packages.Config{
		Mode: packages.NeedName | packages.NeedTypes | packages.NeedSyntax | packages.NeedTypesInfo,
	}, "./...")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load packages")
	}

	if packages.PrintErrors(pkgs) > 0 {
		log.Fatal().Msg("Failed to load packages due to errors")
	}

	if err := i18n.Setup(); err != nil {
		log.Fatal().Err(err).Msg("Failed to load dictionaries")
	}

	wd, err := os.Getwd()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get working directory")
	}

	refs := collectRefs(pkgs, wd)
	rep := check(refs, i18n.Dictionaries())

	for _, m := range rep.missing {
		log.Error().
			Str("locale", string(m.locale)).
			Str("key", m.key).
			Str("at", m.at.String()).
			Msg("Missing translation")
	}

	for _, u := range rep.unused {
		event := log.Warn()
		if *strict {
			event = log.Error()
		}

		event.Str("locale", string(u.locale)).Str("key", u.key).Msg("Unused translation")
	}

	log.Info().
		Int("keys", len(refs)).
		Int("missing", len(rep.missing)).
		Int("unused", len(rep.unused)).
		Msg("Checked translations")

	if len(rep.missing) > 0 || (*strict && len(rep.unused) > 0) {
		os.Exit(1)
	}
}
