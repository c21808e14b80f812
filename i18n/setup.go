// Copyright 2025, the scholarpage contributors
// SPDX-License-Identifier: AGPL-3.0-only

package i18n

import (
	"embed"
	"fmt"
	"path"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"codeberg.org/scholarpage/scholarpage/i18n/tags"
)

//go:embed locales/*.yaml
var localeFS embed.FS

// dictionaries holds the loaded dictionary of every supported locale.
var dictionaries map[Locale]*Dictionary

// Setup loads the embedded dictionaries and tag labels.
//
// The expected layout is:
//
//	locales/<locale>.yaml
//
// with one file per supported locale. Files are decoded concurrently.
// Calling Setup again replaces the previously loaded dictionaries.
func Setup() error {
	Logger = log.With().Str("sys", "i18n").Logger()

	loaded := make([]*Dictionary, len(supportedLocales))

	var g errgroup.Group

	for i, locale := range supportedLocales {
		g.Go(func() error {
			dict, err := loadDictionary(locale)
			if err != nil {
				return err
			}

			loaded[i] = dict

			return nil
		})
	}

	g.Go(loadTagLabels)

	if err := g.Wait(); err != nil {
		return err
	}

	next := make(map[Locale]*Dictionary, len(supportedLocales))

	for i, locale := range supportedLocales {
		next[locale] = loaded[i]

		Logger.Info().
			Str("locale", locale.String()).
			Int("keys", len(loaded[i].Keys())).
			Msg("Loaded locale")
	}

	dictionaries = next

	return nil
}

// Dictionaries returns the loaded dictionary for each locale.
// The map is a copy; the dictionaries themselves are immutable.
func Dictionaries() map[Locale]*Dictionary {
	out := make(map[Locale]*Dictionary, len(dictionaries))
	for l, d := range dictionaries {
		out[l] = d
	}

	return out
}

func loadDictionary(locale Locale) (*Dictionary, error) {
	fileName := path.Join("locales", locale.String()+".yaml")

	data, err := localeFS.ReadFile(fileName)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", fileName, err)
	}

	dict, err := ParseDictionary(data)
	if err != nil {
		return nil, fmt.Errorf("failed to load locale %s: %w", locale, err)
	}

	return dict, nil
}

func loadTagLabels() error {
	count, err := tags.LoadEmbedded()
	if err != nil {
		return err
	}

	Logger.Info().Int("count", count).Msg("Loaded tag labels")

	return nil
}
