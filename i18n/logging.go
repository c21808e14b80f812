// Copyright 2025, the scholarpage contributors
// SPDX-License-Identifier: AGPL-3.0-only

package i18n

import (
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"codeberg.org/scholarpage/scholarpage/config"
)

var (
	// Logger is the logger used by package i18n.
	Logger zerolog.Logger = log.With().Str("sys", "i18n").Logger()

	// missingKeyOnce deduplicates WARN logs for missing keys in strict mode.
	// The key is locale+"\x00"+keyPath.
	missingKeyOnce sync.Map
)

func strictMissingKeys() bool {
	return config.Global.Internationalization.StrictMissingKeys
}

// logMissingOnce logs a missing translation warning once per (locale, key) pair.
func logMissingOnce(locale, key string) {
	id := locale + "\x00" + key
	if _, loaded := missingKeyOnce.LoadOrStore(id, struct{}{}); !loaded {
		Logger.Warn().
			Str("locale", locale).
			Str("key", key).
			Msg("Missing i18n translation")
	}
}
