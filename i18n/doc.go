// Copyright 2025, the scholarpage contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package i18n translates UI text between English and Chinese.

Translations live in nested YAML dictionaries embedded from locales/ and are
addressed by dot-separated key paths such as "sections.news.title".

# Quick start

Resolve a translator once per request and pass it to views:

	t := i18n.For(i18n.FromRequest(r))
	t.Tr(i18n.KeyNewsTitle)

The request context middleware installs the same Translator in the request
context; [MustFrom] retrieves it and a [Key] can be used directly as a templ
component:

	@i18n.KeyNavAbout

# Missing translations

By default, missing translations return the key path unchanged. When
StrictMissingKeys is enabled, missing lookups are logged once
per locale+key and the returned text is visibly wrapped as "⟦...⟧".

# Locale resolution

[FromRequest] honours, in order, the "lang" query parameter, the Lang cookie
and the most preferred Accept-Language entry. A "zh" primary language selects
Chinese; everything else falls back to English.

# Research tag labels

Display labels for research tags live in subpackage i18n/tags.
*/
package i18n
