// Copyright 2025, the scholarpage contributors
// SPDX-License-Identifier: AGPL-3.0-only

package i18n

// Translator resolves keys against a single locale's dictionary.
//
// A Translator is an immutable value: it is created once per request and
// handed to every view that renders text, so concurrent renders never share
// mutable language state.
type Translator struct {
	locale Locale
	dict   *Dictionary
}

// NewTranslator returns a Translator for locale backed by dict.
// A nil dict is valid; every lookup then falls back to the key itself.
func NewTranslator(locale Locale, dict *Dictionary) Translator {
	return Translator{locale: locale, dict: dict}
}

// For returns a Translator for locale using the dictionaries loaded by [Setup].
//
// Unknown locales resolve to BaseLocale. If Setup has not run, the returned
// Translator echoes keys back.
func For(locale Locale) Translator {
	if _, ok := ParseLocale(string(locale)); !ok {
		locale = BaseLocale
	}

	return Translator{locale: locale, dict: dictionaries[locale]}
}

// Locale returns the locale t translates into.
func (t Translator) Locale() Locale {
	if t.locale == "" {
		return BaseLocale
	}

	return t.locale
}

// Tr returns the translation for key.
func (t Translator) Tr(key Key) string {
	return t.Lookup(string(key))
}

// Lookup returns the translation stored at keyPath.
//
// When the path is missing or does not end at a string, Lookup returns
// keyPath unchanged. In strict mode the miss is logged once per locale+key
// and the key is visibly wrapped as "⟦key⟧". Lookup never panics.
func (t Translator) Lookup(keyPath string) string {
	if s, ok := t.dict.Lookup(keyPath); ok {
		return s
	}

	if strictMissingKeys() {
		logMissingOnce(t.Locale().String(), keyPath)

		return "⟦" + keyPath + "⟧"
	}

	return keyPath
}
