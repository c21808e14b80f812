// Copyright 2025, the scholarpage contributors
// SPDX-License-Identifier: AGPL-3.0-only

package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// Locale is one of the UI languages the site is translated into.
type Locale string

const (
	English Locale = "en"
	Chinese Locale = "zh"
)

// BaseLocale is the default locale used when no preference can be determined.
const BaseLocale = English

// supportedLocales lists every locale with a dictionary, BaseLocale first.
var supportedLocales = []Locale{English, Chinese}

// matcher maps arbitrary BCP 47 tags onto the supported locales.
// BaseLocale comes first so that it is the fallback for unknown tags.
var matcher = language.NewMatcher([]language.Tag{
	language.English,
	language.Chinese,
})

// Locales returns the supported locales, BaseLocale first.
//
// The returned slice is a copy and is safe to retain.
func Locales() []Locale {
	out := make([]Locale, len(supportedLocales))
	copy(out, supportedLocales)

	return out
}

// ParseLocale reports the locale named by s. Only the exact codes "en" and "zh"
// are accepted (surrounding whitespace and case are ignored); anything else
// reports false.
func ParseLocale(s string) (Locale, bool) {
	switch Locale(strings.ToLower(strings.TrimSpace(s))) {
	case English:
		return English, true
	case Chinese:
		return Chinese, true
	default:
		return "", false
	}
}

// MatchLocale maps a loose BCP 47 tag such as "zh-Hans-CN" or "en-GB" onto a
// supported locale. It reports false when s does not parse or nothing matches
// with at least low confidence.
func MatchLocale(s string) (Locale, bool) {
	if l, ok := ParseLocale(s); ok {
		return l, true
	}

	tag, err := language.Parse(strings.TrimSpace(s))
	if err != nil {
		return "", false
	}

	_, index, confidence := matcher.Match(tag)
	if confidence == language.No {
		return "", false
	}

	return supportedLocales[index], true
}

// Tag returns the BCP 47 tag for l.
func (l Locale) Tag() language.Tag {
	if l == Chinese {
		return language.Chinese
	}

	return language.English
}

// Other returns the locale the language toggle switches to.
func (l Locale) Other() Locale {
	if l == Chinese {
		return English
	}

	return Chinese
}

func (l Locale) String() string {
	return string(l)
}
