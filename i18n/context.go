// Copyright 2025, the scholarpage contributors
// SPDX-License-Identifier: AGPL-3.0-only

package i18n

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"golang.org/x/text/language"

	"codeberg.org/scholarpage/scholarpage/core/cookie"
	"codeberg.org/scholarpage/scholarpage/core/untrusted"
)

type contextKeyType struct{}

var translatorKey = contextKeyType{}

// ErrNoTranslator is the panic value of [MustFrom] when ctx carries no Translator.
var ErrNoTranslator = errors.New("i18n: no translator in context; wrap the handler with the request context middleware")

// LangParam is the name of the URL query parameter used to request a UI
// language for a single render. The cookie counterpart is [cookie.LangCookie].
const LangParam = "lang"

// WithTranslator stores t in ctx and returns a derived context that carries it.
//
// The ctx must not be nil.
func WithTranslator(ctx context.Context, t Translator) context.Context {
	return context.WithValue(ctx, translatorKey, t)
}

// From returns the Translator stored in ctx, or a Translator for [BaseLocale]
// if none is present. It does not panic, including when ctx is nil.
func From(ctx context.Context) Translator {
	if ctx != nil {
		if t, ok := ctx.Value(translatorKey).(Translator); ok {
			return t
		}
	}

	return For(BaseLocale)
}

// MustFrom returns the Translator stored in ctx.
//
// Rendering text without a translator is a wiring defect, so MustFrom panics
// with [ErrNoTranslator] instead of guessing a locale.
func MustFrom(ctx context.Context) Translator {
	if ctx != nil {
		if t, ok := ctx.Value(translatorKey).(Translator); ok {
			return t
		}
	}

	panic(ErrNoTranslator)
}

// InitialLocale chooses a locale from a stored preference and the user
// agent's declared languages.
//
// A stored value of exactly "en" or "zh" wins. Otherwise the most preferred
// entry of acceptLanguage selects [Chinese] if its base language is "zh".
// Everything else yields [BaseLocale].
func InitialLocale(stored, acceptLanguage string) Locale {
	if l := Locale(stored); l == English || l == Chinese {
		return l
	}

	return FromAcceptLanguage(acceptLanguage)
}

// FromAcceptLanguage looks only at the most preferred language in an
// Accept-Language header value.
func FromAcceptLanguage(acceptLanguage string) Locale {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return BaseLocale
	}

	if base, _ := tags[0].Base(); base.String() == string(Chinese) {
		return Chinese
	}

	return BaseLocale
}

// FromRequest returns the locale for r by inspecting user preferences
// in priority order:
// 1) query parameter [LangParam]
// 2) cookie [cookie.LangCookie]
// 3) Accept-Language header
//
// Special case: if [LangParam] is "auto" (case-insensitive), the cookie is ignored
// and only the Accept-Language header is considered.
//
// FromRequest never fails; a nil r yields [BaseLocale].
func FromRequest(r *http.Request) Locale {
	if r == nil {
		return BaseLocale
	}

	q := r.URL.Query().Get(LangParam)
	auto := strings.EqualFold(q, "auto")

	if q != "" && !auto {
		if l, ok := MatchLocale(q); ok {
			return l
		}
	}

	var stored string
	if !auto {
		stored = untrusted.GetCookie(r, cookie.LangCookie)
	}

	return InitialLocale(stored, r.Header.Get("Accept-Language"))
}

// WithRequest resolves the locale from r using [FromRequest] and installs a
// Translator for it in the returned context. It is equivalent to:
//
//	WithTranslator(ctx, For(FromRequest(r)))
func WithRequest(ctx context.Context, r *http.Request) context.Context {
	return WithTranslator(ctx, For(FromRequest(r)))
}
