// Copyright 2025, the scholarpage contributors
// SPDX-License-Identifier: AGPL-3.0-only

package views

import (
	"context"
	"io"
	"net/http"
	"strconv"

	"github.com/a-h/templ"

	"codeberg.org/scholarpage/scholarpage/i18n"
)

// ErrorData describes a failed request.
type ErrorData struct {
	StatusCode int
	Message    i18n.Key
	RequestID  string
}

// ErrorMessage picks the message shown for status.
func ErrorMessage(status int) i18n.Key {
	switch status {
	case http.StatusBadRequest:
		return i18n.KeyErrorBadRequest
	case http.StatusNotFound:
		return i18n.KeyErrorNotFound
	case http.StatusTooManyRequests:
		return i18n.KeyErrorTooManyRequests
	default:
		return i18n.KeyErrorInternal
	}
}

// Error renders a full error page.
func Error(tr i18n.Translator, meta PageMeta, data ErrorData) templ.Component {
	body := templ.ComponentFunc(func(_ context.Context, out io.Writer) error {
		w := newWriter(out)

		w.raw(`<main class="container error"><h1>`)
		w.text(strconv.Itoa(data.StatusCode) + " · " + tr.Tr(i18n.KeyErrorTitle))
		w.raw(`</h1><p class="error-message">`)
		w.text(tr.Tr(data.Message))
		w.raw("</p>")

		if data.RequestID != "" {
			w.raw(`<p class="error-request"><code>`)
			w.text(data.RequestID)
			w.raw("</code></p>")
		}

		w.raw(`<p><a class="button" href="/">`)
		w.text(tr.Tr(i18n.KeyErrorBackHome))
		w.raw("</a></p></main>")

		return w.err
	})

	return Layout(tr, meta, AnchorNav(tr, "/"), body)
}
