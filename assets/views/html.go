// Copyright 2025, the scholarpage contributors
// SPDX-License-Identifier: AGPL-3.0-only

package views

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// writer accumulates the first write error so components can emit markup
// without checking every call.
type writer struct {
	w   io.Writer
	err error
}

func newWriter(w io.Writer) *writer {
	return &writer{w: w}
}

func (w *writer) raw(parts ...string) {
	for _, p := range parts {
		if w.err != nil {
			return
		}

		_, w.err = io.WriteString(w.w, p)
	}
}

func (w *writer) text(s string) {
	w.raw(templ.EscapeString(s))
}

func (w *writer) attr(name, value string) {
	w.raw(" ", name, `="`, templ.EscapeString(value), `"`)
}

// href writes an href attribute, replacing unsafe schemes.
func (w *writer) href(u string) {
	w.attr("href", string(templ.URL(u)))
}

// external writes the attributes of a link that opens in a new tab.
func (w *writer) external(u string) {
	w.href(u)

	if isExternal(u) {
		w.raw(` target="_blank" rel="noopener noreferrer"`)
	}
}

func (w *writer) render(ctx context.Context, c templ.Component) {
	if w.err != nil || c == nil {
		return
	}

	w.err = c.Render(ctx, w.w)
}

func isExternal(u string) bool {
	return strings.HasPrefix(u, "http://") || strings.HasPrefix(u, "https://")
}

func classes(names ...string) string {
	out := names[:0:0]

	for _, n := range names {
		if n != "" {
			out = append(out, n)
		}
	}

	return strings.Join(out, " ")
}
