// Copyright 2025, the scholarpage contributors
// SPDX-License-Identifier: AGPL-3.0-only

package views

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"codeberg.org/scholarpage/scholarpage/i18n"
)

// PageMeta is the document-level metadata of a rendered page.
type PageMeta struct {
	Title       string
	Description string
	// Stylesheet is the URL of the site stylesheet, usually carrying a cache-busting query.
	Stylesheet string
	// Canonical is the absolute URL of the page. Omitted when empty.
	Canonical string
}

// Layout wraps body in the HTML document shell.
func Layout(tr i18n.Translator, meta PageMeta, body ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		w := newWriter(out)

		w.raw("<!DOCTYPE html><html")
		w.attr("lang", tr.Locale().Tag().String())
		w.raw(`><head><meta charset="utf-8">`)
		w.raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		w.raw(`<meta name="referrer" content="no-referrer">`)
		w.raw("<title>")
		w.text(meta.Title)
		w.raw("</title>")

		if meta.Description != "" {
			w.raw(`<meta name="description"`)
			w.attr("content", meta.Description)
			w.raw(">")
		}

		if meta.Canonical != "" {
			w.raw(`<link rel="canonical"`)
			w.href(meta.Canonical)
			w.raw(">")
		}

		if meta.Stylesheet != "" {
			w.raw(`<link rel="stylesheet"`)
			w.href(meta.Stylesheet)
			w.raw(">")
		}

		w.raw(`</head><body class="page">`)

		for _, c := range body {
			w.render(ctx, c)
		}

		w.raw("</body></html>")

		return w.err
	})
}

// Section renders a titled page section. An empty title omits the header.
func Section(id, title, subtitle string, children ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		w := newWriter(out)

		w.raw("<section")
		w.attr("id", id)
		w.raw(` class="section anchor"><div class="container">`)

		if title != "" {
			w.raw(`<header class="section-header"><h2 class="section-title">`)
			w.text(title)
			w.raw("</h2>")

			if subtitle != "" {
				w.raw(`<p class="section-subtitle">`)
				w.text(subtitle)
				w.raw("</p>")
			}

			w.raw("</header>")
		}

		for _, c := range children {
			w.render(ctx, c)
		}

		w.raw("</div></section>")

		return w.err
	})
}

// Footer renders the copyright line.
func Footer(tr i18n.Translator, year int, owner string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, out io.Writer) error {
		w := newWriter(out)

		w.raw(`<footer class="footer"><div class="container">© `)
		w.text(strconv.Itoa(year))

		if owner != "" {
			w.raw(" ")
			w.text(owner + ".")
		}

		w.raw(" ")
		w.text(tr.Tr(i18n.KeyRights))
		w.raw("</div></footer>")

		return w.err
	})
}
