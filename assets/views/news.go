// Copyright 2025, the scholarpage contributors
// SPDX-License-Identifier: AGPL-3.0-only

package views

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"codeberg.org/scholarpage/scholarpage/content"
)

// NewsList renders news items in catalog order.
func NewsList(items []content.NewsItem) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, out io.Writer) error {
		w := newWriter(out)

		w.raw(`<ol class="news">`)

		for _, item := range items {
			w.raw(`<li class="news-item"><time`)
			w.attr("datetime", item.Date)
			w.raw(">")
			w.text(item.Date)
			w.raw("</time> ")

			if item.Link != "" {
				w.raw("<a")
				w.external(item.Link)
				w.raw(">")
				w.text(item.Title)
				w.raw("</a>")
			} else {
				w.raw("<span>")
				w.text(item.Title)
				w.raw("</span>")
			}

			w.raw("</li>")
		}

		w.raw("</ol>")

		return w.err
	})
}
