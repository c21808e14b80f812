// Copyright 2025, the scholarpage contributors
// SPDX-License-Identifier: AGPL-3.0-only

package views

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"codeberg.org/scholarpage/scholarpage/core/listing"
	"codeberg.org/scholarpage/scholarpage/i18n"
)

// Pager renders Previous/Next controls for page. It renders nothing when the
// whole list fits on one page. link maps a 0-based page index to its URL.
func Pager[T any](tr i18n.Translator, page listing.Page[T], link func(p int) string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, out io.Writer) error {
		if !page.ShowControls() {
			return nil
		}

		w := newWriter(out)

		w.raw(`<nav class="pager"`)
		w.attr("aria-label", tr.Tr(i18n.KeyPaginationLabel))
		w.raw(">")

		pagerButton(w, tr.Tr(i18n.KeyPaginationPrevious), "‹", page.HasPrev(), link(page.Prev()))

		w.raw(`<span class="pager-status">`)
		w.text(strconv.Itoa(page.Current+1) + " / " + strconv.Itoa(page.TotalPages))
		w.raw("</span>")

		pagerButton(w, tr.Tr(i18n.KeyPaginationNext), "›", page.HasNext(), link(page.Next()))

		w.raw("</nav>")

		return w.err
	})
}

func pagerButton(w *writer, label, glyph string, enabled bool, href string) {
	if !enabled {
		w.raw(`<span class="pager-button" aria-disabled="true"`)
		w.attr("aria-label", label)
		w.raw(">")
		w.text(glyph)
		w.raw("</span>")

		return
	}

	w.raw(`<a class="pager-button"`)
	w.href(href)
	w.attr("aria-label", label)
	w.raw(">")
	w.text(glyph)
	w.raw("</a>")
}
