// Copyright 2025, the scholarpage contributors
// SPDX-License-Identifier: AGPL-3.0-only

package views

import (
	"context"
	"io"
	"net/url"
	"strconv"

	"github.com/a-h/templ"

	"codeberg.org/scholarpage/scholarpage/content"
	"codeberg.org/scholarpage/scholarpage/core/listing"
	"codeberg.org/scholarpage/scholarpage/core/richtext"
	"codeberg.org/scholarpage/scholarpage/i18n"
	"codeberg.org/scholarpage/scholarpage/i18n/tags"
)

// BibtexURL is the citation export link of the work with the given id.
func BibtexURL(id string) string {
	return "/research/" + url.PathEscape(id) + "/bibtex"
}

// TagLabel is the display text of a filter chip.
func TagLabel(tr i18n.Translator, f listing.TagFilter) string {
	if f.IsAll() {
		return tr.Tr(i18n.KeyAll)
	}

	return tags.Label(tr.Locale().String(), f.Tag())
}

// ResearchFilter renders one chip per tag. Choosing a chip links to the
// first research page under that tag; the other lists keep their pages.
func ResearchFilter(tr i18n.Translator, filters []listing.TagFilter, sel listing.Selection) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, out io.Writer) error {
		w := newWriter(out)

		w.raw(`<div class="filter"><span class="filter-label">`)
		w.text(tr.Tr(i18n.KeyActionFilter))
		w.raw("</span>")

		for _, f := range filters {
			active := f == sel.Tag

			w.raw("<a")
			w.attr("class", classes("chip", activeClass(active)))
			w.href(sel.WithTag(f).URL(AnchorResearch))

			if active {
				w.raw(` aria-current="true"`)
			}

			w.raw(">")

			if active {
				w.raw(`<span class="chip-check" aria-hidden="true">✓</span>`)
			}

			w.text(TagLabel(tr, f))
			w.raw("</a>")
		}

		w.raw("</div>")

		return w.err
	})
}

func activeClass(active bool) string {
	if active {
		return "active"
	}

	return ""
}

// ResearchList renders one page of the filtered works.
func ResearchList(tr i18n.Translator, page listing.Page[content.ResearchWork], sel listing.Selection) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		w := newWriter(out)

		w.raw(`<div class="works">`)

		for _, work := range page.Items {
			researchCard(ctx, w, tr, work)
		}

		if page.Total == 0 {
			w.raw(`<p class="empty">`)
			w.text(tr.Tr(i18n.KeyNoWorks))
			w.raw("</p>")
		}

		w.render(ctx, Pager(tr, page, func(p int) string {
			return sel.WithResearch(p).URL(AnchorResearch)
		}))

		w.raw("</div>")

		return w.err
	})
}

func researchCard(ctx context.Context, w *writer, tr i18n.Translator, work content.ResearchWork) {
	w.raw(`<article class="work"`)
	w.attr("id", "work-"+work.ID)
	w.raw(">")

	if work.ImgPath != "" {
		w.raw(`<div class="work-image"><img loading="lazy"`)
		w.attr("src", work.ImgPath)
		w.attr("alt", work.Title)
		w.raw("></div>")
	}

	w.raw(`<div class="work-body"><h3 class="work-title">`)
	w.text(work.Title)
	w.raw(`</h3><p class="work-authors">`)
	w.render(ctx, richtext.Component(work.Authors))
	w.raw("</p><p")
	w.attr("class", classes("work-venue", highlightClass(work.Highlight)))
	w.raw(">")
	w.text(work.Venue)

	if work.Year != 0 {
		w.text(" · " + strconv.Itoa(work.Year))
	}

	w.raw("</p>")

	if work.Abstract != "" {
		excerpt, cut := work.Excerpt()

		w.raw(`<p class="work-abstract"><span class="abstract-label">`)
		w.text(tr.Tr(i18n.KeyAbstract))
		w.raw("</span> ")
		w.text(excerpt)

		if cut {
			w.raw("... ")

			if more := work.ReadMoreLink(); more != "" {
				w.raw(`<a class="see-more"`)
				w.external(more)
				w.raw(">")
				w.text(tr.Tr(i18n.KeyActionSeeMore))
				w.raw("</a>")
			}
		}

		w.raw("</p>")
	}

	if !work.Links.IsZero() || work.Bibtex != "" {
		w.raw(`<div class="work-links">`)

		workLink(w, work.Links.Paper, tr.Tr(i18n.KeyActionPaper))
		workLink(w, work.Links.Code, tr.Tr(i18n.KeyActionCode))
		workLink(w, work.Links.Video, tr.Tr(i18n.KeyActionVideo))
		workLink(w, work.Links.Project, tr.Tr(i18n.KeyActionProject))

		if work.Bibtex != "" {
			w.raw(`<a class="button" target="_blank"`)
			w.href(BibtexURL(work.ID))
			w.raw(">")
			w.text(tr.Tr(i18n.KeyActionBibTeX))
			w.raw("</a>")
		}

		w.raw("</div>")
	}

	w.raw("</div></article>")
}

func highlightClass(highlight bool) string {
	if highlight {
		return "highlight"
	}

	return ""
}

func workLink(w *writer, href, label string) {
	if href == "" {
		return
	}

	w.raw(`<a class="button"`)
	w.external(href)
	w.raw(">")
	w.text(label)
	w.raw("</a>")
}
