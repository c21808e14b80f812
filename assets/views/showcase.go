// Copyright 2025, the scholarpage contributors
// SPDX-License-Identifier: AGPL-3.0-only

package views

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"codeberg.org/scholarpage/scholarpage/content"
	"codeberg.org/scholarpage/scholarpage/core/listing"
	"codeberg.org/scholarpage/scholarpage/i18n"
)

// ProjectsGrid renders one page of project cards.
func ProjectsGrid(tr i18n.Translator, page listing.Page[content.ProjectItem], sel listing.Selection) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		w := newWriter(out)

		w.raw(`<div class="projects"><div class="grid grid-projects">`)

		for _, item := range page.Items {
			if item.Link != "" {
				w.raw(`<a class="card project"`)
				w.external(item.Link)
				w.raw(">")
			} else {
				w.raw(`<div class="card project">`)
			}

			if item.ImgPath != "" {
				w.raw(`<div class="card-image"><img loading="lazy"`)
				w.attr("src", item.ImgPath)
				w.attr("alt", item.Title)
				w.raw("></div>")
			}

			w.raw(`<div class="card-body"><h3 class="card-title">`)
			w.text(item.Title)
			w.raw("</h3>")

			if item.Description != "" {
				w.raw(`<p class="card-text">`)
				w.text(item.Description)
				w.raw("</p>")
			}

			if item.Link != "" {
				w.raw(`<span class="card-cta">`)
				w.text(tr.Tr(i18n.KeyActionVisitProject))
				w.raw("</span></div></a>")
			} else {
				w.raw("</div></div>")
			}
		}

		w.raw("</div>")

		w.render(ctx, Pager(tr, page, func(p int) string {
			return sel.WithProjects(p).URL(AnchorProjects)
		}))

		w.raw("</div>")

		return w.err
	})
}

// GalleryMosaic renders one page of gallery images. Each tile links to the
// full-size image.
func GalleryMosaic(tr i18n.Translator, page listing.Page[content.GalleryItem], sel listing.Selection) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		w := newWriter(out)

		w.raw(`<div class="gallery"><div class="grid grid-gallery">`)

		for _, item := range page.Items {
			caption := item.Caption
			if caption == "" {
				caption = item.Alt
			}

			w.raw(`<figure class="tile"><a target="_blank"`)
			w.href(item.ImgPath)
			w.attr("title", tr.Tr(i18n.KeyActionViewImage))
			w.raw(`><img loading="lazy"`)
			w.attr("src", item.ImgPath)
			w.attr("alt", item.Alt)
			w.raw("></a>")

			if caption != "" {
				w.raw("<figcaption>")
				w.text(caption)
				w.raw("</figcaption>")
			}

			w.raw("</figure>")
		}

		w.raw("</div>")

		w.render(ctx, Pager(tr, page, func(p int) string {
			return sel.WithGallery(p).URL(AnchorGallery)
		}))

		w.raw("</div>")

		return w.err
	})
}

// AffiliationsRow renders institution logos, linked when an href is known.
func AffiliationsRow(items []content.AffiliationItem) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, out io.Writer) error {
		w := newWriter(out)

		w.raw(`<ul class="affiliations">`)

		for _, item := range items {
			w.raw(`<li class="affiliation">`)

			if item.Href != "" {
				w.raw("<a")
				w.external(item.Href)
				w.attr("title", item.Name)
				w.raw(">")
			}

			if item.Src != "" {
				w.raw(`<img loading="lazy"`)
				w.attr("src", item.Src)
				w.attr("alt", item.Name)
				w.raw(">")
			} else {
				w.text(item.Name)
			}

			if item.Href != "" {
				w.raw("</a>")
			}

			w.raw("</li>")
		}

		w.raw("</ul>")

		return w.err
	})
}
