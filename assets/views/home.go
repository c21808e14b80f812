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

// HomeData is the page model of the homepage for one request.
type HomeData struct {
	Owner        string
	Profile      content.Profile
	News         []content.NewsItem
	Tags         []listing.TagFilter
	Selection    listing.Selection
	Research     listing.Page[content.ResearchWork]
	Projects     listing.Page[content.ProjectItem]
	Gallery      listing.Page[content.GalleryItem]
	Affiliations []content.AffiliationItem
	Year         int
}

// Home composes every section of the homepage.
func Home(tr i18n.Translator, meta PageMeta, data HomeData) templ.Component {
	sel := data.Selection

	body := templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		w := newWriter(out)

		w.raw(`<main><div id="about" class="anchor"></div>`)
		w.render(ctx, Hero(tr, data.Profile))

		w.render(ctx, Section(AnchorNews, tr.Tr(i18n.KeyNewsTitle), "",
			NewsList(data.News)))

		// Only the research section carries its subtitle: it explains the
		// equal-contribution marker used in author lists.
		w.render(ctx, Section(AnchorResearch, tr.Tr(i18n.KeyResearchTitle), tr.Tr(i18n.KeyResearchSubtitle),
			ResearchFilter(tr, data.Tags, sel),
			ResearchList(tr, data.Research, sel)))

		w.render(ctx, Section(AnchorProjects, tr.Tr(i18n.KeyProjectsTitle), "",
			ProjectsGrid(tr, data.Projects, sel)))

		w.render(ctx, Section(AnchorGallery, tr.Tr(i18n.KeyGalleryTitle), "",
			GalleryMosaic(tr, data.Gallery, sel)))

		w.render(ctx, Section(AnchorAffiliations, "", "",
			AffiliationsRow(data.Affiliations)))

		w.raw("</main>")

		return w.err
	})

	return Layout(tr, meta,
		AnchorNav(tr, sel.URL("")),
		body,
		Footer(tr, data.Year, data.Owner),
	)
}
