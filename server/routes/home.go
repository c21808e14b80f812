// Copyright 2025, the scholarpage contributors
// SPDX-License-Identifier: AGPL-3.0-only

package routes

import (
	"bytes"
	"net/http"
	"time"

	"codeberg.org/scholarpage/scholarpage/assets/views"
	"codeberg.org/scholarpage/scholarpage/content"
	"codeberg.org/scholarpage/scholarpage/core/listing"
	"codeberg.org/scholarpage/scholarpage/i18n"
)

// ComposeHome builds the homepage model for locale and sel.
//
// Page indices in sel are clamped to the lists' bounds, so the returned
// Selection is the one actually displayed.
func ComposeHome(c *content.Catalog, locale i18n.Locale, sel listing.Selection, year int) views.HomeData {
	filtered := listing.FilterWorks(c.Works, sel.Tag)

	data := views.HomeData{
		Owner:        c.Site.Owner,
		Profile:      c.ProfileFor(locale),
		News:         c.News,
		Tags:         listing.BuildTags(c.Works),
		Research:     listing.Paginate(filtered, sel.Research, listing.ResearchPageSize),
		Projects:     listing.Paginate(c.Projects, sel.Projects, listing.ProjectsPageSize),
		Gallery:      listing.Paginate(c.Gallery, sel.Gallery, listing.GalleryPageSize),
		Affiliations: c.Affiliations,
		Year:         year,
	}

	data.Selection = sel.
		WithResearch(data.Research.Current).
		WithProjects(data.Projects.Current).
		WithGallery(data.Gallery.Current)

	return data
}

// HomePage is the handler for the homepage.
func HomePage(w http.ResponseWriter, r *http.Request) error {
	tr := i18n.MustFrom(r.Context())

	data := ComposeHome(content.Current(), tr.Locale(), listing.SelectionFromQuery(r.URL.Query()), time.Now().Year())

	setPublicCache(w)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Add("Vary", "Cookie, Accept-Language")
	w.Header().Set("Content-Language", tr.Locale().String())
	PreloadImage(w, data.Profile.AvatarPath)

	key := homeCacheKey(tr.Locale(), data.Selection, data.Year)

	if body, ok := cachedPage(key); ok {
		_, err := w.Write(body)

		return err
	}

	description := data.Profile.Title
	if data.Profile.Affiliation != "" {
		description += " · " + data.Profile.Affiliation
	}

	title := data.Profile.Name
	if title == "" {
		title = tr.Tr(i18n.KeyBrand)
	}

	var buf bytes.Buffer

	if err := views.Home(tr, pageMeta(title, description, data.Selection.URL("")), data).Render(r.Context(), &buf); err != nil {
		return err
	}

	storePage(key, buf.Bytes())

	_, err := buf.WriteTo(w)

	return err
}
