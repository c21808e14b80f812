// Copyright 2025, the scholarpage contributors
// SPDX-License-Identifier: AGPL-3.0-only

package listing

import (
	"net/url"
	"strconv"
	"strings"
)

// Query parameter names carrying the page state.
const (
	TagParam      = "tag"
	FromTagParam  = "from"
	ResearchParam = "research"
	ProjectsParam = "projects"
	GalleryParam  = "gallery"
)

// Selection is the UI state of the home page: the active tag filter and the
// zero-based page index of each paginated list.
type Selection struct {
	Tag      TagFilter
	Research int
	Projects int
	Gallery  int
}

// SelectionFromQuery decodes a Selection from URL query values.
//
// Page indices are one-based in the URL; missing or malformed values select
// the first page. The research index is discarded when it was produced under
// a different tag than the current one (the "from" value), so changing the
// filter always starts on the first page.
func SelectionFromQuery(q url.Values) Selection {
	s := Selection{
		Tag:      ByTag(strings.TrimSpace(q.Get(TagParam))),
		Projects: pageIndex(q.Get(ProjectsParam)),
		Gallery:  pageIndex(q.Get(GalleryParam)),
	}

	if strings.TrimSpace(q.Get(FromTagParam)) == s.Tag.Tag() {
		s.Research = pageIndex(q.Get(ResearchParam))
	}

	return s
}

func pageIndex(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 1 {
		return 0
	}

	return n - 1
}

// Query encodes s as URL query values. Defaults are omitted so the canonical
// home page URL stays "/".
func (s Selection) Query() url.Values {
	q := url.Values{}

	if !s.Tag.IsAll() {
		q.Set(TagParam, s.Tag.Tag())
	}

	if s.Research > 0 {
		q.Set(ResearchParam, strconv.Itoa(s.Research+1))

		if !s.Tag.IsAll() {
			q.Set(FromTagParam, s.Tag.Tag())
		}
	}

	if s.Projects > 0 {
		q.Set(ProjectsParam, strconv.Itoa(s.Projects+1))
	}

	if s.Gallery > 0 {
		q.Set(GalleryParam, strconv.Itoa(s.Gallery+1))
	}

	return q
}

// URL returns the home page link for s, scrolled to fragment when not empty.
func (s Selection) URL(fragment string) string {
	u := url.URL{Path: "/", RawQuery: s.Query().Encode(), Fragment: fragment}

	return u.String()
}

// WithTag returns s filtered by f. The research list restarts at its first page.
func (s Selection) WithTag(f TagFilter) Selection {
	s.Tag = f
	s.Research = 0

	return s
}

// WithResearch returns s showing research page p.
func (s Selection) WithResearch(p int) Selection {
	s.Research = p

	return s
}

// WithProjects returns s showing projects page p.
func (s Selection) WithProjects(p int) Selection {
	s.Projects = p

	return s
}

// WithGallery returns s showing gallery page p.
func (s Selection) WithGallery(p int) Selection {
	s.Gallery = p

	return s
}

// CacheKey is a stable string identifying s, used to key rendered pages.
func (s Selection) CacheKey() string {
	return s.Query().Encode()
}
