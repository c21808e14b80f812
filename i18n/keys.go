// Copyright 2025, the scholarpage contributors
// SPDX-License-Identifier: AGPL-3.0-only

package i18n

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// Key is a dot-separated path into the translation dictionaries.
//
// Views should use the constants below rather than raw strings so that
// cmd/i18n_check and the package tests can verify every key resolves in
// every locale.
type Key string

const (
	KeyBrand Key = "brand"

	KeyNavAbout    Key = "nav.about"
	KeyNavNews     Key = "nav.news"
	KeyNavResearch Key = "nav.research"
	KeyNavProjects Key = "nav.projects"
	KeyNavGallery  Key = "nav.gallery"

	KeyActionEmail        Key = "actions.email"
	KeyActionGitHub       Key = "actions.github"
	KeyActionScholar      Key = "actions.scholar"
	KeyActionORCID        Key = "actions.orcid"
	KeyActionResearchGate Key = "actions.researchgate"
	KeyActionCV           Key = "actions.cv"
	KeyActionVisitProject Key = "actions.visitProject"
	KeyActionFilter       Key = "actions.filter"
	KeyActionPaper        Key = "actions.paper"
	KeyActionCode         Key = "actions.code"
	KeyActionVideo        Key = "actions.video"
	KeyActionProject      Key = "actions.project"
	KeyActionBibTeX       Key = "actions.bibtex"
	KeyActionSeeMore      Key = "actions.seeMore"
	KeyActionViewImage    Key = "actions.viewImage"

	KeyNewsTitle            Key = "sections.news.title"
	KeyNewsSubtitle         Key = "sections.news.subtitle"
	KeyResearchTitle        Key = "sections.research.title"
	KeyResearchSubtitle     Key = "sections.research.subtitle"
	KeyProjectsTitle        Key = "sections.projects.title"
	KeyProjectsSubtitle     Key = "sections.projects.subtitle"
	KeyGalleryTitle         Key = "sections.gallery.title"
	KeyGallerySubtitle      Key = "sections.gallery.subtitle"
	KeyAffiliationsTitle    Key = "sections.affiliations.title"
	KeyAffiliationsSubtitle Key = "sections.affiliations.subtitle"

	KeyNoWorks   Key = "messages.noWorks"
	KeyAll       Key = "messages.all"
	KeyAbstract  Key = "messages.abstract"
	KeyInterests Key = "messages.interests"
	KeyRights    Key = "messages.rights"

	KeyPaginationLabel    Key = "pagination.label"
	KeyPaginationPrevious Key = "pagination.previous"
	KeyPaginationNext     Key = "pagination.next"

	KeyErrorTitle           Key = "errors.title"
	KeyErrorBadRequest      Key = "errors.badRequest"
	KeyErrorNotFound        Key = "errors.notFound"
	KeyErrorInternal        Key = "errors.internal"
	KeyErrorTooManyRequests Key = "errors.tooManyRequests"
	KeyErrorBackHome        Key = "errors.backHome"

	KeySwitchLang Key = "a11y.switchLang"
	KeyOpenMenu   Key = "a11y.openMenu"

	KeyLangToggle Key = "langToggle"
)

var allKeys = []Key{
	KeyBrand,
	KeyNavAbout, KeyNavNews, KeyNavResearch, KeyNavProjects, KeyNavGallery,
	KeyActionEmail, KeyActionGitHub, KeyActionScholar, KeyActionORCID, KeyActionResearchGate,
	KeyActionCV, KeyActionVisitProject, KeyActionFilter, KeyActionPaper, KeyActionCode,
	KeyActionVideo, KeyActionProject, KeyActionBibTeX, KeyActionSeeMore, KeyActionViewImage,
	KeyNewsTitle, KeyNewsSubtitle, KeyResearchTitle, KeyResearchSubtitle,
	KeyProjectsTitle, KeyProjectsSubtitle, KeyGalleryTitle, KeyGallerySubtitle,
	KeyAffiliationsTitle, KeyAffiliationsSubtitle,
	KeyNoWorks, KeyAll, KeyAbstract, KeyInterests, KeyRights,
	KeyPaginationLabel, KeyPaginationPrevious, KeyPaginationNext,
	KeyErrorTitle, KeyErrorBadRequest, KeyErrorNotFound, KeyErrorInternal, KeyErrorTooManyRequests, KeyErrorBackHome,
	KeySwitchLang, KeyOpenMenu,
	KeyLangToggle,
}

// AllKeys returns every Key constant declared by this package.
func AllKeys() []Key {
	out := make([]Key, len(allKeys))
	copy(out, allKeys)

	return out
}

// Render writes the escaped translation of k using the translator installed in ctx.
//
// It panics if ctx carries no translator; see [MustFrom].
func (k Key) Render(ctx context.Context, w io.Writer) error {
	_, err := io.WriteString(w, templ.EscapeString(MustFrom(ctx).Tr(k)))

	return err
}

var _ templ.Component = KeyBrand
