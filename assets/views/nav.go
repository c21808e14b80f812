// Copyright 2025, the scholarpage contributors
// SPDX-License-Identifier: AGPL-3.0-only

package views

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"codeberg.org/scholarpage/scholarpage/i18n"
)

// Anchor ids of the homepage sections, in page order.
const (
	AnchorAbout        = "about"
	AnchorNews         = "news"
	AnchorResearch     = "research"
	AnchorProjects     = "projects"
	AnchorGallery      = "gallery"
	AnchorAffiliations = "affiliations"
)

// LanguageFormAction is where the language toggle posts to.
const LanguageFormAction = "/settings/language"

type navItem struct {
	anchor string
	label  i18n.Key
}

var navItems = []navItem{
	{AnchorAbout, i18n.KeyNavAbout},
	{AnchorNews, i18n.KeyNavNews},
	{AnchorResearch, i18n.KeyNavResearch},
	{AnchorProjects, i18n.KeyNavProjects},
	{AnchorGallery, i18n.KeyNavGallery},
}

// AnchorNav renders the sticky top bar with section anchors and the language
// toggle. returnPath is where the toggle sends the visitor back to.
func AnchorNav(tr i18n.Translator, returnPath string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, out io.Writer) error {
		w := newWriter(out)

		w.raw(`<header class="nav"><nav class="container nav-bar">`)
		w.raw(`<a class="brand" href="/">`)
		w.text(tr.Tr(i18n.KeyBrand))
		w.raw("</a>")

		w.raw(`<div class="nav-controls"><ul class="nav-anchors">`)

		for _, item := range navItems {
			w.raw(`<li><a class="nav-link"`)
			w.attr("href", "#"+item.anchor)
			w.raw(">")
			w.text(tr.Tr(item.label))
			w.raw("</a></li>")
		}

		w.raw("</ul>")

		// Compact menu for narrow screens; <details> needs no script.
		w.raw(`<details class="nav-menu"><summary`)
		w.attr("aria-label", tr.Tr(i18n.KeyOpenMenu))
		w.raw(`>☰</summary><ul>`)

		for _, item := range navItems {
			w.raw("<li><a")
			w.attr("href", "#"+item.anchor)
			w.raw(">")
			w.text(tr.Tr(item.label))
			w.raw("</a></li>")
		}

		w.raw("</ul></details>")

		w.raw(`<form class="lang-toggle" method="post"`)
		w.attr("action", LanguageFormAction)
		w.raw(`><input type="hidden" name="locale"`)
		w.attr("value", tr.Locale().Other().String())
		w.raw(`><input type="hidden" name="returnPath"`)
		w.attr("value", returnPath)
		w.raw(`><button type="submit" class="button"`)
		w.attr("aria-label", tr.Tr(i18n.KeySwitchLang))
		w.raw(">")
		w.text(tr.Tr(i18n.KeyLangToggle))
		w.raw("</button></form>")

		w.raw("</div></nav></header>")

		return w.err
	})
}
